package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/walletapp/wallet_ledger_app/internal/apperrors"
	"github.com/walletapp/wallet_ledger_app/internal/core/domain"
	portssvc "github.com/walletapp/wallet_ledger_app/internal/core/ports/services"
	"github.com/walletapp/wallet_ledger_app/internal/core/services"
	"github.com/walletapp/wallet_ledger_app/internal/dto"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
	}

	suite.mockUserRepo.On("SaveUser", mock.Anything, mock.MatchedBy(func(user domain.User) bool {
		return user.Email == req.Email &&
			user.PasswordHash != req.Password &&
			bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) == nil
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.Equal(req.Email, user.Email)
	suite.NotEqual(req.Password, user.PasswordHash)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateEmail() {
	ctx := context.Background()
	suite.mockUserRepo.On("SaveUser", mock.Anything, mock.Anything).
		Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateUser(ctx, dto.RegisterUserRequest{
		Name:     "Test User",
		Email:    "taken@example.com",
		Password: "password123",
	})

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	password := "password123"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	suite.Require().NoError(err)

	stored := &domain.User{
		UserID:       "user-1",
		Email:        "test@example.com",
		PasswordHash: string(hash),
	}
	suite.mockUserRepo.On("FindUserByEmail", mock.Anything, stored.Email).Return(stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, stored.Email, password)

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	suite.Require().NoError(err)

	stored := &domain.User{Email: "test@example.com", PasswordHash: string(hash)}
	suite.mockUserRepo.On("FindUserByEmail", mock.Anything, stored.Email).Return(stored, nil).Once()

	_, err = suite.service.Authenticate(ctx, stored.Email, "wrong")

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownEmail() {
	// Unknown email and wrong password look identical to the caller.
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByEmail", mock.Anything, "nobody@example.com").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Authenticate(ctx, "nobody@example.com", "whatever")

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
