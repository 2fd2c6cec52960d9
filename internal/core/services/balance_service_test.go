package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/walletapp/wallet_ledger_app/internal/apperrors"
	"github.com/walletapp/wallet_ledger_app/internal/core/domain"
	portsrepo "github.com/walletapp/wallet_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/walletapp/wallet_ledger_app/internal/core/ports/services"
	"github.com/walletapp/wallet_ledger_app/internal/core/services"
)

const testCacheTTL = 300 * time.Second

type BalanceServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockTxnRepo     *MockTransactionRepository
	mockCache       *MockBalanceCache
	service         portssvc.BalanceSvcFacade
}

func (suite *BalanceServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockCache = new(MockBalanceCache)
	suite.service = services.NewBalanceService(
		suite.mockAccountRepo,
		suite.mockTxnRepo,
		suite.mockCache,
		testCacheTTL,
	)
}

// A hit is served from the cache alone: the account store must not be read.
func (suite *BalanceServiceTestSuite) TestGetCurrentBalance_CacheHitSkipsStore() {
	ctx := context.Background()

	storeReads := 0
	suite.mockAccountRepo.FindAccountByUserIDFn = func(ctx context.Context, userID string) (*domain.Account, error) {
		storeReads++
		return activeAccount("1000.00"), nil
	}
	suite.mockCache.On("GetBalance", mock.Anything, testUserID).
		Return(portsrepo.CachedBalance{
			Amount:   decimal.RequireFromString("950.00"),
			Currency: "USD",
		}, true, nil).Once()

	resp, err := suite.service.GetCurrentBalance(ctx, testUserID)

	suite.Require().NoError(err)
	suite.True(resp.Balance.Equal(decimal.RequireFromString("950.00")))
	suite.Equal("USD", resp.Currency)
	suite.Equal(0, storeReads, "cache hit touched the account store")
	suite.mockCache.AssertNotCalled(suite.T(), "SetBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// A hit keeps serving even when the store is unreachable.
func (suite *BalanceServiceTestSuite) TestGetCurrentBalance_CacheHitSurvivesStoreOutage() {
	ctx := context.Background()

	suite.mockAccountRepo.FindAccountByUserIDFn = func(ctx context.Context, userID string) (*domain.Account, error) {
		return nil, errors.New("connection refused")
	}
	suite.mockCache.On("GetBalance", mock.Anything, testUserID).
		Return(portsrepo.CachedBalance{
			Amount:   decimal.RequireFromString("950.00"),
			Currency: "USD",
		}, true, nil).Once()

	resp, err := suite.service.GetCurrentBalance(ctx, testUserID)

	suite.Require().NoError(err)
	suite.True(resp.Balance.Equal(decimal.RequireFromString("950.00")))
}

func (suite *BalanceServiceTestSuite) TestGetCurrentBalance_CacheMissPopulates() {
	ctx := context.Background()
	suite.mockCache.On("GetBalance", mock.Anything, testUserID).
		Return(portsrepo.CachedBalance{}, false, nil).Once()
	suite.mockAccountRepo.On("FindAccountByUserID", mock.Anything, testUserID).
		Return(activeAccount("1000.00"), nil).Once()
	suite.mockCache.On("SetBalance", mock.Anything, testUserID, portsrepo.CachedBalance{
		Amount:   decimal.RequireFromString("1000.00"),
		Currency: "USD",
	}, testCacheTTL).Return(nil).Once()

	resp, err := suite.service.GetCurrentBalance(ctx, testUserID)

	suite.Require().NoError(err)
	suite.True(resp.Balance.Equal(decimal.RequireFromString("1000.00")))
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestGetCurrentBalance_CacheErrorFallsBack() {
	ctx := context.Background()
	suite.mockCache.On("GetBalance", mock.Anything, testUserID).
		Return(portsrepo.CachedBalance{}, false, errors.New("connection refused")).Once()
	suite.mockAccountRepo.On("FindAccountByUserID", mock.Anything, testUserID).
		Return(activeAccount("1000.00"), nil).Once()
	suite.mockCache.On("SetBalance", mock.Anything, testUserID, mock.Anything, testCacheTTL).
		Return(errors.New("connection refused")).Once()

	resp, err := suite.service.GetCurrentBalance(ctx, testUserID)

	suite.Require().NoError(err, "cache failure must not fail the read")
	suite.True(resp.Balance.Equal(decimal.RequireFromString("1000.00")))
}

func (suite *BalanceServiceTestSuite) TestGetCurrentBalance_AccountNotFound() {
	ctx := context.Background()
	suite.mockCache.On("GetBalance", mock.Anything, testUserID).
		Return(portsrepo.CachedBalance{}, false, nil).Once()
	suite.mockAccountRepo.On("FindAccountByUserID", mock.Anything, testUserID).
		Return(nil, apperrors.ErrAccountNotFound).Once()

	_, err := suite.service.GetCurrentBalance(ctx, testUserID)

	suite.Require().ErrorIs(err, apperrors.ErrAccountNotFound)
	suite.mockCache.AssertNotCalled(suite.T(), "SetBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BalanceServiceTestSuite) TestGetBalanceDetails() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountByUserID", mock.Anything, testUserID).
		Return(activeAccount("1000.00"), nil).Once()
	suite.mockTxnRepo.On("SumPendingByAccount", mock.Anything, testAccountID).
		Return(portsrepo.PendingTotals{
			Credits: decimal.RequireFromString("250.00"),
			Debits:  decimal.RequireFromString("100.00"),
		}, nil).Once()

	details, err := suite.service.GetBalanceDetails(ctx, testUserID)

	suite.Require().NoError(err)
	suite.True(details.CurrentBalance.Equal(decimal.RequireFromString("1000.00")))
	suite.True(details.AvailableBalance.Equal(decimal.RequireFromString("900.00")))
	suite.True(details.PendingCredits.Equal(decimal.RequireFromString("250.00")))
	suite.True(details.PendingDebits.Equal(decimal.RequireFromString("100.00")))
	suite.Equal("ACTIVE", details.Status)
}

func (suite *BalanceServiceTestSuite) TestInvalidateBalance_SwallowsCacheError() {
	ctx := context.Background()
	suite.mockCache.On("Invalidate", mock.Anything, testUserID).
		Return(errors.New("connection refused")).Once()

	suite.service.InvalidateBalance(ctx, testUserID)

	suite.mockCache.AssertExpectations(suite.T())
}

func TestBalanceService(t *testing.T) {
	suite.Run(t, new(BalanceServiceTestSuite))
}
