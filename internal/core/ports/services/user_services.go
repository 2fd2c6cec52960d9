package services

import (
	"context"

	"github.com/walletapp/wallet_ledger_app/internal/core/domain"
	"github.com/walletapp/wallet_ledger_app/internal/dto"
)

// UserSvcFacade manages users and credential checks.
type UserSvcFacade interface {
	// CreateUser registers a new user with a bcrypt-hashed password.
	CreateUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// GetUserByID retrieves a user.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// Authenticate verifies email/password and returns the user on success.
	Authenticate(ctx context.Context, email string, password string) (*domain.User, error)
}
