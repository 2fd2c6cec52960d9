package repositories

import (
	"context"

	"github.com/walletapp/wallet_ledger_app/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID retrieves a user by their unique identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email, used by login.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}
