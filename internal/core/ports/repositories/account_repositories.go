package repositories

import (
	"context"

	"github.com/walletapp/wallet_ledger_app/internal/core/domain"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByUserID retrieves the non-deleted account owned by a user.
	FindAccountByUserID(ctx context.Context, userID string) (*domain.Account, error)
}

// AccountWriter defines write operations for account data. Balance updates
// are deliberately absent: the balance is only ever written together with a
// transaction record through TransactionRepository.SaveTransactionAndBalance.
type AccountWriter interface {
	// SaveAccount persists a new account. Returns apperrors.ErrAccountExists
	// if the user already owns a non-deleted account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccountStatus changes an account's status. Status transitions are
	// independent of the ledger's mutation path.
	UpdateAccountStatus(ctx context.Context, accountID string, status domain.AccountStatus) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
