package services

import (
	"context"

	"github.com/walletapp/wallet_ledger_app/internal/core/domain"
	"github.com/walletapp/wallet_ledger_app/internal/dto"
)

// AccountSvcFacade manages account lifecycle outside the mutation path.
type AccountSvcFacade interface {
	// CreateAccountForUser opens the user's single account. This is the
	// explicit orchestration step the boundary invokes after user creation
	// succeeds; nothing is created implicitly.
	CreateAccountForUser(ctx context.Context, userID string, currencyCode string) (*domain.Account, error)

	// GetAccountByUserID returns the user's account.
	GetAccountByUserID(ctx context.Context, userID string) (*domain.Account, error)

	// GetAccountSummary returns journal statistics for the user's account.
	GetAccountSummary(ctx context.Context, userID string) (*dto.AccountSummary, error)

	// UpdateAccountStatus changes the status of the user's account and
	// returns the updated account.
	UpdateAccountStatus(ctx context.Context, userID string, status domain.AccountStatus) (*domain.Account, error)
}
