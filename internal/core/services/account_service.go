package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/walletapp/wallet_ledger_app/internal/core/domain"
	portsrepo "github.com/walletapp/wallet_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/walletapp/wallet_ledger_app/internal/core/ports/services"
	"github.com/walletapp/wallet_ledger_app/internal/dto"
)

type accountService struct {
	BaseService
	accountRepo     portsrepo.AccountRepositoryFacade
	transactionRepo portsrepo.TransactionRepositoryFacade
	defaultCurrency string
}

// NewAccountService creates the account management service.
func NewAccountService(
	accountRepo portsrepo.AccountRepositoryFacade,
	transactionRepo portsrepo.TransactionRepositoryFacade,
	defaultCurrency string,
) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		defaultCurrency: defaultCurrency,
	}
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccountForUser opens a zero-balance account for the user. Account
// creation is an explicit call, one account per user; a second attempt fails
// with ErrAccountExists.
func (s *accountService) CreateAccountForUser(ctx context.Context, userID string, currencyCode string) (*domain.Account, error) {
	if currencyCode == "" {
		currencyCode = s.defaultCurrency
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:    uuid.NewString(),
		UserID:       userID,
		Balance:      decimal.Zero,
		CurrencyCode: currencyCode,
		Status:       domain.AccountActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to create account",
			slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created",
		slog.String("account_id", account.AccountID),
		slog.String("user_id", userID),
		slog.String("currency", currencyCode))
	return &account, nil
}

// GetAccountByUserID returns the user's account.
func (s *accountService) GetAccountByUserID(ctx context.Context, userID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByUserID(ctx, userID)
}

// UpdateAccountStatus moves the user's account to the given status. A frozen
// account keeps its balance and history; only the mutation gate changes.
func (s *accountService) UpdateAccountStatus(ctx context.Context, userID string, status domain.AccountStatus) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.UpdateAccountStatus(ctx, account.AccountID, status); err != nil {
		s.LogError(ctx, err, "Failed to update account status",
			slog.String("account_id", account.AccountID),
			slog.String("status", string(status)))
		return nil, err
	}

	s.LogInfo(ctx, "Account status updated",
		slog.String("account_id", account.AccountID),
		slog.String("from", string(account.Status)),
		slog.String("to", string(status)))

	account.Status = status
	account.LastUpdatedAt = time.Now().UTC()
	return account, nil
}

// GetAccountSummary returns account state plus journal statistics.
func (s *accountService) GetAccountSummary(ctx context.Context, userID string) (*dto.AccountSummary, error) {
	account, err := s.accountRepo.FindAccountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats, err := s.transactionRepo.SummarizeByAccount(ctx, account.AccountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to summarize account journal",
			slog.String("account_id", account.AccountID))
		return nil, err
	}

	return &dto.AccountSummary{
		AccountID:         account.AccountID,
		Balance:           account.Balance,
		CurrencyCode:      account.CurrencyCode,
		Status:            string(account.Status),
		TransactionCount:  stats.TransactionCount,
		LargestCredit:     stats.LargestCredit,
		LargestDebit:      stats.LargestDebit,
		LastTransactionAt: stats.LastTransactionAt,
		CreatedAt:         account.CreatedAt,
	}, nil
}
