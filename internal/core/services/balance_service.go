package services

import (
	"context"
	"log/slog"
	"time"

	portsrepo "github.com/walletapp/wallet_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/walletapp/wallet_ledger_app/internal/core/ports/services"
	"github.com/walletapp/wallet_ledger_app/internal/dto"
	"github.com/walletapp/wallet_ledger_app/internal/metrics"
)

// balanceService serves balance reads through a TTL cache. The ledger owns
// all balance writes; this service only reads and invalidates. Cache failures
// degrade to the authoritative store, never to an error.
type balanceService struct {
	BaseService
	accountRepo     portsrepo.AccountRepositoryFacade
	transactionRepo portsrepo.TransactionRepositoryFacade
	cache           portsrepo.BalanceCache
	cacheTTL        time.Duration
}

// NewBalanceService creates the balance read/invalidation service.
func NewBalanceService(
	accountRepo portsrepo.AccountRepositoryFacade,
	transactionRepo portsrepo.TransactionRepositoryFacade,
	cache portsrepo.BalanceCache,
	cacheTTL time.Duration,
) portssvc.BalanceSvcFacade {
	return &balanceService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		cache:           cache,
		cacheTTL:        cacheTTL,
	}
}

// Ensure balanceService implements the BalanceSvcFacade interface
var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

// GetCurrentBalance returns the user's balance, cached for the configured
// TTL. A hit is served entirely from the cache: the account store is only
// read on a miss, so a warm cache keeps balance reads off the store.
func (s *balanceService) GetCurrentBalance(ctx context.Context, userID string) (*dto.BalanceResponse, error) {
	entry, hit, err := s.cache.GetBalance(ctx, userID)
	if err != nil {
		s.LogWarn(ctx, "Balance cache read failed, serving from store",
			slog.String("user_id", userID), slog.Any("error", err))
		hit = false
	}
	if hit {
		metrics.BalanceCacheHits.Inc()
		return &dto.BalanceResponse{
			Balance:   entry.Amount,
			Currency:  entry.Currency,
			Timestamp: time.Now().UTC(),
		}, nil
	}

	metrics.BalanceCacheMisses.Inc()
	account, err := s.accountRepo.FindAccountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	fresh := portsrepo.CachedBalance{Amount: account.Balance, Currency: account.CurrencyCode}
	if err := s.cache.SetBalance(ctx, userID, fresh, s.cacheTTL); err != nil {
		s.LogWarn(ctx, "Balance cache write failed",
			slog.String("user_id", userID), slog.Any("error", err))
	}

	return &dto.BalanceResponse{
		Balance:   account.Balance,
		Currency:  account.CurrencyCode,
		Timestamp: time.Now().UTC(),
	}, nil
}

// GetBalanceDetails returns the full balance picture: the settled balance,
// pending credit/debit totals, and the spendable remainder. Always computed
// from the store; the cache only serves the plain balance read.
func (s *balanceService) GetBalanceDetails(ctx context.Context, userID string) (*dto.BalanceDetails, error) {
	account, err := s.accountRepo.FindAccountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	pending, err := s.transactionRepo.SumPendingByAccount(ctx, account.AccountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum pending transactions",
			slog.String("account_id", account.AccountID))
		return nil, err
	}

	return &dto.BalanceDetails{
		CurrentBalance:   account.Balance,
		AvailableBalance: account.Balance.Sub(pending.Debits),
		PendingCredits:   pending.Credits,
		PendingDebits:    pending.Debits,
		Currency:         account.CurrencyCode,
		Status:           string(account.Status),
	}, nil
}

// InvalidateBalance drops the user's cached balance. Best effort: the entry
// expires within the TTL anyway, so failures are logged and swallowed.
func (s *balanceService) InvalidateBalance(ctx context.Context, userID string) {
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		s.LogWarn(ctx, "Balance cache invalidation failed",
			slog.String("user_id", userID), slog.Any("error", err))
	}
}
