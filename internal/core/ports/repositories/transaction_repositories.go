package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/walletapp/wallet_ledger_app/internal/core/domain"
)

// TransactionFilters narrows a transaction history listing.
type TransactionFilters struct {
	Type     *domain.TransactionType
	Status   *domain.TransactionStatus
	DateFrom *time.Time
	DateTo   *time.Time
}

// PendingTotals carries the sums of pending transactions for one account.
type PendingTotals struct {
	Credits decimal.Decimal
	Debits  decimal.Decimal
}

// AccountJournalStats aggregates journal figures for one account.
type AccountJournalStats struct {
	TransactionCount  int64
	LargestCredit     decimal.Decimal
	LargestDebit      decimal.Decimal
	LastTransactionAt *time.Time
}

// TransactionReader defines read operations for the transaction journal.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindTransactionByReference retrieves a transaction by its idempotency
	// reference, or apperrors.ErrNotFound if the reference is unused.
	FindTransactionByReference(ctx context.Context, reference string) (*domain.Transaction, error)

	// SumPendingByAccount returns the pending credit and debit totals for an
	// account. The pending debit total feeds the available-balance check.
	SumPendingByAccount(ctx context.Context, accountID string) (PendingTotals, error)

	// SummarizeByAccount aggregates journal statistics for an account.
	SummarizeByAccount(ctx context.Context, accountID string) (AccountJournalStats, error)

	// ListTransactionsByAccount returns a page of transactions for an account,
	// newest first, honouring the filters. nextToken is an opaque cursor; a
	// nil return token means the listing is exhausted.
	ListTransactionsByAccount(ctx context.Context, accountID string, filters TransactionFilters, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines the journal's write operations.
type TransactionWriter interface {
	// SaveTransactionAndBalance persists the transaction record and the
	// account's updated balance / lastTransactionAt as one atomic unit:
	// either both land or neither does. A reference collision surfaces as
	// apperrors.ErrDuplicateReference with no state change.
	SaveTransactionAndBalance(ctx context.Context, txn domain.Transaction, newBalance decimal.Decimal) error

	// MarkTransactionReversed records the reversal linkage on the original
	// transaction. Metadata-only: no balance is touched.
	MarkTransactionReversed(ctx context.Context, transactionID string, reversalID string, now time.Time) error

	// ArchiveTransactions moves an account's transactions older than the
	// cutoff to ARCHIVED and reports how many rows changed.
	ArchiveTransactions(ctx context.Context, accountID string, olderThan time.Time) (int64, error)
}

// TransactionRepositoryFacade combines journal read and write operations.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
