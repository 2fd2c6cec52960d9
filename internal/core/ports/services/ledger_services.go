package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/walletapp/wallet_ledger_app/internal/core/domain"
	"github.com/walletapp/wallet_ledger_app/internal/dto"
)

// ApplyTransactionParams carries one mutation request into the ledger.
type ApplyTransactionParams struct {
	UserID      string
	Amount      decimal.Decimal
	Type        domain.TransactionType
	Description string
	Reference   string            // Optional idempotency key; generated when empty
	Metadata    map[string]string // Origin IP, user agent, ... supplied by the boundary
}

// LedgerSvcFacade is the core mutation surface: serialized, validated,
// atomic balance changes plus the time-windowed reversal built on top.
type LedgerSvcFacade interface {
	// ApplyTransaction validates and applies one credit or debit against the
	// caller's account, serialized per account. See apperrors for the error
	// taxonomy it surfaces.
	ApplyTransaction(ctx context.Context, params ApplyTransactionParams) (*domain.Transaction, error)

	// ReverseTransaction compensates a completed transaction younger than the
	// reversal window with an inverse transaction, then links the original to
	// the new one.
	ReverseTransaction(ctx context.Context, transactionID string, requesterID string) (*domain.Transaction, error)

	// GetTransaction returns one of the requester's transactions.
	GetTransaction(ctx context.Context, transactionID string, requesterID string) (*domain.Transaction, error)

	// ListTransactions returns a page of the requester's history.
	ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// ArchiveTransactions bulk-moves the requester's transactions older than
	// the cutoff to ARCHIVED. Housekeeping; never touches balances.
	ArchiveTransactions(ctx context.Context, userID string, olderThan time.Time) (int64, error)
}
