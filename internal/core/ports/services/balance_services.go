package services

import (
	"context"

	"github.com/walletapp/wallet_ledger_app/internal/dto"
)

// BalanceReaderSvc is the bounded-staleness read path in front of the
// account store.
type BalanceReaderSvc interface {
	// GetCurrentBalance returns the owner's balance, served from cache when
	// a fresh entry exists. A reader may observe a value up to the cache TTL
	// old if the account was mutated by a path that bypasses invalidation.
	GetCurrentBalance(ctx context.Context, userID string) (*dto.BalanceResponse, error)

	// GetBalanceDetails returns the balance with pending totals and
	// availability, always computed from the authoritative store.
	GetBalanceDetails(ctx context.Context, userID string) (*dto.BalanceDetails, error)
}

// BalanceInvalidator is the slice of the balance service the ledger needs:
// dropping the cached value after a successful mutation.
type BalanceInvalidator interface {
	InvalidateBalance(ctx context.Context, userID string)
}

// BalanceSvcFacade combines the balance read path with invalidation.
type BalanceSvcFacade interface {
	BalanceReaderSvc
	BalanceInvalidator
}
