package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CachedBalance is the cache entry for an owner's balance. It carries the
// currency so a cache hit can be served without consulting the account
// store at all.
type CachedBalance struct {
	Amount   decimal.Decimal
	Currency string
}

// BalanceCache is the injected cache collaborator in front of the account
// store. Implementations must make Get/Set/Invalidate safe for concurrent
// use; reads never take the per-account mutation lock.
type BalanceCache interface {
	// GetBalance returns the cached entry for an owner. The second return
	// is false on a miss (including TTL expiry).
	GetBalance(ctx context.Context, userID string) (CachedBalance, bool, error)

	// SetBalance stores an entry with the given TTL.
	SetBalance(ctx context.Context, userID string, entry CachedBalance, ttl time.Duration) error

	// Invalidate removes any cached entry for the owner.
	Invalidate(ctx context.Context, userID string) error
}
