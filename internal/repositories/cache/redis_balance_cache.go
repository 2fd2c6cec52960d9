package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	portsrepo "github.com/walletapp/wallet_ledger_app/internal/core/ports/repositories"
)

// balanceKeyPrefix namespaces cached balances in the shared redis keyspace.
const balanceKeyPrefix = "balance:"

// RedisBalanceCache is the redis-backed BalanceCache adapter. Entries are
// stored as "amount|currency" strings; redis handles TTL expiry.
type RedisBalanceCache struct {
	client *redis.Client
}

// NewRedisBalanceCache creates a balance cache on an existing redis client.
func NewRedisBalanceCache(client *redis.Client) *RedisBalanceCache {
	return &RedisBalanceCache{client: client}
}

var _ portsrepo.BalanceCache = (*RedisBalanceCache)(nil)

func balanceKey(userID string) string {
	return balanceKeyPrefix + userID
}

// GetBalance returns the cached entry for an owner, or found=false on miss.
func (c *RedisBalanceCache) GetBalance(ctx context.Context, userID string) (portsrepo.CachedBalance, bool, error) {
	val, err := c.client.Get(ctx, balanceKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return portsrepo.CachedBalance{}, false, nil
		}
		return portsrepo.CachedBalance{}, false, fmt.Errorf("failed to read cached balance: %w", err)
	}

	parts := strings.SplitN(val, "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		// A corrupt entry is treated as a miss so the read-through path
		// repairs it from the authoritative store.
		return portsrepo.CachedBalance{}, false, nil
	}
	amount, err := decimal.NewFromString(parts[0])
	if err != nil {
		return portsrepo.CachedBalance{}, false, nil
	}
	return portsrepo.CachedBalance{Amount: amount, Currency: parts[1]}, true, nil
}

// SetBalance stores an entry with the given TTL.
func (c *RedisBalanceCache) SetBalance(ctx context.Context, userID string, entry portsrepo.CachedBalance, ttl time.Duration) error {
	val := entry.Amount.StringFixed(2) + "|" + entry.Currency
	if err := c.client.Set(ctx, balanceKey(userID), val, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache balance: %w", err)
	}
	return nil
}

// Invalidate removes any cached entry for the owner.
func (c *RedisBalanceCache) Invalidate(ctx context.Context, userID string) error {
	if err := c.client.Del(ctx, balanceKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached balance: %w", err)
	}
	return nil
}
