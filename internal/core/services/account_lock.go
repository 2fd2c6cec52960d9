package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/walletapp/wallet_ledger_app/internal/apperrors"
)

// accountLocker serializes ledger mutations per account. At most one
// ApplyTransaction call is mid-flight for a given account; calls for other
// accounts proceed in parallel. There is no optimistic-retry path: lost
// updates are prevented by exclusion, and a caller that cannot get the lock
// in time receives ErrLockTimeout.
//
// Entries are reference counted so the map does not grow with the set of
// accounts ever seen, only with the set currently contended.
type accountLocker struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

type lockEntry struct {
	sem  chan struct{} // capacity 1; holding the token means holding the lock
	refs int
}

func newAccountLocker() *accountLocker {
	return &accountLocker{locks: make(map[string]*lockEntry)}
}

// Acquire blocks until the account's lock is free or ctx expires. On success
// it returns the release function; the caller must invoke it exactly once,
// after the atomic write commits or aborts.
func (l *accountLocker) Acquire(ctx context.Context, accountID string) (func(), error) {
	l.mu.Lock()
	entry, ok := l.locks[accountID]
	if !ok {
		entry = &lockEntry{sem: make(chan struct{}, 1)}
		l.locks[accountID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	select {
	case entry.sem <- struct{}{}:
		var once sync.Once
		return func() {
			once.Do(func() {
				<-entry.sem
				l.unref(accountID, entry)
			})
		}, nil
	case <-ctx.Done():
		l.unref(accountID, entry)
		return nil, fmt.Errorf("%w: account %s: %v", apperrors.ErrLockTimeout, accountID, ctx.Err())
	}
}

func (l *accountLocker) unref(accountID string, entry *lockEntry) {
	l.mu.Lock()
	entry.refs--
	if entry.refs == 0 {
		delete(l.locks, accountID)
	}
	l.mu.Unlock()
}
