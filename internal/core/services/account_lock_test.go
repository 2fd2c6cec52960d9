package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletapp/wallet_ledger_app/internal/apperrors"
)

func TestAccountLocker_SerializesSameAccount(t *testing.T) {
	locker := newAccountLocker()
	ctx := context.Background()

	var mu sync.Mutex
	running := 0
	maxRunning := 0

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := locker.Acquire(ctx, "acct-1")
			require.NoError(t, err)
			defer release()

			mu.Lock()
			running++
			if running > maxRunning {
				maxRunning = running
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			running--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxRunning, "critical section admitted more than one holder")
}

func TestAccountLocker_DistinctAccountsDoNotBlock(t *testing.T) {
	locker := newAccountLocker()
	ctx := context.Background()

	release1, err := locker.Acquire(ctx, "acct-1")
	require.NoError(t, err)
	defer release1()

	// acct-2 must be acquirable while acct-1 is held.
	ctx2, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	release2, err := locker.Acquire(ctx2, "acct-2")
	require.NoError(t, err)
	release2()
}

func TestAccountLocker_TimeoutWhileHeld(t *testing.T) {
	locker := newAccountLocker()

	release, err := locker.Acquire(context.Background(), "acct-1")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = locker.Acquire(ctx, "acct-1")
	require.ErrorIs(t, err, apperrors.ErrLockTimeout)

	// The holder releasing makes the lock available again.
	release()
	release2, err := locker.Acquire(context.Background(), "acct-1")
	require.NoError(t, err)
	release2()
}

func TestAccountLocker_ReleaseIsIdempotent(t *testing.T) {
	locker := newAccountLocker()

	release, err := locker.Acquire(context.Background(), "acct-1")
	require.NoError(t, err)
	release()
	release()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	release2, err := locker.Acquire(ctx, "acct-1")
	require.NoError(t, err)
	release2()
}

func TestAccountLocker_EntriesAreReclaimed(t *testing.T) {
	locker := newAccountLocker()

	release, err := locker.Acquire(context.Background(), "acct-1")
	require.NoError(t, err)
	release()

	locker.mu.Lock()
	defer locker.mu.Unlock()
	assert.Empty(t, locker.locks, "released locks should not accumulate")
}
