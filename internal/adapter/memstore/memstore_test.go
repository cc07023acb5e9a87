package memstore

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayanaadylkhanova/credit-claim/internal/service"
)

func TestReplayStore_ExpiresAfterTTL(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_700_000_000, 0)
	s := NewReplayStore()
	s.now = func() time.Time { return now }
	ctx := context.Background()

	fresh, _ := s.Remember(ctx, "k", time.Minute)
	assert.True(t, fresh)
	fresh, _ = s.Remember(ctx, "k", time.Minute)
	assert.False(t, fresh)

	now = now.Add(time.Minute)
	fresh, _ = s.Remember(ctx, "k", time.Minute)
	assert.True(t, fresh)
}

func TestReplayStore_SeenIsReadOnly(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_700_000_000, 0)
	s := NewReplayStore()
	s.now = func() time.Time { return now }
	ctx := context.Background()

	seen, err := s.Seen(ctx, "k")
	require.NoError(t, err)
	assert.False(t, seen)
	assert.Empty(t, s.seen)

	fresh, _ := s.Remember(ctx, "k", time.Minute)
	require.True(t, fresh)
	seen, _ = s.Seen(ctx, "k")
	assert.True(t, seen)

	now = now.Add(time.Minute)
	seen, _ = s.Seen(ctx, "k")
	assert.False(t, seen, "expired marker must not count")
}

func TestReplayStore_SweepsExpired(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_700_000_000, 0)
	s := NewReplayStore()
	s.now = func() time.Time { return now }

	_, _ = s.Remember(context.Background(), "a", time.Second)
	now = now.Add(time.Hour)
	_, _ = s.Remember(context.Background(), "b", time.Second)

	assert.Len(t, s.seen, 1)
}

func TestLocker_ConcurrentAcquireAdmitsOne(t *testing.T) {
	t.Parallel()

	l := NewLocker()
	var (
		wg       sync.WaitGroup
		admitted atomic.Int32
		busy     atomic.Int32
	)
	start := make(chan struct{})
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := l.Acquire(context.Background(), "w", time.Minute)
			switch {
			case err == nil:
				admitted.Add(1)
			case errors.Is(err, service.ErrClaimInProgress):
				busy.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), admitted.Load())
	assert.Equal(t, int32(15), busy.Load())
}

func TestLocker_ReleaseIsIdempotent(t *testing.T) {
	t.Parallel()

	l := NewLocker()
	ctx := context.Background()

	first, err := l.Acquire(ctx, "w", 0)
	require.NoError(t, err)
	first()

	second, err := l.Acquire(ctx, "w", 0)
	require.NoError(t, err)

	first()
	_, err = l.Acquire(ctx, "w", 0)
	assert.True(t, errors.Is(err, service.ErrClaimInProgress), "old release must not free the new holder")
	second()
}
