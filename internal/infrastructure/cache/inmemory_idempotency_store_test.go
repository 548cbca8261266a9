package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryIdempotencyStore_MarkProcessed(t *testing.T) {
	store := NewInMemoryIdempotencyStore(time.Hour)
	defer store.Close()
	ctx := context.Background()

	first, err := store.MarkProcessed(ctx, "evt_1", time.Hour)
	require.NoError(t, err)
	assert.True(t, first)

	second, err := store.MarkProcessed(ctx, "evt_1", time.Hour)
	require.NoError(t, err)
	assert.False(t, second)

	other, err := store.MarkProcessed(ctx, "evt_2", time.Hour)
	require.NoError(t, err)
	assert.True(t, other)
}

func TestInMemoryIdempotencyStore_Expiry(t *testing.T) {
	store := NewInMemoryIdempotencyStore(time.Hour)
	defer store.Close()
	ctx := context.Background()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	ok, err := store.MarkProcessed(ctx, "evt_1", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	now = now.Add(2 * time.Minute)

	store.sweep()
	assert.Equal(t, 0, store.Len())

	ok, err = store.MarkProcessed(ctx, "evt_1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestInMemoryIdempotencyStore_Forget(t *testing.T) {
	store := NewInMemoryIdempotencyStore(time.Hour)
	defer store.Close()
	ctx := context.Background()

	_, err := store.MarkProcessed(ctx, "evt_1", time.Hour)
	require.NoError(t, err)
	require.NoError(t, store.Forget(ctx, "evt_1"))
	require.NoError(t, store.Forget(ctx, "unknown"))

	ok, err := store.MarkProcessed(ctx, "evt_1", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestInMemoryIdempotencyStore_Concurrent(t *testing.T) {
	store := NewInMemoryIdempotencyStore(time.Hour)
	defer store.Close()

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := store.MarkProcessed(context.Background(), "evt_race", time.Hour)
			if err == nil && ok {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}

func TestInMemoryIdempotencyStore_CloseTwice(t *testing.T) {
	store := NewInMemoryIdempotencyStore(10 * time.Millisecond)
	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}
