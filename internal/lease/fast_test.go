package lease

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestFastBackend(t *testing.T) *FastBackend {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewFastBackend(client)
}

func TestFastBackend_AcquireExclusive(t *testing.T) {
	b := newTestFastBackend(t)
	ctx := context.Background()

	ok, err := b.Acquire(ctx, "item-1", "agent-A", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = b.Acquire(ctx, "item-1", "agent-B", time.Minute)
	require.NoError(t, err)
	require.False(t, ok, "second acquire should fail while the lease is live")
}

func TestFastBackend_ExtendRequiresOwnership(t *testing.T) {
	b := newTestFastBackend(t)
	ctx := context.Background()

	_, err := b.Acquire(ctx, "item-1", "agent-A", time.Minute)
	require.NoError(t, err)

	ok, err := b.Extend(ctx, "item-1", "agent-B", time.Minute)
	require.NoError(t, err)
	require.False(t, ok, "non-owner extend must fail")

	ok, err = b.Extend(ctx, "item-1", "agent-A", 2*time.Minute)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestFastBackend_ReleaseRequiresOwnership(t *testing.T) {
	b := newTestFastBackend(t)
	ctx := context.Background()

	_, err := b.Acquire(ctx, "item-1", "agent-A", time.Minute)
	require.NoError(t, err)

	ok, err := b.Release(ctx, "item-1", "agent-B")
	require.NoError(t, err)
	require.False(t, ok, "non-owner release must fail")

	ok, err = b.Release(ctx, "item-1", "agent-A")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = b.Acquire(ctx, "item-1", "agent-B", time.Minute)
	require.NoError(t, err)
	require.True(t, ok, "key should be free after release")
}

func TestFastBackend_AcquireAfterExpiry(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	b := NewFastBackend(client)
	ctx := context.Background()

	ok, err := b.Acquire(ctx, "item-1", "agent-A", time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(2 * time.Second)

	ok, err = b.Acquire(ctx, "item-1", "agent-B", time.Minute)
	require.NoError(t, err)
	require.True(t, ok, "acquire should succeed once the TTL has elapsed")
}

func TestFastBackend_Reclaim_NoOp(t *testing.T) {
	b := newTestFastBackend(t)
	n, err := b.Reclaim(context.Background(), []string{"item-1"})
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestFastBackend_Kind(t *testing.T) {
	b := newTestFastBackend(t)
	require.Equal(t, KindFast, b.Kind())
}
