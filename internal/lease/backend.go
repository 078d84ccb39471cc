// Package lease implements the LeaseBackend contract:
// mutual-exclusion ownership over an item key with a TTL, backed by
// either the durable store (ent row lock) or a fast key/value store.
//
// Import Path (ADR-0016): workorder.io/engine/internal/lease
package lease

import (
	"context"
	"time"
)

// Backend is the abstract lease operation set every implementation
// must provide. Both acquire and extend/release must be atomic
// against concurrent callers — a compare-and-swap on owner, or a
// row-level lock.
type Backend interface {
	// Acquire succeeds iff no live lease exists for key. On success
	// the key is held by owner until ttl elapses.
	Acquire(ctx context.Context, key, owner string, ttl time.Duration) (bool, error)

	// Extend succeeds iff key is currently held by owner; it resets
	// the expiration to now+ttl.
	Extend(ctx context.Context, key, owner string, ttl time.Duration) (bool, error)

	// Release succeeds iff key is held by owner; it removes the lease.
	Release(ctx context.Context, key, owner string) (bool, error)

	// Reclaim removes listed keys whose leases have expired, for
	// stores that do not self-expire. Self-expiring stores treat this
	// as a no-op and return 0.
	Reclaim(ctx context.Context, expiredKeys []string) (int, error)

	// Kind identifies which backend variant is in use.
	Kind() string
}

const (
	KindDurable = "durable"
	KindFast    = "fast"
)
