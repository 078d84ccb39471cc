package lease

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// extendScript resets a key's TTL only if it is still owned by the
// caller — a compare-and-swap over GET+EXPIRE that a plain command
// pair cannot give atomically.
var extendScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
else
	return 0
end
`)

// releaseScript deletes a key only if it is still owned by the caller.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
else
	return 0
end
`)

// FastBackend implements Backend against a Redis-compatible store
// using SET NX PX for acquisition and CAS Lua scripts for extend and
// release. Native TTL keeps acquisition in the low-millisecond range; the Item row is still updated by internal/leaseservice
// for observability, but authority lives here.
type FastBackend struct {
	rdb    redis.Cmdable
	prefix string
}

// NewFastBackend builds a FastBackend over any redis.Cmdable (a real
// client or a miniredis-backed one in tests).
func NewFastBackend(rdb redis.Cmdable) *FastBackend {
	return &FastBackend{rdb: rdb, prefix: "workorder:lease:"}
}

func (b *FastBackend) Kind() string { return KindFast }

func (b *FastBackend) redisKey(key string) string {
	return b.prefix + key
}

// Acquire sets the key only if absent (NX), with a PX millisecond TTL.
func (b *FastBackend) Acquire(ctx context.Context, key, owner string, ttl time.Duration) (bool, error) {
	ok, err := b.rdb.SetNX(ctx, b.redisKey(key), owner, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquire lease for %s: %w", key, err)
	}
	return ok, nil
}

// Extend resets the TTL iff owner still holds key.
func (b *FastBackend) Extend(ctx context.Context, key, owner string, ttl time.Duration) (bool, error) {
	res, err := extendScript.Run(ctx, b.rdb, []string{b.redisKey(key)}, owner, ttl.Milliseconds()).Int()
	if err != nil {
		return false, fmt.Errorf("extend lease for %s: %w", key, err)
	}
	return res == 1, nil
}

// Release deletes key iff owner still holds it.
func (b *FastBackend) Release(ctx context.Context, key, owner string) (bool, error) {
	res, err := releaseScript.Run(ctx, b.rdb, []string{b.redisKey(key)}, owner).Int()
	if err != nil {
		return false, fmt.Errorf("release lease for %s: %w", key, err)
	}
	return res == 1, nil
}

// Reclaim is a no-op: Redis self-expires keys via their TTL.
func (b *FastBackend) Reclaim(ctx context.Context, expiredKeys []string) (int, error) {
	return 0, nil
}
