// Package idempotency implements the IdempotencyGuard contract:
// reserve (scope, key_hash), run an operation exactly once per key,
// and replay its stored response on retry.
//
// Import Path (ADR-0016): workorder.io/engine/internal/idempotency
package idempotency

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"workorder.io/engine/ent"
	"workorder.io/engine/ent/idempotencyrecord"
	"workorder.io/engine/internal/pkg/apperr"
)

// pollBackoff is the short, bounded wait-then-conflict schedule used
// when a concurrent caller is still executing the guarded operation.
// Three fixed steps, no jitter; a fixed wait this small needs no
// backoff library.
var pollBackoff = []time.Duration{10 * time.Millisecond, 30 * time.Millisecond, 90 * time.Millisecond}

// Operation is the work a guarded call performs. It receives the open
// reservation transaction so its mutations and the response snapshot
// commit together.
type Operation func(ctx context.Context, tx *ent.Tx) (map[string]interface{}, error)

// Guard implements IdempotencyGuard against an ent-backed store.
type Guard struct {
	client *ent.Client
	salt   []byte
}

// New builds a Guard. salt is mixed into every key hash so stored
// hashes are not a reversible function of the raw client key.
func New(client *ent.Client, salt []byte) *Guard {
	return &Guard{client: client, salt: salt}
}

// HashKey computes the salted key hash stored on IdempotencyRecord.
func (g *Guard) HashKey(clientKey string) string {
	mac := hmac.New(sha256.New, g.salt)
	mac.Write([]byte(clientKey))
	return hex.EncodeToString(mac.Sum(nil))
}

// Run executes op exactly once for (scope, clientKey). A replayed
// call returns the original response with replayed=true and never
// invokes op. Key scope is per-endpoint per-resource (e.g.
// "submit:item:<item_id>"), never global.
func (g *Guard) Run(ctx context.Context, scope, clientKey string, op Operation) (response map[string]interface{}, replayed bool, err error) {
	if clientKey == "" {
		return nil, false, apperr.ErrIdempotencyRequired(scope)
	}
	keyHash := g.HashKey(clientKey)

	resp, created, err := g.reserveAndRun(ctx, scope, keyHash, op)
	if err == nil {
		return resp, !created, nil
	}
	if !ent.IsConstraintError(err) {
		return nil, false, err
	}

	// Another caller already holds the reservation; wait for its
	// snapshot, then fall back to a conflict signal.
	return g.awaitSnapshot(ctx, scope, keyHash)
}

// reserveAndRun inserts the reservation row and, if it won the race,
// runs op and persists its snapshot in the same transaction.
func (g *Guard) reserveAndRun(ctx context.Context, scope, keyHash string, op Operation) (map[string]interface{}, bool, error) {
	tx, err := g.client.Tx(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("begin idempotency tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	rec, err := tx.IdempotencyRecord.Create().
		SetID(newID()).
		SetScope(scope).
		SetKeyHash(keyHash).
		Save(ctx)
	if err != nil {
		return nil, false, err
	}

	resp, err := op(ctx, tx)
	if err != nil {
		return nil, false, err
	}

	if _, err := tx.IdempotencyRecord.UpdateOne(rec).
		SetResponseSnapshot(resp).
		Save(ctx); err != nil {
		return nil, false, fmt.Errorf("persist idempotency snapshot for %s: %w", scope, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("commit idempotency tx: %w", err)
	}
	return resp, true, nil
}

// awaitSnapshot polls the existing reservation for its response
// snapshot, returning a cache hit as soon as one is written, or an
// idempotency-conflict error once pollBackoff is exhausted.
func (g *Guard) awaitSnapshot(ctx context.Context, scope, keyHash string) (map[string]interface{}, bool, error) {
	for _, wait := range pollBackoff {
		rec, err := g.client.IdempotencyRecord.Query().
			Where(
				idempotencyrecord.ScopeEQ(scope),
				idempotencyrecord.KeyHashEQ(keyHash),
			).
			Only(ctx)
		if err != nil {
			return nil, false, fmt.Errorf("query idempotency record for %s: %w", scope, err)
		}
		if rec.ResponseSnapshot != nil {
			return rec.ResponseSnapshot, true, nil
		}

		select {
		case <-ctx.Done():
			return nil, false, ctx.Err()
		case <-time.After(wait):
		}
	}
	return nil, false, apperr.ErrIdempotencyConflict(scope)
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
