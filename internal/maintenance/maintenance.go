// Package maintenance implements the stateless periodic driver:
// reclaim expired leases, dead-letter stale failures,
// and report (never mutate) stale non-terminal orders.
//
// Import Path (ADR-0016): workorder.io/engine/internal/maintenance
package maintenance

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"workorder.io/engine/ent"
	"workorder.io/engine/ent/item"
	"workorder.io/engine/ent/order"
	"workorder.io/engine/internal/leaseservice"
	"workorder.io/engine/internal/pkg/logger"
	"workorder.io/engine/internal/statemachine"
)

// Actor aliases statemachine.Actor.
type Actor = statemachine.Actor

var systemActor = Actor{Type: "system", ID: "maintenance"}

// Config is the subset of internal/config's Maintenance section the
// driver needs.
type Config struct {
	DeadLetterAfter     time.Duration
	StaleOrderThreshold time.Duration
}

// Maintenance drives the three periodic operations over an ent client, the lease service, and the state machine.
type Maintenance struct {
	client  *ent.Client
	leases  *leaseservice.Service
	machine *statemachine.Machine
	cfg     Config
}

// New builds a Maintenance driver.
func New(client *ent.Client, leases *leaseservice.Service, machine *statemachine.Machine, cfg Config) *Maintenance {
	return &Maintenance{client: client, leases: leases, machine: machine, cfg: cfg}
}

// ReclaimExpired enumerates leases past their TTL and reclaims them,
// delegating to internal/leaseservice.
func (m *Maintenance) ReclaimExpired(ctx context.Context) (int, error) {
	n, err := m.leases.ReclaimExpired(ctx)
	if err != nil {
		return n, fmt.Errorf("reclaim expired leases: %w", err)
	}
	if n > 0 {
		logger.Info("reclaimed expired leases", zap.Int("count", n))
	}
	return n, nil
}

// DeadLetter transitions items and orders stuck in failed past the
// configured threshold to dead_lettered.
func (m *Maintenance) DeadLetter(ctx context.Context) (int, error) {
	cutoff := time.Now().UTC().Add(-m.cfg.DeadLetterAfter)
	count := 0

	items, err := m.client.Item.Query().
		Where(item.StateEQ(item.StateFailed), item.UpdatedAtLT(cutoff)).
		All(ctx)
	if err != nil {
		return count, fmt.Errorf("query stale failed items: %w", err)
	}
	for _, it := range items {
		if err := m.deadLetterItem(ctx, it); err != nil {
			return count, err
		}
		count++
	}

	orders, err := m.client.Order.Query().
		Where(order.StateEQ(order.StateFailed), order.LastTransitionedAtLT(cutoff)).
		All(ctx)
	if err != nil {
		return count, fmt.Errorf("query stale failed orders: %w", err)
	}
	for _, o := range orders {
		if err := m.deadLetterOrder(ctx, o); err != nil {
			return count, err
		}
		count++
	}

	if count > 0 {
		logger.Info("dead-lettered stale failures", zap.Int("count", count))
	}
	return count, nil
}

func (m *Maintenance) deadLetterItem(ctx context.Context, it *ent.Item) error {
	tx, err := m.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin dead-letter tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := m.machine.Transition(ctx, tx, statemachine.TransitionInput{
		Entity:  statemachine.EntityItem,
		ID:      it.ID,
		From:    string(it.State),
		To:      "dead_lettered",
		Event:   "dead-lettered",
		Actor:   systemActor,
		OrderID: it.OrderID,
	}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit dead-letter item %s: %w", it.ID, err)
	}
	return nil
}

func (m *Maintenance) deadLetterOrder(ctx context.Context, o *ent.Order) error {
	tx, err := m.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin dead-letter tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := m.machine.Transition(ctx, tx, statemachine.TransitionInput{
		Entity: statemachine.EntityOrder,
		ID:     o.ID,
		From:   string(o.State),
		To:     "dead_lettered",
		Event:  "dead-lettered",
		Actor:  systemActor,
	}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit dead-letter order %s: %w", o.ID, err)
	}
	return nil
}

// StaleOrders reports, but never mutates, non-terminal orders older
// than the configured threshold.
// Reporting is a log line only: "stale" is not part of the stable
// event vocabulary, and this operation by definition must not write
// a state transition.
func (m *Maintenance) StaleOrders(ctx context.Context) ([]*ent.Order, error) {
	cutoff := time.Now().UTC().Add(-m.cfg.StaleOrderThreshold)
	orders, err := m.client.Order.Query().
		Where(
			order.CreatedAtLT(cutoff),
			order.StateNotIn(order.StateCompleted, order.StateDeadLettered),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query stale orders: %w", err)
	}

	for _, o := range orders {
		logger.Warn("stale non-terminal order detected",
			zap.String("order_id", o.ID),
			zap.String("state", string(o.State)),
			zap.Time("created_at", o.CreatedAt),
		)
	}
	return orders, nil
}
