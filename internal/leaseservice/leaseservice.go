// Package leaseservice exposes the leasing surface atop
// internal/lease (ownership) and internal/statemachine (state):
// checkout, heartbeat, release, reclaim.
//
// Import Path (ADR-0016): workorder.io/engine/internal/leaseservice
package leaseservice

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"workorder.io/engine/ent"
	"workorder.io/engine/ent/item"
	"workorder.io/engine/ent/order"
	"workorder.io/engine/internal/lease"
	"workorder.io/engine/internal/pkg/apperr"
	"workorder.io/engine/internal/statemachine"
)

// Actor aliases statemachine.Actor.
type Actor = statemachine.Actor

// CheckoutPredicate is an optional closed predicate over an order, for
// tenant/domain scoping that a plain filter field can't express. A nil
// predicate admits every order.
type CheckoutPredicate func(*ent.Order) bool

// CheckoutFilters narrows the checkout candidate pool.
type CheckoutFilters struct {
	OrderID     string
	Type        string
	MinPriority int
	Predicate   CheckoutPredicate
}

// Config is the subset of internal/config's Lease/Retry sections the
// service needs, passed in rather than imported to keep this package
// decoupled from viper.
type Config struct {
	TTL               time.Duration
	MaxLeasesPerAgent int
	MaxLeasesPerType  int
	RetryBackoff      time.Duration
	RetryJitter       time.Duration
}

// Service coordinates leasing over an ent client, a lease.Backend
// and a statemachine.Machine.
type Service struct {
	client  *ent.Client
	backend lease.Backend
	machine *statemachine.Machine
	cfg     Config
}

// New builds a Service.
func New(client *ent.Client, backend lease.Backend, machine *statemachine.Machine, cfg Config) *Service {
	return &Service{client: client, backend: backend, machine: machine, cfg: cfg}
}

// Checkout selects the highest-priority eligible item, acquires its
// lease, and transitions it queued → leased. Also rolls the owning
// order queued → checked_out on its first item checkout.
func (s *Service) Checkout(ctx context.Context, agentID string, filters CheckoutFilters) (*ent.Item, error) {
	if err := s.checkAgentCap(ctx, agentID); err != nil {
		return nil, err
	}

	candidates, err := s.candidates(ctx, filters)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, apperr.ErrNoItemsAvailable()
	}

	expiresAt := time.Now().UTC().Add(s.cfg.TTL)
	actor := Actor{Type: "agent", ID: agentID}

	for _, cand := range candidates {
		exceeded, err := s.typeCapExceeded(ctx, agentID, cand.Type)
		if err != nil {
			return nil, err
		}
		if exceeded {
			continue
		}

		acquired, err := s.backend.Acquire(ctx, cand.ID, agentID, s.cfg.TTL)
		if err != nil {
			return nil, fmt.Errorf("acquire lease for item %s: %w", cand.ID, err)
		}
		if !acquired {
			continue // lost the race to another agent
		}

		it, err := s.commitCheckout(ctx, cand.ID, agentID, expiresAt, actor)
		if err != nil {
			_, _ = s.backend.Release(ctx, cand.ID, agentID)
			continue
		}
		return it, nil
	}
	return nil, apperr.ErrNoItemsAvailable()
}

// candidates returns queued, unleased-or-expired items matching
// filters, joined against their order for priority/predicate
// filtering (Item and Order reference each other by id, not edges),
// ordered by priority DESC, item.created_at ASC, id ASC.
func (s *Service) candidates(ctx context.Context, filters CheckoutFilters) ([]*ent.Item, error) {
	now := time.Now().UTC()

	query := s.client.Item.Query().Where(
		item.StateEQ(item.StateQueued),
		item.Or(item.LeasedByIsNil(), item.LeaseExpiresAtLT(now)),
	)
	if filters.OrderID != "" {
		query = query.Where(item.OrderID(filters.OrderID))
	}
	if filters.Type != "" {
		query = query.Where(item.TypeEQ(filters.Type))
	}

	items, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query checkout candidates: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}

	items = s.filterRetryBackoff(items)
	if len(items) == 0 {
		return nil, nil
	}

	orderIDs := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if !seen[it.OrderID] {
			seen[it.OrderID] = true
			orderIDs = append(orderIDs, it.OrderID)
		}
	}
	// An order stays checkout-eligible after its first item is taken
	// (queued → checked_out → in_progress); only its still-queued
	// items are candidates.
	orders, err := s.client.Order.Query().
		Where(
			order.IDIn(orderIDs...),
			order.StateIn(order.StateQueued, order.StateCheckedOut, order.StateInProgress),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query orders for checkout candidates: %w", err)
	}
	byID := make(map[string]*ent.Order, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
	}

	out := make([]*ent.Item, 0, len(items))
	priority := make(map[string]int, len(items))
	for _, it := range items {
		o, ok := byID[it.OrderID]
		if !ok {
			continue // owning order no longer eligible
		}
		if o.Priority < filters.MinPriority {
			continue
		}
		if filters.Predicate != nil && !filters.Predicate(o) {
			continue
		}
		out = append(out, it)
		priority[it.ID] = o.Priority
	}

	sort.Slice(out, func(i, j int) bool {
		if priority[out[i].ID] != priority[out[j].ID] {
			return priority[out[i].ID] > priority[out[j].ID]
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// filterRetryBackoff drops items that failed a previous attempt and
// have not yet cleared backoff_seconds + uniform_jitter(0..jitter)
// since their last transition. Item has no dedicated
// last_transitioned_at column; updated_at is bumped by every
// Transition save and serves the same purpose here.
func (s *Service) filterRetryBackoff(items []*ent.Item) []*ent.Item {
	if s.cfg.RetryBackoff <= 0 {
		return items
	}
	now := time.Now().UTC()
	out := items[:0]
	for _, it := range items {
		if it.Attempts == 0 {
			out = append(out, it)
			continue
		}
		jitter := time.Duration(0)
		if s.cfg.RetryJitter > 0 {
			jitter = time.Duration(rand.Int63n(int64(s.cfg.RetryJitter) + 1))
		}
		if now.Sub(it.UpdatedAt) >= s.cfg.RetryBackoff+jitter {
			out = append(out, it)
		}
	}
	return out
}

func (s *Service) commitCheckout(ctx context.Context, itemID, agentID string, expiresAt time.Time, actor Actor) (*ent.Item, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin checkout tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	it, err := tx.Item.Get(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item %s: %w", itemID, err)
	}
	if string(it.State) != "queued" {
		return nil, fmt.Errorf("item %s no longer queued", itemID)
	}

	now := time.Now().UTC()
	if _, err := tx.Item.UpdateOneID(itemID).
		SetLeasedBy(agentID).
		SetLeaseExpiresAt(expiresAt).
		SetLastHeartbeatAt(now).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("stamp lease fields for item %s: %w", itemID, err)
	}

	if err := s.machine.Transition(ctx, tx, statemachine.TransitionInput{
		Entity:  statemachine.EntityItem,
		ID:      itemID,
		From:    "queued",
		To:      "leased",
		Event:   "leased",
		Actor:   actor,
		OrderID: it.OrderID,
	}); err != nil {
		return nil, err
	}

	if err := s.rollupOrderCheckout(ctx, tx, it.OrderID, actor); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit checkout tx: %w", err)
	}
	return s.client.Item.Get(ctx, itemID)
}

// rollupOrderCheckout transitions the order queued → checked_out on
// its first item checkout; a no-op once already past queued.
func (s *Service) rollupOrderCheckout(ctx context.Context, tx *ent.Tx, orderID string, actor Actor) error {
	o, err := tx.Order.Get(ctx, orderID)
	if err != nil {
		return fmt.Errorf("get order %s: %w", orderID, err)
	}
	if o.State != "queued" {
		return nil
	}
	return s.machine.Transition(ctx, tx, statemachine.TransitionInput{
		Entity: statemachine.EntityOrder,
		ID:     orderID,
		From:   string(o.State),
		To:     "checked_out",
		Event:  "checked-out",
		Actor:  actor,
	})
}

// Heartbeat extends the lease and
// record a non-transitioning heartbeat event.
func (s *Service) Heartbeat(ctx context.Context, itemID, agentID string) (time.Time, error) {
	it, err := s.client.Item.Get(ctx, itemID)
	if err != nil {
		return time.Time{}, fmt.Errorf("get item %s: %w", itemID, err)
	}
	if it.LeasedBy == nil || *it.LeasedBy != agentID {
		holder := ""
		if it.LeasedBy != nil {
			holder = *it.LeasedBy
		}
		return time.Time{}, apperr.ErrLeaseNotHolder(holder, agentID)
	}
	if it.LeaseExpiresAt == nil || it.LeaseExpiresAt.Before(time.Now().UTC()) {
		expiredAt := ""
		if it.LeaseExpiresAt != nil {
			expiredAt = it.LeaseExpiresAt.UTC().Format(time.RFC3339)
		}
		return time.Time{}, apperr.ErrLeaseExpired(expiredAt)
	}

	newExpiry := time.Now().UTC().Add(s.cfg.TTL)
	extended, err := s.backend.Extend(ctx, itemID, agentID, s.cfg.TTL)
	if err != nil {
		return time.Time{}, fmt.Errorf("extend lease for item %s: %w", itemID, err)
	}
	if !extended {
		return time.Time{}, apperr.ErrLeaseNotHolder(*it.LeasedBy, agentID)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("begin heartbeat tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	if _, err := tx.Item.UpdateOneID(itemID).
		SetLeaseExpiresAt(newExpiry).
		SetLastHeartbeatAt(now).
		Save(ctx); err != nil {
		return time.Time{}, fmt.Errorf("update heartbeat fields for item %s: %w", itemID, err)
	}
	if err := s.machine.RecordEvent(ctx, tx, statemachine.TransitionInput{
		Entity:  statemachine.EntityItem,
		ID:      itemID,
		Event:   "heartbeat",
		Actor:   Actor{Type: "agent", ID: agentID},
		OrderID: it.OrderID,
	}); err != nil {
		return time.Time{}, err
	}
	if err := tx.Commit(); err != nil {
		return time.Time{}, fmt.Errorf("commit heartbeat tx: %w", err)
	}
	return newExpiry, nil
}

// Release gives the lease back and
// transition leased|in_progress → queued.
func (s *Service) Release(ctx context.Context, itemID, agentID string) (*ent.Item, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin release tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	it, err := tx.Item.Get(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item %s: %w", itemID, err)
	}
	if it.LeasedBy == nil || *it.LeasedBy != agentID {
		holder := ""
		if it.LeasedBy != nil {
			holder = *it.LeasedBy
		}
		return nil, apperr.ErrLeaseNotHolder(holder, agentID)
	}

	if _, err := s.backend.Release(ctx, itemID, agentID); err != nil {
		return nil, fmt.Errorf("release lease for item %s: %w", itemID, err)
	}

	actor := Actor{Type: "agent", ID: agentID}
	if err := s.machine.Transition(ctx, tx, statemachine.TransitionInput{
		Entity:  statemachine.EntityItem,
		ID:      itemID,
		From:    string(it.State),
		To:      "queued",
		Event:   "released",
		Actor:   actor,
		OrderID: it.OrderID,
	}); err != nil {
		return nil, err
	}
	if _, err := tx.Item.UpdateOneID(itemID).
		ClearLeasedBy().
		ClearLeaseExpiresAt().
		ClearLastHeartbeatAt().
		Save(ctx); err != nil {
		return nil, fmt.Errorf("clear lease fields for item %s: %w", itemID, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit release tx: %w", err)
	}
	return s.client.Item.Get(ctx, itemID)
}

// ReclaimExpired sweeps leases past their TTL: the only
// path that mutates item ownership without caller consent. Returns
// the number of items reclaimed.
//
// Only leased|in_progress items are reclaimable: submit/finalize and
// the accept→complete cascade leave the stale lease fields on the row
// for audit, and re-queueing an item that already submitted is not a
// legal transition.
func (s *Service) ReclaimExpired(ctx context.Context) (int, error) {
	now := time.Now().UTC()
	expired, err := s.client.Item.Query().
		Where(
			item.StateIn(item.StateLeased, item.StateInProgress),
			item.LeaseExpiresAtLT(now),
			item.LeasedByNotNil(),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query expired leases: %w", err)
	}

	actor := Actor{Type: "system", ID: "maintenance"}
	reclaimed := 0
	for _, it := range expired {
		if err := s.reclaimOne(ctx, it, actor); err != nil {
			return reclaimed, err
		}
		reclaimed++
	}

	keys := make([]string, 0, len(expired))
	for _, it := range expired {
		keys = append(keys, it.ID)
	}
	if _, err := s.backend.Reclaim(ctx, keys); err != nil {
		return reclaimed, fmt.Errorf("backend reclaim: %w", err)
	}
	return reclaimed, nil
}

func (s *Service) reclaimOne(ctx context.Context, it *ent.Item, actor Actor) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin reclaim tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	attempts := it.Attempts + 1
	to := "queued"
	if attempts >= it.MaxAttempts {
		to = "failed"
	}

	if _, err := tx.Item.UpdateOneID(it.ID).
		SetAttempts(attempts).
		ClearLeasedBy().
		ClearLeaseExpiresAt().
		ClearLastHeartbeatAt().
		Save(ctx); err != nil {
		return fmt.Errorf("clear expired lease for item %s: %w", it.ID, err)
	}

	if err := s.machine.Transition(ctx, tx, statemachine.TransitionInput{
		Entity:  statemachine.EntityItem,
		ID:      it.ID,
		From:    string(it.State),
		To:      to,
		Event:   "lease-expired",
		Actor:   actor,
		OrderID: it.OrderID,
	}); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Service) checkAgentCap(ctx context.Context, agentID string) error {
	if s.cfg.MaxLeasesPerAgent <= 0 {
		return nil
	}
	n, err := s.client.Item.Query().
		Where(item.LeasedByEQ(agentID), item.StateIn(item.StateLeased, item.StateInProgress)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("count leases for agent %s: %w", agentID, err)
	}
	if n >= s.cfg.MaxLeasesPerAgent {
		return apperr.ErrLeaseConflict(agentID, "")
	}
	return nil
}

func (s *Service) typeCapExceeded(ctx context.Context, agentID, itemType string) (bool, error) {
	if s.cfg.MaxLeasesPerType <= 0 {
		return false, nil
	}
	n, err := s.client.Item.Query().
		Where(
			item.LeasedByEQ(agentID),
			item.TypeEQ(itemType),
			item.StateIn(item.StateLeased, item.StateInProgress),
		).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count type leases for agent %s: %w", agentID, err)
	}
	return n >= s.cfg.MaxLeasesPerType, nil
}
