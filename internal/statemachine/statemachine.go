// Package statemachine enforces the two order/item automata and
// writes the append-only Event trail.
//
// ADR-0012: every transition writes the entity row and its Event row
// in one ent transaction — callers never see a state change without
// its audit event, or an event without the matching state change.
//
// Import Path (ADR-0016): workorder.io/engine/internal/statemachine
package statemachine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"workorder.io/engine/ent"
	"workorder.io/engine/ent/item"
	"workorder.io/engine/ent/order"
	"workorder.io/engine/internal/pkg/apperr"
)

// Entity identifies which automaton a transition applies to.
type Entity string

const (
	EntityOrder Entity = "order"
	EntityItem  Entity = "item"
)

// Table is a declarative transition table: current state → set of
// permitted next states. Treated as configuration data; it holds no
// business logic beyond edge legality.
type Table map[string][]string

// DefaultOrderTransitions is the order automaton.
var DefaultOrderTransitions = Table{
	"queued":        {"checked_out", "submitted", "rejected", "failed"},
	"checked_out":   {"in_progress", "queued", "failed"},
	"in_progress":   {"submitted", "failed", "queued"},
	"submitted":     {"approved", "rejected", "failed"},
	"approved":      {"applied", "failed"},
	"applied":       {"completed", "failed"},
	"rejected":      {"queued", "dead_lettered"},
	"failed":        {"queued", "dead_lettered"},
	"completed":     {},
	"dead_lettered": {},
}

// DefaultItemTransitions is the item automaton.
var DefaultItemTransitions = Table{
	"queued":        {"leased", "failed"},
	"leased":        {"in_progress", "queued", "failed"},
	"in_progress":   {"submitted", "failed", "queued"},
	"submitted":     {"accepted", "rejected", "failed"},
	"accepted":      {"completed"},
	"rejected":      {"queued", "failed"},
	"completed":     {},
	"failed":        {"queued", "dead_lettered"},
	"dead_lettered": {},
}

// Allowed reports whether from → to is a legal edge in t.
func (t Table) Allowed(from, to string) bool {
	for _, next := range t[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Actor identifies who caused a transition, for audit only — never
// for authorization.
type Actor struct {
	Type string // "user" | "agent" | "system"
	ID   string
}

// Machine applies the order and item automata against an ent client,
// appending one Event row per mutation.
type Machine struct {
	client     *ent.Client
	orderTable Table
	itemTable  Table
}

// New builds a Machine. Passing nil tables falls back to the
// defaults above.
func New(client *ent.Client, orderTable, itemTable Table) *Machine {
	if orderTable == nil {
		orderTable = DefaultOrderTransitions
	}
	if itemTable == nil {
		itemTable = DefaultItemTransitions
	}
	return &Machine{client: client, orderTable: orderTable, itemTable: itemTable}
}

func (m *Machine) tableFor(entity Entity) Table {
	if entity == EntityItem {
		return m.itemTable
	}
	return m.orderTable
}

// TransitionInput carries the optional attachments a transition may
// record on the Event row.
type TransitionInput struct {
	Entity Entity
	ID     string
	From   string
	To     string
	Event  string // stable event name; defaults to To if empty
	Actor  Actor
	// OrderID is required when Entity is EntityItem: item events are
	// still indexed by (order_id, created_at) for order-level audit
	// queries.
	OrderID string
	Payload map[string]interface{}
	Diff    map[string]interface{}
	Message string
}

// Transition validates From → To against the entity's table and, if
// legal, writes the entity row and its Event in a single ent
// transaction. tx is the caller's open transaction; Transition never
// begins or commits one itself so callers can compose it with other
// writes (ADR-0012).
func (m *Machine) Transition(ctx context.Context, tx *ent.Tx, in TransitionInput) error {
	table := m.tableFor(in.Entity)
	if !table.Allowed(in.From, in.To) {
		return apperr.ErrIllegalTransition(string(in.Entity), in.From, in.To)
	}

	now := time.Now().UTC()
	eventName := in.Event
	if eventName == "" {
		eventName = in.To
	}

	switch in.Entity {
	case EntityOrder:
		upd := tx.Order.UpdateOneID(in.ID).
			SetState(order.State(in.To)).
			SetLastTransitionedAt(now)
		switch in.To {
		case "applied":
			upd = upd.SetAppliedAt(now)
		case "completed":
			upd = upd.SetCompletedAt(now)
		}
		if _, err := upd.Save(ctx); err != nil {
			return fmt.Errorf("update order %s: %w", in.ID, err)
		}
	case EntityItem:
		upd := tx.Item.UpdateOneID(in.ID).SetState(item.State(in.To))
		if in.To == "accepted" {
			upd = upd.SetAcceptedAt(now)
		}
		if _, err := upd.Save(ctx); err != nil {
			return fmt.Errorf("update item %s: %w", in.ID, err)
		}
	default:
		return fmt.Errorf("statemachine: unknown entity %q", in.Entity)
	}

	if err := m.appendEvent(ctx, tx, in, eventName); err != nil {
		return err
	}
	return nil
}

// RecordEvent appends an Event row without touching entity state —
// used for heartbeats and other events that record no state change.
func (m *Machine) RecordEvent(ctx context.Context, tx *ent.Tx, in TransitionInput) error {
	return m.appendEvent(ctx, tx, in, in.Event)
}

func (m *Machine) appendEvent(ctx context.Context, tx *ent.Tx, in TransitionInput, eventName string) error {
	create := tx.Event.Create().
		SetID(newID()).
		SetEvent(eventName).
		SetActorType(in.Actor.Type).
		SetActorID(in.Actor.ID)

	switch in.Entity {
	case EntityOrder:
		create = create.SetOrderID(in.ID)
	case EntityItem:
		create = create.SetOrderID(in.OrderID).SetItemID(in.ID)
	}
	if in.Payload != nil {
		create = create.SetPayload(in.Payload)
	}
	if in.Diff != nil {
		create = create.SetDiff(in.Diff)
	}
	if in.Message != "" {
		create = create.SetMessage(in.Message)
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("append event %s for %s %s: %w", eventName, in.Entity, in.ID, err)
	}
	return nil
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
