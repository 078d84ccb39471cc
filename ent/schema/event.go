package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity.
//
// Event is the authoritative, immutable audit trail. Every state
// transition in internal/statemachine writes exactly one Event row in
// the same transaction as the entity update. An Event without an
// item_id is an order-level event.
type Event struct {
	ent.Schema
}

// Mixin of the Event.
func (Event) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{}, // immutable once written
	}
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("order_id").
			NotEmpty().
			Immutable(),
		field.String("item_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("event").
			NotEmpty().
			Immutable(), // stable vocabulary, see internal/statemachine
		field.String("actor_type").
			Optional().
			Immutable(),
		field.String("actor_id").
			Optional().
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.JSON("diff", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.String("message").
			Optional().
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("order_id", "created_at"),
		index.Fields("item_id", "event"),
	}
}
