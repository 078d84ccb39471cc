package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Order holds the schema definition for the Order entity.
//
// An Order is a typed work contract: the unit of approval and apply.
// It is created in "queued" by the Allocator and moves through the
// state machine in internal/statemachine; workers never mutate it
// directly.
type Order struct {
	ent.Schema
}

// Mixin of the Order.
func (Order) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Order.
func (Order) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("type").
			NotEmpty().
			Immutable(), // registry key, see internal/registry
		field.Enum("state").
			Values(
				"queued", "checked_out", "in_progress", "submitted",
				"approved", "applied", "rejected", "failed",
				"completed", "dead_lettered",
			).
			Default("queued"),
		field.Int("priority").
			Default(0), // higher runs earlier
		field.JSON("payload", map[string]interface{}{}).
			Immutable(), // validated against type's schema() at propose time
		field.JSON("meta", map[string]interface{}{}).
			Optional(),
		field.String("requested_by_type").
			Optional(), // "user" | "agent" | "system"
		field.String("requested_by_id").
			Optional(),
		field.Time("applied_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("last_transitioned_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Order.
func (Order) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state", "type"),
		index.Fields("priority", "created_at"),
	}
}
