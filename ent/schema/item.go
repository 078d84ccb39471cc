package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Item holds the schema definition for the Item entity.
//
// An Item is a leasable sub-unit of an Order: the unit of worker
// assignment. It is created by a type's planner during Allocator.plan
// and cascade-deletes with its owning Order (deletion is performed by
// the repository layer, not an ent cascade edge, matching the
// repository convention of referencing rows by plain string id fields).
type Item struct {
	ent.Schema
}

// Mixin of the Item.
func (Item) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Item.
func (Item) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("order_id").
			NotEmpty().
			Immutable(),
		field.String("type").
			NotEmpty().
			Immutable(),
		field.Enum("state").
			Values(
				"queued", "leased", "in_progress", "submitted",
				"accepted", "rejected", "completed",
				"failed", "dead_lettered",
			).
			Default("queued"),
		field.JSON("input", map[string]interface{}{}).
			Optional(), // worker-visible, set at plan time
		field.JSON("result", map[string]interface{}{}).
			Optional(), // written on submit
		field.JSON("assembled_result", map[string]interface{}{}).
			Optional(), // written on finalize
		field.JSON("parts_required", []string{}).
			Optional(),
		field.JSON("parts_state", map[string]interface{}{}).
			Optional(), // latest part per key: {key: {status, seq, checksum}}
		field.Int("attempts").
			Default(0).
			Min(0),
		field.Int("max_attempts").
			Default(3).
			Min(1),
		field.String("leased_by").
			Optional().
			Nillable(),
		field.Time("lease_expires_at").
			Optional().
			Nillable(),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable(),
		field.Time("accepted_at").
			Optional().
			Nillable(),
		field.JSON("error", map[string]interface{}{}).
			Optional(),
	}
}

// Indexes of the Item.
func (Item) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state", "lease_expires_at"),
		index.Fields("order_id", "state"),
	}
}
