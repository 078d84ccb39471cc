package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Provenance holds the schema definition for the Provenance entity.
//
// Provenance captures metadata about the agent, request fingerprint,
// and client idempotency key associated with an operation. It is
// written alongside the IdempotencyGuard reservation, not as a
// replacement for it.
type Provenance struct {
	ent.Schema
}

// Mixin of the Provenance.
func (Provenance) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the Provenance.
func (Provenance) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("order_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("item_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("idempotency_key").
			Optional().
			Nillable().
			Immutable(),
		field.String("agent_name").
			Optional().
			Immutable(),
		field.String("agent_version").
			Optional().
			Immutable(),
		field.String("request_fingerprint").
			Optional().
			Immutable(),
		field.JSON("extra", map[string]interface{}{}).
			Optional().
			Immutable(),
	}
}

// Indexes of the Provenance.
func (Provenance) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("idempotency_key").
			Unique(),
		index.Fields("order_id"),
		index.Fields("item_id"),
	}
}
