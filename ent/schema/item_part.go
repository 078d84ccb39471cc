package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ItemPart holds the schema definition for the ItemPart entity.
//
// ItemPart rows are append-only: a part is never mutated after insert,
// superseded instead by a later row with the same (item_id, part_key)
// and a larger seq. "Latest part per part_key" is the row with the
// largest created_at, ties broken by id — see internal/executor.
type ItemPart struct {
	ent.Schema
}

// Mixin of the ItemPart.
func (ItemPart) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{}, // append-only: created_at only
	}
}

// Fields of the ItemPart.
func (ItemPart) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("item_id").
			NotEmpty().
			Immutable(),
		field.String("part_key").
			NotEmpty().
			Immutable(),
		field.Int("seq").
			Immutable(),
		field.Enum("status").
			Values("draft", "validated", "rejected").
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.JSON("evidence", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.String("notes").
			Optional().
			Immutable(),
		field.JSON("errors", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.String("checksum").
			Optional().
			Immutable(), // content hash of payload
		field.String("submitted_by").
			Optional().
			Immutable(),
		field.String("idempotency_key_hash").
			Optional().
			Immutable(),
	}
}

// Indexes of the ItemPart.
func (ItemPart) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("item_id", "part_key", "seq").Unique(),
		index.Fields("item_id", "part_key", "created_at"),
	}
}
