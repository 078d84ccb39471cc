package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// IdempotencyRecord holds the schema definition for the IdempotencyRecord
// entity.
//
// A record reserves (scope, key_hash) before its handler runs and is
// filled in with response_snapshot exactly once. It has no updated_at:
// once response_snapshot is non-nil it is never overwritten, only read
// back by internal/idempotency.Guard. Mixin-free on purpose, unlike
// the rest of the schema package.
type IdempotencyRecord struct {
	ent.Schema
}

// Fields of the IdempotencyRecord.
func (IdempotencyRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("scope").
			NotEmpty().
			Immutable(), // e.g. "order.propose", "item.submit_part"
		field.String("key_hash").
			NotEmpty().
			Immutable(), // salted hash of the caller-supplied key
		field.JSON("response_snapshot", map[string]interface{}{}).
			Optional(), // nil while the original request is in flight
		field.Time("created_at").
			Immutable().
			Default(time.Now),
	}
}

// Indexes of the IdempotencyRecord.
func (IdempotencyRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("scope", "key_hash").Unique(),
	}
}
