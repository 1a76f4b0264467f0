package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SimilarityRecord is the append-only bookkeeping row behind the vector
// index: one row per accepted item, keyed by its similarity scope.
// Rows are removed only by the retention trim, which keeps the most
// recent N per (user, content_type).
type SimilarityRecord struct {
	ent.Schema
}

func (SimilarityRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("item_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("ContentItem ID; doubles as the vector document ID"),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.Int("week").
			Immutable(),
		field.String("content_type").
			NotEmpty().
			Immutable(),
		field.String("content_hash").
			NotEmpty().
			Immutable(),
		field.JSON("embedding", []float32{}).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (SimilarityRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "week", "content_type"),
		index.Fields("user_id", "content_type", "created_at"),
	}
}
