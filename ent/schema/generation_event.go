package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GenerationEvent records one attempt of the generation pipeline, success
// or not. One row per attempt, fire-and-forget from the loop's view.
type GenerationEvent struct {
	ent.Schema
}

func (GenerationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (GenerationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.Int("week"),
		field.String("content_type").
			NotEmpty(),
		field.Int("attempt").
			Min(1).
			Comment("1-based attempt number within the bounded loop"),
		field.String("prompt_fingerprint").
			Default("").
			Comment("Hash of the prompt sent, for correlating retries"),
		field.Text("raw_response").
			Default(""),
		field.Int64("latency_ms").
			Default(0),
		field.Bool("parse_ok").
			Default(false),
		field.Int("valid_count").
			Default(0).
			Comment("Structurally valid candidates in this attempt"),
		field.Int("duplicate_count").
			Default(0),
		field.Float("max_similarity").
			Default(0),
		field.JSON("rejection_reasons", []string{}).
			Optional(),
		field.Bool("success").
			Default(false),
	}
}

func (GenerationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "content_type"),
		index.Fields("success"),
	}
}
