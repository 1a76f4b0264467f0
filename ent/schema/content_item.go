package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ContentItem is a generated quiz question or flashcard accepted by the
// generation pipeline. Immutable once accepted, with a single exception:
// a flashcard may have consumed_at set once when the user flips it.
type ContentItem struct {
	ent.Schema
}

func (ContentItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("UUID assigned at acceptance"),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.Int("week").
			Min(1).
			Max(42).
			Immutable().
			Comment("Pregnancy week this content targets"),
		field.String("content_type").
			NotEmpty().
			Immutable().
			Comment("quiz or flashcard"),
		field.String("difficulty").
			Default("medium").
			Immutable(),
		field.Text("question").
			Default("").
			Immutable().
			Comment("Question text (quiz) — empty for flashcards"),
		field.JSON("options", []string{}).
			Optional().
			Immutable().
			Comment("Answer options (quiz)"),
		field.String("answer_key").
			Default("").
			Immutable().
			Comment("Correct option text (quiz). Never exposed to clients."),
		field.Text("explanation").
			Default("").
			Immutable(),
		field.Text("front").
			Default("").
			Immutable().
			Comment("Flashcard front — empty for quiz questions"),
		field.Text("back").
			Default("").
			Immutable(),
		field.JSON("embedding", []float32{}).
			Optional().
			Immutable().
			Comment("Vector used for duplicate detection"),
		field.String("content_hash").
			NotEmpty().
			Immutable(),
		field.Text("raw_response").
			Default("").
			Immutable().
			Comment("Raw generator output this item was parsed from"),
		field.JSON("context_ids", []string{}).
			Optional().
			Immutable().
			Comment("IDs of the context documents used in the prompt"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("consumed_at").
			Optional().
			Nillable().
			Comment("Set once when a flashcard is flipped"),
	}
}

func (ContentItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "week", "content_type"),
		index.Fields("content_hash"),
	}
}
