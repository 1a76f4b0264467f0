package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionQuestion is the serialized form of one question inside a session
// snapshot. The answer key lives here server-side only; outward-facing
// views strip it.
type SessionQuestion struct {
	ID           string   `json:"id"`
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	AnswerKey    string   `json:"answer_key"`
	RetryOf      string   `json:"retry_of,omitempty"`
	RetrySpawned bool     `json:"retry_spawned,omitempty"`
}

// QuizSession is one interactive quiz session. The question snapshot is
// frozen at start and grows only by retry insertion; attempts live in
// their own append-only table.
type QuizSession struct {
	ent.Schema
}

func (QuizSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("Session UUID"),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.Int("week").
			Min(1).
			Max(42).
			Immutable(),
		field.String("difficulty").
			Default("medium").
			Immutable(),
		field.String("status").
			Default("started").
			Comment("started, in_progress, completed, timed_out"),
		field.JSON("questions", []SessionQuestion{}).
			Comment("Frozen snapshot; append-only via retry insertion"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("timeout_at").
			Immutable().
			Comment("Absolute deadline; checked lazily on every operation"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("score").
			Default(0),
		field.Int("points_awarded").
			Default(0),
	}
}

func (QuizSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("status"),
	}
}
