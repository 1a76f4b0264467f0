package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerAttempt records a single answer submission within a session.
// Append-only; scoring reads the last attempt per question.
type AnswerAttempt struct {
	ent.Schema
}

func (AnswerAttempt) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to QuizSession"),
		field.String("question_id").
			NotEmpty(),
		field.String("selected_option").
			NotEmpty(),
		field.Bool("correct"),
		field.Int("attempt_ordinal").
			Min(0).
			Comment("0 = first try on this question within the session"),
		field.Time("started_at").
			Comment("When the question was shown"),
		field.Time("answered_at").
			Comment("When the answer was submitted"),
	}
}

func (AnswerAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("session_id", "question_id"),
	}
}
