// Code generated by ent, DO NOT EDIT.

package answerattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/bumpwise/bumpquiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldEQ(FieldSessionID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldEQ(FieldQuestionID, v))
}

// SelectedOption applies equality check predicate on the "selected_option" field. It's identical to SelectedOptionEQ.
func SelectedOption(v string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldEQ(FieldSelectedOption, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldEQ(FieldCorrect, v))
}

// AttemptOrdinal applies equality check predicate on the "attempt_ordinal" field. It's identical to AttemptOrdinalEQ.
func AttemptOrdinal(v int) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldEQ(FieldAttemptOrdinal, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldEQ(FieldStartedAt, v))
}

// AnsweredAt applies equality check predicate on the "answered_at" field. It's identical to AnsweredAtEQ.
func AnsweredAt(v time.Time) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldEQ(FieldAnsweredAt, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldContainsFold(FieldSessionID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldContainsFold(FieldQuestionID, v))
}

// SelectedOptionEQ applies the EQ predicate on the "selected_option" field.
func SelectedOptionEQ(v string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldEQ(FieldSelectedOption, v))
}

// SelectedOptionNEQ applies the NEQ predicate on the "selected_option" field.
func SelectedOptionNEQ(v string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldNEQ(FieldSelectedOption, v))
}

// SelectedOptionIn applies the In predicate on the "selected_option" field.
func SelectedOptionIn(vs ...string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldIn(FieldSelectedOption, vs...))
}

// SelectedOptionNotIn applies the NotIn predicate on the "selected_option" field.
func SelectedOptionNotIn(vs ...string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldNotIn(FieldSelectedOption, vs...))
}

// SelectedOptionGT applies the GT predicate on the "selected_option" field.
func SelectedOptionGT(v string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldGT(FieldSelectedOption, v))
}

// SelectedOptionGTE applies the GTE predicate on the "selected_option" field.
func SelectedOptionGTE(v string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldGTE(FieldSelectedOption, v))
}

// SelectedOptionLT applies the LT predicate on the "selected_option" field.
func SelectedOptionLT(v string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldLT(FieldSelectedOption, v))
}

// SelectedOptionLTE applies the LTE predicate on the "selected_option" field.
func SelectedOptionLTE(v string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldLTE(FieldSelectedOption, v))
}

// SelectedOptionContains applies the Contains predicate on the "selected_option" field.
func SelectedOptionContains(v string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldContains(FieldSelectedOption, v))
}

// SelectedOptionHasPrefix applies the HasPrefix predicate on the "selected_option" field.
func SelectedOptionHasPrefix(v string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldHasPrefix(FieldSelectedOption, v))
}

// SelectedOptionHasSuffix applies the HasSuffix predicate on the "selected_option" field.
func SelectedOptionHasSuffix(v string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldHasSuffix(FieldSelectedOption, v))
}

// SelectedOptionEqualFold applies the EqualFold predicate on the "selected_option" field.
func SelectedOptionEqualFold(v string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldEqualFold(FieldSelectedOption, v))
}

// SelectedOptionContainsFold applies the ContainsFold predicate on the "selected_option" field.
func SelectedOptionContainsFold(v string) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldContainsFold(FieldSelectedOption, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldNEQ(FieldCorrect, v))
}

// AttemptOrdinalEQ applies the EQ predicate on the "attempt_ordinal" field.
func AttemptOrdinalEQ(v int) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldEQ(FieldAttemptOrdinal, v))
}

// AttemptOrdinalNEQ applies the NEQ predicate on the "attempt_ordinal" field.
func AttemptOrdinalNEQ(v int) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldNEQ(FieldAttemptOrdinal, v))
}

// AttemptOrdinalIn applies the In predicate on the "attempt_ordinal" field.
func AttemptOrdinalIn(vs ...int) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldIn(FieldAttemptOrdinal, vs...))
}

// AttemptOrdinalNotIn applies the NotIn predicate on the "attempt_ordinal" field.
func AttemptOrdinalNotIn(vs ...int) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldNotIn(FieldAttemptOrdinal, vs...))
}

// AttemptOrdinalGT applies the GT predicate on the "attempt_ordinal" field.
func AttemptOrdinalGT(v int) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldGT(FieldAttemptOrdinal, v))
}

// AttemptOrdinalGTE applies the GTE predicate on the "attempt_ordinal" field.
func AttemptOrdinalGTE(v int) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldGTE(FieldAttemptOrdinal, v))
}

// AttemptOrdinalLT applies the LT predicate on the "attempt_ordinal" field.
func AttemptOrdinalLT(v int) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldLT(FieldAttemptOrdinal, v))
}

// AttemptOrdinalLTE applies the LTE predicate on the "attempt_ordinal" field.
func AttemptOrdinalLTE(v int) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldLTE(FieldAttemptOrdinal, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldLTE(FieldStartedAt, v))
}

// AnsweredAtEQ applies the EQ predicate on the "answered_at" field.
func AnsweredAtEQ(v time.Time) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldEQ(FieldAnsweredAt, v))
}

// AnsweredAtNEQ applies the NEQ predicate on the "answered_at" field.
func AnsweredAtNEQ(v time.Time) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldNEQ(FieldAnsweredAt, v))
}

// AnsweredAtIn applies the In predicate on the "answered_at" field.
func AnsweredAtIn(vs ...time.Time) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldIn(FieldAnsweredAt, vs...))
}

// AnsweredAtNotIn applies the NotIn predicate on the "answered_at" field.
func AnsweredAtNotIn(vs ...time.Time) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldNotIn(FieldAnsweredAt, vs...))
}

// AnsweredAtGT applies the GT predicate on the "answered_at" field.
func AnsweredAtGT(v time.Time) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldGT(FieldAnsweredAt, v))
}

// AnsweredAtGTE applies the GTE predicate on the "answered_at" field.
func AnsweredAtGTE(v time.Time) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldGTE(FieldAnsweredAt, v))
}

// AnsweredAtLT applies the LT predicate on the "answered_at" field.
func AnsweredAtLT(v time.Time) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldLT(FieldAnsweredAt, v))
}

// AnsweredAtLTE applies the LTE predicate on the "answered_at" field.
func AnsweredAtLTE(v time.Time) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.FieldLTE(FieldAnsweredAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnswerAttempt) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnswerAttempt) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnswerAttempt) predicate.AnswerAttempt {
	return predicate.AnswerAttempt(sql.NotPredicates(p))
}
