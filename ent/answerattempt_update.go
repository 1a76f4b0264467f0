// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bumpwise/bumpquiz/ent/answerattempt"
	"github.com/bumpwise/bumpquiz/ent/predicate"
)

// AnswerAttemptUpdate is the builder for updating AnswerAttempt entities.
type AnswerAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerAttemptMutation
}

// Where appends a list predicates to the AnswerAttemptUpdate builder.
func (_u *AnswerAttemptUpdate) Where(ps ...predicate.AnswerAttempt) *AnswerAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerAttemptUpdate) SetSessionID(v string) *AnswerAttemptUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerAttemptUpdate) SetNillableSessionID(v *string) *AnswerAttemptUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerAttemptUpdate) SetQuestionID(v string) *AnswerAttemptUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerAttemptUpdate) SetNillableQuestionID(v *string) *AnswerAttemptUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetSelectedOption sets the "selected_option" field.
func (_u *AnswerAttemptUpdate) SetSelectedOption(v string) *AnswerAttemptUpdate {
	_u.mutation.SetSelectedOption(v)
	return _u
}

// SetNillableSelectedOption sets the "selected_option" field if the given value is not nil.
func (_u *AnswerAttemptUpdate) SetNillableSelectedOption(v *string) *AnswerAttemptUpdate {
	if v != nil {
		_u.SetSelectedOption(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerAttemptUpdate) SetCorrect(v bool) *AnswerAttemptUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerAttemptUpdate) SetNillableCorrect(v *bool) *AnswerAttemptUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetAttemptOrdinal sets the "attempt_ordinal" field.
func (_u *AnswerAttemptUpdate) SetAttemptOrdinal(v int) *AnswerAttemptUpdate {
	_u.mutation.ResetAttemptOrdinal()
	_u.mutation.SetAttemptOrdinal(v)
	return _u
}

// SetNillableAttemptOrdinal sets the "attempt_ordinal" field if the given value is not nil.
func (_u *AnswerAttemptUpdate) SetNillableAttemptOrdinal(v *int) *AnswerAttemptUpdate {
	if v != nil {
		_u.SetAttemptOrdinal(*v)
	}
	return _u
}

// AddAttemptOrdinal adds value to the "attempt_ordinal" field.
func (_u *AnswerAttemptUpdate) AddAttemptOrdinal(v int) *AnswerAttemptUpdate {
	_u.mutation.AddAttemptOrdinal(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AnswerAttemptUpdate) SetStartedAt(v time.Time) *AnswerAttemptUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AnswerAttemptUpdate) SetNillableStartedAt(v *time.Time) *AnswerAttemptUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetAnsweredAt sets the "answered_at" field.
func (_u *AnswerAttemptUpdate) SetAnsweredAt(v time.Time) *AnswerAttemptUpdate {
	_u.mutation.SetAnsweredAt(v)
	return _u
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_u *AnswerAttemptUpdate) SetNillableAnsweredAt(v *time.Time) *AnswerAttemptUpdate {
	if v != nil {
		_u.SetAnsweredAt(*v)
	}
	return _u
}

// Mutation returns the AnswerAttemptMutation object of the builder.
func (_u *AnswerAttemptUpdate) Mutation() *AnswerAttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerAttemptUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerattempt.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerAttempt.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := answerattempt.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AnswerAttempt.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SelectedOption(); ok {
		if err := answerattempt.SelectedOptionValidator(v); err != nil {
			return &ValidationError{Name: "selected_option", err: fmt.Errorf(`ent: validator failed for field "AnswerAttempt.selected_option": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AttemptOrdinal(); ok {
		if err := answerattempt.AttemptOrdinalValidator(v); err != nil {
			return &ValidationError{Name: "attempt_ordinal", err: fmt.Errorf(`ent: validator failed for field "AnswerAttempt.attempt_ordinal": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerattempt.Table, answerattempt.Columns, sqlgraph.NewFieldSpec(answerattempt.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerattempt.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(answerattempt.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SelectedOption(); ok {
		_spec.SetField(answerattempt.FieldSelectedOption, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerattempt.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AttemptOrdinal(); ok {
		_spec.SetField(answerattempt.FieldAttemptOrdinal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptOrdinal(); ok {
		_spec.AddField(answerattempt.FieldAttemptOrdinal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(answerattempt.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AnsweredAt(); ok {
		_spec.SetField(answerattempt.FieldAnsweredAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerAttemptUpdateOne is the builder for updating a single AnswerAttempt entity.
type AnswerAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerAttemptMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerAttemptUpdateOne) SetSessionID(v string) *AnswerAttemptUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerAttemptUpdateOne) SetNillableSessionID(v *string) *AnswerAttemptUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerAttemptUpdateOne) SetQuestionID(v string) *AnswerAttemptUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerAttemptUpdateOne) SetNillableQuestionID(v *string) *AnswerAttemptUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetSelectedOption sets the "selected_option" field.
func (_u *AnswerAttemptUpdateOne) SetSelectedOption(v string) *AnswerAttemptUpdateOne {
	_u.mutation.SetSelectedOption(v)
	return _u
}

// SetNillableSelectedOption sets the "selected_option" field if the given value is not nil.
func (_u *AnswerAttemptUpdateOne) SetNillableSelectedOption(v *string) *AnswerAttemptUpdateOne {
	if v != nil {
		_u.SetSelectedOption(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerAttemptUpdateOne) SetCorrect(v bool) *AnswerAttemptUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerAttemptUpdateOne) SetNillableCorrect(v *bool) *AnswerAttemptUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetAttemptOrdinal sets the "attempt_ordinal" field.
func (_u *AnswerAttemptUpdateOne) SetAttemptOrdinal(v int) *AnswerAttemptUpdateOne {
	_u.mutation.ResetAttemptOrdinal()
	_u.mutation.SetAttemptOrdinal(v)
	return _u
}

// SetNillableAttemptOrdinal sets the "attempt_ordinal" field if the given value is not nil.
func (_u *AnswerAttemptUpdateOne) SetNillableAttemptOrdinal(v *int) *AnswerAttemptUpdateOne {
	if v != nil {
		_u.SetAttemptOrdinal(*v)
	}
	return _u
}

// AddAttemptOrdinal adds value to the "attempt_ordinal" field.
func (_u *AnswerAttemptUpdateOne) AddAttemptOrdinal(v int) *AnswerAttemptUpdateOne {
	_u.mutation.AddAttemptOrdinal(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AnswerAttemptUpdateOne) SetStartedAt(v time.Time) *AnswerAttemptUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AnswerAttemptUpdateOne) SetNillableStartedAt(v *time.Time) *AnswerAttemptUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetAnsweredAt sets the "answered_at" field.
func (_u *AnswerAttemptUpdateOne) SetAnsweredAt(v time.Time) *AnswerAttemptUpdateOne {
	_u.mutation.SetAnsweredAt(v)
	return _u
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_u *AnswerAttemptUpdateOne) SetNillableAnsweredAt(v *time.Time) *AnswerAttemptUpdateOne {
	if v != nil {
		_u.SetAnsweredAt(*v)
	}
	return _u
}

// Mutation returns the AnswerAttemptMutation object of the builder.
func (_u *AnswerAttemptUpdateOne) Mutation() *AnswerAttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerAttemptUpdate builder.
func (_u *AnswerAttemptUpdateOne) Where(ps ...predicate.AnswerAttempt) *AnswerAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerAttemptUpdateOne) Select(field string, fields ...string) *AnswerAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerAttempt entity.
func (_u *AnswerAttemptUpdateOne) Save(ctx context.Context) (*AnswerAttempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerAttemptUpdateOne) SaveX(ctx context.Context) *AnswerAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerAttemptUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerattempt.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerAttempt.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := answerattempt.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AnswerAttempt.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SelectedOption(); ok {
		if err := answerattempt.SelectedOptionValidator(v); err != nil {
			return &ValidationError{Name: "selected_option", err: fmt.Errorf(`ent: validator failed for field "AnswerAttempt.selected_option": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AttemptOrdinal(); ok {
		if err := answerattempt.AttemptOrdinalValidator(v); err != nil {
			return &ValidationError{Name: "attempt_ordinal", err: fmt.Errorf(`ent: validator failed for field "AnswerAttempt.attempt_ordinal": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerAttemptUpdateOne) sqlSave(ctx context.Context) (_node *AnswerAttempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerattempt.Table, answerattempt.Columns, sqlgraph.NewFieldSpec(answerattempt.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerattempt.FieldID)
		for _, f := range fields {
			if !answerattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerattempt.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerattempt.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(answerattempt.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SelectedOption(); ok {
		_spec.SetField(answerattempt.FieldSelectedOption, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerattempt.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AttemptOrdinal(); ok {
		_spec.SetField(answerattempt.FieldAttemptOrdinal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptOrdinal(); ok {
		_spec.AddField(answerattempt.FieldAttemptOrdinal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(answerattempt.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AnsweredAt(); ok {
		_spec.SetField(answerattempt.FieldAnsweredAt, field.TypeTime, value)
	}
	_node = &AnswerAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
