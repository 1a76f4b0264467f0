// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bumpwise/bumpquiz/ent/answerattempt"
)

// AnswerAttemptCreate is the builder for creating a AnswerAttempt entity.
type AnswerAttemptCreate struct {
	config
	mutation *AnswerAttemptMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AnswerAttemptCreate) SetSequence(v int64) *AnswerAttemptCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AnswerAttemptCreate) SetTimestamp(v time.Time) *AnswerAttemptCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AnswerAttemptCreate) SetNillableTimestamp(v *time.Time) *AnswerAttemptCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AnswerAttemptCreate) SetSessionID(v string) *AnswerAttemptCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *AnswerAttemptCreate) SetQuestionID(v string) *AnswerAttemptCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetSelectedOption sets the "selected_option" field.
func (_c *AnswerAttemptCreate) SetSelectedOption(v string) *AnswerAttemptCreate {
	_c.mutation.SetSelectedOption(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *AnswerAttemptCreate) SetCorrect(v bool) *AnswerAttemptCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetAttemptOrdinal sets the "attempt_ordinal" field.
func (_c *AnswerAttemptCreate) SetAttemptOrdinal(v int) *AnswerAttemptCreate {
	_c.mutation.SetAttemptOrdinal(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AnswerAttemptCreate) SetStartedAt(v time.Time) *AnswerAttemptCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetAnsweredAt sets the "answered_at" field.
func (_c *AnswerAttemptCreate) SetAnsweredAt(v time.Time) *AnswerAttemptCreate {
	_c.mutation.SetAnsweredAt(v)
	return _c
}

// Mutation returns the AnswerAttemptMutation object of the builder.
func (_c *AnswerAttemptCreate) Mutation() *AnswerAttemptMutation {
	return _c.mutation
}

// Save creates the AnswerAttempt in the database.
func (_c *AnswerAttemptCreate) Save(ctx context.Context) (*AnswerAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnswerAttemptCreate) SaveX(ctx context.Context) *AnswerAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnswerAttemptCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := answerattempt.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnswerAttemptCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AnswerAttempt.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AnswerAttempt.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AnswerAttempt.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := answerattempt.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerAttempt.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "AnswerAttempt.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := answerattempt.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AnswerAttempt.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SelectedOption(); !ok {
		return &ValidationError{Name: "selected_option", err: errors.New(`ent: missing required field "AnswerAttempt.selected_option"`)}
	}
	if v, ok := _c.mutation.SelectedOption(); ok {
		if err := answerattempt.SelectedOptionValidator(v); err != nil {
			return &ValidationError{Name: "selected_option", err: fmt.Errorf(`ent: validator failed for field "AnswerAttempt.selected_option": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "AnswerAttempt.correct"`)}
	}
	if _, ok := _c.mutation.AttemptOrdinal(); !ok {
		return &ValidationError{Name: "attempt_ordinal", err: errors.New(`ent: missing required field "AnswerAttempt.attempt_ordinal"`)}
	}
	if v, ok := _c.mutation.AttemptOrdinal(); ok {
		if err := answerattempt.AttemptOrdinalValidator(v); err != nil {
			return &ValidationError{Name: "attempt_ordinal", err: fmt.Errorf(`ent: validator failed for field "AnswerAttempt.attempt_ordinal": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "AnswerAttempt.started_at"`)}
	}
	if _, ok := _c.mutation.AnsweredAt(); !ok {
		return &ValidationError{Name: "answered_at", err: errors.New(`ent: missing required field "AnswerAttempt.answered_at"`)}
	}
	return nil
}

func (_c *AnswerAttemptCreate) sqlSave(ctx context.Context) (*AnswerAttempt, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnswerAttemptCreate) createSpec() (*AnswerAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &AnswerAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(answerattempt.Table, sqlgraph.NewFieldSpec(answerattempt.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(answerattempt.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(answerattempt.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(answerattempt.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(answerattempt.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.SelectedOption(); ok {
		_spec.SetField(answerattempt.FieldSelectedOption, field.TypeString, value)
		_node.SelectedOption = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(answerattempt.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.AttemptOrdinal(); ok {
		_spec.SetField(answerattempt.FieldAttemptOrdinal, field.TypeInt, value)
		_node.AttemptOrdinal = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(answerattempt.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.AnsweredAt(); ok {
		_spec.SetField(answerattempt.FieldAnsweredAt, field.TypeTime, value)
		_node.AnsweredAt = value
	}
	return _node, _spec
}

// AnswerAttemptCreateBulk is the builder for creating many AnswerAttempt entities in bulk.
type AnswerAttemptCreateBulk struct {
	config
	err      error
	builders []*AnswerAttemptCreate
}

// Save creates the AnswerAttempt entities in the database.
func (_c *AnswerAttemptCreateBulk) Save(ctx context.Context) ([]*AnswerAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnswerAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnswerAttemptMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AnswerAttemptCreateBulk) SaveX(ctx context.Context) []*AnswerAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
