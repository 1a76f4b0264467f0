// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bumpwise/bumpquiz/ent/quizsession"
	"github.com/bumpwise/bumpquiz/ent/schema"
)

// QuizSessionCreate is the builder for creating a QuizSession entity.
type QuizSessionCreate struct {
	config
	mutation *QuizSessionMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *QuizSessionCreate) SetUserID(v string) *QuizSessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetWeek sets the "week" field.
func (_c *QuizSessionCreate) SetWeek(v int) *QuizSessionCreate {
	_c.mutation.SetWeek(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *QuizSessionCreate) SetDifficulty(v string) *QuizSessionCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *QuizSessionCreate) SetNillableDifficulty(v *string) *QuizSessionCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *QuizSessionCreate) SetStatus(v string) *QuizSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *QuizSessionCreate) SetNillableStatus(v *string) *QuizSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetQuestions sets the "questions" field.
func (_c *QuizSessionCreate) SetQuestions(v []schema.SessionQuestion) *QuizSessionCreate {
	_c.mutation.SetQuestions(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuizSessionCreate) SetCreatedAt(v time.Time) *QuizSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuizSessionCreate) SetNillableCreatedAt(v *time.Time) *QuizSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetTimeoutAt sets the "timeout_at" field.
func (_c *QuizSessionCreate) SetTimeoutAt(v time.Time) *QuizSessionCreate {
	_c.mutation.SetTimeoutAt(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *QuizSessionCreate) SetCompletedAt(v time.Time) *QuizSessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *QuizSessionCreate) SetNillableCompletedAt(v *time.Time) *QuizSessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *QuizSessionCreate) SetScore(v int) *QuizSessionCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *QuizSessionCreate) SetNillableScore(v *int) *QuizSessionCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetPointsAwarded sets the "points_awarded" field.
func (_c *QuizSessionCreate) SetPointsAwarded(v int) *QuizSessionCreate {
	_c.mutation.SetPointsAwarded(v)
	return _c
}

// SetNillablePointsAwarded sets the "points_awarded" field if the given value is not nil.
func (_c *QuizSessionCreate) SetNillablePointsAwarded(v *int) *QuizSessionCreate {
	if v != nil {
		_c.SetPointsAwarded(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuizSessionCreate) SetID(v string) *QuizSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the QuizSessionMutation object of the builder.
func (_c *QuizSessionCreate) Mutation() *QuizSessionMutation {
	return _c.mutation
}

// Save creates the QuizSession in the database.
func (_c *QuizSessionCreate) Save(ctx context.Context) (*QuizSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizSessionCreate) SaveX(ctx context.Context) *QuizSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizSessionCreate) defaults() {
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := quizsession.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := quizsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := quizsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := quizsession.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.PointsAwarded(); !ok {
		v := quizsession.DefaultPointsAwarded
		_c.mutation.SetPointsAwarded(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizSessionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "QuizSession.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := quizsession.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "QuizSession.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Week(); !ok {
		return &ValidationError{Name: "week", err: errors.New(`ent: missing required field "QuizSession.week"`)}
	}
	if v, ok := _c.mutation.Week(); ok {
		if err := quizsession.WeekValidator(v); err != nil {
			return &ValidationError{Name: "week", err: fmt.Errorf(`ent: validator failed for field "QuizSession.week": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "QuizSession.difficulty"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "QuizSession.status"`)}
	}
	if _, ok := _c.mutation.Questions(); !ok {
		return &ValidationError{Name: "questions", err: errors.New(`ent: missing required field "QuizSession.questions"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QuizSession.created_at"`)}
	}
	if _, ok := _c.mutation.TimeoutAt(); !ok {
		return &ValidationError{Name: "timeout_at", err: errors.New(`ent: missing required field "QuizSession.timeout_at"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "QuizSession.score"`)}
	}
	if _, ok := _c.mutation.PointsAwarded(); !ok {
		return &ValidationError{Name: "points_awarded", err: errors.New(`ent: missing required field "QuizSession.points_awarded"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := quizsession.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "QuizSession.id": %w`, err)}
		}
	}
	return nil
}

func (_c *QuizSessionCreate) sqlSave(ctx context.Context) (*QuizSession, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected QuizSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuizSessionCreate) createSpec() (*QuizSession, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizsession.Table, sqlgraph.NewFieldSpec(quizsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(quizsession.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Week(); ok {
		_spec.SetField(quizsession.FieldWeek, field.TypeInt, value)
		_node.Week = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(quizsession.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(quizsession.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Questions(); ok {
		_spec.SetField(quizsession.FieldQuestions, field.TypeJSON, value)
		_node.Questions = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(quizsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.TimeoutAt(); ok {
		_spec.SetField(quizsession.FieldTimeoutAt, field.TypeTime, value)
		_node.TimeoutAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(quizsession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(quizsession.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.PointsAwarded(); ok {
		_spec.SetField(quizsession.FieldPointsAwarded, field.TypeInt, value)
		_node.PointsAwarded = value
	}
	return _node, _spec
}

// QuizSessionCreateBulk is the builder for creating many QuizSession entities in bulk.
type QuizSessionCreateBulk struct {
	config
	err      error
	builders []*QuizSessionCreate
}

// Save creates the QuizSession entities in the database.
func (_c *QuizSessionCreateBulk) Save(ctx context.Context) ([]*QuizSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizSessionMutation)
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
func (_c *QuizSessionCreateBulk) SaveX(ctx context.Context) []*QuizSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
