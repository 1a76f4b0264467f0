// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bumpwise/bumpquiz/ent/userlimit"
)

// UserLimitCreate is the builder for creating a UserLimit entity.
type UserLimitCreate struct {
	config
	mutation *UserLimitMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *UserLimitCreate) SetUserID(v string) *UserLimitCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSessionsToday sets the "sessions_today" field.
func (_c *UserLimitCreate) SetSessionsToday(v int) *UserLimitCreate {
	_c.mutation.SetSessionsToday(v)
	return _c
}

// SetNillableSessionsToday sets the "sessions_today" field if the given value is not nil.
func (_c *UserLimitCreate) SetNillableSessionsToday(v *int) *UserLimitCreate {
	if v != nil {
		_c.SetSessionsToday(*v)
	}
	return _c
}

// SetFlipsToday sets the "flips_today" field.
func (_c *UserLimitCreate) SetFlipsToday(v int) *UserLimitCreate {
	_c.mutation.SetFlipsToday(v)
	return _c
}

// SetNillableFlipsToday sets the "flips_today" field if the given value is not nil.
func (_c *UserLimitCreate) SetNillableFlipsToday(v *int) *UserLimitCreate {
	if v != nil {
		_c.SetFlipsToday(*v)
	}
	return _c
}

// SetPointsToday sets the "points_today" field.
func (_c *UserLimitCreate) SetPointsToday(v int) *UserLimitCreate {
	_c.mutation.SetPointsToday(v)
	return _c
}

// SetNillablePointsToday sets the "points_today" field if the given value is not nil.
func (_c *UserLimitCreate) SetNillablePointsToday(v *int) *UserLimitCreate {
	if v != nil {
		_c.SetPointsToday(*v)
	}
	return _c
}

// SetPointsTotal sets the "points_total" field.
func (_c *UserLimitCreate) SetPointsTotal(v int) *UserLimitCreate {
	_c.mutation.SetPointsTotal(v)
	return _c
}

// SetNillablePointsTotal sets the "points_total" field if the given value is not nil.
func (_c *UserLimitCreate) SetNillablePointsTotal(v *int) *UserLimitCreate {
	if v != nil {
		_c.SetPointsTotal(*v)
	}
	return _c
}

// SetResetAt sets the "reset_at" field.
func (_c *UserLimitCreate) SetResetAt(v time.Time) *UserLimitCreate {
	_c.mutation.SetResetAt(v)
	return _c
}

// SetNillableResetAt sets the "reset_at" field if the given value is not nil.
func (_c *UserLimitCreate) SetNillableResetAt(v *time.Time) *UserLimitCreate {
	if v != nil {
		_c.SetResetAt(*v)
	}
	return _c
}

// Mutation returns the UserLimitMutation object of the builder.
func (_c *UserLimitCreate) Mutation() *UserLimitMutation {
	return _c.mutation
}

// Save creates the UserLimit in the database.
func (_c *UserLimitCreate) Save(ctx context.Context) (*UserLimit, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserLimitCreate) SaveX(ctx context.Context) *UserLimit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserLimitCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserLimitCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserLimitCreate) defaults() {
	if _, ok := _c.mutation.SessionsToday(); !ok {
		v := userlimit.DefaultSessionsToday
		_c.mutation.SetSessionsToday(v)
	}
	if _, ok := _c.mutation.FlipsToday(); !ok {
		v := userlimit.DefaultFlipsToday
		_c.mutation.SetFlipsToday(v)
	}
	if _, ok := _c.mutation.PointsToday(); !ok {
		v := userlimit.DefaultPointsToday
		_c.mutation.SetPointsToday(v)
	}
	if _, ok := _c.mutation.PointsTotal(); !ok {
		v := userlimit.DefaultPointsTotal
		_c.mutation.SetPointsTotal(v)
	}
	if _, ok := _c.mutation.ResetAt(); !ok {
		v := userlimit.DefaultResetAt()
		_c.mutation.SetResetAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserLimitCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserLimit.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := userlimit.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserLimit.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionsToday(); !ok {
		return &ValidationError{Name: "sessions_today", err: errors.New(`ent: missing required field "UserLimit.sessions_today"`)}
	}
	if _, ok := _c.mutation.FlipsToday(); !ok {
		return &ValidationError{Name: "flips_today", err: errors.New(`ent: missing required field "UserLimit.flips_today"`)}
	}
	if _, ok := _c.mutation.PointsToday(); !ok {
		return &ValidationError{Name: "points_today", err: errors.New(`ent: missing required field "UserLimit.points_today"`)}
	}
	if _, ok := _c.mutation.PointsTotal(); !ok {
		return &ValidationError{Name: "points_total", err: errors.New(`ent: missing required field "UserLimit.points_total"`)}
	}
	if _, ok := _c.mutation.ResetAt(); !ok {
		return &ValidationError{Name: "reset_at", err: errors.New(`ent: missing required field "UserLimit.reset_at"`)}
	}
	return nil
}

func (_c *UserLimitCreate) sqlSave(ctx context.Context) (*UserLimit, error) {
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

func (_c *UserLimitCreate) createSpec() (*UserLimit, *sqlgraph.CreateSpec) {
	var (
		_node = &UserLimit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userlimit.Table, sqlgraph.NewFieldSpec(userlimit.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(userlimit.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SessionsToday(); ok {
		_spec.SetField(userlimit.FieldSessionsToday, field.TypeInt, value)
		_node.SessionsToday = value
	}
	if value, ok := _c.mutation.FlipsToday(); ok {
		_spec.SetField(userlimit.FieldFlipsToday, field.TypeInt, value)
		_node.FlipsToday = value
	}
	if value, ok := _c.mutation.PointsToday(); ok {
		_spec.SetField(userlimit.FieldPointsToday, field.TypeInt, value)
		_node.PointsToday = value
	}
	if value, ok := _c.mutation.PointsTotal(); ok {
		_spec.SetField(userlimit.FieldPointsTotal, field.TypeInt, value)
		_node.PointsTotal = value
	}
	if value, ok := _c.mutation.ResetAt(); ok {
		_spec.SetField(userlimit.FieldResetAt, field.TypeTime, value)
		_node.ResetAt = value
	}
	return _node, _spec
}

// UserLimitCreateBulk is the builder for creating many UserLimit entities in bulk.
type UserLimitCreateBulk struct {
	config
	err      error
	builders []*UserLimitCreate
}

// Save creates the UserLimit entities in the database.
func (_c *UserLimitCreateBulk) Save(ctx context.Context) ([]*UserLimit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserLimit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserLimitMutation)
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
func (_c *UserLimitCreateBulk) SaveX(ctx context.Context) []*UserLimit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserLimitCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserLimitCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
