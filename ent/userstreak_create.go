// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bumpwise/bumpquiz/ent/userstreak"
)

// UserStreakCreate is the builder for creating a UserStreak entity.
type UserStreakCreate struct {
	config
	mutation *UserStreakMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *UserStreakCreate) SetUserID(v string) *UserStreakCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCurrent sets the "current" field.
func (_c *UserStreakCreate) SetCurrent(v int) *UserStreakCreate {
	_c.mutation.SetCurrent(v)
	return _c
}

// SetNillableCurrent sets the "current" field if the given value is not nil.
func (_c *UserStreakCreate) SetNillableCurrent(v *int) *UserStreakCreate {
	if v != nil {
		_c.SetCurrent(*v)
	}
	return _c
}

// SetLongest sets the "longest" field.
func (_c *UserStreakCreate) SetLongest(v int) *UserStreakCreate {
	_c.mutation.SetLongest(v)
	return _c
}

// SetNillableLongest sets the "longest" field if the given value is not nil.
func (_c *UserStreakCreate) SetNillableLongest(v *int) *UserStreakCreate {
	if v != nil {
		_c.SetLongest(*v)
	}
	return _c
}

// SetLastActiveOn sets the "last_active_on" field.
func (_c *UserStreakCreate) SetLastActiveOn(v string) *UserStreakCreate {
	_c.mutation.SetLastActiveOn(v)
	return _c
}

// SetNillableLastActiveOn sets the "last_active_on" field if the given value is not nil.
func (_c *UserStreakCreate) SetNillableLastActiveOn(v *string) *UserStreakCreate {
	if v != nil {
		_c.SetLastActiveOn(*v)
	}
	return _c
}

// Mutation returns the UserStreakMutation object of the builder.
func (_c *UserStreakCreate) Mutation() *UserStreakMutation {
	return _c.mutation
}

// Save creates the UserStreak in the database.
func (_c *UserStreakCreate) Save(ctx context.Context) (*UserStreak, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserStreakCreate) SaveX(ctx context.Context) *UserStreak {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserStreakCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserStreakCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserStreakCreate) defaults() {
	if _, ok := _c.mutation.Current(); !ok {
		v := userstreak.DefaultCurrent
		_c.mutation.SetCurrent(v)
	}
	if _, ok := _c.mutation.Longest(); !ok {
		v := userstreak.DefaultLongest
		_c.mutation.SetLongest(v)
	}
	if _, ok := _c.mutation.LastActiveOn(); !ok {
		v := userstreak.DefaultLastActiveOn
		_c.mutation.SetLastActiveOn(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserStreakCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserStreak.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := userstreak.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserStreak.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Current(); !ok {
		return &ValidationError{Name: "current", err: errors.New(`ent: missing required field "UserStreak.current"`)}
	}
	if _, ok := _c.mutation.Longest(); !ok {
		return &ValidationError{Name: "longest", err: errors.New(`ent: missing required field "UserStreak.longest"`)}
	}
	if _, ok := _c.mutation.LastActiveOn(); !ok {
		return &ValidationError{Name: "last_active_on", err: errors.New(`ent: missing required field "UserStreak.last_active_on"`)}
	}
	return nil
}

func (_c *UserStreakCreate) sqlSave(ctx context.Context) (*UserStreak, error) {
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

func (_c *UserStreakCreate) createSpec() (*UserStreak, *sqlgraph.CreateSpec) {
	var (
		_node = &UserStreak{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userstreak.Table, sqlgraph.NewFieldSpec(userstreak.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(userstreak.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Current(); ok {
		_spec.SetField(userstreak.FieldCurrent, field.TypeInt, value)
		_node.Current = value
	}
	if value, ok := _c.mutation.Longest(); ok {
		_spec.SetField(userstreak.FieldLongest, field.TypeInt, value)
		_node.Longest = value
	}
	if value, ok := _c.mutation.LastActiveOn(); ok {
		_spec.SetField(userstreak.FieldLastActiveOn, field.TypeString, value)
		_node.LastActiveOn = value
	}
	return _node, _spec
}

// UserStreakCreateBulk is the builder for creating many UserStreak entities in bulk.
type UserStreakCreateBulk struct {
	config
	err      error
	builders []*UserStreakCreate
}

// Save creates the UserStreak entities in the database.
func (_c *UserStreakCreateBulk) Save(ctx context.Context) ([]*UserStreak, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserStreak, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserStreakMutation)
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
func (_c *UserStreakCreateBulk) SaveX(ctx context.Context) []*UserStreak {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserStreakCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserStreakCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
