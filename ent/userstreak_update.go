// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bumpwise/bumpquiz/ent/predicate"
	"github.com/bumpwise/bumpquiz/ent/userstreak"
)

// UserStreakUpdate is the builder for updating UserStreak entities.
type UserStreakUpdate struct {
	config
	hooks    []Hook
	mutation *UserStreakMutation
}

// Where appends a list predicates to the UserStreakUpdate builder.
func (_u *UserStreakUpdate) Where(ps ...predicate.UserStreak) *UserStreakUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCurrent sets the "current" field.
func (_u *UserStreakUpdate) SetCurrent(v int) *UserStreakUpdate {
	_u.mutation.ResetCurrent()
	_u.mutation.SetCurrent(v)
	return _u
}

// SetNillableCurrent sets the "current" field if the given value is not nil.
func (_u *UserStreakUpdate) SetNillableCurrent(v *int) *UserStreakUpdate {
	if v != nil {
		_u.SetCurrent(*v)
	}
	return _u
}

// AddCurrent adds value to the "current" field.
func (_u *UserStreakUpdate) AddCurrent(v int) *UserStreakUpdate {
	_u.mutation.AddCurrent(v)
	return _u
}

// SetLongest sets the "longest" field.
func (_u *UserStreakUpdate) SetLongest(v int) *UserStreakUpdate {
	_u.mutation.ResetLongest()
	_u.mutation.SetLongest(v)
	return _u
}

// SetNillableLongest sets the "longest" field if the given value is not nil.
func (_u *UserStreakUpdate) SetNillableLongest(v *int) *UserStreakUpdate {
	if v != nil {
		_u.SetLongest(*v)
	}
	return _u
}

// AddLongest adds value to the "longest" field.
func (_u *UserStreakUpdate) AddLongest(v int) *UserStreakUpdate {
	_u.mutation.AddLongest(v)
	return _u
}

// SetLastActiveOn sets the "last_active_on" field.
func (_u *UserStreakUpdate) SetLastActiveOn(v string) *UserStreakUpdate {
	_u.mutation.SetLastActiveOn(v)
	return _u
}

// SetNillableLastActiveOn sets the "last_active_on" field if the given value is not nil.
func (_u *UserStreakUpdate) SetNillableLastActiveOn(v *string) *UserStreakUpdate {
	if v != nil {
		_u.SetLastActiveOn(*v)
	}
	return _u
}

// Mutation returns the UserStreakMutation object of the builder.
func (_u *UserStreakUpdate) Mutation() *UserStreakMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserStreakUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserStreakUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserStreakUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserStreakUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UserStreakUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(userstreak.Table, userstreak.Columns, sqlgraph.NewFieldSpec(userstreak.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Current(); ok {
		_spec.SetField(userstreak.FieldCurrent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrent(); ok {
		_spec.AddField(userstreak.FieldCurrent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Longest(); ok {
		_spec.SetField(userstreak.FieldLongest, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLongest(); ok {
		_spec.AddField(userstreak.FieldLongest, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastActiveOn(); ok {
		_spec.SetField(userstreak.FieldLastActiveOn, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userstreak.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserStreakUpdateOne is the builder for updating a single UserStreak entity.
type UserStreakUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserStreakMutation
}

// SetCurrent sets the "current" field.
func (_u *UserStreakUpdateOne) SetCurrent(v int) *UserStreakUpdateOne {
	_u.mutation.ResetCurrent()
	_u.mutation.SetCurrent(v)
	return _u
}

// SetNillableCurrent sets the "current" field if the given value is not nil.
func (_u *UserStreakUpdateOne) SetNillableCurrent(v *int) *UserStreakUpdateOne {
	if v != nil {
		_u.SetCurrent(*v)
	}
	return _u
}

// AddCurrent adds value to the "current" field.
func (_u *UserStreakUpdateOne) AddCurrent(v int) *UserStreakUpdateOne {
	_u.mutation.AddCurrent(v)
	return _u
}

// SetLongest sets the "longest" field.
func (_u *UserStreakUpdateOne) SetLongest(v int) *UserStreakUpdateOne {
	_u.mutation.ResetLongest()
	_u.mutation.SetLongest(v)
	return _u
}

// SetNillableLongest sets the "longest" field if the given value is not nil.
func (_u *UserStreakUpdateOne) SetNillableLongest(v *int) *UserStreakUpdateOne {
	if v != nil {
		_u.SetLongest(*v)
	}
	return _u
}

// AddLongest adds value to the "longest" field.
func (_u *UserStreakUpdateOne) AddLongest(v int) *UserStreakUpdateOne {
	_u.mutation.AddLongest(v)
	return _u
}

// SetLastActiveOn sets the "last_active_on" field.
func (_u *UserStreakUpdateOne) SetLastActiveOn(v string) *UserStreakUpdateOne {
	_u.mutation.SetLastActiveOn(v)
	return _u
}

// SetNillableLastActiveOn sets the "last_active_on" field if the given value is not nil.
func (_u *UserStreakUpdateOne) SetNillableLastActiveOn(v *string) *UserStreakUpdateOne {
	if v != nil {
		_u.SetLastActiveOn(*v)
	}
	return _u
}

// Mutation returns the UserStreakMutation object of the builder.
func (_u *UserStreakUpdateOne) Mutation() *UserStreakMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserStreakUpdate builder.
func (_u *UserStreakUpdateOne) Where(ps ...predicate.UserStreak) *UserStreakUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserStreakUpdateOne) Select(field string, fields ...string) *UserStreakUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserStreak entity.
func (_u *UserStreakUpdateOne) Save(ctx context.Context) (*UserStreak, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserStreakUpdateOne) SaveX(ctx context.Context) *UserStreak {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserStreakUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserStreakUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UserStreakUpdateOne) sqlSave(ctx context.Context) (_node *UserStreak, err error) {
	_spec := sqlgraph.NewUpdateSpec(userstreak.Table, userstreak.Columns, sqlgraph.NewFieldSpec(userstreak.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserStreak.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userstreak.FieldID)
		for _, f := range fields {
			if !userstreak.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userstreak.FieldID {
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
	if value, ok := _u.mutation.Current(); ok {
		_spec.SetField(userstreak.FieldCurrent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrent(); ok {
		_spec.AddField(userstreak.FieldCurrent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Longest(); ok {
		_spec.SetField(userstreak.FieldLongest, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLongest(); ok {
		_spec.AddField(userstreak.FieldLongest, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastActiveOn(); ok {
		_spec.SetField(userstreak.FieldLastActiveOn, field.TypeString, value)
	}
	_node = &UserStreak{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userstreak.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
