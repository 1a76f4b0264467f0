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
	"github.com/bumpwise/bumpquiz/ent/predicate"
	"github.com/bumpwise/bumpquiz/ent/userlimit"
)

// UserLimitUpdate is the builder for updating UserLimit entities.
type UserLimitUpdate struct {
	config
	hooks    []Hook
	mutation *UserLimitMutation
}

// Where appends a list predicates to the UserLimitUpdate builder.
func (_u *UserLimitUpdate) Where(ps ...predicate.UserLimit) *UserLimitUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionsToday sets the "sessions_today" field.
func (_u *UserLimitUpdate) SetSessionsToday(v int) *UserLimitUpdate {
	_u.mutation.ResetSessionsToday()
	_u.mutation.SetSessionsToday(v)
	return _u
}

// SetNillableSessionsToday sets the "sessions_today" field if the given value is not nil.
func (_u *UserLimitUpdate) SetNillableSessionsToday(v *int) *UserLimitUpdate {
	if v != nil {
		_u.SetSessionsToday(*v)
	}
	return _u
}

// AddSessionsToday adds value to the "sessions_today" field.
func (_u *UserLimitUpdate) AddSessionsToday(v int) *UserLimitUpdate {
	_u.mutation.AddSessionsToday(v)
	return _u
}

// SetFlipsToday sets the "flips_today" field.
func (_u *UserLimitUpdate) SetFlipsToday(v int) *UserLimitUpdate {
	_u.mutation.ResetFlipsToday()
	_u.mutation.SetFlipsToday(v)
	return _u
}

// SetNillableFlipsToday sets the "flips_today" field if the given value is not nil.
func (_u *UserLimitUpdate) SetNillableFlipsToday(v *int) *UserLimitUpdate {
	if v != nil {
		_u.SetFlipsToday(*v)
	}
	return _u
}

// AddFlipsToday adds value to the "flips_today" field.
func (_u *UserLimitUpdate) AddFlipsToday(v int) *UserLimitUpdate {
	_u.mutation.AddFlipsToday(v)
	return _u
}

// SetPointsToday sets the "points_today" field.
func (_u *UserLimitUpdate) SetPointsToday(v int) *UserLimitUpdate {
	_u.mutation.ResetPointsToday()
	_u.mutation.SetPointsToday(v)
	return _u
}

// SetNillablePointsToday sets the "points_today" field if the given value is not nil.
func (_u *UserLimitUpdate) SetNillablePointsToday(v *int) *UserLimitUpdate {
	if v != nil {
		_u.SetPointsToday(*v)
	}
	return _u
}

// AddPointsToday adds value to the "points_today" field.
func (_u *UserLimitUpdate) AddPointsToday(v int) *UserLimitUpdate {
	_u.mutation.AddPointsToday(v)
	return _u
}

// SetPointsTotal sets the "points_total" field.
func (_u *UserLimitUpdate) SetPointsTotal(v int) *UserLimitUpdate {
	_u.mutation.ResetPointsTotal()
	_u.mutation.SetPointsTotal(v)
	return _u
}

// SetNillablePointsTotal sets the "points_total" field if the given value is not nil.
func (_u *UserLimitUpdate) SetNillablePointsTotal(v *int) *UserLimitUpdate {
	if v != nil {
		_u.SetPointsTotal(*v)
	}
	return _u
}

// AddPointsTotal adds value to the "points_total" field.
func (_u *UserLimitUpdate) AddPointsTotal(v int) *UserLimitUpdate {
	_u.mutation.AddPointsTotal(v)
	return _u
}

// SetResetAt sets the "reset_at" field.
func (_u *UserLimitUpdate) SetResetAt(v time.Time) *UserLimitUpdate {
	_u.mutation.SetResetAt(v)
	return _u
}

// SetNillableResetAt sets the "reset_at" field if the given value is not nil.
func (_u *UserLimitUpdate) SetNillableResetAt(v *time.Time) *UserLimitUpdate {
	if v != nil {
		_u.SetResetAt(*v)
	}
	return _u
}

// Mutation returns the UserLimitMutation object of the builder.
func (_u *UserLimitUpdate) Mutation() *UserLimitMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserLimitUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserLimitUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserLimitUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserLimitUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UserLimitUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(userlimit.Table, userlimit.Columns, sqlgraph.NewFieldSpec(userlimit.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionsToday(); ok {
		_spec.SetField(userlimit.FieldSessionsToday, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionsToday(); ok {
		_spec.AddField(userlimit.FieldSessionsToday, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FlipsToday(); ok {
		_spec.SetField(userlimit.FieldFlipsToday, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFlipsToday(); ok {
		_spec.AddField(userlimit.FieldFlipsToday, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PointsToday(); ok {
		_spec.SetField(userlimit.FieldPointsToday, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsToday(); ok {
		_spec.AddField(userlimit.FieldPointsToday, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PointsTotal(); ok {
		_spec.SetField(userlimit.FieldPointsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsTotal(); ok {
		_spec.AddField(userlimit.FieldPointsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResetAt(); ok {
		_spec.SetField(userlimit.FieldResetAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userlimit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserLimitUpdateOne is the builder for updating a single UserLimit entity.
type UserLimitUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserLimitMutation
}

// SetSessionsToday sets the "sessions_today" field.
func (_u *UserLimitUpdateOne) SetSessionsToday(v int) *UserLimitUpdateOne {
	_u.mutation.ResetSessionsToday()
	_u.mutation.SetSessionsToday(v)
	return _u
}

// SetNillableSessionsToday sets the "sessions_today" field if the given value is not nil.
func (_u *UserLimitUpdateOne) SetNillableSessionsToday(v *int) *UserLimitUpdateOne {
	if v != nil {
		_u.SetSessionsToday(*v)
	}
	return _u
}

// AddSessionsToday adds value to the "sessions_today" field.
func (_u *UserLimitUpdateOne) AddSessionsToday(v int) *UserLimitUpdateOne {
	_u.mutation.AddSessionsToday(v)
	return _u
}

// SetFlipsToday sets the "flips_today" field.
func (_u *UserLimitUpdateOne) SetFlipsToday(v int) *UserLimitUpdateOne {
	_u.mutation.ResetFlipsToday()
	_u.mutation.SetFlipsToday(v)
	return _u
}

// SetNillableFlipsToday sets the "flips_today" field if the given value is not nil.
func (_u *UserLimitUpdateOne) SetNillableFlipsToday(v *int) *UserLimitUpdateOne {
	if v != nil {
		_u.SetFlipsToday(*v)
	}
	return _u
}

// AddFlipsToday adds value to the "flips_today" field.
func (_u *UserLimitUpdateOne) AddFlipsToday(v int) *UserLimitUpdateOne {
	_u.mutation.AddFlipsToday(v)
	return _u
}

// SetPointsToday sets the "points_today" field.
func (_u *UserLimitUpdateOne) SetPointsToday(v int) *UserLimitUpdateOne {
	_u.mutation.ResetPointsToday()
	_u.mutation.SetPointsToday(v)
	return _u
}

// SetNillablePointsToday sets the "points_today" field if the given value is not nil.
func (_u *UserLimitUpdateOne) SetNillablePointsToday(v *int) *UserLimitUpdateOne {
	if v != nil {
		_u.SetPointsToday(*v)
	}
	return _u
}

// AddPointsToday adds value to the "points_today" field.
func (_u *UserLimitUpdateOne) AddPointsToday(v int) *UserLimitUpdateOne {
	_u.mutation.AddPointsToday(v)
	return _u
}

// SetPointsTotal sets the "points_total" field.
func (_u *UserLimitUpdateOne) SetPointsTotal(v int) *UserLimitUpdateOne {
	_u.mutation.ResetPointsTotal()
	_u.mutation.SetPointsTotal(v)
	return _u
}

// SetNillablePointsTotal sets the "points_total" field if the given value is not nil.
func (_u *UserLimitUpdateOne) SetNillablePointsTotal(v *int) *UserLimitUpdateOne {
	if v != nil {
		_u.SetPointsTotal(*v)
	}
	return _u
}

// AddPointsTotal adds value to the "points_total" field.
func (_u *UserLimitUpdateOne) AddPointsTotal(v int) *UserLimitUpdateOne {
	_u.mutation.AddPointsTotal(v)
	return _u
}

// SetResetAt sets the "reset_at" field.
func (_u *UserLimitUpdateOne) SetResetAt(v time.Time) *UserLimitUpdateOne {
	_u.mutation.SetResetAt(v)
	return _u
}

// SetNillableResetAt sets the "reset_at" field if the given value is not nil.
func (_u *UserLimitUpdateOne) SetNillableResetAt(v *time.Time) *UserLimitUpdateOne {
	if v != nil {
		_u.SetResetAt(*v)
	}
	return _u
}

// Mutation returns the UserLimitMutation object of the builder.
func (_u *UserLimitUpdateOne) Mutation() *UserLimitMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserLimitUpdate builder.
func (_u *UserLimitUpdateOne) Where(ps ...predicate.UserLimit) *UserLimitUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserLimitUpdateOne) Select(field string, fields ...string) *UserLimitUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserLimit entity.
func (_u *UserLimitUpdateOne) Save(ctx context.Context) (*UserLimit, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserLimitUpdateOne) SaveX(ctx context.Context) *UserLimit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserLimitUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserLimitUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UserLimitUpdateOne) sqlSave(ctx context.Context) (_node *UserLimit, err error) {
	_spec := sqlgraph.NewUpdateSpec(userlimit.Table, userlimit.Columns, sqlgraph.NewFieldSpec(userlimit.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserLimit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userlimit.FieldID)
		for _, f := range fields {
			if !userlimit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userlimit.FieldID {
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
	if value, ok := _u.mutation.SessionsToday(); ok {
		_spec.SetField(userlimit.FieldSessionsToday, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionsToday(); ok {
		_spec.AddField(userlimit.FieldSessionsToday, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FlipsToday(); ok {
		_spec.SetField(userlimit.FieldFlipsToday, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFlipsToday(); ok {
		_spec.AddField(userlimit.FieldFlipsToday, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PointsToday(); ok {
		_spec.SetField(userlimit.FieldPointsToday, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsToday(); ok {
		_spec.AddField(userlimit.FieldPointsToday, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PointsTotal(); ok {
		_spec.SetField(userlimit.FieldPointsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsTotal(); ok {
		_spec.AddField(userlimit.FieldPointsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResetAt(); ok {
		_spec.SetField(userlimit.FieldResetAt, field.TypeTime, value)
	}
	_node = &UserLimit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userlimit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
