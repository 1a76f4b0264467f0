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
	"github.com/bumpwise/bumpquiz/ent/contentitem"
	"github.com/bumpwise/bumpquiz/ent/predicate"
)

// ContentItemUpdate is the builder for updating ContentItem entities.
type ContentItemUpdate struct {
	config
	hooks    []Hook
	mutation *ContentItemMutation
}

// Where appends a list predicates to the ContentItemUpdate builder.
func (_u *ContentItemUpdate) Where(ps ...predicate.ContentItem) *ContentItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConsumedAt sets the "consumed_at" field.
func (_u *ContentItemUpdate) SetConsumedAt(v time.Time) *ContentItemUpdate {
	_u.mutation.SetConsumedAt(v)
	return _u
}

// SetNillableConsumedAt sets the "consumed_at" field if the given value is not nil.
func (_u *ContentItemUpdate) SetNillableConsumedAt(v *time.Time) *ContentItemUpdate {
	if v != nil {
		_u.SetConsumedAt(*v)
	}
	return _u
}

// ClearConsumedAt clears the value of the "consumed_at" field.
func (_u *ContentItemUpdate) ClearConsumedAt() *ContentItemUpdate {
	_u.mutation.ClearConsumedAt()
	return _u
}

// Mutation returns the ContentItemMutation object of the builder.
func (_u *ContentItemUpdate) Mutation() *ContentItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContentItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContentItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContentItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContentItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ContentItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(contentitem.Table, contentitem.Columns, sqlgraph.NewFieldSpec(contentitem.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(contentitem.FieldOptions, field.TypeJSON)
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(contentitem.FieldEmbedding, field.TypeJSON)
	}
	if _u.mutation.ContextIdsCleared() {
		_spec.ClearField(contentitem.FieldContextIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConsumedAt(); ok {
		_spec.SetField(contentitem.FieldConsumedAt, field.TypeTime, value)
	}
	if _u.mutation.ConsumedAtCleared() {
		_spec.ClearField(contentitem.FieldConsumedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contentitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContentItemUpdateOne is the builder for updating a single ContentItem entity.
type ContentItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContentItemMutation
}

// SetConsumedAt sets the "consumed_at" field.
func (_u *ContentItemUpdateOne) SetConsumedAt(v time.Time) *ContentItemUpdateOne {
	_u.mutation.SetConsumedAt(v)
	return _u
}

// SetNillableConsumedAt sets the "consumed_at" field if the given value is not nil.
func (_u *ContentItemUpdateOne) SetNillableConsumedAt(v *time.Time) *ContentItemUpdateOne {
	if v != nil {
		_u.SetConsumedAt(*v)
	}
	return _u
}

// ClearConsumedAt clears the value of the "consumed_at" field.
func (_u *ContentItemUpdateOne) ClearConsumedAt() *ContentItemUpdateOne {
	_u.mutation.ClearConsumedAt()
	return _u
}

// Mutation returns the ContentItemMutation object of the builder.
func (_u *ContentItemUpdateOne) Mutation() *ContentItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the ContentItemUpdate builder.
func (_u *ContentItemUpdateOne) Where(ps ...predicate.ContentItem) *ContentItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContentItemUpdateOne) Select(field string, fields ...string) *ContentItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ContentItem entity.
func (_u *ContentItemUpdateOne) Save(ctx context.Context) (*ContentItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContentItemUpdateOne) SaveX(ctx context.Context) *ContentItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContentItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContentItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ContentItemUpdateOne) sqlSave(ctx context.Context) (_node *ContentItem, err error) {
	_spec := sqlgraph.NewUpdateSpec(contentitem.Table, contentitem.Columns, sqlgraph.NewFieldSpec(contentitem.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ContentItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contentitem.FieldID)
		for _, f := range fields {
			if !contentitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contentitem.FieldID {
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
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(contentitem.FieldOptions, field.TypeJSON)
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(contentitem.FieldEmbedding, field.TypeJSON)
	}
	if _u.mutation.ContextIdsCleared() {
		_spec.ClearField(contentitem.FieldContextIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConsumedAt(); ok {
		_spec.SetField(contentitem.FieldConsumedAt, field.TypeTime, value)
	}
	if _u.mutation.ConsumedAtCleared() {
		_spec.ClearField(contentitem.FieldConsumedAt, field.TypeTime)
	}
	_node = &ContentItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contentitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
