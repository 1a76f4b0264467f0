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
	"github.com/bumpwise/bumpquiz/ent/similarityrecord"
)

// SimilarityRecordUpdate is the builder for updating SimilarityRecord entities.
type SimilarityRecordUpdate struct {
	config
	hooks    []Hook
	mutation *SimilarityRecordMutation
}

// Where appends a list predicates to the SimilarityRecordUpdate builder.
func (_u *SimilarityRecordUpdate) Where(ps ...predicate.SimilarityRecord) *SimilarityRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the SimilarityRecordMutation object of the builder.
func (_u *SimilarityRecordUpdate) Mutation() *SimilarityRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SimilarityRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SimilarityRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SimilarityRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SimilarityRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SimilarityRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(similarityrecord.Table, similarityrecord.Columns, sqlgraph.NewFieldSpec(similarityrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{similarityrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SimilarityRecordUpdateOne is the builder for updating a single SimilarityRecord entity.
type SimilarityRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SimilarityRecordMutation
}

// Mutation returns the SimilarityRecordMutation object of the builder.
func (_u *SimilarityRecordUpdateOne) Mutation() *SimilarityRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the SimilarityRecordUpdate builder.
func (_u *SimilarityRecordUpdateOne) Where(ps ...predicate.SimilarityRecord) *SimilarityRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SimilarityRecordUpdateOne) Select(field string, fields ...string) *SimilarityRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SimilarityRecord entity.
func (_u *SimilarityRecordUpdateOne) Save(ctx context.Context) (*SimilarityRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SimilarityRecordUpdateOne) SaveX(ctx context.Context) *SimilarityRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SimilarityRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SimilarityRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SimilarityRecordUpdateOne) sqlSave(ctx context.Context) (_node *SimilarityRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(similarityrecord.Table, similarityrecord.Columns, sqlgraph.NewFieldSpec(similarityrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SimilarityRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, similarityrecord.FieldID)
		for _, f := range fields {
			if !similarityrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != similarityrecord.FieldID {
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
	_node = &SimilarityRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{similarityrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
