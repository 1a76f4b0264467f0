// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bumpwise/bumpquiz/ent/predicate"
	"github.com/bumpwise/bumpquiz/ent/similarityrecord"
)

// SimilarityRecordDelete is the builder for deleting a SimilarityRecord entity.
type SimilarityRecordDelete struct {
	config
	hooks    []Hook
	mutation *SimilarityRecordMutation
}

// Where appends a list predicates to the SimilarityRecordDelete builder.
func (_d *SimilarityRecordDelete) Where(ps ...predicate.SimilarityRecord) *SimilarityRecordDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SimilarityRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SimilarityRecordDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SimilarityRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(similarityrecord.Table, sqlgraph.NewFieldSpec(similarityrecord.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// SimilarityRecordDeleteOne is the builder for deleting a single SimilarityRecord entity.
type SimilarityRecordDeleteOne struct {
	_d *SimilarityRecordDelete
}

// Where appends a list predicates to the SimilarityRecordDelete builder.
func (_d *SimilarityRecordDeleteOne) Where(ps ...predicate.SimilarityRecord) *SimilarityRecordDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SimilarityRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{similarityrecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SimilarityRecordDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
