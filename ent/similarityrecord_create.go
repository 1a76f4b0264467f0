// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bumpwise/bumpquiz/ent/similarityrecord"
)

// SimilarityRecordCreate is the builder for creating a SimilarityRecord entity.
type SimilarityRecordCreate struct {
	config
	mutation *SimilarityRecordMutation
	hooks    []Hook
}

// SetItemID sets the "item_id" field.
func (_c *SimilarityRecordCreate) SetItemID(v string) *SimilarityRecordCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *SimilarityRecordCreate) SetUserID(v string) *SimilarityRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetWeek sets the "week" field.
func (_c *SimilarityRecordCreate) SetWeek(v int) *SimilarityRecordCreate {
	_c.mutation.SetWeek(v)
	return _c
}

// SetContentType sets the "content_type" field.
func (_c *SimilarityRecordCreate) SetContentType(v string) *SimilarityRecordCreate {
	_c.mutation.SetContentType(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *SimilarityRecordCreate) SetContentHash(v string) *SimilarityRecordCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *SimilarityRecordCreate) SetEmbedding(v []float32) *SimilarityRecordCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SimilarityRecordCreate) SetCreatedAt(v time.Time) *SimilarityRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SimilarityRecordCreate) SetNillableCreatedAt(v *time.Time) *SimilarityRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the SimilarityRecordMutation object of the builder.
func (_c *SimilarityRecordCreate) Mutation() *SimilarityRecordMutation {
	return _c.mutation
}

// Save creates the SimilarityRecord in the database.
func (_c *SimilarityRecordCreate) Save(ctx context.Context) (*SimilarityRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SimilarityRecordCreate) SaveX(ctx context.Context) *SimilarityRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SimilarityRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SimilarityRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SimilarityRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := similarityrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SimilarityRecordCreate) check() error {
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "SimilarityRecord.item_id"`)}
	}
	if v, ok := _c.mutation.ItemID(); ok {
		if err := similarityrecord.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "SimilarityRecord.item_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SimilarityRecord.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := similarityrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SimilarityRecord.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Week(); !ok {
		return &ValidationError{Name: "week", err: errors.New(`ent: missing required field "SimilarityRecord.week"`)}
	}
	if _, ok := _c.mutation.ContentType(); !ok {
		return &ValidationError{Name: "content_type", err: errors.New(`ent: missing required field "SimilarityRecord.content_type"`)}
	}
	if v, ok := _c.mutation.ContentType(); ok {
		if err := similarityrecord.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`ent: validator failed for field "SimilarityRecord.content_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "SimilarityRecord.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := similarityrecord.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "SimilarityRecord.content_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Embedding(); !ok {
		return &ValidationError{Name: "embedding", err: errors.New(`ent: missing required field "SimilarityRecord.embedding"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SimilarityRecord.created_at"`)}
	}
	return nil
}

func (_c *SimilarityRecordCreate) sqlSave(ctx context.Context) (*SimilarityRecord, error) {
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

func (_c *SimilarityRecordCreate) createSpec() (*SimilarityRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &SimilarityRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(similarityrecord.Table, sqlgraph.NewFieldSpec(similarityrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(similarityrecord.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(similarityrecord.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Week(); ok {
		_spec.SetField(similarityrecord.FieldWeek, field.TypeInt, value)
		_node.Week = value
	}
	if value, ok := _c.mutation.ContentType(); ok {
		_spec.SetField(similarityrecord.FieldContentType, field.TypeString, value)
		_node.ContentType = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(similarityrecord.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(similarityrecord.FieldEmbedding, field.TypeJSON, value)
		_node.Embedding = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(similarityrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// SimilarityRecordCreateBulk is the builder for creating many SimilarityRecord entities in bulk.
type SimilarityRecordCreateBulk struct {
	config
	err      error
	builders []*SimilarityRecordCreate
}

// Save creates the SimilarityRecord entities in the database.
func (_c *SimilarityRecordCreateBulk) Save(ctx context.Context) ([]*SimilarityRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SimilarityRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SimilarityRecordMutation)
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
func (_c *SimilarityRecordCreateBulk) SaveX(ctx context.Context) []*SimilarityRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SimilarityRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SimilarityRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
