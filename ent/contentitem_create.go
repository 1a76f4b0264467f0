// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bumpwise/bumpquiz/ent/contentitem"
)

// ContentItemCreate is the builder for creating a ContentItem entity.
type ContentItemCreate struct {
	config
	mutation *ContentItemMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ContentItemCreate) SetUserID(v string) *ContentItemCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetWeek sets the "week" field.
func (_c *ContentItemCreate) SetWeek(v int) *ContentItemCreate {
	_c.mutation.SetWeek(v)
	return _c
}

// SetContentType sets the "content_type" field.
func (_c *ContentItemCreate) SetContentType(v string) *ContentItemCreate {
	_c.mutation.SetContentType(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *ContentItemCreate) SetDifficulty(v string) *ContentItemCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *ContentItemCreate) SetNillableDifficulty(v *string) *ContentItemCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetQuestion sets the "question" field.
func (_c *ContentItemCreate) SetQuestion(v string) *ContentItemCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_c *ContentItemCreate) SetNillableQuestion(v *string) *ContentItemCreate {
	if v != nil {
		_c.SetQuestion(*v)
	}
	return _c
}

// SetOptions sets the "options" field.
func (_c *ContentItemCreate) SetOptions(v []string) *ContentItemCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetAnswerKey sets the "answer_key" field.
func (_c *ContentItemCreate) SetAnswerKey(v string) *ContentItemCreate {
	_c.mutation.SetAnswerKey(v)
	return _c
}

// SetNillableAnswerKey sets the "answer_key" field if the given value is not nil.
func (_c *ContentItemCreate) SetNillableAnswerKey(v *string) *ContentItemCreate {
	if v != nil {
		_c.SetAnswerKey(*v)
	}
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *ContentItemCreate) SetExplanation(v string) *ContentItemCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_c *ContentItemCreate) SetNillableExplanation(v *string) *ContentItemCreate {
	if v != nil {
		_c.SetExplanation(*v)
	}
	return _c
}

// SetFront sets the "front" field.
func (_c *ContentItemCreate) SetFront(v string) *ContentItemCreate {
	_c.mutation.SetFront(v)
	return _c
}

// SetNillableFront sets the "front" field if the given value is not nil.
func (_c *ContentItemCreate) SetNillableFront(v *string) *ContentItemCreate {
	if v != nil {
		_c.SetFront(*v)
	}
	return _c
}

// SetBack sets the "back" field.
func (_c *ContentItemCreate) SetBack(v string) *ContentItemCreate {
	_c.mutation.SetBack(v)
	return _c
}

// SetNillableBack sets the "back" field if the given value is not nil.
func (_c *ContentItemCreate) SetNillableBack(v *string) *ContentItemCreate {
	if v != nil {
		_c.SetBack(*v)
	}
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *ContentItemCreate) SetEmbedding(v []float32) *ContentItemCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *ContentItemCreate) SetContentHash(v string) *ContentItemCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetRawResponse sets the "raw_response" field.
func (_c *ContentItemCreate) SetRawResponse(v string) *ContentItemCreate {
	_c.mutation.SetRawResponse(v)
	return _c
}

// SetNillableRawResponse sets the "raw_response" field if the given value is not nil.
func (_c *ContentItemCreate) SetNillableRawResponse(v *string) *ContentItemCreate {
	if v != nil {
		_c.SetRawResponse(*v)
	}
	return _c
}

// SetContextIds sets the "context_ids" field.
func (_c *ContentItemCreate) SetContextIds(v []string) *ContentItemCreate {
	_c.mutation.SetContextIds(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContentItemCreate) SetCreatedAt(v time.Time) *ContentItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContentItemCreate) SetNillableCreatedAt(v *time.Time) *ContentItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetConsumedAt sets the "consumed_at" field.
func (_c *ContentItemCreate) SetConsumedAt(v time.Time) *ContentItemCreate {
	_c.mutation.SetConsumedAt(v)
	return _c
}

// SetNillableConsumedAt sets the "consumed_at" field if the given value is not nil.
func (_c *ContentItemCreate) SetNillableConsumedAt(v *time.Time) *ContentItemCreate {
	if v != nil {
		_c.SetConsumedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContentItemCreate) SetID(v string) *ContentItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ContentItemMutation object of the builder.
func (_c *ContentItemCreate) Mutation() *ContentItemMutation {
	return _c.mutation
}

// Save creates the ContentItem in the database.
func (_c *ContentItemCreate) Save(ctx context.Context) (*ContentItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContentItemCreate) SaveX(ctx context.Context) *ContentItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContentItemCreate) defaults() {
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := contentitem.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.Question(); !ok {
		v := contentitem.DefaultQuestion
		_c.mutation.SetQuestion(v)
	}
	if _, ok := _c.mutation.AnswerKey(); !ok {
		v := contentitem.DefaultAnswerKey
		_c.mutation.SetAnswerKey(v)
	}
	if _, ok := _c.mutation.Explanation(); !ok {
		v := contentitem.DefaultExplanation
		_c.mutation.SetExplanation(v)
	}
	if _, ok := _c.mutation.Front(); !ok {
		v := contentitem.DefaultFront
		_c.mutation.SetFront(v)
	}
	if _, ok := _c.mutation.Back(); !ok {
		v := contentitem.DefaultBack
		_c.mutation.SetBack(v)
	}
	if _, ok := _c.mutation.RawResponse(); !ok {
		v := contentitem.DefaultRawResponse
		_c.mutation.SetRawResponse(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := contentitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContentItemCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ContentItem.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := contentitem.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ContentItem.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Week(); !ok {
		return &ValidationError{Name: "week", err: errors.New(`ent: missing required field "ContentItem.week"`)}
	}
	if v, ok := _c.mutation.Week(); ok {
		if err := contentitem.WeekValidator(v); err != nil {
			return &ValidationError{Name: "week", err: fmt.Errorf(`ent: validator failed for field "ContentItem.week": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentType(); !ok {
		return &ValidationError{Name: "content_type", err: errors.New(`ent: missing required field "ContentItem.content_type"`)}
	}
	if v, ok := _c.mutation.ContentType(); ok {
		if err := contentitem.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`ent: validator failed for field "ContentItem.content_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "ContentItem.difficulty"`)}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "ContentItem.question"`)}
	}
	if _, ok := _c.mutation.AnswerKey(); !ok {
		return &ValidationError{Name: "answer_key", err: errors.New(`ent: missing required field "ContentItem.answer_key"`)}
	}
	if _, ok := _c.mutation.Explanation(); !ok {
		return &ValidationError{Name: "explanation", err: errors.New(`ent: missing required field "ContentItem.explanation"`)}
	}
	if _, ok := _c.mutation.Front(); !ok {
		return &ValidationError{Name: "front", err: errors.New(`ent: missing required field "ContentItem.front"`)}
	}
	if _, ok := _c.mutation.Back(); !ok {
		return &ValidationError{Name: "back", err: errors.New(`ent: missing required field "ContentItem.back"`)}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "ContentItem.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := contentitem.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "ContentItem.content_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RawResponse(); !ok {
		return &ValidationError{Name: "raw_response", err: errors.New(`ent: missing required field "ContentItem.raw_response"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ContentItem.created_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := contentitem.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "ContentItem.id": %w`, err)}
		}
	}
	return nil
}

func (_c *ContentItemCreate) sqlSave(ctx context.Context) (*ContentItem, error) {
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
			return nil, fmt.Errorf("unexpected ContentItem.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ContentItemCreate) createSpec() (*ContentItem, *sqlgraph.CreateSpec) {
	var (
		_node = &ContentItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contentitem.Table, sqlgraph.NewFieldSpec(contentitem.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(contentitem.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Week(); ok {
		_spec.SetField(contentitem.FieldWeek, field.TypeInt, value)
		_node.Week = value
	}
	if value, ok := _c.mutation.ContentType(); ok {
		_spec.SetField(contentitem.FieldContentType, field.TypeString, value)
		_node.ContentType = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(contentitem.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(contentitem.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(contentitem.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.AnswerKey(); ok {
		_spec.SetField(contentitem.FieldAnswerKey, field.TypeString, value)
		_node.AnswerKey = value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(contentitem.FieldExplanation, field.TypeString, value)
		_node.Explanation = value
	}
	if value, ok := _c.mutation.Front(); ok {
		_spec.SetField(contentitem.FieldFront, field.TypeString, value)
		_node.Front = value
	}
	if value, ok := _c.mutation.Back(); ok {
		_spec.SetField(contentitem.FieldBack, field.TypeString, value)
		_node.Back = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(contentitem.FieldEmbedding, field.TypeJSON, value)
		_node.Embedding = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(contentitem.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.RawResponse(); ok {
		_spec.SetField(contentitem.FieldRawResponse, field.TypeString, value)
		_node.RawResponse = value
	}
	if value, ok := _c.mutation.ContextIds(); ok {
		_spec.SetField(contentitem.FieldContextIds, field.TypeJSON, value)
		_node.ContextIds = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(contentitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ConsumedAt(); ok {
		_spec.SetField(contentitem.FieldConsumedAt, field.TypeTime, value)
		_node.ConsumedAt = &value
	}
	return _node, _spec
}

// ContentItemCreateBulk is the builder for creating many ContentItem entities in bulk.
type ContentItemCreateBulk struct {
	config
	err      error
	builders []*ContentItemCreate
}

// Save creates the ContentItem entities in the database.
func (_c *ContentItemCreateBulk) Save(ctx context.Context) ([]*ContentItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ContentItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContentItemMutation)
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
func (_c *ContentItemCreateBulk) SaveX(ctx context.Context) []*ContentItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
