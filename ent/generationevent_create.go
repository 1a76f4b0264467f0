// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bumpwise/bumpquiz/ent/generationevent"
)

// GenerationEventCreate is the builder for creating a GenerationEvent entity.
type GenerationEventCreate struct {
	config
	mutation *GenerationEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *GenerationEventCreate) SetSequence(v int64) *GenerationEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *GenerationEventCreate) SetTimestamp(v time.Time) *GenerationEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *GenerationEventCreate) SetNillableTimestamp(v *time.Time) *GenerationEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *GenerationEventCreate) SetUserID(v string) *GenerationEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetWeek sets the "week" field.
func (_c *GenerationEventCreate) SetWeek(v int) *GenerationEventCreate {
	_c.mutation.SetWeek(v)
	return _c
}

// SetContentType sets the "content_type" field.
func (_c *GenerationEventCreate) SetContentType(v string) *GenerationEventCreate {
	_c.mutation.SetContentType(v)
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *GenerationEventCreate) SetAttempt(v int) *GenerationEventCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetPromptFingerprint sets the "prompt_fingerprint" field.
func (_c *GenerationEventCreate) SetPromptFingerprint(v string) *GenerationEventCreate {
	_c.mutation.SetPromptFingerprint(v)
	return _c
}

// SetNillablePromptFingerprint sets the "prompt_fingerprint" field if the given value is not nil.
func (_c *GenerationEventCreate) SetNillablePromptFingerprint(v *string) *GenerationEventCreate {
	if v != nil {
		_c.SetPromptFingerprint(*v)
	}
	return _c
}

// SetRawResponse sets the "raw_response" field.
func (_c *GenerationEventCreate) SetRawResponse(v string) *GenerationEventCreate {
	_c.mutation.SetRawResponse(v)
	return _c
}

// SetNillableRawResponse sets the "raw_response" field if the given value is not nil.
func (_c *GenerationEventCreate) SetNillableRawResponse(v *string) *GenerationEventCreate {
	if v != nil {
		_c.SetRawResponse(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *GenerationEventCreate) SetLatencyMs(v int64) *GenerationEventCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *GenerationEventCreate) SetNillableLatencyMs(v *int64) *GenerationEventCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetParseOk sets the "parse_ok" field.
func (_c *GenerationEventCreate) SetParseOk(v bool) *GenerationEventCreate {
	_c.mutation.SetParseOk(v)
	return _c
}

// SetNillableParseOk sets the "parse_ok" field if the given value is not nil.
func (_c *GenerationEventCreate) SetNillableParseOk(v *bool) *GenerationEventCreate {
	if v != nil {
		_c.SetParseOk(*v)
	}
	return _c
}

// SetValidCount sets the "valid_count" field.
func (_c *GenerationEventCreate) SetValidCount(v int) *GenerationEventCreate {
	_c.mutation.SetValidCount(v)
	return _c
}

// SetNillableValidCount sets the "valid_count" field if the given value is not nil.
func (_c *GenerationEventCreate) SetNillableValidCount(v *int) *GenerationEventCreate {
	if v != nil {
		_c.SetValidCount(*v)
	}
	return _c
}

// SetDuplicateCount sets the "duplicate_count" field.
func (_c *GenerationEventCreate) SetDuplicateCount(v int) *GenerationEventCreate {
	_c.mutation.SetDuplicateCount(v)
	return _c
}

// SetNillableDuplicateCount sets the "duplicate_count" field if the given value is not nil.
func (_c *GenerationEventCreate) SetNillableDuplicateCount(v *int) *GenerationEventCreate {
	if v != nil {
		_c.SetDuplicateCount(*v)
	}
	return _c
}

// SetMaxSimilarity sets the "max_similarity" field.
func (_c *GenerationEventCreate) SetMaxSimilarity(v float64) *GenerationEventCreate {
	_c.mutation.SetMaxSimilarity(v)
	return _c
}

// SetNillableMaxSimilarity sets the "max_similarity" field if the given value is not nil.
func (_c *GenerationEventCreate) SetNillableMaxSimilarity(v *float64) *GenerationEventCreate {
	if v != nil {
		_c.SetMaxSimilarity(*v)
	}
	return _c
}

// SetRejectionReasons sets the "rejection_reasons" field.
func (_c *GenerationEventCreate) SetRejectionReasons(v []string) *GenerationEventCreate {
	_c.mutation.SetRejectionReasons(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *GenerationEventCreate) SetSuccess(v bool) *GenerationEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_c *GenerationEventCreate) SetNillableSuccess(v *bool) *GenerationEventCreate {
	if v != nil {
		_c.SetSuccess(*v)
	}
	return _c
}

// Mutation returns the GenerationEventMutation object of the builder.
func (_c *GenerationEventCreate) Mutation() *GenerationEventMutation {
	return _c.mutation
}

// Save creates the GenerationEvent in the database.
func (_c *GenerationEventCreate) Save(ctx context.Context) (*GenerationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GenerationEventCreate) SaveX(ctx context.Context) *GenerationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GenerationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GenerationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GenerationEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := generationevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.PromptFingerprint(); !ok {
		v := generationevent.DefaultPromptFingerprint
		_c.mutation.SetPromptFingerprint(v)
	}
	if _, ok := _c.mutation.RawResponse(); !ok {
		v := generationevent.DefaultRawResponse
		_c.mutation.SetRawResponse(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := generationevent.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.ParseOk(); !ok {
		v := generationevent.DefaultParseOk
		_c.mutation.SetParseOk(v)
	}
	if _, ok := _c.mutation.ValidCount(); !ok {
		v := generationevent.DefaultValidCount
		_c.mutation.SetValidCount(v)
	}
	if _, ok := _c.mutation.DuplicateCount(); !ok {
		v := generationevent.DefaultDuplicateCount
		_c.mutation.SetDuplicateCount(v)
	}
	if _, ok := _c.mutation.MaxSimilarity(); !ok {
		v := generationevent.DefaultMaxSimilarity
		_c.mutation.SetMaxSimilarity(v)
	}
	if _, ok := _c.mutation.Success(); !ok {
		v := generationevent.DefaultSuccess
		_c.mutation.SetSuccess(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GenerationEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "GenerationEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "GenerationEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "GenerationEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := generationevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "GenerationEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Week(); !ok {
		return &ValidationError{Name: "week", err: errors.New(`ent: missing required field "GenerationEvent.week"`)}
	}
	if _, ok := _c.mutation.ContentType(); !ok {
		return &ValidationError{Name: "content_type", err: errors.New(`ent: missing required field "GenerationEvent.content_type"`)}
	}
	if v, ok := _c.mutation.ContentType(); ok {
		if err := generationevent.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`ent: validator failed for field "GenerationEvent.content_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "GenerationEvent.attempt"`)}
	}
	if v, ok := _c.mutation.Attempt(); ok {
		if err := generationevent.AttemptValidator(v); err != nil {
			return &ValidationError{Name: "attempt", err: fmt.Errorf(`ent: validator failed for field "GenerationEvent.attempt": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PromptFingerprint(); !ok {
		return &ValidationError{Name: "prompt_fingerprint", err: errors.New(`ent: missing required field "GenerationEvent.prompt_fingerprint"`)}
	}
	if _, ok := _c.mutation.RawResponse(); !ok {
		return &ValidationError{Name: "raw_response", err: errors.New(`ent: missing required field "GenerationEvent.raw_response"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "GenerationEvent.latency_ms"`)}
	}
	if _, ok := _c.mutation.ParseOk(); !ok {
		return &ValidationError{Name: "parse_ok", err: errors.New(`ent: missing required field "GenerationEvent.parse_ok"`)}
	}
	if _, ok := _c.mutation.ValidCount(); !ok {
		return &ValidationError{Name: "valid_count", err: errors.New(`ent: missing required field "GenerationEvent.valid_count"`)}
	}
	if _, ok := _c.mutation.DuplicateCount(); !ok {
		return &ValidationError{Name: "duplicate_count", err: errors.New(`ent: missing required field "GenerationEvent.duplicate_count"`)}
	}
	if _, ok := _c.mutation.MaxSimilarity(); !ok {
		return &ValidationError{Name: "max_similarity", err: errors.New(`ent: missing required field "GenerationEvent.max_similarity"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "GenerationEvent.success"`)}
	}
	return nil
}

func (_c *GenerationEventCreate) sqlSave(ctx context.Context) (*GenerationEvent, error) {
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

func (_c *GenerationEventCreate) createSpec() (*GenerationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &GenerationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(generationevent.Table, sqlgraph.NewFieldSpec(generationevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(generationevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(generationevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(generationevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Week(); ok {
		_spec.SetField(generationevent.FieldWeek, field.TypeInt, value)
		_node.Week = value
	}
	if value, ok := _c.mutation.ContentType(); ok {
		_spec.SetField(generationevent.FieldContentType, field.TypeString, value)
		_node.ContentType = value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(generationevent.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.PromptFingerprint(); ok {
		_spec.SetField(generationevent.FieldPromptFingerprint, field.TypeString, value)
		_node.PromptFingerprint = value
	}
	if value, ok := _c.mutation.RawResponse(); ok {
		_spec.SetField(generationevent.FieldRawResponse, field.TypeString, value)
		_node.RawResponse = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(generationevent.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.ParseOk(); ok {
		_spec.SetField(generationevent.FieldParseOk, field.TypeBool, value)
		_node.ParseOk = value
	}
	if value, ok := _c.mutation.ValidCount(); ok {
		_spec.SetField(generationevent.FieldValidCount, field.TypeInt, value)
		_node.ValidCount = value
	}
	if value, ok := _c.mutation.DuplicateCount(); ok {
		_spec.SetField(generationevent.FieldDuplicateCount, field.TypeInt, value)
		_node.DuplicateCount = value
	}
	if value, ok := _c.mutation.MaxSimilarity(); ok {
		_spec.SetField(generationevent.FieldMaxSimilarity, field.TypeFloat64, value)
		_node.MaxSimilarity = value
	}
	if value, ok := _c.mutation.RejectionReasons(); ok {
		_spec.SetField(generationevent.FieldRejectionReasons, field.TypeJSON, value)
		_node.RejectionReasons = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(generationevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	return _node, _spec
}

// GenerationEventCreateBulk is the builder for creating many GenerationEvent entities in bulk.
type GenerationEventCreateBulk struct {
	config
	err      error
	builders []*GenerationEventCreate
}

// Save creates the GenerationEvent entities in the database.
func (_c *GenerationEventCreateBulk) Save(ctx context.Context) ([]*GenerationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GenerationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GenerationEventMutation)
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
func (_c *GenerationEventCreateBulk) SaveX(ctx context.Context) []*GenerationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GenerationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GenerationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
