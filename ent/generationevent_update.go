// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/bumpwise/bumpquiz/ent/generationevent"
	"github.com/bumpwise/bumpquiz/ent/predicate"
)

// GenerationEventUpdate is the builder for updating GenerationEvent entities.
type GenerationEventUpdate struct {
	config
	hooks    []Hook
	mutation *GenerationEventMutation
}

// Where appends a list predicates to the GenerationEventUpdate builder.
func (_u *GenerationEventUpdate) Where(ps ...predicate.GenerationEvent) *GenerationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *GenerationEventUpdate) SetUserID(v string) *GenerationEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableUserID(v *string) *GenerationEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetWeek sets the "week" field.
func (_u *GenerationEventUpdate) SetWeek(v int) *GenerationEventUpdate {
	_u.mutation.ResetWeek()
	_u.mutation.SetWeek(v)
	return _u
}

// SetNillableWeek sets the "week" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableWeek(v *int) *GenerationEventUpdate {
	if v != nil {
		_u.SetWeek(*v)
	}
	return _u
}

// AddWeek adds value to the "week" field.
func (_u *GenerationEventUpdate) AddWeek(v int) *GenerationEventUpdate {
	_u.mutation.AddWeek(v)
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *GenerationEventUpdate) SetContentType(v string) *GenerationEventUpdate {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableContentType(v *string) *GenerationEventUpdate {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *GenerationEventUpdate) SetAttempt(v int) *GenerationEventUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableAttempt(v *int) *GenerationEventUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *GenerationEventUpdate) AddAttempt(v int) *GenerationEventUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetPromptFingerprint sets the "prompt_fingerprint" field.
func (_u *GenerationEventUpdate) SetPromptFingerprint(v string) *GenerationEventUpdate {
	_u.mutation.SetPromptFingerprint(v)
	return _u
}

// SetNillablePromptFingerprint sets the "prompt_fingerprint" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillablePromptFingerprint(v *string) *GenerationEventUpdate {
	if v != nil {
		_u.SetPromptFingerprint(*v)
	}
	return _u
}

// SetRawResponse sets the "raw_response" field.
func (_u *GenerationEventUpdate) SetRawResponse(v string) *GenerationEventUpdate {
	_u.mutation.SetRawResponse(v)
	return _u
}

// SetNillableRawResponse sets the "raw_response" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableRawResponse(v *string) *GenerationEventUpdate {
	if v != nil {
		_u.SetRawResponse(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *GenerationEventUpdate) SetLatencyMs(v int64) *GenerationEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableLatencyMs(v *int64) *GenerationEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *GenerationEventUpdate) AddLatencyMs(v int64) *GenerationEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetParseOk sets the "parse_ok" field.
func (_u *GenerationEventUpdate) SetParseOk(v bool) *GenerationEventUpdate {
	_u.mutation.SetParseOk(v)
	return _u
}

// SetNillableParseOk sets the "parse_ok" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableParseOk(v *bool) *GenerationEventUpdate {
	if v != nil {
		_u.SetParseOk(*v)
	}
	return _u
}

// SetValidCount sets the "valid_count" field.
func (_u *GenerationEventUpdate) SetValidCount(v int) *GenerationEventUpdate {
	_u.mutation.ResetValidCount()
	_u.mutation.SetValidCount(v)
	return _u
}

// SetNillableValidCount sets the "valid_count" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableValidCount(v *int) *GenerationEventUpdate {
	if v != nil {
		_u.SetValidCount(*v)
	}
	return _u
}

// AddValidCount adds value to the "valid_count" field.
func (_u *GenerationEventUpdate) AddValidCount(v int) *GenerationEventUpdate {
	_u.mutation.AddValidCount(v)
	return _u
}

// SetDuplicateCount sets the "duplicate_count" field.
func (_u *GenerationEventUpdate) SetDuplicateCount(v int) *GenerationEventUpdate {
	_u.mutation.ResetDuplicateCount()
	_u.mutation.SetDuplicateCount(v)
	return _u
}

// SetNillableDuplicateCount sets the "duplicate_count" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableDuplicateCount(v *int) *GenerationEventUpdate {
	if v != nil {
		_u.SetDuplicateCount(*v)
	}
	return _u
}

// AddDuplicateCount adds value to the "duplicate_count" field.
func (_u *GenerationEventUpdate) AddDuplicateCount(v int) *GenerationEventUpdate {
	_u.mutation.AddDuplicateCount(v)
	return _u
}

// SetMaxSimilarity sets the "max_similarity" field.
func (_u *GenerationEventUpdate) SetMaxSimilarity(v float64) *GenerationEventUpdate {
	_u.mutation.ResetMaxSimilarity()
	_u.mutation.SetMaxSimilarity(v)
	return _u
}

// SetNillableMaxSimilarity sets the "max_similarity" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableMaxSimilarity(v *float64) *GenerationEventUpdate {
	if v != nil {
		_u.SetMaxSimilarity(*v)
	}
	return _u
}

// AddMaxSimilarity adds value to the "max_similarity" field.
func (_u *GenerationEventUpdate) AddMaxSimilarity(v float64) *GenerationEventUpdate {
	_u.mutation.AddMaxSimilarity(v)
	return _u
}

// SetRejectionReasons sets the "rejection_reasons" field.
func (_u *GenerationEventUpdate) SetRejectionReasons(v []string) *GenerationEventUpdate {
	_u.mutation.SetRejectionReasons(v)
	return _u
}

// AppendRejectionReasons appends value to the "rejection_reasons" field.
func (_u *GenerationEventUpdate) AppendRejectionReasons(v []string) *GenerationEventUpdate {
	_u.mutation.AppendRejectionReasons(v)
	return _u
}

// ClearRejectionReasons clears the value of the "rejection_reasons" field.
func (_u *GenerationEventUpdate) ClearRejectionReasons() *GenerationEventUpdate {
	_u.mutation.ClearRejectionReasons()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *GenerationEventUpdate) SetSuccess(v bool) *GenerationEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableSuccess(v *bool) *GenerationEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// Mutation returns the GenerationEventMutation object of the builder.
func (_u *GenerationEventUpdate) Mutation() *GenerationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GenerationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenerationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GenerationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenerationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GenerationEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := generationevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "GenerationEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentType(); ok {
		if err := generationevent.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`ent: validator failed for field "GenerationEvent.content_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempt(); ok {
		if err := generationevent.AttemptValidator(v); err != nil {
			return &ValidationError{Name: "attempt", err: fmt.Errorf(`ent: validator failed for field "GenerationEvent.attempt": %w`, err)}
		}
	}
	return nil
}

func (_u *GenerationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generationevent.Table, generationevent.Columns, sqlgraph.NewFieldSpec(generationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(generationevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Week(); ok {
		_spec.SetField(generationevent.FieldWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeek(); ok {
		_spec.AddField(generationevent.FieldWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(generationevent.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(generationevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(generationevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PromptFingerprint(); ok {
		_spec.SetField(generationevent.FieldPromptFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawResponse(); ok {
		_spec.SetField(generationevent.FieldRawResponse, field.TypeString, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(generationevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(generationevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ParseOk(); ok {
		_spec.SetField(generationevent.FieldParseOk, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ValidCount(); ok {
		_spec.SetField(generationevent.FieldValidCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedValidCount(); ok {
		_spec.AddField(generationevent.FieldValidCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DuplicateCount(); ok {
		_spec.SetField(generationevent.FieldDuplicateCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDuplicateCount(); ok {
		_spec.AddField(generationevent.FieldDuplicateCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxSimilarity(); ok {
		_spec.SetField(generationevent.FieldMaxSimilarity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxSimilarity(); ok {
		_spec.AddField(generationevent.FieldMaxSimilarity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RejectionReasons(); ok {
		_spec.SetField(generationevent.FieldRejectionReasons, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRejectionReasons(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, generationevent.FieldRejectionReasons, value)
		})
	}
	if _u.mutation.RejectionReasonsCleared() {
		_spec.ClearField(generationevent.FieldRejectionReasons, field.TypeJSON)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(generationevent.FieldSuccess, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GenerationEventUpdateOne is the builder for updating a single GenerationEvent entity.
type GenerationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GenerationEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *GenerationEventUpdateOne) SetUserID(v string) *GenerationEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableUserID(v *string) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetWeek sets the "week" field.
func (_u *GenerationEventUpdateOne) SetWeek(v int) *GenerationEventUpdateOne {
	_u.mutation.ResetWeek()
	_u.mutation.SetWeek(v)
	return _u
}

// SetNillableWeek sets the "week" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableWeek(v *int) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetWeek(*v)
	}
	return _u
}

// AddWeek adds value to the "week" field.
func (_u *GenerationEventUpdateOne) AddWeek(v int) *GenerationEventUpdateOne {
	_u.mutation.AddWeek(v)
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *GenerationEventUpdateOne) SetContentType(v string) *GenerationEventUpdateOne {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableContentType(v *string) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *GenerationEventUpdateOne) SetAttempt(v int) *GenerationEventUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableAttempt(v *int) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *GenerationEventUpdateOne) AddAttempt(v int) *GenerationEventUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetPromptFingerprint sets the "prompt_fingerprint" field.
func (_u *GenerationEventUpdateOne) SetPromptFingerprint(v string) *GenerationEventUpdateOne {
	_u.mutation.SetPromptFingerprint(v)
	return _u
}

// SetNillablePromptFingerprint sets the "prompt_fingerprint" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillablePromptFingerprint(v *string) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetPromptFingerprint(*v)
	}
	return _u
}

// SetRawResponse sets the "raw_response" field.
func (_u *GenerationEventUpdateOne) SetRawResponse(v string) *GenerationEventUpdateOne {
	_u.mutation.SetRawResponse(v)
	return _u
}

// SetNillableRawResponse sets the "raw_response" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableRawResponse(v *string) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetRawResponse(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *GenerationEventUpdateOne) SetLatencyMs(v int64) *GenerationEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableLatencyMs(v *int64) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *GenerationEventUpdateOne) AddLatencyMs(v int64) *GenerationEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetParseOk sets the "parse_ok" field.
func (_u *GenerationEventUpdateOne) SetParseOk(v bool) *GenerationEventUpdateOne {
	_u.mutation.SetParseOk(v)
	return _u
}

// SetNillableParseOk sets the "parse_ok" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableParseOk(v *bool) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetParseOk(*v)
	}
	return _u
}

// SetValidCount sets the "valid_count" field.
func (_u *GenerationEventUpdateOne) SetValidCount(v int) *GenerationEventUpdateOne {
	_u.mutation.ResetValidCount()
	_u.mutation.SetValidCount(v)
	return _u
}

// SetNillableValidCount sets the "valid_count" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableValidCount(v *int) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetValidCount(*v)
	}
	return _u
}

// AddValidCount adds value to the "valid_count" field.
func (_u *GenerationEventUpdateOne) AddValidCount(v int) *GenerationEventUpdateOne {
	_u.mutation.AddValidCount(v)
	return _u
}

// SetDuplicateCount sets the "duplicate_count" field.
func (_u *GenerationEventUpdateOne) SetDuplicateCount(v int) *GenerationEventUpdateOne {
	_u.mutation.ResetDuplicateCount()
	_u.mutation.SetDuplicateCount(v)
	return _u
}

// SetNillableDuplicateCount sets the "duplicate_count" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableDuplicateCount(v *int) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetDuplicateCount(*v)
	}
	return _u
}

// AddDuplicateCount adds value to the "duplicate_count" field.
func (_u *GenerationEventUpdateOne) AddDuplicateCount(v int) *GenerationEventUpdateOne {
	_u.mutation.AddDuplicateCount(v)
	return _u
}

// SetMaxSimilarity sets the "max_similarity" field.
func (_u *GenerationEventUpdateOne) SetMaxSimilarity(v float64) *GenerationEventUpdateOne {
	_u.mutation.ResetMaxSimilarity()
	_u.mutation.SetMaxSimilarity(v)
	return _u
}

// SetNillableMaxSimilarity sets the "max_similarity" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableMaxSimilarity(v *float64) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetMaxSimilarity(*v)
	}
	return _u
}

// AddMaxSimilarity adds value to the "max_similarity" field.
func (_u *GenerationEventUpdateOne) AddMaxSimilarity(v float64) *GenerationEventUpdateOne {
	_u.mutation.AddMaxSimilarity(v)
	return _u
}

// SetRejectionReasons sets the "rejection_reasons" field.
func (_u *GenerationEventUpdateOne) SetRejectionReasons(v []string) *GenerationEventUpdateOne {
	_u.mutation.SetRejectionReasons(v)
	return _u
}

// AppendRejectionReasons appends value to the "rejection_reasons" field.
func (_u *GenerationEventUpdateOne) AppendRejectionReasons(v []string) *GenerationEventUpdateOne {
	_u.mutation.AppendRejectionReasons(v)
	return _u
}

// ClearRejectionReasons clears the value of the "rejection_reasons" field.
func (_u *GenerationEventUpdateOne) ClearRejectionReasons() *GenerationEventUpdateOne {
	_u.mutation.ClearRejectionReasons()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *GenerationEventUpdateOne) SetSuccess(v bool) *GenerationEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableSuccess(v *bool) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// Mutation returns the GenerationEventMutation object of the builder.
func (_u *GenerationEventUpdateOne) Mutation() *GenerationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the GenerationEventUpdate builder.
func (_u *GenerationEventUpdateOne) Where(ps ...predicate.GenerationEvent) *GenerationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GenerationEventUpdateOne) Select(field string, fields ...string) *GenerationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GenerationEvent entity.
func (_u *GenerationEventUpdateOne) Save(ctx context.Context) (*GenerationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenerationEventUpdateOne) SaveX(ctx context.Context) *GenerationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GenerationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenerationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GenerationEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := generationevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "GenerationEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentType(); ok {
		if err := generationevent.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`ent: validator failed for field "GenerationEvent.content_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempt(); ok {
		if err := generationevent.AttemptValidator(v); err != nil {
			return &ValidationError{Name: "attempt", err: fmt.Errorf(`ent: validator failed for field "GenerationEvent.attempt": %w`, err)}
		}
	}
	return nil
}

func (_u *GenerationEventUpdateOne) sqlSave(ctx context.Context) (_node *GenerationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generationevent.Table, generationevent.Columns, sqlgraph.NewFieldSpec(generationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GenerationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, generationevent.FieldID)
		for _, f := range fields {
			if !generationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != generationevent.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(generationevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Week(); ok {
		_spec.SetField(generationevent.FieldWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeek(); ok {
		_spec.AddField(generationevent.FieldWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(generationevent.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(generationevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(generationevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PromptFingerprint(); ok {
		_spec.SetField(generationevent.FieldPromptFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawResponse(); ok {
		_spec.SetField(generationevent.FieldRawResponse, field.TypeString, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(generationevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(generationevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ParseOk(); ok {
		_spec.SetField(generationevent.FieldParseOk, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ValidCount(); ok {
		_spec.SetField(generationevent.FieldValidCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedValidCount(); ok {
		_spec.AddField(generationevent.FieldValidCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DuplicateCount(); ok {
		_spec.SetField(generationevent.FieldDuplicateCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDuplicateCount(); ok {
		_spec.AddField(generationevent.FieldDuplicateCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxSimilarity(); ok {
		_spec.SetField(generationevent.FieldMaxSimilarity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxSimilarity(); ok {
		_spec.AddField(generationevent.FieldMaxSimilarity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RejectionReasons(); ok {
		_spec.SetField(generationevent.FieldRejectionReasons, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRejectionReasons(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, generationevent.FieldRejectionReasons, value)
		})
	}
	if _u.mutation.RejectionReasonsCleared() {
		_spec.ClearField(generationevent.FieldRejectionReasons, field.TypeJSON)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(generationevent.FieldSuccess, field.TypeBool, value)
	}
	_node = &GenerationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
