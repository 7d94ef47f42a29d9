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
	"github.com/forgeflow/forgeflow/ent/predicate"
	"github.com/forgeflow/forgeflow/ent/webhookevent"
)

// WebhookEventUpdate is the builder for updating WebhookEvent entities.
type WebhookEventUpdate struct {
	config
	hooks    []Hook
	mutation *WebhookEventMutation
}

// Where appends a list predicates to the WebhookEventUpdate builder.
func (_u *WebhookEventUpdate) Where(ps ...predicate.WebhookEvent) *WebhookEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSource sets the "source" field.
func (_u *WebhookEventUpdate) SetSource(v string) *WebhookEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *WebhookEventUpdate) SetNillableSource(v *string) *WebhookEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *WebhookEventUpdate) SetEventType(v string) *WebhookEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *WebhookEventUpdate) SetNillableEventType(v *string) *WebhookEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// ClearEventType clears the value of the "event_type" field.
func (_u *WebhookEventUpdate) ClearEventType() *WebhookEventUpdate {
	_u.mutation.ClearEventType()
	return _u
}

// SetExternalEventID sets the "external_event_id" field.
func (_u *WebhookEventUpdate) SetExternalEventID(v string) *WebhookEventUpdate {
	_u.mutation.SetExternalEventID(v)
	return _u
}

// SetNillableExternalEventID sets the "external_event_id" field if the given value is not nil.
func (_u *WebhookEventUpdate) SetNillableExternalEventID(v *string) *WebhookEventUpdate {
	if v != nil {
		_u.SetExternalEventID(*v)
	}
	return _u
}

// ClearExternalEventID clears the value of the "external_event_id" field.
func (_u *WebhookEventUpdate) ClearExternalEventID() *WebhookEventUpdate {
	_u.mutation.ClearExternalEventID()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *WebhookEventUpdate) SetPayload(v map[string]interface{}) *WebhookEventUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetHeaders sets the "headers" field.
func (_u *WebhookEventUpdate) SetHeaders(v map[string]string) *WebhookEventUpdate {
	_u.mutation.SetHeaders(v)
	return _u
}

// ClearHeaders clears the value of the "headers" field.
func (_u *WebhookEventUpdate) ClearHeaders() *WebhookEventUpdate {
	_u.mutation.ClearHeaders()
	return _u
}

// SetSignature sets the "signature" field.
func (_u *WebhookEventUpdate) SetSignature(v string) *WebhookEventUpdate {
	_u.mutation.SetSignature(v)
	return _u
}

// SetNillableSignature sets the "signature" field if the given value is not nil.
func (_u *WebhookEventUpdate) SetNillableSignature(v *string) *WebhookEventUpdate {
	if v != nil {
		_u.SetSignature(*v)
	}
	return _u
}

// ClearSignature clears the value of the "signature" field.
func (_u *WebhookEventUpdate) ClearSignature() *WebhookEventUpdate {
	_u.mutation.ClearSignature()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *WebhookEventUpdate) SetProcessedAt(v time.Time) *WebhookEventUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *WebhookEventUpdate) SetNillableProcessedAt(v *time.Time) *WebhookEventUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *WebhookEventUpdate) ClearProcessedAt() *WebhookEventUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *WebhookEventUpdate) SetOutcome(v webhookevent.Outcome) *WebhookEventUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *WebhookEventUpdate) SetNillableOutcome(v *webhookevent.Outcome) *WebhookEventUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetOutcomeDetail sets the "outcome_detail" field.
func (_u *WebhookEventUpdate) SetOutcomeDetail(v string) *WebhookEventUpdate {
	_u.mutation.SetOutcomeDetail(v)
	return _u
}

// SetNillableOutcomeDetail sets the "outcome_detail" field if the given value is not nil.
func (_u *WebhookEventUpdate) SetNillableOutcomeDetail(v *string) *WebhookEventUpdate {
	if v != nil {
		_u.SetOutcomeDetail(*v)
	}
	return _u
}

// ClearOutcomeDetail clears the value of the "outcome_detail" field.
func (_u *WebhookEventUpdate) ClearOutcomeDetail() *WebhookEventUpdate {
	_u.mutation.ClearOutcomeDetail()
	return _u
}

// Mutation returns the WebhookEventMutation object of the builder.
func (_u *WebhookEventUpdate) Mutation() *WebhookEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WebhookEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WebhookEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebhookEventUpdate) check() error {
	if v, ok := _u.mutation.Outcome(); ok {
		if err := webhookevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "WebhookEvent.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *WebhookEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(webhookevent.Table, webhookevent.Columns, sqlgraph.NewFieldSpec(webhookevent.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(webhookevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(webhookevent.FieldEventType, field.TypeString, value)
	}
	if _u.mutation.EventTypeCleared() {
		_spec.ClearField(webhookevent.FieldEventType, field.TypeString)
	}
	if value, ok := _u.mutation.ExternalEventID(); ok {
		_spec.SetField(webhookevent.FieldExternalEventID, field.TypeString, value)
	}
	if _u.mutation.ExternalEventIDCleared() {
		_spec.ClearField(webhookevent.FieldExternalEventID, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(webhookevent.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Headers(); ok {
		_spec.SetField(webhookevent.FieldHeaders, field.TypeJSON, value)
	}
	if _u.mutation.HeadersCleared() {
		_spec.ClearField(webhookevent.FieldHeaders, field.TypeJSON)
	}
	if value, ok := _u.mutation.Signature(); ok {
		_spec.SetField(webhookevent.FieldSignature, field.TypeString, value)
	}
	if _u.mutation.SignatureCleared() {
		_spec.ClearField(webhookevent.FieldSignature, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(webhookevent.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(webhookevent.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(webhookevent.FieldOutcome, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OutcomeDetail(); ok {
		_spec.SetField(webhookevent.FieldOutcomeDetail, field.TypeString, value)
	}
	if _u.mutation.OutcomeDetailCleared() {
		_spec.ClearField(webhookevent.FieldOutcomeDetail, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WebhookEventUpdateOne is the builder for updating a single WebhookEvent entity.
type WebhookEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WebhookEventMutation
}

// SetSource sets the "source" field.
func (_u *WebhookEventUpdateOne) SetSource(v string) *WebhookEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *WebhookEventUpdateOne) SetNillableSource(v *string) *WebhookEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *WebhookEventUpdateOne) SetEventType(v string) *WebhookEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *WebhookEventUpdateOne) SetNillableEventType(v *string) *WebhookEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// ClearEventType clears the value of the "event_type" field.
func (_u *WebhookEventUpdateOne) ClearEventType() *WebhookEventUpdateOne {
	_u.mutation.ClearEventType()
	return _u
}

// SetExternalEventID sets the "external_event_id" field.
func (_u *WebhookEventUpdateOne) SetExternalEventID(v string) *WebhookEventUpdateOne {
	_u.mutation.SetExternalEventID(v)
	return _u
}

// SetNillableExternalEventID sets the "external_event_id" field if the given value is not nil.
func (_u *WebhookEventUpdateOne) SetNillableExternalEventID(v *string) *WebhookEventUpdateOne {
	if v != nil {
		_u.SetExternalEventID(*v)
	}
	return _u
}

// ClearExternalEventID clears the value of the "external_event_id" field.
func (_u *WebhookEventUpdateOne) ClearExternalEventID() *WebhookEventUpdateOne {
	_u.mutation.ClearExternalEventID()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *WebhookEventUpdateOne) SetPayload(v map[string]interface{}) *WebhookEventUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetHeaders sets the "headers" field.
func (_u *WebhookEventUpdateOne) SetHeaders(v map[string]string) *WebhookEventUpdateOne {
	_u.mutation.SetHeaders(v)
	return _u
}

// ClearHeaders clears the value of the "headers" field.
func (_u *WebhookEventUpdateOne) ClearHeaders() *WebhookEventUpdateOne {
	_u.mutation.ClearHeaders()
	return _u
}

// SetSignature sets the "signature" field.
func (_u *WebhookEventUpdateOne) SetSignature(v string) *WebhookEventUpdateOne {
	_u.mutation.SetSignature(v)
	return _u
}

// SetNillableSignature sets the "signature" field if the given value is not nil.
func (_u *WebhookEventUpdateOne) SetNillableSignature(v *string) *WebhookEventUpdateOne {
	if v != nil {
		_u.SetSignature(*v)
	}
	return _u
}

// ClearSignature clears the value of the "signature" field.
func (_u *WebhookEventUpdateOne) ClearSignature() *WebhookEventUpdateOne {
	_u.mutation.ClearSignature()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *WebhookEventUpdateOne) SetProcessedAt(v time.Time) *WebhookEventUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *WebhookEventUpdateOne) SetNillableProcessedAt(v *time.Time) *WebhookEventUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *WebhookEventUpdateOne) ClearProcessedAt() *WebhookEventUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *WebhookEventUpdateOne) SetOutcome(v webhookevent.Outcome) *WebhookEventUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *WebhookEventUpdateOne) SetNillableOutcome(v *webhookevent.Outcome) *WebhookEventUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetOutcomeDetail sets the "outcome_detail" field.
func (_u *WebhookEventUpdateOne) SetOutcomeDetail(v string) *WebhookEventUpdateOne {
	_u.mutation.SetOutcomeDetail(v)
	return _u
}

// SetNillableOutcomeDetail sets the "outcome_detail" field if the given value is not nil.
func (_u *WebhookEventUpdateOne) SetNillableOutcomeDetail(v *string) *WebhookEventUpdateOne {
	if v != nil {
		_u.SetOutcomeDetail(*v)
	}
	return _u
}

// ClearOutcomeDetail clears the value of the "outcome_detail" field.
func (_u *WebhookEventUpdateOne) ClearOutcomeDetail() *WebhookEventUpdateOne {
	_u.mutation.ClearOutcomeDetail()
	return _u
}

// Mutation returns the WebhookEventMutation object of the builder.
func (_u *WebhookEventUpdateOne) Mutation() *WebhookEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the WebhookEventUpdate builder.
func (_u *WebhookEventUpdateOne) Where(ps ...predicate.WebhookEvent) *WebhookEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WebhookEventUpdateOne) Select(field string, fields ...string) *WebhookEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WebhookEvent entity.
func (_u *WebhookEventUpdateOne) Save(ctx context.Context) (*WebhookEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookEventUpdateOne) SaveX(ctx context.Context) *WebhookEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WebhookEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebhookEventUpdateOne) check() error {
	if v, ok := _u.mutation.Outcome(); ok {
		if err := webhookevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "WebhookEvent.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *WebhookEventUpdateOne) sqlSave(ctx context.Context) (_node *WebhookEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(webhookevent.Table, webhookevent.Columns, sqlgraph.NewFieldSpec(webhookevent.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WebhookEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, webhookevent.FieldID)
		for _, f := range fields {
			if !webhookevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != webhookevent.FieldID {
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
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(webhookevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(webhookevent.FieldEventType, field.TypeString, value)
	}
	if _u.mutation.EventTypeCleared() {
		_spec.ClearField(webhookevent.FieldEventType, field.TypeString)
	}
	if value, ok := _u.mutation.ExternalEventID(); ok {
		_spec.SetField(webhookevent.FieldExternalEventID, field.TypeString, value)
	}
	if _u.mutation.ExternalEventIDCleared() {
		_spec.ClearField(webhookevent.FieldExternalEventID, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(webhookevent.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Headers(); ok {
		_spec.SetField(webhookevent.FieldHeaders, field.TypeJSON, value)
	}
	if _u.mutation.HeadersCleared() {
		_spec.ClearField(webhookevent.FieldHeaders, field.TypeJSON)
	}
	if value, ok := _u.mutation.Signature(); ok {
		_spec.SetField(webhookevent.FieldSignature, field.TypeString, value)
	}
	if _u.mutation.SignatureCleared() {
		_spec.ClearField(webhookevent.FieldSignature, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(webhookevent.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(webhookevent.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(webhookevent.FieldOutcome, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OutcomeDetail(); ok {
		_spec.SetField(webhookevent.FieldOutcomeDetail, field.TypeString, value)
	}
	if _u.mutation.OutcomeDetailCleared() {
		_spec.ClearField(webhookevent.FieldOutcomeDetail, field.TypeString)
	}
	_node = &WebhookEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
