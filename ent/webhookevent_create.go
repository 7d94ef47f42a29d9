// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgeflow/forgeflow/ent/webhookevent"
)

// WebhookEventCreate is the builder for creating a WebhookEvent entity.
type WebhookEventCreate struct {
	config
	mutation *WebhookEventMutation
	hooks    []Hook
}

// SetSource sets the "source" field.
func (_c *WebhookEventCreate) SetSource(v string) *WebhookEventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *WebhookEventCreate) SetNillableSource(v *string) *WebhookEventCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *WebhookEventCreate) SetEventType(v string) *WebhookEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_c *WebhookEventCreate) SetNillableEventType(v *string) *WebhookEventCreate {
	if v != nil {
		_c.SetEventType(*v)
	}
	return _c
}

// SetExternalEventID sets the "external_event_id" field.
func (_c *WebhookEventCreate) SetExternalEventID(v string) *WebhookEventCreate {
	_c.mutation.SetExternalEventID(v)
	return _c
}

// SetNillableExternalEventID sets the "external_event_id" field if the given value is not nil.
func (_c *WebhookEventCreate) SetNillableExternalEventID(v *string) *WebhookEventCreate {
	if v != nil {
		_c.SetExternalEventID(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *WebhookEventCreate) SetPayload(v map[string]interface{}) *WebhookEventCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetHeaders sets the "headers" field.
func (_c *WebhookEventCreate) SetHeaders(v map[string]string) *WebhookEventCreate {
	_c.mutation.SetHeaders(v)
	return _c
}

// SetSignature sets the "signature" field.
func (_c *WebhookEventCreate) SetSignature(v string) *WebhookEventCreate {
	_c.mutation.SetSignature(v)
	return _c
}

// SetNillableSignature sets the "signature" field if the given value is not nil.
func (_c *WebhookEventCreate) SetNillableSignature(v *string) *WebhookEventCreate {
	if v != nil {
		_c.SetSignature(*v)
	}
	return _c
}

// SetReceivedAt sets the "received_at" field.
func (_c *WebhookEventCreate) SetReceivedAt(v time.Time) *WebhookEventCreate {
	_c.mutation.SetReceivedAt(v)
	return _c
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_c *WebhookEventCreate) SetNillableReceivedAt(v *time.Time) *WebhookEventCreate {
	if v != nil {
		_c.SetReceivedAt(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *WebhookEventCreate) SetProcessedAt(v time.Time) *WebhookEventCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *WebhookEventCreate) SetNillableProcessedAt(v *time.Time) *WebhookEventCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *WebhookEventCreate) SetOutcome(v webhookevent.Outcome) *WebhookEventCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_c *WebhookEventCreate) SetNillableOutcome(v *webhookevent.Outcome) *WebhookEventCreate {
	if v != nil {
		_c.SetOutcome(*v)
	}
	return _c
}

// SetOutcomeDetail sets the "outcome_detail" field.
func (_c *WebhookEventCreate) SetOutcomeDetail(v string) *WebhookEventCreate {
	_c.mutation.SetOutcomeDetail(v)
	return _c
}

// SetNillableOutcomeDetail sets the "outcome_detail" field if the given value is not nil.
func (_c *WebhookEventCreate) SetNillableOutcomeDetail(v *string) *WebhookEventCreate {
	if v != nil {
		_c.SetOutcomeDetail(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WebhookEventCreate) SetID(v int64) *WebhookEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the WebhookEventMutation object of the builder.
func (_c *WebhookEventCreate) Mutation() *WebhookEventMutation {
	return _c.mutation
}

// Save creates the WebhookEvent in the database.
func (_c *WebhookEventCreate) Save(ctx context.Context) (*WebhookEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WebhookEventCreate) SaveX(ctx context.Context) *WebhookEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WebhookEventCreate) defaults() {
	if _, ok := _c.mutation.Source(); !ok {
		v := webhookevent.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		v := webhookevent.DefaultReceivedAt()
		_c.mutation.SetReceivedAt(v)
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		v := webhookevent.DefaultOutcome
		_c.mutation.SetOutcome(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WebhookEventCreate) check() error {
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "WebhookEvent.source"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "WebhookEvent.payload"`)}
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		return &ValidationError{Name: "received_at", err: errors.New(`ent: missing required field "WebhookEvent.received_at"`)}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "WebhookEvent.outcome"`)}
	}
	if v, ok := _c.mutation.Outcome(); ok {
		if err := webhookevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "WebhookEvent.outcome": %w`, err)}
		}
	}
	return nil
}

func (_c *WebhookEventCreate) sqlSave(ctx context.Context) (*WebhookEvent, error) {
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
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int64(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WebhookEventCreate) createSpec() (*WebhookEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &WebhookEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(webhookevent.Table, sqlgraph.NewFieldSpec(webhookevent.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(webhookevent.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(webhookevent.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.ExternalEventID(); ok {
		_spec.SetField(webhookevent.FieldExternalEventID, field.TypeString, value)
		_node.ExternalEventID = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(webhookevent.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Headers(); ok {
		_spec.SetField(webhookevent.FieldHeaders, field.TypeJSON, value)
		_node.Headers = value
	}
	if value, ok := _c.mutation.Signature(); ok {
		_spec.SetField(webhookevent.FieldSignature, field.TypeString, value)
		_node.Signature = value
	}
	if value, ok := _c.mutation.ReceivedAt(); ok {
		_spec.SetField(webhookevent.FieldReceivedAt, field.TypeTime, value)
		_node.ReceivedAt = value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(webhookevent.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(webhookevent.FieldOutcome, field.TypeEnum, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.OutcomeDetail(); ok {
		_spec.SetField(webhookevent.FieldOutcomeDetail, field.TypeString, value)
		_node.OutcomeDetail = value
	}
	return _node, _spec
}

// WebhookEventCreateBulk is the builder for creating many WebhookEvent entities in bulk.
type WebhookEventCreateBulk struct {
	config
	err      error
	builders []*WebhookEventCreate
}

// Save creates the WebhookEvent entities in the database.
func (_c *WebhookEventCreateBulk) Save(ctx context.Context) ([]*WebhookEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WebhookEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WebhookEventMutation)
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
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int64(id)
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
func (_c *WebhookEventCreateBulk) SaveX(ctx context.Context) []*WebhookEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
