// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgeflow/forgeflow/ent/queueentry"
)

// QueueEntryCreate is the builder for creating a QueueEntry entity.
type QueueEntryCreate struct {
	config
	mutation *QueueEntryMutation
	hooks    []Hook
}

// SetExternalItemID sets the "external_item_id" field.
func (_c *QueueEntryCreate) SetExternalItemID(v string) *QueueEntryCreate {
	_c.mutation.SetExternalItemID(v)
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *QueueEntryCreate) SetTaskID(v int64) *QueueEntryCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_c *QueueEntryCreate) SetNillableTaskID(v *int64) *QueueEntryCreate {
	if v != nil {
		_c.SetTaskID(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *QueueEntryCreate) SetRunID(v int64) *QueueEntryCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_c *QueueEntryCreate) SetNillableRunID(v *int64) *QueueEntryCreate {
	if v != nil {
		_c.SetRunID(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *QueueEntryCreate) SetPriority(v int) *QueueEntryCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *QueueEntryCreate) SetNillablePriority(v *int) *QueueEntryCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetQueuedAt sets the "queued_at" field.
func (_c *QueueEntryCreate) SetQueuedAt(v time.Time) *QueueEntryCreate {
	_c.mutation.SetQueuedAt(v)
	return _c
}

// SetNillableQueuedAt sets the "queued_at" field if the given value is not nil.
func (_c *QueueEntryCreate) SetNillableQueuedAt(v *time.Time) *QueueEntryCreate {
	if v != nil {
		_c.SetQueuedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *QueueEntryCreate) SetStartedAt(v time.Time) *QueueEntryCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *QueueEntryCreate) SetNillableStartedAt(v *time.Time) *QueueEntryCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *QueueEntryCreate) SetCompletedAt(v time.Time) *QueueEntryCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *QueueEntryCreate) SetNillableCompletedAt(v *time.Time) *QueueEntryCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetWaitingSince sets the "waiting_since" field.
func (_c *QueueEntryCreate) SetWaitingSince(v time.Time) *QueueEntryCreate {
	_c.mutation.SetWaitingSince(v)
	return _c
}

// SetNillableWaitingSince sets the "waiting_since" field if the given value is not nil.
func (_c *QueueEntryCreate) SetNillableWaitingSince(v *time.Time) *QueueEntryCreate {
	if v != nil {
		_c.SetWaitingSince(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *QueueEntryCreate) SetStatus(v queueentry.Status) *QueueEntryCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *QueueEntryCreate) SetNillableStatus(v *queueentry.Status) *QueueEntryCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSchedulerRef sets the "scheduler_ref" field.
func (_c *QueueEntryCreate) SetSchedulerRef(v string) *QueueEntryCreate {
	_c.mutation.SetSchedulerRef(v)
	return _c
}

// SetNillableSchedulerRef sets the "scheduler_ref" field if the given value is not nil.
func (_c *QueueEntryCreate) SetNillableSchedulerRef(v *string) *QueueEntryCreate {
	if v != nil {
		_c.SetSchedulerRef(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *QueueEntryCreate) SetPodID(v string) *QueueEntryCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *QueueEntryCreate) SetNillablePodID(v *string) *QueueEntryCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *QueueEntryCreate) SetPayload(v map[string]interface{}) *QueueEntryCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetID sets the "id" field.
func (_c *QueueEntryCreate) SetID(v string) *QueueEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the QueueEntryMutation object of the builder.
func (_c *QueueEntryCreate) Mutation() *QueueEntryMutation {
	return _c.mutation
}

// Save creates the QueueEntry in the database.
func (_c *QueueEntryCreate) Save(ctx context.Context) (*QueueEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QueueEntryCreate) SaveX(ctx context.Context) *QueueEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueueEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueueEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QueueEntryCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := queueentry.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.QueuedAt(); !ok {
		v := queueentry.DefaultQueuedAt()
		_c.mutation.SetQueuedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := queueentry.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QueueEntryCreate) check() error {
	if _, ok := _c.mutation.ExternalItemID(); !ok {
		return &ValidationError{Name: "external_item_id", err: errors.New(`ent: missing required field "QueueEntry.external_item_id"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "QueueEntry.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := queueentry.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "QueueEntry.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QueuedAt(); !ok {
		return &ValidationError{Name: "queued_at", err: errors.New(`ent: missing required field "QueueEntry.queued_at"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "QueueEntry.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := queueentry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QueueEntry.status": %w`, err)}
		}
	}
	return nil
}

func (_c *QueueEntryCreate) sqlSave(ctx context.Context) (*QueueEntry, error) {
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
			return nil, fmt.Errorf("unexpected QueueEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QueueEntryCreate) createSpec() (*QueueEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &QueueEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(queueentry.Table, sqlgraph.NewFieldSpec(queueentry.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ExternalItemID(); ok {
		_spec.SetField(queueentry.FieldExternalItemID, field.TypeString, value)
		_node.ExternalItemID = value
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(queueentry.FieldTaskID, field.TypeInt64, value)
		_node.TaskID = &value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(queueentry.FieldRunID, field.TypeInt64, value)
		_node.RunID = &value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(queueentry.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.QueuedAt(); ok {
		_spec.SetField(queueentry.FieldQueuedAt, field.TypeTime, value)
		_node.QueuedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(queueentry.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(queueentry.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.WaitingSince(); ok {
		_spec.SetField(queueentry.FieldWaitingSince, field.TypeTime, value)
		_node.WaitingSince = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(queueentry.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SchedulerRef(); ok {
		_spec.SetField(queueentry.FieldSchedulerRef, field.TypeString, value)
		_node.SchedulerRef = value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(queueentry.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(queueentry.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	return _node, _spec
}

// QueueEntryCreateBulk is the builder for creating many QueueEntry entities in bulk.
type QueueEntryCreateBulk struct {
	config
	err      error
	builders []*QueueEntryCreate
}

// Save creates the QueueEntry entities in the database.
func (_c *QueueEntryCreateBulk) Save(ctx context.Context) ([]*QueueEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QueueEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QueueEntryMutation)
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
func (_c *QueueEntryCreateBulk) SaveX(ctx context.Context) []*QueueEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueueEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueueEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
