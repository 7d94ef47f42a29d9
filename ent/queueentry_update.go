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
	"github.com/forgeflow/forgeflow/ent/queueentry"
)

// QueueEntryUpdate is the builder for updating QueueEntry entities.
type QueueEntryUpdate struct {
	config
	hooks    []Hook
	mutation *QueueEntryMutation
}

// Where appends a list predicates to the QueueEntryUpdate builder.
func (_u *QueueEntryUpdate) Where(ps ...predicate.QueueEntry) *QueueEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExternalItemID sets the "external_item_id" field.
func (_u *QueueEntryUpdate) SetExternalItemID(v string) *QueueEntryUpdate {
	_u.mutation.SetExternalItemID(v)
	return _u
}

// SetNillableExternalItemID sets the "external_item_id" field if the given value is not nil.
func (_u *QueueEntryUpdate) SetNillableExternalItemID(v *string) *QueueEntryUpdate {
	if v != nil {
		_u.SetExternalItemID(*v)
	}
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *QueueEntryUpdate) SetTaskID(v int64) *QueueEntryUpdate {
	_u.mutation.ResetTaskID()
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *QueueEntryUpdate) SetNillableTaskID(v *int64) *QueueEntryUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// AddTaskID adds value to the "task_id" field.
func (_u *QueueEntryUpdate) AddTaskID(v int64) *QueueEntryUpdate {
	_u.mutation.AddTaskID(v)
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *QueueEntryUpdate) ClearTaskID() *QueueEntryUpdate {
	_u.mutation.ClearTaskID()
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *QueueEntryUpdate) SetRunID(v int64) *QueueEntryUpdate {
	_u.mutation.ResetRunID()
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *QueueEntryUpdate) SetNillableRunID(v *int64) *QueueEntryUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// AddRunID adds value to the "run_id" field.
func (_u *QueueEntryUpdate) AddRunID(v int64) *QueueEntryUpdate {
	_u.mutation.AddRunID(v)
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *QueueEntryUpdate) ClearRunID() *QueueEntryUpdate {
	_u.mutation.ClearRunID()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *QueueEntryUpdate) SetPriority(v int) *QueueEntryUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *QueueEntryUpdate) SetNillablePriority(v *int) *QueueEntryUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *QueueEntryUpdate) AddPriority(v int) *QueueEntryUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *QueueEntryUpdate) SetStartedAt(v time.Time) *QueueEntryUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *QueueEntryUpdate) SetNillableStartedAt(v *time.Time) *QueueEntryUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *QueueEntryUpdate) ClearStartedAt() *QueueEntryUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *QueueEntryUpdate) SetCompletedAt(v time.Time) *QueueEntryUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *QueueEntryUpdate) SetNillableCompletedAt(v *time.Time) *QueueEntryUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *QueueEntryUpdate) ClearCompletedAt() *QueueEntryUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetWaitingSince sets the "waiting_since" field.
func (_u *QueueEntryUpdate) SetWaitingSince(v time.Time) *QueueEntryUpdate {
	_u.mutation.SetWaitingSince(v)
	return _u
}

// SetNillableWaitingSince sets the "waiting_since" field if the given value is not nil.
func (_u *QueueEntryUpdate) SetNillableWaitingSince(v *time.Time) *QueueEntryUpdate {
	if v != nil {
		_u.SetWaitingSince(*v)
	}
	return _u
}

// ClearWaitingSince clears the value of the "waiting_since" field.
func (_u *QueueEntryUpdate) ClearWaitingSince() *QueueEntryUpdate {
	_u.mutation.ClearWaitingSince()
	return _u
}

// SetStatus sets the "status" field.
func (_u *QueueEntryUpdate) SetStatus(v queueentry.Status) *QueueEntryUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QueueEntryUpdate) SetNillableStatus(v *queueentry.Status) *QueueEntryUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSchedulerRef sets the "scheduler_ref" field.
func (_u *QueueEntryUpdate) SetSchedulerRef(v string) *QueueEntryUpdate {
	_u.mutation.SetSchedulerRef(v)
	return _u
}

// SetNillableSchedulerRef sets the "scheduler_ref" field if the given value is not nil.
func (_u *QueueEntryUpdate) SetNillableSchedulerRef(v *string) *QueueEntryUpdate {
	if v != nil {
		_u.SetSchedulerRef(*v)
	}
	return _u
}

// ClearSchedulerRef clears the value of the "scheduler_ref" field.
func (_u *QueueEntryUpdate) ClearSchedulerRef() *QueueEntryUpdate {
	_u.mutation.ClearSchedulerRef()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *QueueEntryUpdate) SetPodID(v string) *QueueEntryUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *QueueEntryUpdate) SetNillablePodID(v *string) *QueueEntryUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *QueueEntryUpdate) ClearPodID() *QueueEntryUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *QueueEntryUpdate) SetPayload(v map[string]interface{}) *QueueEntryUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *QueueEntryUpdate) ClearPayload() *QueueEntryUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// Mutation returns the QueueEntryMutation object of the builder.
func (_u *QueueEntryUpdate) Mutation() *QueueEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QueueEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueueEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QueueEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueueEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QueueEntryUpdate) check() error {
	if v, ok := _u.mutation.Priority(); ok {
		if err := queueentry.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "QueueEntry.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := queueentry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QueueEntry.status": %w`, err)}
		}
	}
	return nil
}

func (_u *QueueEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(queueentry.Table, queueentry.Columns, sqlgraph.NewFieldSpec(queueentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExternalItemID(); ok {
		_spec.SetField(queueentry.FieldExternalItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(queueentry.FieldTaskID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTaskID(); ok {
		_spec.AddField(queueentry.FieldTaskID, field.TypeInt64, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(queueentry.FieldTaskID, field.TypeInt64)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(queueentry.FieldRunID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRunID(); ok {
		_spec.AddField(queueentry.FieldRunID, field.TypeInt64, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(queueentry.FieldRunID, field.TypeInt64)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(queueentry.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(queueentry.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(queueentry.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(queueentry.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(queueentry.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(queueentry.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.WaitingSince(); ok {
		_spec.SetField(queueentry.FieldWaitingSince, field.TypeTime, value)
	}
	if _u.mutation.WaitingSinceCleared() {
		_spec.ClearField(queueentry.FieldWaitingSince, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(queueentry.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SchedulerRef(); ok {
		_spec.SetField(queueentry.FieldSchedulerRef, field.TypeString, value)
	}
	if _u.mutation.SchedulerRefCleared() {
		_spec.ClearField(queueentry.FieldSchedulerRef, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(queueentry.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(queueentry.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(queueentry.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(queueentry.FieldPayload, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queueentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QueueEntryUpdateOne is the builder for updating a single QueueEntry entity.
type QueueEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QueueEntryMutation
}

// SetExternalItemID sets the "external_item_id" field.
func (_u *QueueEntryUpdateOne) SetExternalItemID(v string) *QueueEntryUpdateOne {
	_u.mutation.SetExternalItemID(v)
	return _u
}

// SetNillableExternalItemID sets the "external_item_id" field if the given value is not nil.
func (_u *QueueEntryUpdateOne) SetNillableExternalItemID(v *string) *QueueEntryUpdateOne {
	if v != nil {
		_u.SetExternalItemID(*v)
	}
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *QueueEntryUpdateOne) SetTaskID(v int64) *QueueEntryUpdateOne {
	_u.mutation.ResetTaskID()
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *QueueEntryUpdateOne) SetNillableTaskID(v *int64) *QueueEntryUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// AddTaskID adds value to the "task_id" field.
func (_u *QueueEntryUpdateOne) AddTaskID(v int64) *QueueEntryUpdateOne {
	_u.mutation.AddTaskID(v)
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *QueueEntryUpdateOne) ClearTaskID() *QueueEntryUpdateOne {
	_u.mutation.ClearTaskID()
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *QueueEntryUpdateOne) SetRunID(v int64) *QueueEntryUpdateOne {
	_u.mutation.ResetRunID()
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *QueueEntryUpdateOne) SetNillableRunID(v *int64) *QueueEntryUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// AddRunID adds value to the "run_id" field.
func (_u *QueueEntryUpdateOne) AddRunID(v int64) *QueueEntryUpdateOne {
	_u.mutation.AddRunID(v)
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *QueueEntryUpdateOne) ClearRunID() *QueueEntryUpdateOne {
	_u.mutation.ClearRunID()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *QueueEntryUpdateOne) SetPriority(v int) *QueueEntryUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *QueueEntryUpdateOne) SetNillablePriority(v *int) *QueueEntryUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *QueueEntryUpdateOne) AddPriority(v int) *QueueEntryUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *QueueEntryUpdateOne) SetStartedAt(v time.Time) *QueueEntryUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *QueueEntryUpdateOne) SetNillableStartedAt(v *time.Time) *QueueEntryUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *QueueEntryUpdateOne) ClearStartedAt() *QueueEntryUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *QueueEntryUpdateOne) SetCompletedAt(v time.Time) *QueueEntryUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *QueueEntryUpdateOne) SetNillableCompletedAt(v *time.Time) *QueueEntryUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *QueueEntryUpdateOne) ClearCompletedAt() *QueueEntryUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetWaitingSince sets the "waiting_since" field.
func (_u *QueueEntryUpdateOne) SetWaitingSince(v time.Time) *QueueEntryUpdateOne {
	_u.mutation.SetWaitingSince(v)
	return _u
}

// SetNillableWaitingSince sets the "waiting_since" field if the given value is not nil.
func (_u *QueueEntryUpdateOne) SetNillableWaitingSince(v *time.Time) *QueueEntryUpdateOne {
	if v != nil {
		_u.SetWaitingSince(*v)
	}
	return _u
}

// ClearWaitingSince clears the value of the "waiting_since" field.
func (_u *QueueEntryUpdateOne) ClearWaitingSince() *QueueEntryUpdateOne {
	_u.mutation.ClearWaitingSince()
	return _u
}

// SetStatus sets the "status" field.
func (_u *QueueEntryUpdateOne) SetStatus(v queueentry.Status) *QueueEntryUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QueueEntryUpdateOne) SetNillableStatus(v *queueentry.Status) *QueueEntryUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSchedulerRef sets the "scheduler_ref" field.
func (_u *QueueEntryUpdateOne) SetSchedulerRef(v string) *QueueEntryUpdateOne {
	_u.mutation.SetSchedulerRef(v)
	return _u
}

// SetNillableSchedulerRef sets the "scheduler_ref" field if the given value is not nil.
func (_u *QueueEntryUpdateOne) SetNillableSchedulerRef(v *string) *QueueEntryUpdateOne {
	if v != nil {
		_u.SetSchedulerRef(*v)
	}
	return _u
}

// ClearSchedulerRef clears the value of the "scheduler_ref" field.
func (_u *QueueEntryUpdateOne) ClearSchedulerRef() *QueueEntryUpdateOne {
	_u.mutation.ClearSchedulerRef()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *QueueEntryUpdateOne) SetPodID(v string) *QueueEntryUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *QueueEntryUpdateOne) SetNillablePodID(v *string) *QueueEntryUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *QueueEntryUpdateOne) ClearPodID() *QueueEntryUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *QueueEntryUpdateOne) SetPayload(v map[string]interface{}) *QueueEntryUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *QueueEntryUpdateOne) ClearPayload() *QueueEntryUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// Mutation returns the QueueEntryMutation object of the builder.
func (_u *QueueEntryUpdateOne) Mutation() *QueueEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the QueueEntryUpdate builder.
func (_u *QueueEntryUpdateOne) Where(ps ...predicate.QueueEntry) *QueueEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QueueEntryUpdateOne) Select(field string, fields ...string) *QueueEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QueueEntry entity.
func (_u *QueueEntryUpdateOne) Save(ctx context.Context) (*QueueEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueueEntryUpdateOne) SaveX(ctx context.Context) *QueueEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QueueEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueueEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QueueEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Priority(); ok {
		if err := queueentry.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "QueueEntry.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := queueentry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QueueEntry.status": %w`, err)}
		}
	}
	return nil
}

func (_u *QueueEntryUpdateOne) sqlSave(ctx context.Context) (_node *QueueEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(queueentry.Table, queueentry.Columns, sqlgraph.NewFieldSpec(queueentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QueueEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, queueentry.FieldID)
		for _, f := range fields {
			if !queueentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != queueentry.FieldID {
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
	if value, ok := _u.mutation.ExternalItemID(); ok {
		_spec.SetField(queueentry.FieldExternalItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(queueentry.FieldTaskID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTaskID(); ok {
		_spec.AddField(queueentry.FieldTaskID, field.TypeInt64, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(queueentry.FieldTaskID, field.TypeInt64)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(queueentry.FieldRunID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRunID(); ok {
		_spec.AddField(queueentry.FieldRunID, field.TypeInt64, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(queueentry.FieldRunID, field.TypeInt64)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(queueentry.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(queueentry.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(queueentry.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(queueentry.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(queueentry.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(queueentry.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.WaitingSince(); ok {
		_spec.SetField(queueentry.FieldWaitingSince, field.TypeTime, value)
	}
	if _u.mutation.WaitingSinceCleared() {
		_spec.ClearField(queueentry.FieldWaitingSince, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(queueentry.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SchedulerRef(); ok {
		_spec.SetField(queueentry.FieldSchedulerRef, field.TypeString, value)
	}
	if _u.mutation.SchedulerRefCleared() {
		_spec.ClearField(queueentry.FieldSchedulerRef, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(queueentry.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(queueentry.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(queueentry.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(queueentry.FieldPayload, field.TypeJSON)
	}
	_node = &QueueEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queueentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
