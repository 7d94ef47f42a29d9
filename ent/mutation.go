// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forgeflow/forgeflow/ent/predicate"
	"github.com/forgeflow/forgeflow/ent/queueentry"
	"github.com/forgeflow/forgeflow/ent/run"
	"github.com/forgeflow/forgeflow/ent/stageexecution"
	"github.com/forgeflow/forgeflow/ent/task"
	"github.com/forgeflow/forgeflow/ent/validationrequest"
	"github.com/forgeflow/forgeflow/ent/validationresponse"
	"github.com/forgeflow/forgeflow/ent/webhookevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeQueueEntry         = "QueueEntry"
	TypeRun                = "Run"
	TypeStageExecution     = "StageExecution"
	TypeTask               = "Task"
	TypeValidationRequest  = "ValidationRequest"
	TypeValidationResponse = "ValidationResponse"
	TypeWebhookEvent       = "WebhookEvent"
)

// QueueEntryMutation represents an operation that mutates the QueueEntry nodes in the graph.
type QueueEntryMutation struct {
	config
	op               Op
	typ              string
	id               *string
	external_item_id *string
	task_id          *int64
	addtask_id       *int64
	run_id           *int64
	addrun_id        *int64
	priority         *int
	addpriority      *int
	queued_at        *time.Time
	started_at       *time.Time
	completed_at     *time.Time
	waiting_since    *time.Time
	status           *queueentry.Status
	scheduler_ref    *string
	pod_id           *string
	payload          *map[string]interface{}
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*QueueEntry, error)
	predicates       []predicate.QueueEntry
}

var _ ent.Mutation = (*QueueEntryMutation)(nil)

// queueentryOption allows management of the mutation configuration using functional options.
type queueentryOption func(*QueueEntryMutation)

// newQueueEntryMutation creates new mutation for the QueueEntry entity.
func newQueueEntryMutation(c config, op Op, opts ...queueentryOption) *QueueEntryMutation {
	m := &QueueEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeQueueEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQueueEntryID sets the ID field of the mutation.
func withQueueEntryID(id string) queueentryOption {
	return func(m *QueueEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *QueueEntry
		)
		m.oldValue = func(ctx context.Context) (*QueueEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QueueEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQueueEntry sets the old QueueEntry of the mutation.
func withQueueEntry(node *QueueEntry) queueentryOption {
	return func(m *QueueEntryMutation) {
		m.oldValue = func(context.Context) (*QueueEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QueueEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QueueEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QueueEntry entities.
func (m *QueueEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QueueEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QueueEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QueueEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExternalItemID sets the "external_item_id" field.
func (m *QueueEntryMutation) SetExternalItemID(s string) {
	m.external_item_id = &s
}

// ExternalItemID returns the value of the "external_item_id" field in the mutation.
func (m *QueueEntryMutation) ExternalItemID() (r string, exists bool) {
	v := m.external_item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalItemID returns the old "external_item_id" field's value of the QueueEntry entity.
// If the QueueEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueEntryMutation) OldExternalItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalItemID: %w", err)
	}
	return oldValue.ExternalItemID, nil
}

// ResetExternalItemID resets all changes to the "external_item_id" field.
func (m *QueueEntryMutation) ResetExternalItemID() {
	m.external_item_id = nil
}

// SetTaskID sets the "task_id" field.
func (m *QueueEntryMutation) SetTaskID(i int64) {
	m.task_id = &i
	m.addtask_id = nil
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *QueueEntryMutation) TaskID() (r int64, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the QueueEntry entity.
// If the QueueEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueEntryMutation) OldTaskID(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// AddTaskID adds i to the "task_id" field.
func (m *QueueEntryMutation) AddTaskID(i int64) {
	if m.addtask_id != nil {
		*m.addtask_id += i
	} else {
		m.addtask_id = &i
	}
}

// AddedTaskID returns the value that was added to the "task_id" field in this mutation.
func (m *QueueEntryMutation) AddedTaskID() (r int64, exists bool) {
	v := m.addtask_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearTaskID clears the value of the "task_id" field.
func (m *QueueEntryMutation) ClearTaskID() {
	m.task_id = nil
	m.addtask_id = nil
	m.clearedFields[queueentry.FieldTaskID] = struct{}{}
}

// TaskIDCleared returns if the "task_id" field was cleared in this mutation.
func (m *QueueEntryMutation) TaskIDCleared() bool {
	_, ok := m.clearedFields[queueentry.FieldTaskID]
	return ok
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *QueueEntryMutation) ResetTaskID() {
	m.task_id = nil
	m.addtask_id = nil
	delete(m.clearedFields, queueentry.FieldTaskID)
}

// SetRunID sets the "run_id" field.
func (m *QueueEntryMutation) SetRunID(i int64) {
	m.run_id = &i
	m.addrun_id = nil
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *QueueEntryMutation) RunID() (r int64, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the QueueEntry entity.
// If the QueueEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueEntryMutation) OldRunID(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// AddRunID adds i to the "run_id" field.
func (m *QueueEntryMutation) AddRunID(i int64) {
	if m.addrun_id != nil {
		*m.addrun_id += i
	} else {
		m.addrun_id = &i
	}
}

// AddedRunID returns the value that was added to the "run_id" field in this mutation.
func (m *QueueEntryMutation) AddedRunID() (r int64, exists bool) {
	v := m.addrun_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearRunID clears the value of the "run_id" field.
func (m *QueueEntryMutation) ClearRunID() {
	m.run_id = nil
	m.addrun_id = nil
	m.clearedFields[queueentry.FieldRunID] = struct{}{}
}

// RunIDCleared returns if the "run_id" field was cleared in this mutation.
func (m *QueueEntryMutation) RunIDCleared() bool {
	_, ok := m.clearedFields[queueentry.FieldRunID]
	return ok
}

// ResetRunID resets all changes to the "run_id" field.
func (m *QueueEntryMutation) ResetRunID() {
	m.run_id = nil
	m.addrun_id = nil
	delete(m.clearedFields, queueentry.FieldRunID)
}

// SetPriority sets the "priority" field.
func (m *QueueEntryMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *QueueEntryMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the QueueEntry entity.
// If the QueueEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueEntryMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *QueueEntryMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *QueueEntryMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *QueueEntryMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetQueuedAt sets the "queued_at" field.
func (m *QueueEntryMutation) SetQueuedAt(t time.Time) {
	m.queued_at = &t
}

// QueuedAt returns the value of the "queued_at" field in the mutation.
func (m *QueueEntryMutation) QueuedAt() (r time.Time, exists bool) {
	v := m.queued_at
	if v == nil {
		return
	}
	return *v, true
}

// OldQueuedAt returns the old "queued_at" field's value of the QueueEntry entity.
// If the QueueEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueEntryMutation) OldQueuedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueuedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueuedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueuedAt: %w", err)
	}
	return oldValue.QueuedAt, nil
}

// ResetQueuedAt resets all changes to the "queued_at" field.
func (m *QueueEntryMutation) ResetQueuedAt() {
	m.queued_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *QueueEntryMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *QueueEntryMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the QueueEntry entity.
// If the QueueEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueEntryMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *QueueEntryMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[queueentry.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *QueueEntryMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[queueentry.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *QueueEntryMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, queueentry.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *QueueEntryMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *QueueEntryMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the QueueEntry entity.
// If the QueueEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueEntryMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *QueueEntryMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[queueentry.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *QueueEntryMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[queueentry.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *QueueEntryMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, queueentry.FieldCompletedAt)
}

// SetWaitingSince sets the "waiting_since" field.
func (m *QueueEntryMutation) SetWaitingSince(t time.Time) {
	m.waiting_since = &t
}

// WaitingSince returns the value of the "waiting_since" field in the mutation.
func (m *QueueEntryMutation) WaitingSince() (r time.Time, exists bool) {
	v := m.waiting_since
	if v == nil {
		return
	}
	return *v, true
}

// OldWaitingSince returns the old "waiting_since" field's value of the QueueEntry entity.
// If the QueueEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueEntryMutation) OldWaitingSince(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWaitingSince is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWaitingSince requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWaitingSince: %w", err)
	}
	return oldValue.WaitingSince, nil
}

// ClearWaitingSince clears the value of the "waiting_since" field.
func (m *QueueEntryMutation) ClearWaitingSince() {
	m.waiting_since = nil
	m.clearedFields[queueentry.FieldWaitingSince] = struct{}{}
}

// WaitingSinceCleared returns if the "waiting_since" field was cleared in this mutation.
func (m *QueueEntryMutation) WaitingSinceCleared() bool {
	_, ok := m.clearedFields[queueentry.FieldWaitingSince]
	return ok
}

// ResetWaitingSince resets all changes to the "waiting_since" field.
func (m *QueueEntryMutation) ResetWaitingSince() {
	m.waiting_since = nil
	delete(m.clearedFields, queueentry.FieldWaitingSince)
}

// SetStatus sets the "status" field.
func (m *QueueEntryMutation) SetStatus(q queueentry.Status) {
	m.status = &q
}

// Status returns the value of the "status" field in the mutation.
func (m *QueueEntryMutation) Status() (r queueentry.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the QueueEntry entity.
// If the QueueEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueEntryMutation) OldStatus(ctx context.Context) (v queueentry.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *QueueEntryMutation) ResetStatus() {
	m.status = nil
}

// SetSchedulerRef sets the "scheduler_ref" field.
func (m *QueueEntryMutation) SetSchedulerRef(s string) {
	m.scheduler_ref = &s
}

// SchedulerRef returns the value of the "scheduler_ref" field in the mutation.
func (m *QueueEntryMutation) SchedulerRef() (r string, exists bool) {
	v := m.scheduler_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldSchedulerRef returns the old "scheduler_ref" field's value of the QueueEntry entity.
// If the QueueEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueEntryMutation) OldSchedulerRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchedulerRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchedulerRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchedulerRef: %w", err)
	}
	return oldValue.SchedulerRef, nil
}

// ClearSchedulerRef clears the value of the "scheduler_ref" field.
func (m *QueueEntryMutation) ClearSchedulerRef() {
	m.scheduler_ref = nil
	m.clearedFields[queueentry.FieldSchedulerRef] = struct{}{}
}

// SchedulerRefCleared returns if the "scheduler_ref" field was cleared in this mutation.
func (m *QueueEntryMutation) SchedulerRefCleared() bool {
	_, ok := m.clearedFields[queueentry.FieldSchedulerRef]
	return ok
}

// ResetSchedulerRef resets all changes to the "scheduler_ref" field.
func (m *QueueEntryMutation) ResetSchedulerRef() {
	m.scheduler_ref = nil
	delete(m.clearedFields, queueentry.FieldSchedulerRef)
}

// SetPodID sets the "pod_id" field.
func (m *QueueEntryMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *QueueEntryMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the QueueEntry entity.
// If the QueueEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueEntryMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *QueueEntryMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[queueentry.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *QueueEntryMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[queueentry.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *QueueEntryMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, queueentry.FieldPodID)
}

// SetPayload sets the "payload" field.
func (m *QueueEntryMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *QueueEntryMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the QueueEntry entity.
// If the QueueEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueEntryMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *QueueEntryMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[queueentry.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *QueueEntryMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[queueentry.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *QueueEntryMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, queueentry.FieldPayload)
}

// Where appends a list predicates to the QueueEntryMutation builder.
func (m *QueueEntryMutation) Where(ps ...predicate.QueueEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QueueEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QueueEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QueueEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QueueEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QueueEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QueueEntry).
func (m *QueueEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QueueEntryMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.external_item_id != nil {
		fields = append(fields, queueentry.FieldExternalItemID)
	}
	if m.task_id != nil {
		fields = append(fields, queueentry.FieldTaskID)
	}
	if m.run_id != nil {
		fields = append(fields, queueentry.FieldRunID)
	}
	if m.priority != nil {
		fields = append(fields, queueentry.FieldPriority)
	}
	if m.queued_at != nil {
		fields = append(fields, queueentry.FieldQueuedAt)
	}
	if m.started_at != nil {
		fields = append(fields, queueentry.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, queueentry.FieldCompletedAt)
	}
	if m.waiting_since != nil {
		fields = append(fields, queueentry.FieldWaitingSince)
	}
	if m.status != nil {
		fields = append(fields, queueentry.FieldStatus)
	}
	if m.scheduler_ref != nil {
		fields = append(fields, queueentry.FieldSchedulerRef)
	}
	if m.pod_id != nil {
		fields = append(fields, queueentry.FieldPodID)
	}
	if m.payload != nil {
		fields = append(fields, queueentry.FieldPayload)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QueueEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case queueentry.FieldExternalItemID:
		return m.ExternalItemID()
	case queueentry.FieldTaskID:
		return m.TaskID()
	case queueentry.FieldRunID:
		return m.RunID()
	case queueentry.FieldPriority:
		return m.Priority()
	case queueentry.FieldQueuedAt:
		return m.QueuedAt()
	case queueentry.FieldStartedAt:
		return m.StartedAt()
	case queueentry.FieldCompletedAt:
		return m.CompletedAt()
	case queueentry.FieldWaitingSince:
		return m.WaitingSince()
	case queueentry.FieldStatus:
		return m.Status()
	case queueentry.FieldSchedulerRef:
		return m.SchedulerRef()
	case queueentry.FieldPodID:
		return m.PodID()
	case queueentry.FieldPayload:
		return m.Payload()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QueueEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case queueentry.FieldExternalItemID:
		return m.OldExternalItemID(ctx)
	case queueentry.FieldTaskID:
		return m.OldTaskID(ctx)
	case queueentry.FieldRunID:
		return m.OldRunID(ctx)
	case queueentry.FieldPriority:
		return m.OldPriority(ctx)
	case queueentry.FieldQueuedAt:
		return m.OldQueuedAt(ctx)
	case queueentry.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case queueentry.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case queueentry.FieldWaitingSince:
		return m.OldWaitingSince(ctx)
	case queueentry.FieldStatus:
		return m.OldStatus(ctx)
	case queueentry.FieldSchedulerRef:
		return m.OldSchedulerRef(ctx)
	case queueentry.FieldPodID:
		return m.OldPodID(ctx)
	case queueentry.FieldPayload:
		return m.OldPayload(ctx)
	}
	return nil, fmt.Errorf("unknown QueueEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueueEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case queueentry.FieldExternalItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalItemID(v)
		return nil
	case queueentry.FieldTaskID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case queueentry.FieldRunID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case queueentry.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case queueentry.FieldQueuedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueuedAt(v)
		return nil
	case queueentry.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case queueentry.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case queueentry.FieldWaitingSince:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWaitingSince(v)
		return nil
	case queueentry.FieldStatus:
		v, ok := value.(queueentry.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case queueentry.FieldSchedulerRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchedulerRef(v)
		return nil
	case queueentry.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case queueentry.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	}
	return fmt.Errorf("unknown QueueEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QueueEntryMutation) AddedFields() []string {
	var fields []string
	if m.addtask_id != nil {
		fields = append(fields, queueentry.FieldTaskID)
	}
	if m.addrun_id != nil {
		fields = append(fields, queueentry.FieldRunID)
	}
	if m.addpriority != nil {
		fields = append(fields, queueentry.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QueueEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case queueentry.FieldTaskID:
		return m.AddedTaskID()
	case queueentry.FieldRunID:
		return m.AddedRunID()
	case queueentry.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueueEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case queueentry.FieldTaskID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTaskID(v)
		return nil
	case queueentry.FieldRunID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRunID(v)
		return nil
	case queueentry.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown QueueEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QueueEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(queueentry.FieldTaskID) {
		fields = append(fields, queueentry.FieldTaskID)
	}
	if m.FieldCleared(queueentry.FieldRunID) {
		fields = append(fields, queueentry.FieldRunID)
	}
	if m.FieldCleared(queueentry.FieldStartedAt) {
		fields = append(fields, queueentry.FieldStartedAt)
	}
	if m.FieldCleared(queueentry.FieldCompletedAt) {
		fields = append(fields, queueentry.FieldCompletedAt)
	}
	if m.FieldCleared(queueentry.FieldWaitingSince) {
		fields = append(fields, queueentry.FieldWaitingSince)
	}
	if m.FieldCleared(queueentry.FieldSchedulerRef) {
		fields = append(fields, queueentry.FieldSchedulerRef)
	}
	if m.FieldCleared(queueentry.FieldPodID) {
		fields = append(fields, queueentry.FieldPodID)
	}
	if m.FieldCleared(queueentry.FieldPayload) {
		fields = append(fields, queueentry.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QueueEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QueueEntryMutation) ClearField(name string) error {
	switch name {
	case queueentry.FieldTaskID:
		m.ClearTaskID()
		return nil
	case queueentry.FieldRunID:
		m.ClearRunID()
		return nil
	case queueentry.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case queueentry.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case queueentry.FieldWaitingSince:
		m.ClearWaitingSince()
		return nil
	case queueentry.FieldSchedulerRef:
		m.ClearSchedulerRef()
		return nil
	case queueentry.FieldPodID:
		m.ClearPodID()
		return nil
	case queueentry.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown QueueEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QueueEntryMutation) ResetField(name string) error {
	switch name {
	case queueentry.FieldExternalItemID:
		m.ResetExternalItemID()
		return nil
	case queueentry.FieldTaskID:
		m.ResetTaskID()
		return nil
	case queueentry.FieldRunID:
		m.ResetRunID()
		return nil
	case queueentry.FieldPriority:
		m.ResetPriority()
		return nil
	case queueentry.FieldQueuedAt:
		m.ResetQueuedAt()
		return nil
	case queueentry.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case queueentry.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case queueentry.FieldWaitingSince:
		m.ResetWaitingSince()
		return nil
	case queueentry.FieldStatus:
		m.ResetStatus()
		return nil
	case queueentry.FieldSchedulerRef:
		m.ResetSchedulerRef()
		return nil
	case queueentry.FieldPodID:
		m.ResetPodID()
		return nil
	case queueentry.FieldPayload:
		m.ResetPayload()
		return nil
	}
	return fmt.Errorf("unknown QueueEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QueueEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QueueEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QueueEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QueueEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QueueEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QueueEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QueueEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QueueEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QueueEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QueueEntry edge %s", name)
}

// RunMutation represents an operation that mutates the Run nodes in the graph.
type RunMutation struct {
	config
	op                         Op
	typ                        string
	id                         *int64
	parent_run_id              *int64
	addparent_run_id           *int64
	is_reactivation            *bool
	reactivation_context       *string
	new_requirements           *string
	status                     *run.Status
	started_at                 *time.Time
	completed_at               *time.Time
	last_merged_pr_url         *string
	error_message              *string
	pod_id                     *string
	last_heartbeat_at          *time.Time
	created_at                 *time.Time
	clearedFields              map[string]struct{}
	task                       *int64
	clearedtask                bool
	stage_executions           map[int64]struct{}
	removedstage_executions    map[int64]struct{}
	clearedstage_executions    bool
	validation_requests        map[int64]struct{}
	removedvalidation_requests map[int64]struct{}
	clearedvalidation_requests bool
	done                       bool
	oldValue                   func(context.Context) (*Run, error)
	predicates                 []predicate.Run
}

var _ ent.Mutation = (*RunMutation)(nil)

// runOption allows management of the mutation configuration using functional options.
type runOption func(*RunMutation)

// newRunMutation creates new mutation for the Run entity.
func newRunMutation(c config, op Op, opts ...runOption) *RunMutation {
	m := &RunMutation{
		config:        c,
		op:            op,
		typ:           TypeRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunID sets the ID field of the mutation.
func withRunID(id int64) runOption {
	return func(m *RunMutation) {
		var (
			err   error
			once  sync.Once
			value *Run
		)
		m.oldValue = func(ctx context.Context) (*Run, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Run.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRun sets the old Run of the mutation.
func withRun(node *Run) runOption {
	return func(m *RunMutation) {
		m.oldValue = func(context.Context) (*Run, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Run entities.
func (m *RunMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Run.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *RunMutation) SetTaskID(i int64) {
	m.task = &i
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *RunMutation) TaskID() (r int64, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldTaskID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *RunMutation) ResetTaskID() {
	m.task = nil
}

// SetParentRunID sets the "parent_run_id" field.
func (m *RunMutation) SetParentRunID(i int64) {
	m.parent_run_id = &i
	m.addparent_run_id = nil
}

// ParentRunID returns the value of the "parent_run_id" field in the mutation.
func (m *RunMutation) ParentRunID() (r int64, exists bool) {
	v := m.parent_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentRunID returns the old "parent_run_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldParentRunID(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentRunID: %w", err)
	}
	return oldValue.ParentRunID, nil
}

// AddParentRunID adds i to the "parent_run_id" field.
func (m *RunMutation) AddParentRunID(i int64) {
	if m.addparent_run_id != nil {
		*m.addparent_run_id += i
	} else {
		m.addparent_run_id = &i
	}
}

// AddedParentRunID returns the value that was added to the "parent_run_id" field in this mutation.
func (m *RunMutation) AddedParentRunID() (r int64, exists bool) {
	v := m.addparent_run_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearParentRunID clears the value of the "parent_run_id" field.
func (m *RunMutation) ClearParentRunID() {
	m.parent_run_id = nil
	m.addparent_run_id = nil
	m.clearedFields[run.FieldParentRunID] = struct{}{}
}

// ParentRunIDCleared returns if the "parent_run_id" field was cleared in this mutation.
func (m *RunMutation) ParentRunIDCleared() bool {
	_, ok := m.clearedFields[run.FieldParentRunID]
	return ok
}

// ResetParentRunID resets all changes to the "parent_run_id" field.
func (m *RunMutation) ResetParentRunID() {
	m.parent_run_id = nil
	m.addparent_run_id = nil
	delete(m.clearedFields, run.FieldParentRunID)
}

// SetIsReactivation sets the "is_reactivation" field.
func (m *RunMutation) SetIsReactivation(b bool) {
	m.is_reactivation = &b
}

// IsReactivation returns the value of the "is_reactivation" field in the mutation.
func (m *RunMutation) IsReactivation() (r bool, exists bool) {
	v := m.is_reactivation
	if v == nil {
		return
	}
	return *v, true
}

// OldIsReactivation returns the old "is_reactivation" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldIsReactivation(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsReactivation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsReactivation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsReactivation: %w", err)
	}
	return oldValue.IsReactivation, nil
}

// ResetIsReactivation resets all changes to the "is_reactivation" field.
func (m *RunMutation) ResetIsReactivation() {
	m.is_reactivation = nil
}

// SetReactivationContext sets the "reactivation_context" field.
func (m *RunMutation) SetReactivationContext(s string) {
	m.reactivation_context = &s
}

// ReactivationContext returns the value of the "reactivation_context" field in the mutation.
func (m *RunMutation) ReactivationContext() (r string, exists bool) {
	v := m.reactivation_context
	if v == nil {
		return
	}
	return *v, true
}

// OldReactivationContext returns the old "reactivation_context" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldReactivationContext(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReactivationContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReactivationContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReactivationContext: %w", err)
	}
	return oldValue.ReactivationContext, nil
}

// ClearReactivationContext clears the value of the "reactivation_context" field.
func (m *RunMutation) ClearReactivationContext() {
	m.reactivation_context = nil
	m.clearedFields[run.FieldReactivationContext] = struct{}{}
}

// ReactivationContextCleared returns if the "reactivation_context" field was cleared in this mutation.
func (m *RunMutation) ReactivationContextCleared() bool {
	_, ok := m.clearedFields[run.FieldReactivationContext]
	return ok
}

// ResetReactivationContext resets all changes to the "reactivation_context" field.
func (m *RunMutation) ResetReactivationContext() {
	m.reactivation_context = nil
	delete(m.clearedFields, run.FieldReactivationContext)
}

// SetNewRequirements sets the "new_requirements" field.
func (m *RunMutation) SetNewRequirements(s string) {
	m.new_requirements = &s
}

// NewRequirements returns the value of the "new_requirements" field in the mutation.
func (m *RunMutation) NewRequirements() (r string, exists bool) {
	v := m.new_requirements
	if v == nil {
		return
	}
	return *v, true
}

// OldNewRequirements returns the old "new_requirements" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldNewRequirements(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewRequirements is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewRequirements requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewRequirements: %w", err)
	}
	return oldValue.NewRequirements, nil
}

// ClearNewRequirements clears the value of the "new_requirements" field.
func (m *RunMutation) ClearNewRequirements() {
	m.new_requirements = nil
	m.clearedFields[run.FieldNewRequirements] = struct{}{}
}

// NewRequirementsCleared returns if the "new_requirements" field was cleared in this mutation.
func (m *RunMutation) NewRequirementsCleared() bool {
	_, ok := m.clearedFields[run.FieldNewRequirements]
	return ok
}

// ResetNewRequirements resets all changes to the "new_requirements" field.
func (m *RunMutation) ResetNewRequirements() {
	m.new_requirements = nil
	delete(m.clearedFields, run.FieldNewRequirements)
}

// SetStatus sets the "status" field.
func (m *RunMutation) SetStatus(r run.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RunMutation) Status() (r run.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStatus(ctx context.Context) (v run.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RunMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *RunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *RunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *RunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[run.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *RunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[run.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *RunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, run.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *RunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *RunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *RunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[run.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *RunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[run.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *RunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, run.FieldCompletedAt)
}

// SetLastMergedPrURL sets the "last_merged_pr_url" field.
func (m *RunMutation) SetLastMergedPrURL(s string) {
	m.last_merged_pr_url = &s
}

// LastMergedPrURL returns the value of the "last_merged_pr_url" field in the mutation.
func (m *RunMutation) LastMergedPrURL() (r string, exists bool) {
	v := m.last_merged_pr_url
	if v == nil {
		return
	}
	return *v, true
}

// OldLastMergedPrURL returns the old "last_merged_pr_url" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldLastMergedPrURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastMergedPrURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastMergedPrURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastMergedPrURL: %w", err)
	}
	return oldValue.LastMergedPrURL, nil
}

// ClearLastMergedPrURL clears the value of the "last_merged_pr_url" field.
func (m *RunMutation) ClearLastMergedPrURL() {
	m.last_merged_pr_url = nil
	m.clearedFields[run.FieldLastMergedPrURL] = struct{}{}
}

// LastMergedPrURLCleared returns if the "last_merged_pr_url" field was cleared in this mutation.
func (m *RunMutation) LastMergedPrURLCleared() bool {
	_, ok := m.clearedFields[run.FieldLastMergedPrURL]
	return ok
}

// ResetLastMergedPrURL resets all changes to the "last_merged_pr_url" field.
func (m *RunMutation) ResetLastMergedPrURL() {
	m.last_merged_pr_url = nil
	delete(m.clearedFields, run.FieldLastMergedPrURL)
}

// SetErrorMessage sets the "error_message" field.
func (m *RunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *RunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *RunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[run.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *RunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[run.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *RunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, run.FieldErrorMessage)
}

// SetPodID sets the "pod_id" field.
func (m *RunMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *RunMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *RunMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[run.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *RunMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[run.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *RunMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, run.FieldPodID)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *RunMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *RunMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *RunMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[run.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *RunMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[run.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *RunMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, run.FieldLastHeartbeatAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *RunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *RunMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[run.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *RunMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *RunMutation) TaskIDs() (ids []int64) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *RunMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// AddStageExecutionIDs adds the "stage_executions" edge to the StageExecution entity by ids.
func (m *RunMutation) AddStageExecutionIDs(ids ...int64) {
	if m.stage_executions == nil {
		m.stage_executions = make(map[int64]struct{})
	}
	for i := range ids {
		m.stage_executions[ids[i]] = struct{}{}
	}
}

// ClearStageExecutions clears the "stage_executions" edge to the StageExecution entity.
func (m *RunMutation) ClearStageExecutions() {
	m.clearedstage_executions = true
}

// StageExecutionsCleared reports if the "stage_executions" edge to the StageExecution entity was cleared.
func (m *RunMutation) StageExecutionsCleared() bool {
	return m.clearedstage_executions
}

// RemoveStageExecutionIDs removes the "stage_executions" edge to the StageExecution entity by IDs.
func (m *RunMutation) RemoveStageExecutionIDs(ids ...int64) {
	if m.removedstage_executions == nil {
		m.removedstage_executions = make(map[int64]struct{})
	}
	for i := range ids {
		delete(m.stage_executions, ids[i])
		m.removedstage_executions[ids[i]] = struct{}{}
	}
}

// RemovedStageExecutions returns the removed IDs of the "stage_executions" edge to the StageExecution entity.
func (m *RunMutation) RemovedStageExecutionsIDs() (ids []int64) {
	for id := range m.removedstage_executions {
		ids = append(ids, id)
	}
	return
}

// StageExecutionsIDs returns the "stage_executions" edge IDs in the mutation.
func (m *RunMutation) StageExecutionsIDs() (ids []int64) {
	for id := range m.stage_executions {
		ids = append(ids, id)
	}
	return
}

// ResetStageExecutions resets all changes to the "stage_executions" edge.
func (m *RunMutation) ResetStageExecutions() {
	m.stage_executions = nil
	m.clearedstage_executions = false
	m.removedstage_executions = nil
}

// AddValidationRequestIDs adds the "validation_requests" edge to the ValidationRequest entity by ids.
func (m *RunMutation) AddValidationRequestIDs(ids ...int64) {
	if m.validation_requests == nil {
		m.validation_requests = make(map[int64]struct{})
	}
	for i := range ids {
		m.validation_requests[ids[i]] = struct{}{}
	}
}

// ClearValidationRequests clears the "validation_requests" edge to the ValidationRequest entity.
func (m *RunMutation) ClearValidationRequests() {
	m.clearedvalidation_requests = true
}

// ValidationRequestsCleared reports if the "validation_requests" edge to the ValidationRequest entity was cleared.
func (m *RunMutation) ValidationRequestsCleared() bool {
	return m.clearedvalidation_requests
}

// RemoveValidationRequestIDs removes the "validation_requests" edge to the ValidationRequest entity by IDs.
func (m *RunMutation) RemoveValidationRequestIDs(ids ...int64) {
	if m.removedvalidation_requests == nil {
		m.removedvalidation_requests = make(map[int64]struct{})
	}
	for i := range ids {
		delete(m.validation_requests, ids[i])
		m.removedvalidation_requests[ids[i]] = struct{}{}
	}
}

// RemovedValidationRequests returns the removed IDs of the "validation_requests" edge to the ValidationRequest entity.
func (m *RunMutation) RemovedValidationRequestsIDs() (ids []int64) {
	for id := range m.removedvalidation_requests {
		ids = append(ids, id)
	}
	return
}

// ValidationRequestsIDs returns the "validation_requests" edge IDs in the mutation.
func (m *RunMutation) ValidationRequestsIDs() (ids []int64) {
	for id := range m.validation_requests {
		ids = append(ids, id)
	}
	return
}

// ResetValidationRequests resets all changes to the "validation_requests" edge.
func (m *RunMutation) ResetValidationRequests() {
	m.validation_requests = nil
	m.clearedvalidation_requests = false
	m.removedvalidation_requests = nil
}

// Where appends a list predicates to the RunMutation builder.
func (m *RunMutation) Where(ps ...predicate.Run) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Run, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Run).
func (m *RunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.task != nil {
		fields = append(fields, run.FieldTaskID)
	}
	if m.parent_run_id != nil {
		fields = append(fields, run.FieldParentRunID)
	}
	if m.is_reactivation != nil {
		fields = append(fields, run.FieldIsReactivation)
	}
	if m.reactivation_context != nil {
		fields = append(fields, run.FieldReactivationContext)
	}
	if m.new_requirements != nil {
		fields = append(fields, run.FieldNewRequirements)
	}
	if m.status != nil {
		fields = append(fields, run.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, run.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, run.FieldCompletedAt)
	}
	if m.last_merged_pr_url != nil {
		fields = append(fields, run.FieldLastMergedPrURL)
	}
	if m.error_message != nil {
		fields = append(fields, run.FieldErrorMessage)
	}
	if m.pod_id != nil {
		fields = append(fields, run.FieldPodID)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, run.FieldLastHeartbeatAt)
	}
	if m.created_at != nil {
		fields = append(fields, run.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case run.FieldTaskID:
		return m.TaskID()
	case run.FieldParentRunID:
		return m.ParentRunID()
	case run.FieldIsReactivation:
		return m.IsReactivation()
	case run.FieldReactivationContext:
		return m.ReactivationContext()
	case run.FieldNewRequirements:
		return m.NewRequirements()
	case run.FieldStatus:
		return m.Status()
	case run.FieldStartedAt:
		return m.StartedAt()
	case run.FieldCompletedAt:
		return m.CompletedAt()
	case run.FieldLastMergedPrURL:
		return m.LastMergedPrURL()
	case run.FieldErrorMessage:
		return m.ErrorMessage()
	case run.FieldPodID:
		return m.PodID()
	case run.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case run.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case run.FieldTaskID:
		return m.OldTaskID(ctx)
	case run.FieldParentRunID:
		return m.OldParentRunID(ctx)
	case run.FieldIsReactivation:
		return m.OldIsReactivation(ctx)
	case run.FieldReactivationContext:
		return m.OldReactivationContext(ctx)
	case run.FieldNewRequirements:
		return m.OldNewRequirements(ctx)
	case run.FieldStatus:
		return m.OldStatus(ctx)
	case run.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case run.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case run.FieldLastMergedPrURL:
		return m.OldLastMergedPrURL(ctx)
	case run.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case run.FieldPodID:
		return m.OldPodID(ctx)
	case run.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case run.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Run field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case run.FieldTaskID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case run.FieldParentRunID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentRunID(v)
		return nil
	case run.FieldIsReactivation:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsReactivation(v)
		return nil
	case run.FieldReactivationContext:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReactivationContext(v)
		return nil
	case run.FieldNewRequirements:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewRequirements(v)
		return nil
	case run.FieldStatus:
		v, ok := value.(run.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case run.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case run.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case run.FieldLastMergedPrURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastMergedPrURL(v)
		return nil
	case run.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case run.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case run.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case run.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Run field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunMutation) AddedFields() []string {
	var fields []string
	if m.addparent_run_id != nil {
		fields = append(fields, run.FieldParentRunID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case run.FieldParentRunID:
		return m.AddedParentRunID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case run.FieldParentRunID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddParentRunID(v)
		return nil
	}
	return fmt.Errorf("unknown Run numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(run.FieldParentRunID) {
		fields = append(fields, run.FieldParentRunID)
	}
	if m.FieldCleared(run.FieldReactivationContext) {
		fields = append(fields, run.FieldReactivationContext)
	}
	if m.FieldCleared(run.FieldNewRequirements) {
		fields = append(fields, run.FieldNewRequirements)
	}
	if m.FieldCleared(run.FieldStartedAt) {
		fields = append(fields, run.FieldStartedAt)
	}
	if m.FieldCleared(run.FieldCompletedAt) {
		fields = append(fields, run.FieldCompletedAt)
	}
	if m.FieldCleared(run.FieldLastMergedPrURL) {
		fields = append(fields, run.FieldLastMergedPrURL)
	}
	if m.FieldCleared(run.FieldErrorMessage) {
		fields = append(fields, run.FieldErrorMessage)
	}
	if m.FieldCleared(run.FieldPodID) {
		fields = append(fields, run.FieldPodID)
	}
	if m.FieldCleared(run.FieldLastHeartbeatAt) {
		fields = append(fields, run.FieldLastHeartbeatAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunMutation) ClearField(name string) error {
	switch name {
	case run.FieldParentRunID:
		m.ClearParentRunID()
		return nil
	case run.FieldReactivationContext:
		m.ClearReactivationContext()
		return nil
	case run.FieldNewRequirements:
		m.ClearNewRequirements()
		return nil
	case run.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case run.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case run.FieldLastMergedPrURL:
		m.ClearLastMergedPrURL()
		return nil
	case run.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case run.FieldPodID:
		m.ClearPodID()
		return nil
	case run.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown Run nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunMutation) ResetField(name string) error {
	switch name {
	case run.FieldTaskID:
		m.ResetTaskID()
		return nil
	case run.FieldParentRunID:
		m.ResetParentRunID()
		return nil
	case run.FieldIsReactivation:
		m.ResetIsReactivation()
		return nil
	case run.FieldReactivationContext:
		m.ResetReactivationContext()
		return nil
	case run.FieldNewRequirements:
		m.ResetNewRequirements()
		return nil
	case run.FieldStatus:
		m.ResetStatus()
		return nil
	case run.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case run.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case run.FieldLastMergedPrURL:
		m.ResetLastMergedPrURL()
		return nil
	case run.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case run.FieldPodID:
		m.ResetPodID()
		return nil
	case run.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case run.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Run field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.task != nil {
		edges = append(edges, run.EdgeTask)
	}
	if m.stage_executions != nil {
		edges = append(edges, run.EdgeStageExecutions)
	}
	if m.validation_requests != nil {
		edges = append(edges, run.EdgeValidationRequests)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case run.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	case run.EdgeStageExecutions:
		ids := make([]ent.Value, 0, len(m.stage_executions))
		for id := range m.stage_executions {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeValidationRequests:
		ids := make([]ent.Value, 0, len(m.validation_requests))
		for id := range m.validation_requests {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedstage_executions != nil {
		edges = append(edges, run.EdgeStageExecutions)
	}
	if m.removedvalidation_requests != nil {
		edges = append(edges, run.EdgeValidationRequests)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case run.EdgeStageExecutions:
		ids := make([]ent.Value, 0, len(m.removedstage_executions))
		for id := range m.removedstage_executions {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeValidationRequests:
		ids := make([]ent.Value, 0, len(m.removedvalidation_requests))
		for id := range m.removedvalidation_requests {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedtask {
		edges = append(edges, run.EdgeTask)
	}
	if m.clearedstage_executions {
		edges = append(edges, run.EdgeStageExecutions)
	}
	if m.clearedvalidation_requests {
		edges = append(edges, run.EdgeValidationRequests)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunMutation) EdgeCleared(name string) bool {
	switch name {
	case run.EdgeTask:
		return m.clearedtask
	case run.EdgeStageExecutions:
		return m.clearedstage_executions
	case run.EdgeValidationRequests:
		return m.clearedvalidation_requests
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunMutation) ClearEdge(name string) error {
	switch name {
	case run.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown Run unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunMutation) ResetEdge(name string) error {
	switch name {
	case run.EdgeTask:
		m.ResetTask()
		return nil
	case run.EdgeStageExecutions:
		m.ResetStageExecutions()
		return nil
	case run.EdgeValidationRequests:
		m.ResetValidationRequests()
		return nil
	}
	return fmt.Errorf("unknown Run edge %s", name)
}

// StageExecutionMutation represents an operation that mutates the StageExecution nodes in the graph.
type StageExecutionMutation struct {
	config
	op            Op
	typ           string
	id            *int64
	stage_name    *string
	ordinal       *int
	addordinal    *int
	attempt       *int
	addattempt    *int
	input         *map[string]interface{}
	output        *map[string]interface{}
	status        *stageexecution.Status
	started_at    *time.Time
	completed_at  *time.Time
	error_message *string
	clearedFields map[string]struct{}
	run           *int64
	clearedrun    bool
	done          bool
	oldValue      func(context.Context) (*StageExecution, error)
	predicates    []predicate.StageExecution
}

var _ ent.Mutation = (*StageExecutionMutation)(nil)

// stageexecutionOption allows management of the mutation configuration using functional options.
type stageexecutionOption func(*StageExecutionMutation)

// newStageExecutionMutation creates new mutation for the StageExecution entity.
func newStageExecutionMutation(c config, op Op, opts ...stageexecutionOption) *StageExecutionMutation {
	m := &StageExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeStageExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStageExecutionID sets the ID field of the mutation.
func withStageExecutionID(id int64) stageexecutionOption {
	return func(m *StageExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *StageExecution
		)
		m.oldValue = func(ctx context.Context) (*StageExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StageExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStageExecution sets the old StageExecution of the mutation.
func withStageExecution(node *StageExecution) stageexecutionOption {
	return func(m *StageExecutionMutation) {
		m.oldValue = func(context.Context) (*StageExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StageExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StageExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StageExecution entities.
func (m *StageExecutionMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StageExecutionMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StageExecutionMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StageExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *StageExecutionMutation) SetRunID(i int64) {
	m.run = &i
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *StageExecutionMutation) RunID() (r int64, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldRunID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *StageExecutionMutation) ResetRunID() {
	m.run = nil
}

// SetStageName sets the "stage_name" field.
func (m *StageExecutionMutation) SetStageName(s string) {
	m.stage_name = &s
}

// StageName returns the value of the "stage_name" field in the mutation.
func (m *StageExecutionMutation) StageName() (r string, exists bool) {
	v := m.stage_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStageName returns the old "stage_name" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldStageName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageName: %w", err)
	}
	return oldValue.StageName, nil
}

// ResetStageName resets all changes to the "stage_name" field.
func (m *StageExecutionMutation) ResetStageName() {
	m.stage_name = nil
}

// SetOrdinal sets the "ordinal" field.
func (m *StageExecutionMutation) SetOrdinal(i int) {
	m.ordinal = &i
	m.addordinal = nil
}

// Ordinal returns the value of the "ordinal" field in the mutation.
func (m *StageExecutionMutation) Ordinal() (r int, exists bool) {
	v := m.ordinal
	if v == nil {
		return
	}
	return *v, true
}

// OldOrdinal returns the old "ordinal" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldOrdinal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrdinal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrdinal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrdinal: %w", err)
	}
	return oldValue.Ordinal, nil
}

// AddOrdinal adds i to the "ordinal" field.
func (m *StageExecutionMutation) AddOrdinal(i int) {
	if m.addordinal != nil {
		*m.addordinal += i
	} else {
		m.addordinal = &i
	}
}

// AddedOrdinal returns the value that was added to the "ordinal" field in this mutation.
func (m *StageExecutionMutation) AddedOrdinal() (r int, exists bool) {
	v := m.addordinal
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrdinal resets all changes to the "ordinal" field.
func (m *StageExecutionMutation) ResetOrdinal() {
	m.ordinal = nil
	m.addordinal = nil
}

// SetAttempt sets the "attempt" field.
func (m *StageExecutionMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *StageExecutionMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *StageExecutionMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *StageExecutionMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *StageExecutionMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetInput sets the "input" field.
func (m *StageExecutionMutation) SetInput(value map[string]interface{}) {
	m.input = &value
}

// Input returns the value of the "input" field in the mutation.
func (m *StageExecutionMutation) Input() (r map[string]interface{}, exists bool) {
	v := m.input
	if v == nil {
		return
	}
	return *v, true
}

// OldInput returns the old "input" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldInput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInput: %w", err)
	}
	return oldValue.Input, nil
}

// ClearInput clears the value of the "input" field.
func (m *StageExecutionMutation) ClearInput() {
	m.input = nil
	m.clearedFields[stageexecution.FieldInput] = struct{}{}
}

// InputCleared returns if the "input" field was cleared in this mutation.
func (m *StageExecutionMutation) InputCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldInput]
	return ok
}

// ResetInput resets all changes to the "input" field.
func (m *StageExecutionMutation) ResetInput() {
	m.input = nil
	delete(m.clearedFields, stageexecution.FieldInput)
}

// SetOutput sets the "output" field.
func (m *StageExecutionMutation) SetOutput(value map[string]interface{}) {
	m.output = &value
}

// Output returns the value of the "output" field in the mutation.
func (m *StageExecutionMutation) Output() (r map[string]interface{}, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldOutput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *StageExecutionMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[stageexecution.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *StageExecutionMutation) OutputCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *StageExecutionMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, stageexecution.FieldOutput)
}

// SetStatus sets the "status" field.
func (m *StageExecutionMutation) SetStatus(s stageexecution.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StageExecutionMutation) Status() (r stageexecution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldStatus(ctx context.Context) (v stageexecution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StageExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *StageExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *StageExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *StageExecutionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *StageExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *StageExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *StageExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[stageexecution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *StageExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *StageExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, stageexecution.FieldCompletedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *StageExecutionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *StageExecutionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *StageExecutionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[stageexecution.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *StageExecutionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *StageExecutionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, stageexecution.FieldErrorMessage)
}

// ClearRun clears the "run" edge to the Run entity.
func (m *StageExecutionMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[stageexecution.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *StageExecutionMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *StageExecutionMutation) RunIDs() (ids []int64) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *StageExecutionMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the StageExecutionMutation builder.
func (m *StageExecutionMutation) Where(ps ...predicate.StageExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StageExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StageExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StageExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StageExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StageExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StageExecution).
func (m *StageExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StageExecutionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.run != nil {
		fields = append(fields, stageexecution.FieldRunID)
	}
	if m.stage_name != nil {
		fields = append(fields, stageexecution.FieldStageName)
	}
	if m.ordinal != nil {
		fields = append(fields, stageexecution.FieldOrdinal)
	}
	if m.attempt != nil {
		fields = append(fields, stageexecution.FieldAttempt)
	}
	if m.input != nil {
		fields = append(fields, stageexecution.FieldInput)
	}
	if m.output != nil {
		fields = append(fields, stageexecution.FieldOutput)
	}
	if m.status != nil {
		fields = append(fields, stageexecution.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, stageexecution.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, stageexecution.FieldCompletedAt)
	}
	if m.error_message != nil {
		fields = append(fields, stageexecution.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StageExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stageexecution.FieldRunID:
		return m.RunID()
	case stageexecution.FieldStageName:
		return m.StageName()
	case stageexecution.FieldOrdinal:
		return m.Ordinal()
	case stageexecution.FieldAttempt:
		return m.Attempt()
	case stageexecution.FieldInput:
		return m.Input()
	case stageexecution.FieldOutput:
		return m.Output()
	case stageexecution.FieldStatus:
		return m.Status()
	case stageexecution.FieldStartedAt:
		return m.StartedAt()
	case stageexecution.FieldCompletedAt:
		return m.CompletedAt()
	case stageexecution.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StageExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stageexecution.FieldRunID:
		return m.OldRunID(ctx)
	case stageexecution.FieldStageName:
		return m.OldStageName(ctx)
	case stageexecution.FieldOrdinal:
		return m.OldOrdinal(ctx)
	case stageexecution.FieldAttempt:
		return m.OldAttempt(ctx)
	case stageexecution.FieldInput:
		return m.OldInput(ctx)
	case stageexecution.FieldOutput:
		return m.OldOutput(ctx)
	case stageexecution.FieldStatus:
		return m.OldStatus(ctx)
	case stageexecution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case stageexecution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case stageexecution.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown StageExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stageexecution.FieldRunID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case stageexecution.FieldStageName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageName(v)
		return nil
	case stageexecution.FieldOrdinal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrdinal(v)
		return nil
	case stageexecution.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case stageexecution.FieldInput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInput(v)
		return nil
	case stageexecution.FieldOutput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case stageexecution.FieldStatus:
		v, ok := value.(stageexecution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case stageexecution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case stageexecution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case stageexecution.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown StageExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StageExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addordinal != nil {
		fields = append(fields, stageexecution.FieldOrdinal)
	}
	if m.addattempt != nil {
		fields = append(fields, stageexecution.FieldAttempt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StageExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case stageexecution.FieldOrdinal:
		return m.AddedOrdinal()
	case stageexecution.FieldAttempt:
		return m.AddedAttempt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case stageexecution.FieldOrdinal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrdinal(v)
		return nil
	case stageexecution.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	}
	return fmt.Errorf("unknown StageExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StageExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stageexecution.FieldInput) {
		fields = append(fields, stageexecution.FieldInput)
	}
	if m.FieldCleared(stageexecution.FieldOutput) {
		fields = append(fields, stageexecution.FieldOutput)
	}
	if m.FieldCleared(stageexecution.FieldCompletedAt) {
		fields = append(fields, stageexecution.FieldCompletedAt)
	}
	if m.FieldCleared(stageexecution.FieldErrorMessage) {
		fields = append(fields, stageexecution.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StageExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StageExecutionMutation) ClearField(name string) error {
	switch name {
	case stageexecution.FieldInput:
		m.ClearInput()
		return nil
	case stageexecution.FieldOutput:
		m.ClearOutput()
		return nil
	case stageexecution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case stageexecution.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown StageExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StageExecutionMutation) ResetField(name string) error {
	switch name {
	case stageexecution.FieldRunID:
		m.ResetRunID()
		return nil
	case stageexecution.FieldStageName:
		m.ResetStageName()
		return nil
	case stageexecution.FieldOrdinal:
		m.ResetOrdinal()
		return nil
	case stageexecution.FieldAttempt:
		m.ResetAttempt()
		return nil
	case stageexecution.FieldInput:
		m.ResetInput()
		return nil
	case stageexecution.FieldOutput:
		m.ResetOutput()
		return nil
	case stageexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case stageexecution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case stageexecution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case stageexecution.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown StageExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StageExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, stageexecution.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StageExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case stageexecution.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StageExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StageExecutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StageExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, stageexecution.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StageExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case stageexecution.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StageExecutionMutation) ClearEdge(name string) error {
	switch name {
	case stageexecution.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown StageExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StageExecutionMutation) ResetEdge(name string) error {
	switch name {
	case stageexecution.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown StageExecution edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int64
	external_item_id      *string
	title                 *string
	description           *string
	priority              *task.Priority
	repository_url        *string
	user_language         *string
	creator_id            *string
	creator_email         *string
	internal_status       *task.InternalStatus
	reactivation_count    *int
	addreactivation_count *int
	cooldown_until        *time.Time
	is_locked             *bool
	last_run_id           *int64
	addlast_run_id        *int64
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	runs                  map[int64]struct{}
	removedruns           map[int64]struct{}
	clearedruns           bool
	done                  bool
	oldValue              func(context.Context) (*Task, error)
	predicates            []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id int64) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExternalItemID sets the "external_item_id" field.
func (m *TaskMutation) SetExternalItemID(s string) {
	m.external_item_id = &s
}

// ExternalItemID returns the value of the "external_item_id" field in the mutation.
func (m *TaskMutation) ExternalItemID() (r string, exists bool) {
	v := m.external_item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalItemID returns the old "external_item_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldExternalItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalItemID: %w", err)
	}
	return oldValue.ExternalItemID, nil
}

// ResetExternalItemID resets all changes to the "external_item_id" field.
func (m *TaskMutation) ResetExternalItemID() {
	m.external_item_id = nil
}

// SetTitle sets the "title" field.
func (m *TaskMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TaskMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TaskMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *TaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TaskMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[task.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TaskMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[task.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TaskMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, task.FieldDescription)
}

// SetPriority sets the "priority" field.
func (m *TaskMutation) SetPriority(t task.Priority) {
	m.priority = &t
}

// Priority returns the value of the "priority" field in the mutation.
func (m *TaskMutation) Priority() (r task.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPriority(ctx context.Context) (v task.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *TaskMutation) ResetPriority() {
	m.priority = nil
}

// SetRepositoryURL sets the "repository_url" field.
func (m *TaskMutation) SetRepositoryURL(s string) {
	m.repository_url = &s
}

// RepositoryURL returns the value of the "repository_url" field in the mutation.
func (m *TaskMutation) RepositoryURL() (r string, exists bool) {
	v := m.repository_url
	if v == nil {
		return
	}
	return *v, true
}

// OldRepositoryURL returns the old "repository_url" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRepositoryURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepositoryURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepositoryURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepositoryURL: %w", err)
	}
	return oldValue.RepositoryURL, nil
}

// ClearRepositoryURL clears the value of the "repository_url" field.
func (m *TaskMutation) ClearRepositoryURL() {
	m.repository_url = nil
	m.clearedFields[task.FieldRepositoryURL] = struct{}{}
}

// RepositoryURLCleared returns if the "repository_url" field was cleared in this mutation.
func (m *TaskMutation) RepositoryURLCleared() bool {
	_, ok := m.clearedFields[task.FieldRepositoryURL]
	return ok
}

// ResetRepositoryURL resets all changes to the "repository_url" field.
func (m *TaskMutation) ResetRepositoryURL() {
	m.repository_url = nil
	delete(m.clearedFields, task.FieldRepositoryURL)
}

// SetUserLanguage sets the "user_language" field.
func (m *TaskMutation) SetUserLanguage(s string) {
	m.user_language = &s
}

// UserLanguage returns the value of the "user_language" field in the mutation.
func (m *TaskMutation) UserLanguage() (r string, exists bool) {
	v := m.user_language
	if v == nil {
		return
	}
	return *v, true
}

// OldUserLanguage returns the old "user_language" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUserLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserLanguage: %w", err)
	}
	return oldValue.UserLanguage, nil
}

// ResetUserLanguage resets all changes to the "user_language" field.
func (m *TaskMutation) ResetUserLanguage() {
	m.user_language = nil
}

// SetCreatorID sets the "creator_id" field.
func (m *TaskMutation) SetCreatorID(s string) {
	m.creator_id = &s
}

// CreatorID returns the value of the "creator_id" field in the mutation.
func (m *TaskMutation) CreatorID() (r string, exists bool) {
	v := m.creator_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatorID returns the old "creator_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatorID: %w", err)
	}
	return oldValue.CreatorID, nil
}

// ClearCreatorID clears the value of the "creator_id" field.
func (m *TaskMutation) ClearCreatorID() {
	m.creator_id = nil
	m.clearedFields[task.FieldCreatorID] = struct{}{}
}

// CreatorIDCleared returns if the "creator_id" field was cleared in this mutation.
func (m *TaskMutation) CreatorIDCleared() bool {
	_, ok := m.clearedFields[task.FieldCreatorID]
	return ok
}

// ResetCreatorID resets all changes to the "creator_id" field.
func (m *TaskMutation) ResetCreatorID() {
	m.creator_id = nil
	delete(m.clearedFields, task.FieldCreatorID)
}

// SetCreatorEmail sets the "creator_email" field.
func (m *TaskMutation) SetCreatorEmail(s string) {
	m.creator_email = &s
}

// CreatorEmail returns the value of the "creator_email" field in the mutation.
func (m *TaskMutation) CreatorEmail() (r string, exists bool) {
	v := m.creator_email
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatorEmail returns the old "creator_email" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatorEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatorEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatorEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatorEmail: %w", err)
	}
	return oldValue.CreatorEmail, nil
}

// ClearCreatorEmail clears the value of the "creator_email" field.
func (m *TaskMutation) ClearCreatorEmail() {
	m.creator_email = nil
	m.clearedFields[task.FieldCreatorEmail] = struct{}{}
}

// CreatorEmailCleared returns if the "creator_email" field was cleared in this mutation.
func (m *TaskMutation) CreatorEmailCleared() bool {
	_, ok := m.clearedFields[task.FieldCreatorEmail]
	return ok
}

// ResetCreatorEmail resets all changes to the "creator_email" field.
func (m *TaskMutation) ResetCreatorEmail() {
	m.creator_email = nil
	delete(m.clearedFields, task.FieldCreatorEmail)
}

// SetInternalStatus sets the "internal_status" field.
func (m *TaskMutation) SetInternalStatus(ts task.InternalStatus) {
	m.internal_status = &ts
}

// InternalStatus returns the value of the "internal_status" field in the mutation.
func (m *TaskMutation) InternalStatus() (r task.InternalStatus, exists bool) {
	v := m.internal_status
	if v == nil {
		return
	}
	return *v, true
}

// OldInternalStatus returns the old "internal_status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldInternalStatus(ctx context.Context) (v task.InternalStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInternalStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInternalStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInternalStatus: %w", err)
	}
	return oldValue.InternalStatus, nil
}

// ResetInternalStatus resets all changes to the "internal_status" field.
func (m *TaskMutation) ResetInternalStatus() {
	m.internal_status = nil
}

// SetReactivationCount sets the "reactivation_count" field.
func (m *TaskMutation) SetReactivationCount(i int) {
	m.reactivation_count = &i
	m.addreactivation_count = nil
}

// ReactivationCount returns the value of the "reactivation_count" field in the mutation.
func (m *TaskMutation) ReactivationCount() (r int, exists bool) {
	v := m.reactivation_count
	if v == nil {
		return
	}
	return *v, true
}

// OldReactivationCount returns the old "reactivation_count" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldReactivationCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReactivationCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReactivationCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReactivationCount: %w", err)
	}
	return oldValue.ReactivationCount, nil
}

// AddReactivationCount adds i to the "reactivation_count" field.
func (m *TaskMutation) AddReactivationCount(i int) {
	if m.addreactivation_count != nil {
		*m.addreactivation_count += i
	} else {
		m.addreactivation_count = &i
	}
}

// AddedReactivationCount returns the value that was added to the "reactivation_count" field in this mutation.
func (m *TaskMutation) AddedReactivationCount() (r int, exists bool) {
	v := m.addreactivation_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetReactivationCount resets all changes to the "reactivation_count" field.
func (m *TaskMutation) ResetReactivationCount() {
	m.reactivation_count = nil
	m.addreactivation_count = nil
}

// SetCooldownUntil sets the "cooldown_until" field.
func (m *TaskMutation) SetCooldownUntil(t time.Time) {
	m.cooldown_until = &t
}

// CooldownUntil returns the value of the "cooldown_until" field in the mutation.
func (m *TaskMutation) CooldownUntil() (r time.Time, exists bool) {
	v := m.cooldown_until
	if v == nil {
		return
	}
	return *v, true
}

// OldCooldownUntil returns the old "cooldown_until" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCooldownUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCooldownUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCooldownUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCooldownUntil: %w", err)
	}
	return oldValue.CooldownUntil, nil
}

// ClearCooldownUntil clears the value of the "cooldown_until" field.
func (m *TaskMutation) ClearCooldownUntil() {
	m.cooldown_until = nil
	m.clearedFields[task.FieldCooldownUntil] = struct{}{}
}

// CooldownUntilCleared returns if the "cooldown_until" field was cleared in this mutation.
func (m *TaskMutation) CooldownUntilCleared() bool {
	_, ok := m.clearedFields[task.FieldCooldownUntil]
	return ok
}

// ResetCooldownUntil resets all changes to the "cooldown_until" field.
func (m *TaskMutation) ResetCooldownUntil() {
	m.cooldown_until = nil
	delete(m.clearedFields, task.FieldCooldownUntil)
}

// SetIsLocked sets the "is_locked" field.
func (m *TaskMutation) SetIsLocked(b bool) {
	m.is_locked = &b
}

// IsLocked returns the value of the "is_locked" field in the mutation.
func (m *TaskMutation) IsLocked() (r bool, exists bool) {
	v := m.is_locked
	if v == nil {
		return
	}
	return *v, true
}

// OldIsLocked returns the old "is_locked" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldIsLocked(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsLocked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsLocked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsLocked: %w", err)
	}
	return oldValue.IsLocked, nil
}

// ResetIsLocked resets all changes to the "is_locked" field.
func (m *TaskMutation) ResetIsLocked() {
	m.is_locked = nil
}

// SetLastRunID sets the "last_run_id" field.
func (m *TaskMutation) SetLastRunID(i int64) {
	m.last_run_id = &i
	m.addlast_run_id = nil
}

// LastRunID returns the value of the "last_run_id" field in the mutation.
func (m *TaskMutation) LastRunID() (r int64, exists bool) {
	v := m.last_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRunID returns the old "last_run_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldLastRunID(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRunID: %w", err)
	}
	return oldValue.LastRunID, nil
}

// AddLastRunID adds i to the "last_run_id" field.
func (m *TaskMutation) AddLastRunID(i int64) {
	if m.addlast_run_id != nil {
		*m.addlast_run_id += i
	} else {
		m.addlast_run_id = &i
	}
}

// AddedLastRunID returns the value that was added to the "last_run_id" field in this mutation.
func (m *TaskMutation) AddedLastRunID() (r int64, exists bool) {
	v := m.addlast_run_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearLastRunID clears the value of the "last_run_id" field.
func (m *TaskMutation) ClearLastRunID() {
	m.last_run_id = nil
	m.addlast_run_id = nil
	m.clearedFields[task.FieldLastRunID] = struct{}{}
}

// LastRunIDCleared returns if the "last_run_id" field was cleared in this mutation.
func (m *TaskMutation) LastRunIDCleared() bool {
	_, ok := m.clearedFields[task.FieldLastRunID]
	return ok
}

// ResetLastRunID resets all changes to the "last_run_id" field.
func (m *TaskMutation) ResetLastRunID() {
	m.last_run_id = nil
	m.addlast_run_id = nil
	delete(m.clearedFields, task.FieldLastRunID)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddRunIDs adds the "runs" edge to the Run entity by ids.
func (m *TaskMutation) AddRunIDs(ids ...int64) {
	if m.runs == nil {
		m.runs = make(map[int64]struct{})
	}
	for i := range ids {
		m.runs[ids[i]] = struct{}{}
	}
}

// ClearRuns clears the "runs" edge to the Run entity.
func (m *TaskMutation) ClearRuns() {
	m.clearedruns = true
}

// RunsCleared reports if the "runs" edge to the Run entity was cleared.
func (m *TaskMutation) RunsCleared() bool {
	return m.clearedruns
}

// RemoveRunIDs removes the "runs" edge to the Run entity by IDs.
func (m *TaskMutation) RemoveRunIDs(ids ...int64) {
	if m.removedruns == nil {
		m.removedruns = make(map[int64]struct{})
	}
	for i := range ids {
		delete(m.runs, ids[i])
		m.removedruns[ids[i]] = struct{}{}
	}
}

// RemovedRuns returns the removed IDs of the "runs" edge to the Run entity.
func (m *TaskMutation) RemovedRunsIDs() (ids []int64) {
	for id := range m.removedruns {
		ids = append(ids, id)
	}
	return
}

// RunsIDs returns the "runs" edge IDs in the mutation.
func (m *TaskMutation) RunsIDs() (ids []int64) {
	for id := range m.runs {
		ids = append(ids, id)
	}
	return
}

// ResetRuns resets all changes to the "runs" edge.
func (m *TaskMutation) ResetRuns() {
	m.runs = nil
	m.clearedruns = false
	m.removedruns = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.external_item_id != nil {
		fields = append(fields, task.FieldExternalItemID)
	}
	if m.title != nil {
		fields = append(fields, task.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, task.FieldDescription)
	}
	if m.priority != nil {
		fields = append(fields, task.FieldPriority)
	}
	if m.repository_url != nil {
		fields = append(fields, task.FieldRepositoryURL)
	}
	if m.user_language != nil {
		fields = append(fields, task.FieldUserLanguage)
	}
	if m.creator_id != nil {
		fields = append(fields, task.FieldCreatorID)
	}
	if m.creator_email != nil {
		fields = append(fields, task.FieldCreatorEmail)
	}
	if m.internal_status != nil {
		fields = append(fields, task.FieldInternalStatus)
	}
	if m.reactivation_count != nil {
		fields = append(fields, task.FieldReactivationCount)
	}
	if m.cooldown_until != nil {
		fields = append(fields, task.FieldCooldownUntil)
	}
	if m.is_locked != nil {
		fields = append(fields, task.FieldIsLocked)
	}
	if m.last_run_id != nil {
		fields = append(fields, task.FieldLastRunID)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldExternalItemID:
		return m.ExternalItemID()
	case task.FieldTitle:
		return m.Title()
	case task.FieldDescription:
		return m.Description()
	case task.FieldPriority:
		return m.Priority()
	case task.FieldRepositoryURL:
		return m.RepositoryURL()
	case task.FieldUserLanguage:
		return m.UserLanguage()
	case task.FieldCreatorID:
		return m.CreatorID()
	case task.FieldCreatorEmail:
		return m.CreatorEmail()
	case task.FieldInternalStatus:
		return m.InternalStatus()
	case task.FieldReactivationCount:
		return m.ReactivationCount()
	case task.FieldCooldownUntil:
		return m.CooldownUntil()
	case task.FieldIsLocked:
		return m.IsLocked()
	case task.FieldLastRunID:
		return m.LastRunID()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldExternalItemID:
		return m.OldExternalItemID(ctx)
	case task.FieldTitle:
		return m.OldTitle(ctx)
	case task.FieldDescription:
		return m.OldDescription(ctx)
	case task.FieldPriority:
		return m.OldPriority(ctx)
	case task.FieldRepositoryURL:
		return m.OldRepositoryURL(ctx)
	case task.FieldUserLanguage:
		return m.OldUserLanguage(ctx)
	case task.FieldCreatorID:
		return m.OldCreatorID(ctx)
	case task.FieldCreatorEmail:
		return m.OldCreatorEmail(ctx)
	case task.FieldInternalStatus:
		return m.OldInternalStatus(ctx)
	case task.FieldReactivationCount:
		return m.OldReactivationCount(ctx)
	case task.FieldCooldownUntil:
		return m.OldCooldownUntil(ctx)
	case task.FieldIsLocked:
		return m.OldIsLocked(ctx)
	case task.FieldLastRunID:
		return m.OldLastRunID(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldExternalItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalItemID(v)
		return nil
	case task.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case task.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case task.FieldPriority:
		v, ok := value.(task.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case task.FieldRepositoryURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepositoryURL(v)
		return nil
	case task.FieldUserLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserLanguage(v)
		return nil
	case task.FieldCreatorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatorID(v)
		return nil
	case task.FieldCreatorEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatorEmail(v)
		return nil
	case task.FieldInternalStatus:
		v, ok := value.(task.InternalStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInternalStatus(v)
		return nil
	case task.FieldReactivationCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReactivationCount(v)
		return nil
	case task.FieldCooldownUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCooldownUntil(v)
		return nil
	case task.FieldIsLocked:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsLocked(v)
		return nil
	case task.FieldLastRunID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRunID(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addreactivation_count != nil {
		fields = append(fields, task.FieldReactivationCount)
	}
	if m.addlast_run_id != nil {
		fields = append(fields, task.FieldLastRunID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldReactivationCount:
		return m.AddedReactivationCount()
	case task.FieldLastRunID:
		return m.AddedLastRunID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldReactivationCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReactivationCount(v)
		return nil
	case task.FieldLastRunID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastRunID(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldDescription) {
		fields = append(fields, task.FieldDescription)
	}
	if m.FieldCleared(task.FieldRepositoryURL) {
		fields = append(fields, task.FieldRepositoryURL)
	}
	if m.FieldCleared(task.FieldCreatorID) {
		fields = append(fields, task.FieldCreatorID)
	}
	if m.FieldCleared(task.FieldCreatorEmail) {
		fields = append(fields, task.FieldCreatorEmail)
	}
	if m.FieldCleared(task.FieldCooldownUntil) {
		fields = append(fields, task.FieldCooldownUntil)
	}
	if m.FieldCleared(task.FieldLastRunID) {
		fields = append(fields, task.FieldLastRunID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldDescription:
		m.ClearDescription()
		return nil
	case task.FieldRepositoryURL:
		m.ClearRepositoryURL()
		return nil
	case task.FieldCreatorID:
		m.ClearCreatorID()
		return nil
	case task.FieldCreatorEmail:
		m.ClearCreatorEmail()
		return nil
	case task.FieldCooldownUntil:
		m.ClearCooldownUntil()
		return nil
	case task.FieldLastRunID:
		m.ClearLastRunID()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldExternalItemID:
		m.ResetExternalItemID()
		return nil
	case task.FieldTitle:
		m.ResetTitle()
		return nil
	case task.FieldDescription:
		m.ResetDescription()
		return nil
	case task.FieldPriority:
		m.ResetPriority()
		return nil
	case task.FieldRepositoryURL:
		m.ResetRepositoryURL()
		return nil
	case task.FieldUserLanguage:
		m.ResetUserLanguage()
		return nil
	case task.FieldCreatorID:
		m.ResetCreatorID()
		return nil
	case task.FieldCreatorEmail:
		m.ResetCreatorEmail()
		return nil
	case task.FieldInternalStatus:
		m.ResetInternalStatus()
		return nil
	case task.FieldReactivationCount:
		m.ResetReactivationCount()
		return nil
	case task.FieldCooldownUntil:
		m.ResetCooldownUntil()
		return nil
	case task.FieldIsLocked:
		m.ResetIsLocked()
		return nil
	case task.FieldLastRunID:
		m.ResetLastRunID()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.runs != nil {
		edges = append(edges, task.EdgeRuns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.runs))
		for id := range m.runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedruns != nil {
		edges = append(edges, task.EdgeRuns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.removedruns))
		for id := range m.removedruns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedruns {
		edges = append(edges, task.EdgeRuns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeRuns:
		return m.clearedruns
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeRuns:
		m.ResetRuns()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}

// ValidationRequestMutation represents an operation that mutates the ValidationRequest nodes in the graph.
type ValidationRequestMutation struct {
	config
	op                        Op
	typ                       string
	id                        *int64
	parent_validation_id      *int64
	addparent_validation_id   *int64
	external_comment_id       *string
	body                      *string
	requester_id              *string
	requester_email           *string
	status                    *validationrequest.Status
	rejection_count           *int
	addrejection_count        *int
	modification_instructions *string
	created_at                *time.Time
	resolved_at               *time.Time
	timeout_seconds           *int
	addtimeout_seconds        *int
	clearedFields             map[string]struct{}
	run                       *int64
	clearedrun                bool
	response                  *int64
	clearedresponse           bool
	done                      bool
	oldValue                  func(context.Context) (*ValidationRequest, error)
	predicates                []predicate.ValidationRequest
}

var _ ent.Mutation = (*ValidationRequestMutation)(nil)

// validationrequestOption allows management of the mutation configuration using functional options.
type validationrequestOption func(*ValidationRequestMutation)

// newValidationRequestMutation creates new mutation for the ValidationRequest entity.
func newValidationRequestMutation(c config, op Op, opts ...validationrequestOption) *ValidationRequestMutation {
	m := &ValidationRequestMutation{
		config:        c,
		op:            op,
		typ:           TypeValidationRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withValidationRequestID sets the ID field of the mutation.
func withValidationRequestID(id int64) validationrequestOption {
	return func(m *ValidationRequestMutation) {
		var (
			err   error
			once  sync.Once
			value *ValidationRequest
		)
		m.oldValue = func(ctx context.Context) (*ValidationRequest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ValidationRequest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withValidationRequest sets the old ValidationRequest of the mutation.
func withValidationRequest(node *ValidationRequest) validationrequestOption {
	return func(m *ValidationRequestMutation) {
		m.oldValue = func(context.Context) (*ValidationRequest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ValidationRequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ValidationRequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ValidationRequest entities.
func (m *ValidationRequestMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ValidationRequestMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ValidationRequestMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ValidationRequest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *ValidationRequestMutation) SetRunID(i int64) {
	m.run = &i
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *ValidationRequestMutation) RunID() (r int64, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the ValidationRequest entity.
// If the ValidationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationRequestMutation) OldRunID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *ValidationRequestMutation) ResetRunID() {
	m.run = nil
}

// SetParentValidationID sets the "parent_validation_id" field.
func (m *ValidationRequestMutation) SetParentValidationID(i int64) {
	m.parent_validation_id = &i
	m.addparent_validation_id = nil
}

// ParentValidationID returns the value of the "parent_validation_id" field in the mutation.
func (m *ValidationRequestMutation) ParentValidationID() (r int64, exists bool) {
	v := m.parent_validation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentValidationID returns the old "parent_validation_id" field's value of the ValidationRequest entity.
// If the ValidationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationRequestMutation) OldParentValidationID(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentValidationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentValidationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentValidationID: %w", err)
	}
	return oldValue.ParentValidationID, nil
}

// AddParentValidationID adds i to the "parent_validation_id" field.
func (m *ValidationRequestMutation) AddParentValidationID(i int64) {
	if m.addparent_validation_id != nil {
		*m.addparent_validation_id += i
	} else {
		m.addparent_validation_id = &i
	}
}

// AddedParentValidationID returns the value that was added to the "parent_validation_id" field in this mutation.
func (m *ValidationRequestMutation) AddedParentValidationID() (r int64, exists bool) {
	v := m.addparent_validation_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearParentValidationID clears the value of the "parent_validation_id" field.
func (m *ValidationRequestMutation) ClearParentValidationID() {
	m.parent_validation_id = nil
	m.addparent_validation_id = nil
	m.clearedFields[validationrequest.FieldParentValidationID] = struct{}{}
}

// ParentValidationIDCleared returns if the "parent_validation_id" field was cleared in this mutation.
func (m *ValidationRequestMutation) ParentValidationIDCleared() bool {
	_, ok := m.clearedFields[validationrequest.FieldParentValidationID]
	return ok
}

// ResetParentValidationID resets all changes to the "parent_validation_id" field.
func (m *ValidationRequestMutation) ResetParentValidationID() {
	m.parent_validation_id = nil
	m.addparent_validation_id = nil
	delete(m.clearedFields, validationrequest.FieldParentValidationID)
}

// SetExternalCommentID sets the "external_comment_id" field.
func (m *ValidationRequestMutation) SetExternalCommentID(s string) {
	m.external_comment_id = &s
}

// ExternalCommentID returns the value of the "external_comment_id" field in the mutation.
func (m *ValidationRequestMutation) ExternalCommentID() (r string, exists bool) {
	v := m.external_comment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalCommentID returns the old "external_comment_id" field's value of the ValidationRequest entity.
// If the ValidationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationRequestMutation) OldExternalCommentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalCommentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalCommentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalCommentID: %w", err)
	}
	return oldValue.ExternalCommentID, nil
}

// ClearExternalCommentID clears the value of the "external_comment_id" field.
func (m *ValidationRequestMutation) ClearExternalCommentID() {
	m.external_comment_id = nil
	m.clearedFields[validationrequest.FieldExternalCommentID] = struct{}{}
}

// ExternalCommentIDCleared returns if the "external_comment_id" field was cleared in this mutation.
func (m *ValidationRequestMutation) ExternalCommentIDCleared() bool {
	_, ok := m.clearedFields[validationrequest.FieldExternalCommentID]
	return ok
}

// ResetExternalCommentID resets all changes to the "external_comment_id" field.
func (m *ValidationRequestMutation) ResetExternalCommentID() {
	m.external_comment_id = nil
	delete(m.clearedFields, validationrequest.FieldExternalCommentID)
}

// SetBody sets the "body" field.
func (m *ValidationRequestMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *ValidationRequestMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the ValidationRequest entity.
// If the ValidationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationRequestMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *ValidationRequestMutation) ResetBody() {
	m.body = nil
}

// SetRequesterID sets the "requester_id" field.
func (m *ValidationRequestMutation) SetRequesterID(s string) {
	m.requester_id = &s
}

// RequesterID returns the value of the "requester_id" field in the mutation.
func (m *ValidationRequestMutation) RequesterID() (r string, exists bool) {
	v := m.requester_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequesterID returns the old "requester_id" field's value of the ValidationRequest entity.
// If the ValidationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationRequestMutation) OldRequesterID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequesterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequesterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequesterID: %w", err)
	}
	return oldValue.RequesterID, nil
}

// ClearRequesterID clears the value of the "requester_id" field.
func (m *ValidationRequestMutation) ClearRequesterID() {
	m.requester_id = nil
	m.clearedFields[validationrequest.FieldRequesterID] = struct{}{}
}

// RequesterIDCleared returns if the "requester_id" field was cleared in this mutation.
func (m *ValidationRequestMutation) RequesterIDCleared() bool {
	_, ok := m.clearedFields[validationrequest.FieldRequesterID]
	return ok
}

// ResetRequesterID resets all changes to the "requester_id" field.
func (m *ValidationRequestMutation) ResetRequesterID() {
	m.requester_id = nil
	delete(m.clearedFields, validationrequest.FieldRequesterID)
}

// SetRequesterEmail sets the "requester_email" field.
func (m *ValidationRequestMutation) SetRequesterEmail(s string) {
	m.requester_email = &s
}

// RequesterEmail returns the value of the "requester_email" field in the mutation.
func (m *ValidationRequestMutation) RequesterEmail() (r string, exists bool) {
	v := m.requester_email
	if v == nil {
		return
	}
	return *v, true
}

// OldRequesterEmail returns the old "requester_email" field's value of the ValidationRequest entity.
// If the ValidationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationRequestMutation) OldRequesterEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequesterEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequesterEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequesterEmail: %w", err)
	}
	return oldValue.RequesterEmail, nil
}

// ClearRequesterEmail clears the value of the "requester_email" field.
func (m *ValidationRequestMutation) ClearRequesterEmail() {
	m.requester_email = nil
	m.clearedFields[validationrequest.FieldRequesterEmail] = struct{}{}
}

// RequesterEmailCleared returns if the "requester_email" field was cleared in this mutation.
func (m *ValidationRequestMutation) RequesterEmailCleared() bool {
	_, ok := m.clearedFields[validationrequest.FieldRequesterEmail]
	return ok
}

// ResetRequesterEmail resets all changes to the "requester_email" field.
func (m *ValidationRequestMutation) ResetRequesterEmail() {
	m.requester_email = nil
	delete(m.clearedFields, validationrequest.FieldRequesterEmail)
}

// SetStatus sets the "status" field.
func (m *ValidationRequestMutation) SetStatus(v validationrequest.Status) {
	m.status = &v
}

// Status returns the value of the "status" field in the mutation.
func (m *ValidationRequestMutation) Status() (r validationrequest.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ValidationRequest entity.
// If the ValidationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationRequestMutation) OldStatus(ctx context.Context) (v validationrequest.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ValidationRequestMutation) ResetStatus() {
	m.status = nil
}

// SetRejectionCount sets the "rejection_count" field.
func (m *ValidationRequestMutation) SetRejectionCount(i int) {
	m.rejection_count = &i
	m.addrejection_count = nil
}

// RejectionCount returns the value of the "rejection_count" field in the mutation.
func (m *ValidationRequestMutation) RejectionCount() (r int, exists bool) {
	v := m.rejection_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRejectionCount returns the old "rejection_count" field's value of the ValidationRequest entity.
// If the ValidationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationRequestMutation) OldRejectionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRejectionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRejectionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRejectionCount: %w", err)
	}
	return oldValue.RejectionCount, nil
}

// AddRejectionCount adds i to the "rejection_count" field.
func (m *ValidationRequestMutation) AddRejectionCount(i int) {
	if m.addrejection_count != nil {
		*m.addrejection_count += i
	} else {
		m.addrejection_count = &i
	}
}

// AddedRejectionCount returns the value that was added to the "rejection_count" field in this mutation.
func (m *ValidationRequestMutation) AddedRejectionCount() (r int, exists bool) {
	v := m.addrejection_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRejectionCount resets all changes to the "rejection_count" field.
func (m *ValidationRequestMutation) ResetRejectionCount() {
	m.rejection_count = nil
	m.addrejection_count = nil
}

// SetModificationInstructions sets the "modification_instructions" field.
func (m *ValidationRequestMutation) SetModificationInstructions(s string) {
	m.modification_instructions = &s
}

// ModificationInstructions returns the value of the "modification_instructions" field in the mutation.
func (m *ValidationRequestMutation) ModificationInstructions() (r string, exists bool) {
	v := m.modification_instructions
	if v == nil {
		return
	}
	return *v, true
}

// OldModificationInstructions returns the old "modification_instructions" field's value of the ValidationRequest entity.
// If the ValidationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationRequestMutation) OldModificationInstructions(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModificationInstructions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModificationInstructions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModificationInstructions: %w", err)
	}
	return oldValue.ModificationInstructions, nil
}

// ClearModificationInstructions clears the value of the "modification_instructions" field.
func (m *ValidationRequestMutation) ClearModificationInstructions() {
	m.modification_instructions = nil
	m.clearedFields[validationrequest.FieldModificationInstructions] = struct{}{}
}

// ModificationInstructionsCleared returns if the "modification_instructions" field was cleared in this mutation.
func (m *ValidationRequestMutation) ModificationInstructionsCleared() bool {
	_, ok := m.clearedFields[validationrequest.FieldModificationInstructions]
	return ok
}

// ResetModificationInstructions resets all changes to the "modification_instructions" field.
func (m *ValidationRequestMutation) ResetModificationInstructions() {
	m.modification_instructions = nil
	delete(m.clearedFields, validationrequest.FieldModificationInstructions)
}

// SetCreatedAt sets the "created_at" field.
func (m *ValidationRequestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ValidationRequestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ValidationRequest entity.
// If the ValidationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationRequestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ValidationRequestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetResolvedAt sets the "resolved_at" field.
func (m *ValidationRequestMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *ValidationRequestMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the ValidationRequest entity.
// If the ValidationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationRequestMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *ValidationRequestMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[validationrequest.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *ValidationRequestMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[validationrequest.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *ValidationRequestMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, validationrequest.FieldResolvedAt)
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (m *ValidationRequestMutation) SetTimeoutSeconds(i int) {
	m.timeout_seconds = &i
	m.addtimeout_seconds = nil
}

// TimeoutSeconds returns the value of the "timeout_seconds" field in the mutation.
func (m *ValidationRequestMutation) TimeoutSeconds() (r int, exists bool) {
	v := m.timeout_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeoutSeconds returns the old "timeout_seconds" field's value of the ValidationRequest entity.
// If the ValidationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationRequestMutation) OldTimeoutSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeoutSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeoutSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeoutSeconds: %w", err)
	}
	return oldValue.TimeoutSeconds, nil
}

// AddTimeoutSeconds adds i to the "timeout_seconds" field.
func (m *ValidationRequestMutation) AddTimeoutSeconds(i int) {
	if m.addtimeout_seconds != nil {
		*m.addtimeout_seconds += i
	} else {
		m.addtimeout_seconds = &i
	}
}

// AddedTimeoutSeconds returns the value that was added to the "timeout_seconds" field in this mutation.
func (m *ValidationRequestMutation) AddedTimeoutSeconds() (r int, exists bool) {
	v := m.addtimeout_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeoutSeconds resets all changes to the "timeout_seconds" field.
func (m *ValidationRequestMutation) ResetTimeoutSeconds() {
	m.timeout_seconds = nil
	m.addtimeout_seconds = nil
}

// ClearRun clears the "run" edge to the Run entity.
func (m *ValidationRequestMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[validationrequest.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *ValidationRequestMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *ValidationRequestMutation) RunIDs() (ids []int64) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *ValidationRequestMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// SetResponseID sets the "response" edge to the ValidationResponse entity by id.
func (m *ValidationRequestMutation) SetResponseID(id int64) {
	m.response = &id
}

// ClearResponse clears the "response" edge to the ValidationResponse entity.
func (m *ValidationRequestMutation) ClearResponse() {
	m.clearedresponse = true
}

// ResponseCleared reports if the "response" edge to the ValidationResponse entity was cleared.
func (m *ValidationRequestMutation) ResponseCleared() bool {
	return m.clearedresponse
}

// ResponseID returns the "response" edge ID in the mutation.
func (m *ValidationRequestMutation) ResponseID() (id int64, exists bool) {
	if m.response != nil {
		return *m.response, true
	}
	return
}

// ResponseIDs returns the "response" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ResponseID instead. It exists only for internal usage by the builders.
func (m *ValidationRequestMutation) ResponseIDs() (ids []int64) {
	if id := m.response; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetResponse resets all changes to the "response" edge.
func (m *ValidationRequestMutation) ResetResponse() {
	m.response = nil
	m.clearedresponse = false
}

// Where appends a list predicates to the ValidationRequestMutation builder.
func (m *ValidationRequestMutation) Where(ps ...predicate.ValidationRequest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ValidationRequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ValidationRequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ValidationRequest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ValidationRequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ValidationRequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ValidationRequest).
func (m *ValidationRequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ValidationRequestMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.run != nil {
		fields = append(fields, validationrequest.FieldRunID)
	}
	if m.parent_validation_id != nil {
		fields = append(fields, validationrequest.FieldParentValidationID)
	}
	if m.external_comment_id != nil {
		fields = append(fields, validationrequest.FieldExternalCommentID)
	}
	if m.body != nil {
		fields = append(fields, validationrequest.FieldBody)
	}
	if m.requester_id != nil {
		fields = append(fields, validationrequest.FieldRequesterID)
	}
	if m.requester_email != nil {
		fields = append(fields, validationrequest.FieldRequesterEmail)
	}
	if m.status != nil {
		fields = append(fields, validationrequest.FieldStatus)
	}
	if m.rejection_count != nil {
		fields = append(fields, validationrequest.FieldRejectionCount)
	}
	if m.modification_instructions != nil {
		fields = append(fields, validationrequest.FieldModificationInstructions)
	}
	if m.created_at != nil {
		fields = append(fields, validationrequest.FieldCreatedAt)
	}
	if m.resolved_at != nil {
		fields = append(fields, validationrequest.FieldResolvedAt)
	}
	if m.timeout_seconds != nil {
		fields = append(fields, validationrequest.FieldTimeoutSeconds)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ValidationRequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case validationrequest.FieldRunID:
		return m.RunID()
	case validationrequest.FieldParentValidationID:
		return m.ParentValidationID()
	case validationrequest.FieldExternalCommentID:
		return m.ExternalCommentID()
	case validationrequest.FieldBody:
		return m.Body()
	case validationrequest.FieldRequesterID:
		return m.RequesterID()
	case validationrequest.FieldRequesterEmail:
		return m.RequesterEmail()
	case validationrequest.FieldStatus:
		return m.Status()
	case validationrequest.FieldRejectionCount:
		return m.RejectionCount()
	case validationrequest.FieldModificationInstructions:
		return m.ModificationInstructions()
	case validationrequest.FieldCreatedAt:
		return m.CreatedAt()
	case validationrequest.FieldResolvedAt:
		return m.ResolvedAt()
	case validationrequest.FieldTimeoutSeconds:
		return m.TimeoutSeconds()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ValidationRequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case validationrequest.FieldRunID:
		return m.OldRunID(ctx)
	case validationrequest.FieldParentValidationID:
		return m.OldParentValidationID(ctx)
	case validationrequest.FieldExternalCommentID:
		return m.OldExternalCommentID(ctx)
	case validationrequest.FieldBody:
		return m.OldBody(ctx)
	case validationrequest.FieldRequesterID:
		return m.OldRequesterID(ctx)
	case validationrequest.FieldRequesterEmail:
		return m.OldRequesterEmail(ctx)
	case validationrequest.FieldStatus:
		return m.OldStatus(ctx)
	case validationrequest.FieldRejectionCount:
		return m.OldRejectionCount(ctx)
	case validationrequest.FieldModificationInstructions:
		return m.OldModificationInstructions(ctx)
	case validationrequest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case validationrequest.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	case validationrequest.FieldTimeoutSeconds:
		return m.OldTimeoutSeconds(ctx)
	}
	return nil, fmt.Errorf("unknown ValidationRequest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ValidationRequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case validationrequest.FieldRunID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case validationrequest.FieldParentValidationID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentValidationID(v)
		return nil
	case validationrequest.FieldExternalCommentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalCommentID(v)
		return nil
	case validationrequest.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case validationrequest.FieldRequesterID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequesterID(v)
		return nil
	case validationrequest.FieldRequesterEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequesterEmail(v)
		return nil
	case validationrequest.FieldStatus:
		v, ok := value.(validationrequest.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case validationrequest.FieldRejectionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRejectionCount(v)
		return nil
	case validationrequest.FieldModificationInstructions:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModificationInstructions(v)
		return nil
	case validationrequest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case validationrequest.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	case validationrequest.FieldTimeoutSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeoutSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown ValidationRequest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ValidationRequestMutation) AddedFields() []string {
	var fields []string
	if m.addparent_validation_id != nil {
		fields = append(fields, validationrequest.FieldParentValidationID)
	}
	if m.addrejection_count != nil {
		fields = append(fields, validationrequest.FieldRejectionCount)
	}
	if m.addtimeout_seconds != nil {
		fields = append(fields, validationrequest.FieldTimeoutSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ValidationRequestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case validationrequest.FieldParentValidationID:
		return m.AddedParentValidationID()
	case validationrequest.FieldRejectionCount:
		return m.AddedRejectionCount()
	case validationrequest.FieldTimeoutSeconds:
		return m.AddedTimeoutSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ValidationRequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case validationrequest.FieldParentValidationID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddParentValidationID(v)
		return nil
	case validationrequest.FieldRejectionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRejectionCount(v)
		return nil
	case validationrequest.FieldTimeoutSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeoutSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown ValidationRequest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ValidationRequestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(validationrequest.FieldParentValidationID) {
		fields = append(fields, validationrequest.FieldParentValidationID)
	}
	if m.FieldCleared(validationrequest.FieldExternalCommentID) {
		fields = append(fields, validationrequest.FieldExternalCommentID)
	}
	if m.FieldCleared(validationrequest.FieldRequesterID) {
		fields = append(fields, validationrequest.FieldRequesterID)
	}
	if m.FieldCleared(validationrequest.FieldRequesterEmail) {
		fields = append(fields, validationrequest.FieldRequesterEmail)
	}
	if m.FieldCleared(validationrequest.FieldModificationInstructions) {
		fields = append(fields, validationrequest.FieldModificationInstructions)
	}
	if m.FieldCleared(validationrequest.FieldResolvedAt) {
		fields = append(fields, validationrequest.FieldResolvedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ValidationRequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ValidationRequestMutation) ClearField(name string) error {
	switch name {
	case validationrequest.FieldParentValidationID:
		m.ClearParentValidationID()
		return nil
	case validationrequest.FieldExternalCommentID:
		m.ClearExternalCommentID()
		return nil
	case validationrequest.FieldRequesterID:
		m.ClearRequesterID()
		return nil
	case validationrequest.FieldRequesterEmail:
		m.ClearRequesterEmail()
		return nil
	case validationrequest.FieldModificationInstructions:
		m.ClearModificationInstructions()
		return nil
	case validationrequest.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown ValidationRequest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ValidationRequestMutation) ResetField(name string) error {
	switch name {
	case validationrequest.FieldRunID:
		m.ResetRunID()
		return nil
	case validationrequest.FieldParentValidationID:
		m.ResetParentValidationID()
		return nil
	case validationrequest.FieldExternalCommentID:
		m.ResetExternalCommentID()
		return nil
	case validationrequest.FieldBody:
		m.ResetBody()
		return nil
	case validationrequest.FieldRequesterID:
		m.ResetRequesterID()
		return nil
	case validationrequest.FieldRequesterEmail:
		m.ResetRequesterEmail()
		return nil
	case validationrequest.FieldStatus:
		m.ResetStatus()
		return nil
	case validationrequest.FieldRejectionCount:
		m.ResetRejectionCount()
		return nil
	case validationrequest.FieldModificationInstructions:
		m.ResetModificationInstructions()
		return nil
	case validationrequest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case validationrequest.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	case validationrequest.FieldTimeoutSeconds:
		m.ResetTimeoutSeconds()
		return nil
	}
	return fmt.Errorf("unknown ValidationRequest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ValidationRequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.run != nil {
		edges = append(edges, validationrequest.EdgeRun)
	}
	if m.response != nil {
		edges = append(edges, validationrequest.EdgeResponse)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ValidationRequestMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case validationrequest.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	case validationrequest.EdgeResponse:
		if id := m.response; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ValidationRequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ValidationRequestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ValidationRequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedrun {
		edges = append(edges, validationrequest.EdgeRun)
	}
	if m.clearedresponse {
		edges = append(edges, validationrequest.EdgeResponse)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ValidationRequestMutation) EdgeCleared(name string) bool {
	switch name {
	case validationrequest.EdgeRun:
		return m.clearedrun
	case validationrequest.EdgeResponse:
		return m.clearedresponse
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ValidationRequestMutation) ClearEdge(name string) error {
	switch name {
	case validationrequest.EdgeRun:
		m.ClearRun()
		return nil
	case validationrequest.EdgeResponse:
		m.ClearResponse()
		return nil
	}
	return fmt.Errorf("unknown ValidationRequest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ValidationRequestMutation) ResetEdge(name string) error {
	switch name {
	case validationrequest.EdgeRun:
		m.ResetRun()
		return nil
	case validationrequest.EdgeResponse:
		m.ResetResponse()
		return nil
	}
	return fmt.Errorf("unknown ValidationRequest edge %s", name)
}

// ValidationResponseMutation represents an operation that mutates the ValidationResponse nodes in the graph.
type ValidationResponseMutation struct {
	config
	op                        Op
	typ                       string
	id                        *int64
	raw_reply                 *string
	verdict                   *validationresponse.Verdict
	confidence                *float64
	addconfidence             *float64
	analysis_method           *validationresponse.AnalysisMethod
	modification_instructions *string
	reviewer_id               *string
	reviewer_email            *string
	system_note               *string
	created_at                *time.Time
	clearedFields             map[string]struct{}
	request                   *int64
	clearedrequest            bool
	done                      bool
	oldValue                  func(context.Context) (*ValidationResponse, error)
	predicates                []predicate.ValidationResponse
}

var _ ent.Mutation = (*ValidationResponseMutation)(nil)

// validationresponseOption allows management of the mutation configuration using functional options.
type validationresponseOption func(*ValidationResponseMutation)

// newValidationResponseMutation creates new mutation for the ValidationResponse entity.
func newValidationResponseMutation(c config, op Op, opts ...validationresponseOption) *ValidationResponseMutation {
	m := &ValidationResponseMutation{
		config:        c,
		op:            op,
		typ:           TypeValidationResponse,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withValidationResponseID sets the ID field of the mutation.
func withValidationResponseID(id int64) validationresponseOption {
	return func(m *ValidationResponseMutation) {
		var (
			err   error
			once  sync.Once
			value *ValidationResponse
		)
		m.oldValue = func(ctx context.Context) (*ValidationResponse, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ValidationResponse.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withValidationResponse sets the old ValidationResponse of the mutation.
func withValidationResponse(node *ValidationResponse) validationresponseOption {
	return func(m *ValidationResponseMutation) {
		m.oldValue = func(context.Context) (*ValidationResponse, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ValidationResponseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ValidationResponseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ValidationResponse entities.
func (m *ValidationResponseMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ValidationResponseMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ValidationResponseMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ValidationResponse.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetValidationRequestID sets the "validation_request_id" field.
func (m *ValidationResponseMutation) SetValidationRequestID(i int64) {
	m.request = &i
}

// ValidationRequestID returns the value of the "validation_request_id" field in the mutation.
func (m *ValidationResponseMutation) ValidationRequestID() (r int64, exists bool) {
	v := m.request
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationRequestID returns the old "validation_request_id" field's value of the ValidationResponse entity.
// If the ValidationResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationResponseMutation) OldValidationRequestID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationRequestID: %w", err)
	}
	return oldValue.ValidationRequestID, nil
}

// ResetValidationRequestID resets all changes to the "validation_request_id" field.
func (m *ValidationResponseMutation) ResetValidationRequestID() {
	m.request = nil
}

// SetRawReply sets the "raw_reply" field.
func (m *ValidationResponseMutation) SetRawReply(s string) {
	m.raw_reply = &s
}

// RawReply returns the value of the "raw_reply" field in the mutation.
func (m *ValidationResponseMutation) RawReply() (r string, exists bool) {
	v := m.raw_reply
	if v == nil {
		return
	}
	return *v, true
}

// OldRawReply returns the old "raw_reply" field's value of the ValidationResponse entity.
// If the ValidationResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationResponseMutation) OldRawReply(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawReply is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawReply requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawReply: %w", err)
	}
	return oldValue.RawReply, nil
}

// ResetRawReply resets all changes to the "raw_reply" field.
func (m *ValidationResponseMutation) ResetRawReply() {
	m.raw_reply = nil
}

// SetVerdict sets the "verdict" field.
func (m *ValidationResponseMutation) SetVerdict(v validationresponse.Verdict) {
	m.verdict = &v
}

// Verdict returns the value of the "verdict" field in the mutation.
func (m *ValidationResponseMutation) Verdict() (r validationresponse.Verdict, exists bool) {
	v := m.verdict
	if v == nil {
		return
	}
	return *v, true
}

// OldVerdict returns the old "verdict" field's value of the ValidationResponse entity.
// If the ValidationResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationResponseMutation) OldVerdict(ctx context.Context) (v validationresponse.Verdict, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerdict is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerdict requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerdict: %w", err)
	}
	return oldValue.Verdict, nil
}

// ResetVerdict resets all changes to the "verdict" field.
func (m *ValidationResponseMutation) ResetVerdict() {
	m.verdict = nil
}

// SetConfidence sets the "confidence" field.
func (m *ValidationResponseMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ValidationResponseMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the ValidationResponse entity.
// If the ValidationResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationResponseMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *ValidationResponseMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ValidationResponseMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ValidationResponseMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetAnalysisMethod sets the "analysis_method" field.
func (m *ValidationResponseMutation) SetAnalysisMethod(vm validationresponse.AnalysisMethod) {
	m.analysis_method = &vm
}

// AnalysisMethod returns the value of the "analysis_method" field in the mutation.
func (m *ValidationResponseMutation) AnalysisMethod() (r validationresponse.AnalysisMethod, exists bool) {
	v := m.analysis_method
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisMethod returns the old "analysis_method" field's value of the ValidationResponse entity.
// If the ValidationResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationResponseMutation) OldAnalysisMethod(ctx context.Context) (v validationresponse.AnalysisMethod, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisMethod: %w", err)
	}
	return oldValue.AnalysisMethod, nil
}

// ResetAnalysisMethod resets all changes to the "analysis_method" field.
func (m *ValidationResponseMutation) ResetAnalysisMethod() {
	m.analysis_method = nil
}

// SetModificationInstructions sets the "modification_instructions" field.
func (m *ValidationResponseMutation) SetModificationInstructions(s string) {
	m.modification_instructions = &s
}

// ModificationInstructions returns the value of the "modification_instructions" field in the mutation.
func (m *ValidationResponseMutation) ModificationInstructions() (r string, exists bool) {
	v := m.modification_instructions
	if v == nil {
		return
	}
	return *v, true
}

// OldModificationInstructions returns the old "modification_instructions" field's value of the ValidationResponse entity.
// If the ValidationResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationResponseMutation) OldModificationInstructions(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModificationInstructions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModificationInstructions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModificationInstructions: %w", err)
	}
	return oldValue.ModificationInstructions, nil
}

// ClearModificationInstructions clears the value of the "modification_instructions" field.
func (m *ValidationResponseMutation) ClearModificationInstructions() {
	m.modification_instructions = nil
	m.clearedFields[validationresponse.FieldModificationInstructions] = struct{}{}
}

// ModificationInstructionsCleared returns if the "modification_instructions" field was cleared in this mutation.
func (m *ValidationResponseMutation) ModificationInstructionsCleared() bool {
	_, ok := m.clearedFields[validationresponse.FieldModificationInstructions]
	return ok
}

// ResetModificationInstructions resets all changes to the "modification_instructions" field.
func (m *ValidationResponseMutation) ResetModificationInstructions() {
	m.modification_instructions = nil
	delete(m.clearedFields, validationresponse.FieldModificationInstructions)
}

// SetReviewerID sets the "reviewer_id" field.
func (m *ValidationResponseMutation) SetReviewerID(s string) {
	m.reviewer_id = &s
}

// ReviewerID returns the value of the "reviewer_id" field in the mutation.
func (m *ValidationResponseMutation) ReviewerID() (r string, exists bool) {
	v := m.reviewer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewerID returns the old "reviewer_id" field's value of the ValidationResponse entity.
// If the ValidationResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationResponseMutation) OldReviewerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewerID: %w", err)
	}
	return oldValue.ReviewerID, nil
}

// ClearReviewerID clears the value of the "reviewer_id" field.
func (m *ValidationResponseMutation) ClearReviewerID() {
	m.reviewer_id = nil
	m.clearedFields[validationresponse.FieldReviewerID] = struct{}{}
}

// ReviewerIDCleared returns if the "reviewer_id" field was cleared in this mutation.
func (m *ValidationResponseMutation) ReviewerIDCleared() bool {
	_, ok := m.clearedFields[validationresponse.FieldReviewerID]
	return ok
}

// ResetReviewerID resets all changes to the "reviewer_id" field.
func (m *ValidationResponseMutation) ResetReviewerID() {
	m.reviewer_id = nil
	delete(m.clearedFields, validationresponse.FieldReviewerID)
}

// SetReviewerEmail sets the "reviewer_email" field.
func (m *ValidationResponseMutation) SetReviewerEmail(s string) {
	m.reviewer_email = &s
}

// ReviewerEmail returns the value of the "reviewer_email" field in the mutation.
func (m *ValidationResponseMutation) ReviewerEmail() (r string, exists bool) {
	v := m.reviewer_email
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewerEmail returns the old "reviewer_email" field's value of the ValidationResponse entity.
// If the ValidationResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationResponseMutation) OldReviewerEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewerEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewerEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewerEmail: %w", err)
	}
	return oldValue.ReviewerEmail, nil
}

// ClearReviewerEmail clears the value of the "reviewer_email" field.
func (m *ValidationResponseMutation) ClearReviewerEmail() {
	m.reviewer_email = nil
	m.clearedFields[validationresponse.FieldReviewerEmail] = struct{}{}
}

// ReviewerEmailCleared returns if the "reviewer_email" field was cleared in this mutation.
func (m *ValidationResponseMutation) ReviewerEmailCleared() bool {
	_, ok := m.clearedFields[validationresponse.FieldReviewerEmail]
	return ok
}

// ResetReviewerEmail resets all changes to the "reviewer_email" field.
func (m *ValidationResponseMutation) ResetReviewerEmail() {
	m.reviewer_email = nil
	delete(m.clearedFields, validationresponse.FieldReviewerEmail)
}

// SetSystemNote sets the "system_note" field.
func (m *ValidationResponseMutation) SetSystemNote(s string) {
	m.system_note = &s
}

// SystemNote returns the value of the "system_note" field in the mutation.
func (m *ValidationResponseMutation) SystemNote() (r string, exists bool) {
	v := m.system_note
	if v == nil {
		return
	}
	return *v, true
}

// OldSystemNote returns the old "system_note" field's value of the ValidationResponse entity.
// If the ValidationResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationResponseMutation) OldSystemNote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSystemNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSystemNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSystemNote: %w", err)
	}
	return oldValue.SystemNote, nil
}

// ClearSystemNote clears the value of the "system_note" field.
func (m *ValidationResponseMutation) ClearSystemNote() {
	m.system_note = nil
	m.clearedFields[validationresponse.FieldSystemNote] = struct{}{}
}

// SystemNoteCleared returns if the "system_note" field was cleared in this mutation.
func (m *ValidationResponseMutation) SystemNoteCleared() bool {
	_, ok := m.clearedFields[validationresponse.FieldSystemNote]
	return ok
}

// ResetSystemNote resets all changes to the "system_note" field.
func (m *ValidationResponseMutation) ResetSystemNote() {
	m.system_note = nil
	delete(m.clearedFields, validationresponse.FieldSystemNote)
}

// SetCreatedAt sets the "created_at" field.
func (m *ValidationResponseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ValidationResponseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ValidationResponse entity.
// If the ValidationResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationResponseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ValidationResponseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetRequestID sets the "request" edge to the ValidationRequest entity by id.
func (m *ValidationResponseMutation) SetRequestID(id int64) {
	m.request = &id
}

// ClearRequest clears the "request" edge to the ValidationRequest entity.
func (m *ValidationResponseMutation) ClearRequest() {
	m.clearedrequest = true
	m.clearedFields[validationresponse.FieldValidationRequestID] = struct{}{}
}

// RequestCleared reports if the "request" edge to the ValidationRequest entity was cleared.
func (m *ValidationResponseMutation) RequestCleared() bool {
	return m.clearedrequest
}

// RequestID returns the "request" edge ID in the mutation.
func (m *ValidationResponseMutation) RequestID() (id int64, exists bool) {
	if m.request != nil {
		return *m.request, true
	}
	return
}

// RequestIDs returns the "request" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RequestID instead. It exists only for internal usage by the builders.
func (m *ValidationResponseMutation) RequestIDs() (ids []int64) {
	if id := m.request; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRequest resets all changes to the "request" edge.
func (m *ValidationResponseMutation) ResetRequest() {
	m.request = nil
	m.clearedrequest = false
}

// Where appends a list predicates to the ValidationResponseMutation builder.
func (m *ValidationResponseMutation) Where(ps ...predicate.ValidationResponse) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ValidationResponseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ValidationResponseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ValidationResponse, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ValidationResponseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ValidationResponseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ValidationResponse).
func (m *ValidationResponseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ValidationResponseMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.request != nil {
		fields = append(fields, validationresponse.FieldValidationRequestID)
	}
	if m.raw_reply != nil {
		fields = append(fields, validationresponse.FieldRawReply)
	}
	if m.verdict != nil {
		fields = append(fields, validationresponse.FieldVerdict)
	}
	if m.confidence != nil {
		fields = append(fields, validationresponse.FieldConfidence)
	}
	if m.analysis_method != nil {
		fields = append(fields, validationresponse.FieldAnalysisMethod)
	}
	if m.modification_instructions != nil {
		fields = append(fields, validationresponse.FieldModificationInstructions)
	}
	if m.reviewer_id != nil {
		fields = append(fields, validationresponse.FieldReviewerID)
	}
	if m.reviewer_email != nil {
		fields = append(fields, validationresponse.FieldReviewerEmail)
	}
	if m.system_note != nil {
		fields = append(fields, validationresponse.FieldSystemNote)
	}
	if m.created_at != nil {
		fields = append(fields, validationresponse.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ValidationResponseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case validationresponse.FieldValidationRequestID:
		return m.ValidationRequestID()
	case validationresponse.FieldRawReply:
		return m.RawReply()
	case validationresponse.FieldVerdict:
		return m.Verdict()
	case validationresponse.FieldConfidence:
		return m.Confidence()
	case validationresponse.FieldAnalysisMethod:
		return m.AnalysisMethod()
	case validationresponse.FieldModificationInstructions:
		return m.ModificationInstructions()
	case validationresponse.FieldReviewerID:
		return m.ReviewerID()
	case validationresponse.FieldReviewerEmail:
		return m.ReviewerEmail()
	case validationresponse.FieldSystemNote:
		return m.SystemNote()
	case validationresponse.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ValidationResponseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case validationresponse.FieldValidationRequestID:
		return m.OldValidationRequestID(ctx)
	case validationresponse.FieldRawReply:
		return m.OldRawReply(ctx)
	case validationresponse.FieldVerdict:
		return m.OldVerdict(ctx)
	case validationresponse.FieldConfidence:
		return m.OldConfidence(ctx)
	case validationresponse.FieldAnalysisMethod:
		return m.OldAnalysisMethod(ctx)
	case validationresponse.FieldModificationInstructions:
		return m.OldModificationInstructions(ctx)
	case validationresponse.FieldReviewerID:
		return m.OldReviewerID(ctx)
	case validationresponse.FieldReviewerEmail:
		return m.OldReviewerEmail(ctx)
	case validationresponse.FieldSystemNote:
		return m.OldSystemNote(ctx)
	case validationresponse.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ValidationResponse field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ValidationResponseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case validationresponse.FieldValidationRequestID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationRequestID(v)
		return nil
	case validationresponse.FieldRawReply:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawReply(v)
		return nil
	case validationresponse.FieldVerdict:
		v, ok := value.(validationresponse.Verdict)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerdict(v)
		return nil
	case validationresponse.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case validationresponse.FieldAnalysisMethod:
		v, ok := value.(validationresponse.AnalysisMethod)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisMethod(v)
		return nil
	case validationresponse.FieldModificationInstructions:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModificationInstructions(v)
		return nil
	case validationresponse.FieldReviewerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewerID(v)
		return nil
	case validationresponse.FieldReviewerEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewerEmail(v)
		return nil
	case validationresponse.FieldSystemNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSystemNote(v)
		return nil
	case validationresponse.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ValidationResponse field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ValidationResponseMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, validationresponse.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ValidationResponseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case validationresponse.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ValidationResponseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case validationresponse.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown ValidationResponse numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ValidationResponseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(validationresponse.FieldModificationInstructions) {
		fields = append(fields, validationresponse.FieldModificationInstructions)
	}
	if m.FieldCleared(validationresponse.FieldReviewerID) {
		fields = append(fields, validationresponse.FieldReviewerID)
	}
	if m.FieldCleared(validationresponse.FieldReviewerEmail) {
		fields = append(fields, validationresponse.FieldReviewerEmail)
	}
	if m.FieldCleared(validationresponse.FieldSystemNote) {
		fields = append(fields, validationresponse.FieldSystemNote)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ValidationResponseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ValidationResponseMutation) ClearField(name string) error {
	switch name {
	case validationresponse.FieldModificationInstructions:
		m.ClearModificationInstructions()
		return nil
	case validationresponse.FieldReviewerID:
		m.ClearReviewerID()
		return nil
	case validationresponse.FieldReviewerEmail:
		m.ClearReviewerEmail()
		return nil
	case validationresponse.FieldSystemNote:
		m.ClearSystemNote()
		return nil
	}
	return fmt.Errorf("unknown ValidationResponse nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ValidationResponseMutation) ResetField(name string) error {
	switch name {
	case validationresponse.FieldValidationRequestID:
		m.ResetValidationRequestID()
		return nil
	case validationresponse.FieldRawReply:
		m.ResetRawReply()
		return nil
	case validationresponse.FieldVerdict:
		m.ResetVerdict()
		return nil
	case validationresponse.FieldConfidence:
		m.ResetConfidence()
		return nil
	case validationresponse.FieldAnalysisMethod:
		m.ResetAnalysisMethod()
		return nil
	case validationresponse.FieldModificationInstructions:
		m.ResetModificationInstructions()
		return nil
	case validationresponse.FieldReviewerID:
		m.ResetReviewerID()
		return nil
	case validationresponse.FieldReviewerEmail:
		m.ResetReviewerEmail()
		return nil
	case validationresponse.FieldSystemNote:
		m.ResetSystemNote()
		return nil
	case validationresponse.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ValidationResponse field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ValidationResponseMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.request != nil {
		edges = append(edges, validationresponse.EdgeRequest)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ValidationResponseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case validationresponse.EdgeRequest:
		if id := m.request; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ValidationResponseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ValidationResponseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ValidationResponseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrequest {
		edges = append(edges, validationresponse.EdgeRequest)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ValidationResponseMutation) EdgeCleared(name string) bool {
	switch name {
	case validationresponse.EdgeRequest:
		return m.clearedrequest
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ValidationResponseMutation) ClearEdge(name string) error {
	switch name {
	case validationresponse.EdgeRequest:
		m.ClearRequest()
		return nil
	}
	return fmt.Errorf("unknown ValidationResponse unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ValidationResponseMutation) ResetEdge(name string) error {
	switch name {
	case validationresponse.EdgeRequest:
		m.ResetRequest()
		return nil
	}
	return fmt.Errorf("unknown ValidationResponse edge %s", name)
}

// WebhookEventMutation represents an operation that mutates the WebhookEvent nodes in the graph.
type WebhookEventMutation struct {
	config
	op                Op
	typ               string
	id                *int64
	source            *string
	event_type        *string
	external_event_id *string
	payload           *map[string]interface{}
	headers           *map[string]string
	signature         *string
	received_at       *time.Time
	processed_at      *time.Time
	outcome           *webhookevent.Outcome
	outcome_detail    *string
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*WebhookEvent, error)
	predicates        []predicate.WebhookEvent
}

var _ ent.Mutation = (*WebhookEventMutation)(nil)

// webhookeventOption allows management of the mutation configuration using functional options.
type webhookeventOption func(*WebhookEventMutation)

// newWebhookEventMutation creates new mutation for the WebhookEvent entity.
func newWebhookEventMutation(c config, op Op, opts ...webhookeventOption) *WebhookEventMutation {
	m := &WebhookEventMutation{
		config:        c,
		op:            op,
		typ:           TypeWebhookEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWebhookEventID sets the ID field of the mutation.
func withWebhookEventID(id int64) webhookeventOption {
	return func(m *WebhookEventMutation) {
		var (
			err   error
			once  sync.Once
			value *WebhookEvent
		)
		m.oldValue = func(ctx context.Context) (*WebhookEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WebhookEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWebhookEvent sets the old WebhookEvent of the mutation.
func withWebhookEvent(node *WebhookEvent) webhookeventOption {
	return func(m *WebhookEventMutation) {
		m.oldValue = func(context.Context) (*WebhookEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WebhookEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WebhookEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WebhookEvent entities.
func (m *WebhookEventMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WebhookEventMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WebhookEventMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WebhookEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSource sets the "source" field.
func (m *WebhookEventMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *WebhookEventMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *WebhookEventMutation) ResetSource() {
	m.source = nil
}

// SetEventType sets the "event_type" field.
func (m *WebhookEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *WebhookEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ClearEventType clears the value of the "event_type" field.
func (m *WebhookEventMutation) ClearEventType() {
	m.event_type = nil
	m.clearedFields[webhookevent.FieldEventType] = struct{}{}
}

// EventTypeCleared returns if the "event_type" field was cleared in this mutation.
func (m *WebhookEventMutation) EventTypeCleared() bool {
	_, ok := m.clearedFields[webhookevent.FieldEventType]
	return ok
}

// ResetEventType resets all changes to the "event_type" field.
func (m *WebhookEventMutation) ResetEventType() {
	m.event_type = nil
	delete(m.clearedFields, webhookevent.FieldEventType)
}

// SetExternalEventID sets the "external_event_id" field.
func (m *WebhookEventMutation) SetExternalEventID(s string) {
	m.external_event_id = &s
}

// ExternalEventID returns the value of the "external_event_id" field in the mutation.
func (m *WebhookEventMutation) ExternalEventID() (r string, exists bool) {
	v := m.external_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalEventID returns the old "external_event_id" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldExternalEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalEventID: %w", err)
	}
	return oldValue.ExternalEventID, nil
}

// ClearExternalEventID clears the value of the "external_event_id" field.
func (m *WebhookEventMutation) ClearExternalEventID() {
	m.external_event_id = nil
	m.clearedFields[webhookevent.FieldExternalEventID] = struct{}{}
}

// ExternalEventIDCleared returns if the "external_event_id" field was cleared in this mutation.
func (m *WebhookEventMutation) ExternalEventIDCleared() bool {
	_, ok := m.clearedFields[webhookevent.FieldExternalEventID]
	return ok
}

// ResetExternalEventID resets all changes to the "external_event_id" field.
func (m *WebhookEventMutation) ResetExternalEventID() {
	m.external_event_id = nil
	delete(m.clearedFields, webhookevent.FieldExternalEventID)
}

// SetPayload sets the "payload" field.
func (m *WebhookEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *WebhookEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *WebhookEventMutation) ResetPayload() {
	m.payload = nil
}

// SetHeaders sets the "headers" field.
func (m *WebhookEventMutation) SetHeaders(value map[string]string) {
	m.headers = &value
}

// Headers returns the value of the "headers" field in the mutation.
func (m *WebhookEventMutation) Headers() (r map[string]string, exists bool) {
	v := m.headers
	if v == nil {
		return
	}
	return *v, true
}

// OldHeaders returns the old "headers" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldHeaders(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeaders is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeaders requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeaders: %w", err)
	}
	return oldValue.Headers, nil
}

// ClearHeaders clears the value of the "headers" field.
func (m *WebhookEventMutation) ClearHeaders() {
	m.headers = nil
	m.clearedFields[webhookevent.FieldHeaders] = struct{}{}
}

// HeadersCleared returns if the "headers" field was cleared in this mutation.
func (m *WebhookEventMutation) HeadersCleared() bool {
	_, ok := m.clearedFields[webhookevent.FieldHeaders]
	return ok
}

// ResetHeaders resets all changes to the "headers" field.
func (m *WebhookEventMutation) ResetHeaders() {
	m.headers = nil
	delete(m.clearedFields, webhookevent.FieldHeaders)
}

// SetSignature sets the "signature" field.
func (m *WebhookEventMutation) SetSignature(s string) {
	m.signature = &s
}

// Signature returns the value of the "signature" field in the mutation.
func (m *WebhookEventMutation) Signature() (r string, exists bool) {
	v := m.signature
	if v == nil {
		return
	}
	return *v, true
}

// OldSignature returns the old "signature" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldSignature(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignature: %w", err)
	}
	return oldValue.Signature, nil
}

// ClearSignature clears the value of the "signature" field.
func (m *WebhookEventMutation) ClearSignature() {
	m.signature = nil
	m.clearedFields[webhookevent.FieldSignature] = struct{}{}
}

// SignatureCleared returns if the "signature" field was cleared in this mutation.
func (m *WebhookEventMutation) SignatureCleared() bool {
	_, ok := m.clearedFields[webhookevent.FieldSignature]
	return ok
}

// ResetSignature resets all changes to the "signature" field.
func (m *WebhookEventMutation) ResetSignature() {
	m.signature = nil
	delete(m.clearedFields, webhookevent.FieldSignature)
}

// SetReceivedAt sets the "received_at" field.
func (m *WebhookEventMutation) SetReceivedAt(t time.Time) {
	m.received_at = &t
}

// ReceivedAt returns the value of the "received_at" field in the mutation.
func (m *WebhookEventMutation) ReceivedAt() (r time.Time, exists bool) {
	v := m.received_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedAt returns the old "received_at" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldReceivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedAt: %w", err)
	}
	return oldValue.ReceivedAt, nil
}

// ResetReceivedAt resets all changes to the "received_at" field.
func (m *WebhookEventMutation) ResetReceivedAt() {
	m.received_at = nil
}

// SetProcessedAt sets the "processed_at" field.
func (m *WebhookEventMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *WebhookEventMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *WebhookEventMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[webhookevent.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *WebhookEventMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[webhookevent.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *WebhookEventMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, webhookevent.FieldProcessedAt)
}

// SetOutcome sets the "outcome" field.
func (m *WebhookEventMutation) SetOutcome(w webhookevent.Outcome) {
	m.outcome = &w
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *WebhookEventMutation) Outcome() (r webhookevent.Outcome, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldOutcome(ctx context.Context) (v webhookevent.Outcome, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *WebhookEventMutation) ResetOutcome() {
	m.outcome = nil
}

// SetOutcomeDetail sets the "outcome_detail" field.
func (m *WebhookEventMutation) SetOutcomeDetail(s string) {
	m.outcome_detail = &s
}

// OutcomeDetail returns the value of the "outcome_detail" field in the mutation.
func (m *WebhookEventMutation) OutcomeDetail() (r string, exists bool) {
	v := m.outcome_detail
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcomeDetail returns the old "outcome_detail" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldOutcomeDetail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcomeDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcomeDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcomeDetail: %w", err)
	}
	return oldValue.OutcomeDetail, nil
}

// ClearOutcomeDetail clears the value of the "outcome_detail" field.
func (m *WebhookEventMutation) ClearOutcomeDetail() {
	m.outcome_detail = nil
	m.clearedFields[webhookevent.FieldOutcomeDetail] = struct{}{}
}

// OutcomeDetailCleared returns if the "outcome_detail" field was cleared in this mutation.
func (m *WebhookEventMutation) OutcomeDetailCleared() bool {
	_, ok := m.clearedFields[webhookevent.FieldOutcomeDetail]
	return ok
}

// ResetOutcomeDetail resets all changes to the "outcome_detail" field.
func (m *WebhookEventMutation) ResetOutcomeDetail() {
	m.outcome_detail = nil
	delete(m.clearedFields, webhookevent.FieldOutcomeDetail)
}

// Where appends a list predicates to the WebhookEventMutation builder.
func (m *WebhookEventMutation) Where(ps ...predicate.WebhookEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WebhookEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WebhookEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WebhookEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WebhookEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WebhookEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WebhookEvent).
func (m *WebhookEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WebhookEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.source != nil {
		fields = append(fields, webhookevent.FieldSource)
	}
	if m.event_type != nil {
		fields = append(fields, webhookevent.FieldEventType)
	}
	if m.external_event_id != nil {
		fields = append(fields, webhookevent.FieldExternalEventID)
	}
	if m.payload != nil {
		fields = append(fields, webhookevent.FieldPayload)
	}
	if m.headers != nil {
		fields = append(fields, webhookevent.FieldHeaders)
	}
	if m.signature != nil {
		fields = append(fields, webhookevent.FieldSignature)
	}
	if m.received_at != nil {
		fields = append(fields, webhookevent.FieldReceivedAt)
	}
	if m.processed_at != nil {
		fields = append(fields, webhookevent.FieldProcessedAt)
	}
	if m.outcome != nil {
		fields = append(fields, webhookevent.FieldOutcome)
	}
	if m.outcome_detail != nil {
		fields = append(fields, webhookevent.FieldOutcomeDetail)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WebhookEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case webhookevent.FieldSource:
		return m.Source()
	case webhookevent.FieldEventType:
		return m.EventType()
	case webhookevent.FieldExternalEventID:
		return m.ExternalEventID()
	case webhookevent.FieldPayload:
		return m.Payload()
	case webhookevent.FieldHeaders:
		return m.Headers()
	case webhookevent.FieldSignature:
		return m.Signature()
	case webhookevent.FieldReceivedAt:
		return m.ReceivedAt()
	case webhookevent.FieldProcessedAt:
		return m.ProcessedAt()
	case webhookevent.FieldOutcome:
		return m.Outcome()
	case webhookevent.FieldOutcomeDetail:
		return m.OutcomeDetail()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WebhookEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case webhookevent.FieldSource:
		return m.OldSource(ctx)
	case webhookevent.FieldEventType:
		return m.OldEventType(ctx)
	case webhookevent.FieldExternalEventID:
		return m.OldExternalEventID(ctx)
	case webhookevent.FieldPayload:
		return m.OldPayload(ctx)
	case webhookevent.FieldHeaders:
		return m.OldHeaders(ctx)
	case webhookevent.FieldSignature:
		return m.OldSignature(ctx)
	case webhookevent.FieldReceivedAt:
		return m.OldReceivedAt(ctx)
	case webhookevent.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	case webhookevent.FieldOutcome:
		return m.OldOutcome(ctx)
	case webhookevent.FieldOutcomeDetail:
		return m.OldOutcomeDetail(ctx)
	}
	return nil, fmt.Errorf("unknown WebhookEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case webhookevent.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case webhookevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case webhookevent.FieldExternalEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalEventID(v)
		return nil
	case webhookevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case webhookevent.FieldHeaders:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeaders(v)
		return nil
	case webhookevent.FieldSignature:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignature(v)
		return nil
	case webhookevent.FieldReceivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedAt(v)
		return nil
	case webhookevent.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	case webhookevent.FieldOutcome:
		v, ok := value.(webhookevent.Outcome)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case webhookevent.FieldOutcomeDetail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcomeDetail(v)
		return nil
	}
	return fmt.Errorf("unknown WebhookEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WebhookEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WebhookEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WebhookEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WebhookEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(webhookevent.FieldEventType) {
		fields = append(fields, webhookevent.FieldEventType)
	}
	if m.FieldCleared(webhookevent.FieldExternalEventID) {
		fields = append(fields, webhookevent.FieldExternalEventID)
	}
	if m.FieldCleared(webhookevent.FieldHeaders) {
		fields = append(fields, webhookevent.FieldHeaders)
	}
	if m.FieldCleared(webhookevent.FieldSignature) {
		fields = append(fields, webhookevent.FieldSignature)
	}
	if m.FieldCleared(webhookevent.FieldProcessedAt) {
		fields = append(fields, webhookevent.FieldProcessedAt)
	}
	if m.FieldCleared(webhookevent.FieldOutcomeDetail) {
		fields = append(fields, webhookevent.FieldOutcomeDetail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WebhookEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WebhookEventMutation) ClearField(name string) error {
	switch name {
	case webhookevent.FieldEventType:
		m.ClearEventType()
		return nil
	case webhookevent.FieldExternalEventID:
		m.ClearExternalEventID()
		return nil
	case webhookevent.FieldHeaders:
		m.ClearHeaders()
		return nil
	case webhookevent.FieldSignature:
		m.ClearSignature()
		return nil
	case webhookevent.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	case webhookevent.FieldOutcomeDetail:
		m.ClearOutcomeDetail()
		return nil
	}
	return fmt.Errorf("unknown WebhookEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WebhookEventMutation) ResetField(name string) error {
	switch name {
	case webhookevent.FieldSource:
		m.ResetSource()
		return nil
	case webhookevent.FieldEventType:
		m.ResetEventType()
		return nil
	case webhookevent.FieldExternalEventID:
		m.ResetExternalEventID()
		return nil
	case webhookevent.FieldPayload:
		m.ResetPayload()
		return nil
	case webhookevent.FieldHeaders:
		m.ResetHeaders()
		return nil
	case webhookevent.FieldSignature:
		m.ResetSignature()
		return nil
	case webhookevent.FieldReceivedAt:
		m.ResetReceivedAt()
		return nil
	case webhookevent.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	case webhookevent.FieldOutcome:
		m.ResetOutcome()
		return nil
	case webhookevent.FieldOutcomeDetail:
		m.ResetOutcomeDetail()
		return nil
	}
	return fmt.Errorf("unknown WebhookEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WebhookEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WebhookEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WebhookEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WebhookEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WebhookEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WebhookEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WebhookEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WebhookEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WebhookEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WebhookEvent edge %s", name)
}
