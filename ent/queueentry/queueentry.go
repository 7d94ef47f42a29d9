// Code generated by ent, DO NOT EDIT.

package queueentry

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the queueentry type in the database.
	Label = "queue_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "queue_id"
	// FieldExternalItemID holds the string denoting the external_item_id field in the database.
	FieldExternalItemID = "external_item_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldQueuedAt holds the string denoting the queued_at field in the database.
	FieldQueuedAt = "queued_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldWaitingSince holds the string denoting the waiting_since field in the database.
	FieldWaitingSince = "waiting_since"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSchedulerRef holds the string denoting the scheduler_ref field in the database.
	FieldSchedulerRef = "scheduler_ref"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// Table holds the table name of the queueentry in the database.
	Table = "queue_entries"
)

// Columns holds all SQL columns for queueentry fields.
var Columns = []string{
	FieldID,
	FieldExternalItemID,
	FieldTaskID,
	FieldRunID,
	FieldPriority,
	FieldQueuedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldWaitingSince,
	FieldStatus,
	FieldSchedulerRef,
	FieldPodID,
	FieldPayload,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	PriorityValidator func(int) error
	// DefaultQueuedAt holds the default value on creation for the "queued_at" field.
	DefaultQueuedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending           Status = "pending"
	StatusRunning           Status = "running"
	StatusWaitingValidation Status = "waiting_validation"
	StatusCompleted         Status = "completed"
	StatusFailed            Status = "failed"
	StatusCancelled         Status = "cancelled"
	StatusTimeout           Status = "timeout"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusWaitingValidation, StatusCompleted, StatusFailed, StatusCancelled, StatusTimeout:
		return nil
	default:
		return fmt.Errorf("queueentry: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the QueueEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExternalItemID orders the results by the external_item_id field.
func ByExternalItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalItemID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByQueuedAt orders the results by the queued_at field.
func ByQueuedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQueuedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByWaitingSince orders the results by the waiting_since field.
func ByWaitingSince(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWaitingSince, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySchedulerRef orders the results by the scheduler_ref field.
func BySchedulerRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSchedulerRef, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}
