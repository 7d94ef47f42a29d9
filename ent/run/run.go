// Code generated by ent, DO NOT EDIT.

package run

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the run type in the database.
	Label = "run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "run_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldParentRunID holds the string denoting the parent_run_id field in the database.
	FieldParentRunID = "parent_run_id"
	// FieldIsReactivation holds the string denoting the is_reactivation field in the database.
	FieldIsReactivation = "is_reactivation"
	// FieldReactivationContext holds the string denoting the reactivation_context field in the database.
	FieldReactivationContext = "reactivation_context"
	// FieldNewRequirements holds the string denoting the new_requirements field in the database.
	FieldNewRequirements = "new_requirements"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldLastMergedPrURL holds the string denoting the last_merged_pr_url field in the database.
	FieldLastMergedPrURL = "last_merged_pr_url"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeTask holds the string denoting the task edge name in mutations.
	EdgeTask = "task"
	// EdgeStageExecutions holds the string denoting the stage_executions edge name in mutations.
	EdgeStageExecutions = "stage_executions"
	// EdgeValidationRequests holds the string denoting the validation_requests edge name in mutations.
	EdgeValidationRequests = "validation_requests"
	// TaskFieldID holds the string denoting the ID field of the Task.
	TaskFieldID = "task_id"
	// StageExecutionFieldID holds the string denoting the ID field of the StageExecution.
	StageExecutionFieldID = "stage_execution_id"
	// ValidationRequestFieldID holds the string denoting the ID field of the ValidationRequest.
	ValidationRequestFieldID = "validation_request_id"
	// Table holds the table name of the run in the database.
	Table = "runs"
	// TaskTable is the table that holds the task relation/edge.
	TaskTable = "runs"
	// TaskInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TaskInverseTable = "tasks"
	// TaskColumn is the table column denoting the task relation/edge.
	TaskColumn = "task_id"
	// StageExecutionsTable is the table that holds the stage_executions relation/edge.
	StageExecutionsTable = "stage_executions"
	// StageExecutionsInverseTable is the table name for the StageExecution entity.
	// It exists in this package in order to avoid circular dependency with the "stageexecution" package.
	StageExecutionsInverseTable = "stage_executions"
	// StageExecutionsColumn is the table column denoting the stage_executions relation/edge.
	StageExecutionsColumn = "run_id"
	// ValidationRequestsTable is the table that holds the validation_requests relation/edge.
	ValidationRequestsTable = "validation_requests"
	// ValidationRequestsInverseTable is the table name for the ValidationRequest entity.
	// It exists in this package in order to avoid circular dependency with the "validationrequest" package.
	ValidationRequestsInverseTable = "validation_requests"
	// ValidationRequestsColumn is the table column denoting the validation_requests relation/edge.
	ValidationRequestsColumn = "run_id"
)

// Columns holds all SQL columns for run fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldParentRunID,
	FieldIsReactivation,
	FieldReactivationContext,
	FieldNewRequirements,
	FieldStatus,
	FieldStartedAt,
	FieldCompletedAt,
	FieldLastMergedPrURL,
	FieldErrorMessage,
	FieldPodID,
	FieldLastHeartbeatAt,
	FieldCreatedAt,
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
	// DefaultIsReactivation holds the default value on creation for the "is_reactivation" field.
	DefaultIsReactivation bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
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
	StatusAbandoned         Status = "abandoned"
	StatusTimeout           Status = "timeout"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusWaitingValidation, StatusCompleted, StatusFailed, StatusAbandoned, StatusTimeout:
		return nil
	default:
		return fmt.Errorf("run: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Run queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByParentRunID orders the results by the parent_run_id field.
func ByParentRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentRunID, opts...).ToFunc()
}

// ByIsReactivation orders the results by the is_reactivation field.
func ByIsReactivation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsReactivation, opts...).ToFunc()
}

// ByReactivationContext orders the results by the reactivation_context field.
func ByReactivationContext(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReactivationContext, opts...).ToFunc()
}

// ByNewRequirements orders the results by the new_requirements field.
func ByNewRequirements(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewRequirements, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByLastMergedPrURL orders the results by the last_merged_pr_url field.
func ByLastMergedPrURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastMergedPrURL, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByTaskField orders the results by task field.
func ByTaskField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTaskStep(), sql.OrderByField(field, opts...))
	}
}

// ByStageExecutionsCount orders the results by stage_executions count.
func ByStageExecutionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStageExecutionsStep(), opts...)
	}
}

// ByStageExecutions orders the results by stage_executions terms.
func ByStageExecutions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStageExecutionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByValidationRequestsCount orders the results by validation_requests count.
func ByValidationRequestsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newValidationRequestsStep(), opts...)
	}
}

// ByValidationRequests orders the results by validation_requests terms.
func ByValidationRequests(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newValidationRequestsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTaskStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TaskInverseTable, TaskFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
	)
}
func newStageExecutionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StageExecutionsInverseTable, StageExecutionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StageExecutionsTable, StageExecutionsColumn),
	)
}
func newValidationRequestsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ValidationRequestsInverseTable, ValidationRequestFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ValidationRequestsTable, ValidationRequestsColumn),
	)
}
