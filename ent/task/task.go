// Code generated by ent, DO NOT EDIT.

package task

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the task type in the database.
	Label = "task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "task_id"
	// FieldExternalItemID holds the string denoting the external_item_id field in the database.
	FieldExternalItemID = "external_item_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldRepositoryURL holds the string denoting the repository_url field in the database.
	FieldRepositoryURL = "repository_url"
	// FieldUserLanguage holds the string denoting the user_language field in the database.
	FieldUserLanguage = "user_language"
	// FieldCreatorID holds the string denoting the creator_id field in the database.
	FieldCreatorID = "creator_id"
	// FieldCreatorEmail holds the string denoting the creator_email field in the database.
	FieldCreatorEmail = "creator_email"
	// FieldInternalStatus holds the string denoting the internal_status field in the database.
	FieldInternalStatus = "internal_status"
	// FieldReactivationCount holds the string denoting the reactivation_count field in the database.
	FieldReactivationCount = "reactivation_count"
	// FieldCooldownUntil holds the string denoting the cooldown_until field in the database.
	FieldCooldownUntil = "cooldown_until"
	// FieldIsLocked holds the string denoting the is_locked field in the database.
	FieldIsLocked = "is_locked"
	// FieldLastRunID holds the string denoting the last_run_id field in the database.
	FieldLastRunID = "last_run_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeRuns holds the string denoting the runs edge name in mutations.
	EdgeRuns = "runs"
	// RunFieldID holds the string denoting the ID field of the Run.
	RunFieldID = "run_id"
	// Table holds the table name of the task in the database.
	Table = "tasks"
	// RunsTable is the table that holds the runs relation/edge.
	RunsTable = "runs"
	// RunsInverseTable is the table name for the Run entity.
	// It exists in this package in order to avoid circular dependency with the "run" package.
	RunsInverseTable = "runs"
	// RunsColumn is the table column denoting the runs relation/edge.
	RunsColumn = "task_id"
)

// Columns holds all SQL columns for task fields.
var Columns = []string{
	FieldID,
	FieldExternalItemID,
	FieldTitle,
	FieldDescription,
	FieldPriority,
	FieldRepositoryURL,
	FieldUserLanguage,
	FieldCreatorID,
	FieldCreatorEmail,
	FieldInternalStatus,
	FieldReactivationCount,
	FieldCooldownUntil,
	FieldIsLocked,
	FieldLastRunID,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultUserLanguage holds the default value on creation for the "user_language" field.
	DefaultUserLanguage string
	// DefaultReactivationCount holds the default value on creation for the "reactivation_count" field.
	DefaultReactivationCount int
	// ReactivationCountValidator is a validator for the "reactivation_count" field. It is called by the builders before save.
	ReactivationCountValidator func(int) error
	// DefaultIsLocked holds the default value on creation for the "is_locked" field.
	DefaultIsLocked bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Priority defines the type for the "priority" enum field.
type Priority string

// PriorityMedium is the default value of the Priority enum.
const DefaultPriority = PriorityMedium

// Priority values.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (pr Priority) String() string {
	return string(pr)
}

// PriorityValidator is a validator for the "priority" field enum values. It is called by the builders before save.
func PriorityValidator(pr Priority) error {
	switch pr {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for priority field: %q", pr)
	}
}

// InternalStatus defines the type for the "internal_status" enum field.
type InternalStatus string

// InternalStatusPending is the default value of the InternalStatus enum.
const DefaultInternalStatus = InternalStatusPending

// InternalStatus values.
const (
	InternalStatusPending           InternalStatus = "pending"
	InternalStatusInProgress        InternalStatus = "in_progress"
	InternalStatusWaitingValidation InternalStatus = "waiting_validation"
	InternalStatusCompleted         InternalStatus = "completed"
	InternalStatusFailed            InternalStatus = "failed"
	InternalStatusAbandoned         InternalStatus = "abandoned"
	InternalStatusQualityCheck      InternalStatus = "quality_check"
)

func (is InternalStatus) String() string {
	return string(is)
}

// InternalStatusValidator is a validator for the "internal_status" field enum values. It is called by the builders before save.
func InternalStatusValidator(is InternalStatus) error {
	switch is {
	case InternalStatusPending, InternalStatusInProgress, InternalStatusWaitingValidation, InternalStatusCompleted, InternalStatusFailed, InternalStatusAbandoned, InternalStatusQualityCheck:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for internal_status field: %q", is)
	}
}

// OrderOption defines the ordering options for the Task queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExternalItemID orders the results by the external_item_id field.
func ByExternalItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalItemID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByRepositoryURL orders the results by the repository_url field.
func ByRepositoryURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepositoryURL, opts...).ToFunc()
}

// ByUserLanguage orders the results by the user_language field.
func ByUserLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserLanguage, opts...).ToFunc()
}

// ByCreatorID orders the results by the creator_id field.
func ByCreatorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatorID, opts...).ToFunc()
}

// ByCreatorEmail orders the results by the creator_email field.
func ByCreatorEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatorEmail, opts...).ToFunc()
}

// ByInternalStatus orders the results by the internal_status field.
func ByInternalStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInternalStatus, opts...).ToFunc()
}

// ByReactivationCount orders the results by the reactivation_count field.
func ByReactivationCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReactivationCount, opts...).ToFunc()
}

// ByCooldownUntil orders the results by the cooldown_until field.
func ByCooldownUntil(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCooldownUntil, opts...).ToFunc()
}

// ByIsLocked orders the results by the is_locked field.
func ByIsLocked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsLocked, opts...).ToFunc()
}

// ByLastRunID orders the results by the last_run_id field.
func ByLastRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastRunID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByRunsCount orders the results by runs count.
func ByRunsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRunsStep(), opts...)
	}
}

// ByRuns orders the results by runs terms.
func ByRuns(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newRunsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunsInverseTable, RunFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RunsTable, RunsColumn),
	)
}
