// Code generated by ent, DO NOT EDIT.

package validationrequest

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the validationrequest type in the database.
	Label = "validation_request"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "validation_request_id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldParentValidationID holds the string denoting the parent_validation_id field in the database.
	FieldParentValidationID = "parent_validation_id"
	// FieldExternalCommentID holds the string denoting the external_comment_id field in the database.
	FieldExternalCommentID = "external_comment_id"
	// FieldBody holds the string denoting the body field in the database.
	FieldBody = "body"
	// FieldRequesterID holds the string denoting the requester_id field in the database.
	FieldRequesterID = "requester_id"
	// FieldRequesterEmail holds the string denoting the requester_email field in the database.
	FieldRequesterEmail = "requester_email"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldRejectionCount holds the string denoting the rejection_count field in the database.
	FieldRejectionCount = "rejection_count"
	// FieldModificationInstructions holds the string denoting the modification_instructions field in the database.
	FieldModificationInstructions = "modification_instructions"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldResolvedAt holds the string denoting the resolved_at field in the database.
	FieldResolvedAt = "resolved_at"
	// FieldTimeoutSeconds holds the string denoting the timeout_seconds field in the database.
	FieldTimeoutSeconds = "timeout_seconds"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// EdgeResponse holds the string denoting the response edge name in mutations.
	EdgeResponse = "response"
	// RunFieldID holds the string denoting the ID field of the Run.
	RunFieldID = "run_id"
	// ValidationResponseFieldID holds the string denoting the ID field of the ValidationResponse.
	ValidationResponseFieldID = "validation_response_id"
	// Table holds the table name of the validationrequest in the database.
	Table = "validation_requests"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "validation_requests"
	// RunInverseTable is the table name for the Run entity.
	// It exists in this package in order to avoid circular dependency with the "run" package.
	RunInverseTable = "runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "run_id"
	// ResponseTable is the table that holds the response relation/edge.
	ResponseTable = "validation_responses"
	// ResponseInverseTable is the table name for the ValidationResponse entity.
	// It exists in this package in order to avoid circular dependency with the "validationresponse" package.
	ResponseInverseTable = "validation_responses"
	// ResponseColumn is the table column denoting the response relation/edge.
	ResponseColumn = "validation_request_id"
)

// Columns holds all SQL columns for validationrequest fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldParentValidationID,
	FieldExternalCommentID,
	FieldBody,
	FieldRequesterID,
	FieldRequesterEmail,
	FieldStatus,
	FieldRejectionCount,
	FieldModificationInstructions,
	FieldCreatedAt,
	FieldResolvedAt,
	FieldTimeoutSeconds,
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
	// DefaultRejectionCount holds the default value on creation for the "rejection_count" field.
	DefaultRejectionCount int
	// RejectionCountValidator is a validator for the "rejection_count" field. It is called by the builders before save.
	RejectionCountValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultTimeoutSeconds holds the default value on creation for the "timeout_seconds" field.
	DefaultTimeoutSeconds int
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusAbandoned Status = "abandoned"
	StatusExpired   Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusAbandoned, StatusExpired:
		return nil
	default:
		return fmt.Errorf("validationrequest: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ValidationRequest queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByParentValidationID orders the results by the parent_validation_id field.
func ByParentValidationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentValidationID, opts...).ToFunc()
}

// ByExternalCommentID orders the results by the external_comment_id field.
func ByExternalCommentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalCommentID, opts...).ToFunc()
}

// ByBody orders the results by the body field.
func ByBody(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBody, opts...).ToFunc()
}

// ByRequesterID orders the results by the requester_id field.
func ByRequesterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequesterID, opts...).ToFunc()
}

// ByRequesterEmail orders the results by the requester_email field.
func ByRequesterEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequesterEmail, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByRejectionCount orders the results by the rejection_count field.
func ByRejectionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRejectionCount, opts...).ToFunc()
}

// ByModificationInstructions orders the results by the modification_instructions field.
func ByModificationInstructions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModificationInstructions, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByResolvedAt orders the results by the resolved_at field.
func ByResolvedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedAt, opts...).ToFunc()
}

// ByTimeoutSeconds orders the results by the timeout_seconds field.
func ByTimeoutSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeoutSeconds, opts...).ToFunc()
}

// ByRunField orders the results by run field.
func ByRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunStep(), sql.OrderByField(field, opts...))
	}
}

// ByResponseField orders the results by response field.
func ByResponseField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newResponseStep(), sql.OrderByField(field, opts...))
	}
}
func newRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunInverseTable, RunFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
	)
}
func newResponseStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ResponseInverseTable, ValidationResponseFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, ResponseTable, ResponseColumn),
	)
}
