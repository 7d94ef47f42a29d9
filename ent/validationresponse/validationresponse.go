// Code generated by ent, DO NOT EDIT.

package validationresponse

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the validationresponse type in the database.
	Label = "validation_response"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "validation_response_id"
	// FieldValidationRequestID holds the string denoting the validation_request_id field in the database.
	FieldValidationRequestID = "validation_request_id"
	// FieldRawReply holds the string denoting the raw_reply field in the database.
	FieldRawReply = "raw_reply"
	// FieldVerdict holds the string denoting the verdict field in the database.
	FieldVerdict = "verdict"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldAnalysisMethod holds the string denoting the analysis_method field in the database.
	FieldAnalysisMethod = "analysis_method"
	// FieldModificationInstructions holds the string denoting the modification_instructions field in the database.
	FieldModificationInstructions = "modification_instructions"
	// FieldReviewerID holds the string denoting the reviewer_id field in the database.
	FieldReviewerID = "reviewer_id"
	// FieldReviewerEmail holds the string denoting the reviewer_email field in the database.
	FieldReviewerEmail = "reviewer_email"
	// FieldSystemNote holds the string denoting the system_note field in the database.
	FieldSystemNote = "system_note"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRequest holds the string denoting the request edge name in mutations.
	EdgeRequest = "request"
	// ValidationRequestFieldID holds the string denoting the ID field of the ValidationRequest.
	ValidationRequestFieldID = "validation_request_id"
	// Table holds the table name of the validationresponse in the database.
	Table = "validation_responses"
	// RequestTable is the table that holds the request relation/edge.
	RequestTable = "validation_responses"
	// RequestInverseTable is the table name for the ValidationRequest entity.
	// It exists in this package in order to avoid circular dependency with the "validationrequest" package.
	RequestInverseTable = "validation_requests"
	// RequestColumn is the table column denoting the request relation/edge.
	RequestColumn = "validation_request_id"
)

// Columns holds all SQL columns for validationresponse fields.
var Columns = []string{
	FieldID,
	FieldValidationRequestID,
	FieldRawReply,
	FieldVerdict,
	FieldConfidence,
	FieldAnalysisMethod,
	FieldModificationInstructions,
	FieldReviewerID,
	FieldReviewerEmail,
	FieldSystemNote,
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
	// ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	ConfidenceValidator func(float64) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Verdict defines the type for the "verdict" enum field.
type Verdict string

// Verdict values.
const (
	VerdictApprove             Verdict = "approve"
	VerdictReject              Verdict = "reject"
	VerdictAbandon             Verdict = "abandon"
	VerdictClarificationNeeded Verdict = "clarification_needed"
)

func (v Verdict) String() string {
	return string(v)
}

// VerdictValidator is a validator for the "verdict" field enum values. It is called by the builders before save.
func VerdictValidator(v Verdict) error {
	switch v {
	case VerdictApprove, VerdictReject, VerdictAbandon, VerdictClarificationNeeded:
		return nil
	default:
		return fmt.Errorf("validationresponse: invalid enum value for verdict field: %q", v)
	}
}

// AnalysisMethod defines the type for the "analysis_method" enum field.
type AnalysisMethod string

// AnalysisMethodRule is the default value of the AnalysisMethod enum.
const DefaultAnalysisMethod = AnalysisMethodRule

// AnalysisMethod values.
const (
	AnalysisMethodRule  AnalysisMethod = "rule"
	AnalysisMethodModel AnalysisMethod = "model"
)

func (am AnalysisMethod) String() string {
	return string(am)
}

// AnalysisMethodValidator is a validator for the "analysis_method" field enum values. It is called by the builders before save.
func AnalysisMethodValidator(am AnalysisMethod) error {
	switch am {
	case AnalysisMethodRule, AnalysisMethodModel:
		return nil
	default:
		return fmt.Errorf("validationresponse: invalid enum value for analysis_method field: %q", am)
	}
}

// OrderOption defines the ordering options for the ValidationResponse queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByValidationRequestID orders the results by the validation_request_id field.
func ByValidationRequestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidationRequestID, opts...).ToFunc()
}

// ByRawReply orders the results by the raw_reply field.
func ByRawReply(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawReply, opts...).ToFunc()
}

// ByVerdict orders the results by the verdict field.
func ByVerdict(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerdict, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByAnalysisMethod orders the results by the analysis_method field.
func ByAnalysisMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalysisMethod, opts...).ToFunc()
}

// ByModificationInstructions orders the results by the modification_instructions field.
func ByModificationInstructions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModificationInstructions, opts...).ToFunc()
}

// ByReviewerID orders the results by the reviewer_id field.
func ByReviewerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewerID, opts...).ToFunc()
}

// ByReviewerEmail orders the results by the reviewer_email field.
func ByReviewerEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewerEmail, opts...).ToFunc()
}

// BySystemNote orders the results by the system_note field.
func BySystemNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSystemNote, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByRequestField orders the results by request field.
func ByRequestField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRequestStep(), sql.OrderByField(field, opts...))
	}
}
func newRequestStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RequestInverseTable, ValidationRequestFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, RequestTable, RequestColumn),
	)
}
