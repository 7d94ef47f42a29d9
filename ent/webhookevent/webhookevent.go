// Code generated by ent, DO NOT EDIT.

package webhookevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the webhookevent type in the database.
	Label = "webhook_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "webhook_event_id"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldExternalEventID holds the string denoting the external_event_id field in the database.
	FieldExternalEventID = "external_event_id"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldHeaders holds the string denoting the headers field in the database.
	FieldHeaders = "headers"
	// FieldSignature holds the string denoting the signature field in the database.
	FieldSignature = "signature"
	// FieldReceivedAt holds the string denoting the received_at field in the database.
	FieldReceivedAt = "received_at"
	// FieldProcessedAt holds the string denoting the processed_at field in the database.
	FieldProcessedAt = "processed_at"
	// FieldOutcome holds the string denoting the outcome field in the database.
	FieldOutcome = "outcome"
	// FieldOutcomeDetail holds the string denoting the outcome_detail field in the database.
	FieldOutcomeDetail = "outcome_detail"
	// Table holds the table name of the webhookevent in the database.
	Table = "webhook_events"
)

// Columns holds all SQL columns for webhookevent fields.
var Columns = []string{
	FieldID,
	FieldSource,
	FieldEventType,
	FieldExternalEventID,
	FieldPayload,
	FieldHeaders,
	FieldSignature,
	FieldReceivedAt,
	FieldProcessedAt,
	FieldOutcome,
	FieldOutcomeDetail,
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
	// DefaultSource holds the default value on creation for the "source" field.
	DefaultSource string
	// DefaultReceivedAt holds the default value on creation for the "received_at" field.
	DefaultReceivedAt func() time.Time
)

// Outcome defines the type for the "outcome" enum field.
type Outcome string

// OutcomePending is the default value of the Outcome enum.
const DefaultOutcome = OutcomePending

// Outcome values.
const (
	OutcomePending     Outcome = "pending"
	OutcomeAccepted    Outcome = "accepted"
	OutcomeQueued      Outcome = "queued"
	OutcomeReactivated Outcome = "reactivated"
	OutcomeIgnored     Outcome = "ignored"
	OutcomeError       Outcome = "error"
)

func (o Outcome) String() string {
	return string(o)
}

// OutcomeValidator is a validator for the "outcome" field enum values. It is called by the builders before save.
func OutcomeValidator(o Outcome) error {
	switch o {
	case OutcomePending, OutcomeAccepted, OutcomeQueued, OutcomeReactivated, OutcomeIgnored, OutcomeError:
		return nil
	default:
		return fmt.Errorf("webhookevent: invalid enum value for outcome field: %q", o)
	}
}

// OrderOption defines the ordering options for the WebhookEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// ByExternalEventID orders the results by the external_event_id field.
func ByExternalEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalEventID, opts...).ToFunc()
}

// BySignature orders the results by the signature field.
func BySignature(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSignature, opts...).ToFunc()
}

// ByReceivedAt orders the results by the received_at field.
func ByReceivedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReceivedAt, opts...).ToFunc()
}

// ByProcessedAt orders the results by the processed_at field.
func ByProcessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedAt, opts...).ToFunc()
}

// ByOutcome orders the results by the outcome field.
func ByOutcome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcome, opts...).ToFunc()
}

// ByOutcomeDetail orders the results by the outcome_detail field.
func ByOutcomeDetail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcomeDetail, opts...).ToFunc()
}
