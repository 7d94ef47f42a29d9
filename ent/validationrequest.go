// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forgeflow/forgeflow/ent/run"
	"github.com/forgeflow/forgeflow/ent/validationrequest"
	"github.com/forgeflow/forgeflow/ent/validationresponse"
)

// ValidationRequest is the model entity for the ValidationRequest schema.
type ValidationRequest struct {
	config `json:"-"`
	// ID of the ent.
	ID int64 `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID int64 `json:"run_id,omitempty"`
	// ParentValidationID holds the value of the "parent_validation_id" field.
	ParentValidationID *int64 `json:"parent_validation_id,omitempty"`
	// Comment id returned by the board when the prompt was posted
	ExternalCommentID string `json:"external_comment_id,omitempty"`
	// Comment body as posted, including the agent signature
	Body string `json:"body,omitempty"`
	// Board user id of the task creator (the only authorized replier)
	RequesterID string `json:"requester_id,omitempty"`
	// RequesterEmail holds the value of the "requester_email" field.
	RequesterEmail string `json:"requester_email,omitempty"`
	// Status holds the value of the "status" field.
	Status validationrequest.Status `json:"status,omitempty"`
	// Never decreases within a chain
	RejectionCount int `json:"rejection_count,omitempty"`
	// Populated when rejected
	ModificationInstructions string `json:"modification_instructions,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ResolvedAt holds the value of the "resolved_at" field.
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	// Per-validation timeout window
	TimeoutSeconds int `json:"timeout_seconds,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ValidationRequestQuery when eager-loading is set.
	Edges        ValidationRequestEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ValidationRequestEdges holds the relations/edges for other nodes in the graph.
type ValidationRequestEdges struct {
	// Run holds the value of the run edge.
	Run *Run `json:"run,omitempty"`
	// Response holds the value of the response edge.
	Response *ValidationResponse `json:"response,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ValidationRequestEdges) RunOrErr() (*Run, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: run.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// ResponseOrErr returns the Response value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ValidationRequestEdges) ResponseOrErr() (*ValidationResponse, error) {
	if e.Response != nil {
		return e.Response, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: validationresponse.Label}
	}
	return nil, &NotLoadedError{edge: "response"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ValidationRequest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case validationrequest.FieldID, validationrequest.FieldRunID, validationrequest.FieldParentValidationID, validationrequest.FieldRejectionCount, validationrequest.FieldTimeoutSeconds:
			values[i] = new(sql.NullInt64)
		case validationrequest.FieldExternalCommentID, validationrequest.FieldBody, validationrequest.FieldRequesterID, validationrequest.FieldRequesterEmail, validationrequest.FieldStatus, validationrequest.FieldModificationInstructions:
			values[i] = new(sql.NullString)
		case validationrequest.FieldCreatedAt, validationrequest.FieldResolvedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ValidationRequest fields.
func (_m *ValidationRequest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case validationrequest.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case validationrequest.FieldRunID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.Int64
			}
		case validationrequest.FieldParentValidationID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field parent_validation_id", values[i])
			} else if value.Valid {
				_m.ParentValidationID = new(int64)
				*_m.ParentValidationID = value.Int64
			}
		case validationrequest.FieldExternalCommentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_comment_id", values[i])
			} else if value.Valid {
				_m.ExternalCommentID = value.String
			}
		case validationrequest.FieldBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value.Valid {
				_m.Body = value.String
			}
		case validationrequest.FieldRequesterID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field requester_id", values[i])
			} else if value.Valid {
				_m.RequesterID = value.String
			}
		case validationrequest.FieldRequesterEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field requester_email", values[i])
			} else if value.Valid {
				_m.RequesterEmail = value.String
			}
		case validationrequest.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = validationrequest.Status(value.String)
			}
		case validationrequest.FieldRejectionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rejection_count", values[i])
			} else if value.Valid {
				_m.RejectionCount = int(value.Int64)
			}
		case validationrequest.FieldModificationInstructions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field modification_instructions", values[i])
			} else if value.Valid {
				_m.ModificationInstructions = value.String
			}
		case validationrequest.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case validationrequest.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				_m.ResolvedAt = new(time.Time)
				*_m.ResolvedAt = value.Time
			}
		case validationrequest.FieldTimeoutSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field timeout_seconds", values[i])
			} else if value.Valid {
				_m.TimeoutSeconds = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ValidationRequest.
// This includes values selected through modifiers, order, etc.
func (_m *ValidationRequest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the ValidationRequest entity.
func (_m *ValidationRequest) QueryRun() *RunQuery {
	return NewValidationRequestClient(_m.config).QueryRun(_m)
}

// QueryResponse queries the "response" edge of the ValidationRequest entity.
func (_m *ValidationRequest) QueryResponse() *ValidationResponseQuery {
	return NewValidationRequestClient(_m.config).QueryResponse(_m)
}

// Update returns a builder for updating this ValidationRequest.
// Note that you need to call ValidationRequest.Unwrap() before calling this method if this ValidationRequest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ValidationRequest) Update() *ValidationRequestUpdateOne {
	return NewValidationRequestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ValidationRequest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ValidationRequest) Unwrap() *ValidationRequest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ValidationRequest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ValidationRequest) String() string {
	var builder strings.Builder
	builder.WriteString("ValidationRequest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RunID))
	builder.WriteString(", ")
	if v := _m.ParentValidationID; v != nil {
		builder.WriteString("parent_validation_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("external_comment_id=")
	builder.WriteString(_m.ExternalCommentID)
	builder.WriteString(", ")
	builder.WriteString("body=")
	builder.WriteString(_m.Body)
	builder.WriteString(", ")
	builder.WriteString("requester_id=")
	builder.WriteString(_m.RequesterID)
	builder.WriteString(", ")
	builder.WriteString("requester_email=")
	builder.WriteString(_m.RequesterEmail)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("rejection_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RejectionCount))
	builder.WriteString(", ")
	builder.WriteString("modification_instructions=")
	builder.WriteString(_m.ModificationInstructions)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ResolvedAt; v != nil {
		builder.WriteString("resolved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("timeout_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeoutSeconds))
	builder.WriteByte(')')
	return builder.String()
}

// ValidationRequests is a parsable slice of ValidationRequest.
type ValidationRequests []*ValidationRequest
