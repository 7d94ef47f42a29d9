// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forgeflow/forgeflow/ent/validationrequest"
	"github.com/forgeflow/forgeflow/ent/validationresponse"
)

// ValidationResponse is the model entity for the ValidationResponse schema.
type ValidationResponse struct {
	config `json:"-"`
	// ID of the ent.
	ID int64 `json:"id,omitempty"`
	// ValidationRequestID holds the value of the "validation_request_id" field.
	ValidationRequestID int64 `json:"validation_request_id,omitempty"`
	// Reply text as received from the board, markup included
	RawReply string `json:"raw_reply,omitempty"`
	// Verdict holds the value of the "verdict" field.
	Verdict validationresponse.Verdict `json:"verdict,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// AnalysisMethod holds the value of the "analysis_method" field.
	AnalysisMethod validationresponse.AnalysisMethod `json:"analysis_method,omitempty"`
	// ModificationInstructions holds the value of the "modification_instructions" field.
	ModificationInstructions string `json:"modification_instructions,omitempty"`
	// ReviewerID holds the value of the "reviewer_id" field.
	ReviewerID string `json:"reviewer_id,omitempty"`
	// ReviewerEmail holds the value of the "reviewer_email" field.
	ReviewerEmail string `json:"reviewer_email,omitempty"`
	// e.g. coercion to abandon at the rejection limit, auto-approve cause
	SystemNote string `json:"system_note,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ValidationResponseQuery when eager-loading is set.
	Edges        ValidationResponseEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ValidationResponseEdges holds the relations/edges for other nodes in the graph.
type ValidationResponseEdges struct {
	// Request holds the value of the request edge.
	Request *ValidationRequest `json:"request,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RequestOrErr returns the Request value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ValidationResponseEdges) RequestOrErr() (*ValidationRequest, error) {
	if e.Request != nil {
		return e.Request, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: validationrequest.Label}
	}
	return nil, &NotLoadedError{edge: "request"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ValidationResponse) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case validationresponse.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case validationresponse.FieldID, validationresponse.FieldValidationRequestID:
			values[i] = new(sql.NullInt64)
		case validationresponse.FieldRawReply, validationresponse.FieldVerdict, validationresponse.FieldAnalysisMethod, validationresponse.FieldModificationInstructions, validationresponse.FieldReviewerID, validationresponse.FieldReviewerEmail, validationresponse.FieldSystemNote:
			values[i] = new(sql.NullString)
		case validationresponse.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ValidationResponse fields.
func (_m *ValidationResponse) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case validationresponse.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case validationresponse.FieldValidationRequestID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field validation_request_id", values[i])
			} else if value.Valid {
				_m.ValidationRequestID = value.Int64
			}
		case validationresponse.FieldRawReply:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_reply", values[i])
			} else if value.Valid {
				_m.RawReply = value.String
			}
		case validationresponse.FieldVerdict:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verdict", values[i])
			} else if value.Valid {
				_m.Verdict = validationresponse.Verdict(value.String)
			}
		case validationresponse.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case validationresponse.FieldAnalysisMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_method", values[i])
			} else if value.Valid {
				_m.AnalysisMethod = validationresponse.AnalysisMethod(value.String)
			}
		case validationresponse.FieldModificationInstructions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field modification_instructions", values[i])
			} else if value.Valid {
				_m.ModificationInstructions = value.String
			}
		case validationresponse.FieldReviewerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reviewer_id", values[i])
			} else if value.Valid {
				_m.ReviewerID = value.String
			}
		case validationresponse.FieldReviewerEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reviewer_email", values[i])
			} else if value.Valid {
				_m.ReviewerEmail = value.String
			}
		case validationresponse.FieldSystemNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field system_note", values[i])
			} else if value.Valid {
				_m.SystemNote = value.String
			}
		case validationresponse.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ValidationResponse.
// This includes values selected through modifiers, order, etc.
func (_m *ValidationResponse) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRequest queries the "request" edge of the ValidationResponse entity.
func (_m *ValidationResponse) QueryRequest() *ValidationRequestQuery {
	return NewValidationResponseClient(_m.config).QueryRequest(_m)
}

// Update returns a builder for updating this ValidationResponse.
// Note that you need to call ValidationResponse.Unwrap() before calling this method if this ValidationResponse
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ValidationResponse) Update() *ValidationResponseUpdateOne {
	return NewValidationResponseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ValidationResponse entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ValidationResponse) Unwrap() *ValidationResponse {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ValidationResponse is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ValidationResponse) String() string {
	var builder strings.Builder
	builder.WriteString("ValidationResponse(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("validation_request_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ValidationRequestID))
	builder.WriteString(", ")
	builder.WriteString("raw_reply=")
	builder.WriteString(_m.RawReply)
	builder.WriteString(", ")
	builder.WriteString("verdict=")
	builder.WriteString(fmt.Sprintf("%v", _m.Verdict))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("analysis_method=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnalysisMethod))
	builder.WriteString(", ")
	builder.WriteString("modification_instructions=")
	builder.WriteString(_m.ModificationInstructions)
	builder.WriteString(", ")
	builder.WriteString("reviewer_id=")
	builder.WriteString(_m.ReviewerID)
	builder.WriteString(", ")
	builder.WriteString("reviewer_email=")
	builder.WriteString(_m.ReviewerEmail)
	builder.WriteString(", ")
	builder.WriteString("system_note=")
	builder.WriteString(_m.SystemNote)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ValidationResponses is a parsable slice of ValidationResponse.
type ValidationResponses []*ValidationResponse
