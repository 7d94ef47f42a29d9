// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forgeflow/forgeflow/ent/run"
	"github.com/forgeflow/forgeflow/ent/task"
)

// Run is the model entity for the Run schema.
type Run struct {
	config `json:"-"`
	// ID of the ent.
	ID int64 `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID int64 `json:"task_id,omitempty"`
	// Set when the run is a reactivation of a prior run of the same task
	ParentRunID *int64 `json:"parent_run_id,omitempty"`
	// IsReactivation holds the value of the "is_reactivation" field.
	IsReactivation bool `json:"is_reactivation,omitempty"`
	// Free-form text copied from the triggering comment
	ReactivationContext string `json:"reactivation_context,omitempty"`
	// NewRequirements holds the value of the "new_requirements" field.
	NewRequirements string `json:"new_requirements,omitempty"`
	// Status holds the value of the "status" field.
	Status run.Status `json:"status,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// LastMergedPrURL holds the value of the "last_merged_pr_url" field.
	LastMergedPrURL string `json:"last_merged_pr_url,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// For orphan detection
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RunQuery when eager-loading is set.
	Edges        RunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RunEdges holds the relations/edges for other nodes in the graph.
type RunEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// StageExecutions holds the value of the stage_executions edge.
	StageExecutions []*StageExecution `json:"stage_executions,omitempty"`
	// ValidationRequests holds the value of the validation_requests edge.
	ValidationRequests []*ValidationRequest `json:"validation_requests,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RunEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// StageExecutionsOrErr returns the StageExecutions value or an error if the edge
// was not loaded in eager-loading.
func (e RunEdges) StageExecutionsOrErr() ([]*StageExecution, error) {
	if e.loadedTypes[1] {
		return e.StageExecutions, nil
	}
	return nil, &NotLoadedError{edge: "stage_executions"}
}

// ValidationRequestsOrErr returns the ValidationRequests value or an error if the edge
// was not loaded in eager-loading.
func (e RunEdges) ValidationRequestsOrErr() ([]*ValidationRequest, error) {
	if e.loadedTypes[2] {
		return e.ValidationRequests, nil
	}
	return nil, &NotLoadedError{edge: "validation_requests"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Run) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case run.FieldIsReactivation:
			values[i] = new(sql.NullBool)
		case run.FieldID, run.FieldTaskID, run.FieldParentRunID:
			values[i] = new(sql.NullInt64)
		case run.FieldReactivationContext, run.FieldNewRequirements, run.FieldStatus, run.FieldLastMergedPrURL, run.FieldErrorMessage, run.FieldPodID:
			values[i] = new(sql.NullString)
		case run.FieldStartedAt, run.FieldCompletedAt, run.FieldLastHeartbeatAt, run.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Run fields.
func (_m *Run) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case run.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case run.FieldTaskID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.Int64
			}
		case run.FieldParentRunID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field parent_run_id", values[i])
			} else if value.Valid {
				_m.ParentRunID = new(int64)
				*_m.ParentRunID = value.Int64
			}
		case run.FieldIsReactivation:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_reactivation", values[i])
			} else if value.Valid {
				_m.IsReactivation = value.Bool
			}
		case run.FieldReactivationContext:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reactivation_context", values[i])
			} else if value.Valid {
				_m.ReactivationContext = value.String
			}
		case run.FieldNewRequirements:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field new_requirements", values[i])
			} else if value.Valid {
				_m.NewRequirements = value.String
			}
		case run.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = run.Status(value.String)
			}
		case run.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case run.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case run.FieldLastMergedPrURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_merged_pr_url", values[i])
			} else if value.Valid {
				_m.LastMergedPrURL = value.String
			}
		case run.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case run.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case run.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = new(time.Time)
				*_m.LastHeartbeatAt = value.Time
			}
		case run.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Run.
// This includes values selected through modifiers, order, etc.
func (_m *Run) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the Run entity.
func (_m *Run) QueryTask() *TaskQuery {
	return NewRunClient(_m.config).QueryTask(_m)
}

// QueryStageExecutions queries the "stage_executions" edge of the Run entity.
func (_m *Run) QueryStageExecutions() *StageExecutionQuery {
	return NewRunClient(_m.config).QueryStageExecutions(_m)
}

// QueryValidationRequests queries the "validation_requests" edge of the Run entity.
func (_m *Run) QueryValidationRequests() *ValidationRequestQuery {
	return NewRunClient(_m.config).QueryValidationRequests(_m)
}

// Update returns a builder for updating this Run.
// Note that you need to call Run.Unwrap() before calling this method if this Run
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Run) Update() *RunUpdateOne {
	return NewRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Run entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Run) Unwrap() *Run {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Run is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Run) String() string {
	var builder strings.Builder
	builder.WriteString("Run(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaskID))
	builder.WriteString(", ")
	if v := _m.ParentRunID; v != nil {
		builder.WriteString("parent_run_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("is_reactivation=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsReactivation))
	builder.WriteString(", ")
	builder.WriteString("reactivation_context=")
	builder.WriteString(_m.ReactivationContext)
	builder.WriteString(", ")
	builder.WriteString("new_requirements=")
	builder.WriteString(_m.NewRequirements)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("last_merged_pr_url=")
	builder.WriteString(_m.LastMergedPrURL)
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Runs is a parsable slice of Run.
type Runs []*Run
