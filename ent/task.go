// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forgeflow/forgeflow/ent/task"
)

// Task is the model entity for the Task schema.
type Task struct {
	config `json:"-"`
	// ID of the ent.
	ID int64 `json:"id,omitempty"`
	// Board-provided item id, unique per board
	ExternalItemID string `json:"external_item_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority task.Priority `json:"priority,omitempty"`
	// RepositoryURL holds the value of the "repository_url" field.
	RepositoryURL string `json:"repository_url,omitempty"`
	// Detected language of the task creator
	UserLanguage string `json:"user_language,omitempty"`
	// Board user id of the item creator
	CreatorID string `json:"creator_id,omitempty"`
	// CreatorEmail holds the value of the "creator_email" field.
	CreatorEmail string `json:"creator_email,omitempty"`
	// InternalStatus holds the value of the "internal_status" field.
	InternalStatus task.InternalStatus `json:"internal_status,omitempty"`
	// ReactivationCount holds the value of the "reactivation_count" field.
	ReactivationCount int `json:"reactivation_count,omitempty"`
	// Webhooks arriving before this instant are persisted but not reactivated
	CooldownUntil *time.Time `json:"cooldown_until,omitempty"`
	// Locked tasks reject reactivation until unlocked externally
	IsLocked bool `json:"is_locked,omitempty"`
	// LastRunID holds the value of the "last_run_id" field.
	LastRunID *int64 `json:"last_run_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskQuery when eager-loading is set.
	Edges        TaskEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaskEdges holds the relations/edges for other nodes in the graph.
type TaskEdges struct {
	// Runs holds the value of the runs edge.
	Runs []*Run `json:"runs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunsOrErr returns the Runs value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) RunsOrErr() ([]*Run, error) {
	if e.loadedTypes[0] {
		return e.Runs, nil
	}
	return nil, &NotLoadedError{edge: "runs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Task) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case task.FieldIsLocked:
			values[i] = new(sql.NullBool)
		case task.FieldID, task.FieldReactivationCount, task.FieldLastRunID:
			values[i] = new(sql.NullInt64)
		case task.FieldExternalItemID, task.FieldTitle, task.FieldDescription, task.FieldPriority, task.FieldRepositoryURL, task.FieldUserLanguage, task.FieldCreatorID, task.FieldCreatorEmail, task.FieldInternalStatus:
			values[i] = new(sql.NullString)
		case task.FieldCooldownUntil, task.FieldCreatedAt, task.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Task fields.
func (_m *Task) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case task.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case task.FieldExternalItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_item_id", values[i])
			} else if value.Valid {
				_m.ExternalItemID = value.String
			}
		case task.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case task.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case task.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = task.Priority(value.String)
			}
		case task.FieldRepositoryURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field repository_url", values[i])
			} else if value.Valid {
				_m.RepositoryURL = value.String
			}
		case task.FieldUserLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_language", values[i])
			} else if value.Valid {
				_m.UserLanguage = value.String
			}
		case task.FieldCreatorID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field creator_id", values[i])
			} else if value.Valid {
				_m.CreatorID = value.String
			}
		case task.FieldCreatorEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field creator_email", values[i])
			} else if value.Valid {
				_m.CreatorEmail = value.String
			}
		case task.FieldInternalStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field internal_status", values[i])
			} else if value.Valid {
				_m.InternalStatus = task.InternalStatus(value.String)
			}
		case task.FieldReactivationCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reactivation_count", values[i])
			} else if value.Valid {
				_m.ReactivationCount = int(value.Int64)
			}
		case task.FieldCooldownUntil:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field cooldown_until", values[i])
			} else if value.Valid {
				_m.CooldownUntil = new(time.Time)
				*_m.CooldownUntil = value.Time
			}
		case task.FieldIsLocked:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_locked", values[i])
			} else if value.Valid {
				_m.IsLocked = value.Bool
			}
		case task.FieldLastRunID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_run_id", values[i])
			} else if value.Valid {
				_m.LastRunID = new(int64)
				*_m.LastRunID = value.Int64
			}
		case task.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case task.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Task.
// This includes values selected through modifiers, order, etc.
func (_m *Task) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRuns queries the "runs" edge of the Task entity.
func (_m *Task) QueryRuns() *RunQuery {
	return NewTaskClient(_m.config).QueryRuns(_m)
}

// Update returns a builder for updating this Task.
// Note that you need to call Task.Unwrap() before calling this method if this Task
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Task) Update() *TaskUpdateOne {
	return NewTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Task entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Task) Unwrap() *Task {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Task is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Task) String() string {
	var builder strings.Builder
	builder.WriteString("Task(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("external_item_id=")
	builder.WriteString(_m.ExternalItemID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("repository_url=")
	builder.WriteString(_m.RepositoryURL)
	builder.WriteString(", ")
	builder.WriteString("user_language=")
	builder.WriteString(_m.UserLanguage)
	builder.WriteString(", ")
	builder.WriteString("creator_id=")
	builder.WriteString(_m.CreatorID)
	builder.WriteString(", ")
	builder.WriteString("creator_email=")
	builder.WriteString(_m.CreatorEmail)
	builder.WriteString(", ")
	builder.WriteString("internal_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.InternalStatus))
	builder.WriteString(", ")
	builder.WriteString("reactivation_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReactivationCount))
	builder.WriteString(", ")
	if v := _m.CooldownUntil; v != nil {
		builder.WriteString("cooldown_until=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("is_locked=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsLocked))
	builder.WriteString(", ")
	if v := _m.LastRunID; v != nil {
		builder.WriteString("last_run_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Tasks is a parsable slice of Task.
type Tasks []*Task
