// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forgeflow/forgeflow/ent/queueentry"
)

// QueueEntry is the model entity for the QueueEntry schema.
type QueueEntry struct {
	config `json:"-"`
	// ID of the ent.
	// UUID minted by the ingress
	ID string `json:"id,omitempty"`
	// ExternalItemID holds the value of the "external_item_id" field.
	ExternalItemID string `json:"external_item_id,omitempty"`
	// Nullable until the task row is created
	TaskID *int64 `json:"task_id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID *int64 `json:"run_id,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority int `json:"priority,omitempty"`
	// QueuedAt holds the value of the "queued_at" field.
	QueuedAt time.Time `json:"queued_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Set on transition to waiting_validation, for sweeper timeouts
	WaitingSince *time.Time `json:"waiting_since,omitempty"`
	// Status holds the value of the "status" field.
	Status queueentry.Status `json:"status,omitempty"`
	// Opaque external scheduler reference (worker id)
	SchedulerRef string `json:"scheduler_ref,omitempty"`
	// PodID holds the value of the "pod_id" field.
	PodID *string `json:"pod_id,omitempty"`
	// Actionable webhook payload that created this entry
	Payload      map[string]interface{} `json:"payload,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QueueEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case queueentry.FieldPayload:
			values[i] = new([]byte)
		case queueentry.FieldTaskID, queueentry.FieldRunID, queueentry.FieldPriority:
			values[i] = new(sql.NullInt64)
		case queueentry.FieldID, queueentry.FieldExternalItemID, queueentry.FieldStatus, queueentry.FieldSchedulerRef, queueentry.FieldPodID:
			values[i] = new(sql.NullString)
		case queueentry.FieldQueuedAt, queueentry.FieldStartedAt, queueentry.FieldCompletedAt, queueentry.FieldWaitingSince:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QueueEntry fields.
func (_m *QueueEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case queueentry.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case queueentry.FieldExternalItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_item_id", values[i])
			} else if value.Valid {
				_m.ExternalItemID = value.String
			}
		case queueentry.FieldTaskID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = new(int64)
				*_m.TaskID = value.Int64
			}
		case queueentry.FieldRunID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = new(int64)
				*_m.RunID = value.Int64
			}
		case queueentry.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case queueentry.FieldQueuedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field queued_at", values[i])
			} else if value.Valid {
				_m.QueuedAt = value.Time
			}
		case queueentry.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case queueentry.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case queueentry.FieldWaitingSince:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field waiting_since", values[i])
			} else if value.Valid {
				_m.WaitingSince = new(time.Time)
				*_m.WaitingSince = value.Time
			}
		case queueentry.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = queueentry.Status(value.String)
			}
		case queueentry.FieldSchedulerRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scheduler_ref", values[i])
			} else if value.Valid {
				_m.SchedulerRef = value.String
			}
		case queueentry.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case queueentry.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QueueEntry.
// This includes values selected through modifiers, order, etc.
func (_m *QueueEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QueueEntry.
// Note that you need to call QueueEntry.Unwrap() before calling this method if this QueueEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QueueEntry) Update() *QueueEntryUpdateOne {
	return NewQueueEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QueueEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QueueEntry) Unwrap() *QueueEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QueueEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QueueEntry) String() string {
	var builder strings.Builder
	builder.WriteString("QueueEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("external_item_id=")
	builder.WriteString(_m.ExternalItemID)
	builder.WriteString(", ")
	if v := _m.TaskID; v != nil {
		builder.WriteString("task_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.RunID; v != nil {
		builder.WriteString("run_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("queued_at=")
	builder.WriteString(_m.QueuedAt.Format(time.ANSIC))
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
	if v := _m.WaitingSince; v != nil {
		builder.WriteString("waiting_since=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("scheduler_ref=")
	builder.WriteString(_m.SchedulerRef)
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteByte(')')
	return builder.String()
}

// QueueEntries is a parsable slice of QueueEntry.
type QueueEntries []*QueueEntry
