package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QueueEntry holds the schema definition for the QueueEntry entity.
// One row per pending/running workflow instance for a board item. For a given
// external_item_id at most one entry is running; waiting_validation entries
// do not count against that cap.
type QueueEntry struct {
	ent.Schema
}

// Fields of the QueueEntry.
func (QueueEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("queue_id").
			Unique().
			Immutable().
			Comment("UUID minted by the ingress"),
		field.String("external_item_id"),
		field.Int64("task_id").
			Optional().
			Nillable().
			Comment("Nullable until the task row is created"),
		field.Int64("run_id").
			Optional().
			Nillable(),
		field.Int("priority").
			Default(5).
			Min(1).
			Max(10),
		field.Time("queued_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("waiting_since").
			Optional().
			Nillable().
			Comment("Set on transition to waiting_validation, for sweeper timeouts"),
		field.Enum("status").
			Values("pending", "running", "waiting_validation", "completed", "failed", "cancelled", "timeout").
			Default("pending"),
		field.String("scheduler_ref").
			Optional().
			Comment("Opaque external scheduler reference (worker id)"),
		field.String("pod_id").
			Optional().
			Nillable(),
		field.JSON("payload", map[string]any{}).
			Optional().
			Comment("Actionable webhook payload that created this entry"),
	}
}

// Indexes of the QueueEntry.
func (QueueEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("external_item_id", "status"),
		index.Fields("status", "queued_at"),
		index.Fields("status", "started_at"),
	}
}
