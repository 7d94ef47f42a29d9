package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity.
// One row per distinct board item the system has ever seen.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			StorageKey("task_id").
			Immutable(),
		field.String("external_item_id").
			Unique().
			Comment("Board-provided item id, unique per board"),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.Enum("priority").
			Values("low", "medium", "high", "urgent").
			Default("medium"),
		field.String("repository_url").
			Optional(),
		field.String("user_language").
			Default("en").
			Comment("Detected language of the task creator"),
		field.String("creator_id").
			Optional().
			Comment("Board user id of the item creator"),
		field.String("creator_email").
			Optional(),
		field.Enum("internal_status").
			Values("pending", "in_progress", "waiting_validation", "completed", "failed", "abandoned", "quality_check").
			Default("pending"),
		field.Int("reactivation_count").
			Default(0).
			NonNegative(),
		field.Time("cooldown_until").
			Optional().
			Nillable().
			Comment("Webhooks arriving before this instant are persisted but not reactivated"),
		field.Bool("is_locked").
			Default(false).
			Comment("Locked tasks reject reactivation until unlocked externally"),
		field.Int64("last_run_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("runs", Run.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("external_item_id").
			Unique(),
		index.Fields("internal_status"),
		index.Fields("internal_status", "updated_at"),
	}
}
