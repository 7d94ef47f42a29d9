package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Run holds the schema definition for the Run entity.
// One row per attempted execution of a task, including reactivations.
type Run struct {
	ent.Schema
}

// Fields of the Run.
func (Run) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			StorageKey("run_id").
			Immutable(),
		field.Int64("task_id").
			Immutable(),
		field.Int64("parent_run_id").
			Optional().
			Nillable().
			Comment("Set when the run is a reactivation of a prior run of the same task"),
		field.Bool("is_reactivation").
			Default(false),
		field.Text("reactivation_context").
			Optional().
			Comment("Free-form text copied from the triggering comment"),
		field.Text("new_requirements").
			Optional(),
		field.Enum("status").
			Values("pending", "running", "waiting_validation", "completed", "failed", "abandoned", "timeout").
			Default("pending"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("last_merged_pr_url").
			Optional(),
		field.String("error_message").
			Optional(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Run.
func (Run) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("runs").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
		edge.To("stage_executions", StageExecution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("validation_requests", ValidationRequest.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Run.
func (Run) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "status"),
		index.Fields("status", "last_heartbeat_at"),
		index.Fields("status", "created_at"),
	}
}
