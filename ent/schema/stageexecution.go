package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StageExecution holds the schema definition for the StageExecution entity.
// One row per invocation of a stage inside a run. The output column carries
// the full run context snapshot used for crash recovery.
type StageExecution struct {
	ent.Schema
}

// Fields of the StageExecution.
func (StageExecution) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			StorageKey("stage_execution_id").
			Immutable(),
		field.Int64("run_id").
			Immutable(),
		field.String("stage_name").
			Comment("prepare, analyze, implement, test, debug, qa, finalize_pr, human_validation, merge"),
		field.Int("ordinal").
			Comment("Strictly increasing within a run"),
		field.Int("attempt").
			Default(1).
			Comment("Retry attempt number for this stage invocation"),
		field.JSON("input", map[string]any{}).
			Optional().
			Comment("Input snapshot"),
		field.JSON("output", map[string]any{}).
			Optional().
			Comment("Output snapshot (full run context after the stage)"),
		field.Enum("status").
			Values("started", "succeeded", "failed", "skipped").
			Default("started"),
		field.Time("started_at").
			Default(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Text("error_message").
			Optional(),
	}
}

// Edges of the StageExecution.
func (StageExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("stage_executions").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the StageExecution.
func (StageExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "ordinal").
			Unique(),
		index.Fields("run_id", "status"),
	}
}
