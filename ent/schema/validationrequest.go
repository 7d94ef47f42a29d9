package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ValidationRequest holds the schema definition for the ValidationRequest
// entity. One row per validation prompt posted to the board item. Re-prompts
// after a rejection link to their predecessor via parent_validation_id.
type ValidationRequest struct {
	ent.Schema
}

// Fields of the ValidationRequest.
func (ValidationRequest) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			StorageKey("validation_request_id").
			Immutable(),
		field.Int64("run_id").
			Immutable(),
		field.Int64("parent_validation_id").
			Optional().
			Nillable(),
		field.String("external_comment_id").
			Optional().
			Comment("Comment id returned by the board when the prompt was posted"),
		field.Text("body").
			Comment("Comment body as posted, including the agent signature"),
		field.String("requester_id").
			Optional().
			Comment("Board user id of the task creator (the only authorized replier)"),
		field.String("requester_email").
			Optional(),
		field.Enum("status").
			Values("pending", "approved", "rejected", "abandoned", "expired").
			Default("pending"),
		field.Int("rejection_count").
			Default(0).
			NonNegative().
			Comment("Never decreases within a chain"),
		field.Text("modification_instructions").
			Optional().
			Comment("Populated when rejected"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("resolved_at").
			Optional().
			Nillable(),
		field.Int("timeout_seconds").
			Default(3600).
			Comment("Per-validation timeout window"),
	}
}

// Edges of the ValidationRequest.
func (ValidationRequest) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("validation_requests").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
		edge.To("response", ValidationResponse.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ValidationRequest.
func (ValidationRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "created_at"),
		index.Fields("status"),
	}
}
