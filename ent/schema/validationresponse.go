package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ValidationResponse holds the schema definition for the ValidationResponse
// entity. At most one interpreted human reply per validation request; its
// presence makes the request status terminal.
type ValidationResponse struct {
	ent.Schema
}

// Fields of the ValidationResponse.
func (ValidationResponse) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			StorageKey("validation_response_id").
			Immutable(),
		field.Int64("validation_request_id").
			Unique().
			Immutable(),
		field.Text("raw_reply").
			Comment("Reply text as received from the board, markup included"),
		field.Enum("verdict").
			Values("approve", "reject", "abandon", "clarification_needed"),
		field.Float("confidence").
			Min(0).
			Max(1),
		field.Enum("analysis_method").
			Values("rule", "model").
			Default("rule"),
		field.Text("modification_instructions").
			Optional(),
		field.String("reviewer_id").
			Optional(),
		field.String("reviewer_email").
			Optional(),
		field.Text("system_note").
			Optional().
			Comment("e.g. coercion to abandon at the rejection limit, auto-approve cause"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ValidationResponse.
func (ValidationResponse) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("request", ValidationRequest.Type).
			Ref("response").
			Field("validation_request_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ValidationResponse.
func (ValidationResponse) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("verdict"),
	}
}
