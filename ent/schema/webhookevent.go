package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WebhookEvent holds the schema definition for the WebhookEvent entity.
// Immutable append-only log of every inbound board event, persisted before
// any interpretation so failed events can be replayed. The backing table is
// partitioned by month (see pkg/database/migrations).
type WebhookEvent struct {
	ent.Schema
}

// Fields of the WebhookEvent.
func (WebhookEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			StorageKey("webhook_event_id").
			Immutable(),
		field.String("source").
			Default("board"),
		field.String("event_type").
			Optional().
			Comment("e.g. create_pulse, create_update, update_column_value"),
		field.String("external_event_id").
			Optional().
			Comment("Idempotency key together with source, when provided"),
		field.JSON("payload", map[string]any{}).
			Comment("Raw body as received"),
		field.JSON("headers", map[string]string{}).
			Optional(),
		field.String("signature").
			Optional(),
		field.Time("received_at").
			Default(time.Now).
			Immutable(),
		field.Time("processed_at").
			Optional().
			Nillable(),
		field.Enum("outcome").
			Values("pending", "accepted", "queued", "reactivated", "ignored", "error").
			Default("pending"),
		field.Text("outcome_detail").
			Optional().
			Comment("Classifier reason or error marker"),
	}
}

// Indexes of the WebhookEvent.
func (WebhookEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source", "external_event_id"),
		index.Fields("received_at"),
		index.Fields("outcome"),
	}
}
