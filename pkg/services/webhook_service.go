package services

import (
	"context"
	"fmt"
	"time"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/webhookevent"
)

// PersistEventInput carries the raw inbound event exactly as received.
type PersistEventInput struct {
	Source          string
	EventType       string
	ExternalEventID string
	Payload         map[string]any
	Headers         map[string]string
	Signature       string
}

// WebhookService owns the append-only webhook event log. Events are persisted
// before any interpretation so a crash mid-processing loses nothing.
type WebhookService struct {
	client *ent.Client
}

// NewWebhookService creates a new WebhookService.
func NewWebhookService(client *ent.Client) *WebhookService {
	if client == nil {
		panic("NewWebhookService: client must not be nil")
	}
	return &WebhookService{client: client}
}

// PersistEvent stores the raw event. When the provider supplies an event id,
// redelivery of the same (source, event id) pair returns the existing row
// with duplicate=true instead of creating a second one.
func (s *WebhookService) PersistEvent(ctx context.Context, input PersistEventInput) (event *ent.WebhookEvent, duplicate bool, err error) {
	if input.Payload == nil {
		return nil, false, NewValidationError("payload", "event payload is required")
	}
	source := input.Source
	if source == "" {
		source = "board"
	}

	if input.ExternalEventID != "" {
		existing, err := s.client.WebhookEvent.Query().
			Where(
				webhookevent.SourceEQ(source),
				webhookevent.ExternalEventIDEQ(input.ExternalEventID),
			).
			First(ctx)
		if err == nil {
			return existing, true, nil
		}
		if !ent.IsNotFound(err) {
			return nil, false, fmt.Errorf("failed to check for duplicate event: %w", err)
		}
	}

	builder := s.client.WebhookEvent.Create().
		SetSource(source).
		SetPayload(input.Payload)
	if input.EventType != "" {
		builder.SetEventType(input.EventType)
	}
	if input.ExternalEventID != "" {
		builder.SetExternalEventID(input.ExternalEventID)
	}
	if input.Headers != nil {
		builder.SetHeaders(input.Headers)
	}
	if input.Signature != "" {
		builder.SetSignature(input.Signature)
	}

	event, err = builder.Save(ctx)
	if err != nil {
		// Concurrent redelivery can race past the lookup; the index resolves it.
		if ent.IsConstraintError(err) && input.ExternalEventID != "" {
			existing, qerr := s.client.WebhookEvent.Query().
				Where(
					webhookevent.SourceEQ(source),
					webhookevent.ExternalEventIDEQ(input.ExternalEventID),
				).
				First(ctx)
			if qerr == nil {
				return existing, true, nil
			}
		}
		return nil, false, fmt.Errorf("failed to persist webhook event: %w", err)
	}
	return event, false, nil
}

// MarkOutcome records the processing outcome of an event.
func (s *WebhookService) MarkOutcome(ctx context.Context, eventID int64, outcome webhookevent.Outcome, detail string) error {
	update := s.client.WebhookEvent.UpdateOneID(eventID).
		SetOutcome(outcome).
		SetProcessedAt(time.Now())
	if detail != "" {
		update.SetOutcomeDetail(detail)
	}
	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark event outcome: %w", err)
	}
	return nil
}

// ListUnprocessed returns events still pending or errored within the window,
// oldest first. Used by the replay path after a crash.
func (s *WebhookService) ListUnprocessed(ctx context.Context, since time.Time, limit int) ([]*ent.WebhookEvent, error) {
	if limit <= 0 {
		limit = 100
	}
	events, err := s.client.WebhookEvent.Query().
		Where(
			webhookevent.OutcomeIn(webhookevent.OutcomePending, webhookevent.OutcomeError),
			webhookevent.ReceivedAtGTE(since),
		).
		Order(ent.Asc(webhookevent.FieldReceivedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unprocessed events: %w", err)
	}
	return events, nil
}

// GetEvent fetches one event by id.
func (s *WebhookService) GetEvent(ctx context.Context, eventID int64) (*ent.WebhookEvent, error) {
	event, err := s.client.WebhookEvent.Get(ctx, eventID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get webhook event: %w", err)
	}
	return event, nil
}
