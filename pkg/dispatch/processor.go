// Package dispatch routes persisted webhook events to their consequence:
// a new queued workflow, a reactivation attempt, or a recorded no-op.
package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/task"
	"github.com/forgeflow/forgeflow/ent/webhookevent"
	"github.com/forgeflow/forgeflow/pkg/broker"
	"github.com/forgeflow/forgeflow/pkg/config"
	"github.com/forgeflow/forgeflow/pkg/ingest"
	"github.com/forgeflow/forgeflow/pkg/models"
	"github.com/forgeflow/forgeflow/pkg/reactivation"
	"github.com/forgeflow/forgeflow/pkg/services"
)

// Result describes what the processor did with one event. The API handler
// shapes its response body from it.
type Result struct {
	Outcome        webhookevent.Outcome
	Detail         string
	Classification models.Classification

	// Set when a workflow was queued.
	TaskID   int64
	QueueID  string
	Position int

	// Set for comments on items with a workflow already in flight.
	RunningWorkflowID string

	// Set when a terminal task was reactivated.
	RunID int64
}

// Processor classifies persisted events and drives the per-item task
// registry and the durable queue accordingly.
type Processor struct {
	cfg      *config.Config
	webhooks *services.WebhookService
	tasks    *services.TaskService
	queueSvc *services.QueueService
	analyzer *reactivation.Analyzer
	pub      *broker.Publisher
	logger   *slog.Logger
}

// NewProcessor creates the dispatch processor. analyzer and pub may be nil;
// with a nil analyzer comments on finished tasks are recorded but never
// reactivate.
func NewProcessor(cfg *config.Config, client *ent.Client, analyzer *reactivation.Analyzer, pub *broker.Publisher) *Processor {
	return &Processor{
		cfg:      cfg,
		webhooks: services.NewWebhookService(client),
		tasks:    services.NewTaskService(client),
		queueSvc: services.NewQueueService(client),
		analyzer: analyzer,
		pub:      pub,
		logger:   slog.Default().With("component", "dispatch"),
	}
}

// Process routes one persisted event. The outcome (including errors) is
// written back onto the event row, so redelivery and the startup replay can
// tell handled events from lost ones.
func (p *Processor) Process(ctx context.Context, eventID int64, ev *models.BoardEvent) (*Result, error) {
	res, err := p.route(ctx, ev)
	if err != nil {
		if mErr := p.webhooks.MarkOutcome(ctx, eventID, webhookevent.OutcomeError, err.Error()); mErr != nil {
			p.logger.Error("Failed to mark event outcome", "event_id", eventID, "error", mErr)
		}
		return nil, err
	}
	if mErr := p.webhooks.MarkOutcome(ctx, eventID, res.Outcome, res.Detail); mErr != nil {
		p.logger.Error("Failed to mark event outcome", "event_id", eventID, "error", mErr)
	}
	return res, nil
}

func (p *Processor) route(ctx context.Context, ev *models.BoardEvent) (*Result, error) {
	class := ingest.Classify(ev)
	switch class {
	case models.ClassActionableNew:
		return p.handleNewItem(ctx, ev)
	case models.ClassActionableComment:
		return p.handleComment(ctx, ev)
	case models.ClassSelfAuthored:
		return &Result{
			Outcome:        webhookevent.OutcomeIgnored,
			Detail:         "agent-authored comment",
			Classification: class,
		}, nil
	default:
		return &Result{
			Outcome:        webhookevent.OutcomeIgnored,
			Detail:         fmt.Sprintf("event type %q is not actionable", ev.Type),
			Classification: class,
		}, nil
	}
}

// handleNewItem registers the task and queues a workflow for it. The first
// entry of an idle item is admitted for immediate execution (accepted); a
// create-like event for an item whose workflow is already in flight queues a
// new entry behind it.
func (p *Processor) handleNewItem(ctx context.Context, ev *models.BoardEvent) (*Result, error) {
	itemID := ev.ItemID()
	description := ev.CommentBody()

	repoURL := ingest.ExtractRepoURL(description)
	if repoURL == "" {
		repoURL = p.cfg.CodeHost.DefaultRepository
	}

	t, created, err := p.tasks.UpsertTask(ctx, services.UpsertTaskInput{
		ExternalItemID: itemID,
		Title:          ev.PulseName,
		Description:    description,
		Priority:       taskPriority(ev.Priority),
		RepositoryURL:  repoURL,
		UserLanguage:   ingest.DetectLanguage(ev.PulseName + " " + description),
		CreatorID:      ev.UserID.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("upsert task for item %s: %w", itemID, err)
	}
	if !created && !activeStatus(t.InternalStatus) {
		// The item already went through a full lifecycle; only comments
		// (through reactivation) drive it from here. True redeliveries never
		// reach this point: the ingress dedupes on the external event id.
		return &Result{
			Outcome:        webhookevent.OutcomeIgnored,
			Detail:         "item already tracked",
			Classification: models.ClassActionableNew,
			TaskID:         t.ID,
		}, nil
	}

	taskID := t.ID
	entry, position, err := p.queueSvc.Enqueue(ctx, services.EnqueueInput{
		ExternalItemID: itemID,
		TaskID:         &taskID,
		Priority:       models.ParsePriority(ev.Priority),
		Payload:        map[string]any{"title": ev.PulseName},
	})
	if err != nil {
		return nil, fmt.Errorf("enqueue item %s: %w", itemID, err)
	}

	res := &Result{
		Outcome:        webhookevent.OutcomeAccepted,
		Detail:         "admitted for immediate execution",
		Classification: models.ClassActionableNew,
		TaskID:         t.ID,
		QueueID:        entry.ID,
		Position:       position,
	}
	// Head of an idle item is accepted; anything waiting behind an active
	// workflow or an earlier pending entry is queued.
	if active, err := p.queueSvc.ActiveEntryForItem(ctx, itemID); err == nil {
		res.RunningWorkflowID = active.ID
	}
	if res.RunningWorkflowID != "" || position > 1 {
		res.Outcome = webhookevent.OutcomeQueued
		res.Detail = fmt.Sprintf("queued at position %d", position)
	}

	p.pub.Publish(ctx, broker.SubjectWebhooks, broker.Event{
		Kind:   string(res.Outcome),
		ItemID: itemID,
		TaskID: t.ID,
		Detail: map[string]any{"queue_id": entry.ID, "position": position},
	})
	p.logger.Info("New workflow admitted",
		"item_id", itemID, "task_id", t.ID, "queue_id", entry.ID,
		"position", position, "outcome", res.Outcome)

	return res, nil
}

// handleComment routes a human comment: active workflows consume their own
// replies through the validation poller; terminal tasks go through the
// reactivation analyzer.
func (p *Processor) handleComment(ctx context.Context, ev *models.BoardEvent) (*Result, error) {
	itemID := ev.ItemID()

	t, err := p.tasks.GetByExternalItemID(ctx, itemID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return &Result{
				Outcome:        webhookevent.OutcomeIgnored,
				Detail:         "comment on unknown item",
				Classification: models.ClassActionableComment,
			}, nil
		}
		return nil, err
	}

	if activeStatus(t.InternalStatus) {
		res := &Result{
			Outcome:        webhookevent.OutcomeAccepted,
			Detail:         "workflow in flight; validation replies are read from the board",
			Classification: models.ClassActionableComment,
			TaskID:         t.ID,
		}
		if entry, err := p.queueSvc.ActiveEntryForItem(ctx, itemID); err == nil {
			res.RunningWorkflowID = entry.ID
		}
		return res, nil
	}

	if p.analyzer == nil {
		return &Result{
			Outcome:        webhookevent.OutcomeIgnored,
			Detail:         "reactivation disabled",
			Classification: models.ClassActionableComment,
			TaskID:         t.ID,
		}, nil
	}

	outcome, err := p.analyzer.Analyze(ctx, t, ev.CommentBody())
	if err != nil {
		return nil, fmt.Errorf("analyze comment on item %s: %w", itemID, err)
	}
	if !outcome.Reactivated {
		return &Result{
			Outcome:        webhookevent.OutcomeIgnored,
			Detail:         outcome.Reason,
			Classification: models.ClassActionableComment,
			TaskID:         t.ID,
		}, nil
	}
	return &Result{
		Outcome:        webhookevent.OutcomeReactivated,
		Detail:         fmt.Sprintf("reactivated with confidence %.2f", outcome.Confidence),
		Classification: models.ClassActionableComment,
		TaskID:         t.ID,
		RunID:          outcome.RunID,
		QueueID:        outcome.QueueID,
	}, nil
}

// Replay reprocesses events that were persisted but never routed, typically
// after a crash between the ingress write and the dispatch. Events whose
// payload no longer parses are marked errored and skipped.
func (p *Processor) Replay(ctx context.Context, window time.Duration, limit int) (int, error) {
	events, err := p.webhooks.ListUnprocessed(ctx, time.Now().Add(-window), limit)
	if err != nil {
		return 0, err
	}

	processed := 0
	for _, e := range events {
		ev, err := eventFromPayload(e.Payload)
		if err != nil {
			p.logger.Warn("Skipping unreplayable event", "event_id", e.ID, "error", err)
			if mErr := p.webhooks.MarkOutcome(ctx, e.ID, webhookevent.OutcomeError, err.Error()); mErr != nil {
				p.logger.Error("Failed to mark event outcome", "event_id", e.ID, "error", mErr)
			}
			continue
		}
		if _, err := p.Process(ctx, e.ID, ev); err != nil {
			p.logger.Warn("Replay failed for event", "event_id", e.ID, "error", err)
			continue
		}
		processed++
	}
	if processed > 0 {
		p.logger.Info("Replayed unprocessed webhook events", "count", processed, "scanned", len(events))
	}
	return processed, nil
}

// eventFromPayload reconstructs the typed event from the stored JSON payload.
func eventFromPayload(payload map[string]any) (*models.BoardEvent, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("re-marshal payload: %w", err)
	}
	var hook models.BoardWebhook
	if err := json.Unmarshal(raw, &hook); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	if hook.Event == nil {
		return nil, fmt.Errorf("payload has no event")
	}
	return hook.Event, nil
}

// activeStatus reports whether the task currently has a workflow in flight.
func activeStatus(status task.InternalStatus) bool {
	switch status {
	case task.InternalStatusPending, task.InternalStatusInProgress, task.InternalStatusWaitingValidation:
		return true
	}
	return false
}

// taskPriority maps the provider's priority label onto the task enum.
func taskPriority(label string) task.Priority {
	switch label {
	case "urgent":
		return task.PriorityUrgent
	case "high":
		return task.PriorityHigh
	case "low":
		return task.PriorityLow
	case "medium":
		return task.PriorityMedium
	default:
		return ""
	}
}
