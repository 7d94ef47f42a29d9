package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/queueentry"
	"github.com/forgeflow/forgeflow/ent/run"
	"github.com/forgeflow/forgeflow/ent/validationrequest"
)

// runSweeper periodically expires entries stuck past their allowed windows.
// This is the backstop behind the workflow context timeout and the validation
// poller's own window: it catches work whose owner died between heartbeats.
func (p *WorkerPool) runSweeper(ctx context.Context) {
	ticker := time.NewTicker(p.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.sweep(ctx); err != nil {
				slog.Error("Queue sweep failed", "error", err)
			}
		}
	}
}

// sweep times out running entries past the workflow timeout and waiting
// entries past their validation window.
func (p *WorkerPool) sweep(ctx context.Context) error {
	now := time.Now()

	stale, err := p.client.QueueEntry.Query().
		Where(
			queueentry.StatusEQ(queueentry.StatusRunning),
			queueentry.StartedAtLT(now.Add(-p.config.WorkflowTimeout)),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query stale running entries: %w", err)
	}
	for _, entry := range stale {
		p.timeoutEntry(ctx, entry.ID, entry.RunID, entry.ExternalItemID,
			fmt.Sprintf("running longer than %v", p.config.WorkflowTimeout))
	}

	waiting, err := p.client.QueueEntry.Query().
		Where(
			queueentry.StatusEQ(queueentry.StatusWaitingValidation),
			queueentry.WaitingSinceLT(now.Add(-p.config.ValidationWait)),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query stale waiting entries: %w", err)
	}
	for _, entry := range waiting {
		window := p.waitingWindow(ctx, entry)
		if entry.WaitingSince == nil || now.Sub(*entry.WaitingSince) <= window {
			continue
		}
		p.timeoutEntry(ctx, entry.ID, entry.RunID, entry.ExternalItemID,
			fmt.Sprintf("waiting for validation longer than %v", window))
	}

	return nil
}

// waitingWindow resolves how long the entry may stay in waiting_validation:
// ValidationWait by default, extended when the pending validation request
// asked for a longer timeout, and never beyond ValidationWaitMax.
func (p *WorkerPool) waitingWindow(ctx context.Context, entry *ent.QueueEntry) time.Duration {
	window := p.config.ValidationWait
	if entry.RunID != nil {
		req, err := p.client.ValidationRequest.Query().
			Where(
				validationrequest.RunIDEQ(*entry.RunID),
				validationrequest.StatusEQ(validationrequest.StatusPending),
			).
			Order(ent.Desc(validationrequest.FieldCreatedAt)).
			First(ctx)
		if err == nil {
			if requested := time.Duration(req.TimeoutSeconds) * time.Second; requested > window {
				window = requested
			}
		}
	}
	if window > p.config.ValidationWaitMax {
		window = p.config.ValidationWaitMax
	}
	return window
}

// timeoutEntry writes the timeout terminal state on the entry, its run, and
// any still-pending validation request, then dead-letters the event.
func (p *WorkerPool) timeoutEntry(ctx context.Context, entryID string, runID *int64, itemID, cause string) {
	log := slog.With("queue_id", entryID, "item_id", itemID)

	n, err := p.client.QueueEntry.Update().
		Where(
			queueentry.IDEQ(entryID),
			queueentry.StatusIn(queueentry.StatusRunning, queueentry.StatusWaitingValidation),
		).
		SetStatus(queueentry.StatusTimeout).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		log.Error("Failed to time out queue entry", "error", err)
		return
	}
	if n == 0 {
		// Finished or resumed between query and update.
		return
	}

	if runID != nil {
		if err := p.client.Run.Update().
			Where(
				run.IDEQ(*runID),
				run.StatusIn(run.StatusRunning, run.StatusWaitingValidation, run.StatusPending),
			).
			SetStatus(run.StatusTimeout).
			SetCompletedAt(time.Now()).
			SetErrorMessage("swept: "+cause).
			Exec(ctx); err != nil {
			log.Error("Failed to time out run", "run_id", *runID, "error", err)
		}

		if _, err := p.client.ValidationRequest.Update().
			Where(
				validationrequest.RunIDEQ(*runID),
				validationrequest.StatusEQ(validationrequest.StatusPending),
			).
			SetStatus(validationrequest.StatusExpired).
			SetResolvedAt(time.Now()).
			Save(ctx); err != nil {
			log.Error("Failed to expire validations for swept run", "run_id", *runID, "error", err)
		}
	}

	p.publisher.DeadLetter(ctx, "workflow_timeout", map[string]any{
		"queue_id": entryID,
		"item_id":  itemID,
		"cause":    cause,
	})
	log.Warn("Queue entry swept to timeout", "cause", cause)
}
