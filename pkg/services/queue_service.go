package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/queueentry"
)

// EnqueueInput describes a workflow instance to add to the durable queue.
type EnqueueInput struct {
	ExternalItemID string
	TaskID         *int64
	RunID          *int64
	Priority       int
	Payload        map[string]any
}

// QueueService owns the durable queue rows. Claiming is done by the worker
// pool with FOR UPDATE SKIP LOCKED; this service covers enqueue, status
// transitions, and the queries the ingress, sweeper, and API need.
type QueueService struct {
	client *ent.Client
}

// NewQueueService creates a new QueueService.
func NewQueueService(client *ent.Client) *QueueService {
	if client == nil {
		panic("NewQueueService: client must not be nil")
	}
	return &QueueService{client: client}
}

// Enqueue creates a pending entry and returns it with its 1-based position
// among the item's pending entries (priority desc, then FIFO).
func (s *QueueService) Enqueue(ctx context.Context, input EnqueueInput) (*ent.QueueEntry, int, error) {
	if input.ExternalItemID == "" {
		return nil, 0, NewValidationError("external_item_id", "item id is required")
	}
	priority := input.Priority
	if priority < 1 || priority > 10 {
		priority = 5
	}

	builder := s.client.QueueEntry.Create().
		SetID(uuid.New().String()).
		SetExternalItemID(input.ExternalItemID).
		SetPriority(priority)
	if input.TaskID != nil {
		builder.SetTaskID(*input.TaskID)
	}
	if input.RunID != nil {
		builder.SetRunID(*input.RunID)
	}
	if input.Payload != nil {
		builder.SetPayload(input.Payload)
	}

	entry, err := builder.Save(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to enqueue: %w", err)
	}

	position, err := s.Position(ctx, entry)
	if err != nil {
		return entry, 0, nil
	}
	return entry, position, nil
}

// Position computes the entry's 1-based place among its item's pending
// entries. Positions are per item: entries of other items never shift it.
func (s *QueueService) Position(ctx context.Context, entry *ent.QueueEntry) (int, error) {
	ahead, err := s.client.QueueEntry.Query().
		Where(
			queueentry.ExternalItemIDEQ(entry.ExternalItemID),
			queueentry.StatusEQ(queueentry.StatusPending),
			queueentry.Or(
				queueentry.PriorityGT(entry.Priority),
				queueentry.And(
					queueentry.PriorityEQ(entry.Priority),
					queueentry.QueuedAtLT(entry.QueuedAt),
				),
			),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to compute queue position: %w", err)
	}
	return ahead + 1, nil
}

// GetEntry fetches one entry by id.
func (s *QueueService) GetEntry(ctx context.Context, id string) (*ent.QueueEntry, error) {
	entry, err := s.client.QueueEntry.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get queue entry: %w", err)
	}
	return entry, nil
}

// ActiveEntryForItem returns the item's running or waiting entry, if any.
// Pending entries are not considered active.
func (s *QueueService) ActiveEntryForItem(ctx context.Context, itemID string) (*ent.QueueEntry, error) {
	entry, err := s.client.QueueEntry.Query().
		Where(
			queueentry.ExternalItemIDEQ(itemID),
			queueentry.StatusIn(queueentry.StatusRunning, queueentry.StatusWaitingValidation),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query active entry: %w", err)
	}
	return entry, nil
}

// AttachRun links the task and run rows to the entry once they exist.
func (s *QueueService) AttachRun(ctx context.Context, id string, taskID, runID int64) error {
	if err := s.client.QueueEntry.UpdateOneID(id).
		SetTaskID(taskID).
		SetRunID(runID).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to attach run to queue entry: %w", err)
	}
	return nil
}

// Suspend parks a running entry while its run waits for validation. The
// per-item running slot frees up; waiting_since feeds the sweeper timeout.
func (s *QueueService) Suspend(ctx context.Context, id string) error {
	n, err := s.client.QueueEntry.Update().
		Where(
			queueentry.IDEQ(id),
			queueentry.StatusEQ(queueentry.StatusRunning),
		).
		SetStatus(queueentry.StatusWaitingValidation).
		SetWaitingSince(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to suspend queue entry: %w", err)
	}
	if n == 0 {
		return ErrInvalidTransition
	}
	return nil
}

// Resume moves a waiting entry back to pending so a worker can re-claim it.
// The run context snapshot carries the stage to re-enter.
func (s *QueueService) Resume(ctx context.Context, id string) error {
	n, err := s.client.QueueEntry.Update().
		Where(
			queueentry.IDEQ(id),
			queueentry.StatusEQ(queueentry.StatusWaitingValidation),
		).
		SetStatus(queueentry.StatusPending).
		ClearWaitingSince().
		ClearStartedAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to resume queue entry: %w", err)
	}
	if n == 0 {
		return ErrInvalidTransition
	}
	return nil
}

// Finish writes a terminal status on the entry.
func (s *QueueService) Finish(ctx context.Context, id string, status queueentry.Status) error {
	switch status {
	case queueentry.StatusCompleted, queueentry.StatusFailed, queueentry.StatusCancelled, queueentry.StatusTimeout:
	default:
		return NewValidationError("status", fmt.Sprintf("'%s' is not a terminal queue status", status))
	}
	if err := s.client.QueueEntry.UpdateOneID(id).
		SetStatus(status).
		SetCompletedAt(time.Now()).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to finish queue entry: %w", err)
	}
	return nil
}

// Cancel cancels a pending entry. Running entries are cancelled through the
// worker pool so the executing goroutine is interrupted too.
func (s *QueueService) Cancel(ctx context.Context, id string) error {
	n, err := s.client.QueueEntry.Update().
		Where(
			queueentry.IDEQ(id),
			queueentry.StatusEQ(queueentry.StatusPending),
		).
		SetStatus(queueentry.StatusCancelled).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel queue entry: %w", err)
	}
	if n == 0 {
		return ErrInvalidTransition
	}
	return nil
}

// CountByStatus returns entry counts for the queue status endpoint.
func (s *QueueService) CountByStatus(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	for _, status := range []queueentry.Status{
		queueentry.StatusPending,
		queueentry.StatusRunning,
		queueentry.StatusWaitingValidation,
	} {
		n, err := s.client.QueueEntry.Query().
			Where(queueentry.StatusEQ(status)).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s entries: %w", status, err)
		}
		counts[string(status)] = n
	}
	return counts, nil
}

// ListEntries returns entries filtered by status (all when empty), priority
// desc then FIFO for pending, newest first otherwise.
func (s *QueueService) ListEntries(ctx context.Context, status string, limit, offset int) ([]*ent.QueueEntry, int, error) {
	if limit <= 0 {
		limit = 50
	}
	query := s.client.QueueEntry.Query()
	if status != "" {
		query = query.Where(queueentry.StatusEQ(queueentry.Status(status)))
	}
	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count queue entries: %w", err)
	}
	var order []queueentry.OrderOption
	if status == string(queueentry.StatusPending) {
		order = []queueentry.OrderOption{
			ent.Desc(queueentry.FieldPriority),
			ent.Asc(queueentry.FieldQueuedAt),
		}
	} else {
		order = []queueentry.OrderOption{ent.Desc(queueentry.FieldQueuedAt)}
	}
	entries, err := query.
		Order(order...).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list queue entries: %w", err)
	}
	return entries, total, nil
}

// StaleRunning returns running entries started before the cutoff.
func (s *QueueService) StaleRunning(ctx context.Context, olderThan time.Duration) ([]*ent.QueueEntry, error) {
	cutoff := time.Now().Add(-olderThan)
	entries, err := s.client.QueueEntry.Query().
		Where(
			queueentry.StatusEQ(queueentry.StatusRunning),
			queueentry.StartedAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale running entries: %w", err)
	}
	return entries, nil
}

// StaleWaiting returns waiting_validation entries parked before the cutoff.
func (s *QueueService) StaleWaiting(ctx context.Context, olderThan time.Duration) ([]*ent.QueueEntry, error) {
	cutoff := time.Now().Add(-olderThan)
	entries, err := s.client.QueueEntry.Query().
		Where(
			queueentry.StatusEQ(queueentry.StatusWaitingValidation),
			queueentry.WaitingSinceLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale waiting entries: %w", err)
	}
	return entries, nil
}

// PurgeTerminal deletes terminal entries completed before the cutoff.
// Returns the number of rows removed.
func (s *QueueService) PurgeTerminal(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan)
	n, err := s.client.QueueEntry.Delete().
		Where(
			queueentry.StatusIn(
				queueentry.StatusCompleted,
				queueentry.StatusFailed,
				queueentry.StatusCancelled,
				queueentry.StatusTimeout,
			),
			queueentry.CompletedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge terminal queue entries: %w", err)
	}
	return n, nil
}

// RecoverableEntries returns pending entries queued within the recovery
// window, for startup reload after a crash.
func (s *QueueService) RecoverableEntries(ctx context.Context, window time.Duration) ([]*ent.QueueEntry, error) {
	cutoff := time.Now().Add(-window)
	entries, err := s.client.QueueEntry.Query().
		Where(
			queueentry.StatusEQ(queueentry.StatusPending),
			queueentry.QueuedAtGTE(cutoff),
		).
		Order(
			ent.Desc(queueentry.FieldPriority),
			ent.Asc(queueentry.FieldQueuedAt),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query recoverable entries: %w", err)
	}
	return entries, nil
}
