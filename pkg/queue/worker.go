package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/queueentry"
	"github.com/forgeflow/forgeflow/ent/run"
	"github.com/forgeflow/forgeflow/pkg/broker"
	"github.com/forgeflow/forgeflow/pkg/config"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes entries.
type Worker struct {
	id        string
	podID     string
	client    *ent.Client
	config    *config.QueueConfig
	executor  RunExecutor
	tracker   *itemTracker
	pool      RunRegistry
	publisher *broker.Publisher
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Health tracking
	mu               sync.RWMutex
	status           WorkerStatus
	currentEntryID   string
	entriesProcessed int
	lastActivity     time.Time
}

// RunRegistry is the subset of WorkerPool used by Worker for cancel
// registration.
type RunRegistry interface {
	RegisterEntry(entryID string, cancel context.CancelFunc)
	UnregisterEntry(entryID string)
}

// NewWorker creates a new queue worker.
// publisher may be nil (bus publishing disabled).
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor RunExecutor, tracker *itemTracker, pool RunRegistry, publisher *broker.Publisher) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		tracker:      tracker,
		pool:         pool,
		publisher:    publisher,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:               w.id,
		Status:           string(w.status),
		CurrentEntryID:   w.currentEntryID,
		EntriesProcessed: w.entriesProcessed,
		LastActivity:     w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoEntriesAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing queue entry", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims an entry, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers but
	//    bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.QueueEntry.Query().
		Where(queueentry.StatusEQ(queueentry.StatusRunning)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active entries: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentRuns {
		return ErrAtCapacity
	}

	// 2. Claim next eligible entry
	entry, err := w.claimNextEntry(ctx)
	if err != nil {
		return err
	}

	log := slog.With("queue_id", entry.ID, "item_id", entry.ExternalItemID, "worker_id", w.id)
	log.Info("Queue entry claimed", "priority", entry.Priority)

	w.publishWorkflowEvent(ctx, "claimed", entry, 0)

	w.setStatus(WorkerStatusWorking, entry.ID)
	defer w.setStatus(WorkerStatusIdle, "")
	defer w.tracker.release(entry.ExternalItemID)

	// 3. Create entry context with the workflow timeout
	entryCtx, cancelEntry := context.WithTimeout(ctx, w.config.WorkflowTimeout)
	defer cancelEntry()

	// 4. Register cancel function for API-triggered cancellation
	w.pool.RegisterEntry(entry.ID, cancelEntry)
	defer w.pool.UnregisterEntry(entry.ID)

	// 5. Start heartbeat
	heartbeatCtx, cancelHeartbeat := context.WithCancel(entryCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, entry.ID)

	// 6. Execute (or resume) the run
	result := w.executor.Execute(entryCtx, entry)

	// 6a. Nil-guard: synthesize a safe result if executor returned nil
	if result == nil {
		switch {
		case errors.Is(entryCtx.Err(), context.DeadlineExceeded):
			result = &ExecutionResult{
				Status: queueentry.StatusTimeout,
				Error:  fmt.Errorf("workflow timed out after %v", w.config.WorkflowTimeout),
			}
		case errors.Is(entryCtx.Err(), context.Canceled):
			result = &ExecutionResult{
				Status: queueentry.StatusCancelled,
				Error:  context.Canceled,
			}
		default:
			result = &ExecutionResult{
				Status: queueentry.StatusFailed,
				Error:  fmt.Errorf("executor returned nil result"),
			}
		}
	}

	// 7. Map context expiry onto the result when the executor did not
	if result.Status == "" && errors.Is(entryCtx.Err(), context.DeadlineExceeded) {
		result = &ExecutionResult{
			Status: queueentry.StatusTimeout,
			RunID:  result.RunID,
			Error:  fmt.Errorf("workflow timed out after %v", w.config.WorkflowTimeout),
		}
	}
	if result.Status == "" && errors.Is(entryCtx.Err(), context.Canceled) {
		result = &ExecutionResult{
			Status: queueentry.StatusCancelled,
			RunID:  result.RunID,
			Error:  context.Canceled,
		}
	}

	// 8. Stop heartbeat
	cancelHeartbeat()

	// 9. Update entry status (use background context — entry ctx may be cancelled)
	if err := w.updateEntryStatus(context.Background(), entry, result); err != nil {
		log.Error("Failed to update queue entry status", "error", err)
		return err
	}

	w.publishWorkflowEvent(context.Background(), string(result.Status), entry, result.RunID)

	w.mu.Lock()
	w.entriesProcessed++
	w.mu.Unlock()

	log.Info("Queue entry processing complete", "status", result.Status)
	return nil
}

// claimNextEntry atomically claims the next eligible pending entry using
// FOR UPDATE SKIP LOCKED. Entries whose board item already has a running
// instance are passed over; priority desc then FIFO otherwise.
func (w *Worker) claimNextEntry(ctx context.Context) (*ent.QueueEntry, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	candidates, err := tx.QueueEntry.Query().
		Where(queueentry.StatusEQ(queueentry.StatusPending)).
		Order(
			ent.Desc(queueentry.FieldPriority),
			ent.Asc(queueentry.FieldQueuedAt),
		).
		Limit(10).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending entries: %w", err)
	}
	if len(candidates) == 0 {
		return nil, ErrNoEntriesAvailable
	}

	for _, candidate := range candidates {
		// Per-item exclusivity: skip items with a running instance anywhere.
		busy, err := tx.QueueEntry.Query().
			Where(
				queueentry.ExternalItemIDEQ(candidate.ExternalItemID),
				queueentry.StatusEQ(queueentry.StatusRunning),
			).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check item exclusivity: %w", err)
		}
		if busy || !w.tracker.tryAcquire(candidate.ExternalItemID, candidate.ID) {
			continue
		}

		entry, err := candidate.Update().
			SetStatus(queueentry.StatusRunning).
			SetPodID(w.podID).
			SetSchedulerRef(w.id).
			SetStartedAt(time.Now()).
			Save(ctx)
		if err != nil {
			w.tracker.release(candidate.ExternalItemID)
			// The partial unique index rejects a lost race for the item slot.
			if ent.IsConstraintError(err) {
				continue
			}
			return nil, fmt.Errorf("failed to claim entry: %w", err)
		}
		if err := tx.Commit(); err != nil {
			w.tracker.release(candidate.ExternalItemID)
			return nil, fmt.Errorf("failed to commit claim: %w", err)
		}
		return entry, nil
	}

	return nil, ErrNoEntriesAvailable
}

// runHeartbeat periodically refreshes the run heartbeat for orphan detection.
// The run row appears shortly after claim (the executor creates it), so the
// entry is re-read each tick to pick up the link.
func (w *Worker) runHeartbeat(ctx context.Context, entryID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			entry, err := w.client.QueueEntry.Get(ctx, entryID)
			if err != nil || entry.RunID == nil {
				continue
			}
			if err := w.client.Run.Update().
				Where(
					run.IDEQ(*entry.RunID),
					run.StatusEQ(run.StatusRunning),
				).
				SetLastHeartbeatAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "queue_id", entryID, "error", err)
			}
		}
	}
}

// updateEntryStatus writes the post-execution entry status. Suspension
// (waiting_validation) is not terminal: the validation coordinator re-queues
// the entry once a verdict lands.
func (w *Worker) updateEntryStatus(ctx context.Context, entry *ent.QueueEntry, result *ExecutionResult) error {
	switch result.Status {
	case queueentry.StatusWaitingValidation:
		return w.client.QueueEntry.UpdateOneID(entry.ID).
			SetStatus(queueentry.StatusWaitingValidation).
			SetWaitingSince(time.Now()).
			Exec(ctx)
	case queueentry.StatusCompleted, queueentry.StatusFailed, queueentry.StatusCancelled, queueentry.StatusTimeout:
		return w.client.QueueEntry.UpdateOneID(entry.ID).
			SetStatus(result.Status).
			SetCompletedAt(time.Now()).
			Exec(ctx)
	default:
		return fmt.Errorf("executor returned unexpected status %q", result.Status)
	}
}

// publishWorkflowEvent emits a lifecycle event on the workflows subject.
func (w *Worker) publishWorkflowEvent(ctx context.Context, kind string, entry *ent.QueueEntry, runID int64) {
	if runID == 0 && entry.RunID != nil {
		runID = *entry.RunID
	}
	w.publisher.Publish(ctx, broker.SubjectWorkflows, broker.Event{
		Kind:   kind,
		ItemID: entry.ExternalItemID,
		RunID:  runID,
		Detail: map[string]any{"queue_id": entry.ID, "worker_id": w.id},
	})
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, entryID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentEntryID = entryID
	w.lastActivity = time.Now()
}
