// Package queue provides the durable workflow queue: per-item admission,
// worker pool claiming, sweeping, and crash recovery.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/queueentry"
)

// Sentinel errors for queue operations.
var (
	// ErrNoEntriesAvailable indicates no claimable pending entries exist.
	ErrNoEntriesAvailable = errors.New("no queue entries available")

	// ErrAtCapacity indicates the global concurrent run limit has been reached.
	ErrAtCapacity = errors.New("at capacity")

	// ErrItemBusy indicates the entry's board item already has a running
	// workflow instance.
	ErrItemBusy = errors.New("item already has a running workflow")
)

// RunExecutor is the interface the worker hands claimed entries to.
//
// The executor owns the staged run internally: it creates or resumes the run
// row, drives stages in order, and persists a context snapshot after each.
// The worker only handles claiming, heartbeat, and the terminal (or
// suspended) entry status.
type RunExecutor interface {
	Execute(ctx context.Context, entry *ent.QueueEntry) *ExecutionResult
}

// ExecutionResult carries only the end state of one worker pass over an
// entry. Intermediate state was already written by the executor.
type ExecutionResult struct {
	// Status is the queue entry status to write: a terminal status, or
	// waiting_validation when the run suspended for human input.
	Status queueentry.Status

	// RunID is the run the pass operated on, for logging and linkage.
	RunID int64

	// MergedPRURL is set when the run finished with a merge.
	MergedPRURL string

	// Error holds failure detail (if failed/timeout).
	Error error
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveRuns       int            `json:"active_runs"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID               string    `json:"id"`
	Status           string    `json:"status"` // "idle" or "working"
	CurrentEntryID   string    `json:"current_entry_id,omitempty"`
	EntriesProcessed int       `json:"entries_processed"`
	LastActivity     time.Time `json:"last_activity"`
}
