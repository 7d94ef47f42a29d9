package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/queueentry"
	"github.com/forgeflow/forgeflow/pkg/broker"
	"github.com/forgeflow/forgeflow/pkg/config"
)

// WorkerPool manages a pool of queue workers plus the background sweeper and
// orphan-recovery loops.
type WorkerPool struct {
	podID     string
	client    *ent.Client
	config    *config.QueueConfig
	executor  RunExecutor
	publisher *broker.Publisher
	tracker   *itemTracker
	workers   []*Worker
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Entry cancel registry: queue entry id → cancel function
	activeEntries map[string]context.CancelFunc
	mu            sync.RWMutex
	started       bool

	// Orphan recovery state
	orphans orphanState
}

// NewWorkerPool creates a new worker pool.
// publisher may be nil (bus publishing disabled).
func NewWorkerPool(podID string, client *ent.Client, cfg *config.QueueConfig, executor RunExecutor, publisher *broker.Publisher) *WorkerPool {
	return &WorkerPool{
		podID:         podID,
		client:        client,
		config:        cfg,
		executor:      executor,
		publisher:     publisher,
		tracker:       newItemTracker(),
		workers:       make([]*Worker, 0, cfg.WorkerCount),
		stopCh:        make(chan struct{}),
		activeEntries: make(map[string]context.CancelFunc),
	}
}

// Start spawns worker goroutines plus the sweeper and orphan recovery loops.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.config, p.executor, p.tracker, p, p.publisher)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(2)
	go func() {
		defer p.wg.Done()
		p.runSweeper(ctx)
	}()
	go func() {
		defer p.wg.Done()
		p.runOrphanRecovery(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current entries before exiting (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	active := p.getActiveEntryIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active entries to complete",
			"count", len(active),
			"queue_ids", active)
	}

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// RegisterEntry stores a cancel function for manual cancellation.
func (p *WorkerPool) RegisterEntry(entryID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeEntries[entryID] = cancel
}

// UnregisterEntry removes the cancel function when processing ends.
func (p *WorkerPool) UnregisterEntry(entryID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeEntries, entryID)
}

// CancelEntry triggers context cancellation for an entry on this pod.
// Returns true if the entry was found and cancelled on this pod.
func (p *WorkerPool) CancelEntry(entryID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeEntries[entryID]; ok {
		cancel()
		return true
	}
	return false
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.QueueEntry.Query().
		Where(queueentry.StatusEQ(queueentry.StatusPending)).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID,
			"error", errQ)
	}

	activeRuns, errA := p.client.QueueEntry.Query().
		Where(
			queueentry.StatusEQ(queueentry.StatusRunning),
			queueentry.PodIDEQ(p.podID),
		).
		Count(ctx)
	if errA != nil {
		slog.Error("Failed to query active entries for health check",
			"pod_id", p.podID,
			"error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	// DB errors affect health status - if we can't reach the DB, we're not healthy
	dbHealthy := errQ == nil && errA == nil
	isHealthy := len(p.workers) > 0 && activeRuns <= p.config.MaxConcurrentRuns && dbHealthy

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastScan
	orphansRecovered := p.orphans.recovered
	p.orphans.mu.Unlock()

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else if errA != nil {
			dbError = fmt.Sprintf("active entries query failed: %v", errA)
		}
	}

	return &PoolHealth{
		IsHealthy:        isHealthy,
		DBReachable:      dbHealthy,
		DBError:          dbError,
		PodID:            p.podID,
		ActiveWorkers:    activeWorkers,
		TotalWorkers:     len(p.workers),
		ActiveRuns:       activeRuns,
		MaxConcurrent:    p.config.MaxConcurrentRuns,
		QueueDepth:       queueDepth,
		WorkerStats:      workerStats,
		LastOrphanScan:   lastOrphanScan,
		OrphansRecovered: orphansRecovered,
	}
}

// getActiveEntryIDs returns IDs of currently processing entries (for logging).
func (p *WorkerPool) getActiveEntryIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	entries := make([]string, 0, len(p.activeEntries))
	for id := range p.activeEntries {
		entries = append(entries, id)
	}
	return entries
}
