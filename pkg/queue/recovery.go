package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/queueentry"
	"github.com/forgeflow/forgeflow/ent/run"
)

// orphanState tracks orphan recovery metrics (thread-safe).
type orphanState struct {
	mu        sync.Mutex
	lastScan  time.Time
	recovered int
}

// runOrphanRecovery periodically scans for runs whose owning pod died.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanRecovery(ctx context.Context) {
	ticker := time.NewTicker(p.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.recoverOrphans(ctx); err != nil {
				slog.Error("Orphan recovery failed", "error", err)
			}
		}
	}
}

// recoverOrphans finds running runs with stale heartbeats and resets them to
// pending. The context snapshot written after each stage means the resumed
// run re-enters at its recorded next stage rather than restarting.
func (p *WorkerPool) recoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.Run.Query().
		Where(
			run.StatusEQ(run.StatusRunning),
			run.LastHeartbeatAtNotNil(),
			run.LastHeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned runs: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned runs", "count", len(orphans))

	recovered := 0
	for _, r := range orphans {
		if err := requeueOrphanedRun(ctx, p.client, r, "stale heartbeat"); err != nil {
			slog.Error("Failed to recover orphaned run",
				"run_id", r.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastScan = time.Now()
	p.orphans.recovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// requeueOrphanedRun resets one orphaned run and its queue entry to pending
// so any worker can re-claim and resume it.
func requeueOrphanedRun(ctx context.Context, client *ent.Client, r *ent.Run, cause string) error {
	log := slog.With("run_id", r.ID, "old_pod_id", r.PodID)

	lastHeartbeat := "unknown"
	if r.LastHeartbeatAt != nil {
		lastHeartbeat = r.LastHeartbeatAt.Format(time.RFC3339)
	}
	podID := "unknown"
	if r.PodID != nil {
		podID = *r.PodID
	}

	n, err := client.Run.Update().
		Where(
			run.IDEQ(r.ID),
			run.StatusEQ(run.StatusRunning),
		).
		SetStatus(run.StatusPending).
		ClearPodID().
		SetErrorMessage(fmt.Sprintf("Orphaned (%s): pod %s last heartbeat %s", cause, podID, lastHeartbeat)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to reset orphaned run: %w", err)
	}
	if n == 0 {
		// Another pod recovered it first.
		return nil
	}

	_, err = client.QueueEntry.Update().
		Where(
			queueentry.RunIDEQ(r.ID),
			queueentry.StatusEQ(queueentry.StatusRunning),
		).
		SetStatus(queueentry.StatusPending).
		ClearStartedAt().
		ClearPodID().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue entry for orphaned run: %w", err)
	}

	log.Warn("Orphaned run requeued for resume", "last_heartbeat", lastHeartbeat)
	return nil
}

// RecoverStartupOrphans performs a one-time recovery of work owned by this
// pod when it previously crashed. Called once during startup, before the
// worker pool begins processing. Interrupted runs go back to pending and
// resume from their latest snapshot.
func RecoverStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.Run.Query().
		Where(
			run.StatusEQ(run.StatusRunning),
			run.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) > 0 {
		slog.Warn("Found startup orphans from previous run",
			"pod_id", podID,
			"count", len(orphans))
	}

	for _, r := range orphans {
		if err := requeueOrphanedRun(ctx, client, r, "pod restart"); err != nil {
			slog.Error("Failed to requeue startup orphan",
				"run_id", r.ID,
				"error", err)
			continue
		}
		slog.Info("Startup orphan requeued", "run_id", r.ID)
	}

	// Entries claimed by this pod whose run row never got created go back to
	// pending too; nothing was executed yet.
	_, err = client.QueueEntry.Update().
		Where(
			queueentry.StatusEQ(queueentry.StatusRunning),
			queueentry.PodIDEQ(podID),
		).
		SetStatus(queueentry.StatusPending).
		ClearStartedAt().
		ClearPodID().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue claimed entries: %w", err)
	}

	return nil
}
