package services

import (
	"context"
	"fmt"
	"time"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/run"
)

// CreateRunInput describes a new execution attempt of a task.
type CreateRunInput struct {
	TaskID              int64
	ParentRunID         *int64
	IsReactivation      bool
	ReactivationContext string
	NewRequirements     string
}

// RunService manages run lifecycle rows: creation, start/heartbeat, and
// terminal status writes.
type RunService struct {
	client *ent.Client
}

// NewRunService creates a new RunService.
func NewRunService(client *ent.Client) *RunService {
	if client == nil {
		panic("NewRunService: client must not be nil")
	}
	return &RunService{client: client}
}

// CreateRun creates a run in "pending" status. The partial unique index on
// (task_id) WHERE status='running' enforces at most one running run per task
// at the database level; this only creates the pending row.
func (s *RunService) CreateRun(ctx context.Context, input CreateRunInput) (*ent.Run, error) {
	if input.TaskID == 0 {
		return nil, NewValidationError("task_id", "task id is required")
	}
	builder := s.client.Run.Create().
		SetTaskID(input.TaskID).
		SetIsReactivation(input.IsReactivation)
	if input.ParentRunID != nil {
		builder.SetParentRunID(*input.ParentRunID)
	}
	if input.ReactivationContext != "" {
		builder.SetReactivationContext(input.ReactivationContext)
	}
	if input.NewRequirements != "" {
		builder.SetNewRequirements(input.NewRequirements)
	}
	r, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create run: %w", err)
	}
	return r, nil
}

// GetRun fetches one run by id.
func (s *RunService) GetRun(ctx context.Context, runID int64) (*ent.Run, error) {
	r, err := s.client.Run.Get(ctx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return r, nil
}

// StartRun transitions pending (or waiting_validation, on resume) to running
// and stamps the owning pod. The guarded update plus the partial unique index
// make a double start fail rather than fork.
func (s *RunService) StartRun(ctx context.Context, runID int64, podID string) (*ent.Run, error) {
	now := time.Now()
	n, err := s.client.Run.Update().
		Where(
			run.IDEQ(runID),
			run.StatusIn(run.StatusPending, run.StatusWaitingValidation),
		).
		SetStatus(run.StatusRunning).
		SetPodID(podID).
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start run: %w", err)
	}
	if n == 0 {
		return nil, ErrInvalidTransition
	}
	return s.GetRun(ctx, runID)
}

// Heartbeat updates last_heartbeat_at for orphan detection.
func (s *RunService) Heartbeat(ctx context.Context, runID int64) error {
	if err := s.client.Run.UpdateOneID(runID).
		SetLastHeartbeatAt(time.Now()).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update run heartbeat: %w", err)
	}
	return nil
}

// Suspend parks a running run while a validation is outstanding. The per-task
// running slot frees up immediately.
func (s *RunService) Suspend(ctx context.Context, runID int64) error {
	n, err := s.client.Run.Update().
		Where(
			run.IDEQ(runID),
			run.StatusEQ(run.StatusRunning),
		).
		SetStatus(run.StatusWaitingValidation).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to suspend run: %w", err)
	}
	if n == 0 {
		return ErrInvalidTransition
	}
	return nil
}

// FinishRun writes a terminal status. mergedPRURL and errMsg are optional.
func (s *RunService) FinishRun(ctx context.Context, runID int64, status run.Status, mergedPRURL, errMsg string) error {
	switch status {
	case run.StatusCompleted, run.StatusFailed, run.StatusAbandoned, run.StatusTimeout:
	default:
		return NewValidationError("status", fmt.Sprintf("'%s' is not a terminal run status", status))
	}
	update := s.client.Run.UpdateOneID(runID).
		SetStatus(status).
		SetCompletedAt(time.Now())
	if mergedPRURL != "" {
		update.SetLastMergedPrURL(mergedPRURL)
	}
	if errMsg != "" {
		update.SetErrorMessage(errMsg)
	}
	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to finish run: %w", err)
	}
	return nil
}

// ListRunsForTask returns the task's runs, newest first.
func (s *RunService) ListRunsForTask(ctx context.Context, taskID int64) ([]*ent.Run, error) {
	runs, err := s.client.Run.Query().
		Where(run.TaskIDEQ(taskID)).
		Order(ent.Desc(run.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// FindOrphanedRuns returns running runs whose heartbeat is older than the
// threshold, or that never heartbeat and started before it.
func (s *RunService) FindOrphanedRuns(ctx context.Context, threshold time.Duration) ([]*ent.Run, error) {
	cutoff := time.Now().Add(-threshold)
	runs, err := s.client.Run.Query().
		Where(
			run.StatusEQ(run.StatusRunning),
			run.Or(
				run.LastHeartbeatAtLT(cutoff),
				run.And(
					run.LastHeartbeatAtIsNil(),
					run.StartedAtLT(cutoff),
				),
			),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find orphaned runs: %w", err)
	}
	return runs, nil
}
