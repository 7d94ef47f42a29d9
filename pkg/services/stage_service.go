package services

import (
	"context"
	"fmt"
	"time"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/stageexecution"
	"github.com/forgeflow/forgeflow/pkg/models"
)

// StageService records stage executions and their run-context snapshots.
// The snapshot written with each completed stage is the crash-recovery
// source of truth: recovery loads the latest one and re-enters NextStage.
type StageService struct {
	client *ent.Client
}

// NewStageService creates a new StageService.
func NewStageService(client *ent.Client) *StageService {
	if client == nil {
		panic("NewStageService: client must not be nil")
	}
	return &StageService{client: client}
}

// BeginStage creates a StageExecution row in "started" status with the next
// ordinal for the run.
func (s *StageService) BeginStage(ctx context.Context, runID int64, stageName string, attempt int, input map[string]any) (*ent.StageExecution, error) {
	if stageName == "" {
		return nil, NewValidationError("stage_name", "stage name is required")
	}
	if attempt < 1 {
		attempt = 1
	}

	ordinal, err := s.nextOrdinal(ctx, runID)
	if err != nil {
		return nil, err
	}

	builder := s.client.StageExecution.Create().
		SetRunID(runID).
		SetStageName(stageName).
		SetOrdinal(ordinal).
		SetAttempt(attempt)
	if input != nil {
		builder.SetInput(input)
	}
	se, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin stage: %w", err)
	}
	return se, nil
}

// CompleteStage marks the execution succeeded and stores the post-stage run
// context snapshot in the output column.
func (s *StageService) CompleteStage(ctx context.Context, stageExecutionID int64, rc *models.RunContext) error {
	snapshot, err := rc.ToMap()
	if err != nil {
		return err
	}
	if err := s.client.StageExecution.UpdateOneID(stageExecutionID).
		SetStatus(stageexecution.StatusSucceeded).
		SetOutput(snapshot).
		SetCompletedAt(time.Now()).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to complete stage: %w", err)
	}
	return nil
}

// FailStage marks the execution failed with its error message.
func (s *StageService) FailStage(ctx context.Context, stageExecutionID int64, stageErr error) error {
	update := s.client.StageExecution.UpdateOneID(stageExecutionID).
		SetStatus(stageexecution.StatusFailed).
		SetCompletedAt(time.Now())
	if stageErr != nil {
		update.SetErrorMessage(stageErr.Error())
	}
	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to record stage failure: %w", err)
	}
	return nil
}

// SkipStage records a skipped stage (e.g. debug when tests already pass).
func (s *StageService) SkipStage(ctx context.Context, runID int64, stageName, reason string) error {
	ordinal, err := s.nextOrdinal(ctx, runID)
	if err != nil {
		return err
	}
	builder := s.client.StageExecution.Create().
		SetRunID(runID).
		SetStageName(stageName).
		SetOrdinal(ordinal).
		SetStatus(stageexecution.StatusSkipped).
		SetCompletedAt(time.Now())
	if reason != "" {
		builder.SetErrorMessage(reason)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("failed to record skipped stage: %w", err)
	}
	return nil
}

// LatestSnapshot loads the most recent succeeded stage's run-context snapshot
// for the run. Returns ErrNotFound when the run has no completed stage yet.
func (s *StageService) LatestSnapshot(ctx context.Context, runID int64) (*models.RunContext, error) {
	se, err := s.client.StageExecution.Query().
		Where(
			stageexecution.RunIDEQ(runID),
			stageexecution.StatusEQ(stageexecution.StatusSucceeded),
			stageexecution.OutputNotNil(),
		).
		Order(ent.Desc(stageexecution.FieldOrdinal)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load latest snapshot: %w", err)
	}
	return models.RunContextFromMap(se.Output)
}

// ListStages returns the run's stage executions in execution order.
func (s *StageService) ListStages(ctx context.Context, runID int64) ([]*ent.StageExecution, error) {
	stages, err := s.client.StageExecution.Query().
		Where(stageexecution.RunIDEQ(runID)).
		Order(ent.Asc(stageexecution.FieldOrdinal)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stages: %w", err)
	}
	return stages, nil
}

// nextOrdinal returns max(ordinal)+1 for the run. Single-writer per run, so
// a plain read suffices.
func (s *StageService) nextOrdinal(ctx context.Context, runID int64) (int, error) {
	last, err := s.client.StageExecution.Query().
		Where(stageexecution.RunIDEQ(runID)).
		Order(ent.Desc(stageexecution.FieldOrdinal)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 1, nil
		}
		return 0, fmt.Errorf("failed to query last stage ordinal: %w", err)
	}
	return last.Ordinal + 1, nil
}
