package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cenkalti/backoff/v4"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/queueentry"
	"github.com/forgeflow/forgeflow/ent/run"
	"github.com/forgeflow/forgeflow/ent/task"
	"github.com/forgeflow/forgeflow/pkg/board"
	"github.com/forgeflow/forgeflow/pkg/config"
	"github.com/forgeflow/forgeflow/pkg/models"
	"github.com/forgeflow/forgeflow/pkg/queue"
	"github.com/forgeflow/forgeflow/pkg/services"
)

// ValidationRequester posts a validation prompt for the run and starts its
// reply poller. Implemented by the validation coordinator.
type ValidationRequester interface {
	// Request returns the created request id. autoApproved reports that a
	// board permission failure was coerced to approval; note carries the
	// coercion cause for the audit record.
	Request(ctx context.Context, rc *models.RunContext) (requestID int64, autoApproved bool, note string, err error)
}

// AdapterSource hands out the adapter for each stage name. *Stages is the
// production implementation.
type AdapterSource interface {
	Adapter(name string) (Adapter, bool)
}

// Executor implements queue.RunExecutor: it creates or resumes the run for a
// claimed entry and drives it through the stage graph, snapshotting the
// context after every stage.
type Executor struct {
	cfg       *config.Config
	client    *ent.Client
	tasks     *services.TaskService
	runs      *services.RunService
	stages    *services.StageService
	queueSvc  *services.QueueService
	adapters  AdapterSource
	validator ValidationRequester
	board     *board.Service
}

// NewExecutor creates the run executor. board may be nil.
func NewExecutor(cfg *config.Config, client *ent.Client, adapters AdapterSource, validator ValidationRequester, boardSvc *board.Service) *Executor {
	return &Executor{
		cfg:       cfg,
		client:    client,
		tasks:     services.NewTaskService(client),
		runs:      services.NewRunService(client),
		stages:    services.NewStageService(client),
		queueSvc:  services.NewQueueService(client),
		adapters:  adapters,
		validator: validator,
		board:     boardSvc,
	}
}

// Execute drives one worker pass over the entry: from the first stage for a
// fresh run, or from the snapshot's next stage on resume. It returns when
// the run reaches a terminal state or suspends for validation.
func (e *Executor) Execute(ctx context.Context, entry *ent.QueueEntry) *queue.ExecutionResult {
	logger := slog.With("queue_id", entry.ID, "item_id", entry.ExternalItemID)

	t, r, rc, err := e.resolveRun(ctx, entry)
	if err != nil {
		logger.Error("Failed to resolve run for entry", "error", err)
		return &queue.ExecutionResult{
			Status: queueentry.StatusFailed,
			Error:  err,
		}
	}
	logger = logger.With("run_id", r.ID, "task_id", t.ID)

	if err := e.tasks.SetStatus(ctx, t.ID, task.InternalStatusInProgress); err != nil {
		logger.Warn("Failed to mark task in progress", "error", err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return e.interrupted(r, err)
		}

		stage := rc.NextStage
		switch stage {
		case stageDone:
			return e.completeRun(logger, t, r, rc)
		case models.StageHumanValidation:
			result, done := e.requestValidation(ctx, logger, t, r, rc)
			if done {
				return result
			}
			continue
		}

		adapterImpl, ok := e.adapters.Adapter(stage)
		if !ok {
			err := fmt.Errorf("no adapter for stage %q", stage)
			return e.failRun(logger, t, r, rc, stage, err)
		}

		se, err := e.stages.BeginStage(ctx, r.ID, stage, rc.DebugAttempts+1, snapshotOf(rc))
		if err != nil {
			return e.failRun(logger, t, r, rc, stage, err)
		}

		logger.Info("Stage started", "stage", stage, "ordinal", se.Ordinal)
		if err := e.runStage(ctx, adapterImpl, rc); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				_ = e.stages.FailStage(context.Background(), se.ID, err)
				return e.interrupted(r, ctxErr)
			}
			_ = e.stages.FailStage(ctx, se.ID, err)
			return e.failRun(logger, t, r, rc, stage, err)
		}

		next, err := NextStage(stage, rc, e.cfg.Workflow.MaxDebugAttempts)
		if err != nil {
			_ = e.stages.FailStage(ctx, se.ID, err)
			return e.failRun(logger, t, r, rc, stage, err)
		}
		rc.NextStage = next

		if err := e.stages.CompleteStage(ctx, se.ID, rc); err != nil {
			return e.failRun(logger, t, r, rc, stage, err)
		}
		logger.Info("Stage completed", "stage", stage, "next", next)
	}
}

// resolveRun loads the entry's task and run, creating the run on first
// claim, and reconstructs the working context from the latest snapshot.
func (e *Executor) resolveRun(ctx context.Context, entry *ent.QueueEntry) (*ent.Task, *ent.Run, *models.RunContext, error) {
	if entry.TaskID == nil {
		return nil, nil, nil, fmt.Errorf("queue entry has no task")
	}
	t, err := e.tasks.GetTask(ctx, *entry.TaskID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load task: %w", err)
	}

	var r *ent.Run
	if entry.RunID != nil {
		r, err = e.runs.GetRun(ctx, *entry.RunID)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("load run: %w", err)
		}
	} else {
		r, err = e.runs.CreateRun(ctx, services.CreateRunInput{TaskID: t.ID})
		if err != nil {
			return nil, nil, nil, fmt.Errorf("create run: %w", err)
		}
		if err := e.queueSvc.AttachRun(ctx, entry.ID, t.ID, r.ID); err != nil {
			return nil, nil, nil, fmt.Errorf("attach run: %w", err)
		}
		if err := e.tasks.SetLastRun(ctx, t.ID, r.ID); err != nil {
			return nil, nil, nil, fmt.Errorf("record last run: %w", err)
		}
	}

	r, err = e.runs.StartRun(ctx, r.ID, podIDOf(entry))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("start run: %w", err)
	}

	rc, err := e.stages.LatestSnapshot(ctx, r.ID)
	if err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			return nil, nil, nil, fmt.Errorf("load snapshot: %w", err)
		}
		rc = freshContext(t, r)
	}
	return t, r, rc, nil
}

// requestValidation posts the prompt and suspends, or auto-approves on a
// board permission failure. done=false means the loop should continue (the
// auto-approve path).
func (e *Executor) requestValidation(ctx context.Context, logger *slog.Logger, t *ent.Task, r *ent.Run, rc *models.RunContext) (*queue.ExecutionResult, bool) {
	se, err := e.stages.BeginStage(ctx, r.ID, models.StageHumanValidation, rc.RejectionCount+1, snapshotOf(rc))
	if err != nil {
		return e.failRun(logger, t, r, rc, models.StageHumanValidation, err), true
	}

	reqID, autoApproved, note, err := e.validator.Request(ctx, rc)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			_ = e.stages.FailStage(context.Background(), se.ID, err)
			return e.interrupted(r, ctxErr), true
		}
		_ = e.stages.FailStage(ctx, se.ID, err)
		return e.failRun(logger, t, r, rc, models.StageHumanValidation, err), true
	}
	rc.ValidationRequestID = reqID

	if autoApproved {
		logger.Warn("Validation auto-approved", "cause", note)
		rc.AutoApproved = true
		rc.NextStage = models.StageMerge
		if err := e.stages.CompleteStage(ctx, se.ID, rc); err != nil {
			return e.failRun(logger, t, r, rc, models.StageHumanValidation, err), true
		}
		return nil, false
	}

	// Snapshot with NextStage still human_validation: if the verdict write
	// is lost, resume safely re-prompts instead of guessing.
	if err := e.stages.CompleteStage(ctx, se.ID, rc); err != nil {
		return e.failRun(logger, t, r, rc, models.StageHumanValidation, err), true
	}
	if err := e.runs.Suspend(ctx, r.ID); err != nil {
		return e.failRun(logger, t, r, rc, models.StageHumanValidation, err), true
	}
	if err := e.tasks.SetStatus(ctx, t.ID, task.InternalStatusWaitingValidation); err != nil {
		logger.Warn("Failed to mark task waiting", "error", err)
	}

	logger.Info("Run suspended for validation", "validation_request_id", reqID)
	return &queue.ExecutionResult{
		Status: queueentry.StatusWaitingValidation,
		RunID:  r.ID,
	}, true
}

// runStage executes one adapter under the stage timeout with bounded
// exponential retries. Permanent errors and context expiry are not retried.
func (e *Executor) runStage(ctx context.Context, a Adapter, rc *models.RunContext) error {
	stageCtx, cancel := context.WithTimeout(ctx, e.cfg.Workflow.StageTimeout)
	defer cancel()

	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = e.cfg.Workflow.RetryBackoffBase
	expo.MaxInterval = e.cfg.Workflow.RetryBackoffCap

	op := func() error {
		err := a.Execute(stageCtx, rc)
		if err == nil {
			return nil
		}
		var perm *PermanentError
		if errors.As(err, &perm) {
			return backoff.Permanent(err)
		}
		return err
	}
	return backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(expo, 2), stageCtx))
}

// completeRun finalizes a run whose graph walk finished (post-merge).
func (e *Executor) completeRun(logger *slog.Logger, t *ent.Task, r *ent.Run, rc *models.RunContext) *queue.ExecutionResult {
	ctx := context.Background()
	if err := e.runs.FinishRun(ctx, r.ID, run.StatusCompleted, rc.MergedPRURL, ""); err != nil {
		logger.Error("Failed to finish run", "error", err)
	}
	if err := e.tasks.SetStatus(ctx, t.ID, task.InternalStatusCompleted); err != nil {
		logger.Warn("Failed to mark task completed", "error", err)
	}
	e.board.NotifyPRMerged(ctx, rc.ExternalItemID, rc.UserLanguage, rc.MergedPRURL)

	logger.Info("Run completed", "merged_pr_url", rc.MergedPRURL)
	return &queue.ExecutionResult{
		Status:      queueentry.StatusCompleted,
		RunID:       r.ID,
		MergedPRURL: rc.MergedPRURL,
	}
}

// failRun finalizes a run whose stage failed terminally.
func (e *Executor) failRun(logger *slog.Logger, t *ent.Task, r *ent.Run, rc *models.RunContext, stage string, cause error) *queue.ExecutionResult {
	ctx := context.Background()
	logger.Error("Run failed", "stage", stage, "error", cause)

	if err := e.runs.FinishRun(ctx, r.ID, run.StatusFailed, "", cause.Error()); err != nil {
		logger.Error("Failed to record run failure", "error", err)
	}
	if err := e.tasks.SetStatus(ctx, t.ID, task.InternalStatusFailed); err != nil {
		logger.Warn("Failed to mark task failed", "error", err)
	}
	e.board.NotifyRunFailed(ctx, rc.ExternalItemID, rc.UserLanguage, stage, cause.Error())

	return &queue.ExecutionResult{
		Status: queueentry.StatusFailed,
		RunID:  r.ID,
		Error:  cause,
	}
}

// interrupted maps context expiry onto the run and entry without touching
// the task: the sweeper or a new webhook decides what happens next.
func (e *Executor) interrupted(r *ent.Run, ctxErr error) *queue.ExecutionResult {
	ctx := context.Background()
	if errors.Is(ctxErr, context.DeadlineExceeded) {
		_ = e.runs.FinishRun(ctx, r.ID, run.StatusTimeout, "", "workflow timeout")
		return &queue.ExecutionResult{
			Status: queueentry.StatusTimeout,
			RunID:  r.ID,
			Error:  ctxErr,
		}
	}
	_ = e.runs.FinishRun(ctx, r.ID, run.StatusFailed, "", "cancelled")
	return &queue.ExecutionResult{
		Status: queueentry.StatusCancelled,
		RunID:  r.ID,
		Error:  ctxErr,
	}
}

// freshContext builds the initial working context for a new run.
func freshContext(t *ent.Task, r *ent.Run) *models.RunContext {
	rc := &models.RunContext{
		TaskID:         t.ID,
		RunID:          r.ID,
		ExternalItemID: t.ExternalItemID,
		Title:          t.Title,
		Description:    t.Description,
		RepositoryURL:  t.RepositoryURL,
		UserLanguage:   t.UserLanguage,
		NextStage:      models.StagePrepare,
	}
	if r.NewRequirements != "" {
		rc.Description = t.Description + "\n\nAdditional requirements:\n" + r.NewRequirements
	}
	return rc
}

func snapshotOf(rc *models.RunContext) map[string]any {
	m, err := rc.ToMap()
	if err != nil {
		return nil
	}
	return m
}

func podIDOf(entry *ent.QueueEntry) string {
	if entry.PodID != nil {
		return *entry.PodID
	}
	return ""
}
