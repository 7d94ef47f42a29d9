package validation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/queueentry"
	"github.com/forgeflow/forgeflow/ent/run"
	entTask "github.com/forgeflow/forgeflow/ent/task"
	"github.com/forgeflow/forgeflow/pkg/board"
	"github.com/forgeflow/forgeflow/pkg/broker"
	"github.com/forgeflow/forgeflow/pkg/config"
	"github.com/forgeflow/forgeflow/pkg/llm"
	"github.com/forgeflow/forgeflow/pkg/models"
	"github.com/forgeflow/forgeflow/pkg/services"
	"github.com/forgeflow/forgeflow/pkg/workflow"
)

// Coordinator owns the human-validation lifecycle: it posts prompts, runs a
// poller per pending request, applies verdicts to the suspended run, and
// re-queues or finishes the workflow accordingly.
type Coordinator struct {
	cfg         *config.Config
	client      *ent.Client
	validations *services.ValidationService
	tasks       *services.TaskService
	runs        *services.RunService
	stages      *services.StageService
	queueSvc    *services.QueueService
	board       *board.Service
	interp      *Interpreter
	publisher   *broker.Publisher
	logger      *slog.Logger

	baseCtx  context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	mu       sync.Mutex
	tracking map[int64]bool // request id → poller running
}

// NewCoordinator creates the coordinator. board may be nil (every prompt
// then auto-approves); model may be nil (rule-based interpretation only);
// publisher may be nil.
func NewCoordinator(cfg *config.Config, client *ent.Client, boardSvc *board.Service, model llm.Client, publisher *broker.Publisher) *Coordinator {
	baseCtx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		cfg:         cfg,
		client:      client,
		validations: services.NewValidationService(client),
		tasks:       services.NewTaskService(client),
		runs:        services.NewRunService(client),
		stages:      services.NewStageService(client),
		queueSvc:    services.NewQueueService(client),
		board:       boardSvc,
		interp:      NewInterpreter(model),
		publisher:   publisher,
		logger:      slog.Default().With("component", "validation-coordinator"),
		baseCtx:     baseCtx,
		cancel:      cancel,
		tracking:    make(map[int64]bool),
	}
}

// Request posts the validation prompt for the run and starts its poller.
// Implements the executor's ValidationRequester contract: a board
// permissions failure is coerced to approval so a misconfigured token can
// never strand a finished change.
func (c *Coordinator) Request(ctx context.Context, rc *models.RunContext) (int64, bool, string, error) {
	body := board.Message(rc.UserLanguage, "validation_prompt", rc.PRURL, rc.QAReport)

	var parentID *int64
	if rc.ValidationRequestID != 0 {
		id := rc.ValidationRequestID
		parentID = &id
	}

	t, err := c.tasks.GetTask(ctx, rc.TaskID)
	if err != nil {
		return 0, false, "", fmt.Errorf("load task for validation: %w", err)
	}

	req, err := c.validations.CreateRequest(ctx, services.CreateValidationInput{
		RunID:          rc.RunID,
		ParentID:       parentID,
		Body:           body,
		RequesterID:    t.CreatorID,
		RequesterEmail: t.CreatorEmail,
		RejectionCount: rc.RejectionCount,
		TimeoutSeconds: int(c.cfg.Validation.Timeout.Seconds()),
	})
	if err != nil {
		return 0, false, "", err
	}

	if c.board == nil {
		note := "auto-approved: board integration disabled"
		if err := c.autoApprove(ctx, req, note); err != nil {
			return 0, false, "", err
		}
		return req.ID, true, note, nil
	}

	commentID, err := c.board.PostSignedComment(ctx, rc.ExternalItemID, body)
	if err != nil {
		if board.IsPermissionError(err) {
			note := fmt.Sprintf("auto-approved: cannot post validation prompt (%v)", err)
			if aerr := c.autoApprove(ctx, req, note); aerr != nil {
				return 0, false, "", aerr
			}
			return req.ID, true, note, nil
		}
		return 0, false, "", fmt.Errorf("post validation prompt: %w", err)
	}
	if err := c.validations.AttachComment(ctx, req.ID, commentID); err != nil {
		c.logger.Warn("Failed to attach comment id", "validation_request_id", req.ID, "error", err)
	}

	c.publish(ctx, "requested", rc.ExternalItemID, rc.RunID, req.ID)
	c.startPoller(req, rc.ExternalItemID, rc.UserLanguage, commentID)
	return req.ID, false, "", nil
}

// RestartPending restarts pollers for requests that were pending when the
// previous process died. Called once on startup.
func (c *Coordinator) RestartPending(ctx context.Context) error {
	pending, err := c.validations.ListPending(ctx)
	if err != nil {
		return err
	}
	for _, req := range pending {
		r, err := c.runs.GetRun(ctx, req.RunID)
		if err != nil {
			c.logger.Error("Cannot load run for pending validation", "validation_request_id", req.ID, "error", err)
			continue
		}
		t, err := c.tasks.GetTask(ctx, r.TaskID)
		if err != nil {
			c.logger.Error("Cannot load task for pending validation", "validation_request_id", req.ID, "error", err)
			continue
		}
		c.startPoller(req, t.ExternalItemID, t.UserLanguage, req.ExternalCommentID)
		c.logger.Info("Restarted validation poller", "validation_request_id", req.ID, "item_id", t.ExternalItemID)
	}
	return nil
}

// Stop cancels all pollers and waits for them to exit.
func (c *Coordinator) Stop() {
	c.cancel()
	c.wg.Wait()
}

func (c *Coordinator) startPoller(req *ent.ValidationRequest, itemID, lang, commentID string) {
	c.mu.Lock()
	if c.tracking[req.ID] {
		c.mu.Unlock()
		return
	}
	c.tracking[req.ID] = true
	c.mu.Unlock()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer func() {
			c.mu.Lock()
			delete(c.tracking, req.ID)
			c.mu.Unlock()
		}()
		c.poll(c.baseCtx, req, itemID, lang, commentID)
	}()
}

// autoApprove resolves the request as approved with a system note and leaves
// the run context pointing at merge. No poller is started.
func (c *Coordinator) autoApprove(ctx context.Context, req *ent.ValidationRequest, note string) error {
	_, err := c.validations.Resolve(ctx, services.ResolveValidationInput{
		RequestID:  req.ID,
		RawReply:   "",
		Verdict:    models.VerdictApprove,
		Confidence: 1,
		Method:     models.MethodRule,
		SystemNote: note,
	})
	if err != nil && !errors.Is(err, services.ErrInvalidTransition) {
		return err
	}
	return nil
}

// applyVerdict resolves the request and moves the suspended run: approve
// re-queues toward merge, reject re-queues toward implement with the
// instructions on the context, abandon (including the coerced third reject)
// finishes everything.
func (c *Coordinator) applyVerdict(ctx context.Context, req *ent.ValidationRequest, itemID, lang string, interp models.Interpretation, reviewerID, reviewerEmail, rawReply string) {
	logger := c.logger.With("validation_request_id", req.ID, "run_id", req.RunID, "verdict", interp.Verdict)

	newCount := req.RejectionCount
	if interp.Verdict == models.VerdictReject {
		newCount++
	}
	next, effective, terminal := workflow.VerdictNextStage(interp.Verdict, newCount, c.cfg.Validation.MaxRejections)

	systemNote := ""
	if effective != interp.Verdict {
		systemNote = fmt.Sprintf("rejection %d reached the configured limit; coerced to abandon", newCount)
		logger.Warn("Rejection limit reached, abandoning", "rejection_count", newCount)
	}

	if _, err := c.validations.Resolve(ctx, services.ResolveValidationInput{
		RequestID:     req.ID,
		RawReply:      rawReply,
		Verdict:       effective,
		Confidence:    interp.Confidence,
		Method:        interp.Method,
		Instructions:  interp.Instructions,
		ReviewerID:    reviewerID,
		ReviewerEmail: reviewerEmail,
		SystemNote:    systemNote,
	}); err != nil {
		if errors.Is(err, services.ErrInvalidTransition) {
			logger.Info("Validation already resolved, ignoring verdict")
			return
		}
		logger.Error("Failed to resolve validation", "error", err)
		return
	}
	c.publish(ctx, string(effective), itemID, req.RunID, req.ID)

	if terminal {
		c.finishAbandoned(ctx, req, itemID, lang, systemNote != "", newCount)
		return
	}

	// Rewrite the snapshot so the resumed run enters the verdict's stage.
	rc, err := c.stages.LatestSnapshot(ctx, req.RunID)
	if err != nil {
		logger.Error("Failed to load snapshot for verdict", "error", err)
		return
	}
	rc.NextStage = next
	if effective == models.VerdictReject {
		rc.RejectionCount = newCount
		if interp.Instructions != "" {
			rc.ModInstructions = append(rc.ModInstructions, interp.Instructions)
		}
	}
	se, err := c.stages.BeginStage(ctx, req.RunID, models.StageHumanValidation, newCount+1, map[string]any{
		"verdict":               string(effective),
		"validation_request_id": req.ID,
	})
	if err != nil {
		logger.Error("Failed to record verdict stage", "error", err)
		return
	}
	if err := c.stages.CompleteStage(ctx, se.ID, rc); err != nil {
		logger.Error("Failed to snapshot verdict", "error", err)
		return
	}

	c.requeueRun(ctx, req.RunID, logger)
	logger.Info("Run re-queued after verdict", "next_stage", next)
}

// requeueRun moves the suspended run and its queue entry back to pending so
// a worker re-claims and resumes it. The worker may still be writing the
// waiting_validation status when a fast reply lands, so both transitions
// retry briefly.
func (c *Coordinator) requeueRun(ctx context.Context, runID int64, logger *slog.Logger) {
	for attempt := 0; attempt < 10; attempt++ {
		n, err := c.client.Run.Update().
			Where(
				run.IDEQ(runID),
				run.StatusEQ(run.StatusWaitingValidation),
			).
			SetStatus(run.StatusPending).
			Save(ctx)
		if err != nil {
			logger.Error("Failed to move run to pending", "error", err)
			return
		}
		if n > 0 {
			break
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Second):
		}
	}

	entry, err := c.entryForRun(ctx, runID)
	if err != nil {
		logger.Error("No queue entry to resume", "error", err)
		return
	}
	for attempt := 0; attempt < 10; attempt++ {
		err := c.queueSvc.Resume(ctx, entry.ID)
		if err == nil {
			return
		}
		if !errors.Is(err, services.ErrInvalidTransition) {
			logger.Error("Failed to resume queue entry", "queue_id", entry.ID, "error", err)
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Second):
		}
	}
	logger.Error("Queue entry never reached waiting_validation", "queue_id", entry.ID)
}

// finishAbandoned ends the run after an abandon verdict (explicit or the
// coerced rejection limit). The task becomes failed: a later comment can
// still reactivate it.
func (c *Coordinator) finishAbandoned(ctx context.Context, req *ent.ValidationRequest, itemID, lang string, coerced bool, rejections int) {
	logger := c.logger.With("run_id", req.RunID)

	if err := c.runs.FinishRun(ctx, req.RunID, run.StatusAbandoned, "", "abandoned by validation verdict"); err != nil {
		logger.Error("Failed to mark run abandoned", "error", err)
	}
	if entry, err := c.entryForRun(ctx, req.RunID); err == nil {
		if err := c.queueSvc.Finish(ctx, entry.ID, queueentry.StatusCancelled); err != nil {
			logger.Warn("Failed to finish queue entry", "queue_id", entry.ID, "error", err)
		}
	}

	r, err := c.runs.GetRun(ctx, req.RunID)
	if err == nil {
		if err := c.tasks.SetStatus(ctx, r.TaskID, entTask.InternalStatusFailed); err != nil {
			logger.Warn("Failed to mark task failed", "error", err)
		}
	}

	if coerced {
		c.board.NotifyRunAbandoned(ctx, itemID, lang, "reject_limit", rejections)
	} else {
		c.board.NotifyRunAbandoned(ctx, itemID, lang, "explicit_stop")
	}
	logger.Info("Run abandoned", "coerced", coerced)
}

// expire handles an unanswered validation window: the run fails and a new
// comment on the item starts a fresh workflow.
func (c *Coordinator) expire(ctx context.Context, req *ent.ValidationRequest, itemID, lang string) {
	logger := c.logger.With("validation_request_id", req.ID, "run_id", req.RunID)

	if err := c.validations.Expire(ctx, req.ID); err != nil {
		if errors.Is(err, services.ErrInvalidTransition) {
			return // resolved in the meantime
		}
		logger.Error("Failed to expire validation", "error", err)
		return
	}
	if err := c.runs.FinishRun(ctx, req.RunID, run.StatusFailed, "", "validation window expired"); err != nil {
		logger.Error("Failed to fail run after expiry", "error", err)
	}
	if entry, err := c.entryForRun(ctx, req.RunID); err == nil {
		if err := c.queueSvc.Finish(ctx, entry.ID, queueentry.StatusTimeout); err != nil {
			logger.Warn("Failed to finish queue entry", "queue_id", entry.ID, "error", err)
		}
	}
	r, err := c.runs.GetRun(ctx, req.RunID)
	if err == nil {
		if err := c.tasks.SetStatus(ctx, r.TaskID, entTask.InternalStatusFailed); err != nil {
			logger.Warn("Failed to mark task failed", "error", err)
		}
	}

	c.board.NotifyValidationTimeout(ctx, itemID, lang)
	c.publish(ctx, "expired", itemID, req.RunID, req.ID)
	logger.Warn("Validation window expired")
}

// entryForRun finds the waiting (or otherwise live) queue entry of a run.
func (c *Coordinator) entryForRun(ctx context.Context, runID int64) (*ent.QueueEntry, error) {
	entry, err := c.client.QueueEntry.Query().
		Where(
			queueentry.RunIDEQ(runID),
			queueentry.StatusIn(
				queueentry.StatusWaitingValidation,
				queueentry.StatusRunning,
				queueentry.StatusPending,
			),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return entry, nil
}

func (c *Coordinator) publish(ctx context.Context, kind, itemID string, runID, requestID int64) {
	c.publisher.Publish(ctx, broker.SubjectValidations, broker.Event{
		Kind:   kind,
		ItemID: itemID,
		RunID:  runID,
		Detail: map[string]any{"validation_request_id": requestID},
	})
}
