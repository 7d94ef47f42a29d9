// Package reactivation decides whether a follow-up comment on a finished
// task should start a new run, and creates that run when it should.
package reactivation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/forgeflow/forgeflow/ent"
	entTask "github.com/forgeflow/forgeflow/ent/task"
	"github.com/forgeflow/forgeflow/pkg/broker"
	"github.com/forgeflow/forgeflow/pkg/config"
	"github.com/forgeflow/forgeflow/pkg/ingest"
	"github.com/forgeflow/forgeflow/pkg/llm"
	"github.com/forgeflow/forgeflow/pkg/services"
)

// Outcome reports what the analyzer did with a comment.
type Outcome struct {
	Reactivated bool
	Reason      string
	Confidence  float64
	RunID       int64
	QueueID     string
}

// Analyzer scores follow-up comments for work intent and reactivates
// eligible tasks. A model refines the score when configured; the keyword
// heuristic is the floor.
type Analyzer struct {
	cfg      *config.Config
	tasks    *services.TaskService
	runs     *services.RunService
	queueSvc *services.QueueService
	model    llm.Client
	pub      *broker.Publisher
	logger   *slog.Logger
}

// NewAnalyzer creates the analyzer. model and publisher may be nil.
func NewAnalyzer(cfg *config.Config, client *ent.Client, model llm.Client, pub *broker.Publisher) *Analyzer {
	return &Analyzer{
		cfg:      cfg,
		tasks:    services.NewTaskService(client),
		runs:     services.NewRunService(client),
		queueSvc: services.NewQueueService(client),
		model:    model,
		pub:      pub,
		logger:   slog.Default().With("component", "reactivation"),
	}
}

// Analyze evaluates a human comment on a known task. It only ever acts on
// tasks in a terminal state: active tasks are the validation coordinator's
// business, and the ingress already filtered agent-authored comments.
func (a *Analyzer) Analyze(ctx context.Context, t *ent.Task, comment string) (*Outcome, error) {
	logger := a.logger.With("task_id", t.ID, "item_id", t.ExternalItemID)

	if ingest.IsAgentComment(comment) {
		return &Outcome{Reason: "agent-authored comment"}, nil
	}
	if !eligible(t.InternalStatus) {
		return &Outcome{Reason: fmt.Sprintf("task status %s is not reactivation-eligible", t.InternalStatus)}, nil
	}
	if t.IsLocked {
		return &Outcome{Reason: "task is locked"}, nil
	}
	if t.CooldownUntil != nil && t.CooldownUntil.After(time.Now()) {
		return &Outcome{Reason: "task is cooling down"}, nil
	}

	confidence, requirements := a.score(ctx, t, comment)
	logger.Info("Scored follow-up comment", "confidence", confidence)
	if confidence < a.cfg.Reactivation.ConfidenceThreshold {
		return &Outcome{
			Reason:     fmt.Sprintf("confidence %.2f below threshold %.2f", confidence, a.cfg.Reactivation.ConfidenceThreshold),
			Confidence: confidence,
		}, nil
	}

	t, err := a.tasks.BeginReactivation(ctx, t.ID, a.cfg.Reactivation.Cooldown)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTransition) {
			return &Outcome{Reason: "task locked concurrently"}, nil
		}
		return nil, fmt.Errorf("begin reactivation: %w", err)
	}

	r, err := a.runs.CreateRun(ctx, services.CreateRunInput{
		TaskID:              t.ID,
		ParentRunID:         t.LastRunID,
		IsReactivation:      true,
		ReactivationContext: comment,
		NewRequirements:     requirements,
	})
	if err != nil {
		return nil, fmt.Errorf("create reactivation run: %w", err)
	}
	if err := a.tasks.SetLastRun(ctx, t.ID, r.ID); err != nil {
		logger.Warn("Failed to record last run", "error", err)
	}

	runID := r.ID
	taskID := t.ID
	entry, _, err := a.queueSvc.Enqueue(ctx, services.EnqueueInput{
		ExternalItemID: t.ExternalItemID,
		TaskID:         &taskID,
		RunID:          &runID,
		Priority:       priorityOf(t.Priority),
		Payload:        map[string]any{"reactivation": true, "comment": comment},
	})
	if err != nil {
		return nil, fmt.Errorf("enqueue reactivation: %w", err)
	}

	a.pub.Publish(ctx, broker.SubjectWorkflows, broker.Event{
		Kind:   "reactivated",
		ItemID: t.ExternalItemID,
		TaskID: t.ID,
		RunID:  r.ID,
		Detail: map[string]any{"confidence": confidence, "queue_id": entry.ID},
	})
	logger.Info("Task reactivated", "run_id", r.ID, "queue_id", entry.ID, "confidence", confidence)

	return &Outcome{
		Reactivated: true,
		Confidence:  confidence,
		RunID:       r.ID,
		QueueID:     entry.ID,
	}, nil
}

// score estimates how likely the comment asks for more work, and extracts
// the new requirements when it does.
func (a *Analyzer) score(ctx context.Context, t *ent.Task, comment string) (float64, string) {
	heuristic := heuristicScore(comment)
	if a.model == nil {
		return heuristic, comment
	}

	resp, err := a.model.Complete(ctx, llm.Request{
		System: `A software task previously finished. A human has now commented on it.
Decide whether the comment asks for more work (a bug report, a change request, new requirements)
or is just conversation (thanks, acknowledgement, chatter).
Respond with JSON only: {"wants_work": true/false, "confidence": 0.0-1.0, "requirements": "the requested work, in your words"}`,
		Prompt:    fmt.Sprintf("Task: %s\n\nComment:\n%s", t.Title, comment),
		MaxTokens: 512,
	})
	if err != nil {
		a.logger.Warn("Model scoring failed, using heuristic", "error", err)
		return heuristic, comment
	}
	var out struct {
		WantsWork    bool    `json:"wants_work"`
		Confidence   float64 `json:"confidence"`
		Requirements string  `json:"requirements"`
	}
	if err := llm.DecodeJSON(resp.Text, &out); err != nil {
		a.logger.Warn("Unparseable model score, using heuristic", "error", err)
		return heuristic, comment
	}
	if !out.WantsWork {
		return 0, ""
	}
	if out.Confidence < 0 || out.Confidence > 1 {
		return heuristic, comment
	}
	requirements := strings.TrimSpace(out.Requirements)
	if requirements == "" {
		requirements = comment
	}
	return out.Confidence, requirements
}

// Work-intent keywords for the heuristic floor.
var (
	workWords = []string{
		"fix", "bug", "error", "broken", "fail", "doesn't work", "does not work", "still",
		"add", "change", "update", "missing", "wrong", "please", "need", "should",
		"arregla", "falla", "añade", "cambia", "corrige",
		"ajoute", "modifie", "erreur",
		"conserte", "adicione", "mude", "erro",
	}
	chatterWords = []string{
		"thanks", "thank you", "great", "awesome", "perfect", "nice", "good job", "well done",
		"gracias", "perfecto", "genial",
		"merci", "parfait", "super",
		"obrigado", "obrigada", "perfeito", "ótimo",
	}
)

// heuristicScore is the deterministic fallback scorer.
func heuristicScore(comment string) float64 {
	text := strings.ToLower(comment)
	if strings.TrimSpace(text) == "" {
		return 0
	}

	work := 0
	for _, w := range workWords {
		if strings.Contains(text, w) {
			work++
		}
	}
	chatter := 0
	for _, w := range chatterWords {
		if strings.Contains(text, w) {
			chatter++
		}
	}

	switch {
	case work == 0 && chatter > 0:
		return 0.05
	case work == 0:
		// Unknown content: a long comment on a finished task usually means
		// something; a short one usually doesn't.
		if len(strings.Fields(text)) >= 10 {
			return 0.3
		}
		return 0.1
	case chatter > work:
		return 0.15
	default:
		score := 0.3 + 0.15*float64(work)
		if score > 0.95 {
			score = 0.95
		}
		return score
	}
}

// eligible reports whether a task status allows reactivation.
func eligible(status entTask.InternalStatus) bool {
	switch status {
	case entTask.InternalStatusCompleted,
		entTask.InternalStatusFailed,
		entTask.InternalStatusAbandoned,
		entTask.InternalStatusQualityCheck:
		return true
	}
	return false
}

// priorityOf maps the task's priority label to a queue priority.
func priorityOf(p entTask.Priority) int {
	switch p {
	case entTask.PriorityUrgent:
		return 9
	case entTask.PriorityHigh:
		return 7
	case entTask.PriorityLow:
		return 3
	default:
		return 5
	}
}
