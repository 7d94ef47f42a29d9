package workflow

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeflow/forgeflow/ent/queueentry"
	"github.com/forgeflow/forgeflow/ent/run"
	"github.com/forgeflow/forgeflow/pkg/config"
	"github.com/forgeflow/forgeflow/pkg/models"
	"github.com/forgeflow/forgeflow/pkg/services"
	testdb "github.com/forgeflow/forgeflow/test/database"
)

// scriptedAdapters replaces the production stage adapters with recorders so
// the executor's graph walk and snapshotting can be driven without a
// repository, model, or code host.
type scriptedAdapters struct {
	invoked []string
	fail    map[string]error
}

func (s *scriptedAdapters) Adapter(name string) (Adapter, bool) {
	return &adapter{name: name, fn: func(ctx context.Context, rc *models.RunContext) error {
		s.invoked = append(s.invoked, name)
		if err := s.fail[name]; err != nil {
			return err
		}
		switch name {
		case models.StagePrepare:
			rc.Branch = "forgeflow/scripted"
		case models.StageAnalyze:
			rc.Plan = &models.AnalysisPlan{Summary: "scripted plan"}
		case models.StageImplement:
			rc.ChangedFiles = []string{"api/health.go"}
		case models.StageTest:
			rc.TestsPassed = true
		case models.StageQA:
			rc.QAReport = "looks fine"
		case models.StageFinalizePR:
			rc.PRNumber = 7
			rc.PRURL = "https://github.com/acme/api/pull/7"
		case models.StageMerge:
			rc.MergedPRURL = rc.PRURL
		}
		return nil
	}}, true
}

// promptStub stands in for the validation coordinator: it records prompts and
// always suspends the run.
type promptStub struct {
	requests int
}

func (v *promptStub) Request(ctx context.Context, rc *models.RunContext) (int64, bool, string, error) {
	v.requests++
	return int64(v.requests), false, "", nil
}

func executorTestConfig() *config.Config {
	cfg := &config.Config{
		Queue:      config.DefaultQueueConfig(),
		Workflow:   config.DefaultWorkflowConfig(),
		Validation: config.DefaultValidationConfig(),
	}
	return cfg
}

func TestExecutor_SuspendAndResumeFromSnapshot(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	tasks := services.NewTaskService(client.Client)
	queueSvc := services.NewQueueService(client.Client)
	stageSvc := services.NewStageService(client.Client)
	runs := services.NewRunService(client.Client)

	created, _, err := tasks.UpsertTask(ctx, services.UpsertTaskInput{
		ExternalItemID: uuid.New().String(),
		Title:          "Add health endpoint",
		Description:    "GET /v1/health",
		RepositoryURL:  "https://github.com/acme/api",
	})
	require.NoError(t, err)

	taskID := created.ID
	entry, _, err := queueSvc.Enqueue(ctx, services.EnqueueInput{
		ExternalItemID: created.ExternalItemID,
		TaskID:         &taskID,
	})
	require.NoError(t, err)
	require.NoError(t, client.QueueEntry.UpdateOneID(entry.ID).
		SetStatus(queueentry.StatusRunning).
		SetStartedAt(time.Now()).
		Exec(ctx))

	adapters := &scriptedAdapters{}
	validator := &promptStub{}
	executor := NewExecutor(executorTestConfig(), client.Client, adapters, validator, nil)

	t.Run("first pass runs the graph and suspends for validation", func(t *testing.T) {
		entry, err := client.QueueEntry.Get(ctx, entry.ID)
		require.NoError(t, err)

		res := executor.Execute(ctx, entry)
		assert.Equal(t, queueentry.StatusWaitingValidation, res.Status)
		assert.NotZero(t, res.RunID)
		assert.Equal(t, []string{
			models.StagePrepare, models.StageAnalyze, models.StageImplement,
			models.StageTest, models.StageQA, models.StageFinalizePR,
		}, adapters.invoked)
		assert.Equal(t, 1, validator.requests)

		r, err := runs.GetRun(ctx, res.RunID)
		require.NoError(t, err)
		assert.Equal(t, run.StatusWaitingValidation, r.Status)

		// The worker writes the entry status from the result.
		require.NoError(t, queueSvc.Suspend(ctx, entry.ID))

		// The persisted snapshot still points at human_validation, so a lost
		// verdict re-prompts instead of guessing.
		rc, err := stageSvc.LatestSnapshot(ctx, res.RunID)
		require.NoError(t, err)
		assert.Equal(t, models.StageHumanValidation, rc.NextStage)
	})

	t.Run("resume after an approve verdict runs only merge", func(t *testing.T) {
		stored, err := client.QueueEntry.Get(ctx, entry.ID)
		require.NoError(t, err)
		require.NotNil(t, stored.RunID)
		runID := *stored.RunID

		// The verdict path rewrites the snapshot toward merge and re-queues.
		rc, err := stageSvc.LatestSnapshot(ctx, runID)
		require.NoError(t, err)
		rc.NextStage = models.StageMerge
		se, err := stageSvc.BeginStage(ctx, runID, models.StageHumanValidation, 1, nil)
		require.NoError(t, err)
		require.NoError(t, stageSvc.CompleteStage(ctx, se.ID, rc))

		require.NoError(t, queueSvc.Resume(ctx, entry.ID))
		require.NoError(t, client.QueueEntry.UpdateOneID(entry.ID).
			SetStatus(queueentry.StatusRunning).
			SetStartedAt(time.Now()).
			Exec(ctx))
		reclaimed, err := client.QueueEntry.Get(ctx, entry.ID)
		require.NoError(t, err)

		adapters.invoked = nil
		res := executor.Execute(ctx, reclaimed)
		assert.Equal(t, queueentry.StatusCompleted, res.Status)
		assert.Equal(t, runID, res.RunID)
		assert.Equal(t, "https://github.com/acme/api/pull/7", res.MergedPRURL)

		// No earlier stage re-executed and no second prompt was posted.
		assert.Equal(t, []string{models.StageMerge}, adapters.invoked)
		assert.Equal(t, 1, validator.requests)

		r, err := runs.GetRun(ctx, runID)
		require.NoError(t, err)
		assert.Equal(t, run.StatusCompleted, r.Status)
	})
}
