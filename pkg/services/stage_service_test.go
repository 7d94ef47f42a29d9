package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeflow/forgeflow/ent/stageexecution"
	"github.com/forgeflow/forgeflow/pkg/models"
	testdb "github.com/forgeflow/forgeflow/test/database"
)

func TestStageService(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewStageService(client.Client)
	runs := NewRunService(client.Client)
	ctx := context.Background()

	taskID := newTaskForRuns(t, ctx, client.Client)
	r, err := runs.CreateRun(ctx, CreateRunInput{TaskID: taskID})
	require.NoError(t, err)

	t.Run("ordinals increase per run", func(t *testing.T) {
		first, err := service.BeginStage(ctx, r.ID, models.StagePrepare, 1, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, first.Ordinal)
		assert.Equal(t, stageexecution.StatusStarted, first.Status)

		require.NoError(t, service.CompleteStage(ctx, first.ID, &models.RunContext{
			RunID:     r.ID,
			NextStage: models.StageAnalyze,
		}))

		second, err := service.BeginStage(ctx, r.ID, models.StageAnalyze, 1, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, second.Ordinal)
	})

	t.Run("latest snapshot wins", func(t *testing.T) {
		se, err := service.BeginStage(ctx, r.ID, models.StageImplement, 1, nil)
		require.NoError(t, err)

		rc := &models.RunContext{
			RunID:         r.ID,
			NextStage:     models.StageTest,
			Branch:        "forgeflow/task-1",
			ChangedFiles:  []string{"handlers/login.go"},
			DebugAttempts: 0,
		}
		require.NoError(t, service.CompleteStage(ctx, se.ID, rc))

		snapshot, err := service.LatestSnapshot(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StageTest, snapshot.NextStage)
		assert.Equal(t, "forgeflow/task-1", snapshot.Branch)
		assert.Equal(t, []string{"handlers/login.go"}, snapshot.ChangedFiles)
	})

	t.Run("failed stages do not contribute snapshots", func(t *testing.T) {
		se, err := service.BeginStage(ctx, r.ID, models.StageTest, 1, nil)
		require.NoError(t, err)
		require.NoError(t, service.FailStage(ctx, se.ID, errors.New("go test exited 1")))

		snapshot, err := service.LatestSnapshot(ctx, r.ID)
		require.NoError(t, err)
		// Still the implement-stage snapshot.
		assert.Equal(t, models.StageTest, snapshot.NextStage)

		stored, err := client.StageExecution.Get(ctx, se.ID)
		require.NoError(t, err)
		assert.Equal(t, stageexecution.StatusFailed, stored.Status)
		assert.Equal(t, "go test exited 1", stored.ErrorMessage)
	})

	t.Run("skipped stages are recorded", func(t *testing.T) {
		require.NoError(t, service.SkipStage(ctx, r.ID, models.StageDebug, "tests already pass"))

		stages, err := service.ListStages(ctx, r.ID)
		require.NoError(t, err)
		last := stages[len(stages)-1]
		assert.Equal(t, models.StageDebug, last.StageName)
		assert.Equal(t, stageexecution.StatusSkipped, last.Status)
	})

	t.Run("list is in execution order", func(t *testing.T) {
		stages, err := service.ListStages(ctx, r.ID)
		require.NoError(t, err)
		require.Len(t, stages, 5)
		for i, se := range stages {
			assert.Equal(t, i+1, se.Ordinal)
		}
	})

	t.Run("run without completed stages has no snapshot", func(t *testing.T) {
		fresh, err := runs.CreateRun(ctx, CreateRunInput{TaskID: taskID})
		require.NoError(t, err)

		_, err = service.LatestSnapshot(ctx, fresh.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
