package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/run"
	testdb "github.com/forgeflow/forgeflow/test/database"
)

func newTaskForRuns(t *testing.T, ctx context.Context, client *ent.Client) int64 {
	created, _, err := NewTaskService(client).UpsertTask(ctx, UpsertTaskInput{
		ExternalItemID: uuid.New().String(),
		Title:          "run fixture",
	})
	require.NoError(t, err)
	return created.ID
}

func TestRunService_CreateRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	t.Run("creates a pending run", func(t *testing.T) {
		taskID := newTaskForRuns(t, ctx, client.Client)

		r, err := service.CreateRun(ctx, CreateRunInput{TaskID: taskID})
		require.NoError(t, err)
		assert.Equal(t, run.StatusPending, r.Status)
		assert.False(t, r.IsReactivation)
		assert.Nil(t, r.StartedAt)
	})

	t.Run("reactivation run links its parent", func(t *testing.T) {
		taskID := newTaskForRuns(t, ctx, client.Client)
		parent, err := service.CreateRun(ctx, CreateRunInput{TaskID: taskID})
		require.NoError(t, err)

		parentID := parent.ID
		child, err := service.CreateRun(ctx, CreateRunInput{
			TaskID:              taskID,
			ParentRunID:         &parentID,
			IsReactivation:      true,
			ReactivationContext: "the redirect is still broken",
			NewRequirements:     "fix the redirect after login",
		})
		require.NoError(t, err)
		assert.True(t, child.IsReactivation)
		require.NotNil(t, child.ParentRunID)
		assert.Equal(t, parent.ID, *child.ParentRunID)
		assert.Equal(t, "fix the redirect after login", child.NewRequirements)
	})

	t.Run("requires a task id", func(t *testing.T) {
		_, err := service.CreateRun(ctx, CreateRunInput{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestRunService_StartRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	t.Run("pending to running stamps the pod", func(t *testing.T) {
		taskID := newTaskForRuns(t, ctx, client.Client)
		r, err := service.CreateRun(ctx, CreateRunInput{TaskID: taskID})
		require.NoError(t, err)

		started, err := service.StartRun(ctx, r.ID, "pod-1")
		require.NoError(t, err)
		assert.Equal(t, run.StatusRunning, started.Status)
		require.NotNil(t, started.PodID)
		assert.Equal(t, "pod-1", *started.PodID)
		assert.NotNil(t, started.StartedAt)
		assert.NotNil(t, started.LastHeartbeatAt)
	})

	t.Run("double start is an invalid transition", func(t *testing.T) {
		taskID := newTaskForRuns(t, ctx, client.Client)
		r, err := service.CreateRun(ctx, CreateRunInput{TaskID: taskID})
		require.NoError(t, err)

		_, err = service.StartRun(ctx, r.ID, "pod-1")
		require.NoError(t, err)

		_, err = service.StartRun(ctx, r.ID, "pod-2")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("second running run per task is rejected by the database", func(t *testing.T) {
		taskID := newTaskForRuns(t, ctx, client.Client)
		first, err := service.CreateRun(ctx, CreateRunInput{TaskID: taskID})
		require.NoError(t, err)
		second, err := service.CreateRun(ctx, CreateRunInput{TaskID: taskID})
		require.NoError(t, err)

		_, err = service.StartRun(ctx, first.ID, "pod-1")
		require.NoError(t, err)

		_, err = service.StartRun(ctx, second.ID, "pod-2")
		assert.Error(t, err)
	})

	t.Run("resume from waiting_validation", func(t *testing.T) {
		taskID := newTaskForRuns(t, ctx, client.Client)
		r, err := service.CreateRun(ctx, CreateRunInput{TaskID: taskID})
		require.NoError(t, err)

		_, err = service.StartRun(ctx, r.ID, "pod-1")
		require.NoError(t, err)
		require.NoError(t, service.Suspend(ctx, r.ID))

		resumed, err := service.StartRun(ctx, r.ID, "pod-2")
		require.NoError(t, err)
		assert.Equal(t, run.StatusRunning, resumed.Status)
		require.NotNil(t, resumed.PodID)
		assert.Equal(t, "pod-2", *resumed.PodID)
	})
}

func TestRunService_FinishRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	taskID := newTaskForRuns(t, ctx, client.Client)

	t.Run("writes terminal status and detail", func(t *testing.T) {
		r, err := service.CreateRun(ctx, CreateRunInput{TaskID: taskID})
		require.NoError(t, err)

		err = service.FinishRun(ctx, r.ID, run.StatusCompleted, "https://github.com/acme/api/pull/7", "")
		require.NoError(t, err)

		stored, err := service.GetRun(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, run.StatusCompleted, stored.Status)
		assert.Equal(t, "https://github.com/acme/api/pull/7", stored.LastMergedPrURL)
		assert.NotNil(t, stored.CompletedAt)
	})

	t.Run("failure keeps the error message", func(t *testing.T) {
		r, err := service.CreateRun(ctx, CreateRunInput{TaskID: taskID})
		require.NoError(t, err)

		err = service.FinishRun(ctx, r.ID, run.StatusFailed, "", "clone failed: repository not found")
		require.NoError(t, err)

		stored, err := service.GetRun(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, run.StatusFailed, stored.Status)
		assert.Equal(t, "clone failed: repository not found", stored.ErrorMessage)
	})

	t.Run("rejects non-terminal statuses", func(t *testing.T) {
		r, err := service.CreateRun(ctx, CreateRunInput{TaskID: taskID})
		require.NoError(t, err)

		err = service.FinishRun(ctx, r.ID, run.StatusRunning, "", "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestRunService_FindOrphanedRuns(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	taskID := newTaskForRuns(t, ctx, client.Client)
	r, err := service.CreateRun(ctx, CreateRunInput{TaskID: taskID})
	require.NoError(t, err)
	_, err = service.StartRun(ctx, r.ID, "pod-1")
	require.NoError(t, err)

	t.Run("fresh heartbeat is not orphaned", func(t *testing.T) {
		orphans, err := service.FindOrphanedRuns(ctx, 5*time.Minute)
		require.NoError(t, err)
		assert.Empty(t, orphans)
	})

	t.Run("stale heartbeat is orphaned", func(t *testing.T) {
		err := client.Run.UpdateOneID(r.ID).
			SetLastHeartbeatAt(time.Now().Add(-10 * time.Minute)).
			Exec(ctx)
		require.NoError(t, err)

		orphans, err := service.FindOrphanedRuns(ctx, 5*time.Minute)
		require.NoError(t, err)
		require.Len(t, orphans, 1)
		assert.Equal(t, r.ID, orphans[0].ID)
	})

	t.Run("heartbeat refresh clears the orphan state", func(t *testing.T) {
		require.NoError(t, service.Heartbeat(ctx, r.ID))

		orphans, err := service.FindOrphanedRuns(ctx, 5*time.Minute)
		require.NoError(t, err)
		assert.Empty(t, orphans)
	})
}
