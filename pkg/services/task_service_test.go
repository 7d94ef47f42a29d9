package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeflow/forgeflow/ent/task"
	testdb "github.com/forgeflow/forgeflow/test/database"
)

func TestTaskService_UpsertTask(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client)
	ctx := context.Background()

	t.Run("creates task for a new item", func(t *testing.T) {
		itemID := uuid.New().String()
		created, isNew, err := service.UpsertTask(ctx, UpsertTaskInput{
			ExternalItemID: itemID,
			Title:          "Add login endpoint",
			Description:    "POST /login with JWT",
			Priority:       task.PriorityHigh,
			RepositoryURL:  "https://github.com/acme/api",
			UserLanguage:   "en",
			CreatorID:      "12345",
		})
		require.NoError(t, err)
		assert.True(t, isNew)
		assert.Equal(t, itemID, created.ExternalItemID)
		assert.Equal(t, task.PriorityHigh, created.Priority)
		assert.Equal(t, task.InternalStatusPending, created.InternalStatus)
		assert.Zero(t, created.ReactivationCount)
		assert.False(t, created.IsLocked)
	})

	t.Run("returns existing task for a known item", func(t *testing.T) {
		itemID := uuid.New().String()
		first, isNew, err := service.UpsertTask(ctx, UpsertTaskInput{
			ExternalItemID: itemID,
			Title:          "First title",
		})
		require.NoError(t, err)
		require.True(t, isNew)

		second, isNew, err := service.UpsertTask(ctx, UpsertTaskInput{
			ExternalItemID: itemID,
			Title:          "Different title",
		})
		require.NoError(t, err)
		assert.False(t, isNew)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "First title", second.Title)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, _, err := service.UpsertTask(ctx, UpsertTaskInput{Title: "no item"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		_, _, err = service.UpsertTask(ctx, UpsertTaskInput{ExternalItemID: "123"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestTaskService_BeginReactivation(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client)
	ctx := context.Background()

	newTask := func(t *testing.T) int64 {
		created, _, err := service.UpsertTask(ctx, UpsertTaskInput{
			ExternalItemID: uuid.New().String(),
			Title:          "task",
		})
		require.NoError(t, err)
		return created.ID
	}

	t.Run("increments counter and sets cooldown", func(t *testing.T) {
		taskID := newTask(t)

		updated, err := service.BeginReactivation(ctx, taskID, 30*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, 1, updated.ReactivationCount)
		assert.Equal(t, task.InternalStatusInProgress, updated.InternalStatus)
		require.NotNil(t, updated.CooldownUntil)
		assert.WithinDuration(t, time.Now().Add(30*time.Minute), *updated.CooldownUntil, time.Minute)

		updated, err = service.BeginReactivation(ctx, taskID, 30*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, 2, updated.ReactivationCount)
	})

	t.Run("locked task cannot be reactivated", func(t *testing.T) {
		taskID := newTask(t)
		require.NoError(t, service.SetLocked(ctx, taskID, true))

		_, err := service.BeginReactivation(ctx, taskID, time.Minute)
		assert.ErrorIs(t, err, ErrInvalidTransition)

		require.NoError(t, service.SetLocked(ctx, taskID, false))
		_, err = service.BeginReactivation(ctx, taskID, time.Minute)
		assert.NoError(t, err)
	})

	t.Run("unknown task reports an invalid transition", func(t *testing.T) {
		_, err := service.BeginReactivation(ctx, 999999, time.Minute)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestTaskService_Queries(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client)
	ctx := context.Background()

	itemID := uuid.New().String()
	created, _, err := service.UpsertTask(ctx, UpsertTaskInput{
		ExternalItemID: itemID,
		Title:          "queryable",
	})
	require.NoError(t, err)

	t.Run("lookup by external item id", func(t *testing.T) {
		found, err := service.GetByExternalItemID(ctx, itemID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)

		_, err = service.GetByExternalItemID(ctx, "does-not-exist")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("status updates are visible", func(t *testing.T) {
		require.NoError(t, service.SetStatus(ctx, created.ID, task.InternalStatusCompleted))

		stored, err := service.GetTask(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, task.InternalStatusCompleted, stored.InternalStatus)
	})

	t.Run("list filters by status", func(t *testing.T) {
		tasks, total, err := service.ListTasks(ctx, string(task.InternalStatusCompleted), 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, tasks, 1)
		assert.Equal(t, created.ID, tasks[0].ID)

		_, total, err = service.ListTasks(ctx, string(task.InternalStatusAbandoned), 10, 0)
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("records last run id", func(t *testing.T) {
		runs := NewRunService(client.Client)
		r, err := runs.CreateRun(ctx, CreateRunInput{TaskID: created.ID})
		require.NoError(t, err)

		require.NoError(t, service.SetLastRun(ctx, created.ID, r.ID))
		stored, err := service.GetTask(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, stored.LastRunID)
		assert.Equal(t, r.ID, *stored.LastRunID)
	})
}
