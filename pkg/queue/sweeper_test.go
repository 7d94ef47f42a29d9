package queue

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/queueentry"
	"github.com/forgeflow/forgeflow/ent/validationrequest"
	"github.com/forgeflow/forgeflow/pkg/config"
	"github.com/forgeflow/forgeflow/pkg/services"
	testdb "github.com/forgeflow/forgeflow/test/database"
)

func TestSweeper_ValidationWindows(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := config.DefaultQueueConfig() // 15m wait, 60m max, 30m workflow
	pool := NewWorkerPool("sweep-test", client.Client, cfg, nil, nil)
	ctx := context.Background()

	tasks := services.NewTaskService(client.Client)
	runs := services.NewRunService(client.Client)
	queueSvc := services.NewQueueService(client.Client)
	validations := services.NewValidationService(client.Client)

	waitingEntry := func(t *testing.T, since time.Duration) (*ent.QueueEntry, int64) {
		created, _, err := tasks.UpsertTask(ctx, services.UpsertTaskInput{
			ExternalItemID: uuid.New().String(),
			Title:          "swept task",
			Description:    "swept",
		})
		require.NoError(t, err)
		r, err := runs.CreateRun(ctx, services.CreateRunInput{TaskID: created.ID})
		require.NoError(t, err)

		taskID, runID := created.ID, r.ID
		entry, _, err := queueSvc.Enqueue(ctx, services.EnqueueInput{
			ExternalItemID: created.ExternalItemID,
			TaskID:         &taskID,
			RunID:          &runID,
		})
		require.NoError(t, err)
		require.NoError(t, client.QueueEntry.UpdateOneID(entry.ID).
			SetStatus(queueentry.StatusWaitingValidation).
			SetWaitingSince(time.Now().Add(-since)).
			Exec(ctx))
		return entry, runID
	}

	t.Run("default window expires an entry with no pending validation", func(t *testing.T) {
		entry, _ := waitingEntry(t, 20*time.Minute)

		require.NoError(t, pool.sweep(ctx))

		got, err := client.QueueEntry.Get(ctx, entry.ID)
		require.NoError(t, err)
		assert.Equal(t, queueentry.StatusTimeout, got.Status)
	})

	t.Run("a longer requested window keeps the entry waiting", func(t *testing.T) {
		entry, runID := waitingEntry(t, 20*time.Minute)
		_, err := validations.CreateRequest(ctx, services.CreateValidationInput{
			RunID:          runID,
			Body:           "please review",
			TimeoutSeconds: 3600,
		})
		require.NoError(t, err)

		require.NoError(t, pool.sweep(ctx))

		got, err := client.QueueEntry.Get(ctx, entry.ID)
		require.NoError(t, err)
		assert.Equal(t, queueentry.StatusWaitingValidation, got.Status)
	})

	t.Run("requested windows are capped at the maximum", func(t *testing.T) {
		entry, runID := waitingEntry(t, 70*time.Minute)
		req, err := validations.CreateRequest(ctx, services.CreateValidationInput{
			RunID:          runID,
			Body:           "please review",
			TimeoutSeconds: 7200,
		})
		require.NoError(t, err)

		require.NoError(t, pool.sweep(ctx))

		got, err := client.QueueEntry.Get(ctx, entry.ID)
		require.NoError(t, err)
		assert.Equal(t, queueentry.StatusTimeout, got.Status)

		swept, err := client.ValidationRequest.Get(ctx, req.ID)
		require.NoError(t, err)
		assert.Equal(t, validationrequest.StatusExpired, swept.Status)
	})

	t.Run("a fresh waiting entry is untouched", func(t *testing.T) {
		entry, _ := waitingEntry(t, 5*time.Minute)

		require.NoError(t, pool.sweep(ctx))

		got, err := client.QueueEntry.Get(ctx, entry.ID)
		require.NoError(t, err)
		assert.Equal(t, queueentry.StatusWaitingValidation, got.Status)
	})
}
