package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/queueentry"
	testdb "github.com/forgeflow/forgeflow/test/database"
)

func TestQueueService_Enqueue(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewQueueService(client.Client)
	ctx := context.Background()

	t.Run("creates a pending entry", func(t *testing.T) {
		entry, position, err := service.Enqueue(ctx, EnqueueInput{
			ExternalItemID: uuid.New().String(),
			Priority:       5,
			Payload:        map[string]any{"title": "Add login"},
		})
		require.NoError(t, err)
		assert.Equal(t, queueentry.StatusPending, entry.Status)
		assert.Equal(t, 1, position)
		assert.NotEmpty(t, entry.ID)
	})

	t.Run("out-of-range priority falls back to the default", func(t *testing.T) {
		entry, _, err := service.Enqueue(ctx, EnqueueInput{
			ExternalItemID: uuid.New().String(),
			Priority:       42,
		})
		require.NoError(t, err)
		assert.Equal(t, 5, entry.Priority)
	})

	t.Run("requires an item id", func(t *testing.T) {
		_, _, err := service.Enqueue(ctx, EnqueueInput{Priority: 5})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestQueueService_Ordering(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewQueueService(client.Client)
	ctx := context.Background()

	itemID := uuid.New().String()
	enqueue := func(t *testing.T, priority int) *ent.QueueEntry {
		entry, _, err := service.Enqueue(ctx, EnqueueInput{
			ExternalItemID: itemID,
			Priority:       priority,
		})
		require.NoError(t, err)
		return entry
	}

	low := enqueue(t, 3)
	normalFirst := enqueue(t, 5)
	normalSecond := enqueue(t, 5)
	urgent := enqueue(t, 9)

	t.Run("position is priority desc then fifo", func(t *testing.T) {
		pos, err := service.Position(ctx, urgent)
		require.NoError(t, err)
		assert.Equal(t, 1, pos)

		pos, err = service.Position(ctx, normalFirst)
		require.NoError(t, err)
		assert.Equal(t, 2, pos)

		pos, err = service.Position(ctx, normalSecond)
		require.NoError(t, err)
		assert.Equal(t, 3, pos)

		pos, err = service.Position(ctx, low)
		require.NoError(t, err)
		assert.Equal(t, 4, pos)
	})

	t.Run("position is scoped to the item", func(t *testing.T) {
		other, position, err := service.Enqueue(ctx, EnqueueInput{
			ExternalItemID: uuid.New().String(),
			Priority:       1,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, position)

		require.NoError(t, client.QueueEntry.DeleteOneID(other.ID).Exec(ctx))
	})

	t.Run("pending list follows the same order", func(t *testing.T) {
		entries, total, err := service.ListEntries(ctx, string(queueentry.StatusPending), 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 4, total)
		require.Len(t, entries, 4)
		assert.Equal(t, urgent.ID, entries[0].ID)
		assert.Equal(t, normalFirst.ID, entries[1].ID)
		assert.Equal(t, normalSecond.ID, entries[2].ID)
		assert.Equal(t, low.ID, entries[3].ID)
	})
}

func TestQueueService_Transitions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewQueueService(client.Client)
	ctx := context.Background()

	enqueue := func(t *testing.T) *ent.QueueEntry {
		entry, _, err := service.Enqueue(ctx, EnqueueInput{
			ExternalItemID: uuid.New().String(),
			Priority:       5,
		})
		require.NoError(t, err)
		return entry
	}

	setRunning := func(t *testing.T, id string) {
		err := client.QueueEntry.UpdateOneID(id).
			SetStatus(queueentry.StatusRunning).
			SetStartedAt(time.Now()).
			Exec(ctx)
		require.NoError(t, err)
	}

	t.Run("suspend parks a running entry", func(t *testing.T) {
		entry := enqueue(t)
		setRunning(t, entry.ID)

		require.NoError(t, service.Suspend(ctx, entry.ID))

		stored, err := service.GetEntry(ctx, entry.ID)
		require.NoError(t, err)
		assert.Equal(t, queueentry.StatusWaitingValidation, stored.Status)
		assert.NotNil(t, stored.WaitingSince)

		// Suspending twice is an invalid transition.
		assert.ErrorIs(t, service.Suspend(ctx, entry.ID), ErrInvalidTransition)
	})

	t.Run("resume returns a waiting entry to pending", func(t *testing.T) {
		entry := enqueue(t)
		setRunning(t, entry.ID)
		require.NoError(t, service.Suspend(ctx, entry.ID))

		require.NoError(t, service.Resume(ctx, entry.ID))

		stored, err := service.GetEntry(ctx, entry.ID)
		require.NoError(t, err)
		assert.Equal(t, queueentry.StatusPending, stored.Status)
		assert.Nil(t, stored.WaitingSince)
		assert.Nil(t, stored.StartedAt)

		assert.ErrorIs(t, service.Resume(ctx, entry.ID), ErrInvalidTransition)
	})

	t.Run("finish accepts only terminal statuses", func(t *testing.T) {
		entry := enqueue(t)

		err := service.Finish(ctx, entry.ID, queueentry.StatusRunning)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		require.NoError(t, service.Finish(ctx, entry.ID, queueentry.StatusCompleted))
		stored, err := service.GetEntry(ctx, entry.ID)
		require.NoError(t, err)
		assert.Equal(t, queueentry.StatusCompleted, stored.Status)
		assert.NotNil(t, stored.CompletedAt)
	})

	t.Run("cancel only touches pending entries", func(t *testing.T) {
		entry := enqueue(t)
		require.NoError(t, service.Cancel(ctx, entry.ID))

		stored, err := service.GetEntry(ctx, entry.ID)
		require.NoError(t, err)
		assert.Equal(t, queueentry.StatusCancelled, stored.Status)

		running := enqueue(t)
		setRunning(t, running.ID)
		assert.ErrorIs(t, service.Cancel(ctx, running.ID), ErrInvalidTransition)
	})
}

func TestQueueService_ActiveEntryForItem(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewQueueService(client.Client)
	ctx := context.Background()

	itemID := uuid.New().String()
	entry, _, err := service.Enqueue(ctx, EnqueueInput{ExternalItemID: itemID, Priority: 5})
	require.NoError(t, err)

	t.Run("pending entries are not active", func(t *testing.T) {
		_, err := service.ActiveEntryForItem(ctx, itemID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("running and waiting entries are active", func(t *testing.T) {
		err := client.QueueEntry.UpdateOneID(entry.ID).
			SetStatus(queueentry.StatusRunning).
			SetStartedAt(time.Now()).
			Exec(ctx)
		require.NoError(t, err)

		active, err := service.ActiveEntryForItem(ctx, itemID)
		require.NoError(t, err)
		assert.Equal(t, entry.ID, active.ID)

		require.NoError(t, service.Suspend(ctx, entry.ID))
		active, err = service.ActiveEntryForItem(ctx, itemID)
		require.NoError(t, err)
		assert.Equal(t, entry.ID, active.ID)
	})
}

func TestQueueService_PurgeTerminal(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewQueueService(client.Client)
	ctx := context.Background()

	oldEntry, _, err := service.Enqueue(ctx, EnqueueInput{ExternalItemID: uuid.New().String(), Priority: 5})
	require.NoError(t, err)
	require.NoError(t, service.Finish(ctx, oldEntry.ID, queueentry.StatusFailed))
	err = client.QueueEntry.UpdateOneID(oldEntry.ID).
		SetCompletedAt(time.Now().Add(-48 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	recent, _, err := service.Enqueue(ctx, EnqueueInput{ExternalItemID: uuid.New().String(), Priority: 5})
	require.NoError(t, err)
	require.NoError(t, service.Finish(ctx, recent.ID, queueentry.StatusCompleted))

	pending, _, err := service.Enqueue(ctx, EnqueueInput{ExternalItemID: uuid.New().String(), Priority: 5})
	require.NoError(t, err)

	n, err := service.PurgeTerminal(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = service.GetEntry(ctx, oldEntry.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = service.GetEntry(ctx, recent.ID)
	assert.NoError(t, err)
	_, err = service.GetEntry(ctx, pending.ID)
	assert.NoError(t, err)
}

func TestQueueService_CountByStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewQueueService(client.Client)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, _, err := service.Enqueue(ctx, EnqueueInput{ExternalItemID: uuid.New().String(), Priority: 5})
		require.NoError(t, err)
	}
	entry, _, err := service.Enqueue(ctx, EnqueueInput{ExternalItemID: uuid.New().String(), Priority: 5})
	require.NoError(t, err)
	err = client.QueueEntry.UpdateOneID(entry.ID).
		SetStatus(queueentry.StatusRunning).
		SetStartedAt(time.Now()).
		Exec(ctx)
	require.NoError(t, err)

	counts, err := service.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, counts[string(queueentry.StatusPending)])
	assert.Equal(t, 1, counts[string(queueentry.StatusRunning)])
	assert.Equal(t, 0, counts[string(queueentry.StatusWaitingValidation)])
}
