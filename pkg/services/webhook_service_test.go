package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeflow/forgeflow/ent/webhookevent"
	testdb "github.com/forgeflow/forgeflow/test/database"
)

func TestWebhookService_PersistEvent(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewWebhookService(client.Client)
	ctx := context.Background()

	t.Run("persists a new event as pending", func(t *testing.T) {
		event, duplicate, err := service.PersistEvent(ctx, PersistEventInput{
			Source:          "board",
			EventType:       "create_pulse",
			ExternalEventID: uuid.New().String(),
			Payload:         map[string]any{"event": map[string]any{"pulseId": 1}},
		})
		require.NoError(t, err)
		assert.False(t, duplicate)
		assert.Equal(t, webhookevent.OutcomePending, event.Outcome)
		assert.False(t, event.ReceivedAt.IsZero())
	})

	t.Run("redelivery returns the existing row", func(t *testing.T) {
		externalID := uuid.New().String()
		input := PersistEventInput{
			Source:          "board",
			EventType:       "create_update",
			ExternalEventID: externalID,
			Payload:         map[string]any{"event": map[string]any{"pulseId": 2}},
		}

		first, duplicate, err := service.PersistEvent(ctx, input)
		require.NoError(t, err)
		require.False(t, duplicate)

		second, duplicate, err := service.PersistEvent(ctx, input)
		require.NoError(t, err)
		assert.True(t, duplicate)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("events without an external id are always stored", func(t *testing.T) {
		input := PersistEventInput{
			Source:  "board",
			Payload: map[string]any{"challenge": "abc"},
		}
		first, duplicate, err := service.PersistEvent(ctx, input)
		require.NoError(t, err)
		assert.False(t, duplicate)

		second, duplicate, err := service.PersistEvent(ctx, input)
		require.NoError(t, err)
		assert.False(t, duplicate)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("requires a payload", func(t *testing.T) {
		_, _, err := service.PersistEvent(ctx, PersistEventInput{Source: "board"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestWebhookService_MarkOutcome(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewWebhookService(client.Client)
	ctx := context.Background()

	t.Run("records outcome and processing time", func(t *testing.T) {
		event, _, err := service.PersistEvent(ctx, PersistEventInput{
			Source:  "board",
			Payload: map[string]any{"event": map[string]any{"pulseId": 4}},
		})
		require.NoError(t, err)

		err = service.MarkOutcome(ctx, event.ID, webhookevent.OutcomeQueued, "queued at position 1")
		require.NoError(t, err)

		stored, err := service.GetEvent(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, webhookevent.OutcomeQueued, stored.Outcome)
		assert.Equal(t, "queued at position 1", stored.OutcomeDetail)
		assert.NotNil(t, stored.ProcessedAt)
	})

	t.Run("unknown event returns not found", func(t *testing.T) {
		err := service.MarkOutcome(ctx, 999999, webhookevent.OutcomeIgnored, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestWebhookService_ListUnprocessed(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewWebhookService(client.Client)
	ctx := context.Background()

	pendingOld, _, err := service.PersistEvent(ctx, PersistEventInput{
		Source:  "board",
		Payload: map[string]any{"n": 1},
	})
	require.NoError(t, err)

	pendingNew, _, err := service.PersistEvent(ctx, PersistEventInput{
		Source:  "board",
		Payload: map[string]any{"n": 2},
	})
	require.NoError(t, err)

	errored, _, err := service.PersistEvent(ctx, PersistEventInput{
		Source:  "board",
		Payload: map[string]any{"n": 3},
	})
	require.NoError(t, err)
	require.NoError(t, service.MarkOutcome(ctx, errored.ID, webhookevent.OutcomeError, "boom"))

	done, _, err := service.PersistEvent(ctx, PersistEventInput{
		Source:  "board",
		Payload: map[string]any{"n": 4},
	})
	require.NoError(t, err)
	require.NoError(t, service.MarkOutcome(ctx, done.ID, webhookevent.OutcomeQueued, ""))

	t.Run("returns pending and errored events oldest first", func(t *testing.T) {
		events, err := service.ListUnprocessed(ctx, time.Now().Add(-time.Hour), 100)
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, pendingOld.ID, events[0].ID)
		assert.Equal(t, pendingNew.ID, events[1].ID)
		assert.Equal(t, errored.ID, events[2].ID)
	})

	t.Run("respects the window", func(t *testing.T) {
		events, err := service.ListUnprocessed(ctx, time.Now().Add(time.Hour), 100)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}
