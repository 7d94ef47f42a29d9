package dispatch

import (
	"context"
	"encoding/json"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/queueentry"
	"github.com/forgeflow/forgeflow/ent/task"
	"github.com/forgeflow/forgeflow/ent/webhookevent"
	"github.com/forgeflow/forgeflow/pkg/config"
	"github.com/forgeflow/forgeflow/pkg/ingest"
	"github.com/forgeflow/forgeflow/pkg/models"
	"github.com/forgeflow/forgeflow/pkg/reactivation"
	"github.com/forgeflow/forgeflow/pkg/services"
	testdb "github.com/forgeflow/forgeflow/test/database"
)

func testConfig() *config.Config {
	cfg := &config.Config{
		Queue:        config.DefaultQueueConfig(),
		Workflow:     config.DefaultWorkflowConfig(),
		Validation:   config.DefaultValidationConfig(),
		Reactivation: config.DefaultReactivationConfig(),
		Retention:    config.DefaultRetentionConfig(),
		Board:        config.DefaultBoardConfig(),
		CodeHost:     config.DefaultCodeHostConfig(),
		LLM:          config.DefaultLLMConfig(),
		Broker:       config.DefaultBrokerConfig(),
	}
	cfg.CodeHost.DefaultRepository = "https://github.com/acme/monorepo"
	return cfg
}

func persistEvent(t *testing.T, ctx context.Context, client *ent.Client, ev *models.BoardEvent) int64 {
	raw, err := json.Marshal(models.BoardWebhook{Event: ev})
	require.NoError(t, err)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))

	event, _, err := services.NewWebhookService(client).PersistEvent(ctx, services.PersistEventInput{
		Source:          "board",
		EventType:       ev.Type,
		ExternalEventID: uuid.New().String(),
		Payload:         payload,
	})
	require.NoError(t, err)
	return event.ID
}

var itemSeq atomic.Int64

func newItemEvent(title, body string) *models.BoardEvent {
	return &models.BoardEvent{
		Type:      models.EventCreateItem,
		EventID:   uuid.New().String(),
		PulseID:   json.Number(strconv.FormatInt(8000000000+itemSeq.Add(1), 10)),
		PulseName: title,
		TextBody:  body,
		UserID:    json.Number("4242"),
	}
}

func TestProcessor_NewItem(t *testing.T) {
	client := testdb.NewTestClient(t)
	processor := NewProcessor(testConfig(), client.Client, nil, nil)
	webhooks := services.NewWebhookService(client.Client)
	ctx := context.Background()

	t.Run("accepts a workflow for a new item", func(t *testing.T) {
		ev := newItemEvent("Add login endpoint", "POST /login against https://github.com/acme/api")
		eventID := persistEvent(t, ctx, client.Client, ev)

		res, err := processor.Process(ctx, eventID, ev)
		require.NoError(t, err)
		assert.Equal(t, webhookevent.OutcomeAccepted, res.Outcome)
		assert.Equal(t, models.ClassActionableNew, res.Classification)
		assert.NotZero(t, res.TaskID)
		assert.NotEmpty(t, res.QueueID)
		assert.Equal(t, 1, res.Position)
		assert.Empty(t, res.RunningWorkflowID)

		created, err := client.Task.Get(ctx, res.TaskID)
		require.NoError(t, err)
		assert.Equal(t, "Add login endpoint", created.Title)
		assert.Equal(t, "https://github.com/acme/api", created.RepositoryURL)
		assert.Equal(t, "4242", created.CreatorID)

		entry, err := client.QueueEntry.Get(ctx, res.QueueID)
		require.NoError(t, err)
		assert.Equal(t, queueentry.StatusPending, entry.Status)

		stored, err := webhooks.GetEvent(ctx, eventID)
		require.NoError(t, err)
		assert.Equal(t, webhookevent.OutcomeAccepted, stored.Outcome)
	})

	t.Run("falls back to the default repository", func(t *testing.T) {
		ev := newItemEvent("Fix the settings page", "colors are wrong on mobile")
		eventID := persistEvent(t, ctx, client.Client, ev)

		res, err := processor.Process(ctx, eventID, ev)
		require.NoError(t, err)

		created, err := client.Task.Get(ctx, res.TaskID)
		require.NoError(t, err)
		assert.Equal(t, "https://github.com/acme/monorepo", created.RepositoryURL)
	})

	t.Run("priority label carries through", func(t *testing.T) {
		ev := newItemEvent("Production outage follow-up", "restore the dashboard")
		ev.Priority = "urgent"
		eventID := persistEvent(t, ctx, client.Client, ev)

		res, err := processor.Process(ctx, eventID, ev)
		require.NoError(t, err)

		created, err := client.Task.Get(ctx, res.TaskID)
		require.NoError(t, err)
		assert.Equal(t, task.PriorityUrgent, created.Priority)

		entry, err := client.QueueEntry.Get(ctx, res.QueueID)
		require.NoError(t, err)
		assert.Equal(t, 9, entry.Priority)
	})

	t.Run("second create queues behind the running workflow", func(t *testing.T) {
		ev := newItemEvent("Create a report export", "CSV please")
		first := persistEvent(t, ctx, client.Client, ev)
		firstRes, err := processor.Process(ctx, first, ev)
		require.NoError(t, err)
		require.Equal(t, webhookevent.OutcomeAccepted, firstRes.Outcome)

		// Simulate the worker claiming the first entry.
		err = client.QueueEntry.UpdateOneID(firstRes.QueueID).
			SetStatus(queueentry.StatusRunning).
			SetStartedAt(time.Now()).
			Exec(ctx)
		require.NoError(t, err)

		second := persistEvent(t, ctx, client.Client, ev)
		res, err := processor.Process(ctx, second, ev)
		require.NoError(t, err)
		assert.Equal(t, webhookevent.OutcomeQueued, res.Outcome)
		assert.NotEmpty(t, res.QueueID)
		assert.NotEqual(t, firstRes.QueueID, res.QueueID)
		assert.Equal(t, 1, res.Position)
		assert.Equal(t, firstRes.QueueID, res.RunningWorkflowID)

		entry, err := client.QueueEntry.Get(ctx, res.QueueID)
		require.NoError(t, err)
		assert.Equal(t, queueentry.StatusPending, entry.Status)
	})

	t.Run("second create while the first is still pending is queued", func(t *testing.T) {
		ev := newItemEvent("Wire up pagination", "cursor based")
		first := persistEvent(t, ctx, client.Client, ev)
		firstRes, err := processor.Process(ctx, first, ev)
		require.NoError(t, err)

		second := persistEvent(t, ctx, client.Client, ev)
		res, err := processor.Process(ctx, second, ev)
		require.NoError(t, err)
		assert.Equal(t, webhookevent.OutcomeQueued, res.Outcome)
		assert.Equal(t, 2, res.Position)
		assert.NotEqual(t, firstRes.QueueID, res.QueueID)
	})

	t.Run("create on a finished item is ignored", func(t *testing.T) {
		tasks := services.NewTaskService(client.Client)

		ev := newItemEvent("Ship the importer", "one-off")
		first := persistEvent(t, ctx, client.Client, ev)
		firstRes, err := processor.Process(ctx, first, ev)
		require.NoError(t, err)
		require.NoError(t, tasks.SetStatus(ctx, firstRes.TaskID, task.InternalStatusCompleted))

		second := persistEvent(t, ctx, client.Client, ev)
		res, err := processor.Process(ctx, second, ev)
		require.NoError(t, err)
		assert.Equal(t, webhookevent.OutcomeIgnored, res.Outcome)
		assert.Equal(t, "item already tracked", res.Detail)
		assert.Empty(t, res.QueueID)
	})
}

func TestProcessor_Comments(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := testConfig()
	analyzer := reactivation.NewAnalyzer(cfg, client.Client, nil, nil)
	processor := NewProcessor(cfg, client.Client, analyzer, nil)
	tasks := services.NewTaskService(client.Client)
	ctx := context.Background()

	commentEvent := func(itemID json.Number, body string) *models.BoardEvent {
		return &models.BoardEvent{
			Type:     models.EventCreateUpdate,
			EventID:  uuid.New().String(),
			PulseID:  itemID,
			TextBody: body,
			UserID:   json.Number("4242"),
		}
	}

	t.Run("comment on unknown item is ignored", func(t *testing.T) {
		ev := commentEvent("99999999", "is anyone looking at this?")
		eventID := persistEvent(t, ctx, client.Client, ev)

		res, err := processor.Process(ctx, eventID, ev)
		require.NoError(t, err)
		assert.Equal(t, webhookevent.OutcomeIgnored, res.Outcome)
		assert.Equal(t, "comment on unknown item", res.Detail)
	})

	t.Run("comment on active task is accepted, not reactivated", func(t *testing.T) {
		create := newItemEvent("Active task", "do the thing")
		createID := persistEvent(t, ctx, client.Client, create)
		created, err := processor.Process(ctx, createID, create)
		require.NoError(t, err)

		// Simulate the worker picking it up.
		require.NoError(t, tasks.SetStatus(ctx, created.TaskID, task.InternalStatusInProgress))
		err = client.QueueEntry.UpdateOneID(created.QueueID).
			SetStatus(queueentry.StatusRunning).
			SetStartedAt(time.Now()).
			Exec(ctx)
		require.NoError(t, err)

		ev := commentEvent(create.PulseID, "please also handle timeouts")
		eventID := persistEvent(t, ctx, client.Client, ev)

		res, err := processor.Process(ctx, eventID, ev)
		require.NoError(t, err)
		assert.Equal(t, webhookevent.OutcomeAccepted, res.Outcome)
		assert.Equal(t, created.QueueID, res.RunningWorkflowID)
	})

	t.Run("work-intent comment reactivates a finished task", func(t *testing.T) {
		create := newItemEvent("Finished task", "build the exporter")
		createID := persistEvent(t, ctx, client.Client, create)
		created, err := processor.Process(ctx, createID, create)
		require.NoError(t, err)
		require.NoError(t, tasks.SetStatus(ctx, created.TaskID, task.InternalStatusCompleted))

		ev := commentEvent(create.PulseID, "the export is still broken, please fix the encoding")
		eventID := persistEvent(t, ctx, client.Client, ev)

		res, err := processor.Process(ctx, eventID, ev)
		require.NoError(t, err)
		assert.Equal(t, webhookevent.OutcomeReactivated, res.Outcome)
		assert.NotZero(t, res.RunID)
		assert.NotEmpty(t, res.QueueID)

		r, err := client.Run.Get(ctx, res.RunID)
		require.NoError(t, err)
		assert.True(t, r.IsReactivation)

		updated, err := tasks.GetTask(ctx, created.TaskID)
		require.NoError(t, err)
		assert.Equal(t, 1, updated.ReactivationCount)
		assert.Equal(t, task.InternalStatusInProgress, updated.InternalStatus)
	})

	t.Run("chatter on a finished task is recorded but ignored", func(t *testing.T) {
		create := newItemEvent("Another finished task", "small fix")
		createID := persistEvent(t, ctx, client.Client, create)
		created, err := processor.Process(ctx, createID, create)
		require.NoError(t, err)
		require.NoError(t, tasks.SetStatus(ctx, created.TaskID, task.InternalStatusCompleted))

		ev := commentEvent(create.PulseID, "thanks, works great!")
		eventID := persistEvent(t, ctx, client.Client, ev)

		res, err := processor.Process(ctx, eventID, ev)
		require.NoError(t, err)
		assert.Equal(t, webhookevent.OutcomeIgnored, res.Outcome)
		assert.Contains(t, res.Detail, "below threshold")
	})

	t.Run("agent-signed comment is ignored", func(t *testing.T) {
		ev := commentEvent("12345678", ingest.Sign("Pull Request created", "ForgeFlow"))
		eventID := persistEvent(t, ctx, client.Client, ev)

		res, err := processor.Process(ctx, eventID, ev)
		require.NoError(t, err)
		assert.Equal(t, webhookevent.OutcomeIgnored, res.Outcome)
		assert.Equal(t, models.ClassSelfAuthored, res.Classification)
	})

	t.Run("column updates are ignored", func(t *testing.T) {
		ev := &models.BoardEvent{
			Type:    models.EventUpdateColumn,
			EventID: uuid.New().String(),
			PulseID: json.Number("555"),
		}
		eventID := persistEvent(t, ctx, client.Client, ev)

		res, err := processor.Process(ctx, eventID, ev)
		require.NoError(t, err)
		assert.Equal(t, webhookevent.OutcomeIgnored, res.Outcome)
	})
}

func TestProcessor_Replay(t *testing.T) {
	client := testdb.NewTestClient(t)
	processor := NewProcessor(testConfig(), client.Client, nil, nil)
	webhooks := services.NewWebhookService(client.Client)
	ctx := context.Background()

	t.Run("replays persisted but unrouted events", func(t *testing.T) {
		ev := newItemEvent("Crashed before dispatch", "add retries")
		eventID := persistEvent(t, ctx, client.Client, ev)

		n, err := processor.Replay(ctx, time.Hour, 100)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		stored, err := webhooks.GetEvent(ctx, eventID)
		require.NoError(t, err)
		assert.Equal(t, webhookevent.OutcomeAccepted, stored.Outcome)
	})

	t.Run("unparseable payloads are marked errored", func(t *testing.T) {
		event, _, err := webhooks.PersistEvent(ctx, services.PersistEventInput{
			Source:  "board",
			Payload: map[string]any{"challenge": "abc"},
		})
		require.NoError(t, err)

		n, err := processor.Replay(ctx, time.Hour, 100)
		require.NoError(t, err)
		assert.Zero(t, n)

		stored, err := webhooks.GetEvent(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, webhookevent.OutcomeError, stored.Outcome)
		assert.Contains(t, stored.OutcomeDetail, "no event")
	})
}
