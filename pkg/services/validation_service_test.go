package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/validationrequest"
	"github.com/forgeflow/forgeflow/pkg/models"
	testdb "github.com/forgeflow/forgeflow/test/database"
)

func newRunForValidation(t *testing.T, ctx context.Context, client *ent.Client) int64 {
	taskID := newTaskForRuns(t, ctx, client)
	r, err := NewRunService(client).CreateRun(ctx, CreateRunInput{TaskID: taskID})
	require.NoError(t, err)
	return r.ID
}

func TestValidationService_CreateRequest(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewValidationService(client.Client)
	ctx := context.Background()

	t.Run("creates a pending request", func(t *testing.T) {
		runID := newRunForValidation(t, ctx, client.Client)

		vr, err := service.CreateRequest(ctx, CreateValidationInput{
			RunID:          runID,
			Body:           "A Pull Request is ready for your review",
			RequesterID:    "12345",
			RejectionCount: 0,
			TimeoutSeconds: 900,
		})
		require.NoError(t, err)
		assert.Equal(t, validationrequest.StatusPending, vr.Status)
		assert.Zero(t, vr.RejectionCount)
		assert.Equal(t, 900, vr.TimeoutSeconds)
	})

	t.Run("re-prompt links its predecessor", func(t *testing.T) {
		runID := newRunForValidation(t, ctx, client.Client)
		first, err := service.CreateRequest(ctx, CreateValidationInput{
			RunID: runID,
			Body:  "first prompt",
		})
		require.NoError(t, err)

		firstID := first.ID
		second, err := service.CreateRequest(ctx, CreateValidationInput{
			RunID:          runID,
			ParentID:       &firstID,
			Body:           "updated PR after your changes",
			RejectionCount: 1,
		})
		require.NoError(t, err)
		require.NotNil(t, second.ParentValidationID)
		assert.Equal(t, first.ID, *second.ParentValidationID)
		assert.Equal(t, 1, second.RejectionCount)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.CreateRequest(ctx, CreateValidationInput{Body: "no run"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		_, err = service.CreateRequest(ctx, CreateValidationInput{RunID: 1})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestValidationService_Resolve(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewValidationService(client.Client)
	ctx := context.Background()

	newRequest := func(t *testing.T) *ent.ValidationRequest {
		runID := newRunForValidation(t, ctx, client.Client)
		vr, err := service.CreateRequest(ctx, CreateValidationInput{
			RunID: runID,
			Body:  "review please",
		})
		require.NoError(t, err)
		return vr
	}

	t.Run("approval resolves the request", func(t *testing.T) {
		vr := newRequest(t)

		resp, err := service.Resolve(ctx, ResolveValidationInput{
			RequestID:  vr.ID,
			RawReply:   "lgtm",
			Verdict:    models.VerdictApprove,
			Confidence: 0.95,
			Method:     models.MethodRule,
			ReviewerID: "12345",
		})
		require.NoError(t, err)
		assert.Equal(t, "lgtm", resp.RawReply)

		stored, err := service.GetRequest(ctx, vr.ID)
		require.NoError(t, err)
		assert.Equal(t, validationrequest.StatusApproved, stored.Status)
		assert.NotNil(t, stored.ResolvedAt)
	})

	t.Run("rejection bumps the counter and stores instructions", func(t *testing.T) {
		vr := newRequest(t)

		_, err := service.Resolve(ctx, ResolveValidationInput{
			RequestID:    vr.ID,
			RawReply:     "no, fix the retries",
			Verdict:      models.VerdictReject,
			Confidence:   0.8,
			Method:       models.MethodRule,
			Instructions: "fix the retries",
		})
		require.NoError(t, err)

		stored, err := service.GetRequest(ctx, vr.ID)
		require.NoError(t, err)
		assert.Equal(t, validationrequest.StatusRejected, stored.Status)
		assert.Equal(t, 1, stored.RejectionCount)
		assert.Equal(t, "fix the retries", stored.ModificationInstructions)
	})

	t.Run("resolving twice is an invalid transition", func(t *testing.T) {
		vr := newRequest(t)

		_, err := service.Resolve(ctx, ResolveValidationInput{
			RequestID: vr.ID,
			RawReply:  "approve",
			Verdict:   models.VerdictApprove,
			Method:    models.MethodRule,
		})
		require.NoError(t, err)

		_, err = service.Resolve(ctx, ResolveValidationInput{
			RequestID: vr.ID,
			RawReply:  "reject",
			Verdict:   models.VerdictReject,
			Method:    models.MethodRule,
		})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("concurrent replies resolve exactly once", func(t *testing.T) {
		vr := newRequest(t)

		var wg sync.WaitGroup
		var mu sync.Mutex
		resolved := 0
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := service.Resolve(ctx, ResolveValidationInput{
					RequestID: vr.ID,
					RawReply:  "approve",
					Verdict:   models.VerdictApprove,
					Method:    models.MethodRule,
				})
				if err == nil {
					mu.Lock()
					resolved++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, resolved)
	})

	t.Run("question verdicts do not resolve", func(t *testing.T) {
		vr := newRequest(t)

		_, err := service.Resolve(ctx, ResolveValidationInput{
			RequestID: vr.ID,
			RawReply:  "what does this change?",
			Verdict:   models.VerdictQuestion,
			Method:    models.MethodRule,
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		stored, err := service.GetRequest(ctx, vr.ID)
		require.NoError(t, err)
		assert.Equal(t, validationrequest.StatusPending, stored.Status)
	})
}

func TestValidationService_ExpireAndList(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewValidationService(client.Client)
	ctx := context.Background()

	runID := newRunForValidation(t, ctx, client.Client)

	first, err := service.CreateRequest(ctx, CreateValidationInput{RunID: runID, Body: "first"})
	require.NoError(t, err)
	second, err := service.CreateRequest(ctx, CreateValidationInput{RunID: runID, Body: "second"})
	require.NoError(t, err)

	t.Run("pending list is oldest first", func(t *testing.T) {
		pending, err := service.ListPending(ctx)
		require.NoError(t, err)
		require.Len(t, pending, 2)
		assert.Equal(t, first.ID, pending[0].ID)
		assert.Equal(t, second.ID, pending[1].ID)
	})

	t.Run("expire closes an unanswered request", func(t *testing.T) {
		require.NoError(t, service.Expire(ctx, first.ID))

		stored, err := service.GetRequest(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, validationrequest.StatusExpired, stored.Status)

		assert.ErrorIs(t, service.Expire(ctx, first.ID), ErrInvalidTransition)
	})

	t.Run("run chain preloads responses", func(t *testing.T) {
		_, err := service.Resolve(ctx, ResolveValidationInput{
			RequestID:  second.ID,
			RawReply:   "approve",
			Verdict:    models.VerdictApprove,
			Confidence: 0.9,
			Method:     models.MethodRule,
		})
		require.NoError(t, err)

		chain, err := service.ListForRun(ctx, runID)
		require.NoError(t, err)
		require.Len(t, chain, 2)
		assert.Nil(t, chain[0].Edges.Response)
		require.NotNil(t, chain[1].Edges.Response)
		assert.Equal(t, "approve", chain[1].Edges.Response.RawReply)
	})
}
