package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeflow/forgeflow/pkg/models"
)

func TestNextStage(t *testing.T) {
	t.Run("linear path", func(t *testing.T) {
		tests := []struct {
			current string
			want    string
		}{
			{models.StagePrepare, models.StageAnalyze},
			{models.StageAnalyze, models.StageImplement},
			{models.StageImplement, models.StageTest},
			{models.StageDebug, models.StageTest},
			{models.StageQA, models.StageFinalizePR},
			{models.StageFinalizePR, models.StageHumanValidation},
		}
		for _, tt := range tests {
			next, err := NextStage(tt.current, &models.RunContext{}, 3)
			require.NoError(t, err, tt.current)
			assert.Equal(t, tt.want, next, tt.current)
		}
	})

	t.Run("test stage routes on outcome", func(t *testing.T) {
		next, err := NextStage(models.StageTest, &models.RunContext{TestsPassed: true}, 3)
		require.NoError(t, err)
		assert.Equal(t, models.StageQA, next)

		next, err = NextStage(models.StageTest, &models.RunContext{DebugAttempts: 0}, 3)
		require.NoError(t, err)
		assert.Equal(t, models.StageDebug, next)

		next, err = NextStage(models.StageTest, &models.RunContext{DebugAttempts: 2}, 3)
		require.NoError(t, err)
		assert.Equal(t, models.StageDebug, next)
	})

	t.Run("debug budget exhaustion proceeds to qa", func(t *testing.T) {
		next, err := NextStage(models.StageTest, &models.RunContext{DebugAttempts: 3}, 3)
		require.NoError(t, err)
		assert.Equal(t, models.StageQA, next)
	})

	t.Run("merge completes the run", func(t *testing.T) {
		next, err := NextStage(models.StageMerge, &models.RunContext{}, 3)
		require.NoError(t, err)
		assert.Equal(t, stageDone, next)
	})

	t.Run("human_validation has no graph transition", func(t *testing.T) {
		_, err := NextStage(models.StageHumanValidation, &models.RunContext{}, 3)
		assert.Error(t, err)
	})

	t.Run("unknown stage errors", func(t *testing.T) {
		_, err := NextStage("deploy", &models.RunContext{}, 3)
		assert.Error(t, err)
	})
}

func TestVerdictNextStage(t *testing.T) {
	t.Run("approve proceeds to merge", func(t *testing.T) {
		next, effective, terminal := VerdictNextStage(models.VerdictApprove, 0, 3)
		assert.Equal(t, models.StageMerge, next)
		assert.Equal(t, models.VerdictApprove, effective)
		assert.False(t, terminal)
	})

	t.Run("reject returns to implement", func(t *testing.T) {
		next, effective, terminal := VerdictNextStage(models.VerdictReject, 1, 3)
		assert.Equal(t, models.StageImplement, next)
		assert.Equal(t, models.VerdictReject, effective)
		assert.False(t, terminal)
	})

	t.Run("reject at the limit is coerced to abandon", func(t *testing.T) {
		next, effective, terminal := VerdictNextStage(models.VerdictReject, 3, 3)
		assert.Empty(t, next)
		assert.Equal(t, models.VerdictAbandon, effective)
		assert.True(t, terminal)
	})

	t.Run("abandon is terminal", func(t *testing.T) {
		next, effective, terminal := VerdictNextStage(models.VerdictAbandon, 0, 3)
		assert.Empty(t, next)
		assert.Equal(t, models.VerdictAbandon, effective)
		assert.True(t, terminal)
	})

	t.Run("non-terminal verdicts keep waiting", func(t *testing.T) {
		for _, v := range []models.Verdict{models.VerdictQuestion, models.VerdictUnclear} {
			next, effective, terminal := VerdictNextStage(v, 0, 3)
			assert.Empty(t, next, v)
			assert.Equal(t, v, effective, v)
			assert.False(t, terminal, v)
		}
	})
}
