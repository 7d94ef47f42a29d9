package reactivation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	entTask "github.com/forgeflow/forgeflow/ent/task"
)

func TestHeuristicScore(t *testing.T) {
	t.Run("work requests score above chatter", func(t *testing.T) {
		work := heuristicScore("the login button is still broken, please fix the redirect")
		chatter := heuristicScore("thanks, great work!")
		assert.Greater(t, work, 0.5)
		assert.Less(t, chatter, 0.1)
	})

	t.Run("empty comment scores zero", func(t *testing.T) {
		assert.Zero(t, heuristicScore("   "))
	})

	t.Run("pure chatter", func(t *testing.T) {
		assert.InDelta(t, 0.05, heuristicScore("perfect, thank you!"), 0.001)
	})

	t.Run("short unknown comment is low", func(t *testing.T) {
		assert.InDelta(t, 0.1, heuristicScore("interesting"), 0.001)
	})

	t.Run("long unknown comment is ambiguous", func(t *testing.T) {
		comment := "the colors on the settings page look different from the mockups we discussed last month in the design review"
		assert.InDelta(t, 0.3, heuristicScore(comment), 0.001)
	})

	t.Run("chatter outweighing work keywords stays low", func(t *testing.T) {
		assert.InDelta(t, 0.15, heuristicScore("thanks, perfect, awesome — maybe add a tooltip someday"), 0.001)
	})

	t.Run("score is capped", func(t *testing.T) {
		comment := "fix the bug, the error page is broken, please add the missing update and change the wrong label, it should still fail less"
		assert.InDelta(t, 0.95, heuristicScore(comment), 0.001)
	})

	t.Run("multilingual work words", func(t *testing.T) {
		assert.Greater(t, heuristicScore("corrige la page de connexion"), 0.4)
		assert.Greater(t, heuristicScore("conserte o formulário, erro ao salvar"), 0.5)
	})
}

func TestEligible(t *testing.T) {
	eligibleStatuses := []entTask.InternalStatus{
		entTask.InternalStatusCompleted,
		entTask.InternalStatusFailed,
		entTask.InternalStatusAbandoned,
		entTask.InternalStatusQualityCheck,
	}
	for _, s := range eligibleStatuses {
		assert.True(t, eligible(s), string(s))
	}

	ineligible := []entTask.InternalStatus{
		entTask.InternalStatusPending,
		entTask.InternalStatusInProgress,
		entTask.InternalStatusWaitingValidation,
	}
	for _, s := range ineligible {
		assert.False(t, eligible(s), string(s))
	}
}

func TestPriorityOf(t *testing.T) {
	assert.Equal(t, 9, priorityOf(entTask.PriorityUrgent))
	assert.Equal(t, 7, priorityOf(entTask.PriorityHigh))
	assert.Equal(t, 5, priorityOf(entTask.PriorityMedium))
	assert.Equal(t, 3, priorityOf(entTask.PriorityLow))
}
