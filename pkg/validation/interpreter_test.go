package validation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/forgeflow/forgeflow/pkg/models"
)

func TestInterpretRuleBased(t *testing.T) {
	// With no model configured the interpreter is purely rule-based.
	interp := NewInterpreter(nil)
	ctx := context.Background()

	t.Run("short approval is high confidence", func(t *testing.T) {
		got := interp.Interpret(ctx, "lgtm")
		assert.Equal(t, models.VerdictApprove, got.Verdict)
		assert.Equal(t, models.MethodRule, got.Method)
		assert.InDelta(t, 0.95, got.Confidence, 0.001)
	})

	t.Run("bare ok approves", func(t *testing.T) {
		got := interp.Interpret(ctx, "ok")
		assert.Equal(t, models.VerdictApprove, got.Verdict)
		assert.InDelta(t, 0.95, got.Confidence, 0.001)
	})

	t.Run("valid approves", func(t *testing.T) {
		got := interp.Interpret(ctx, "valid")
		assert.Equal(t, models.VerdictApprove, got.Verdict)
	})

	t.Run("approval in spanish", func(t *testing.T) {
		got := interp.Interpret(ctx, "Aprobado, adelante")
		assert.Equal(t, models.VerdictApprove, got.Verdict)
	})

	t.Run("rejection keeps the reply as instructions", func(t *testing.T) {
		got := interp.Interpret(ctx, "please fix the error handling in the retry loop")
		assert.Equal(t, models.VerdictReject, got.Verdict)
		assert.Equal(t, "please fix the error handling in the retry loop", got.Instructions)
	})

	t.Run("rejection in french", func(t *testing.T) {
		got := interp.Interpret(ctx, "Non, corrige le formatage")
		assert.Equal(t, models.VerdictReject, got.Verdict)
	})

	t.Run("mixed reply is a rejection", func(t *testing.T) {
		// "yes, but fix the tests" wants changes, not a merge.
		got := interp.Interpret(ctx, "yes, but fix the tests first")
		assert.Equal(t, models.VerdictReject, got.Verdict)
	})

	t.Run("explicit stop beats everything", func(t *testing.T) {
		got := interp.Interpret(ctx, "no, just cancel this task")
		assert.Equal(t, models.VerdictAbandon, got.Verdict)

		got = interp.Interpret(ctx, "drop it, we changed direction")
		assert.Equal(t, models.VerdictAbandon, got.Verdict)
	})

	t.Run("trailing question mark keeps the run waiting", func(t *testing.T) {
		got := interp.Interpret(ctx, "does this also cover expired tokens?")
		assert.Equal(t, models.VerdictQuestion, got.Verdict)
	})

	t.Run("question wins over change words", func(t *testing.T) {
		got := interp.Interpret(ctx, "should I fix the config myself?")
		assert.Equal(t, models.VerdictQuestion, got.Verdict)
	})

	t.Run("empty reply is unclear", func(t *testing.T) {
		got := interp.Interpret(ctx, "   ")
		assert.Equal(t, models.VerdictUnclear, got.Verdict)
		assert.Zero(t, got.Confidence)
	})

	t.Run("off-topic reply is unclear", func(t *testing.T) {
		got := interp.Interpret(ctx, "interesting work")
		assert.Equal(t, models.VerdictUnclear, got.Verdict)
	})
}
