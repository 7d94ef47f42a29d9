package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSign(t *testing.T) {
	signed := Sign("Pull Request created: https://example.com/pr/1", "ForgeFlow")

	assert.True(t, strings.HasPrefix(signed, "<!-- AI_AGENT_SIGNATURE_"))
	assert.Contains(t, signed, "Pull Request created: https://example.com/pr/1")
	assert.Contains(t, signed, "_Posted automatically by ForgeFlow._")

	// Each signature carries a fresh UUID.
	assert.NotEqual(t, signed, Sign("Pull Request created: https://example.com/pr/1", "ForgeFlow"))
}

func TestIsAgentComment(t *testing.T) {
	t.Run("detects signed comments", func(t *testing.T) {
		signed := Sign("done", "ForgeFlow")
		assert.True(t, IsAgentComment(signed))
	})

	t.Run("detects signature anywhere in the body", func(t *testing.T) {
		signed := Sign("done", "ForgeFlow")
		assert.True(t, IsAgentComment("provider prefix\n"+signed))
	})

	t.Run("ignores human comments", func(t *testing.T) {
		assert.False(t, IsAgentComment("please fix the login bug"))
		assert.False(t, IsAgentComment(""))
	})

	t.Run("ignores lookalikes without a uuid", func(t *testing.T) {
		assert.False(t, IsAgentComment("<!-- AI_AGENT_SIGNATURE_ -->"))
		assert.False(t, IsAgentComment("AI_AGENT_SIGNATURE_ mentioned in prose"))
	})
}

func TestStripSignature(t *testing.T) {
	t.Run("round trip recovers the body", func(t *testing.T) {
		signed := Sign("The task was abandoned: you asked to stop", "ForgeFlow")
		assert.Equal(t, "The task was abandoned: you asked to stop", StripSignature(signed))
	})

	t.Run("unsigned text passes through", func(t *testing.T) {
		assert.Equal(t, "plain reply", StripSignature("plain reply"))
	})
}
