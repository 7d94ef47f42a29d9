package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	type verdict struct {
		Verdict    string  `json:"verdict"`
		Confidence float64 `json:"confidence"`
	}

	t.Run("plain object", func(t *testing.T) {
		var out verdict
		require.NoError(t, DecodeJSON(`{"verdict":"approve","confidence":0.9}`, &out))
		assert.Equal(t, "approve", out.Verdict)
		assert.InDelta(t, 0.9, out.Confidence, 0.001)
	})

	t.Run("json code fence", func(t *testing.T) {
		var out verdict
		text := "```json\n{\"verdict\":\"reject\",\"confidence\":0.7}\n```"
		require.NoError(t, DecodeJSON(text, &out))
		assert.Equal(t, "reject", out.Verdict)
	})

	t.Run("bare code fence", func(t *testing.T) {
		var out verdict
		text := "```\n{\"verdict\":\"abandon\",\"confidence\":1}\n```"
		require.NoError(t, DecodeJSON(text, &out))
		assert.Equal(t, "abandon", out.Verdict)
	})

	t.Run("object wrapped in prose", func(t *testing.T) {
		var out verdict
		text := `Here is my assessment: {"verdict":"approve","confidence":0.8} — let me know.`
		require.NoError(t, DecodeJSON(text, &out))
		assert.Equal(t, "approve", out.Verdict)
	})

	t.Run("no object at all", func(t *testing.T) {
		var out verdict
		assert.Error(t, DecodeJSON("I cannot answer that.", &out))
	})

	t.Run("malformed json", func(t *testing.T) {
		var out verdict
		assert.Error(t, DecodeJSON(`{"verdict": approve}`, &out))
	})
}
