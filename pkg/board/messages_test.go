package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessage(t *testing.T) {
	t.Run("formats arguments", func(t *testing.T) {
		got := Message("en", "pr_created", "https://github.com/acme/api/pull/42")
		assert.Equal(t, "Pull Request created: https://github.com/acme/api/pull/42", got)
	})

	t.Run("renders in the requested language", func(t *testing.T) {
		got := Message("es", "pr_merged", "https://github.com/acme/api/pull/42")
		assert.Equal(t, "PR fusionado: https://github.com/acme/api/pull/42", got)
	})

	t.Run("unknown language falls back to english", func(t *testing.T) {
		got := Message("de", "explicit_stop")
		assert.Equal(t, "you asked to stop", got)
	})

	t.Run("no-arg template is returned verbatim", func(t *testing.T) {
		got := Message("pt", "timeout_notice")
		assert.Contains(t, got, "Nenhuma resposta foi recebida")
	})

	t.Run("every language carries every key", func(t *testing.T) {
		for key := range messages["en"] {
			for lang, set := range messages {
				assert.Contains(t, set, key, "language %s missing key %s", lang)
			}
		}
	})
}
