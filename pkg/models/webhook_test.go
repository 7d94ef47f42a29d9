package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardWebhookIsChallenge(t *testing.T) {
	t.Run("challenge handshake", func(t *testing.T) {
		var hook BoardWebhook
		require.NoError(t, json.Unmarshal([]byte(`{"challenge":"abc123"}`), &hook))
		assert.True(t, hook.IsChallenge())
		assert.Equal(t, "abc123", hook.Challenge)
	})

	t.Run("regular event is not a challenge", func(t *testing.T) {
		hook := BoardWebhook{Event: &BoardEvent{Type: EventCreateItem}}
		assert.False(t, hook.IsChallenge())
	})

	t.Run("challenge alongside an event is not a handshake", func(t *testing.T) {
		hook := BoardWebhook{Challenge: "abc", Event: &BoardEvent{}}
		assert.False(t, hook.IsChallenge())
	})
}

func TestBoardEventItemID(t *testing.T) {
	t.Run("numeric pulse id", func(t *testing.T) {
		var hook BoardWebhook
		body := `{"event":{"type":"create_pulse","pulseId":8231054022,"pulseName":"Add login"}}`
		require.NoError(t, json.Unmarshal([]byte(body), &hook))
		assert.Equal(t, "8231054022", hook.Event.ItemID())
	})

	t.Run("absent pulse id", func(t *testing.T) {
		ev := &BoardEvent{Type: EventUpdateColumn}
		assert.Empty(t, ev.ItemID())
	})

	t.Run("nil event", func(t *testing.T) {
		var ev *BoardEvent
		assert.Empty(t, ev.ItemID())
	})
}

func TestBoardEventCommentBody(t *testing.T) {
	t.Run("prefers plain text", func(t *testing.T) {
		ev := &BoardEvent{TextBody: "plain", Body: "<p>html</p>"}
		assert.Equal(t, "plain", ev.CommentBody())
	})

	t.Run("falls back to html body", func(t *testing.T) {
		ev := &BoardEvent{Body: "<p>html</p>"}
		assert.Equal(t, "<p>html</p>", ev.CommentBody())
	})
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"urgent", 9},
		{"high", 7},
		{"medium", 5},
		{"low", 3},
		{"", 5},
		{"critical", 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParsePriority(tt.label), tt.label)
	}
}
