// Package models contains value types shared across the orchestrator:
// inbound webhook shapes, the run context snapshot, priorities, and verdicts.
package models

import (
	"encoding/json"
	"strconv"
)

// BoardWebhook is the JSON body delivered to POST /webhook/board.
// A challenge handshake carries Challenge and no Event.
type BoardWebhook struct {
	Challenge string      `json:"challenge,omitempty"`
	Event     *BoardEvent `json:"event,omitempty"`
}

// IsChallenge reports whether the payload is a platform challenge handshake.
func (w *BoardWebhook) IsChallenge() bool {
	return w.Challenge != "" && w.Event == nil
}

// BoardEvent is the board-provider event envelope. Field names follow the
// provider's webhook wire format.
type BoardEvent struct {
	Type        string          `json:"type"`
	EventID     string          `json:"triggerUuid,omitempty"`
	PulseID     json.Number     `json:"pulseId,omitempty"`
	PulseName   string          `json:"pulseName,omitempty"`
	BoardID     json.Number     `json:"boardId,omitempty"`
	UserID      json.Number     `json:"userId,omitempty"`
	Priority    string          `json:"priority,omitempty"`
	TextBody    string          `json:"textBody,omitempty"`
	Body        string          `json:"body,omitempty"`
	ReplyID     json.Number     `json:"replyId,omitempty"`
	ParentID    json.Number     `json:"parentItemId,omitempty"`
	ColumnID    string          `json:"columnId,omitempty"`
	ColumnValue json.RawMessage `json:"value,omitempty"`
	TriggerTime string          `json:"triggerTime,omitempty"`
}

// ItemID returns the board item id as a string, or "" when absent.
func (e *BoardEvent) ItemID() string {
	if e == nil {
		return ""
	}
	return e.PulseID.String()
}

// CommentBody returns the free-text body of a comment event. The provider
// uses textBody for plain text and body for the HTML rendering.
func (e *BoardEvent) CommentBody() string {
	if e.TextBody != "" {
		return e.TextBody
	}
	return e.Body
}

// Event type constants as delivered by the board provider.
const (
	EventCreateItem   = "create_pulse"
	EventCreateUpdate = "create_update"
	EventUpdateColumn = "update_column_value"
)

// Classification is the ingress decision for an inbound event.
type Classification string

// Classification outcomes.
const (
	ClassActionableNew     Classification = "actionable_new"     // initial item description
	ClassActionableComment Classification = "actionable_comment" // human free-text comment
	ClassSelfAuthored      Classification = "self_authored"      // carries the agent signature
	ClassIgnored           Classification = "ignored"
)

// ParsePriority maps the board's priority label to a queue priority in [1,10].
// Unknown labels get the default of 5.
func ParsePriority(label string) int {
	switch label {
	case "urgent":
		return 9
	case "high":
		return 7
	case "medium":
		return 5
	case "low":
		return 3
	default:
		return 5
	}
}

// FormatID renders a numeric board id for API calls.
func FormatID(n int64) string {
	return strconv.FormatInt(n, 10)
}
