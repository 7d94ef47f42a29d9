package api

import (
	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/pkg/database"
	"github.com/forgeflow/forgeflow/pkg/queue"
)

// QueueInfo describes where a workflow admitted behind other work sits.
type QueueInfo struct {
	QueueID           string `json:"queue_id"`
	Position          int    `json:"position"`
	RunningWorkflowID string `json:"running_workflow_id,omitempty"`
}

// WebhookResponse is returned by POST /webhook/board for event deliveries.
// QueueInfo is present only on the queued (202) outcome.
type WebhookResponse struct {
	Status            string     `json:"status"`
	Classification    string     `json:"classification,omitempty"`
	Detail            string     `json:"detail,omitempty"`
	EventID           int64      `json:"event_id,omitempty"`
	TaskID            int64      `json:"task_id,omitempty"`
	RunID             int64      `json:"run_id,omitempty"`
	QueueID           string     `json:"queue_id,omitempty"`
	QueueInfo         *QueueInfo `json:"queue_info,omitempty"`
	RunningWorkflowID string     `json:"running_workflow_id,omitempty"`
}

// ChallengeResponse echoes the platform's webhook challenge handshake.
type ChallengeResponse struct {
	Challenge string `json:"challenge"`
}

// TaskDetail is returned by GET /api/v1/tasks/:id.
type TaskDetail struct {
	Task *ent.Task  `json:"task"`
	Runs []*ent.Run `json:"runs"`
}

// RunDetail is returned by GET /api/v1/runs/:id.
type RunDetail struct {
	Run         *ent.Run                 `json:"run"`
	Stages      []*ent.StageExecution    `json:"stages"`
	Validations []*ent.ValidationRequest `json:"validations"`
}

// ListResponse is the generic paginated list envelope.
type ListResponse struct {
	Items any `json:"items"`
	Total int `json:"total"`
}

// QueueStatusResponse is returned by GET /api/v1/queue.
type QueueStatusResponse struct {
	Counts map[string]int    `json:"counts"`
	Pool   *queue.PoolHealth `json:"pool,omitempty"`
}

// CancelEntryResponse is returned by POST /api/v1/queue/entries/:id/cancel.
type CancelEntryResponse struct {
	QueueID string `json:"queue_id"`
	Message string `json:"message"`
}

// HealthCheck is one named component check inside HealthResponse.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string                 `json:"status"`
	Version  string                 `json:"version"`
	Database *database.HealthStatus `json:"database,omitempty"`
	Checks   map[string]HealthCheck `json:"checks"`
}
