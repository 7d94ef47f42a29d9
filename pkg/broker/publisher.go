// Package broker publishes lifecycle events to the message bus so external
// consumers (dashboards, audit pipelines) can observe ingestion, workflow,
// and validation activity. The durable queue in Postgres remains the source
// of truth; the bus is observe-only.
package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/forgeflow/forgeflow/pkg/config"
)

// Subjects, relative to the configured prefix.
const (
	SubjectWebhooks    = "webhooks"
	SubjectWorkflows   = "workflows"
	SubjectValidations = "validations"
	SubjectDeadLetter  = "dead-letter"
)

// Event is the envelope published on every subject.
type Event struct {
	Kind       string         `json:"kind"`
	ItemID     string         `json:"item_id,omitempty"`
	TaskID     int64          `json:"task_id,omitempty"`
	RunID      int64          `json:"run_id,omitempty"`
	Detail     map[string]any `json:"detail,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// Publisher emits events to NATS. Nil-safe: all methods are no-ops on a nil
// receiver, so a missing broker URL disables publishing without branching at
// every call site.
type Publisher struct {
	nc     *nats.Conn
	prefix string
	logger *slog.Logger
}

// NewPublisher connects to NATS. Returns nil (no error) when no URL is
// configured.
func NewPublisher(cfg *config.BrokerConfig) (*Publisher, error) {
	if cfg == nil || cfg.URL == "" {
		return nil, nil
	}
	nc, err := nats.Connect(cfg.URL,
		nats.Name("forgeflow"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to broker: %w", err)
	}
	return &Publisher{
		nc:     nc,
		prefix: cfg.SubjectPrefix,
		logger: slog.Default().With("component", "broker"),
	}, nil
}

// Close drains the connection.
func (p *Publisher) Close() {
	if p == nil || p.nc == nil {
		return
	}
	if err := p.nc.Drain(); err != nil {
		p.logger.Warn("Broker drain failed", "error", err)
	}
}

// Publish emits an event on the given subject. Fail-open: errors are logged,
// never returned, so a bus outage cannot stall a workflow.
func (p *Publisher) Publish(ctx context.Context, subject string, event Event) {
	if p == nil {
		return
	}
	if err := ctx.Err(); err != nil {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	data, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal broker event", "subject", subject, "error", err)
		return
	}
	full := p.prefix + "." + subject
	if err := p.nc.Publish(full, data); err != nil {
		p.logger.Error("Failed to publish broker event", "subject", full, "error", err)
	}
}

// DeadLetter publishes an undeliverable or unprocessable payload for offline
// inspection.
func (p *Publisher) DeadLetter(ctx context.Context, kind string, detail map[string]any) {
	p.Publish(ctx, SubjectDeadLetter, Event{Kind: kind, Detail: detail})
}
