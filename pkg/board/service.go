package board

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/forgeflow/forgeflow/pkg/config"
	"github.com/forgeflow/forgeflow/pkg/ingest"
)

// Service handles outbound board interaction: signed comments, status column
// updates, and user-visible outcome reporting in the creator's language.
// Nil-safe: all notification methods are no-ops when the service is nil.
type Service struct {
	client *Client
	cfg    *config.BoardConfig
	logger *slog.Logger
}

// NewService creates a new board service. Returns nil if no API token is
// configured.
func NewService(cfg *config.BoardConfig) *Service {
	if cfg == nil || cfg.Token == "" {
		return nil
	}
	return &Service{
		client: NewClient(cfg.APIURL, cfg.Token, cfg.RequestTimeout),
		cfg:    cfg,
		logger: slog.Default().With("component", "board-service"),
	}
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client, cfg *config.BoardConfig) *Service {
	return &Service{
		client: client,
		cfg:    cfg,
		logger: slog.Default().With("component", "board-service"),
	}
}

// Client returns the underlying API client (nil when disabled).
func (s *Service) Client() *Client {
	if s == nil {
		return nil
	}
	return s.client
}

// PostSignedComment signs body and posts it to the item. Returns the external
// comment id. Unlike the Notify* helpers this propagates errors: callers like
// the validation coordinator need to distinguish permission failures.
func (s *Service) PostSignedComment(ctx context.Context, itemID, body string) (string, error) {
	if s == nil {
		return "", fmt.Errorf("board service is disabled")
	}
	signed := ingest.Sign(body, s.cfg.AgentName)
	return s.client.PostComment(ctx, itemID, signed)
}

// NotifyPRCreated posts the "Pull Request created" comment. Fail-open.
func (s *Service) NotifyPRCreated(ctx context.Context, itemID, lang, prURL string) {
	s.notify(ctx, itemID, Message(lang, "pr_created", prURL))
}

// NotifyPRMerged posts the "PR merged" comment and flips the status column
// to the done value. Fail-open.
func (s *Service) NotifyPRMerged(ctx context.Context, itemID, lang, prURL string) {
	s.notify(ctx, itemID, Message(lang, "pr_merged", prURL))
	if s == nil {
		return
	}
	if err := s.client.UpdateColumn(ctx, itemID, s.cfg.StatusColumnID, s.cfg.DoneStatus); err != nil {
		s.logger.Error("Failed to update status column", "item_id", itemID, "error", err)
	}
	if s.cfg.LinkColumnID != "" && prURL != "" {
		if err := s.client.UpdateColumn(ctx, itemID, s.cfg.LinkColumnID, prURL); err != nil {
			s.logger.Error("Failed to update link column", "item_id", itemID, "error", err)
		}
	}
}

// NotifyRunFailed posts a failure summary naming the failing stage. Fail-open.
func (s *Service) NotifyRunFailed(ctx context.Context, itemID, lang, stage, reason string) {
	s.notify(ctx, itemID, Message(lang, "run_failed", stage, reason))
}

// NotifyRunAbandoned posts an abandonment notice with its reason. Fail-open.
func (s *Service) NotifyRunAbandoned(ctx context.Context, itemID, lang, reasonKey string, args ...any) {
	s.notify(ctx, itemID, Message(lang, "run_abandoned", Message(lang, reasonKey, args...)))
}

// NotifyValidationTimeout posts the validation-window-expired comment.
// Fail-open.
func (s *Service) NotifyValidationTimeout(ctx context.Context, itemID, lang string) {
	s.notify(ctx, itemID, Message(lang, "timeout_notice"))
}

// NotifyUnauthorizedReply posts the automatic comment naming both parties
// when someone other than the requester answers a validation. Fail-open.
func (s *Service) NotifyUnauthorizedReply(ctx context.Context, itemID, lang, intruder, requester string) {
	s.notify(ctx, itemID, Message(lang, "unauthorized", intruder, requester))
}

func (s *Service) notify(ctx context.Context, itemID, body string) {
	if s == nil {
		return
	}
	if _, err := s.PostSignedComment(ctx, itemID, body); err != nil {
		s.logger.Error("Failed to post board comment", "item_id", itemID, "error", err)
	}
}
