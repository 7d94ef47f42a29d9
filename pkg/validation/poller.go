package validation

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/pkg/board"
	"github.com/forgeflow/forgeflow/pkg/ingest"
)

// poll watches the board item for the authorized reply to one validation
// request. Schedule: fast probes at 0s/2s/5s for the quick "approve" case,
// then the steady interval until the window closes.
func (c *Coordinator) poll(ctx context.Context, req *ent.ValidationRequest, itemID, lang, commentID string) {
	logger := c.logger.With("validation_request_id", req.ID, "item_id", itemID)

	deadline := req.CreatedAt.Add(time.Duration(req.TimeoutSeconds) * time.Second)
	state := &pollState{
		notifiedIntruders: make(map[string]bool),
		lastActivity:      time.Now(),
	}

	probes := []time.Duration{0, 2 * time.Second, 5 * time.Second}
	for i := 0; ; i++ {
		var wait time.Duration
		if i < len(probes) {
			wait = probes[i]
		} else {
			wait = c.cfg.Validation.PollInterval
		}

		select {
		case <-ctx.Done():
			logger.Info("Poller stopped by shutdown; request stays pending for restart")
			return
		case <-time.After(wait):
		}

		if time.Now().After(deadline) {
			c.expire(ctx, req, itemID, lang)
			return
		}

		done := c.checkReplies(ctx, req, itemID, lang, commentID, state, logger)
		if done {
			return
		}

		// Early-exit damping: with no board activity at all for the
		// configured window, stretch the polling out to spare API quota.
		quiet := time.Since(state.lastActivity)
		exitWindow := c.cfg.Validation.NoActivityExitLong
		if time.Duration(req.TimeoutSeconds)*time.Second < 10*time.Minute {
			exitWindow = c.cfg.Validation.NoActivityExitShort
		}
		if quiet > exitWindow {
			slowUntil := time.Now().Add(exitWindow)
			if slowUntil.After(deadline) {
				slowUntil = deadline
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Until(slowUntil)):
			}
		}
	}
}

// pollState tracks per-poller bookkeeping between rounds.
type pollState struct {
	notifiedIntruders map[string]bool
	clarified         bool
	lastActivity      time.Time
	seenUpdates       int
}

// checkReplies fetches the item's updates and processes candidate replies.
// Returns true when the validation reached a terminal outcome.
func (c *Coordinator) checkReplies(ctx context.Context, req *ent.ValidationRequest, itemID, lang, commentID string, state *pollState, logger *slog.Logger) bool {
	client := c.board.Client()
	if client == nil {
		return false
	}

	updates, err := client.ListItemUpdates(ctx, itemID, 50)
	if err != nil {
		logger.Warn("Failed to list item updates", "error", err)
		return false
	}
	if len(updates) != state.seenUpdates {
		state.seenUpdates = len(updates)
		state.lastActivity = time.Now()
	}

	candidates := candidateReplies(updates, req.CreatedAt.Add(-c.cfg.Validation.ClockSkewGrace), commentID)
	if len(candidates) == 0 {
		return false
	}

	// Oldest first: within the grace window the first authorized reply wins.
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].CreatedAt.Before(candidates[j].CreatedAt)
	})

	for _, u := range candidates {
		if !c.authorized(u, req) {
			if !state.notifiedIntruders[u.CreatorID] {
				state.notifiedIntruders[u.CreatorID] = true
				requester := req.RequesterEmail
				if requester == "" {
					requester = req.RequesterID
				}
				intruder := u.CreatorEmail
				if intruder == "" {
					intruder = u.CreatorID
				}
				c.board.NotifyUnauthorizedReply(ctx, itemID, lang, intruder, requester)
				logger.Info("Unauthorized validation reply", "creator_id", u.CreatorID)
			}
			continue
		}

		interp := c.interp.Interpret(ctx, u.Text())
		logger.Info("Interpreted validation reply",
			"verdict", interp.Verdict, "confidence", interp.Confidence, "method", interp.Method)

		if interp.Verdict.Terminal() {
			c.applyVerdict(ctx, req, itemID, lang, interp, u.CreatorID, u.CreatorEmail, u.Text())
			return true
		}

		// Question or unclear: ask once for an explicit decision and keep
		// the window open.
		if !state.clarified {
			state.clarified = true
			if _, err := c.board.PostSignedComment(ctx, itemID, board.Message(lang, "clarify")); err != nil {
				logger.Warn("Failed to post clarification request", "error", err)
			}
		}
	}
	return false
}

// authorized reports whether the update's author may answer the request:
// the creator's board user id when known, case-insensitive email otherwise.
func (c *Coordinator) authorized(u board.ItemUpdate, req *ent.ValidationRequest) bool {
	if req.RequesterID != "" {
		return u.CreatorID == req.RequesterID
	}
	if req.RequesterEmail != "" {
		return strings.EqualFold(u.CreatorEmail, req.RequesterEmail)
	}
	// No requester identity on record: accept any human reply.
	return true
}

// candidateReplies filters updates down to human comments that answer the
// prompt: posted after the window opened, not agent-authored, and either
// threaded onto the prompt comment or free-standing when the board lost the
// threading.
func candidateReplies(updates []board.ItemUpdate, notBefore time.Time, commentID string) []board.ItemUpdate {
	var out []board.ItemUpdate
	threaded := false
	for _, u := range updates {
		if u.ReplyToID != "" && u.ReplyToID == commentID {
			threaded = true
			break
		}
	}
	for _, u := range updates {
		if u.CreatedAt.Before(notBefore) {
			continue
		}
		if ingest.IsAgentComment(u.Body) || ingest.IsAgentComment(u.TextBody) {
			continue
		}
		if threaded && u.ReplyToID != commentID {
			continue
		}
		if u.ReplyToID != "" && u.ReplyToID != commentID {
			continue
		}
		out = append(out, u)
	}
	return out
}
