// Package board provides the work-tracking board API client: posting
// comments, updating column values, listing item updates, and resolving
// users. The provider speaks GraphQL over HTTP POST.
package board

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Client is a thin wrapper around the board's GraphQL API.
type Client struct {
	httpClient *http.Client
	apiURL     string
	token      string
	logger     *slog.Logger
}

// NewClient creates a new board API client.
func NewClient(apiURL, token string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		apiURL:     apiURL,
		token:      token,
		logger:     slog.Default().With("component", "board-client"),
	}
}

// ItemUpdate is one comment/update on a board item.
type ItemUpdate struct {
	ID           string    `json:"id"`
	Body         string    `json:"body"`
	TextBody     string    `json:"text_body"`
	CreatorID    string    `json:"creator_id"`
	CreatorEmail string    `json:"creator_email"`
	CreatedAt    time.Time `json:"created_at"`
	ReplyToID    string    `json:"reply_to_id,omitempty"`
}

// Text returns the plain-text body, falling back to the raw body.
func (u *ItemUpdate) Text() string {
	if u.TextBody != "" {
		return u.TextBody
	}
	return u.Body
}

// User identifies a board user.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// StatusError is returned for non-2xx API responses so callers can
// distinguish authorization failures from transient errors.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("board API returned status %d: %s", e.StatusCode, e.Body)
}

// IsPermissionError reports whether err is a board authorization failure.
func IsPermissionError(err error) bool {
	var se *StatusError
	if !errors.As(err, &se) {
		return false
	}
	return se.StatusCode == http.StatusUnauthorized || se.StatusCode == http.StatusForbidden
}

// PostComment posts an update to the item and returns the new comment id.
func (c *Client) PostComment(ctx context.Context, itemID, body string) (string, error) {
	query := `mutation ($itemID: ID!, $body: String!) {
		create_update(item_id: $itemID, body: $body) { id }
	}`
	var resp struct {
		CreateUpdate struct {
			ID string `json:"id"`
		} `json:"create_update"`
	}
	if err := c.execute(ctx, query, map[string]any{"itemID": itemID, "body": body}, &resp); err != nil {
		return "", fmt.Errorf("post comment on item %s: %w", itemID, err)
	}
	return resp.CreateUpdate.ID, nil
}

// UpdateColumn writes a column value (status, link) on the item.
func (c *Client) UpdateColumn(ctx context.Context, itemID, columnID, value string) error {
	query := `mutation ($itemID: ID!, $columnID: String!, $value: String!) {
		change_simple_column_value(item_id: $itemID, column_id: $columnID, value: $value) { id }
	}`
	vars := map[string]any{"itemID": itemID, "columnID": columnID, "value": value}
	if err := c.execute(ctx, query, vars, &struct{}{}); err != nil {
		return fmt.Errorf("update column %s on item %s: %w", columnID, itemID, err)
	}
	return nil
}

// ListItemUpdates fetches the item's updates, newest first, with creator
// identity and reply-to references.
func (c *Client) ListItemUpdates(ctx context.Context, itemID string, limit int) ([]ItemUpdate, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `query ($itemID: [ID!], $limit: Int!) {
		items (ids: $itemID) {
			updates (limit: $limit) {
				id
				body
				text_body
				reply_id
				created_at
				creator { id email }
			}
		}
	}`
	var resp struct {
		Items []struct {
			Updates []struct {
				ID        string `json:"id"`
				Body      string `json:"body"`
				TextBody  string `json:"text_body"`
				ReplyID   string `json:"reply_id"`
				CreatedAt string `json:"created_at"`
				Creator   struct {
					ID    string `json:"id"`
					Email string `json:"email"`
				} `json:"creator"`
			} `json:"updates"`
		} `json:"items"`
	}
	vars := map[string]any{"itemID": []string{itemID}, "limit": limit}
	if err := c.execute(ctx, query, vars, &resp); err != nil {
		return nil, fmt.Errorf("list updates for item %s: %w", itemID, err)
	}
	if len(resp.Items) == 0 {
		return nil, nil
	}

	updates := make([]ItemUpdate, 0, len(resp.Items[0].Updates))
	for _, u := range resp.Items[0].Updates {
		created, err := time.Parse(time.RFC3339, u.CreatedAt)
		if err != nil {
			c.logger.Warn("Unparseable update timestamp, skipping entry",
				"item_id", itemID, "update_id", u.ID, "created_at", u.CreatedAt)
			continue
		}
		updates = append(updates, ItemUpdate{
			ID:           u.ID,
			Body:         u.Body,
			TextBody:     u.TextBody,
			CreatorID:    u.Creator.ID,
			CreatorEmail: u.Creator.Email,
			CreatedAt:    created,
			ReplyToID:    u.ReplyID,
		})
	}
	return updates, nil
}

// FetchUserByEmail resolves a board user by email address.
func (c *Client) FetchUserByEmail(ctx context.Context, email string) (*User, error) {
	query := `query ($emails: [String!]) {
		users (emails: $emails) { id name email }
	}`
	var resp struct {
		Users []User `json:"users"`
	}
	if err := c.execute(ctx, query, map[string]any{"emails": []string{email}}, &resp); err != nil {
		return nil, fmt.Errorf("fetch user by email: %w", err)
	}
	if len(resp.Users) == 0 {
		return nil, fmt.Errorf("no board user with email %q", email)
	}
	return &resp.Users[0], nil
}

// execute posts a GraphQL request and decodes the data field into out.
func (c *Client) execute(ctx context.Context, query string, variables map[string]any, out any) error {
	payload, err := json.Marshal(map[string]any{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("board API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{StatusCode: resp.StatusCode, Body: truncate(string(body), 512)}
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("board API error: %s", envelope.Errors[0].Message)
	}
	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
