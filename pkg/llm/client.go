// Package llm provides the language-model client used by the stage adapters,
// the validation interpreter, and the reactivation analyzer. The production
// implementation speaks the Anthropic Messages API.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/forgeflow/forgeflow/pkg/config"
)

// Request is a single completion request.
type Request struct {
	// System is the system prompt. Optional.
	System string

	// Prompt is the user message.
	Prompt string

	// MaxTokens caps the completion. Zero uses the configured default.
	MaxTokens int

	// Temperature overrides the sampling temperature when non-nil.
	Temperature *float64
}

// Response is the completion result.
type Response struct {
	Text         string
	StopReason   string
	InputTokens  int
	OutputTokens int
}

// Client is the completion contract the orchestrator depends on.
type Client interface {
	Complete(ctx context.Context, req Request) (*Response, error)
}

// messagesAPI is the subset of the Anthropic SDK used here. Satisfied by
// *sdk.MessageService; tests substitute a mock.
type messagesAPI interface {
	New(ctx context.Context, body sdk.MessageNewParams, opts ...option.RequestOption) (*sdk.Message, error)
}

// Anthropic implements Client on top of the Anthropic Messages API.
type Anthropic struct {
	msg       messagesAPI
	model     string
	maxTokens int
}

// NewAnthropic builds the production client. Returns an error when no API
// key is configured; callers that can operate without a model should pass
// the resulting nil through and fall back to rule-based behavior.
func NewAnthropic(cfg *config.LLMConfig) (*Anthropic, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, errors.New("llm: api key is required")
	}
	ac := sdk.NewClient(option.WithAPIKey(cfg.APIKey))
	return newAnthropic(&ac.Messages, cfg)
}

func newAnthropic(msg messagesAPI, cfg *config.LLMConfig) (*Anthropic, error) {
	if cfg.Model == "" {
		return nil, errors.New("llm: model identifier is required")
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 4096
	}
	return &Anthropic{msg: msg, model: cfg.Model, maxTokens: maxTokens}, nil
}

// Complete issues a non-streaming Messages request and returns the
// concatenated text blocks.
func (c *Anthropic) Complete(ctx context.Context, req Request) (*Response, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, errors.New("llm: empty prompt")
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = c.maxTokens
	}

	params := sdk.MessageNewParams{
		Model:     sdk.Model(c.model),
		MaxTokens: int64(maxTokens),
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(req.Prompt)),
		},
	}
	if req.System != "" {
		params.System = []sdk.TextBlockParam{{Text: req.System}}
	}
	if req.Temperature != nil {
		params.Temperature = sdk.Float(*req.Temperature)
	}

	msg, err := c.msg.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("llm: completion failed: %w", err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	return &Response{
		Text:         text.String(),
		StopReason:   string(msg.StopReason),
		InputTokens:  int(msg.Usage.InputTokens),
		OutputTokens: int(msg.Usage.OutputTokens),
	}, nil
}

var _ Client = (*Anthropic)(nil)
