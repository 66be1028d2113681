package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Webdevrishabh/ELMS/internal/config"

	"github.com/sashabaranov/go-openai"
)

// ErrCompleterDisabled is returned by the completer when no API key is configured.
var ErrCompleterDisabled = errors.New("ai completer disabled")

//go:generate mockgen -source=ai_completer.go -destination=mock/ai_completer_mock.go -package=mock
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type openAICompleter struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewCompleter returns an OpenAI-compatible completer, or one that always
// fails with ErrCompleterDisabled when cfg has no API key.
func NewCompleter(cfg config.AIConfig) Completer {
	if !cfg.Enabled() {
		return disabledCompleter{}
	}

	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	return &openAICompleter{
		client:  openai.NewClientWithConfig(oc),
		model:   model,
		timeout: cfg.Timeout,
	}
}

func (c *openAICompleter) Complete(ctx context.Context, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("openai api error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

type disabledCompleter struct{}

func (disabledCompleter) Complete(context.Context, string) (string, error) {
	return "", ErrCompleterDisabled
}
