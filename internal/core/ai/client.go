package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/ivanmeda/recipe-finder/internal/infrastructure/config"
	"github.com/ivanmeda/recipe-finder/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// ErrEmptyReply reports a success-status completion whose payload carries
// no usable content. Callers treat it like an unparseable reply and
// degrade, not like a failed request.
var ErrEmptyReply = errors.New("empty reply from AI service")

// Client talks to an OpenAI-style chat completion API.
type Client struct {
	config *config.OpenAIConfig
	client *resty.Client
}

// NewClient creates a chat completion client.
func NewClient(cfg *config.OpenAIConfig) *Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.APIKey)).
		SetHeader("Content-Type", "application/json")

	return &Client{
		config: cfg,
		client: client,
	}
}

// Configured reports whether an API key is present. Handlers check this
// before making any network call.
func (c *Client) Configured() bool {
	return c.config.APIKey != ""
}

// Complete sends one system+user message pair and returns the reply text.
func (c *Client) Complete(ctx context.Context, system, user string, temperature float64, maxTokens int) (string, error) {
	req := map[string]interface{}{
		"model": c.config.Model,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
		"temperature": temperature,
		"max_tokens":  maxTokens,
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/chat/completions")

	if err != nil {
		common.LogError("Failed to send request to AI service",
			zap.Error(err),
			zap.String("model", c.config.Model),
		)
		return "", fmt.Errorf("failed to send request to AI service: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		common.LogError("AI service returned error status",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("model", c.config.Model),
			zap.String("response", resp.String()),
		)
		return "", fmt.Errorf("AI service error (status %d)", resp.StatusCode())
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := common.ParseJSONBytes(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("failed to parse AI service response: %w", err)
	}

	if len(result.Choices) == 0 {
		common.LogWarn("No choices in AI service response",
			zap.String("model", c.config.Model),
		)
		return "", fmt.Errorf("no choices: %w", ErrEmptyReply)
	}

	content := result.Choices[0].Message.Content
	if content == "" {
		common.LogWarn("No content in AI service response",
			zap.String("model", c.config.Model),
		)
		return "", fmt.Errorf("no content: %w", ErrEmptyReply)
	}

	common.LogDebug("AI completion succeeded",
		zap.String("model", c.config.Model),
		zap.Int("content_length", len(content)),
	)

	return content, nil
}
