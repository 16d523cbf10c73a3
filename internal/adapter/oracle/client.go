package oracle

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

	"github.com/sony/gobreaker/v2"

	"ad-exchange/internal/config/configs"
	"ad-exchange/internal/core/port"
)

const (
	systemPrompt = "You are an expert advertising bid optimizer. Answer with a single JSON object only."
	maxTokens    = 400
	temperature  = 0.2
	// maxErrorBody bounds how much of a failed response is kept for logs.
	maxErrorBody = 1 << 10
)

var errEmptyResponse = errors.New("oracle returned no choices")

// Client implements port.ScoringOracle against an OpenAI compatible chat
// completions endpoint, guarded by a circuit breaker.
type Client struct {
	http    *http.Client
	url     string
	apiKey  string
	model   string
	breaker *gobreaker.CircuitBreaker[string]
	logger  *slog.Logger
}

// NewClient returns an oracle client. Per-call deadlines come from the
// caller's context; the HTTP client timeout is only a backstop.
func NewClient(cfg configs.Oracle, logger *slog.Logger) *Client {
	return &Client{
		http:    &http.Client{Timeout: 2 * cfg.Timeout},
		url:     cfg.URL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		breaker: newBreaker(cfg, logger),
		logger:  logger,
	}
}

// newBreaker opens after cfg.BreakerThreshold consecutive failures and lets
// a single call through once cfg.BreakerCooldown has passed. A call the
// caller cancelled says nothing about oracle health and is not counted.
func newBreaker(cfg configs.Oracle, logger *slog.Logger) *gobreaker.CircuitBreaker[string] {
	threshold := uint32(max(cfg.BreakerThreshold, 1))
	return gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        "oracle",
		MaxRequests: 1,
		Timeout:     cfg.BreakerCooldown,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	})
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float32       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}

// Available implements port.ScoringOracle.
func (c *Client) Available(context.Context) error {
	if c.apiKey == "" {
		return fmt.Errorf("%w: no API key configured", port.ErrOracleUnavailable)
	}
	if c.breaker.State() == gobreaker.StateOpen {
		return fmt.Errorf("%w: circuit open", port.ErrOracleUnavailable)
	}
	return nil
}

// Evaluate implements port.ScoringOracle.
func (c *Client) Evaluate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", port.ErrOracleUnavailable
	}
	text, err := c.breaker.Execute(func() (string, error) {
		return c.complete(ctx, prompt)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "", fmt.Errorf("%w: %w", port.ErrOracleUnavailable, err)
	}
	return text, err
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("oracle request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", fmt.Errorf("oracle returned status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	var out chatResponse
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode oracle response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", errEmptyResponse
	}

	c.logger.DebugContext(ctx, "oracle response received",
		slog.Duration("duration", time.Since(start)),
		slog.Int("tokens", out.Usage.TotalTokens),
		slog.String("finish_reason", out.Choices[0].FinishReason))
	return out.Choices[0].Message.Content, nil
}
