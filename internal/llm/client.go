package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/davral/llmrelay/internal/config"
	"github.com/davral/llmrelay/internal/logging"
)

var (
	// ErrUnavailable marks transport failures, timeouts, and non-2xx
	// statuses from the downstream completions server.
	ErrUnavailable = errors.New("llm server unavailable")

	// ErrMalformed marks a 2xx downstream response whose shape does not
	// contain at least one choice with message content.
	ErrMalformed = errors.New("malformed completions response")
)

// replyLogPrefix bounds how much of the assistant reply is logged.
const replyLogPrefix = 100

// Client is a direct HTTP client for an OpenAI-chat-completions-compatible
// server. The downstream server runs its own tool-calling loop; this client
// only forwards tool schemas and reads back the final assistant text.
type Client struct {
	url         string
	model       string
	apiKey      string
	temperature float64
	maxTokens   int
	httpClient  *http.Client
	log         *logging.Logger
}

// New creates a downstream completions client from config.
func New(cfg config.LLMConfig, log *logging.Logger) *Client {
	return &Client{
		url:         cfg.URL,
		model:       cfg.Model,
		apiKey:      cfg.APIKey,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		httpClient:  &http.Client{Timeout: cfg.Timeout()},
		log:         log.Sub("llm"),
	}
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

// Complete sends one completion request and returns the first choice's
// message content verbatim. Exactly one outbound call, no retries; the
// configured timeout bounds the whole exchange. When tools is non-empty
// the schemas are forwarded with tool_choice "auto".
func (c *Client) Complete(ctx context.Context, messages []Message, tools []ToolDefinition) (string, error) {
	body := completionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}
	if len(tools) > 0 {
		body.Tools = tools
		body.ToolChoice = "auto"
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	c.log.Debug().RawJSON("payload", payload).Msg("calling llm server")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: HTTP %d: %s", ErrUnavailable, resp.StatusCode, string(respBody))
	}

	var result completionResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if result.Error != nil {
		return "", fmt.Errorf("%w: %s", ErrUnavailable, result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices", ErrMalformed)
	}

	content := result.Choices[0].Message.Content
	c.log.Info().Str("reply", truncate(content, replyLogPrefix)).Msg("assistant response")
	return content, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
