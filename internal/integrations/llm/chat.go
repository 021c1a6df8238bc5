// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-18
// Last Modified: 2026-10-18

package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ChatClient talks to an OpenAI-compatible chat completions endpoint.
type ChatClient struct {
	httpClient  *http.Client
	endpoint    string
	apiKey      string
	model       string
	retryConfig RetryConfig
}

// NewChatClient creates a chat completions client.
func NewChatClient(endpoint, apiKey, model string) *ChatClient {
	return &ChatClient{
		httpClient:  &http.Client{Timeout: 60 * time.Second},
		endpoint:    endpoint,
		apiKey:      apiKey,
		model:       model,
		retryConfig: DefaultRetryConfig(),
	}
}

// Model returns the configured model name.
func (c *ChatClient) Model() string {
	return c.model
}

// StatusError is a non-2xx answer from the completion endpoint.
type StatusError struct {
	Code    int
	Message string

	// RetryAfter is the delay requested by the server, zero when absent.
	RetryAfter time.Duration
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("completion API error (%d): %s", e.Code, e.Message)
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends the conversation and returns the first choice.
func (c *ChatClient) Complete(ctx context.Context, messages []Message) (string, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return "", fmt.Errorf("API key is required")
	}

	body, err := json.Marshal(chatRequest{Model: c.model, Messages: messages})
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	resp, err := withRetry(ctx, c.retryConfig, "chat completion", func() (*chatResponse, error) {
		return c.post(ctx, body)
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from LLM")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (c *ChatClient) post(ctx context.Context, body []byte) (*chatResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create completion request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", c.endpoint, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read completion response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{
			Code:       resp.StatusCode,
			Message:    extractErrorMessage(respBody),
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}

	var out chatResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("failed to parse completion response: %w", err)
	}
	return &out, nil
}

func extractErrorMessage(body []byte) string {
	var errResp struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil {
		if msg := strings.TrimSpace(errResp.Error.Message); msg != "" {
			return msg
		}
	}
	// Truncate response body to avoid leaking sensitive data in logs
	msg := strings.TrimSpace(string(body))
	if len(msg) > 200 {
		msg = msg[:200] + "..."
	}
	return msg
}
