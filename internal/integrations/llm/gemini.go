// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-18

package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient completes conversations with Gemini.
type GeminiClient struct {
	client      *genai.Client
	model       string
	retryConfig RetryConfig
}

// NewGeminiClient creates a new Gemini client.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client:      client,
		model:       model,
		retryConfig: DefaultRetryConfig(),
	}, nil
}

// Close closes the Gemini client.
func (g *GeminiClient) Close() error {
	return g.client.Close()
}

// Model returns the configured model name.
func (g *GeminiClient) Model() string {
	return g.model
}

// Complete sends system messages as the system instruction and the rest as
// the prompt.
func (g *GeminiClient) Complete(ctx context.Context, messages []Message) (string, error) {
	system, prompt := splitMessages(messages)
	if len(prompt) == 0 {
		return "", fmt.Errorf("no user message to complete")
	}

	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(0.3) // Lower temperature for more consistent results
	if len(system) > 0 {
		model.SystemInstruction = &genai.Content{Parts: system}
	}

	resp, err := withRetry(ctx, g.retryConfig, "gemini completion", func() (*genai.GenerateContentResponse, error) {
		return model.GenerateContent(ctx, prompt...)
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate review: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from LLM")
	}

	// Extract text from response
	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	return strings.TrimSpace(responseText.String()), nil
}

func splitMessages(messages []Message) (system, prompt []genai.Part) {
	for _, m := range messages {
		if m.Role == RoleSystem {
			system = append(system, genai.Text(m.Content))
			continue
		}
		prompt = append(prompt, genai.Text(m.Content))
	}
	return system, prompt
}
