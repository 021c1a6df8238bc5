// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-18

// Package llm provides chat completion clients used to review issues.
// DeepInfra and OpenAI are reached through the OpenAI-compatible chat
// completions API; Gemini goes through the generative-ai-go SDK.
package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Message is a single chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Completer turns a conversation into a single completion.
type Completer interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// Provider identifies the completion backend.
type Provider string

const (
	ProviderDeepInfra Provider = "deepinfra"
	ProviderOpenAI    Provider = "openai"
	ProviderGemini    Provider = "gemini"
)

const (
	DeepInfraEndpoint = "https://api.deepinfra.com/v1/openai/chat/completions"
	OpenAIEndpoint    = "https://api.openai.com/v1/chat/completions"
)

// envKeys lists the environment variable consulted for each provider,
// in the order used when no provider is configured.
var envKeys = []struct {
	provider Provider
	env      string
}{
	{ProviderDeepInfra, "DEEPINFRA_TOKEN"},
	{ProviderGemini, "GEMINI_API_KEY"},
	{ProviderOpenAI, "OPENAI_API_KEY"},
}

// Options configures New.
type Options struct {
	Provider string
	APIKey   string
	Model    string
	Endpoint string
}

// ResolveProvider selects provider and key from the configured values and
// the environment.
//
// Selection order:
// 1. An explicit provider uses the configured key, then its env variable.
// 2. Without a provider, a configured key picks the provider by its shape.
// 3. Otherwise the first env variable set wins
// (DEEPINFRA_TOKEN, GEMINI_API_KEY, OPENAI_API_KEY).
func ResolveProvider(provider, apiKey string) (Provider, string, error) {
	configKey := strings.TrimSpace(apiKey)
	p := Provider(strings.ToLower(strings.TrimSpace(provider)))

	if p == "" {
		if configKey != "" {
			return inferProviderFromKey(configKey), configKey, nil
		}
		for _, k := range envKeys {
			if v := strings.TrimSpace(os.Getenv(k.env)); v != "" {
				return k.provider, v, nil
			}
		}
		return "", "", fmt.Errorf("no LLM API key found (set DEEPINFRA_TOKEN, GEMINI_API_KEY or OPENAI_API_KEY)")
	}

	env, ok := envFor(p)
	if !ok {
		return "", "", fmt.Errorf("unsupported LLM provider: %s", provider)
	}
	if configKey != "" {
		return p, configKey, nil
	}
	if v := strings.TrimSpace(os.Getenv(env)); v != "" {
		return p, v, nil
	}
	return "", "", fmt.Errorf("no API key for provider %s (set %s)", p, env)
}

func envFor(p Provider) (string, bool) {
	for _, k := range envKeys {
		if k.provider == p {
			return k.env, true
		}
	}
	return "", false
}

func inferProviderFromKey(apiKey string) Provider {
	switch {
	case strings.HasPrefix(apiKey, "sk-"):
		return ProviderOpenAI
	case strings.HasPrefix(apiKey, "AIza"):
		return ProviderGemini
	default:
		return ProviderDeepInfra
	}
}

// DefaultModel returns the model used when none is configured.
func DefaultModel(p Provider) string {
	switch p {
	case ProviderGemini:
		return "gemini-2.0-flash-lite"
	case ProviderOpenAI:
		return "gpt-4o-mini"
	default:
		return "Phind/Phind-CodeLlama-34B-v2"
	}
}

// New creates the completer for the resolved provider.
func New(ctx context.Context, opts Options) (Completer, error) {
	provider, key, err := ResolveProvider(opts.Provider, opts.APIKey)
	if err != nil {
		return nil, err
	}

	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = DefaultModel(provider)
	}

	switch provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, key, model)
	case ProviderOpenAI:
		return NewChatClient(endpointOr(opts.Endpoint, OpenAIEndpoint), key, model), nil
	default:
		return NewChatClient(endpointOr(opts.Endpoint, DeepInfraEndpoint), key, model), nil
	}
}

func endpointOr(endpoint, fallback string) string {
	if e := strings.TrimSpace(endpoint); e != "" {
		return e
	}
	return fallback
}
