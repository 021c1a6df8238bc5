// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-18

// Package config handles loading and merging ghiqc configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	// Extends allows inheriting from a remote config (e.g., "org/repo@branch").
	Extends string `yaml:"extends,omitempty"`

	// LLM configures the completion provider used for reviews.
	LLM LLMConfig `yaml:"llm"`

	// Ignore configures where ignore facts are read from.
	Ignore IgnoreConfig `yaml:"ignore"`

	// Report configures where the review is published.
	Report ReportConfig `yaml:"report"`

	// Workflow is a preset workflow name (e.g., "review").
	Workflow string `yaml:"workflow,omitempty"`

	// Steps is a custom list of pipeline steps (overrides workflow).
	Steps []string `yaml:"steps,omitempty"`
}

// LLMConfig holds completion provider settings.
type LLMConfig struct {
	Provider string `yaml:"provider"`
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model,omitempty"`
	Endpoint string `yaml:"endpoint,omitempty"`
}

// IgnoreConfig holds ignore fact settings.
type IgnoreConfig struct {
	// File is the local fact file.
	File string `yaml:"file"`

	// Ref points at a fact file in a repository: "org/repo@branch:path".
	// When set it takes precedence over File.
	Ref string `yaml:"ref,omitempty"`
}

// ReportConfig holds review publishing settings.
type ReportConfig struct {
	// Stdout prints the review instead of commenting on the issue.
	Stdout bool `yaml:"stdout"`

	// Mention prefixes the review with "@author".
	Mention *bool `yaml:"mention,omitempty"`
}

// MentionAuthor reports whether the review should mention the issue author.
func (r ReportConfig) MentionAuthor() bool {
	return r.Mention == nil || *r.Mention
}

// Load reads a config file from the given path and expands environment variables.
func Load(path string) (*Config, error) {
	cfg, err := loadRaw(path)
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return cfg, nil
}

// loadRaw reads a config file without applying defaults, so that unset
// fields can still be inherited from a parent.
func loadRaw(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return parse(data)
}

// LoadWithInheritance loads a config and resolves the 'extends' chain.
// The fetcher function is used to retrieve remote configs.
func LoadWithInheritance(path string, fetcher func(ref string) ([]byte, error)) (*Config, error) {
	cfg, err := loadRaw(path)
	if err != nil {
		return nil, err
	}

	if cfg.Extends == "" {
		cfg.applyDefaults()
		return cfg, nil
	}

	// Fetch and parse the parent config
	parentData, err := fetcher(cfg.Extends)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch parent config '%s': %w", cfg.Extends, err)
	}

	parentCfg, err := parse(parentData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse parent config: %w", err)
	}

	// Merge: child overrides parent
	merged := mergeConfigs(parentCfg, cfg)
	merged.applyDefaults()

	return merged, nil
}

// Default returns a config with only defaults applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func parse(data []byte) (*Config, error) {
	// Expand environment variables in the YAML content
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// FindConfigPath searches for a config file in standard locations.
func FindConfigPath(explicit string) string {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit
		}
		return ""
	}

	// Search in common locations
	candidates := []string{
		".github/ghiqc.yaml",
		".github/ghiqc.yml",
		".ghiqc.yaml",
		".ghiqc.yml",
	}

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			abs, _ := filepath.Abs(c)
			return abs
		}
	}

	return ""
}

// applyDefaults sets default values for unset fields.
// The LLM provider stays empty so the available API key selects it, and
// Ignore.File stays empty so an unset file can be told from an explicit one.
func (c *Config) applyDefaults() {
	if c.Workflow == "" {
		c.Workflow = "review"
	}
}

// mergeConfigs merges a child config onto a parent config.
// Non-zero values in child override parent.
func mergeConfigs(parent, child *Config) *Config {
	result := *parent

	// String fields: override if non-empty
	if child.Workflow != "" {
		result.Workflow = child.Workflow
	}
	if len(child.Steps) > 0 {
		result.Steps = child.Steps
	}

	// LLM: override per field
	if child.LLM.Provider != "" {
		result.LLM.Provider = child.LLM.Provider
	}
	if child.LLM.APIKey != "" {
		result.LLM.APIKey = child.LLM.APIKey
	}
	if child.LLM.Model != "" {
		result.LLM.Model = child.LLM.Model
	}
	if child.LLM.Endpoint != "" {
		result.LLM.Endpoint = child.LLM.Endpoint
	}

	// Ignore: override per field
	if child.Ignore.File != "" {
		result.Ignore.File = child.Ignore.File
	}
	if child.Ignore.Ref != "" {
		result.Ignore.Ref = child.Ignore.Ref
	}

	// Report: Stdout always follows the child so it can switch either way
	result.Report.Stdout = child.Report.Stdout
	if child.Report.Mention != nil {
		result.Report.Mention = child.Report.Mention
	}

	return &result
}

// ParseExtendsRef parses "org/repo@branch" into components.
// defaultPath is used when the reference has no ":path" suffix.
func ParseExtendsRef(ref, defaultPath string) (org, repo, branch, path string, err error) {
	// Format: org/repo@branch or org/repo@branch:path
	parts := strings.SplitN(ref, "@", 2)
	if len(parts) != 2 {
		return "", "", "", "", fmt.Errorf("invalid extends reference: %s (expected org/repo@branch)", ref)
	}

	orgRepo := strings.SplitN(parts[0], "/", 2)
	if len(orgRepo) != 2 || orgRepo[0] == "" || orgRepo[1] == "" {
		return "", "", "", "", fmt.Errorf("invalid extends reference: %s (expected org/repo)", ref)
	}

	org = orgRepo[0]
	repo = orgRepo[1]

	// Check for path
	branchPath := strings.SplitN(parts[1], ":", 2)
	branch = branchPath[0]
	if len(branchPath) == 2 && branchPath[1] != "" {
		path = branchPath[1]
	} else {
		path = defaultPath
	}

	return org, repo, branch, path, nil
}

// DefaultConfigPath is the path used for "extends" references without ":path".
const DefaultConfigPath = ".github/ghiqc.yaml"
