// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-18

package commands

import (
	"context"
	"fmt"

	"github.com/similigh/ghiqc/internal/core/config"
	"github.com/similigh/ghiqc/internal/integrations/github"
)

// loadConfig finds and loads the configuration, following "extends"
// references through the GitHub client. Without a config file the defaults
// are used.
func loadConfig(ctx context.Context, gh *github.Client) (*config.Config, error) {
	fetcher := func(ref string) ([]byte, error) {
		org, repo, branch, path, err := config.ParseExtendsRef(ref, config.DefaultConfigPath)
		if err != nil {
			return nil, err
		}
		if gh == nil {
			return nil, fmt.Errorf("GITHUB_TOKEN required to fetch remote config %s", ref)
		}
		return gh.GetFileContent(ctx, org, repo, path, branch)
	}

	path := config.FindConfigPath(cfgFile)
	if path == "" && cfgFile != "" {
		return nil, fmt.Errorf("config file %s not found", cfgFile)
	}
	if path == "" {
		ui.VerboseLog("No configuration file found. Using defaults and environment variables.")
		return config.Default(), nil
	}

	cfg, err := config.LoadWithInheritance(path, fetcher)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	ui.VerboseLog("Loaded config from %s", path)
	return cfg, nil
}
