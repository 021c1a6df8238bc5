// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-18

package steps

import (
	"context"
	"fmt"
	"log"

	"github.com/similigh/ghiqc/internal/core/config"
	"github.com/similigh/ghiqc/internal/core/pipeline"
	"github.com/similigh/ghiqc/internal/ignore"
)

// FileGetter reads a file from a repository.
type FileGetter interface {
	GetFileContent(ctx context.Context, org, repo, path, ref string) ([]byte, error)
}

// IgnoreCheck stops the pipeline for issues matching the ignore facts.
type IgnoreCheck struct {
	github FileGetter
}

// NewIgnoreCheck creates a new ignore check step.
func NewIgnoreCheck(deps *pipeline.Dependencies) *IgnoreCheck {
	s := &IgnoreCheck{}
	if deps.GitHub != nil {
		s.github = deps.GitHub
	}
	return s
}

// Name returns the step name.
func (s *IgnoreCheck) Name() string {
	return "ignore_check"
}

// Run evaluates the issue against the configured facts.
func (s *IgnoreCheck) Run(ctx *pipeline.Context) error {
	facts, source, err := s.loadFacts(ctx)
	if err != nil {
		return err
	}
	if source == "" {
		log.Printf("[ignore_check] No ignore facts found, proceeding")
		return nil
	}

	ctx.Result.FactCount = facts.Len()
	log.Printf("[ignore_check] Loaded %d fact(s) from %s", facts.Len(), source)

	decision, err := ignore.Evaluate(ctx.Issue.IgnoreView(), facts)
	if err != nil {
		return fmt.Errorf("cannot evaluate ignore facts: %w", err)
	}

	if decision.Ignore {
		log.Printf("[ignore_check] Issue %s %s, skipping", ctx.Issue.FullName(), decision.Reason())
		ctx.Result.Ignored = true
		ctx.Result.Skipped = true
		ctx.Result.SkipReason = decision.Reason()
		return pipeline.ErrSkipPipeline
	}

	log.Printf("[ignore_check] Issue %s does not match ignore facts, proceeding", ctx.Issue.FullName())
	return nil
}

// loadFacts returns the facts and where they came from. An empty source
// means no facts are configured: the default file is missing and neither a
// file nor a ref was set.
func (s *IgnoreCheck) loadFacts(ctx *pipeline.Context) (ignore.Facts, string, error) {
	cfg := ctx.Config
	if cfg == nil {
		cfg = config.Default()
	}

	if ref := cfg.Ignore.Ref; ref != "" {
		if s.github == nil {
			return ignore.Facts{}, "", fmt.Errorf("GitHub client not available, cannot fetch facts from %s", ref)
		}
		org, repo, branch, path, err := config.ParseExtendsRef(ref, ignore.DefaultFileName)
		if err != nil {
			return ignore.Facts{}, "", err
		}
		content, err := s.github.GetFileContent(ctx.Ctx, org, repo, path, branch)
		if err != nil {
			return ignore.Facts{}, "", err
		}
		facts, err := ignore.ParseLines(string(content))
		if err != nil {
			return ignore.Facts{}, "", fmt.Errorf("%s: %w", ref, err)
		}
		return facts, ref, nil
	}

	// Only the implicit default file may be absent.
	explicit := cfg.Ignore.File != ""
	file := ignore.NewFile(ignore.DefaultFileName)
	if explicit {
		file = ignore.NewFile(cfg.Ignore.File)
	}
	if !file.Exists() {
		if explicit {
			return ignore.Facts{}, "", fmt.Errorf("ignore facts file %s not found", file.Path())
		}
		return ignore.Facts{}, "", nil
	}
	facts, err := file.Facts()
	if err != nil {
		return ignore.Facts{}, "", err
	}
	return facts, file.Path(), nil
}
