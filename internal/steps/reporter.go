// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-18

package steps

import (
	"fmt"
	"log"

	"github.com/similigh/ghiqc/internal/core/config"
	"github.com/similigh/ghiqc/internal/core/pipeline"
	"github.com/similigh/ghiqc/internal/report"
)

// Reporter publishes the review.
type Reporter struct {
	reporter report.Reporter
	dryRun   bool
}

// NewReporter creates a new reporter step.
func NewReporter(deps *pipeline.Dependencies) *Reporter {
	return &Reporter{
		reporter: deps.Reporter,
		dryRun:   deps.DryRun,
	}
}

// Name returns the step name.
func (s *Reporter) Name() string {
	return "reporter"
}

// Run tags the review and hands it to the configured reporter.
func (s *Reporter) Run(ctx *pipeline.Context) error {
	if ctx.Result.Review == "" {
		log.Printf("[reporter] Nothing to report for %s", ctx.Issue.FullName())
		return nil
	}
	if s.reporter == nil {
		return fmt.Errorf("no reporter configured for %s", ctx.Issue.FullName())
	}

	cfg := ctx.Config
	if cfg == nil {
		cfg = config.Default()
	}

	text := ctx.Result.Review
	if cfg.Report.MentionAuthor() {
		text = report.Tagged(text, ctx.Issue.Author)
	}
	if _, console := s.reporter.(*report.StdoutReporter); !console {
		text = report.WithMarker(text, ctx.Result.RunID)
	}
	ctx.Result.Report = text
	ctx.Result.Destination = s.reporter.Destination()

	if s.dryRun {
		log.Printf("[reporter] DRY RUN: Would publish to %s:\n%s", ctx.Result.Destination, text)
		return nil
	}

	if err := s.reporter.Publish(ctx.Ctx, text); err != nil {
		return err
	}
	ctx.Result.Published = true
	return nil
}
