// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/kavirubc
// Created: 2026-02-04
// Last Modified: 2026-10-18

package steps

import (
	"fmt"
	"log"
	"strings"

	"github.com/similigh/ghiqc/internal/core/pipeline"
	"github.com/similigh/ghiqc/internal/integrations/llm"
)

// Reviewer asks the LLM for a short review of the issue.
type Reviewer struct {
	llm llm.Completer
}

// NewReviewer creates a new reviewer step.
func NewReviewer(deps *pipeline.Dependencies) *Reviewer {
	return &Reviewer{
		llm: deps.LLM,
	}
}

// Name returns the step name.
func (s *Reviewer) Name() string {
	return "reviewer"
}

// Run stores the review in the result.
func (s *Reviewer) Run(ctx *pipeline.Context) error {
	if s.llm == nil {
		return fmt.Errorf("no LLM client configured, cannot review %s", ctx.Issue.FullName())
	}

	log.Printf("[reviewer] Reviewing issue %s", ctx.Issue.FullName())

	review, err := s.llm.Complete(ctx.Ctx, llm.ReviewMessages(ctx.Issue.Title, ctx.Issue.Body))
	if err != nil {
		return fmt.Errorf("failed to review issue: %w", err)
	}

	ctx.Result.Review = strings.TrimSpace(review)
	log.Printf("[reviewer] Review: %s", ctx.Result.Review)
	return nil
}
