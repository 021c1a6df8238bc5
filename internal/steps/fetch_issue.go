// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-18
// Last Modified: 2026-10-18

package steps

import (
	"context"
	"fmt"
	"log"

	gh "github.com/google/go-github/v60/github"

	"github.com/similigh/ghiqc/internal/core/pipeline"
	"github.com/similigh/ghiqc/internal/integrations/github"
)

// IssueGetter fetches a single issue.
type IssueGetter interface {
	GetIssue(ctx context.Context, org, repo string, number int) (*gh.Issue, error)
}

// FetchIssue loads the issue details from GitHub.
type FetchIssue struct {
	github IssueGetter
}

// NewFetchIssue creates a new fetch step.
func NewFetchIssue(deps *pipeline.Dependencies) *FetchIssue {
	s := &FetchIssue{}
	if deps.GitHub != nil {
		s.github = deps.GitHub
	}
	return s
}

// Name returns the step name.
func (s *FetchIssue) Name() string {
	return "fetch_issue"
}

// Run populates the pipeline issue unless it already carries its details.
func (s *FetchIssue) Run(ctx *pipeline.Context) error {
	if ctx.Issue.Loaded() {
		log.Printf("[fetch_issue] Issue %s already loaded, skipping fetch", ctx.Issue.FullName())
		return nil
	}
	if s.github == nil {
		return fmt.Errorf("GitHub client not available, cannot fetch %s", ctx.Issue.FullName())
	}

	log.Printf("[fetch_issue] Fetching %s", ctx.Issue.FullName())
	issue, err := s.github.GetIssue(ctx.Ctx, ctx.Issue.Org, ctx.Issue.Repo, ctx.Issue.Number)
	if err != nil {
		return err
	}

	ctx.Issue.Title = issue.GetTitle()
	ctx.Issue.Body = issue.GetBody()
	ctx.Issue.State = issue.GetState()
	ctx.Issue.Author = issue.GetUser().GetLogin()
	ctx.Issue.Labels = github.LabelNames(issue)
	ctx.Issue.URL = issue.GetHTMLURL()

	log.Printf("[fetch_issue] Loaded %q by %s with %d label(s)",
		ctx.Issue.Title, ctx.Issue.Author, len(ctx.Issue.Labels))
	return nil
}
