// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-18
// Last Modified: 2026-10-18

// Package report publishes review text to the console or back to the issue.
package report

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/similigh/ghiqc/internal/output"
)

// Reporter publishes a review.
type Reporter interface {
	Publish(ctx context.Context, text string) error
	Destination() string
}

// CommentPoster posts issue comments.
type CommentPoster interface {
	CreateComment(ctx context.Context, org, repo string, number int, body string) error
}

// Tagged mentions the issue author in front of the response.
func Tagged(response, author string) string {
	if author == "" {
		return response
	}
	return fmt.Sprintf("@%s %s", author, response)
}

// markerPrefix starts the hidden comment identifying a review run.
const markerPrefix = "<!-- ghiqc:run "

// WithMarker appends a hidden run marker so published reviews can be traced
// back to a run.
func WithMarker(text, runID string) string {
	if runID == "" {
		return text
	}
	return text + "\n\n" + markerPrefix + runID + " -->"
}

// RunID extracts the run id from a published review, if any.
func RunID(text string) (string, bool) {
	i := strings.LastIndex(text, markerPrefix)
	if i < 0 {
		return "", false
	}
	rest := text[i+len(markerPrefix):]
	id, _, ok := strings.Cut(rest, " -->")
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// StdoutReporter prints the review.
type StdoutReporter struct {
	ui *output.UI
}

// NewStdoutReporter creates a console reporter.
func NewStdoutReporter(ui *output.UI) *StdoutReporter {
	return &StdoutReporter{ui: ui}
}

// Destination returns "stdout".
func (r *StdoutReporter) Destination() string {
	return "stdout"
}

// Publish prints the text as the answer.
func (r *StdoutReporter) Publish(_ context.Context, text string) error {
	r.ui.VerboseLog("Printing response to the stdout...")
	r.ui.Info("Answer: %s", text)
	return nil
}

// GitHubReporter posts the review as an issue comment.
type GitHubReporter struct {
	client CommentPoster
	org    string
	repo   string
	number int
}

// NewGitHubReporter creates a reporter commenting on org/repo#number.
func NewGitHubReporter(client CommentPoster, org, repo string, number int) *GitHubReporter {
	return &GitHubReporter{client: client, org: org, repo: repo, number: number}
}

// Destination returns "org/repo#number".
func (r *GitHubReporter) Destination() string {
	return fmt.Sprintf("%s/%s#%d", r.org, r.repo, r.number)
}

// Publish posts the comment.
func (r *GitHubReporter) Publish(ctx context.Context, text string) error {
	if r.client == nil {
		return fmt.Errorf("GitHub client not available, cannot post to %s", r.Destination())
	}
	log.Printf("[report] Publishing to %s...", r.Destination())
	if err := r.client.CreateComment(ctx, r.org, r.repo, r.number, text); err != nil {
		return fmt.Errorf("cannot post report to %s: %w", r.Destination(), err)
	}
	log.Printf("[report] Report delivered to %s", r.Destination())
	return nil
}

// Fork picks the console when stdout is set and the issue comments otherwise.
func Fork(stdout bool, ui *output.UI, client CommentPoster, org, repo string, number int) Reporter {
	if stdout {
		return NewStdoutReporter(ui)
	}
	return NewGitHubReporter(client, org, repo, number)
}
