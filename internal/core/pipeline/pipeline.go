// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-18

// Package pipeline provides the core pipeline engine for ghiqc.
// It defines the Step interface and Context structure used by all pipeline steps.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/similigh/ghiqc/internal/core/config"
	"github.com/similigh/ghiqc/internal/ignore"
)

// ErrSkipPipeline indicates that the pipeline should stop gracefully.
// This is not an error condition, just an early exit (e.g., the issue matches ignore facts).
var ErrSkipPipeline = errors.New("skip remaining pipeline steps")

// Step defines the interface that all pipeline steps must implement.
type Step interface {
	// Name returns the unique identifier for this step.
	Name() string

	// Run executes the step's logic.
	// It should return ErrSkipPipeline to stop the pipeline gracefully,
	// or any other error to indicate failure.
	Run(ctx *Context) error
}

// Issue represents the GitHub issue being reviewed.
type Issue struct {
	Org    string   `json:"org"`
	Repo   string   `json:"repo"`
	Number int      `json:"number"`
	Title  string   `json:"title"`
	Body   string   `json:"body"`
	State  string   `json:"state"`
	Labels []string `json:"labels"`
	Author string   `json:"author"`
	URL    string   `json:"url"`
}

// Loaded reports whether the issue details have been fetched.
func (i *Issue) Loaded() bool {
	return i.Title != "" && i.Author != ""
}

// FullName returns "org/repo#number".
func (i *Issue) FullName() string {
	return fmt.Sprintf("%s/%s#%d", i.Org, i.Repo, i.Number)
}

// IgnoreView projects the issue onto the attributes the ignore facts inspect.
func (i *Issue) IgnoreView() ignore.Issue {
	return ignore.Issue{
		Title:  i.Title,
		Author: i.Author,
		Labels: i.Labels,
	}
}

// Result holds the accumulated results from pipeline execution.
type Result struct {
	RunID       string   `json:"run_id"`
	IssueNumber int      `json:"issue_number"`
	Skipped     bool     `json:"skipped"`
	SkipReason  string   `json:"skip_reason,omitempty"`
	Ignored     bool     `json:"ignored"`
	FactCount   int      `json:"fact_count"`
	Review      string   `json:"review,omitempty"`
	Report      string   `json:"report,omitempty"`
	Published   bool     `json:"published"`
	Destination string   `json:"destination,omitempty"`
	Errors      []string `json:"errors,omitempty"`
}

// Context carries data through the pipeline steps.
type Context struct {
	// Ctx is the Go context for cancellation and timeouts.
	Ctx context.Context

	// Issue is the issue being processed.
	Issue *Issue

	// Config is the loaded configuration.
	Config *config.Config

	// Result accumulates the processing results.
	Result *Result

	// Metadata allows steps to pass arbitrary data to subsequent steps.
	Metadata map[string]interface{}
}

// NewContext creates a new pipeline context for an issue.
func NewContext(ctx context.Context, issue *Issue, cfg *config.Config) *Context {
	return &Context{
		Ctx:    ctx,
		Issue:  issue,
		Config: cfg,
		Result: &Result{
			RunID:       uuid.NewString(),
			IssueNumber: issue.Number,
		},
		Metadata: make(map[string]interface{}),
	}
}

// Pipeline executes a sequence of steps.
type Pipeline struct {
	steps []Step
}

// New creates a new pipeline with the given steps.
func New(steps ...Step) *Pipeline {
	return &Pipeline{steps: steps}
}

// Run executes all steps in order.
// Stops on the first error (unless it's ErrSkipPipeline, which is graceful).
func (p *Pipeline) Run(ctx *Context) error {
	for _, step := range p.steps {
		if err := step.Run(ctx); err != nil {
			if errors.Is(err, ErrSkipPipeline) {
				// Graceful early exit
				return nil
			}
			ctx.Result.Errors = append(ctx.Result.Errors, err.Error())
			return fmt.Errorf("step '%s' failed: %w", step.Name(), err)
		}
	}
	return nil
}

// Steps returns the list of steps (for introspection).
func (p *Pipeline) Steps() []Step {
	return p.steps
}
