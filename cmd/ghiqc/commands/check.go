// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-18

package commands

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/similigh/ghiqc/internal/core/config"
	"github.com/similigh/ghiqc/internal/core/pipeline"
	"github.com/similigh/ghiqc/internal/integrations/github"
	"github.com/similigh/ghiqc/internal/integrations/llm"
	"github.com/similigh/ghiqc/internal/output"
	"github.com/similigh/ghiqc/internal/report"
)

// checkOptions holds the flags of the check command.
type checkOptions struct {
	repo       string
	issue      int
	stdout     bool
	ignoreFile string
	factsRef   string
	dryRun     bool
	workflow   string
}

var checkOpts checkOptions

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Review a single issue",
	Long: `Fetch an issue, skip it when it matches the ignore facts and otherwise
ask the configured language model for a short review. The review is posted
as a comment on the issue, or printed with --stdout.`,
	Example: `  ghiqc check --repo jeff/foo --issue 1
  ghiqc check -r jeff/foo -i 1 --stdout --ignore-file .github/ignore.ghiqc`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd.Context(), checkOpts)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkOpts.repo, "repo", "r", "", "Repository-qualified name (owner/name)")
	checkCmd.Flags().IntVarP(&checkOpts.issue, "issue", "i", 0, "Issue number")
	checkCmd.Flags().BoolVar(&checkOpts.stdout, "stdout", false, "Print the review instead of commenting on the issue")
	checkCmd.Flags().StringVar(&checkOpts.ignoreFile, "ignore-file", "", "Path to the ignore facts file (default ignore.ghiqc)")
	checkCmd.Flags().StringVar(&checkOpts.factsRef, "facts-ref", "", "Read ignore facts from a repository (org/repo@branch[:path])")
	checkCmd.Flags().BoolVar(&checkOpts.dryRun, "dry-run", false, "Run without publishing the review")
	checkCmd.Flags().StringVar(&checkOpts.workflow, "workflow", "", "Workflow preset to run (review, ignore-only)")

	_ = checkCmd.MarkFlagRequired("repo")
	_ = checkCmd.MarkFlagRequired("issue")
}

// applyCheckFlags lets command line flags override the configuration.
func applyCheckFlags(cfg *config.Config, opts checkOptions) {
	if opts.ignoreFile != "" {
		cfg.Ignore.File = opts.ignoreFile
	}
	if opts.factsRef != "" {
		cfg.Ignore.Ref = opts.factsRef
	}
	if opts.stdout {
		cfg.Report.Stdout = true
	}
	if opts.workflow != "" {
		cfg.Workflow = opts.workflow
	}
}

func runCheck(ctx context.Context, opts checkOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	org, repo, err := github.ParseRepo(opts.repo)
	if err != nil {
		return err
	}
	if opts.issue <= 0 {
		return fmt.Errorf("invalid issue number %d", opts.issue)
	}

	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		ui.Warning("GITHUB_TOKEN is not set, using unauthenticated GitHub access")
	}
	ghClient := github.NewClient(ctx, token)

	cfg, err := loadConfig(ctx, ghClient)
	if err != nil {
		return err
	}
	applyCheckFlags(cfg, opts)

	if !cfg.Report.Stdout && token == "" && !opts.dryRun {
		return fmt.Errorf("GITHUB_TOKEN is required to comment on %s/%s#%d (use --stdout to print instead)", org, repo, opts.issue)
	}

	stepNames, err := pipeline.ResolveSteps(cfg.Steps, cfg.Workflow)
	if err != nil {
		return err
	}
	ui.VerboseLog("Running steps: %v", stepNames)

	ui.DryRun = opts.dryRun
	interactive := !isCI()
	reportUI, held := reporterUI(interactive)
	deps := &pipeline.Dependencies{
		GitHub:   ghClient,
		Reporter: report.Fork(cfg.Report.Stdout, reportUI, ghClient, org, repo, opts.issue),
		DryRun:   opts.dryRun,
	}
	if slices.Contains(stepNames, "reviewer") {
		completer, err := llm.New(ctx, llm.Options{
			Provider: cfg.LLM.Provider,
			APIKey:   cfg.LLM.APIKey,
			Model:    cfg.LLM.Model,
			Endpoint: cfg.LLM.Endpoint,
		})
		if err != nil {
			return fmt.Errorf("cannot set up LLM: %w", err)
		}
		deps.LLM = completer
	}
	defer deps.Close()

	issue := &pipeline.Issue{Org: org, Repo: repo, Number: opts.issue}

	var pCtx *pipeline.Context
	if interactive {
		pCtx, err = runWithTUI(ctx, deps, stepNames, issue, cfg)
		_, _ = held.WriteTo(ui.Out)
	} else {
		ui.VerboseLog("Running in CI mode (no TUI)")
		pCtx, err = runPipeline(ctx, deps, stepNames, issue, cfg, nil)
	}
	if err != nil {
		return err
	}

	printSummary(pCtx)
	return nil
}

// reporterUI returns the UI the stdout reporter prints through. While the
// progress view owns the terminal the report is held in the returned
// buffer and printed once the view exits.
func reporterUI(interactive bool) (*output.UI, *bytes.Buffer) {
	if !interactive {
		return ui, nil
	}
	held := &bytes.Buffer{}
	return ui.Held(held), held
}

// printSummary reports how the run ended.
func printSummary(pCtx *pipeline.Context) {
	result := pCtx.Result
	name := pCtx.Issue.FullName()

	switch {
	case result.Ignored:
		ui.Info("%s %s: %s", name, output.DecisionColor(true), result.SkipReason)
	case result.Published:
		ui.Success("Review of %s published to %s", name, result.Destination)
	case result.Report != "":
		ui.DryRunMsg("Would publish to %s:\n%s", result.Destination, result.Report)
	default:
		ui.Info("%s does not match ignore facts", name)
	}
	ui.VerboseLog("Run %s", result.RunID)
}
