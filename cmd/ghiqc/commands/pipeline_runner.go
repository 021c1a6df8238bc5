// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-18

package commands

import (
	"context"
	"encoding/json"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/similigh/ghiqc/internal/core/config"
	"github.com/similigh/ghiqc/internal/core/pipeline"
	"github.com/similigh/ghiqc/internal/steps"
	"github.com/similigh/ghiqc/internal/tui"
)

// Wrapper step to send status updates
type statusReportingStep struct {
	inner      pipeline.Step
	statusChan chan<- tui.PipelineStatusMsg
}

func (s *statusReportingStep) Name() string {
	return s.inner.Name()
}

func (s *statusReportingStep) Run(ctx *pipeline.Context) error {
	s.statusChan <- tui.PipelineStatusMsg{Step: s.Name(), Status: tui.StatusStarted, Message: "Starting..."}

	err := s.inner.Run(ctx)

	if err != nil {
		if errors.Is(err, pipeline.ErrSkipPipeline) {
			s.statusChan <- tui.PipelineStatusMsg{Step: s.Name(), Status: tui.StatusSkipped, Message: ctx.Result.SkipReason}
			return err
		}
		s.statusChan <- tui.PipelineStatusMsg{Step: s.Name(), Status: tui.StatusError, Message: err.Error()}
		return err
	}

	s.statusChan <- tui.PipelineStatusMsg{Step: s.Name(), Status: tui.StatusSuccess, Message: "Completed"}
	return nil
}

// buildPipeline resolves step names into a runnable pipeline. When
// statusChan is set every step reports its progress on it.
func buildPipeline(deps *pipeline.Dependencies, stepNames []string, statusChan chan<- tui.PipelineStatusMsg) (*pipeline.Pipeline, error) {
	registry := pipeline.NewRegistry()
	steps.RegisterAll(registry)

	built, err := registry.BuildFromNames(stepNames, deps)
	if err != nil {
		return nil, err
	}
	if statusChan == nil {
		return built, nil
	}

	var wrapped []pipeline.Step
	for _, step := range built.Steps() {
		wrapped = append(wrapped, &statusReportingStep{inner: step, statusChan: statusChan})
	}
	return pipeline.New(wrapped...), nil
}

// runPipeline runs the steps for issue and returns the final context.
func runPipeline(ctx context.Context, deps *pipeline.Dependencies, stepNames []string, issue *pipeline.Issue, cfg *config.Config, statusChan chan<- tui.PipelineStatusMsg) (*pipeline.Context, error) {
	pCtx := pipeline.NewContext(ctx, issue, cfg)

	p, err := buildPipeline(deps, stepNames, statusChan)
	if err != nil {
		if statusChan != nil {
			statusChan <- tui.PipelineStatusMsg{Step: "init", Status: tui.StatusError, Message: err.Error()}
		}
		return pCtx, err
	}

	return pCtx, p.Run(pCtx)
}

// runWithTUI runs the pipeline behind the bubbletea progress view.
func runWithTUI(ctx context.Context, deps *pipeline.Dependencies, stepNames []string, issue *pipeline.Issue, cfg *config.Config) (*pipeline.Context, error) {
	// Two updates per step plus a possible init failure, so the pipeline
	// never blocks when the view quits early.
	statusChan := make(chan tui.PipelineStatusMsg, 2*len(stepNames)+1)
	program := tea.NewProgram(tui.NewModel(issue.FullName(), stepNames, statusChan))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		pCtx   *pipeline.Context
		runErr error
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer close(statusChan)
		pCtx, runErr = runPipeline(ctx, deps, stepNames, issue, cfg, statusChan)
		if runErr != nil {
			program.Send(tui.ResultMsg{Success: false, Output: runErr.Error()})
			return
		}
		resultBytes, _ := json.MarshalIndent(pCtx.Result, "", "  ")
		program.Send(tui.ResultMsg{Success: true, Output: string(resultBytes)})
	}()

	_, err := program.Run()
	// Quitting the view abandons the run.
	cancel()
	<-done
	if err != nil {
		return nil, err
	}
	return pCtx, runErr
}
