// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-18

// Package steps contains the modular "Lego block" pipeline steps.
// Each step implements the pipeline.Step interface.
package steps

import (
	"github.com/similigh/ghiqc/internal/core/pipeline"
)

// RegisterAll registers all built-in steps with the registry.
func RegisterAll(r *pipeline.Registry) {
	r.Register("fetch_issue", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewFetchIssue(deps), nil
	})

	r.Register("ignore_check", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewIgnoreCheck(deps), nil
	})

	r.Register("reviewer", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewReviewer(deps), nil
	})

	r.Register("reporter", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewReporter(deps), nil
	})
}
