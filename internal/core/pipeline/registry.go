// Package pipeline provides step registration and preset workflow building.
package pipeline

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/similigh/ghiqc/internal/integrations/github"
	"github.com/similigh/ghiqc/internal/integrations/llm"
	"github.com/similigh/ghiqc/internal/report"
)

// Registry holds registered step factories.
// Step factories create Step instances, allowing for dependency injection.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]StepFactory
}

// StepFactory is a function that creates a Step.
// It receives dependencies (like clients, config) as parameters.
type StepFactory func(deps *Dependencies) (Step, error)

// Dependencies holds the dependencies that can be injected into steps.
type Dependencies struct {
	GitHub   *github.Client
	LLM      llm.Completer
	Reporter report.Reporter
	DryRun   bool
}

// Close releases clients that hold resources.
func (d *Dependencies) Close() {
	if c, ok := d.LLM.(interface{ Close() error }); ok {
		_ = c.Close()
	}
}

// NewRegistry creates a new step registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]StepFactory),
	}
}

// Register adds a step factory to the registry.
func (r *Registry) Register(name string, factory StepFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Get retrieves a step factory by name.
func (r *Registry) Get(name string) (StepFactory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	factory, ok := r.factories[name]
	return factory, ok
}

// Names returns the registered step names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuildFromNames creates a pipeline from a list of step names.
func (r *Registry) BuildFromNames(names []string, deps *Dependencies) (*Pipeline, error) {
	var steps []Step
	for _, name := range names {
		factory, ok := r.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown step: %s (available: %s)", name, strings.Join(r.Names(), ", "))
		}
		step, err := factory(deps)
		if err != nil {
			return nil, fmt.Errorf("failed to create step '%s': %w", name, err)
		}
		steps = append(steps, step)
	}
	return New(steps...), nil
}

// Presets defines the built-in workflow presets.
var Presets = map[string][]string{
	// review: fetch, check ignore facts, ask the LLM and publish the review
	"review": {
		"fetch_issue",
		"ignore_check",
		"reviewer",
		"reporter",
	},

	// ignore-only: just report whether the issue would be ignored
	"ignore-only": {
		"fetch_issue",
		"ignore_check",
	},
}

// DefaultWorkflow is used when neither steps nor a workflow is configured.
const DefaultWorkflow = "review"

// GetPreset returns the step names for a preset workflow.
func GetPreset(name string) ([]string, bool) {
	steps, ok := Presets[name]
	return steps, ok
}

// PresetNames returns the preset workflow names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveSteps determines the steps to use based on config.
// Priority: explicit steps > workflow preset > default.
// An unknown workflow is an error, never a fallback to the default.
func ResolveSteps(explicitSteps []string, workflow string) ([]string, error) {
	if len(explicitSteps) > 0 {
		return explicitSteps, nil
	}
	if workflow == "" {
		workflow = DefaultWorkflow
	}
	preset, ok := GetPreset(workflow)
	if !ok {
		return nil, fmt.Errorf("unknown workflow: %s (available: %s)", workflow, strings.Join(PresetNames(), ", "))
	}
	return preset, nil
}
