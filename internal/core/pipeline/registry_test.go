// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-18
// Last Modified: 2026-10-18

package pipeline

import (
	"reflect"
	"strings"
	"testing"
)

type namedStep string

func (s namedStep) Name() string { return string(s) }
func (s namedStep) Run(_ *Context) error { return nil }

func stepFactory(name string) StepFactory {
	return func(_ *Dependencies) (Step, error) { return namedStep(name), nil }
}

func TestResolveSteps(t *testing.T) {
	tests := []struct {
		name     string
		explicit []string
		workflow string
		want     []string
	}{
		{"default", nil, "", Presets["review"]},
		{"preset", nil, "ignore-only", Presets["ignore-only"]},
		{"explicit wins", []string{"fetch_issue"}, "nope", []string{"fetch_issue"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveSteps(tt.explicit, tt.workflow)
			if err != nil {
				t.Fatalf("ResolveSteps: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveStepsUnknownWorkflow(t *testing.T) {
	steps, err := ResolveSteps(nil, "reveiw")
	if err == nil {
		t.Fatalf("expected an error, got steps %v", steps)
	}
	msg := err.Error()
	if !strings.Contains(msg, "reveiw") || !strings.Contains(msg, "ignore-only, review") {
		t.Errorf("error should name the workflow and the presets, got %q", msg)
	}
}

func TestBuildFromNames(t *testing.T) {
	r := NewRegistry()
	r.Register("fetch_issue", stepFactory("fetch_issue"))
	r.Register("ignore_check", stepFactory("ignore_check"))

	p, err := r.BuildFromNames([]string{"fetch_issue", "ignore_check"}, &Dependencies{})
	if err != nil {
		t.Fatalf("BuildFromNames: %v", err)
	}
	if len(p.Steps()) != 2 || p.Steps()[1].Name() != "ignore_check" {
		t.Errorf("unexpected steps %v", p.Steps())
	}

	_, err = r.BuildFromNames([]string{"fetch_isue"}, &Dependencies{})
	if err == nil {
		t.Fatal("expected unknown step error")
	}
	if !strings.Contains(err.Error(), "available: fetch_issue, ignore_check") {
		t.Errorf("error should list registered steps, got %q", err)
	}
}
