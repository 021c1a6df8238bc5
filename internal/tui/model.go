// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-18

// Package tui renders pipeline progress for interactive runs.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor = lipgloss.Color("#ff7300")
	subtleColor  = lipgloss.Color("#626262")
	successColor = lipgloss.Color("#04B575")
	skipColor    = lipgloss.Color("#E5C07B")
	errorColor   = lipgloss.Color("#FF0000")

	titleStyle   = lipgloss.NewStyle().Foreground(primaryColor).Bold(true).MarginBottom(1)
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeStyle  = lipgloss.NewStyle().Foreground(primaryColor).Bold(true)
	doneStyle    = lipgloss.NewStyle().Foreground(successColor)
	skipStyle    = lipgloss.NewStyle().Foreground(skipColor)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor)
	noteStyle    = lipgloss.NewStyle().Foreground(subtleColor)
)

// activityTimeout bounds the wait for the next pipeline update; a review
// may wait on a slow LLM.
const activityTimeout = 2 * time.Minute

// Status is the state of a pipeline step.
type Status string

const (
	StatusStarted Status = "started"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
	StatusSkipped Status = "skipped"
)

// PipelineStatusMsg indicates a status update from the pipeline.
type PipelineStatusMsg struct {
	Step    string
	Status  Status
	Message string
}

// ResultMsg indicates the final result.
type ResultMsg struct {
	Success bool
	Output  string
}

// stepState is what the view knows about one step.
type stepState struct {
	status  Status
	note    string
	updated time.Time
}

// Model for the TUI.
type Model struct {
	title      string
	spinner    spinner.Model
	steps      []string
	states     map[string]stepState
	current    int
	quitting   bool
	err        error
	statusChan <-chan PipelineStatusMsg
}

// NewModel creates a new TUI model for the issue named in title.
func NewModel(title string, steps []string, statusChan <-chan PipelineStatusMsg) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(primaryColor)

	return Model{
		title:      title,
		spinner:    s,
		steps:      steps,
		states:     make(map[string]stepState, len(steps)),
		statusChan: statusChan,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForActivity())
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case PipelineStatusMsg:
		m.states[msg.Step] = stepState{status: msg.Status, note: msg.Message, updated: time.Now()}
		if i := m.indexOf(msg.Step); i >= 0 {
			m.current = i
		}
		if msg.Status == StatusError {
			m.err = fmt.Errorf("step %s failed: %s", msg.Step, msg.Message)
		}
		return m, m.waitForActivity()

	case ResultMsg:
		// Print the final output before quitting so the user can see the result
		if msg.Output != "" {
			fmt.Println("\n" + msg.Output)
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) indexOf(step string) int {
	for i, s := range m.steps {
		if s == step {
			return i
		}
	}
	return -1
}

func (m Model) waitForActivity() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg, ok := <-m.statusChan:
			if !ok {
				return ResultMsg{Success: true}
			}
			return msg
		case <-time.After(activityTimeout):
			return ResultMsg{Output: "pipeline timed out waiting for activity"}
		}
	}
}

// View renders the TUI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("ghiqc · " + m.title))
	b.WriteString("\n\n")

	for i, step := range m.steps {
		b.WriteString(m.renderStep(i, step))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n")
	}

	b.WriteString(noteStyle.Render("\nPress q to quit\n"))
	return b.String()
}

// renderStep draws one step with its marker and latest note.
func (m Model) renderStep(i int, step string) string {
	state, seen := m.states[step]

	marker, style := "  ", pendingStyle
	switch {
	case state.status == StatusSuccess:
		marker, style = "✓ ", doneStyle
	case state.status == StatusError:
		marker, style = "✗ ", errorStyle
	case state.status == StatusSkipped:
		marker, style = "○ ", skipStyle
	case seen || i == m.current:
		marker, style = m.spinner.View()+" ", activeStyle
	}

	line := style.Render(marker + step)
	if state.note != "" {
		line += "  " + noteStyle.Render(fmt.Sprintf("[%s] %s", state.updated.Format("15:04:05"), state.note))
	}
	return line
}
