// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-18
// Last Modified: 2026-10-18

// Package output prints ghiqc's messages to the terminal: run progress,
// ignore decisions, fact tables and reviews printed with --stdout.
package output

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// UI writes prefixed messages. Warnings and errors go to ErrOut.
type UI struct {
	Verbose bool
	DryRun  bool
	Out     io.Writer
	ErrOut  io.Writer
}

// New creates a UI on the process's stdout and stderr.
func New() *UI {
	return &UI{Out: os.Stdout, ErrOut: os.Stderr}
}

// Held returns a UI with the same modes that writes everything into buf.
// The check command uses it to keep a --stdout review off the terminal
// while the progress view is drawn.
func (u *UI) Held(buf *bytes.Buffer) *UI {
	return &UI{Verbose: u.Verbose, DryRun: u.DryRun, Out: buf, ErrOut: buf}
}

var (
	markInfo    = color.New(color.FgHiBlue).Sprint("i")
	markOK      = color.New(color.FgHiGreen).Sprint("✓")
	markWarn    = color.New(color.FgHiYellow).Sprint("⚠")
	markFail    = color.New(color.FgHiRed).Sprint("✗")
	markVerbose = color.New(color.FgHiBlue).Sprint("  →")

	ignoredText  = color.New(color.FgHiYellow).SprintFunc()
	reviewedText = color.New(color.FgHiGreen).SprintFunc()
)

// DecisionColor names the outcome of the ignore check for an issue.
func DecisionColor(ignored bool) string {
	if ignored {
		return ignoredText("ignored")
	}
	return reviewedText("reviewed")
}

func line(w io.Writer, mark, format string, a []any) {
	fmt.Fprintf(w, "%s %s\n", mark, fmt.Sprintf(format, a...))
}

func (u *UI) Info(format string, a ...any) { line(u.Out, markInfo, format, a) }
func (u *UI) Success(format string, a ...any) { line(u.Out, markOK, format, a) }
func (u *UI) Warning(format string, a ...any) { line(u.ErrOut, markWarn, format, a) }
func (u *UI) Error(format string, a ...any) { line(u.ErrOut, markFail, format, a) }

// VerboseLog prints only with --verbose.
func (u *UI) VerboseLog(format string, a ...any) {
	if u.Verbose {
		line(u.Out, markVerbose, format, a)
	}
}

// DryRunMsg describes a side effect a --dry-run skipped.
func (u *UI) DryRunMsg(format string, a ...any) {
	if u.DryRun {
		line(u.ErrOut, markWarn, "[DRY-RUN] "+format, a)
	}
}

// Table returns a borderless, left-aligned table on Out, used by
// "facts validate" to list patterns per dimension.
func (u *UI) Table(headers []string) *tablewriter.Table {
	table := tablewriter.NewTable(u.Out,
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Lines:      tw.LinesNone,
				Separators: tw.SeparatorsNone,
			},
		}),
		tablewriter.WithPadding(tw.Padding{Left: "", Right: "  "}),
	)
	table.Header(headers)
	return table
}
