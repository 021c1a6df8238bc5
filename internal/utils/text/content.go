// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/kavirubc
// Created: 2026-02-13
// Last Modified: 2026-10-18

// Package text holds helpers for preparing issue text for prompts.
package text

import (
	"fmt"
	"strings"
)

// MaxBodyLen is the longest issue body passed to the LLM.
const MaxBodyLen = 4000

// Truncate limits s to maxLen runes, marking the cut with "...".
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}

// BuildIssueContent renders the issue title and body as prompt text.
// The body is trimmed and cut at MaxBodyLen; an empty body is reported as
// such so the reviewer can point it out.
func BuildIssueContent(title, body string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Title: %s\n", title)

	b := strings.TrimSpace(body)
	if b == "" {
		sb.WriteString("Bug report: (empty)")
		return sb.String()
	}
	fmt.Fprintf(&sb, "Bug report: %s", Truncate(b, MaxBodyLen))
	return sb.String()
}
