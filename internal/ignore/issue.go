// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-18
// Last Modified: 2026-10-18

package ignore

import (
	"fmt"
	"strings"
)

// Issue is the read-only view of an issue consumed by the ignore check.
type Issue struct {
	Title  string
	Author string
	Labels []string
}

// Match names an issue attribute that matched the facts.
type Match struct {
	Dimension Dimension
	Value     string
}

// Decision is the outcome of evaluating an issue against the facts.
type Decision struct {
	Ignore  bool
	Matches []Match
}

// Reason describes which attributes caused the issue to be ignored.
func (d Decision) Reason() string {
	if !d.Ignore {
		return ""
	}
	parts := make([]string, 0, len(d.Matches))
	for _, m := range d.Matches {
		parts = append(parts, fmt.Sprintf("%s %q", m.Dimension, m.Value))
	}
	return "matches ignore facts: " + strings.Join(parts, ", ")
}

// Evaluate checks every label, then the title, then the author.
// The author is only consulted when the title did not match; the resulting
// Ignore flag is the OR of all three checks either way.
func Evaluate(issue Issue, facts Facts) (Decision, error) {
	var d Decision

	for _, label := range issue.Labels {
		hit, err := IgnoresDim(label, string(DimLabel), facts)
		if err != nil {
			return Decision{}, err
		}
		if hit {
			d.Matches = append(d.Matches, Match{Dimension: DimLabel, Value: label})
		}
	}

	hit, err := IgnoresTitle(issue.Title, facts)
	if err != nil {
		return Decision{}, err
	}
	if hit {
		d.Matches = append(d.Matches, Match{Dimension: DimTitle, Value: issue.Title})
	} else {
		hit, err = IgnoresDim(issue.Author, string(DimAuthor), facts)
		if err != nil {
			return Decision{}, err
		}
		if hit {
			d.Matches = append(d.Matches, Match{Dimension: DimAuthor, Value: issue.Author})
		}
	}

	d.Ignore = len(d.Matches) > 0
	return d, nil
}

// IgnoreIssue reports whether the issue must be skipped.
func IgnoreIssue(issue Issue, facts Facts) (bool, error) {
	d, err := Evaluate(issue, facts)
	if err != nil {
		return false, err
	}
	return d.Ignore, nil
}
