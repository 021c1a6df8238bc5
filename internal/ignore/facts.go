// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-18
// Last Modified: 2026-10-18

// Package ignore decides whether an issue is excluded from automated review,
// based on declarative facts read from an ignore file.
//
// A fact file holds one fact per line:
//
//	author:jeff
//	label:enhancement
//	title:*duplicate
//	title:!exact-title-to-keep
//
// Comments, blank lines and quoting are not supported.
package ignore

import (
	"fmt"
	"strings"
)

// Dimension is an issue attribute a fact can constrain.
type Dimension string

const (
	DimAuthor Dimension = "author"
	DimLabel  Dimension = "label"
	DimTitle  Dimension = "title"
)

// Dimensions lists the supported dimensions in fact-file order.
var Dimensions = []Dimension{DimAuthor, DimLabel, DimTitle}

// Facts is the parsed fact table. It is immutable once built by Parse,
// so a single value can be shared between goroutines.
type Facts struct {
	raw      map[Dimension][]string
	compiled map[Dimension][]Pattern
}

// Parse builds a fact table from raw lines.
// The first line without a known "dimension:" prefix aborts the parse.
func Parse(lines []string) (Facts, error) {
	raw := make(map[Dimension][]string, len(Dimensions))
	for _, dim := range Dimensions {
		raw[dim] = []string{}
	}

	for _, line := range lines {
		dim, value, ok := splitFact(line)
		if !ok {
			return Facts{}, fmt.Errorf("parsing error in line %s: %w", line, ErrUnsupportedSyntax)
		}
		raw[dim] = append(raw[dim], value)
	}

	compiled := make(map[Dimension][]Pattern, len(raw))
	for dim, values := range raw {
		patterns := make([]Pattern, len(values))
		for i, v := range values {
			patterns[i] = Classify(v)
		}
		compiled[dim] = patterns
	}

	return Facts{raw: raw, compiled: compiled}, nil
}

// splitFact strips a "dimension:" prefix. The value is returned untouched.
func splitFact(line string) (Dimension, string, bool) {
	for _, dim := range Dimensions {
		if value, ok := strings.CutPrefix(line, string(dim)+":"); ok {
			return dim, value, true
		}
	}
	return "", "", false
}

// Patterns returns a copy of the raw patterns for dim, in input order.
func (f Facts) Patterns(dim string) ([]string, error) {
	values, ok := f.raw[Dimension(dim)]
	if !ok {
		return nil, missingDimension(dim)
	}
	out := make([]string, len(values))
	copy(out, values)
	return out, nil
}

// Len returns the total number of facts across all dimensions.
func (f Facts) Len() int {
	n := 0
	for _, values := range f.raw {
		n += len(values)
	}
	return n
}

func (f Facts) lookup(dim string) ([]Pattern, error) {
	patterns, ok := f.compiled[Dimension(dim)]
	if !ok {
		return nil, missingDimension(dim)
	}
	return patterns, nil
}

func missingDimension(dim string) error {
	return fmt.Errorf("failed to obtain %s facts: %w", dim, ErrUnknownDimension)
}
