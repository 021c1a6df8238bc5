// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-18
// Last Modified: 2026-10-18

package ignore

import (
	"slices"
	"strings"
)

// Kind is the match form of a fact pattern.
// Negated kinds mirror the base kinds, offset by NegatedExact.
type Kind int

const (
	Exact Kind = iota
	Prefix
	Array
	NegatedExact
	NegatedPrefix
	NegatedArray
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Exact:
		return "exact"
	case Prefix:
		return "prefix"
	case Array:
		return "array"
	case NegatedExact:
		return "negated-exact"
	case NegatedPrefix:
		return "negated-prefix"
	case NegatedArray:
		return "negated-array"
	default:
		return "unknown"
	}
}

// Pattern is a classified fact value.
type Pattern struct {
	Raw  string
	Kind Kind

	// Literal holds the exact value or prefix for non-array kinds.
	Literal string

	// Values holds the comma-split elements for array kinds.
	Values []string
}

// Classify turns a raw pattern into its match form.
// Only the first one or two characters are inspected; there is no escaping,
// so every string has a classification.
func Classify(raw string) Pattern {
	p := Pattern{Raw: raw}

	body := raw
	negated := false
	if rest, ok := strings.CutPrefix(body, "!"); ok {
		negated = true
		body = rest
	}

	switch {
	case strings.HasPrefix(body, "["):
		p.Kind = Array
		p.Values = splitArray(body[1:])
	case strings.HasPrefix(body, "*"):
		p.Kind = Prefix
		p.Literal = body[1:]
	default:
		p.Kind = Exact
		p.Literal = body
	}

	if negated {
		p.Kind += NegatedExact
	}
	return p
}

// splitArray drops every ']' and splits on ','. Elements are not trimmed.
func splitArray(inside string) []string {
	return strings.Split(strings.ReplaceAll(inside, "]", ""), ",")
}

// Negated reports whether the pattern inverts its base match.
func (p Pattern) Negated() bool {
	return p.Kind >= NegatedExact
}

// Match reports whether value satisfies the pattern.
func (p Pattern) Match(value string) bool {
	var hit bool
	switch p.Kind {
	case Exact, NegatedExact:
		hit = value == p.Literal
	case Prefix, NegatedPrefix:
		hit = strings.HasPrefix(value, p.Literal)
	case Array, NegatedArray:
		hit = slices.Contains(p.Values, value)
	}
	if p.Negated() {
		return !hit
	}
	return hit
}
