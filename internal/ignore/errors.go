// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-18
// Last Modified: 2026-10-18

package ignore

import "errors"

// Sentinel errors for fact parsing and lookup.
var (
	// ErrUnsupportedSyntax indicates a fact line without a known dimension prefix.
	ErrUnsupportedSyntax = errors.New("unsupported syntax")
	// ErrUnknownDimension indicates a lookup for a dimension the fact table does not hold.
	ErrUnknownDimension = errors.New("unknown dimension")
)
