// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-18
// Last Modified: 2026-10-18

package ignore

// MatchesDimension reports whether any of the raw patterns matches value.
// An empty pattern list never matches.
func MatchesDimension(value string, patterns []string) bool {
	for _, raw := range patterns {
		if Classify(raw).Match(value) {
			return true
		}
	}
	return false
}

// IgnoresTitle reports whether the title facts match title.
func IgnoresTitle(title string, facts Facts) (bool, error) {
	return IgnoresDim(title, string(DimTitle), facts)
}

// IgnoresDim reports whether the facts of dimension dim match value.
// A dimension the table does not hold is an error, never a silent miss.
func IgnoresDim(value, dim string, facts Facts) (bool, error) {
	patterns, err := facts.lookup(dim)
	if err != nil {
		return false, err
	}
	return matchAny(value, patterns), nil
}

func matchAny(value string, patterns []Pattern) bool {
	for _, p := range patterns {
		if p.Match(value) {
			return true
		}
	}
	return false
}
