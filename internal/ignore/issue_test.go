// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-18
// Last Modified: 2026-10-18

package ignore

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIgnoreIssue(t *testing.T) {
	facts := mustParse(t,
		"author:jeff",
		"label:[wontfix,invalid]",
		"title:*[WIP]",
	)

	tests := []struct {
		name  string
		issue Issue
		want  bool
	}{
		{"nothing matches", Issue{Title: "Crash on start", Author: "alice", Labels: []string{"bug"}}, false},
		{"author matches", Issue{Title: "Crash on start", Author: "jeff"}, true},
		{"title matches", Issue{Title: "[WIP] draft", Author: "alice"}, true},
		{"one of many labels matches", Issue{Title: "Crash", Author: "alice", Labels: []string{"bug", "invalid", "ui"}}, true},
		{"no labels", Issue{Title: "Crash", Author: "alice", Labels: nil}, false},
		{"title and author both match", Issue{Title: "[WIP] x", Author: "jeff"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IgnoreIssue(tt.issue, facts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIgnoreIssueIsOrOfChecks(t *testing.T) {
	facts := mustParse(t, "author:!jeff", "label:!bug", "title:*fix")

	issues := []Issue{
		{Title: "fix it", Author: "jeff", Labels: []string{"bug"}},
		{Title: "nope", Author: "jeff", Labels: []string{"bug", "ui"}},
		{Title: "nope", Author: "jeff", Labels: []string{"bug"}},
		{Title: "nope", Author: "alice"},
		{Title: "", Author: "jeff"},
	}

	for _, issue := range issues {
		var want bool
		for _, label := range issue.Labels {
			hit, err := IgnoresDim(label, "label", facts)
			require.NoError(t, err)
			want = want || hit
		}
		title, err := IgnoresTitle(issue.Title, facts)
		require.NoError(t, err)
		author, err := IgnoresDim(issue.Author, "author", facts)
		require.NoError(t, err)
		want = want || title || author

		got, err := IgnoreIssue(issue, facts)
		require.NoError(t, err)
		assert.Equal(t, want, got, "issue %+v", issue)
	}
}

func TestEvaluateReportsEveryLabelMatch(t *testing.T) {
	facts := mustParse(t, "label:[wontfix,invalid]")

	d, err := Evaluate(Issue{Title: "t", Author: "a", Labels: []string{"invalid", "bug", "wontfix"}}, facts)
	require.NoError(t, err)

	assert.True(t, d.Ignore)
	assert.Equal(t, []Match{
		{Dimension: DimLabel, Value: "invalid"},
		{Dimension: DimLabel, Value: "wontfix"},
	}, d.Matches)
	assert.Equal(t, `matches ignore facts: label "invalid", label "wontfix"`, d.Reason())
}

func TestEvaluateSkipsAuthorWhenTitleMatches(t *testing.T) {
	facts := mustParse(t, "title:release", "author:bot")

	d, err := Evaluate(Issue{Title: "release", Author: "bot"}, facts)
	require.NoError(t, err)
	assert.Equal(t, []Match{{Dimension: DimTitle, Value: "release"}}, d.Matches)

	d, err = Evaluate(Issue{Title: "other", Author: "bot"}, facts)
	require.NoError(t, err)
	assert.Equal(t, []Match{{Dimension: DimAuthor, Value: "bot"}}, d.Matches)
}

func TestEvaluateNotIgnored(t *testing.T) {
	d, err := Evaluate(Issue{Title: "t", Author: "a"}, mustParse(t))
	require.NoError(t, err)
	assert.False(t, d.Ignore)
	assert.Empty(t, d.Reason())
}

func TestIgnoreIssueWithoutTable(t *testing.T) {
	_, err := IgnoreIssue(Issue{Title: "t", Author: "a", Labels: []string{"bug"}}, Facts{})
	assert.True(t, errors.Is(err, ErrUnknownDimension))
}

func TestIgnoreIssueConcurrent(t *testing.T) {
	facts := mustParse(t, "author:[jeff,foo]", "title:*chore")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			author := "alice"
			if i%2 == 0 {
				author = "jeff"
			}
			got, err := IgnoreIssue(Issue{Title: "bug", Author: author}, facts)
			assert.NoError(t, err)
			assert.Equal(t, i%2 == 0, got)
		}(i)
	}
	wg.Wait()
}
