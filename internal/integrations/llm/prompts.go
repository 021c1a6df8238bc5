// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-18

package llm

import (
	"fmt"

	"github.com/similigh/ghiqc/internal/utils/text"
)

const reviewerPersona = "You are a developer who reviews incoming bug reports submitted through GitHub Issues."

// ReviewMessages builds the conversation asking for a short quality review
// of a bug report.
func ReviewMessages(title, body string) []Message {
	return []Message{
		{Role: RoleSystem, Content: reviewerPersona},
		{Role: RoleUser, Content: buildReviewPrompt(title, body)},
	}
}

func buildReviewPrompt(title, body string) string {
	return fmt.Sprintf(`Review the bug report below and write a short summary.
The summary must name the single biggest problem with how the report is written and give one concrete suggestion to fix it.
Keep it under 30 words and output nothing else.

%s`,
		text.BuildIssueContent(title, body),
	)
}
