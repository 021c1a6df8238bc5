// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-18
// Last Modified: 2026-10-18

package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/similigh/ghiqc/internal/ignore"
	"github.com/similigh/ghiqc/internal/output"
)

var factsCmd = &cobra.Command{
	Use:   "facts",
	Short: "Inspect ignore facts",
}

var factsValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Parse a facts file and show what it contains",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ignore.DefaultFileName
		if len(args) == 1 {
			path = args[0]
		}
		return runFactsValidate(path)
	},
}

var (
	testFile   string
	testTitle  string
	testAuthor string
	testLabels []string
)

var factsTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Evaluate an issue against a facts file",
	Example: `  ghiqc facts test --title "[WIP] refactor" --author jeff --label bug --label ui`,
	RunE: func(cmd *cobra.Command, args []string) error {
		issue := ignore.Issue{Title: testTitle, Author: testAuthor, Labels: testLabels}
		return runFactsTest(testFile, issue)
	},
}

func init() {
	rootCmd.AddCommand(factsCmd)
	factsCmd.AddCommand(factsValidateCmd)
	factsCmd.AddCommand(factsTestCmd)

	factsTestCmd.Flags().StringVarP(&testFile, "file", "f", ignore.DefaultFileName, "Facts file")
	factsTestCmd.Flags().StringVar(&testTitle, "title", "", "Issue title")
	factsTestCmd.Flags().StringVar(&testAuthor, "author", "", "Issue author login")
	factsTestCmd.Flags().StringArrayVar(&testLabels, "label", nil, "Issue label (repeatable)")
}

func runFactsValidate(path string) error {
	facts, err := ignore.NewFile(path).Facts()
	if err != nil {
		return err
	}

	ui.Success("%s: %d fact(s)", path, facts.Len())

	table := ui.Table([]string{"DIMENSION", "COUNT", "PATTERNS"})
	for _, dim := range ignore.Dimensions {
		patterns, err := facts.Patterns(string(dim))
		if err != nil {
			return err
		}
		kinds := make([]string, 0, len(patterns))
		for _, p := range patterns {
			kinds = append(kinds, fmt.Sprintf("%s(%s)", ignore.Classify(p).Kind, p))
		}
		if err := table.Append([]string{string(dim), strconv.Itoa(len(patterns)), strings.Join(kinds, " ")}); err != nil {
			return err
		}
	}
	return table.Render()
}

func runFactsTest(path string, issue ignore.Issue) error {
	facts, err := ignore.NewFile(path).Facts()
	if err != nil {
		return err
	}

	decision, err := ignore.Evaluate(issue, facts)
	if err != nil {
		return err
	}

	if decision.Ignore {
		ui.Info("%s: %s", output.DecisionColor(true), decision.Reason())
		return nil
	}
	ui.Info("%s: no fact matches", output.DecisionColor(false))
	return nil
}
