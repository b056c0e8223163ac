package main

import (
	"os"

	"github.com/jonathan/voyager-parser/internal/assemble"
	"github.com/jonathan/voyager-parser/internal/observability"
	"github.com/spf13/cobra"
)

var parseSkillsCmd = &cobra.Command{
	Use:   "parse-skills",
	Short: "Parse a skills-section response into endorsed skill entries",
	RunE:  runParseSkills,
}

var (
	skillsInputFile  string
	skillsOutputFile string
	skillsVerbose    bool
)

func init() {
	parseSkillsCmd.Flags().StringVarP(&skillsInputFile, "in", "i", "", "Path to normalized response JSON file")
	parseSkillsCmd.Flags().StringVarP(&skillsOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseSkillsCmd.Flags().BoolVarP(&skillsVerbose, "verbose", "v", false, "Print a summary and assembly warnings")

	rootCmd.AddCommand(parseSkillsCmd)
}

func runParseSkills(_ *cobra.Command, _ []string) error {
	raw, err := readRawResponse(skillsInputFile)
	if err != nil {
		return err
	}

	skills, diag, err := assemble.Skills(raw, assemble.Options{})
	if err != nil {
		return err
	}

	if skillsVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintSkills(skills)
		printer.PrintDiagnostics(diag)
	}

	return writeOutput(skillsOutputFile, map[string]any{"skills": skills})
}
