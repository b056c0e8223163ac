package main

import (
	"os"

	"github.com/jonathan/voyager-parser/internal/assemble"
	"github.com/jonathan/voyager-parser/internal/observability"
	"github.com/spf13/cobra"
)

var parseExperienceCmd = &cobra.Command{
	Use:   "parse-experience",
	Short: "Parse an experience-section response into work-history entries",
	RunE:  runParseExperience,
}

var (
	experienceInputFile  string
	experienceOutputFile string
	experienceVerbose    bool
)

func init() {
	parseExperienceCmd.Flags().StringVarP(&experienceInputFile, "in", "i", "", "Path to normalized response JSON file")
	parseExperienceCmd.Flags().StringVarP(&experienceOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseExperienceCmd.Flags().BoolVarP(&experienceVerbose, "verbose", "v", false, "Print a summary and assembly warnings")

	rootCmd.AddCommand(parseExperienceCmd)
}

func runParseExperience(_ *cobra.Command, _ []string) error {
	raw, err := readRawResponse(experienceInputFile)
	if err != nil {
		return err
	}

	entries, diag, err := assemble.Experience(raw, assemble.Options{})
	if err != nil {
		return err
	}

	if experienceVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintExperience(entries)
		printer.PrintDiagnostics(diag)
	}

	return writeOutput(experienceOutputFile, map[string]any{"work_experience": entries})
}
