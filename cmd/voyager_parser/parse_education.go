package main

import (
	"os"

	"github.com/jonathan/voyager-parser/internal/assemble"
	"github.com/jonathan/voyager-parser/internal/observability"
	"github.com/spf13/cobra"
)

var parseEducationCmd = &cobra.Command{
	Use:   "parse-education",
	Short: "Parse an education-section response into education entries",
	RunE:  runParseEducation,
}

var (
	educationInputFile  string
	educationOutputFile string
	educationVerbose    bool
)

func init() {
	parseEducationCmd.Flags().StringVarP(&educationInputFile, "in", "i", "", "Path to normalized response JSON file")
	parseEducationCmd.Flags().StringVarP(&educationOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseEducationCmd.Flags().BoolVarP(&educationVerbose, "verbose", "v", false, "Print a summary and assembly warnings")

	rootCmd.AddCommand(parseEducationCmd)
}

func runParseEducation(_ *cobra.Command, _ []string) error {
	raw, err := readRawResponse(educationInputFile)
	if err != nil {
		return err
	}

	entries, diag, err := assemble.Education(raw, assemble.Options{})
	if err != nil {
		return err
	}

	if educationVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintEducation(entries)
		printer.PrintDiagnostics(diag)
	}

	return writeOutput(educationOutputFile, map[string]any{"education": entries})
}
