package main

import (
	"os"

	"github.com/jonathan/voyager-parser/internal/assemble"
	"github.com/jonathan/voyager-parser/internal/observability"
	"github.com/spf13/cobra"
)

var parseSearchCmd = &cobra.Command{
	Use:   "parse-search",
	Short: "Parse a people-search response into search-result records",
	RunE:  runParseSearch,
}

var (
	searchInputFile  string
	searchOutputFile string
	searchVerbose    bool
)

func init() {
	parseSearchCmd.Flags().StringVarP(&searchInputFile, "in", "i", "", "Path to normalized response JSON file")
	parseSearchCmd.Flags().StringVarP(&searchOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseSearchCmd.Flags().BoolVarP(&searchVerbose, "verbose", "v", false, "Print a summary and assembly warnings")

	rootCmd.AddCommand(parseSearchCmd)
}

func runParseSearch(_ *cobra.Command, _ []string) error {
	raw, err := readRawResponse(searchInputFile)
	if err != nil {
		return err
	}

	results, diag, err := assemble.SearchResults(raw, assemble.Options{})
	if err != nil {
		return err
	}

	if searchVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintSearchResults(results)
		printer.PrintDiagnostics(diag)
	}

	return writeOutput(searchOutputFile, map[string]any{"results": results})
}
