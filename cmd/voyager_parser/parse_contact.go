package main

import (
	"os"

	"github.com/jonathan/voyager-parser/internal/assemble"
	"github.com/jonathan/voyager-parser/internal/observability"
	"github.com/spf13/cobra"
)

var parseContactCmd = &cobra.Command{
	Use:   "parse-contact",
	Short: "Parse a contact-details response into a contact-info record",
	RunE:  runParseContact,
}

var (
	contactInputFile  string
	contactOutputFile string
	contactVerbose    bool
)

func init() {
	parseContactCmd.Flags().StringVarP(&contactInputFile, "in", "i", "", "Path to normalized response JSON file")
	parseContactCmd.Flags().StringVarP(&contactOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseContactCmd.Flags().BoolVarP(&contactVerbose, "verbose", "v", false, "Print a summary and assembly warnings")

	rootCmd.AddCommand(parseContactCmd)
}

func runParseContact(_ *cobra.Command, _ []string) error {
	raw, err := readRawResponse(contactInputFile)
	if err != nil {
		return err
	}

	info, diag, err := assemble.Contact(raw, assemble.Options{})
	if err != nil {
		return err
	}

	if contactVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintContactInfo(info)
		printer.PrintDiagnostics(diag)
	}

	return writeOutput(contactOutputFile, info)
}
