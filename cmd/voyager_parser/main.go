// Package main provides the voyager_parser CLI: it turns normalized
// Voyager response dumps into clean, typed profile records.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "voyager_parser",
	Short: "Parse normalized Voyager responses into clean profile records",
	Long:  "voyager_parser resolves the entity graph of normalized Voyager API responses and extracts typed experience, education, skill, search and contact records.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
