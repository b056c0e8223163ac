package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/voyager-parser/internal/types"
)

// readRawResponse loads and decodes one normalized response dump.
func readRawResponse(path string) (*types.RawResponse, error) {
	if path == "" {
		return nil, fmt.Errorf("input file is required (use --in)")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file %s: %w", path, err)
	}
	var raw types.RawResponse
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse input JSON: %w", err)
	}
	return &raw, nil
}

// writeOutput writes v as indented JSON to path, or to stdout when path is
// empty.
func writeOutput(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	if path == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
