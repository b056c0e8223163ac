package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/voyager-parser/internal/assemble"
	"github.com/jonathan/voyager-parser/internal/client"
	"github.com/jonathan/voyager-parser/internal/config"
	"github.com/jonathan/voyager-parser/internal/observability"
	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch a profile section from the live API and parse it",
	Long:  "Fetch a profile section (experience, education, skills, contact) with an authenticated session and parse it into clean records. Session credentials come from the config file or LI_* environment variables.",
	RunE:  runFetch,
}

var (
	fetchProfile    string
	fetchSection    string
	fetchConfigFile string
	fetchOutputFile string
	fetchVerbose    bool
)

func init() {
	fetchCmd.Flags().StringVar(&fetchProfile, "profile", "", "Profile URN or id (public identifier for contact)")
	fetchCmd.Flags().StringVar(&fetchSection, "section", "experience", "Section to fetch: experience, education, skills, contact")
	fetchCmd.Flags().StringVar(&fetchConfigFile, "config", "", "Path to JSON config file")
	fetchCmd.Flags().StringVarP(&fetchOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	fetchCmd.Flags().BoolVarP(&fetchVerbose, "verbose", "v", false, "Print a summary and assembly warnings")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(_ *cobra.Command, _ []string) error {
	if fetchProfile == "" {
		return fmt.Errorf("profile is required (use --profile)")
	}

	cfg := &config.Config{}
	if fetchConfigFile != "" {
		loaded, err := config.LoadConfig(fetchConfigFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.FromEnv()
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	c := client.New(cfg)
	ctx := context.Background()
	printer := observability.NewPrinter(os.Stderr)

	if fetchSection == "contact" {
		raw, err := c.ContactInfo(ctx, fetchProfile)
		if err != nil {
			return err
		}
		info, diag, err := assemble.Contact(raw, assemble.Options{})
		if err != nil {
			return err
		}
		if fetchVerbose {
			printer.PrintContactInfo(info)
			printer.PrintDiagnostics(diag)
		}
		return writeOutput(fetchOutputFile, info)
	}

	raw, err := c.ProfileSection(ctx, fetchProfile, fetchSection, 20, 0)
	if err != nil {
		return err
	}

	opts := assemble.Options{
		Names: &client.NameResolver{Client: c},
		Pages: &client.SectionPager{Client: c, ProfileURN: fetchProfile, Section: fetchSection},
	}

	switch fetchSection {
	case "experience":
		entries, diag, err := assemble.Experience(raw, opts)
		if err != nil {
			return err
		}
		if fetchVerbose {
			printer.PrintExperience(entries)
			printer.PrintDiagnostics(diag)
		}
		return writeOutput(fetchOutputFile, map[string]any{"work_experience": entries})
	case "education":
		entries, diag, err := assemble.Education(raw, opts)
		if err != nil {
			return err
		}
		if fetchVerbose {
			printer.PrintEducation(entries)
			printer.PrintDiagnostics(diag)
		}
		return writeOutput(fetchOutputFile, map[string]any{"education": entries})
	case "skills":
		skills, diag, err := assemble.Skills(raw, opts)
		if err != nil {
			return err
		}
		if fetchVerbose {
			printer.PrintSkills(skills)
			printer.PrintDiagnostics(diag)
		}
		return writeOutput(fetchOutputFile, map[string]any{"skills": skills})
	}
	return fmt.Errorf("unknown section %q (expected experience, education, skills or contact)", fetchSection)
}
