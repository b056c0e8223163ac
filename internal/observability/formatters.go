// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/voyager-parser/internal/assemble"
	"github.com/jonathan/voyager-parser/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

// PrintExperience outputs a human-readable summary of parsed work history.
func (p *Printer) PrintExperience(entries []types.ExperienceEntry) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Parsed %d positions:\n\n", len(entries)))

	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		entry := entries[i]
		sb.WriteString(fmt.Sprintf("• %s\n", deref(entry.Title)))
		sb.WriteString(fmt.Sprintf("  %s", deref(entry.Company)))
		if entry.IsCurrent {
			sb.WriteString(" (current)")
		}
		sb.WriteString("\n")
		if len(entry.Skills) > 0 {
			skills := strings.Join(entry.Skills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("  [%s]\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more positions", len(entries)-maxItemsToShow))
	}

	p.printBox("WORK EXPERIENCE", sb.String())
}

// PrintEducation outputs a human-readable summary of parsed education.
func (p *Printer) PrintEducation(entries []types.EducationEntry) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Parsed %d entries:\n\n", len(entries)))

	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		entry := entries[i]
		sb.WriteString(fmt.Sprintf("• %s\n", deref(entry.School)))
		sb.WriteString(fmt.Sprintf("  %s\n", deref(entry.Degree)))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more entries", len(entries)-maxItemsToShow))
	}

	p.printBox("EDUCATION", sb.String())
}

// PrintSkills outputs the parsed skills with endorsement counts.
func (p *Printer) PrintSkills(skills []types.SkillEntry) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Parsed %d skills:\n\n", len(skills)))

	count := min(len(skills), maxItemsToShow)
	for i := 0; i < count; i++ {
		skill := skills[i]
		sb.WriteString(fmt.Sprintf("• %s (%d endorsements)\n", skill.Name, skill.NumEndorsements))
	}
	if len(skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more skills", len(skills)-maxItemsToShow))
	}

	p.printBox("SKILLS", sb.String())
}

// PrintSearchResults outputs the top search hits with their key fields.
func (p *Printer) PrintSearchResults(results []types.SearchResult) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Parsed %d hits:\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		result := results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, deref(result.Name)))
		sb.WriteString(fmt.Sprintf("    %s\n", deref(result.Headline)))

		badges := []string{}
		if result.ConnectionDegree != nil {
			badges = append(badges, *result.ConnectionDegree)
		}
		if result.IsPremium {
			badges = append(badges, "premium")
		}
		if result.MutualConnectionsCount > 0 {
			badges = append(badges, fmt.Sprintf("%d mutual", result.MutualConnectionsCount))
		}
		if len(badges) > 0 {
			sb.WriteString(fmt.Sprintf("    [%s]\n", strings.Join(badges, " · ")))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more hits", len(results)-maxItemsToShow))
	}

	p.printBox("SEARCH RESULTS", sb.String())
}

// PrintContactInfo outputs the projected contact fields.
func (p *Printer) PrintContactInfo(info *types.ContactInfo) {
	if info == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s %s\n", deref(info.FirstName), deref(info.LastName)))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", deref(info.Email)))
	sb.WriteString(fmt.Sprintf("Phones:   %d\n", len(info.PhoneNumbers)))
	sb.WriteString(fmt.Sprintf("Websites: %d\n", len(info.Websites)))
	if info.Birthdate != nil {
		sb.WriteString(fmt.Sprintf("Birthday: %02d-%02d\n", info.Birthdate.Month, info.Birthdate.Day))
	}

	p.printBox("CONTACT INFO", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDiagnostics outputs any recoverable conditions hit while assembling.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintDiagnostics(diag *assemble.Diagnostics) {
	if diag == nil || diag.Count() == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO WARNINGS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d warnings:\n\n", diag.Count()))

	for i, w := range diag.Warnings {
		subject := w.Subject
		if len(subject) > 45 {
			subject = subject[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", w.Kind))
		sb.WriteString(fmt.Sprintf("  %s\n", subject))
		if i < len(diag.Warnings)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("ASSEMBLY WARNINGS", sb.String())
}
