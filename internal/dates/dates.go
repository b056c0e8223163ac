// Package dates parses the textual date-range captions attached to
// experience and education entries. Three grammars are handled:
// "2017 - 2018 · 1 yr", "Jun 2025 - Present", "2017 - Present".
// The duration suffix after "·" is informational and always discarded.
package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	monthYearPattern = regexp.MustCompile(`^([A-Za-z]+)\s+(\d{4})`)
	bareYearPattern  = regexp.MustCompile(`^(\d{4})$`)
	anyYearPattern   = regexp.MustCompile(`(\d{4})`)
)

// Range is a parsed date-range caption. A nil Start with Unparsed set means
// the caption carried tokens the grammar does not cover; that is a
// recoverable condition, not an error.
type Range struct {
	Start     *time.Time
	End       *time.Time
	IsCurrent bool
	Unparsed  bool
	Raw       string
}

// ParseRange parses one date-range caption. "Present" in any case marks a
// current position with a nil end date. Tokens parse as either a bare year
// (January 1st of that year) or a month plus year (first of that month).
func ParseRange(text string) Range {
	r := Range{Raw: text}
	if text == "" {
		return r
	}

	r.IsCurrent = strings.Contains(strings.ToLower(text), "present")

	// Strip the duration suffix; it is never used to compute dates.
	datePart := text
	if before, _, found := strings.Cut(datePart, "·"); found {
		datePart = before
	}
	datePart = strings.TrimSpace(datePart)

	start, end := splitRange(datePart)

	r.Start = parseToken(start)
	if !r.IsCurrent {
		r.End = parseToken(end)
	}

	if r.Start == nil && r.End == nil && !r.IsCurrent {
		r.Unparsed = true
	}
	return r
}

// YearRange is the education variant of ParseRange: bare years only.
type YearRange struct {
	StartYear *int
	EndYear   *int
	Raw       string
}

// ParseYearRange parses an education caption into start and end years.
// A single token fills both years; a "Present" end leaves the end nil.
func ParseYearRange(text string) YearRange {
	r := YearRange{Raw: text}
	if text == "" {
		return r
	}

	datePart := text
	if before, _, found := strings.Cut(datePart, "·"); found {
		datePart = before
	}
	datePart = strings.TrimSpace(datePart)

	start, end := splitRange(datePart)
	if start != "" && end == "" && !strings.ContainsAny(datePart, "-–") {
		year := extractYear(start)
		r.StartYear = year
		r.EndYear = year
		return r
	}

	r.StartYear = extractYear(start)
	if lower := strings.ToLower(end); lower != "present" && lower != "current" {
		r.EndYear = extractYear(end)
	}
	return r
}

// splitRange cuts a caption on the range dash (ASCII hyphen or en dash).
// A caption without a dash is a lone start token.
func splitRange(datePart string) (start, end string) {
	for _, dash := range []string{"-", "–"} {
		if before, after, found := strings.Cut(datePart, dash); found {
			return strings.TrimSpace(before), strings.TrimSpace(after)
		}
	}
	return strings.TrimSpace(datePart), ""
}

// parseToken parses one date token into a concrete day. "Present" and
// "Current" are not dates; they resolve to nil here and are handled by the
// caller through IsCurrent.
func parseToken(token string) *time.Time {
	if token == "" {
		return nil
	}
	switch strings.ToLower(token) {
	case "present", "current":
		return nil
	}

	if m := monthYearPattern.FindStringSubmatch(token); m != nil {
		month := parseMonth(m[1])
		if t, err := time.Parse("2006-1-2", m[2]+"-"+month+"-1"); err == nil {
			return &t
		}
		return nil
	}

	if m := bareYearPattern.FindStringSubmatch(token); m != nil {
		if t, err := time.Parse("2006-1-2", m[1]+"-1-1"); err == nil {
			return &t
		}
	}

	return nil
}

// parseMonth resolves a short or full month name to its number, defaulting
// to January when the name is unrecognized, matching the lenient grammar of
// the source captions.
func parseMonth(name string) string {
	if t, err := time.Parse("Jan", name); err == nil {
		return t.Format("1")
	}
	if t, err := time.Parse("January", name); err == nil {
		return t.Format("1")
	}
	return "1"
}

func extractYear(token string) *int {
	m := anyYearPattern.FindStringSubmatch(token)
	if m == nil {
		return nil
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &year
}
