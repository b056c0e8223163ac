// Package extract is the pure field-extractor library. Every function is
// total over its declared input: malformed or missing input yields the
// documented default, never an error.
package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	degreePattern    = regexp.MustCompile(`\d+(?:st|nd|rd|th)`)
	mutualPattern    = regexp.MustCompile(`(?i)(\d+)\s+mutual\s+connection`)
	publicIDPattern  = regexp.MustCompile(`/in/([^?]+)`)
	companyIDPattern = regexp.MustCompile(`/company/(\d+)/?`)
	schoolIDPattern  = regexp.MustCompile(`/school/(\d+)/?`)
	memberIDPattern  = regexp.MustCompile(`member:(\d+)`)
)

// companyTitlePatterns is the ordered fallback chain for pulling a company
// name out of a free-text headline. First match wins. The chain is a
// heuristic; structural sources take precedence when both exist.
var companyTitlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\s+@\s+(.+)$`),
	regexp.MustCompile(`\s+at\s+(.+)$`),
	regexp.MustCompile(`\s+At\s+(.+)$`),
	regexp.MustCompile(`\s+AT\s+(.+)$`),
}

// ConnectionDegree returns the ordinal degree token from badge text,
// verbatim: "• 2nd" yields "2nd". No ordinal means no degree.
func ConnectionDegree(badgeText string) (string, bool) {
	m := degreePattern.FindString(badgeText)
	return m, m != ""
}

// PremiumFlag reports whether a badge icon identifier marks a premium
// member. A missing icon is false, never unknown.
func PremiumFlag(badgeIcon string) bool {
	return strings.Contains(badgeIcon, "PREMIUM")
}

// MutualConnections parses a leading count out of an insight title like
// "55 mutual connections". Zero and absent are equivalent for this field,
// so a miss returns 0 with ok=false only to let callers log it.
func MutualConnections(insightTitle string) (int, bool) {
	m := mutualPattern.FindStringSubmatch(insightTitle)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// PublicIdentifier pulls the vanity segment from a profile URL, stopping at
// the first query-string delimiter.
func PublicIdentifier(profileURL string) (string, bool) {
	m := publicIDPattern.FindStringSubmatch(profileURL)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// CompanyFromTitle extracts a company name from a headline via the ordered
// separator chain ("@", "at", case variants).
func CompanyFromTitle(title string) (string, bool) {
	for _, p := range companyTitlePatterns {
		if m := p.FindStringSubmatch(title); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}

// CompanyID pulls the numeric company identifier out of a company URL like
// "https://www.linkedin.com/company/143650/".
func CompanyID(companyURL string) (string, bool) {
	m := companyIDPattern.FindStringSubmatch(companyURL)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// SchoolID pulls the numeric school identifier out of a school URL.
func SchoolID(schoolURL string) (string, bool) {
	m := schoolIDPattern.FindStringSubmatch(schoolURL)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// MemberID pulls the numeric member id from a tracking URN like
// "urn:li:member:1136267662".
func MemberID(trackingUrn string) (int64, bool) {
	m := memberIDPattern.FindStringSubmatch(trackingUrn)
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Ring statuses with dedicated boolean projections.
const (
	RingHiring     = "HIRING"
	RingOpenToWork = "OPEN_TO_WORK"
)

// RingStatus is the decoded profile-photo ring annotation.
type RingStatus struct {
	Status       string
	IsHiring     bool
	IsOpenToWork bool
}

// RingFromStatus decodes a ring-status value by direct equality against the
// two known states. Any other value, including empty, leaves both booleans
// false.
func RingFromStatus(status string) RingStatus {
	return RingStatus{
		Status:       status,
		IsHiring:     status == RingHiring,
		IsOpenToWork: status == RingOpenToWork,
	}
}

// CleanCompanyName strips employment-type suffixes:
// "Menlo Security Inc. · Full-time" becomes "Menlo Security Inc.".
func CleanCompanyName(name string) string {
	if before, _, found := strings.Cut(name, "·"); found {
		return strings.TrimSpace(before)
	}
	return name
}

// SkillsLine splits a "Skills: a · b · c" fragment into its list. Text
// without the Skills prefix is not a skills line.
func SkillsLine(text string) ([]string, bool) {
	rest, ok := strings.CutPrefix(text, "Skills:")
	if !ok {
		return nil, false
	}
	var skills []string
	for _, part := range strings.Split(rest, "·") {
		if s := strings.TrimSpace(part); s != "" {
			skills = append(skills, s)
		}
	}
	return skills, true
}

// monthTokens guard the description and location heuristics against
// mistaking a date caption for content.
var monthTokens = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// ContainsMonthToken reports whether text carries a month-name token.
func ContainsMonthToken(text string) bool {
	for _, m := range monthTokens {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}

// minDescriptionLength separates real description text from captions and
// location fragments.
const minDescriptionLength = 50

// LooksLikeDescription reports whether a text fragment is plausible
// free-text description rather than a date, location or skills line.
func LooksLikeDescription(text string) bool {
	if len(text) <= minDescriptionLength {
		return false
	}
	if strings.HasPrefix(text, "Skills:") {
		return false
	}
	return !ContainsMonthToken(text)
}
