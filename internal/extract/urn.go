package extract

import "strings"

// InnerUrn unwraps a composite URN like
// "urn:li:fsd_entityResultViewModel:(urn:li:fsd_profile:ACoAA...,SEARCH_SRP,DEFAULT)"
// down to its first inner URN. A URN without a parenthesized body is
// returned unchanged.
func InnerUrn(urn string) string {
	open := strings.Index(urn, "(")
	if open < 0 {
		return urn
	}
	body := urn[open+1:]
	if end := strings.IndexAny(body, ",)"); end >= 0 {
		body = body[:end]
	}
	if strings.HasPrefix(body, "urn:") {
		return body
	}
	return urn
}

// IDFromUrn returns the identifier segment after the last colon:
// "urn:li:fsd_profile:ACoAA" yields "ACoAA". Composite URNs are unwrapped
// first.
func IDFromUrn(urn string) (string, bool) {
	if urn == "" {
		return "", false
	}
	inner := InnerUrn(urn)
	idx := strings.LastIndex(inner, ":")
	if idx < 0 || idx == len(inner)-1 {
		return "", false
	}
	return inner[idx+1:], true
}

// CompanyUrn builds the canonical company entity identifier for a numeric
// company id.
func CompanyUrn(companyID string) string {
	return "urn:li:fsd_company:" + companyID
}

// SchoolUrn builds the canonical school entity identifier for a numeric
// school id.
func SchoolUrn(schoolID string) string {
	return "urn:li:fsd_school:" + schoolID
}
