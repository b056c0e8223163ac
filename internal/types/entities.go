// Package types defines the wire-side entity variants and the assembled
// domain records shared across the parser.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"strings"

	"github.com/jonathan/voyager-parser/internal/component"
)

// Entity kind tags. Every decoded included element reports exactly one.
const (
	KindProfile       = "profile"
	KindCompany       = "company"
	KindSchool        = "school"
	KindPagedList     = "pagedList"
	KindEndorsedSkill = "endorsedSkill"
	KindSearchHit     = "searchHit"
	KindUnknown       = "unknown"
)

// Entity is the shared capability of every included element: an identifier
// and a kind tag. Concrete variants carry the kind-specific fields.
type Entity interface {
	EntityUrn() string
	EntityKind() string
}

// EntityBase holds the fields common to all included elements.
type EntityBase struct {
	Urn  string `json:"entityUrn"`
	Type string `json:"$type"`
}

// EntityUrn returns the element's identifier.
func (b EntityBase) EntityUrn() string { return b.Urn }

// Profile is the contact-details profile entity.
type Profile struct {
	EntityBase
	FirstName         string             `json:"firstName"`
	LastName          string             `json:"lastName"`
	PublicIdentifier  string             `json:"publicIdentifier"`
	Headline          string             `json:"headline"`
	EmailAddress      *EmailAddress      `json:"emailAddress"`
	Websites          []Website          `json:"websites"`
	TwitterHandles    []TwitterHandle    `json:"twitterHandles"`
	BirthDateOn       *BirthDate         `json:"birthDateOn"`
	PhoneNumbers      []PhoneNumberEntry `json:"phoneNumbers"`
	InstantMessengers []InstantMessenger `json:"instantMessengers"`
	Address           string             `json:"address"`
	ProfilePicture    *ProfilePhoto      `json:"profilePicture"`
}

// EntityKind reports KindProfile.
func (Profile) EntityKind() string { return KindProfile }

// EmailAddress wraps the profile email field.
type EmailAddress struct {
	EmailAddress string `json:"emailAddress"`
}

// Website is one profile website with its category label.
type Website struct {
	URL      string `json:"url"`
	Category string `json:"category"`
	Label    string `json:"label"`
}

// TwitterHandle is one linked Twitter credential.
type TwitterHandle struct {
	Name         string `json:"name"`
	CredentialID string `json:"credentialId"`
}

// BirthDate is a month/day pair; LinkedIn never exposes the year.
type BirthDate struct {
	Month int `json:"month"`
	Day   int `json:"day"`
}

// PhoneNumberEntry is one phone number with its type tag.
type PhoneNumberEntry struct {
	Type        string       `json:"type"`
	PhoneNumber *PhoneNumber `json:"phoneNumber"`
}

// PhoneNumber wraps the number itself.
type PhoneNumber struct {
	Number string `json:"number"`
}

// InstantMessenger is one IM handle; the handle lives in the id field.
type InstantMessenger struct {
	Provider string `json:"provider"`
	ID       string `json:"id"`
}

// ProfilePhoto is the profile picture with frame-free display reference.
type ProfilePhoto struct {
	DisplayImageReference *DisplayImageReference `json:"displayImageReferenceResolutionResult"`
}

// DisplayImageReference resolves to the picture's vector image.
type DisplayImageReference struct {
	VectorImage *component.VectorImage `json:"vectorImage"`
}

// Company is an organization entity referenced by experience entries.
type Company struct {
	EntityBase
	Name                 string          `json:"name"`
	LogoResolutionResult *LogoResolution `json:"logoResolutionResult"`
}

// EntityKind reports KindCompany.
func (Company) EntityKind() string { return KindCompany }

// School is an organization entity referenced by education entries.
type School struct {
	EntityBase
	Name                 string          `json:"name"`
	LogoResolutionResult *LogoResolution `json:"logoResolutionResult"`
}

// EntityKind reports KindSchool.
func (School) EntityKind() string { return KindSchool }

// LogoResolution wraps an organization logo's vector image.
type LogoResolution struct {
	VectorImage *component.VectorImage `json:"vectorImage"`
}

// PagedList is a paged component-list entity; profile sections reference it
// from the root data object or from nested position groups.
type PagedList struct {
	EntityBase
	Components PagedContents `json:"components"`
}

// EntityKind reports KindPagedList.
func (PagedList) EntityKind() string { return KindPagedList }

// PagedContents are a paged list's elements plus paging metadata.
type PagedContents struct {
	Elements []component.Node  `json:"elements"`
	Paging   *component.Paging `json:"paging"`
}

// EndorsedSkill carries endorsement data referenced by skill entries.
type EndorsedSkill struct {
	EntityBase
	EndorsementCount int  `json:"endorsementCount"`
	EndorsedByViewer bool `json:"endorsedByViewer"`
}

// EntityKind reports KindEndorsedSkill.
func (EndorsedSkill) EntityKind() string { return KindEndorsedSkill }

// SearchHit is one people-search result entity.
type SearchHit struct {
	EntityBase
	Title                     *component.TextAttr `json:"title"`
	PrimarySubtitle           *component.TextAttr `json:"primarySubtitle"`
	SecondarySubtitle         *component.TextAttr `json:"secondarySubtitle"`
	BadgeText                 *component.TextAttr `json:"badgeText"`
	BadgeIcon                 *component.Image    `json:"badgeIcon"`
	Image                     *component.Image    `json:"image"`
	NavigationContext         *NavigationContext  `json:"navigationContext"`
	TrackingUrn               string              `json:"trackingUrn"`
	EntityCustomTrackingInfo  *TrackingInfo       `json:"entityCustomTrackingInfo"`
	InsightsResolutionResults []Insight           `json:"insightsResolutionResults"`
}

// EntityKind reports KindSearchHit.
func (SearchHit) EntityKind() string { return KindSearchHit }

// NavigationContext is the click target of a search hit.
type NavigationContext struct {
	URL string `json:"url"`
}

// TrackingInfo carries the member-distance annotation.
type TrackingInfo struct {
	MemberDistance string `json:"memberDistance"`
}

// Insight wraps one insight attached to a search hit.
type Insight struct {
	SimpleInsight *SimpleInsight `json:"simpleInsight"`
}

// SimpleInsight is a title plus navigation URL, e.g. the mutual-connections
// insight.
type SimpleInsight struct {
	Title         *component.TextAttr `json:"title"`
	NavigationURL string              `json:"navigationUrl"`
}

// Unknown preserves an included element whose kind this package does not
// model. Raw field access keeps unmodeled data reachable.
type Unknown struct {
	EntityBase
	Fields map[string]json.RawMessage
}

// EntityKind reports KindUnknown.
func (Unknown) EntityKind() string { return KindUnknown }

// DecodeEntity decodes one included element into its typed variant.
// Elements whose body does not match their declared kind degrade to Unknown
// rather than failing the whole response.
func DecodeEntity(raw json.RawMessage) Entity {
	var base EntityBase
	if err := json.Unmarshal(raw, &base); err != nil {
		return unknownEntity(base, raw)
	}

	decode := func(dst Entity) (Entity, bool) {
		if err := json.Unmarshal(raw, dst); err != nil {
			return nil, false
		}
		return dst, true
	}

	switch classifyEntity(base) {
	case KindProfile:
		if e, ok := decode(&Profile{}); ok {
			return e
		}
	case KindCompany:
		if e, ok := decode(&Company{}); ok {
			return e
		}
	case KindSchool:
		if e, ok := decode(&School{}); ok {
			return e
		}
	case KindPagedList:
		if e, ok := decode(&PagedList{}); ok {
			return e
		}
	case KindEndorsedSkill:
		if e, ok := decode(&EndorsedSkill{}); ok {
			return e
		}
	case KindSearchHit:
		if e, ok := decode(&SearchHit{}); ok {
			return e
		}
	}
	return unknownEntity(base, raw)
}

// classifyEntity maps the declared $type (or, failing that, the URN prefix)
// to a kind tag.
func classifyEntity(base EntityBase) string {
	switch {
	case strings.HasSuffix(base.Type, ".identity.profile.Profile"):
		return KindProfile
	case strings.HasSuffix(base.Type, "tetris.PagedListComponent"):
		return KindPagedList
	case strings.HasSuffix(base.Type, ".EndorsedSkill"):
		return KindEndorsedSkill
	case strings.HasSuffix(base.Type, ".EntityResultViewModel"):
		return KindSearchHit
	case strings.HasSuffix(base.Type, "organization.Company"),
		strings.HasPrefix(base.Urn, "urn:li:fsd_company:"):
		return KindCompany
	case strings.HasSuffix(base.Type, "organization.School"),
		strings.HasPrefix(base.Urn, "urn:li:fsd_school:"):
		return KindSchool
	}
	return KindUnknown
}

func unknownEntity(base EntityBase, raw json.RawMessage) *Unknown {
	u := &Unknown{EntityBase: base}
	_ = json.Unmarshal(raw, &u.Fields)
	return u
}
