package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// ISODate marshals as a bare YYYY-MM-DD string, the format the parsed
// records expose for start and end dates.
type ISODate struct {
	time.Time
}

// NewISODate builds an ISODate at midnight UTC.
func NewISODate(year int, month time.Month, day int) ISODate {
	return ISODate{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON renders the date as "2006-01-02".
func (d ISODate) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.Format("2006-01-02"))), nil
}

// UnmarshalJSON accepts a "2006-01-02" string.
func (d *ISODate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ExperienceEntry is one parsed work-history position.
type ExperienceEntry struct {
	Title          *string  `json:"title"`
	Company        *string  `json:"company"`
	CompanyID      *string  `json:"company_id"`
	CompanyURL     *string  `json:"company_url"`
	CompanyLogoURL *string  `json:"company_logo_url"`
	StartDate      *ISODate `json:"start_date"`
	EndDate        *ISODate `json:"end_date"`
	IsCurrent      bool     `json:"is_current"`
	Location       *string  `json:"location"`
	Description    *string  `json:"description"`
	Skills         []string `json:"skills"`
}

// EducationEntry is one parsed education record.
type EducationEntry struct {
	School        *string `json:"school"`
	SchoolID      *string `json:"school_id"`
	SchoolURL     *string `json:"school_url"`
	SchoolLogoURL *string `json:"school_logo_url"`
	Degree        *string `json:"degree"`
	FieldOfStudy  *string `json:"field_of_study"`
	StartYear     *int    `json:"start_year"`
	EndYear       *int    `json:"end_year"`
	Description   *string `json:"description"`
}

// SkillEntry is one parsed skill with its endorsement data.
type SkillEntry struct {
	Name             string  `json:"name"`
	EntityUrn        *string `json:"entity_urn,omitempty"`
	NumEndorsements  int     `json:"num_endorsements"`
	EndorsedByViewer bool    `json:"endorsed_by_viewer"`
}

// SearchResult is one parsed people-search hit. Every field is
// independently nullable except the booleans (default false) and the
// mutual-connections count (default 0).
type SearchResult struct {
	ID                     *string `json:"id"`
	Name                   *string `json:"name"`
	Headline               *string `json:"headline"`
	Location               *string `json:"location"`
	PhotoURL               *string `json:"photo_url"`
	ConnectionDistance     *string `json:"connection_distance"`
	ConnectionDegree       *string `json:"connection_degree"`
	IsPremium              bool    `json:"is_premium"`
	PublicIdentifier       *string `json:"public_identifier"`
	MemberID               *int64  `json:"member_id"`
	MutualConnectionsCount int     `json:"mutual_connections_count"`
	MutualConnectionsURL   *string `json:"mutual_connections_url"`
	ProfileURL             *string `json:"profile_url"`
	RingStatus             *string `json:"ring_status"`
	IsHiring               bool    `json:"is_hiring"`
	IsOpenToWork           bool    `json:"is_open_to_work"`
	Company                *string `json:"company"`
}

// ContactInfo is the projected contact section of a profile.
type ContactInfo struct {
	FirstName         *string           `json:"first_name"`
	LastName          *string           `json:"last_name"`
	PublicIdentifier  *string           `json:"public_identifier"`
	Headline          *string           `json:"headline"`
	Email             *string           `json:"email"`
	PhoneNumbers      []ContactPhone    `json:"phone_numbers"`
	Websites          []ContactWebsite  `json:"websites"`
	SocialHandles     []SocialHandle    `json:"social_handles"`
	InstantMessengers []ContactIM       `json:"instant_messengers,omitempty"`
	Birthdate         *BirthDate        `json:"birthdate"`
	Address           *string           `json:"address"`
	ProfilePicture    map[string]string `json:"profile_picture,omitempty"`
}

// ContactPhone is one phone number with its type tag.
type ContactPhone struct {
	Number string `json:"number"`
	Type   string `json:"type,omitempty"`
}

// ContactWebsite is one website with its category.
type ContactWebsite struct {
	URL      string `json:"url"`
	Category string `json:"category,omitempty"`
}

// SocialHandle is one linked social account.
type SocialHandle struct {
	Platform string `json:"platform"`
	Name     string `json:"name"`
}

// ContactIM is one instant-messenger handle.
type ContactIM struct {
	Provider string `json:"provider"`
	Name     string `json:"name"`
}
