// Package component models the recursive UI-component trees that Voyager
// responses nest inside profile-section entities, and provides a typed
// walker over them.
package component

import "encoding/json"

// TextAttr is the innermost text payload carried by component nodes.
type TextAttr struct {
	Text              string `json:"text"`
	AccessibilityText string `json:"accessibilityText,omitempty"`
}

// WrappedText is a TextAttr behind one more "text" level, as used by titleV2.
type WrappedText struct {
	Text *TextAttr `json:"text"`
}

// Text is a leaf text component.
type Text struct {
	Text *TextAttr `json:"text"`
}

// EntityCard is the card-shaped component that anchors one experience,
// education or skill entry. All fields are optional in the wire format.
type EntityCard struct {
	TitleV2          *WrappedText   `json:"titleV2"`
	Subtitle         *TextAttr      `json:"subtitle"`
	Caption          *TextAttr      `json:"caption"`
	Metadata         *TextAttr      `json:"metadata"`
	TextActionTarget string         `json:"textActionTarget"`
	Image            *Image         `json:"image"`
	SubComponents    *SubComponents `json:"subComponents"`
}

// SubComponents holds an entity card's nested component list.
type SubComponents struct {
	Components []Node `json:"components"`
}

// FixedList is an inline, fully materialized component list.
type FixedList struct {
	Components []Node `json:"components"`
}

// Tabs is a tabbed container; each tab owns its own component subtree.
type Tabs struct {
	Tabs []Tab `json:"tabs"`
}

// Tab is one tab of a Tabs container.
type Tab struct {
	Identifier string    `json:"tabIdentifier"`
	Title      *TextAttr `json:"title"`
	Components []Node    `json:"components"`
}

// Action wraps an action component; the only action the parser cares about
// is the endorsed-skill reference.
type Action struct {
	Action *ActionBody `json:"action"`
}

// ActionBody is the action payload of an action component.
type ActionBody struct {
	EndorsedSkill *EndorsedSkillAction `json:"endorsedSkillAction"`
}

// EndorsedSkillAction carries a dangling reference to an EndorsedSkill entity.
type EndorsedSkillAction struct {
	EndorsedSkillRef string `json:"*endorsedSkill"`
}

// Image is the image attachment of an entity card or search hit.
type Image struct {
	Attributes []ImageAttribute `json:"attributes"`
}

// ImageAttribute is one attribute of an Image.
type ImageAttribute struct {
	DetailData *ImageDetail `json:"detailData"`
}

// ImageDetail is the detail payload of an image attribute.
type ImageDetail struct {
	Icon                    string          `json:"icon,omitempty"`
	NonEntityProfilePicture *ProfilePicture `json:"nonEntityProfilePicture"`
}

// ProfilePicture carries the ring status annotation and the picture itself.
type ProfilePicture struct {
	RingStatus  string       `json:"ringStatus,omitempty"`
	VectorImage *VectorImage `json:"vectorImage"`
}

// VectorImage is a root URL plus per-size artifacts.
type VectorImage struct {
	RootURL   string          `json:"rootUrl"`
	Artifacts []ImageArtifact `json:"artifacts"`
}

// ImageArtifact is one rendered size of a VectorImage.
type ImageArtifact struct {
	Width                         int    `json:"width"`
	Height                        int    `json:"height"`
	FileIdentifyingUrlPathSegment string `json:"fileIdentifyingUrlPathSegment"`
}

// Paging is the paging metadata attached to paged component lists.
type Paging struct {
	Count int `json:"count"`
	Start int `json:"start"`
	Total int `json:"total"`
}

// Opaque preserves a component of a kind this package does not model.
// The walker surfaces it as leaf text over its raw content.
type Opaque struct {
	Kind string
	Raw  json.RawMessage
}

// Node is one element of a component tree. Exactly one of the variant
// fields is normally set; the wire format keys each variant under a
// "components" object whose keys name the kind.
type Node struct {
	Text     *Text
	Entity   *EntityCard
	Fixed    *FixedList
	Tabs     *Tabs
	Action   *Action
	PagedRef string
	Opaque   []Opaque
}

// UnmarshalJSON decodes the {"components": {...}} envelope, keeping unknown
// component kinds as Opaque rather than dropping them.
func (n *Node) UnmarshalJSON(data []byte) error {
	var envelope struct {
		Components map[string]json.RawMessage `json:"components"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}
	for key, raw := range envelope.Components {
		if string(raw) == "null" {
			continue
		}
		switch key {
		case "textComponent":
			n.Text = &Text{}
			if err := json.Unmarshal(raw, n.Text); err != nil {
				return err
			}
		case "entityComponent":
			n.Entity = &EntityCard{}
			if err := json.Unmarshal(raw, n.Entity); err != nil {
				return err
			}
		case "fixedListComponent":
			n.Fixed = &FixedList{}
			if err := json.Unmarshal(raw, n.Fixed); err != nil {
				return err
			}
		case "tabComponent":
			n.Tabs = &Tabs{}
			if err := json.Unmarshal(raw, n.Tabs); err != nil {
				return err
			}
		case "actionComponent":
			n.Action = &Action{}
			if err := json.Unmarshal(raw, n.Action); err != nil {
				return err
			}
		case "*pagedListComponent":
			if err := json.Unmarshal(raw, &n.PagedRef); err != nil {
				return err
			}
		default:
			n.Opaque = append(n.Opaque, Opaque{Kind: key, Raw: raw})
		}
	}
	// Opaque order must not depend on map iteration.
	sortOpaque(n.Opaque)
	return nil
}

func sortOpaque(opaque []Opaque) {
	for i := 1; i < len(opaque); i++ {
		for j := i; j > 0 && opaque[j].Kind < opaque[j-1].Kind; j-- {
			opaque[j], opaque[j-1] = opaque[j-1], opaque[j]
		}
	}
}
