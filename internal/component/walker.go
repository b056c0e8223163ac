package component

import (
	"fmt"
	"iter"
)

// FragmentKind tags what part of a node a fragment came from.
type FragmentKind int

// Fragment kinds, in the order an entity card yields them.
const (
	FragmentTitle FragmentKind = iota
	FragmentSubtitle
	FragmentCaption
	FragmentMetadata
	FragmentActionTarget
	FragmentImage
	FragmentText
	FragmentSkillRef
	FragmentOpaque
)

// String returns the fragment kind name, for diagnostics.
func (k FragmentKind) String() string {
	switch k {
	case FragmentTitle:
		return "title"
	case FragmentSubtitle:
		return "subtitle"
	case FragmentCaption:
		return "caption"
	case FragmentMetadata:
		return "metadata"
	case FragmentActionTarget:
		return "actionTarget"
	case FragmentImage:
		return "image"
	case FragmentText:
		return "text"
	case FragmentSkillRef:
		return "skillRef"
	case FragmentOpaque:
		return "opaque"
	}
	return "unknown"
}

// Fragment is one typed leaf yielded by the walker. Source records the
// document-order path of the node that produced it; TabID is set for
// fragments found under a tab container.
type Fragment struct {
	Kind    FragmentKind
	Text    string
	AltText string
	TabID   string
	Source  string
}

// PagedLookup resolves a "*pagedListComponent" reference into the referenced
// list's elements. Returning false leaves the reference unexpanded; the
// walker records nothing and moves on.
type PagedLookup func(urn string) ([]Node, bool)

// Walker traverses component trees in depth-first document order.
// The zero value walks without expanding paged references.
type Walker struct {
	// ResolvePaged, when set, expands *pagedListComponent references.
	ResolvePaged PagedLookup

	// Tab restricts output to fragments under the tab with this identifier.
	// Empty means all tabs.
	Tab string
}

// Walk yields every leaf fragment beneath nodes, lazily and in document
// order. Paged references already visited in this walk are skipped, so
// cross-referencing entities cannot loop the traversal.
func (w *Walker) Walk(nodes []Node) iter.Seq[Fragment] {
	return func(yield func(Fragment) bool) {
		seen := map[string]bool{}
		w.walk(nodes, "", "", seen, yield)
	}
}

func (w *Walker) walk(nodes []Node, path, tab string, seen map[string]bool, yield func(Fragment) bool) bool {
	for i, node := range nodes {
		if !w.walkNode(node, fmt.Sprintf("%s[%d]", path, i), tab, seen, yield) {
			return false
		}
	}
	return true
}

func (w *Walker) walkNode(node Node, path, tab string, seen map[string]bool, yield func(Fragment) bool) bool {
	emit := func(f Fragment) bool {
		if w.Tab != "" && tab != w.Tab {
			return true
		}
		f.TabID = tab
		return yield(f)
	}

	if node.Text != nil && node.Text.Text != nil {
		if !emit(Fragment{Kind: FragmentText, Text: node.Text.Text.Text, AltText: node.Text.Text.AccessibilityText, Source: path + ".text"}) {
			return false
		}
	}

	if node.Entity != nil {
		if !w.walkEntity(node.Entity, path+".entity", tab, seen, emit, yield) {
			return false
		}
	}

	if node.Fixed != nil {
		if !w.walk(node.Fixed.Components, path+".fixed", tab, seen, yield) {
			return false
		}
	}

	if node.Tabs != nil {
		for i, t := range node.Tabs.Tabs {
			if !w.walk(t.Components, fmt.Sprintf("%s.tab[%d]", path, i), t.Identifier, seen, yield) {
				return false
			}
		}
	}

	if node.Action != nil && node.Action.Action != nil && node.Action.Action.EndorsedSkill != nil {
		ref := node.Action.Action.EndorsedSkill.EndorsedSkillRef
		if ref != "" {
			if !emit(Fragment{Kind: FragmentSkillRef, Text: ref, Source: path + ".action"}) {
				return false
			}
		}
	}

	if node.PagedRef != "" && w.ResolvePaged != nil && !seen[node.PagedRef] {
		seen[node.PagedRef] = true
		if elements, ok := w.ResolvePaged(node.PagedRef); ok {
			if !w.walk(elements, path+".paged", tab, seen, yield) {
				return false
			}
		}
	}

	for _, op := range node.Opaque {
		if !emit(Fragment{Kind: FragmentOpaque, Text: string(op.Raw), Source: path + "." + op.Kind}) {
			return false
		}
	}

	return true
}

func (w *Walker) walkEntity(card *EntityCard, path, tab string, seen map[string]bool, emit func(Fragment) bool, yield func(Fragment) bool) bool {
	if card.TitleV2 != nil && card.TitleV2.Text != nil {
		if !emit(Fragment{Kind: FragmentTitle, Text: card.TitleV2.Text.Text, AltText: card.TitleV2.Text.AccessibilityText, Source: path + ".titleV2"}) {
			return false
		}
	}
	if card.Subtitle != nil {
		if !emit(Fragment{Kind: FragmentSubtitle, Text: card.Subtitle.Text, Source: path + ".subtitle"}) {
			return false
		}
	}
	if card.Caption != nil {
		if !emit(Fragment{Kind: FragmentCaption, Text: card.Caption.Text, Source: path + ".caption"}) {
			return false
		}
	}
	if card.Metadata != nil {
		if !emit(Fragment{Kind: FragmentMetadata, Text: card.Metadata.Text, Source: path + ".metadata"}) {
			return false
		}
	}
	if card.TextActionTarget != "" {
		if !emit(Fragment{Kind: FragmentActionTarget, Text: card.TextActionTarget, Source: path + ".textActionTarget"}) {
			return false
		}
	}
	if card.Image != nil {
		if f, ok := imageFragment(card.Image, path); ok {
			if !emit(f) {
				return false
			}
		}
	}
	if card.SubComponents != nil {
		if !w.walk(card.SubComponents.Components, path+".sub", tab, seen, yield) {
			return false
		}
	}
	return true
}

// imageFragment summarizes a card's image attachment: the photo ring status
// in Text, the first artifact path segment in AltText. An image carrying
// neither yields nothing.
func imageFragment(img *Image, path string) (Fragment, bool) {
	f := Fragment{Kind: FragmentImage, Source: path + ".image"}
	for _, attr := range img.Attributes {
		if attr.DetailData == nil || attr.DetailData.NonEntityProfilePicture == nil {
			continue
		}
		pic := attr.DetailData.NonEntityProfilePicture
		if f.Text == "" {
			f.Text = pic.RingStatus
		}
		if f.AltText == "" && pic.VectorImage != nil && len(pic.VectorImage.Artifacts) > 0 {
			f.AltText = pic.VectorImage.Artifacts[0].FileIdentifyingUrlPathSegment
		}
	}
	return f, f.Text != "" || f.AltText != ""
}

// Texts collects the plain text of every FragmentText beneath nodes.
// It is the common case for description and skills scanning.
func (w *Walker) Texts(nodes []Node) []string {
	var out []string
	for f := range w.Walk(nodes) {
		if f.Kind == FragmentText && f.Text != "" {
			out = append(out, f.Text)
		}
	}
	return out
}
