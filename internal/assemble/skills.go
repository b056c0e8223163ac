package assemble

import (
	"github.com/jonathan/voyager-parser/internal/component"
	"github.com/jonathan/voyager-parser/internal/store"
	"github.com/jonathan/voyager-parser/internal/types"
)

// Skills assembles the skills section of a profile response, joining each
// skill card with its EndorsedSkill entity via the endorsed-skill action
// reference.
func Skills(raw *types.RawResponse, _ Options) ([]types.SkillEntry, *Diagnostics, error) {
	diag := &Diagnostics{}
	if err := checkShape(raw); err != nil {
		return nil, diag, err
	}

	s := store.FromResponse(raw)

	endorsed := map[string]*types.EndorsedSkill{}
	for _, e := range s.OfKind(types.KindEndorsedSkill) {
		es := e.(*types.EndorsedSkill)
		endorsed[es.Urn] = es
	}

	skills := []types.SkillEntry{}
	walker := &component.Walker{ResolvePaged: pagedLookup(s, diag)}
	for _, e := range s.OfKind(types.KindPagedList) {
		paged := e.(*types.PagedList)
		for _, element := range paged.Components.Elements {
			card := element.Entity
			if card == nil {
				continue
			}
			name := titleOf(card)
			if name == "" {
				continue
			}
			entry := types.SkillEntry{Name: name}

			if ref := skillRef(walker, card); ref != "" {
				entry.EntityUrn = &ref
				if es, ok := endorsed[ref]; ok {
					entry.NumEndorsements = es.EndorsementCount
					entry.EndorsedByViewer = es.EndorsedByViewer
				} else {
					diag.warn(WarnUnresolvedReference, ref, "endorsed skill")
				}
			}
			skills = append(skills, entry)
		}
	}
	return skills, diag, nil
}

// skillRef finds the endorsed-skill reference among a card's nested action
// components.
func skillRef(walker *component.Walker, card *component.EntityCard) string {
	if card.SubComponents == nil {
		return ""
	}
	for f := range walker.Walk(card.SubComponents.Components) {
		if f.Kind == component.FragmentSkillRef {
			return f.Text
		}
	}
	return ""
}
