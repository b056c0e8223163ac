package assemble

import (
	"github.com/jonathan/voyager-parser/internal/component"
	"github.com/jonathan/voyager-parser/internal/dates"
	"github.com/jonathan/voyager-parser/internal/extract"
	"github.com/jonathan/voyager-parser/internal/store"
	"github.com/jonathan/voyager-parser/internal/types"
)

// Education assembles the education section of a profile response.
func Education(raw *types.RawResponse, opts Options) ([]types.EducationEntry, *Diagnostics, error) {
	diag := &Diagnostics{}
	if err := checkShape(raw); err != nil {
		return nil, diag, err
	}

	s := store.FromResponse(raw)
	entries := []types.EducationEntry{}

	paged := firstPagedList(s)
	if paged == nil {
		return entries, diag, nil
	}

	for _, element := range paged.Components.Elements {
		card := element.Entity
		if card == nil {
			continue
		}
		entries = append(entries, educationCard(card, s, diag, opts))
	}
	return entries, diag, nil
}

func educationCard(card *component.EntityCard, s *store.Store, diag *Diagnostics, opts Options) types.EducationEntry {
	entry := types.EducationEntry{
		Degree: optional(titleOf(card)),
		School: optional(textOf(card.Subtitle)),
	}

	years := dates.ParseYearRange(textOf(card.Caption))
	entry.StartYear = years.StartYear
	entry.EndYear = years.EndYear

	schoolURL := card.TextActionTarget
	entry.SchoolURL = optional(schoolURL)

	if id, ok := extract.SchoolID(schoolURL); ok {
		entry.SchoolID = &id
		urn := extract.SchoolUrn(id)
		if e, found := s.Get(urn); found {
			if school, isSchool := e.(*types.School); isSchool {
				if entry.School == nil {
					entry.School = optional(school.Name)
				}
				if school.LogoResolutionResult != nil {
					if logo, ok := extract.VectorImageURL(school.LogoResolutionResult.VectorImage); ok {
						entry.SchoolLogoURL = &logo
					}
				}
			}
		} else {
			diag.warn(WarnUnresolvedReference, urn, "school entity")
			if entry.School == nil && opts.Names != nil {
				if name, resolved := opts.Names.ResolveName(urn); resolved {
					entry.School = optional(name)
				}
			}
		}
	}

	// First sub-component text is the field of study, the second the
	// description, matching source ordering.
	if card.SubComponents != nil {
		walker := &component.Walker{ResolvePaged: pagedLookup(s, diag)}
		texts := walker.Texts(card.SubComponents.Components)
		if len(texts) > 0 {
			entry.FieldOfStudy = optional(texts[0])
		}
		if len(texts) > 1 {
			entry.Description = optional(texts[1])
		}
	}

	return entry
}
