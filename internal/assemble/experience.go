package assemble

import (
	"strings"

	"github.com/jonathan/voyager-parser/internal/component"
	"github.com/jonathan/voyager-parser/internal/dates"
	"github.com/jonathan/voyager-parser/internal/extract"
	"github.com/jonathan/voyager-parser/internal/store"
	"github.com/jonathan/voyager-parser/internal/types"
)

// positionGroupMarker identifies nested paged-list references that expand a
// multi-role company grouping.
const positionGroupMarker = "profilePositionGroup"

// Experience assembles the work-history section of a profile response.
// The source lists the current position first; entries preserve that order
// and the assembler relies on it rather than enforcing a single-current
// invariant.
func Experience(raw *types.RawResponse, opts Options) ([]types.ExperienceEntry, *Diagnostics, error) {
	diag := &Diagnostics{}
	if err := checkShape(raw); err != nil {
		return nil, diag, err
	}

	entries := []types.ExperienceEntry{}
	page := raw
	for range maxContinuations {
		s := store.FromResponse(page)
		paged := bestPagedList(s)
		if paged == nil {
			break
		}

		entries = append(entries, experienceElements(paged.Components.Elements, s, diag, opts)...)

		paging := paged.Components.Paging
		if opts.Pages == nil || paging == nil || paging.Total <= paging.Start+len(paged.Components.Elements) {
			break
		}
		next := component.Paging{
			Count: paging.Count,
			Start: paging.Start + len(paged.Components.Elements),
			Total: paging.Total,
		}
		fetched, err := opts.Pages.FetchPage(next)
		if err != nil || fetched == nil {
			break
		}
		page = fetched
	}

	return entries, diag, nil
}

func experienceElements(elements []component.Node, s *store.Store, diag *Diagnostics, opts Options) []types.ExperienceEntry {
	var entries []types.ExperienceEntry
	for _, element := range elements {
		card := element.Entity
		if card == nil {
			continue
		}
		if groupRef := positionGroupRef(card); groupRef != "" {
			entries = append(entries, expandPositionGroup(groupRef, s, diag, opts)...)
			continue
		}
		entries = append(entries, experienceCard(card, s, diag, opts))
	}
	return entries
}

// positionGroupRef returns the nested paged-list reference of a multi-role
// grouping, or empty when the card is a single position.
func positionGroupRef(card *component.EntityCard) string {
	if card.SubComponents == nil {
		return ""
	}
	for _, sub := range card.SubComponents.Components {
		if sub.PagedRef != "" && strings.Contains(sub.PagedRef, positionGroupMarker) {
			return sub.PagedRef
		}
	}
	return ""
}

func expandPositionGroup(groupRef string, s *store.Store, diag *Diagnostics, opts Options) []types.ExperienceEntry {
	res := s.Resolve(groupRef)
	if len(res.Entities) == 0 {
		diag.warn(WarnUnresolvedReference, groupRef, "position group")
		return nil
	}
	paged, ok := res.Entities[0].(*types.PagedList)
	if !ok {
		diag.warn(WarnUnresolvedReference, groupRef, "position group resolved to non-paged entity")
		return nil
	}
	return experienceElements(paged.Components.Elements, s, diag, opts)
}

func experienceCard(card *component.EntityCard, s *store.Store, diag *Diagnostics, opts Options) types.ExperienceEntry {
	entry := types.ExperienceEntry{
		Title:  optional(titleOf(card)),
		Skills: []string{},
	}

	caption := textOf(card.Caption)
	parsed := dates.ParseRange(caption)
	if parsed.Unparsed {
		diag.warn(WarnUnparsedDate, caption, "experience caption")
	}
	if parsed.Start != nil {
		d := types.ISODate{Time: *parsed.Start}
		entry.StartDate = &d
	}
	if parsed.End != nil {
		d := types.ISODate{Time: *parsed.End}
		entry.EndDate = &d
	}
	entry.IsCurrent = parsed.IsCurrent

	companyURL := card.TextActionTarget
	entry.CompanyURL = optional(companyURL)

	companyName := ""
	if id, ok := extract.CompanyID(companyURL); ok {
		entry.CompanyID = &id
		urn := extract.CompanyUrn(id)
		if e, found := s.Get(urn); found {
			if company, isCompany := e.(*types.Company); isCompany {
				companyName = company.Name
				if company.LogoResolutionResult != nil {
					if logo, ok := extract.VectorImageURL(company.LogoResolutionResult.VectorImage); ok {
						entry.CompanyLogoURL = &logo
					}
				}
			}
		} else {
			diag.warn(WarnUnresolvedReference, urn, "company entity")
			if opts.Names != nil {
				if name, resolved := opts.Names.ResolveName(urn); resolved {
					companyName = name
				}
			}
		}
	}

	// The structural company name wins; the subtitle is the fallback.
	if companyName == "" {
		companyName = textOf(card.Subtitle)
	}
	entry.Company = optional(extract.CleanCompanyName(companyName))

	if meta := textOf(card.Metadata); meta != "" && !extract.ContainsMonthToken(meta) {
		entry.Location = optional(meta)
	}

	if card.SubComponents != nil {
		walker := &component.Walker{}
		for f := range walker.Walk(card.SubComponents.Components) {
			switch f.Kind {
			case component.FragmentText:
				if skills, ok := extract.SkillsLine(f.Text); ok {
					entry.Skills = skills
				} else if entry.Description == nil && extract.LooksLikeDescription(f.Text) {
					entry.Description = optional(f.Text)
				}
			case component.FragmentMetadata:
				if entry.Location == nil && f.Text != "" && !extract.ContainsMonthToken(f.Text) {
					entry.Location = optional(f.Text)
				}
			}
		}
	}

	return entry
}
