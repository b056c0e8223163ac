// Package assemble combines the entity store, the component walker and the
// extractor library into the per-section record assemblers. Each assembler
// is one pure pass over one RawResponse: it builds a fresh store, walks the
// relevant components and emits fully shaped records whose missing fields
// are null or defaulted, never absent.
package assemble

import (
	"github.com/jonathan/voyager-parser/internal/component"
	"github.com/jonathan/voyager-parser/internal/store"
	"github.com/jonathan/voyager-parser/internal/types"
)

// NameResolver is the optional collaborator that supplies display names for
// entities absent from the included list. Assemblers work without one.
type NameResolver interface {
	ResolveName(urn string) (string, bool)
}

// PageFetcher is the optional collaborator that fetches the next page of a
// paged section. Assemblers work without one; pagination then stops at the
// first page.
type PageFetcher interface {
	FetchPage(paging component.Paging) (*types.RawResponse, error)
}

// Options carries the optional collaborators into an assembly pass.
type Options struct {
	Names NameResolver
	Pages PageFetcher
}

// maxContinuations bounds how many further pages one assembly pass will ask
// the PageFetcher for.
const maxContinuations = 20

// checkShape rejects responses without the minimum top-level shape.
func checkShape(raw *types.RawResponse) error {
	if raw == nil {
		return structureErr("nil response")
	}
	if !raw.HasData() && len(raw.Included) == 0 {
		return structureErr("response carries neither data nor included entities")
	}
	return nil
}

// optional maps the wire convention "empty string means absent" to a
// nullable field.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func textOf(attr *component.TextAttr) string {
	if attr == nil {
		return ""
	}
	return attr.Text
}

func titleOf(card *component.EntityCard) string {
	if card.TitleV2 == nil || card.TitleV2.Text == nil {
		return ""
	}
	return card.TitleV2.Text.Text
}

// bestPagedList picks the paged list with the most materialized elements,
// tie-broken by the highest paging total. Responses for sections with
// nested position groups carry several paged lists; the main one is the
// fullest.
func bestPagedList(s *store.Store) *types.PagedList {
	var best *types.PagedList
	bestElements, bestTotal := -1, -1
	for _, e := range s.OfKind(types.KindPagedList) {
		paged := e.(*types.PagedList)
		elements := len(paged.Components.Elements)
		total := 0
		if paged.Components.Paging != nil {
			total = paged.Components.Paging.Total
		}
		if elements > bestElements || (elements == bestElements && total > bestTotal) {
			best, bestElements, bestTotal = paged, elements, total
		}
	}
	return best
}

// firstPagedList returns the first paged list in included order.
func firstPagedList(s *store.Store) *types.PagedList {
	for _, e := range s.OfKind(types.KindPagedList) {
		return e.(*types.PagedList)
	}
	return nil
}

// pagedLookup adapts a store to the walker's paged-reference resolver.
func pagedLookup(s *store.Store, diag *Diagnostics) component.PagedLookup {
	return func(urn string) ([]component.Node, bool) {
		res := s.Resolve(urn)
		if len(res.Entities) == 0 {
			diag.warn(WarnUnresolvedReference, urn, "paged list reference")
			return nil, false
		}
		paged, ok := res.Entities[0].(*types.PagedList)
		if !ok {
			return nil, false
		}
		return paged.Components.Elements, true
	}
}
