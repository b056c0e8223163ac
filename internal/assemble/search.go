package assemble

import (
	"encoding/json"

	"github.com/jonathan/voyager-parser/internal/extract"
	"github.com/jonathan/voyager-parser/internal/store"
	"github.com/jonathan/voyager-parser/internal/types"
)

// searchRoot mirrors the cluster nesting of a people-search response:
// CollectionResponse over SearchClusterViewModel over SearchItem.
type searchRoot struct {
	SearchDashClustersByAll *searchClusters `json:"searchDashClustersByAll"`
}

type searchClusters struct {
	Elements []searchCluster `json:"elements"`
}

type searchCluster struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	Item struct {
		EntityResult    *types.SearchHit `json:"entityResult"`
		EntityResultRef string           `json:"*entityResult"`
	} `json:"item"`
}

// SearchResults assembles every people-search hit of a search response.
// Hits appear either inline in the cluster tree or as references into the
// included list; both shapes are handled.
func SearchResults(raw *types.RawResponse, _ Options) ([]types.SearchResult, *Diagnostics, error) {
	diag := &Diagnostics{}
	if err := checkShape(raw); err != nil {
		return nil, diag, err
	}
	if !raw.HasData() {
		return nil, diag, structureErr("search response carries no data object")
	}

	var root searchRoot
	if err := json.Unmarshal(raw.Data, &root); err != nil {
		return nil, diag, &StructureError{Message: "search data object is not decodable", Cause: err}
	}
	if root.SearchDashClustersByAll == nil {
		return nil, diag, structureErr("search data lacks the cluster collection")
	}

	s := store.FromResponse(raw)
	results := []types.SearchResult{}
	for _, cluster := range root.SearchDashClustersByAll.Elements {
		for _, item := range cluster.Items {
			hit := item.Item.EntityResult
			if hit == nil && item.Item.EntityResultRef != "" {
				res := s.Resolve(item.Item.EntityResultRef)
				if len(res.Entities) == 0 {
					diag.warn(WarnUnresolvedReference, item.Item.EntityResultRef, "search hit")
					continue
				}
				var ok bool
				hit, ok = res.Entities[0].(*types.SearchHit)
				if !ok {
					diag.warn(WarnUnresolvedReference, item.Item.EntityResultRef, "search hit reference resolved to other kind")
					continue
				}
			}
			if hit == nil {
				continue
			}
			results = append(results, SearchHit(hit, diag))
		}
	}
	return results, diag, nil
}

// SearchHit assembles one search-hit entity into its flat record. Every
// field degrades independently; no single miss short-circuits the rest.
func SearchHit(hit *types.SearchHit, diag *Diagnostics) types.SearchResult {
	result := types.SearchResult{}

	if id, ok := extract.IDFromUrn(hit.Urn); ok {
		result.ID = &id
	}
	result.Name = optional(textOf(hit.Title))
	result.Headline = optional(textOf(hit.PrimarySubtitle))
	result.Location = optional(textOf(hit.SecondarySubtitle))

	if hit.NavigationContext != nil {
		result.ProfileURL = optional(hit.NavigationContext.URL)
		if pub, ok := extract.PublicIdentifier(hit.NavigationContext.URL); ok {
			result.PublicIdentifier = &pub
		}
	}

	if photo, ok := extract.HitPhotoPath(hit.Image); ok {
		result.PhotoURL = &photo
	}

	if hit.EntityCustomTrackingInfo != nil {
		result.ConnectionDistance = optional(hit.EntityCustomTrackingInfo.MemberDistance)
	}

	badge := textOf(hit.BadgeText)
	if degree, ok := extract.ConnectionDegree(badge); ok {
		result.ConnectionDegree = &degree
	} else if badge != "" {
		diag.warn(WarnExtractionMiss, badge, "connection degree")
	}

	result.IsPremium = extract.PremiumFlag(extract.HitBadgeIcon(hit.BadgeIcon))

	if insight := firstSimpleInsight(hit.InsightsResolutionResults); insight != nil {
		title := textOf(insight.Title)
		count, ok := extract.MutualConnections(title)
		if !ok && title != "" {
			diag.warn(WarnExtractionMiss, title, "mutual connections count")
		}
		result.MutualConnectionsCount = count
		result.MutualConnectionsURL = optional(insight.NavigationURL)
	}

	if memberID, ok := extract.MemberID(hit.TrackingUrn); ok {
		result.MemberID = &memberID
	}

	ring := extract.HitRingStatus(hit.Image)
	result.RingStatus = optional(ring.Status)
	result.IsHiring = ring.IsHiring
	result.IsOpenToWork = ring.IsOpenToWork

	if company, ok := extract.CompanyFromTitle(textOf(hit.PrimarySubtitle)); ok {
		result.Company = &company
	}

	return result
}

// firstSimpleInsight reads only the first insight; document order puts the
// mutual-connections insight there.
func firstSimpleInsight(insights []types.Insight) *types.SimpleInsight {
	if len(insights) == 0 {
		return nil
	}
	return insights[0].SimpleInsight
}
