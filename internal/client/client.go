// Package client is the thin Voyager GraphQL collaborator that produces
// RawResponse pages for the assemblers. It holds the session cookies and
// request headers; retry and rate-limit policy stay with the caller.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/voyager-parser/internal/component"
	"github.com/jonathan/voyager-parser/internal/config"
	"github.com/jonathan/voyager-parser/internal/types"
)

// GraphQL query identifiers observed on the wire. They rotate occasionally
// and may need refreshing from browser network captures.
const (
	profileComponentsQueryID = "voyagerIdentityDashProfileComponents.c5d4db426a0f8247b8ab7bc1d660775a"
	profilesQueryID          = "voyagerIdentityDashProfiles.c7452e58fa37646d09dae4920fc5b4b9"
)

var (
	// ErrRequestFailed is returned when the endpoint answers non-200.
	ErrRequestFailed = fmt.Errorf("voyager request failed")
	// ErrNotAuthenticated is returned when the session is missing or stale.
	ErrNotAuthenticated = fmt.Errorf("not authenticated")
)

// Client talks to the Voyager GraphQL endpoints.
type Client struct {
	baseURL   string
	userAgent string
	csrfToken string
	session   string
	http      *http.Client
}

// New builds a Client from configuration.
func New(cfg *config.Config) *Client {
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		csrfToken: cfg.CSRFToken,
		session:   cfg.SessionCookie,
		http:      &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
	}
}

// ProfileURN canonicalizes a bare profile id into its full URN.
func ProfileURN(id string) string {
	if strings.HasPrefix(id, "urn:li:fsd_profile:") {
		return id
	}
	return "urn:li:fsd_profile:" + id
}

// ProfileSection fetches one profile-components section (experience,
// education, skills) as a normalized response.
func (c *Client) ProfileSection(ctx context.Context, profileURN, section string, count, start int) (*types.RawResponse, error) {
	variables := fmt.Sprintf("(profileUrn:%s,sectionType:%s,locale:en_US,count:%d,start:%d)",
		url.QueryEscape(ProfileURN(profileURN)), section, count, start)
	query := fmt.Sprintf("variables=%s&queryId=%s", variables, profileComponentsQueryID)
	return c.graphQL(ctx, query, pageInstance("profile_view_base_"+section+"_details"))
}

// ContactInfo fetches the contact-details response for a public identifier.
func (c *Client) ContactInfo(ctx context.Context, publicID string) (*types.RawResponse, error) {
	variables := fmt.Sprintf("(memberIdentity:%s)", url.QueryEscape(publicID))
	query := fmt.Sprintf("includeWebMetadata=true&variables=%s&queryId=%s", variables, profilesQueryID)
	return c.graphQL(ctx, query, pageInstance("profile_view_base_contact_details"))
}

// graphQL issues one GET against /graphql and decodes the normalized body.
func (c *Client) graphQL(ctx context.Context, query, pageInstanceHeader string) (*types.RawResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/graphql?"+query, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("accept", "application/vnd.linkedin.normalized+json+2.1")
	req.Header.Set("x-restli-protocol-version", "2.0.0")
	req.Header.Set("x-li-page-instance", pageInstanceHeader)
	if c.userAgent != "" {
		req.Header.Set("user-agent", c.userAgent)
	}
	if c.csrfToken != "" {
		req.Header.Set("csrf-token", c.csrfToken)
		req.AddCookie(&http.Cookie{Name: "JSESSIONID", Value: c.csrfToken})
	}
	if c.session != "" {
		req.AddCookie(&http.Cookie{Name: "li_at", Value: c.session})
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("%w: status %d", ErrNotAuthenticated, res.StatusCode)
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrRequestFailed, res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var raw types.RawResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &raw, nil
}

// pageInstance builds the tracking header value the endpoints expect; the
// trailing id is a fresh random identifier per request.
func pageInstance(page string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "urn:li:page:d_flagship3_" + page + ";" + id
}

// SectionPager binds a client to one profile section so it can serve as a
// pagination continuation fetcher.
type SectionPager struct {
	Client     *Client
	ProfileURN string
	Section    string
}

// FetchPage fetches the page described by the paging metadata.
func (p *SectionPager) FetchPage(paging component.Paging) (*types.RawResponse, error) {
	count := paging.Count
	if count <= 0 {
		count = 20
	}
	return p.Client.ProfileSection(context.Background(), p.ProfileURN, p.Section, count, paging.Start)
}

// NameResolver resolves organization display names by fetching the entity
// directly. It satisfies the assemblers' fallback-name collaborator.
type NameResolver struct {
	Client *Client
}

// ResolveName fetches the display name behind an organization URN.
// Any failure reads as "no name available".
func (r *NameResolver) ResolveName(urn string) (string, bool) {
	id := urn
	if idx := strings.LastIndex(urn, ":"); idx >= 0 {
		id = urn[idx+1:]
	}
	if _, err := strconv.Atoi(id); err != nil {
		return "", false
	}

	req, err := http.NewRequest(http.MethodGet, r.Client.baseURL+"/organization/companies/"+id, nil)
	if err != nil {
		return "", false
	}
	req.Header.Set("accept", "application/vnd.linkedin.normalized+json+2.1")
	if r.Client.csrfToken != "" {
		req.Header.Set("csrf-token", r.Client.csrfToken)
		req.AddCookie(&http.Cookie{Name: "JSESSIONID", Value: r.Client.csrfToken})
	}
	if r.Client.session != "" {
		req.AddCookie(&http.Cookie{Name: "li_at", Value: r.Client.session})
	}

	res, err := r.Client.http.Do(req)
	if err != nil {
		return "", false
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return "", false
	}

	var body struct {
		Data struct {
			Name string `json:"name"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return "", false
	}
	return body.Data.Name, body.Data.Name != ""
}
