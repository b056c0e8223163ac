package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/voyager-parser/internal/component"
	"github.com/jonathan/voyager-parser/internal/config"
)

func testClient(url string) *Client {
	return New(&config.Config{
		BaseURL:        url,
		UserAgent:      "test-agent",
		CSRFToken:      "ajax:123",
		SessionCookie:  "AQED...",
		TimeoutSeconds: 5,
	})
}

func TestProfileURN(t *testing.T) {
	assert.Equal(t, "urn:li:fsd_profile:ACoAA", ProfileURN("ACoAA"))
	assert.Equal(t, "urn:li:fsd_profile:ACoAA", ProfileURN("urn:li:fsd_profile:ACoAA"))
}

func TestProfileSection(t *testing.T) {
	var got *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": {},
			"included": [{"entityUrn": "urn:li:fsd_company:1", "name": "Acme"}]
		}`))
	}))
	defer server.Close()

	c := testClient(server.URL)
	raw, err := c.ProfileSection(context.Background(), "ACoAA", "experience", 20, 0)
	require.NoError(t, err)
	require.NotNil(t, raw)
	assert.Len(t, raw.Included, 1)

	require.NotNil(t, got)
	assert.Equal(t, "/graphql", got.URL.Path)
	assert.Contains(t, got.URL.RawQuery, "sectionType:experience")
	assert.Contains(t, got.URL.RawQuery, "count:20")
	assert.Contains(t, got.URL.RawQuery, "queryId="+profileComponentsQueryID)

	assert.Equal(t, "application/vnd.linkedin.normalized+json+2.1", got.Header.Get("accept"))
	assert.Equal(t, "2.0.0", got.Header.Get("x-restli-protocol-version"))
	assert.Equal(t, "ajax:123", got.Header.Get("csrf-token"))
	assert.Equal(t, "test-agent", got.Header.Get("user-agent"))
	assert.Contains(t, got.Header.Get("x-li-page-instance"), "profile_view_base_experience_details")

	cookies := got.Cookies()
	names := map[string]string{}
	for _, c := range cookies {
		names[c.Name] = c.Value
	}
	assert.Equal(t, "ajax:123", names["JSESSIONID"])
	assert.Equal(t, "AQED...", names["li_at"])
}

func TestContactInfoRequest(t *testing.T) {
	var query string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"data": {}, "included": []}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).ContactInfo(context.Background(), "ada-lovelace")
	require.NoError(t, err)
	assert.Contains(t, query, "memberIdentity:ada-lovelace")
	assert.Contains(t, query, "queryId="+profilesQueryID)
}

func TestGraphQL_AuthAndFailureStatuses(t *testing.T) {
	status := http.StatusUnauthorized
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	}))
	defer server.Close()
	c := testClient(server.URL)

	_, err := c.ProfileSection(context.Background(), "A", "experience", 20, 0)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	status = http.StatusForbidden
	_, err = c.ProfileSection(context.Background(), "A", "experience", 20, 0)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	status = http.StatusTooManyRequests
	_, err = c.ProfileSection(context.Background(), "A", "experience", 20, 0)
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.NotErrorIs(t, err, ErrNotAuthenticated)
}

func TestGraphQL_UndecodableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>blocked</html>"))
	}))
	defer server.Close()

	_, err := testClient(server.URL).ProfileSection(context.Background(), "A", "experience", 20, 0)
	assert.Error(t, err)
}

func TestSectionPager(t *testing.T) {
	var query string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"data": {}, "included": []}`))
	}))
	defer server.Close()

	pager := &SectionPager{Client: testClient(server.URL), ProfileURN: "ACoAA", Section: "experience"}

	_, err := pager.FetchPage(component.Paging{Count: 5, Start: 10})
	require.NoError(t, err)
	assert.Contains(t, query, "count:5")
	assert.Contains(t, query, "start:10")

	// a zero count falls back to the section default
	_, err = pager.FetchPage(component.Paging{Start: 20})
	require.NoError(t, err)
	assert.Contains(t, query, "count:20")
}

func TestNameResolver(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/organization/companies/143650" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"data": {"name": "Forcepoint LLC"}}`))
	}))
	defer server.Close()

	r := &NameResolver{Client: testClient(server.URL)}

	name, ok := r.ResolveName("urn:li:fsd_company:143650")
	require.True(t, ok)
	assert.Equal(t, "Forcepoint LLC", name)

	_, ok = r.ResolveName("urn:li:fsd_company:999")
	assert.False(t, ok)

	// non-numeric ids never hit the network
	_, ok = r.ResolveName("urn:li:fsd_company:ACoAA")
	assert.False(t, ok)
}
