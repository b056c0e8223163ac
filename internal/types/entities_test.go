package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEntity_Profile(t *testing.T) {
	raw := json.RawMessage(`{
		"entityUrn": "urn:li:fsd_profile:ACoAA",
		"$type": "com.linkedin.voyager.dash.identity.profile.Profile",
		"firstName": "Ada",
		"lastName": "Lovelace",
		"publicIdentifier": "ada-lovelace",
		"headline": "Engineer",
		"emailAddress": {"emailAddress": "ada@example.com"}
	}`)

	e := DecodeEntity(raw)
	p, ok := e.(*Profile)
	require.True(t, ok)
	assert.Equal(t, KindProfile, p.EntityKind())
	assert.Equal(t, "urn:li:fsd_profile:ACoAA", p.EntityUrn())
	assert.Equal(t, "Ada", p.FirstName)
	require.NotNil(t, p.EmailAddress)
	assert.Equal(t, "ada@example.com", p.EmailAddress.EmailAddress)
}

func TestDecodeEntity_CompanyByTypeAndByUrn(t *testing.T) {
	byType := DecodeEntity(json.RawMessage(`{
		"entityUrn": "urn:li:x:1",
		"$type": "com.linkedin.voyager.dash.organization.Company",
		"name": "Acme"
	}`))
	require.IsType(t, &Company{}, byType)
	assert.Equal(t, "Acme", byType.(*Company).Name)

	byUrn := DecodeEntity(json.RawMessage(`{
		"entityUrn": "urn:li:fsd_company:143650",
		"name": "Globex"
	}`))
	require.IsType(t, &Company{}, byUrn)
	assert.Equal(t, "Globex", byUrn.(*Company).Name)
}

func TestDecodeEntity_School(t *testing.T) {
	e := DecodeEntity(json.RawMessage(`{
		"entityUrn": "urn:li:fsd_school:18190",
		"name": "State University"
	}`))
	s, ok := e.(*School)
	require.True(t, ok)
	assert.Equal(t, KindSchool, s.EntityKind())
	assert.Equal(t, "State University", s.Name)
}

func TestDecodeEntity_PagedList(t *testing.T) {
	e := DecodeEntity(json.RawMessage(`{
		"entityUrn": "urn:li:fsd_profileComponent:experience",
		"$type": "com.linkedin.voyager.dash.identity.profile.tetris.PagedListComponent",
		"components": {
			"elements": [
				{"components": {"textComponent": {"text": {"text": "x"}}}}
			],
			"paging": {"count": 5, "start": 0, "total": 12}
		}
	}`))

	pl, ok := e.(*PagedList)
	require.True(t, ok)
	require.Len(t, pl.Components.Elements, 1)
	require.NotNil(t, pl.Components.Paging)
	assert.Equal(t, 12, pl.Components.Paging.Total)
}

func TestDecodeEntity_EndorsedSkill(t *testing.T) {
	e := DecodeEntity(json.RawMessage(`{
		"entityUrn": "urn:li:fsd_endorsedSkill:(ACoAA,123)",
		"$type": "com.linkedin.voyager.dash.identity.profile.EndorsedSkill",
		"endorsementCount": 17,
		"endorsedByViewer": true
	}`))

	es, ok := e.(*EndorsedSkill)
	require.True(t, ok)
	assert.Equal(t, 17, es.EndorsementCount)
	assert.True(t, es.EndorsedByViewer)
}

func TestDecodeEntity_SearchHit(t *testing.T) {
	e := DecodeEntity(json.RawMessage(`{
		"entityUrn": "urn:li:fsd_entityResultViewModel:(urn:li:fsd_profile:A,SEARCH,DEFAULT)",
		"$type": "com.linkedin.voyager.dash.search.EntityResultViewModel",
		"title": {"text": "Grace Hopper"},
		"trackingUrn": "urn:li:member:42"
	}`))

	hit, ok := e.(*SearchHit)
	require.True(t, ok)
	require.NotNil(t, hit.Title)
	assert.Equal(t, "Grace Hopper", hit.Title.Text)
	assert.Equal(t, "urn:li:member:42", hit.TrackingUrn)
}

func TestDecodeEntity_UnknownKindSurvives(t *testing.T) {
	e := DecodeEntity(json.RawMessage(`{
		"entityUrn": "urn:li:fsd_something:9",
		"$type": "com.linkedin.voyager.dash.feed.Update",
		"payload": {"x": 1}
	}`))

	u, ok := e.(*Unknown)
	require.True(t, ok)
	assert.Equal(t, KindUnknown, u.EntityKind())
	assert.Equal(t, "urn:li:fsd_something:9", u.EntityUrn())
	assert.Contains(t, u.Fields, "payload")
}

func TestDecodeEntity_MalformedBodyDegradesToUnknown(t *testing.T) {
	// declared a company but the body does not fit the company shape
	e := DecodeEntity(json.RawMessage(`{
		"entityUrn": "urn:li:fsd_company:1",
		"name": 12345
	}`))
	assert.IsType(t, &Unknown{}, e)
}

func TestRawResponseUnmarshal(t *testing.T) {
	var raw RawResponse
	err := json.Unmarshal([]byte(`{
		"data": {"ref": "urn:li:fsd_company:1"},
		"included": [
			{"entityUrn": "urn:li:fsd_company:1", "name": "Acme"},
			{"entityUrn": "urn:li:fsd_widget:2", "$type": "x.y.Widget"}
		]
	}`), &raw)
	require.NoError(t, err)

	assert.True(t, raw.HasData())
	require.Len(t, raw.Included, 2)
	assert.IsType(t, &Company{}, raw.Included[0])
	assert.IsType(t, &Unknown{}, raw.Included[1])
}

func TestRawResponseHasData(t *testing.T) {
	var nilResp *RawResponse
	assert.False(t, nilResp.HasData())
	assert.False(t, (&RawResponse{}).HasData())
	assert.False(t, (&RawResponse{Data: json.RawMessage("null")}).HasData())
	assert.True(t, (&RawResponse{Data: json.RawMessage("{}")}).HasData())
}
