package component

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeUnmarshal_TextComponent(t *testing.T) {
	var n Node
	err := json.Unmarshal([]byte(`{
		"components": {
			"textComponent": {"text": {"text": "Hello", "accessibilityText": "Hello alt"}},
			"entityComponent": null
		}
	}`), &n)
	require.NoError(t, err)

	require.NotNil(t, n.Text)
	require.NotNil(t, n.Text.Text)
	assert.Equal(t, "Hello", n.Text.Text.Text)
	assert.Equal(t, "Hello alt", n.Text.Text.AccessibilityText)
	// null variants stay unset rather than decoding to empty structs
	assert.Nil(t, n.Entity)
}

func TestNodeUnmarshal_EntityComponent(t *testing.T) {
	var n Node
	err := json.Unmarshal([]byte(`{
		"components": {
			"entityComponent": {
				"titleV2": {"text": {"text": "Software Engineer"}},
				"subtitle": {"text": "Acme · Full-time"},
				"caption": {"text": "Jun 2025 - Present"},
				"metadata": {"text": "Remote"},
				"textActionTarget": "https://www.linkedin.com/company/143650/",
				"subComponents": {
					"components": [
						{"components": {"textComponent": {"text": {"text": "nested"}}}}
					]
				}
			}
		}
	}`), &n)
	require.NoError(t, err)

	card := n.Entity
	require.NotNil(t, card)
	assert.Equal(t, "Software Engineer", card.TitleV2.Text.Text)
	assert.Equal(t, "Acme · Full-time", card.Subtitle.Text)
	assert.Equal(t, "Jun 2025 - Present", card.Caption.Text)
	assert.Equal(t, "Remote", card.Metadata.Text)
	assert.Equal(t, "https://www.linkedin.com/company/143650/", card.TextActionTarget)
	require.NotNil(t, card.SubComponents)
	require.Len(t, card.SubComponents.Components, 1)
	assert.Equal(t, "nested", card.SubComponents.Components[0].Text.Text.Text)
}

func TestNodeUnmarshal_PagedRef(t *testing.T) {
	var n Node
	err := json.Unmarshal([]byte(`{
		"components": {"*pagedListComponent": "urn:li:fsd_profileComponent:pages"}
	}`), &n)
	require.NoError(t, err)
	assert.Equal(t, "urn:li:fsd_profileComponent:pages", n.PagedRef)
}

func TestNodeUnmarshal_Tabs(t *testing.T) {
	var n Node
	err := json.Unmarshal([]byte(`{
		"components": {
			"tabComponent": {
				"tabs": [
					{"tabIdentifier": "COMPANIES", "components": []},
					{"tabIdentifier": "SCHOOLS", "components": []}
				]
			}
		}
	}`), &n)
	require.NoError(t, err)

	require.NotNil(t, n.Tabs)
	require.Len(t, n.Tabs.Tabs, 2)
	assert.Equal(t, "COMPANIES", n.Tabs.Tabs[0].Identifier)
	assert.Equal(t, "SCHOOLS", n.Tabs.Tabs[1].Identifier)
}

func TestNodeUnmarshal_ActionComponent(t *testing.T) {
	var n Node
	err := json.Unmarshal([]byte(`{
		"components": {
			"actionComponent": {
				"action": {"endorsedSkillAction": {"*endorsedSkill": "urn:li:fsd_endorsedSkill:(A,1)"}}
			}
		}
	}`), &n)
	require.NoError(t, err)

	require.NotNil(t, n.Action)
	require.NotNil(t, n.Action.Action)
	require.NotNil(t, n.Action.Action.EndorsedSkill)
	assert.Equal(t, "urn:li:fsd_endorsedSkill:(A,1)", n.Action.Action.EndorsedSkill.EndorsedSkillRef)
}

func TestNodeUnmarshal_UnknownKindsBecomeOpaque(t *testing.T) {
	var n Node
	err := json.Unmarshal([]byte(`{
		"components": {
			"mediaComponent": {"some": "payload"},
			"insightComponent": {"other": 1}
		}
	}`), &n)
	require.NoError(t, err)

	require.Len(t, n.Opaque, 2)
	// opaque variants come out sorted by kind regardless of map order
	assert.Equal(t, "insightComponent", n.Opaque[0].Kind)
	assert.Equal(t, "mediaComponent", n.Opaque[1].Kind)
	assert.JSONEq(t, `{"some":"payload"}`, string(n.Opaque[1].Raw))
}

func TestNodeUnmarshal_EmptyEnvelope(t *testing.T) {
	var n Node
	require.NoError(t, json.Unmarshal([]byte(`{"components": {}}`), &n))
	assert.Equal(t, Node{}, n)

	require.NoError(t, json.Unmarshal([]byte(`{}`), &n))
	assert.Equal(t, Node{}, n)
}
