package orgflow

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdge_IsAnimated(t *testing.T) {
	assert.True(t, Edge{}.IsAnimated(), "absent animated flag defaults to true")
	assert.True(t, Edge{Animated: Bool(true)}.IsAnimated())
	assert.False(t, Edge{Animated: Bool(false)}.IsAnimated())
}

func TestDocument_Clone(t *testing.T) {
	doc := Document{
		Nodes: []Node{{ID: "a", Data: NodeData{Label: "A"}}},
		Edges: []Edge{{ID: "e", Source: "a", Target: "a", Animated: Bool(false)}},
	}
	clone := doc.Clone()

	clone.Nodes[0].Data.Label = "changed"
	*clone.Edges[0].Animated = true

	assert.Equal(t, "A", doc.Nodes[0].Data.Label)
	assert.False(t, *doc.Edges[0].Animated, "clone must not share animated pointer")
}

func TestNode_WireShape(t *testing.T) {
	n := Node{
		ID:       "n1",
		Kind:     KindWebhook,
		Position: Position{X: 10, Y: 20},
		Data:     NodeData{Label: "Hook", Kind: KindWebhook, Description: "fires"},
		Parent:   "group-1",
		Extent:   "parent",
	}
	raw, err := json.Marshal(n)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "webhook", got["type"])
	assert.Equal(t, "group-1", got["parentNode"])

	data, ok := got["data"].(map[string]any)
	require.True(t, ok, "label lives under a nested data object")
	assert.Equal(t, "Hook", data["label"])
	assert.Equal(t, "webhook", data["nodeType"])
}

func TestIntegrationsFrom(t *testing.T) {
	doc := Document{Nodes: []Node{
		{ID: "1", Kind: KindSlack, Data: NodeData{Label: "Notify", Description: "pings sales"}},
		{ID: "2", Kind: KindSlack, Data: NodeData{Label: "Notify again"}},
		{ID: "3", Kind: KindDefault, Data: NodeData{Label: "Generic"}},
		{ID: "4", Kind: KindGmail, Data: NodeData{Label: "Mail"}},
	}}

	items := IntegrationsFrom(doc)
	require.Len(t, items, 2, "one entry per distinct non-default kind")
	assert.Equal(t, Integration{Name: "Notify", Type: KindSlack, Description: "pings sales"}, items[0])
	assert.Equal(t, KindGmail, items[1].Type)
}
