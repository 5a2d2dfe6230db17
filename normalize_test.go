package orgflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_DropsDuplicateNodeIDs(t *testing.T) {
	doc := Document{Nodes: []Node{
		{ID: "a", Data: NodeData{Label: "first"}},
		{ID: "a", Data: NodeData{Label: "second"}},
		{ID: "b"},
	}}
	doc.Normalize()

	require.Len(t, doc.Nodes, 2)
	assert.Equal(t, "first", doc.Nodes[0].Data.Label, "first occurrence wins")
}

func TestNormalize_DropsDanglingEdges(t *testing.T) {
	doc := Document{
		Nodes: []Node{{ID: "a"}, {ID: "b"}},
		Edges: []Edge{
			{ID: "ok", Source: "a", Target: "b"},
			{ID: "no-src", Source: "ghost", Target: "b"},
			{ID: "no-dst", Source: "a", Target: "ghost"},
			{ID: "ok", Source: "b", Target: "a"},
		},
	}
	doc.Normalize()

	require.Len(t, doc.Edges, 1)
	assert.Equal(t, "ok", doc.Edges[0].ID)
	assert.Equal(t, "a", doc.Edges[0].Source)
}

func TestNormalize_ClearsDanglingParent(t *testing.T) {
	doc := Document{Nodes: []Node{
		{ID: "group"},
		{ID: "inside", Parent: "group", Extent: "parent"},
		{ID: "orphan", Parent: "ghost", Extent: "parent"},
	}}
	doc.Normalize()

	inside, _ := doc.Node("inside")
	orphan, _ := doc.Node("orphan")
	assert.Equal(t, "group", inside.Parent)
	assert.Empty(t, orphan.Parent)
	assert.Empty(t, orphan.Extent)
}

func TestNormalize_ReconcilesKind(t *testing.T) {
	doc := Document{Nodes: []Node{
		{ID: "legacy", Data: NodeData{Kind: KindNotion}},
		{ID: "unknown", Kind: Kind("martian")},
		{ID: "blank"},
	}}
	doc.Normalize()

	legacy, _ := doc.Node("legacy")
	unknown, _ := doc.Node("unknown")
	blank, _ := doc.Node("blank")
	assert.Equal(t, KindNotion, legacy.Kind, "data.nodeType is lifted when type is empty")
	assert.Equal(t, KindNotion, legacy.Data.Kind)
	assert.Equal(t, KindDefault, unknown.Kind)
	assert.Equal(t, KindDefault, blank.Kind)
}

func TestNormalize_EdgeTypesFallBack(t *testing.T) {
	doc := Document{
		Nodes: []Node{{ID: "a"}},
		Edges: []Edge{{ID: "e", Source: "a", Target: "a", Type: EdgeType("wiggly")}},
	}
	doc.Normalize()

	require.Len(t, doc.Edges, 1, "self-loops survive normalization")
	assert.Equal(t, EdgeTypeDefault, doc.Edges[0].Type)
}
