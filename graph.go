package orgflow

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/meikuraledutech/orgflow/idgen"
)

// nodeSeedFloor matches the id space the original editor generated into.
// Seeding never starts below it, and never at or below an id already
// present in the document.
const nodeSeedFloor = 1000

// Observer receives a snapshot of the document after every successful
// mutation. Observers are invoked synchronously, in subscription order,
// before the mutating call returns.
type Observer func(Document)

// Graph is the exclusive owner of one live Document during an editing
// session. Every operation is total: unknown ids are silent no-ops, never
// errors, because the gesture that produced a stale id is itself the
// result of a race between user input and async state.
//
// Node deletion and its cascading edge removals are one atomic step; no
// observer ever sees a dangling edge.
type Graph struct {
	mu        sync.Mutex
	doc       Document
	nextNode  int
	observers []Observer
}

// NewGraph creates a Graph initialized from doc.
func NewGraph(doc Document) *Graph {
	g := &Graph{}
	g.Init(doc)
	return g
}

// Init replaces the current document wholesale. The incoming document is
// normalized first; old state is discarded, not merged. The node id
// counter is reseeded above every numeric id already present so that
// generated ids cannot collide with backend-supplied ones.
func (g *Graph) Init(doc Document) {
	doc = doc.Clone()
	doc.Normalize()

	next := nodeSeedFloor
	for _, n := range doc.Nodes {
		if v, ok := numericSuffix(n.ID); ok && v >= next {
			next = v + 1
		}
	}

	g.mu.Lock()
	g.doc = doc
	g.nextNode = next
	snap := g.doc.Clone()
	g.mu.Unlock()
	g.notify(snap)
}

// numericSuffix extracts the counter portion of a generated-looking node
// id: either "node-<n>" or a bare integer.
func numericSuffix(id string) (int, bool) {
	s := strings.TrimPrefix(id, "node-")
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// Subscribe registers an observer for document snapshots.
func (g *Graph) Subscribe(fn Observer) {
	g.mu.Lock()
	g.observers = append(g.observers, fn)
	g.mu.Unlock()
}

func (g *Graph) notify(snap Document) {
	g.mu.Lock()
	obs := make([]Observer, len(g.observers))
	copy(obs, g.observers)
	g.mu.Unlock()
	for _, fn := range obs {
		fn(snap)
	}
}

// Document returns a snapshot of the current document.
func (g *Graph) Document() Document {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.doc.Clone()
}

// Node returns a copy of the node with the given id, if present.
func (g *Graph) Node(id string) (Node, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.doc.Node(id)
}

// Edge returns a copy of the edge with the given id, if present.
func (g *Graph) Edge(id string) (Edge, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.doc.Edge(id)
}

// AddNode inserts a new node with a freshly generated id and returns the
// id. The kind is normalized; the label is stored as given — emptiness
// checks belong to the editor layer, not the store.
func (g *Graph) AddNode(kind Kind, label string, pos Position) string {
	g.mu.Lock()
	id := fmt.Sprintf("node-%d", g.nextNode)
	g.nextNode++
	kind = NormalizeKind(kind)
	g.doc.Nodes = append(g.doc.Nodes, Node{
		ID:       id,
		Kind:     kind,
		Position: pos,
		Data:     NodeData{Label: label, Kind: kind},
	})
	snap := g.doc.Clone()
	g.mu.Unlock()
	g.notify(snap)
	return id
}

// UpdateNodeLabel replaces the node's label, leaving every other field
// unchanged. No-op if the id is absent.
func (g *Graph) UpdateNodeLabel(id, label string) {
	g.mu.Lock()
	changed := false
	for i := range g.doc.Nodes {
		if g.doc.Nodes[i].ID == id {
			g.doc.Nodes[i].Data.Label = label
			changed = true
			break
		}
	}
	var snap Document
	if changed {
		snap = g.doc.Clone()
	}
	g.mu.Unlock()
	if changed {
		g.notify(snap)
	}
}

// MoveNode updates the node's position. Edges need no touch-up: they are
// drawn from current endpoint positions by the renderer. No-op if absent.
func (g *Graph) MoveNode(id string, pos Position) {
	g.mu.Lock()
	changed := false
	for i := range g.doc.Nodes {
		if g.doc.Nodes[i].ID == id {
			g.doc.Nodes[i].Position = pos
			changed = true
			break
		}
	}
	var snap Document
	if changed {
		snap = g.doc.Clone()
	}
	g.mu.Unlock()
	if changed {
		g.notify(snap)
	}
}

// DeleteNode removes the node and every edge that references it, in one
// atomic step. No-op if the id is absent.
func (g *Graph) DeleteNode(id string) {
	g.DeleteMany([]string{id}, nil)
}

// DeleteMany removes the given nodes and edges in one atomic step,
// cascading edge removal for every deleted node. Absent ids are skipped.
func (g *Graph) DeleteMany(nodeIDs, edgeIDs []string) {
	dropNode := make(map[string]bool, len(nodeIDs))
	for _, id := range nodeIDs {
		dropNode[id] = true
	}
	dropEdge := make(map[string]bool, len(edgeIDs))
	for _, id := range edgeIDs {
		dropEdge[id] = true
	}

	g.mu.Lock()
	changed := false
	nodes := g.doc.Nodes[:0]
	for _, n := range g.doc.Nodes {
		if dropNode[n.ID] {
			changed = true
			continue
		}
		nodes = append(nodes, n)
	}
	g.doc.Nodes = nodes

	edges := g.doc.Edges[:0]
	for _, e := range g.doc.Edges {
		if dropEdge[e.ID] || dropNode[e.Source] || dropNode[e.Target] {
			changed = true
			continue
		}
		edges = append(edges, e)
	}
	g.doc.Edges = edges

	var snap Document
	if changed {
		snap = g.doc.Clone()
	}
	g.mu.Unlock()
	if changed {
		g.notify(snap)
	}
}

// Connect creates a new edge from source to target with the default style
// (animated, bezier) and returns its id. Both endpoints must exist in the
// current snapshot; otherwise nothing happens and "" is returned — a
// connect aimed at a just-deleted node must not resurrect it. Self-loops
// are permitted, mirroring permissive connect-by-drag.
func (g *Graph) Connect(source, target string) string {
	g.mu.Lock()
	if _, ok := g.doc.Node(source); !ok {
		g.mu.Unlock()
		return ""
	}
	if _, ok := g.doc.Node(target); !ok {
		g.mu.Unlock()
		return ""
	}

	id := g.freshEdgeIDLocked()
	g.doc.Edges = append(g.doc.Edges, Edge{
		ID:       id,
		Source:   source,
		Target:   target,
		Type:     EdgeTypeDefault,
		Animated: Bool(true),
	})
	snap := g.doc.Clone()
	g.mu.Unlock()
	g.notify(snap)
	return id
}

// freshEdgeIDLocked generates an edge id not present in the document.
func (g *Graph) freshEdgeIDLocked() string {
	for {
		id, err := idgen.Edge()
		if err != nil {
			id = fmt.Sprintf("edge-%d", g.nextNode)
			g.nextNode++
		}
		if _, exists := g.doc.Edge(id); !exists {
			return id
		}
	}
}

// EdgeUpdate is a partial update for UpdateEdge; nil fields are left
// unchanged.
type EdgeUpdate struct {
	Label    *string
	Type     *EdgeType
	Animated *bool
}

// UpdateEdge applies a partial update to the edge. The source and target
// are never touched. No-op if the id is absent.
func (g *Graph) UpdateEdge(id string, upd EdgeUpdate) {
	g.mu.Lock()
	changed := false
	for i := range g.doc.Edges {
		if g.doc.Edges[i].ID != id {
			continue
		}
		if upd.Label != nil {
			g.doc.Edges[i].Label = *upd.Label
		}
		if upd.Type != nil {
			g.doc.Edges[i].Type = NormalizeEdgeType(*upd.Type)
		}
		if upd.Animated != nil {
			g.doc.Edges[i].Animated = Bool(*upd.Animated)
		}
		changed = true
		break
	}
	var snap Document
	if changed {
		snap = g.doc.Clone()
	}
	g.mu.Unlock()
	if changed {
		g.notify(snap)
	}
}

// DeleteEdge removes the edge by id. No-op if absent.
func (g *Graph) DeleteEdge(id string) {
	g.DeleteMany(nil, []string{id})
}
