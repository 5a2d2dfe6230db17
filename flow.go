// Package orgflow holds the workflow graph document model and the live
// editing store built on top of it. A Document is the unit exchanged with
// the backend; a Graph owns one Document during an editing session.
package orgflow

// Position is a node's 2D canvas coordinate.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NodeData carries the display payload nested under "data" on the wire.
// Kind is mirrored here as nodeType for documents produced by older
// pipelines; Normalize reconciles the two.
type NodeData struct {
	Label       string `json:"label"`
	Kind        Kind   `json:"nodeType,omitempty"`
	Description string `json:"description,omitempty"`
}

// Node represents a workflow step.
// Parent, when set, names an enclosing node; Extent "parent" constrains
// the node to remain inside it.
type Node struct {
	ID       string   `json:"id"`
	Kind     Kind     `json:"type,omitempty"`
	Position Position `json:"position"`
	Data     NodeData `json:"data"`
	Parent   string   `json:"parentNode,omitempty"`
	Extent   string   `json:"extent,omitempty"`
}

// Edge represents a directed connection between two nodes.
// Animated is a pointer so that an absent field defaults to true.
type Edge struct {
	ID       string   `json:"id"`
	Source   string   `json:"source"`
	Target   string   `json:"target"`
	Type     EdgeType `json:"type,omitempty"`
	Label    string   `json:"label,omitempty"`
	Animated *bool    `json:"animated,omitempty"`
}

// IsAnimated reports whether the edge shows the moving-dots cue.
// Edges are animated unless explicitly switched off.
func (e Edge) IsAnimated() bool {
	return e.Animated == nil || *e.Animated
}

// Document is one workflow graph: the unit stored, served, and edited.
type Document struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Clone returns a deep copy of the document. Mutating the copy never
// affects the original.
func (d Document) Clone() Document {
	out := Document{
		Nodes: make([]Node, len(d.Nodes)),
		Edges: make([]Edge, len(d.Edges)),
	}
	copy(out.Nodes, d.Nodes)
	for i, e := range d.Edges {
		if e.Animated != nil {
			v := *e.Animated
			e.Animated = &v
		}
		out.Edges[i] = e
	}
	return out
}

// Node returns the node with the given id, if present.
func (d Document) Node(id string) (Node, bool) {
	for _, n := range d.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// Edge returns the edge with the given id, if present.
func (d Document) Edge(id string) (Edge, bool) {
	for _, e := range d.Edges {
		if e.ID == id {
			return e, true
		}
	}
	return Edge{}, false
}

// Bool returns a pointer to b, for filling Edge.Animated.
func Bool(b bool) *bool { return &b }
