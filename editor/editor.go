// Package editor maps UI gestures onto graph store operations and owns
// the transient state of the property dialog. The dialog itself never
// touches the graph: it only hands a confirmed Form back to the
// controller, which translates it into a store call. Graph integrity
// therefore never depends on dialog state.
package editor

import (
	"strings"

	"github.com/meikuraledutech/orgflow"
)

// State is the dialog's position in its lifecycle. Exactly one entity id
// is relevant per state, so illegal combinations (an edge form bound to a
// node) are unrepresentable.
type State int

const (
	Closed State = iota
	AddingNode
	EditingNode
	EditingEdge
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case AddingNode:
		return "adding-node"
	case EditingNode:
		return "editing-node"
	case EditingEdge:
		return "editing-edge"
	}
	return "unknown"
}

// Form carries the field values present in the dialog at confirm time.
// Label is used in the node states; the Edge* fields in EditingEdge.
type Form struct {
	Label        string           `json:"label"`
	EdgeLabel    string           `json:"edgeLabel"`
	EdgeType     orgflow.EdgeType `json:"edgeType"`
	EdgeAnimated bool             `json:"edgeAnimated"`
}

// addNodePosition is where a node created from the dialog lands; the
// original editor dropped new nodes at a fixed canvas offset.
var addNodePosition = orgflow.Position{X: 100, Y: 100}

// Controller drives one property dialog against one graph. It is the
// only component allowed to open or close the dialog. Not safe for
// concurrent use; an editing session is single-threaded.
type Controller struct {
	graph  *orgflow.Graph
	state  State
	nodeID string
	edgeID string
	form   Form
}

// NewController returns a controller with the dialog closed.
func NewController(g *orgflow.Graph) *Controller {
	return &Controller{graph: g}
}

// State returns the current dialog state.
func (c *Controller) State() State { return c.state }

// Subject returns the id of the entity the dialog is bound to, or "".
func (c *Controller) Subject() string {
	switch c.state {
	case EditingNode:
		return c.nodeID
	case EditingEdge:
		return c.edgeID
	}
	return ""
}

// Form returns the prefilled field values for the open dialog.
func (c *Controller) Form() Form { return c.form }

// OpenAddNode opens the dialog for creating a node with an empty label.
func (c *Controller) OpenAddNode() {
	c.reset()
	c.state = AddingNode
}

// OpenNode opens the dialog for editing a node's label, prefilled with
// its current value. Returns false without opening if the node is gone —
// a double-click can race a deletion.
func (c *Controller) OpenNode(id string) bool {
	n, ok := c.graph.Node(id)
	if !ok {
		return false
	}
	c.reset()
	c.state = EditingNode
	c.nodeID = id
	c.form.Label = n.Data.Label
	return true
}

// OpenEdge opens the dialog for editing an edge's label, type, and
// animation flag, prefilled with current values. Returns false without
// opening if the edge is gone.
func (c *Controller) OpenEdge(id string) bool {
	e, ok := c.graph.Edge(id)
	if !ok {
		return false
	}
	c.reset()
	c.state = EditingEdge
	c.edgeID = id
	c.form = Form{
		EdgeLabel:    e.Label,
		EdgeType:     orgflow.NormalizeEdgeType(e.Type),
		EdgeAnimated: e.IsAnimated(),
	}
	return true
}

// Cancel closes the dialog, discarding all pending field edits.
func (c *Controller) Cancel() {
	c.reset()
}

// Confirm commits the form according to the current state and closes the
// dialog. In the node states an empty or whitespace-only label rejects
// the confirm and the dialog stays open; edge labels may be cleared.
// Returns whether the confirm was accepted.
func (c *Controller) Confirm(form Form) bool {
	switch c.state {
	case AddingNode:
		label := strings.TrimSpace(form.Label)
		if label == "" {
			return false
		}
		c.graph.AddNode(orgflow.KindDefault, form.Label, addNodePosition)
	case EditingNode:
		if strings.TrimSpace(form.Label) == "" {
			return false
		}
		c.graph.UpdateNodeLabel(c.nodeID, form.Label)
	case EditingEdge:
		t := orgflow.NormalizeEdgeType(form.EdgeType)
		c.graph.UpdateEdge(c.edgeID, orgflow.EdgeUpdate{
			Label:    &form.EdgeLabel,
			Type:     &t,
			Animated: orgflow.Bool(form.EdgeAnimated),
		})
	default:
		return false
	}
	c.reset()
	return true
}

// Delete removes the entity the dialog is bound to and closes it.
// Only meaningful in the editing states; returns whether anything was
// deleted.
func (c *Controller) Delete() bool {
	switch c.state {
	case EditingNode:
		c.graph.DeleteNode(c.nodeID)
	case EditingEdge:
		c.graph.DeleteEdge(c.edgeID)
	default:
		return false
	}
	c.reset()
	return true
}

// Gestures below bypass the dialog entirely.

// Move repositions a node after a drag.
func (c *Controller) Move(id string, pos orgflow.Position) {
	c.graph.MoveNode(id, pos)
}

// Connect creates an edge after a handle-to-handle drag and returns the
// new edge id, or "" if either endpoint vanished mid-drag.
func (c *Controller) Connect(source, target string) string {
	return c.graph.Connect(source, target)
}

// DeleteSelection removes a multi-select of nodes and edges (Delete key).
func (c *Controller) DeleteSelection(nodeIDs, edgeIDs []string) {
	c.graph.DeleteMany(nodeIDs, edgeIDs)
}

func (c *Controller) reset() {
	c.state = Closed
	c.nodeID = ""
	c.edgeID = ""
	c.form = Form{EdgeType: orgflow.EdgeTypeDefault, EdgeAnimated: true}
}
