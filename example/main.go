package main

import (
	"encoding/json"
	"fmt"

	"github.com/meikuraledutech/orgflow"
	"github.com/meikuraledutech/orgflow/editor"
	"github.com/meikuraledutech/orgflow/style"
)

func main() {
	// Start an editing session from the seed workflow.
	doc := orgflow.DefaultDocument()
	g := orgflow.NewGraph(doc)
	g.Subscribe(func(d orgflow.Document) {
		fmt.Printf("-- document changed: %d nodes, %d edges\n", len(d.Nodes), len(d.Edges))
	})

	ed := editor.NewController(g)

	// ── Add a node through the dialog ─────────────────────────────────
	ed.OpenAddNode()
	if ok := ed.Confirm(editor.Form{Label: "   "}); !ok {
		fmt.Println("blank label rejected, dialog stays open")
	}
	ed.Confirm(editor.Form{Label: "Review Contract"})

	// ── Connect it to the welcome email step ──────────────────────────
	snapshot := g.Document()
	newNode := snapshot.Nodes[len(snapshot.Nodes)-1]
	edgeID := ed.Connect("6", newNode.ID)
	fmt.Printf("connected 6 -> %s as %s\n", newNode.ID, edgeID)

	// ── Restyle the new edge ──────────────────────────────────────────
	ed.OpenEdge(edgeID)
	ed.Confirm(editor.Form{EdgeLabel: "signed", EdgeType: orgflow.EdgeTypeStep, EdgeAnimated: true})

	// ── Drag a node, then delete one with its edges ───────────────────
	ed.Move("3", orgflow.Position{X: 420, Y: 140})
	ed.OpenNode("2")
	ed.Delete()

	// ── Resolve visuals for the renderer ──────────────────────────────
	final := g.Document()
	for _, n := range final.Nodes {
		s := style.IconCard.Node(n)
		fmt.Printf("node %-8s accent=%s icon=%s\n", n.ID, s.Accent, s.Icon)
	}
	for _, e := range final.Edges {
		fmt.Printf("edge %-20s stroke=%s animated=%v\n", e.ID, style.Edge(e).Stroke, e.IsAnimated())
	}

	printJSON(final)
}

func printJSON(v any) {
	out, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(out))
}
