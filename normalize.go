package orgflow

// Normalize repairs a document in place so it is always renderable:
// duplicate node and edge ids are dropped (first occurrence wins), edges
// whose endpoints are missing are dropped, dangling parent references are
// cleared, and unknown kinds and edge types fall back to their defaults.
// Backend pipelines sometimes tag the kind only inside data.nodeType;
// both spellings are reconciled to the same value.
//
// Dropping is deliberate: an unrenderable graph is a worse outcome for
// the user than a partially corrected one.
func (d *Document) Normalize() {
	seen := make(map[string]bool, len(d.Nodes))
	nodes := d.Nodes[:0]
	for _, n := range d.Nodes {
		if n.ID == "" || seen[n.ID] {
			continue
		}
		seen[n.ID] = true
		if n.Kind == "" {
			n.Kind = n.Data.Kind
		}
		n.Kind = NormalizeKind(n.Kind)
		n.Data.Kind = n.Kind
		nodes = append(nodes, n)
	}
	d.Nodes = nodes

	// Parent references must point at a node in the same document.
	for i, n := range d.Nodes {
		if n.Parent != "" && !seen[n.Parent] {
			d.Nodes[i].Parent = ""
			d.Nodes[i].Extent = ""
		}
	}

	seenEdge := make(map[string]bool, len(d.Edges))
	edges := d.Edges[:0]
	for _, e := range d.Edges {
		if e.ID == "" || seenEdge[e.ID] {
			continue
		}
		if !seen[e.Source] || !seen[e.Target] {
			continue
		}
		seenEdge[e.ID] = true
		e.Type = NormalizeEdgeType(e.Type)
		edges = append(edges, e)
	}
	d.Edges = edges
}
