package orgflow

// DefaultDocument returns the sales-lead workflow used to seed a project
// until a generated document arrives, and as the fallback when a fetch
// fails. Callers get a fresh copy each time.
func DefaultDocument() Document {
	return Document{
		Nodes: []Node{
			{
				ID:       "1",
				Kind:     KindWebhook,
				Position: Position{X: 250, Y: 0},
				Data:     NodeData{Label: "New Lead Webhook", Kind: KindWebhook, Description: "Fires when a lead submits the contact form"},
			},
			{
				ID:       "2",
				Kind:     KindHubspot,
				Position: Position{X: 100, Y: 120},
				Data:     NodeData{Label: "Create CRM Contact", Kind: KindHubspot, Description: "Upserts the lead into HubSpot"},
			},
			{
				ID:       "3",
				Kind:     KindChatGPT,
				Position: Position{X: 400, Y: 120},
				Data:     NodeData{Label: "Qualify Lead", Kind: KindChatGPT, Description: "Scores the lead from the form answers"},
			},
			{
				ID:       "4",
				Kind:     KindGoogleSheets,
				Position: Position{X: 100, Y: 260},
				Data:     NodeData{Label: "Log to Sheet", Kind: KindGoogleSheets, Description: "Appends the lead to the tracking sheet"},
			},
			{
				ID:       "5",
				Kind:     KindSlack,
				Position: Position{X: 400, Y: 260},
				Data:     NodeData{Label: "Notify Sales Channel", Kind: KindSlack},
			},
			{
				ID:       "6",
				Kind:     KindGmail,
				Position: Position{X: 250, Y: 400},
				Data:     NodeData{Label: "Send Welcome Email", Kind: KindGmail},
			},
		},
		Edges: []Edge{
			{ID: "e1-2", Source: "1", Target: "2", Type: EdgeTypeDefault, Animated: Bool(true)},
			{ID: "e1-3", Source: "1", Target: "3", Type: EdgeTypeDefault, Label: "form payload", Animated: Bool(true)},
			{ID: "e2-4", Source: "2", Target: "4", Type: EdgeTypeSmoothStep, Animated: Bool(true)},
			{ID: "e3-5", Source: "3", Target: "5", Type: EdgeTypeStep, Label: "qualified", Animated: Bool(true)},
			{ID: "e5-6", Source: "5", Target: "6", Type: EdgeTypeDefault, Animated: Bool(true)},
		},
	}
}

// IntegrationsFrom summarizes the integrations a document uses: one entry
// per distinct non-default kind, named after the first node carrying it.
func IntegrationsFrom(doc Document) []Integration {
	seen := make(map[Kind]bool)
	items := []Integration{}
	for _, n := range doc.Nodes {
		kind := NormalizeKind(n.Kind)
		if kind == KindDefault || seen[kind] {
			continue
		}
		seen[kind] = true
		items = append(items, Integration{
			Name:        n.Data.Label,
			Type:        kind,
			Description: n.Data.Description,
		})
	}
	return items
}
