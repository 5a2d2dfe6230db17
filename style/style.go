// Package style maps document kinds and edge types onto visual
// attributes. Everything here is a pure lookup over static tables; the
// document is never mutated. The two historical node presentations —
// icon cards and labeled cards — are profiles over one accent table, not
// separate implementations.
package style

import "github.com/meikuraledutech/orgflow"

// NodeStyle is the resolved visual for one node.
type NodeStyle struct {
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Border     string `json:"border"`
	Radius     int    `json:"radius"`
	Icon       string `json:"icon,omitempty"`
	ShowIcon   bool   `json:"showIcon"`
}

// EdgeStyle is the resolved visual for one edge.
type EdgeStyle struct {
	Stroke   string `json:"stroke"`
	Width    int    `json:"width"`
	Animated bool   `json:"animated"`
}

// accents colors each kind; kinds missing here use the default accent.
var accents = map[orgflow.Kind]string{
	orgflow.KindGoogleSheets:   "#0F9D58",
	orgflow.KindGoogleCalendar: "#4285F4",
	orgflow.KindChatGPT:        "#00A67E",
	orgflow.KindClaude:         "#CC785C",
	orgflow.KindWebhook:        "#00A67E",
	orgflow.KindNotion:         "#CC785C",
	orgflow.KindHubspot:        "#6366f1",
	orgflow.KindSlack:          "#00A67E",
	orgflow.KindStripe:         "#6366f1",
	orgflow.KindGmail:          "#CC785C",
	orgflow.KindTools:          "#00A67E",
	orgflow.KindDefault:        "#6366f1",
}

// icons names the asset rendered for each kind in the icon profile.
var icons = map[orgflow.Kind]string{
	orgflow.KindWebhook:        "webhook.svg",
	orgflow.KindNotion:         "notion-icon.svg",
	orgflow.KindHubspot:        "hubspot-icon.svg",
	orgflow.KindGoogleSheets:   "google-sheets-icon.svg",
	orgflow.KindGoogleCalendar: "google-calendar-icon.svg",
	orgflow.KindChatGPT:        "chatgpt-icon.svg",
	orgflow.KindClaude:         "claude-ai-icon.svg",
	orgflow.KindSlack:          "slack-icon.svg",
	orgflow.KindStripe:         "stripe-icon.svg",
	orgflow.KindGmail:          "gmail-icon.svg",
	orgflow.KindTools:          "tools-icon.svg",
	orgflow.KindDefault:        "tools-icon.svg",
}

// strokes colors each edge curve type.
var strokes = map[orgflow.EdgeType]string{
	orgflow.EdgeTypeDefault:    "#6366f1",
	orgflow.EdgeTypeStraight:   "#f59e0b",
	orgflow.EdgeTypeStep:       "#10b981",
	orgflow.EdgeTypeSmoothStep: "#8b5cf6",
}

// Profile is one node presentation over the shared accent table.
type Profile struct {
	Name       string
	Background string
	Border     string
	Radius     int
	ShowIcon   bool
}

// IconCard is the presentation with integration icons on gradient cards.
var IconCard = Profile{
	Name:       "icon-card",
	Background: "linear-gradient(135deg, #1f2937 0%, #111827 100%)",
	Border:     "#374151",
	Radius:     12,
	ShowIcon:   true,
}

// LabeledCard is the flat, label-only presentation.
var LabeledCard = Profile{
	Name:       "labeled-card",
	Background: "#121212",
	Border:     "#6366f1",
	Radius:     8,
	ShowIcon:   false,
}

// Node resolves the visual attributes for a node under this profile.
// Unknown kinds resolve exactly like KindDefault.
func (p Profile) Node(n orgflow.Node) NodeStyle {
	kind := orgflow.NormalizeKind(n.Kind)
	s := NodeStyle{
		Accent:     accents[kind],
		Background: p.Background,
		Border:     p.Border,
		Radius:     p.Radius,
		ShowIcon:   p.ShowIcon,
	}
	if p.ShowIcon {
		s.Icon = icons[kind]
	}
	return s
}

// Edge resolves the visual attributes for an edge. Unknown types resolve
// like the default bezier type.
func Edge(e orgflow.Edge) EdgeStyle {
	return EdgeStyle{
		Stroke:   strokes[orgflow.NormalizeEdgeType(e.Type)],
		Width:    2,
		Animated: e.IsAnimated(),
	}
}
