package orgflow

// Kind tags a node with the integration it represents. The set is closed;
// anything outside it renders with the default styling.
type Kind string

const (
	KindWebhook        Kind = "webhook"
	KindNotion         Kind = "notion"
	KindHubspot        Kind = "hubspot"
	KindGoogleSheets   Kind = "googleSheets"
	KindGoogleCalendar Kind = "googleCalendar"
	KindChatGPT        Kind = "chatgpt"
	KindClaude         Kind = "claude"
	KindSlack          Kind = "slack"
	KindStripe         Kind = "stripe"
	KindGmail          Kind = "gmail"
	KindTools          Kind = "tools"
	KindDefault        Kind = "default"
)

// Kinds lists every valid kind, default last.
var Kinds = []Kind{
	KindWebhook, KindNotion, KindHubspot, KindGoogleSheets,
	KindGoogleCalendar, KindChatGPT, KindClaude, KindSlack,
	KindStripe, KindGmail, KindTools, KindDefault,
}

// IsValid reports whether k is one of the known kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindWebhook, KindNotion, KindHubspot, KindGoogleSheets,
		KindGoogleCalendar, KindChatGPT, KindClaude, KindSlack,
		KindStripe, KindGmail, KindTools, KindDefault:
		return true
	}
	return false
}

func (k Kind) String() string { return string(k) }

// NormalizeKind maps unknown or empty kinds to KindDefault.
func NormalizeKind(k Kind) Kind {
	if k.IsValid() {
		return k
	}
	return KindDefault
}

// EdgeType selects the curve an edge is drawn with. It is a rendering
// style, not a semantic type.
type EdgeType string

const (
	EdgeTypeDefault    EdgeType = "default" // bezier
	EdgeTypeStraight   EdgeType = "straight"
	EdgeTypeStep       EdgeType = "step"
	EdgeTypeSmoothStep EdgeType = "smoothstep"
)

// EdgeTypes lists every valid edge type.
var EdgeTypes = []EdgeType{EdgeTypeDefault, EdgeTypeStraight, EdgeTypeStep, EdgeTypeSmoothStep}

// IsValid reports whether t is one of the known edge types.
func (t EdgeType) IsValid() bool {
	switch t {
	case EdgeTypeDefault, EdgeTypeStraight, EdgeTypeStep, EdgeTypeSmoothStep:
		return true
	}
	return false
}

func (t EdgeType) String() string { return string(t) }

// NormalizeEdgeType maps unknown or empty types to EdgeTypeDefault.
func NormalizeEdgeType(t EdgeType) EdgeType {
	if t.IsValid() {
		return t
	}
	return EdgeTypeDefault
}
