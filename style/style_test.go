package style

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meikuraledutech/orgflow"
)

func TestProfile_NodeAccents(t *testing.T) {
	for _, tc := range []struct {
		kind orgflow.Kind
		want string
	}{
		{orgflow.KindGoogleSheets, "#0F9D58"},
		{orgflow.KindGoogleCalendar, "#4285F4"},
		{orgflow.KindClaude, "#CC785C"},
		{orgflow.KindDefault, "#6366f1"},
	} {
		got := IconCard.Node(orgflow.Node{Kind: tc.kind})
		if got.Accent != tc.want {
			t.Errorf("IconCard.Node(%q).Accent = %q, want %q", tc.kind, got.Accent, tc.want)
		}
	}
}

func TestProfile_UnknownKindFallsBack(t *testing.T) {
	unknown := IconCard.Node(orgflow.Node{Kind: orgflow.Kind("martian")})
	def := IconCard.Node(orgflow.Node{Kind: orgflow.KindDefault})
	assert.Equal(t, def, unknown, "unknown kind renders exactly like default")
	assert.Equal(t, "tools-icon.svg", unknown.Icon)
}

func TestProfiles_SharedAccentTable(t *testing.T) {
	n := orgflow.Node{Kind: orgflow.KindSlack}
	icon := IconCard.Node(n)
	labeled := LabeledCard.Node(n)

	assert.Equal(t, icon.Accent, labeled.Accent, "both presentations color from one table")
	assert.True(t, icon.ShowIcon)
	assert.NotEmpty(t, icon.Icon)
	assert.False(t, labeled.ShowIcon)
	assert.Empty(t, labeled.Icon)
	assert.NotEqual(t, icon.Background, labeled.Background)
}

func TestEdge_StrokeByType(t *testing.T) {
	for _, tc := range []struct {
		typ  orgflow.EdgeType
		want string
	}{
		{orgflow.EdgeTypeDefault, "#6366f1"},
		{orgflow.EdgeTypeStraight, "#f59e0b"},
		{orgflow.EdgeTypeStep, "#10b981"},
		{orgflow.EdgeTypeSmoothStep, "#8b5cf6"},
		{orgflow.EdgeType("mystery"), "#6366f1"},
	} {
		got := Edge(orgflow.Edge{Type: tc.typ})
		if got.Stroke != tc.want {
			t.Errorf("Edge(%q).Stroke = %q, want %q", tc.typ, got.Stroke, tc.want)
		}
		if got.Width != 2 {
			t.Errorf("Edge(%q).Width = %d, want 2", tc.typ, got.Width)
		}
	}
}

func TestEdge_AnimatedPassthrough(t *testing.T) {
	assert.True(t, Edge(orgflow.Edge{}).Animated)
	assert.False(t, Edge(orgflow.Edge{Animated: orgflow.Bool(false)}).Animated)
}
