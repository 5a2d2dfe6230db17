package orgflow

import "testing"

func TestKind_IsValid(t *testing.T) {
	for _, tc := range []struct {
		kind Kind
		want bool
	}{
		{KindWebhook, true},
		{KindGoogleSheets, true},
		{KindClaude, true},
		{KindDefault, true},
		{Kind(""), false},
		{Kind("bogus"), false},
		{Kind("Webhook"), false},
	} {
		if got := tc.kind.IsValid(); got != tc.want {
			t.Errorf("Kind(%q).IsValid() = %v, want %v", tc.kind, got, tc.want)
		}
	}
}

func TestNormalizeKind(t *testing.T) {
	for _, tc := range []struct {
		kind Kind
		want Kind
	}{
		{KindSlack, KindSlack},
		{KindDefault, KindDefault},
		{Kind(""), KindDefault},
		{Kind("mystery"), KindDefault},
	} {
		if got := NormalizeKind(tc.kind); got != tc.want {
			t.Errorf("NormalizeKind(%q) = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestEdgeType_IsValid(t *testing.T) {
	for _, tc := range []struct {
		typ  EdgeType
		want bool
	}{
		{EdgeTypeDefault, true},
		{EdgeTypeStraight, true},
		{EdgeTypeStep, true},
		{EdgeTypeSmoothStep, true},
		{EdgeType(""), false},
		{EdgeType("bezier"), false},
	} {
		if got := tc.typ.IsValid(); got != tc.want {
			t.Errorf("EdgeType(%q).IsValid() = %v, want %v", tc.typ, got, tc.want)
		}
	}
}

func TestNormalizeEdgeType(t *testing.T) {
	for _, tc := range []struct {
		typ  EdgeType
		want EdgeType
	}{
		{EdgeTypeStep, EdgeTypeStep},
		{EdgeType(""), EdgeTypeDefault},
		{EdgeType("zigzag"), EdgeTypeDefault},
	} {
		if got := NormalizeEdgeType(tc.typ); got != tc.want {
			t.Errorf("NormalizeEdgeType(%q) = %q, want %q", tc.typ, got, tc.want)
		}
	}
}

func TestVariant_IsValid(t *testing.T) {
	for _, tc := range []struct {
		v    Variant
		want bool
	}{
		{VariantCurrent, true},
		{VariantImproved, true},
		{Variant(""), false},
		{Variant("draft"), false},
	} {
		if got := tc.v.IsValid(); got != tc.want {
			t.Errorf("Variant(%q).IsValid() = %v, want %v", tc.v, got, tc.want)
		}
	}
}
