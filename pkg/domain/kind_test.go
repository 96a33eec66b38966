package domain

import "testing"

func TestKindTokens(t *testing.T) {
	tests := []struct {
		kind   Kind
		token  string
		plural string
		line   bool
	}{
		{KindNode, "node", "nodes", false},
		{KindBeam, "beam", "beams", true},
		{KindTruss, "trus", "trusses", true},
		{KindCable, "cabl", "cables", true},
		{KindSpring, "spri", "springs", false},
		{KindQuad, "quad", "quads", false},
	}

	for _, tt := range tests {
		if got := tt.kind.Token(); got != tt.token {
			t.Errorf("%v.Token() = %q, want %q", tt.kind, got, tt.token)
		}
		if got := tt.kind.Plural(); got != tt.plural {
			t.Errorf("%v.Plural() = %q, want %q", tt.kind, got, tt.plural)
		}
		if got := tt.kind.IsLineElement(); got != tt.line {
			t.Errorf("%v.IsLineElement() = %v, want %v", tt.kind, got, tt.line)
		}
		back, ok := KindFromPlural(tt.plural)
		if !ok || back != tt.kind {
			t.Errorf("KindFromPlural(%q) = %v, %v", tt.plural, back, ok)
		}
	}
}

func TestKindFromPluralUnknown(t *testing.T) {
	if _, ok := KindFromPlural("walls"); ok {
		t.Error("expected unknown plural to miss")
	}
}
