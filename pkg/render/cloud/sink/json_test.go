package sink

import (
	"testing"

	"github.com/wordfield/wordfield/pkg/cloud"
)

func TestRenderJSONRoundTrip(t *testing.T) {
	l := testLayout()

	data, err := RenderJSON(l, WithJSONStyle("ink"), WithJSONSeed(42))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	back, err := cloud.UnmarshalLayout(data)
	if err != nil {
		t.Fatalf("UnmarshalLayout() error: %v", err)
	}

	if back.Style != "ink" {
		t.Errorf("Style = %q, want %q", back.Style, "ink")
	}
	if back.Seed != 42 {
		t.Errorf("Seed = %d, want 42", back.Seed)
	}
	if len(back.Words) != len(l.Words) {
		t.Fatalf("Words = %d, want %d", len(back.Words), len(l.Words))
	}
	if back.Words[0].Text != "alpha" || back.Words[0].FontSize != 60 {
		t.Errorf("first word mismatch: %+v", back.Words[0])
	}
	if back.Scale != l.Scale {
		t.Errorf("Scale = %g, want %g", back.Scale, l.Scale)
	}
}

func TestRenderJSONKeepsLayoutOptions(t *testing.T) {
	l := testLayout()
	l.Style = "simple"
	l.Seed = 7

	data, err := RenderJSON(l)
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	back, err := cloud.UnmarshalLayout(data)
	if err != nil {
		t.Fatalf("UnmarshalLayout() error: %v", err)
	}
	if back.Style != "simple" || back.Seed != 7 {
		t.Errorf("options should survive without explicit overrides: %+v", back)
	}
}
