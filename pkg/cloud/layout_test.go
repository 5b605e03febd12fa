package cloud

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/wordfield/wordfield/pkg/engine"
	"github.com/wordfield/wordfield/pkg/geom"
)

func sampleLayout() Layout {
	return Layout{
		Width:       800,
		Height:      600,
		FieldWidth:  341.33,
		FieldHeight: 256,
		Scale:       3.2,
		Style:       "simple",
		Words: []Word{
			{Text: "go", Weight: 10, X: 0, Y: 0, Width: 48, Height: 20, FontSize: 40},
			{Text: "cloud", Weight: 4, X: 30, Y: -12, Width: 36, Height: 12, Rotation: 90, FontSize: 16},
		},
		Discarded: []string{"gargantuan"},
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	in := sampleLayout()

	data, err := MarshalLayout(in)
	if err != nil {
		t.Fatalf("MarshalLayout() error: %v", err)
	}
	out, err := UnmarshalLayout(data)
	if err != nil {
		t.Fatalf("UnmarshalLayout() error: %v", err)
	}

	if len(out.Words) != 2 || out.Words[0].Text != "go" || out.Words[1].Rotation != 90 {
		t.Errorf("words did not survive round trip: %+v", out.Words)
	}
	if out.Scale != in.Scale || out.Width != in.Width {
		t.Errorf("dimensions changed: %+v", out)
	}
	if len(out.Discarded) != 1 || out.Discarded[0] != "gargantuan" {
		t.Errorf("discarded list changed: %v", out.Discarded)
	}
}

func TestUnmarshalLayoutValidation(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"malformed", `{"width": `},
		{"zero viewport", `{"width": 0, "height": 600, "words": []}`},
		{"words without scale", `{"width": 800, "height": 600, "scale": 0, "words": [{"text": "x"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := UnmarshalLayout([]byte(tt.json)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLayoutFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	in := sampleLayout()

	if err := WriteLayoutFile(in, path); err != nil {
		t.Fatalf("WriteLayoutFile() error: %v", err)
	}
	out, err := ReadLayoutFile(path)
	if err != nil {
		t.Fatalf("ReadLayoutFile() error: %v", err)
	}
	if len(out.Words) != len(in.Words) {
		t.Errorf("got %d words, want %d", len(out.Words), len(in.Words))
	}
}

func TestFromResult(t *testing.T) {
	measure := engine.MeasurerFunc(func(text string, size float64, family string, rot float64) geom.Rect {
		return geom.FromCenter(0, 0, 40, 16)
	})
	eng := engine.New(measure, engine.WithSeed(1))
	res, err := eng.Layout(context.Background(), []engine.Word{{Text: "solo", Weight: 2}}, 800, 600)
	if err != nil {
		t.Fatal(err)
	}

	l := FromResult(res, 800, 600)
	if l.Width != 800 || l.Height != 600 {
		t.Errorf("viewport = %gx%g", l.Width, l.Height)
	}
	if l.FieldHeight != 256 {
		t.Errorf("FieldHeight = %v, want 256", l.FieldHeight)
	}
	if len(l.Words) != 1 {
		t.Fatalf("got %d words, want 1", len(l.Words))
	}
	w := l.Words[0]
	if w.Width != 40 || w.Height != 16 {
		t.Errorf("word extents = %gx%g, want 40x16", w.Width, w.Height)
	}
	if l.Scale != res.Scale {
		t.Errorf("Scale = %v, want %v", l.Scale, res.Scale)
	}
}
