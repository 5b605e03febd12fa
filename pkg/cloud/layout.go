// Package cloud defines the serialized word-cloud layout document.
//
// A Layout is the stable interchange format between the layout stage and
// the render sinks: the `layout` command writes it, `render` and the
// HTTP serving mode read it. Geometry is kept in field units together
// with the group scale, so any sink can reproduce the exact viewport
// mapping.
package cloud

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/wordfield/wordfield/pkg/engine"
)

// Word is one positioned word in a serialized layout.
// X and Y are the rect center in field coordinates.
type Word struct {
	Text     string  `json:"text"`
	Weight   float64 `json:"weight"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation,omitempty"`
	FontSize float64 `json:"font_size"`
}

// Layout is the unified serialization format for computed clouds.
type Layout struct {
	// Target viewport dimensions in display units.
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// Field dimensions in layout units.
	FieldWidth  float64 `json:"field_width"`
	FieldHeight float64 `json:"field_height"`

	// Scale is the uniform group transform from field units onto the
	// viewport.
	Scale float64 `json:"scale"`

	// Render options carried for the sinks.
	Style      string `json:"style,omitempty"`
	FontFamily string `json:"font_family,omitempty"`
	Seed       uint64 `json:"seed,omitempty"`

	Words     []Word   `json:"words"`
	Discarded []string `json:"discarded,omitempty"`
}

// FromResult converts an engine result into the serialized format.
func FromResult(res *engine.Result, targetWidth, targetHeight float64) Layout {
	l := Layout{
		Width:       targetWidth,
		Height:      targetHeight,
		FieldWidth:  res.Field.Width,
		FieldHeight: res.Field.Height,
		Scale:       res.Scale,
		Words:       make([]Word, 0, len(res.Placed)),
	}
	for _, pw := range res.Placed {
		l.Words = append(l.Words, Word{
			Text:     pw.Text,
			Weight:   pw.Weight,
			X:        pw.Rect.CenterX(),
			Y:        pw.Rect.CenterY(),
			Width:    pw.Rect.Width(),
			Height:   pw.Rect.Height(),
			Rotation: pw.Rotation,
			FontSize: pw.FontSize,
		})
	}
	for _, w := range res.Discarded {
		l.Discarded = append(l.Discarded, w.Text)
	}
	return l
}

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout.
// Validates that the document carries usable dimensions.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}

	if l.Width <= 0 || l.Height <= 0 {
		return Layout{}, fmt.Errorf("layout must carry positive viewport dimensions")
	}
	if len(l.Words) > 0 && l.Scale <= 0 {
		return Layout{}, fmt.Errorf("layout with words must carry a positive scale")
	}

	return l, nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}
