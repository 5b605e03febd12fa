package styles

import (
	"bytes"
	"fmt"
)

// Ink is a monochrome style: transparent background, near-black text
// with opacity ramped by weight. Suited for print and for embedding in
// pages that bring their own background.
type Ink struct{}

// Name returns the registry name.
func (Ink) Name() string { return "ink" }

// RenderBackground writes nothing, leaving the background transparent.
func (Ink) RenderBackground(buf *bytes.Buffer, width, height float64) {}

// RenderWord writes the word in ink with weight-ramped opacity.
func (Ink) RenderWord(buf *bytes.Buffer, w Word) {
	// Lightest words stay readable at 40% opacity.
	opacity := 0.4 + 0.6*clamp01(w.Relative)
	fill := fmt.Sprintf("rgba(17,17,17,%.2f)", opacity)
	renderText(buf, w, fill)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
