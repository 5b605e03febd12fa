package styles

import (
	"bytes"
	"fmt"
)

// simplePalette ramps from muted to saturated as relative weight grows.
var simplePalette = []string{
	"#94a3b8", // lightest, low-weight words
	"#64748b",
	"#0ea5e9",
	"#2563eb",
	"#7c3aed",
	"#db2777", // heaviest words
}

// Simple is the default style: white background, weight-ramped palette.
type Simple struct{}

// Name returns the registry name.
func (Simple) Name() string { return "simple" }

// RenderBackground writes a plain white background.
func (Simple) RenderBackground(buf *bytes.Buffer, width, height float64) {
	writeBackground(buf, width, height, "#ffffff")
}

// RenderWord writes the word colored by its relative weight.
func (Simple) RenderWord(buf *bytes.Buffer, w Word) {
	renderText(buf, w, colorFor(w.Relative))
}

// colorFor maps a relative weight in [0, 1] onto the palette.
func colorFor(relative float64) string {
	idx := int(clamp01(relative) * float64(len(simplePalette)))
	if idx >= len(simplePalette) {
		idx = len(simplePalette) - 1
	}
	return simplePalette[idx]
}

func writeBackground(buf *bytes.Buffer, width, height float64, fill string) {
	fmt.Fprintf(buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		width, height, fill)
}

func init() {
	Register(Simple{})
	Register(Ink{})
}
