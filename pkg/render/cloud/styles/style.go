// Package styles provides visual styles for word-cloud rendering.
package styles

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"sort"
	"sync"
)

// Style defines the visual appearance for cloud rendering.
// Implementations control the background and how each word is drawn.
type Style interface {
	// Name returns the registry name of the style.
	Name() string
	// RenderBackground writes the SVG background for the viewport.
	RenderBackground(buf *bytes.Buffer, width, height float64)
	// RenderWord writes the SVG for a single positioned word.
	RenderWord(buf *bytes.Buffer, w Word)
}

// Word contains all data needed to render a single word.
type Word struct {
	Text     string  // Display text
	X, Y     float64 // Rect center in field coordinates
	Rotation float64 // Rotation in degrees, applied about the center
	FontSize float64 // Font size in field units
	Relative float64 // Weight relative to the heaviest word, in [0, 1]
	Family   string  // Font family name
}

var (
	stylesMu sync.RWMutex
	registry = map[string]Style{}
)

// DefaultName is the style used when none is requested.
const DefaultName = "simple"

// Register adds a style to the registry under its name.
// Registering the same name twice replaces the earlier style.
func Register(s Style) {
	stylesMu.Lock()
	defer stylesMu.Unlock()
	registry[s.Name()] = s
}

// Lookup returns the registered style with the given name.
func Lookup(name string) (Style, bool) {
	stylesMu.RLock()
	defer stylesMu.RUnlock()
	s, ok := registry[name]
	return s, ok
}

// Names returns the registered style names in sorted order.
func Names() []string {
	stylesMu.RLock()
	defer stylesMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EscapeXML escapes a string for embedding in SVG text content.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// renderText writes the shared word markup with the given fill color.
func renderText(buf *bytes.Buffer, w Word, fill string) {
	transform := fmt.Sprintf("translate(%.2f %.2f)", w.X, w.Y)
	if w.Rotation != 0 {
		transform += fmt.Sprintf(" rotate(%.1f)", w.Rotation)
	}
	fmt.Fprintf(buf,
		`  <text transform="%s" text-anchor="middle" dominant-baseline="central" font-family="%s" font-size="%.2f" fill="%s">%s</text>`+"\n",
		transform, EscapeXML(w.Family), w.FontSize, fill, EscapeXML(w.Text))
}
