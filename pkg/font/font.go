// Package font provides the default text measurer for the layout
// engine, built on the Go Regular face that ships with golang.org/x/image.
//
// Measuring with a real face keeps the layout honest: SVG output
// rendered with the same family ends up close to the boxes the engine
// reserved. Hosts with different rendering stacks can supply their own
// measurer instead.
package font

import (
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/wordfield/wordfield/pkg/geom"
)

// Family is the CSS font-family name matching the embedded face.
const Family = "Go"

// FallbackFamily provides fallbacks for viewers without the Go font.
const FallbackFamily = `'Go', 'Helvetica Neue', Helvetica, Arial, sans-serif`

// Measurer measures text extents with the embedded Go Regular face.
// Faces are cached per size. Safe for concurrent use.
type Measurer struct {
	mu    sync.Mutex
	fnt   *sfnt.Font
	faces map[float64]font.Face
}

// NewMeasurer parses the embedded face. The parse happens once per
// Measurer; construction is cheap enough to do per layout run.
func NewMeasurer() (*Measurer, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return &Measurer{fnt: f, faces: make(map[float64]font.Face)}, nil
}

// Measure returns the axis-aligned bounding box of text rendered at
// fontSize and rotated by rotation degrees, centered on the origin.
// The family argument is accepted for interface compatibility; this
// measurer always uses the embedded face.
func (m *Measurer) Measure(text string, fontSize float64, family string, rotation float64) geom.Rect {
	if fontSize < 1 {
		fontSize = 1
	}

	w, h := m.extents(text, fontSize)

	// Axis-aligned bounds of the rotated box.
	rad := rotation * math.Pi / 180
	cos, sin := math.Abs(math.Cos(rad)), math.Abs(math.Sin(rad))
	return geom.FromCenter(0, 0, w*cos+h*sin, w*sin+h*cos)
}

func (m *Measurer) extents(text string, fontSize float64) (w, h float64) {
	face := m.face(fontSize)
	if face == nil {
		// Face construction failed; fall back to a crude estimate so a
		// broken face degrades layouts instead of dropping words.
		return 0.6 * fontSize * float64(len([]rune(text))), fontSize
	}

	adv := font.MeasureString(face, text)
	metrics := face.Metrics()
	w = float64(adv) / 64
	h = float64(metrics.Ascent+metrics.Descent) / 64
	return w, h
}

func (m *Measurer) face(size float64) font.Face {
	m.mu.Lock()
	defer m.mu.Unlock()

	if f, ok := m.faces[size]; ok {
		return f
	}
	f, err := opentype.NewFace(m.fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		f = nil
	}
	m.faces[size] = f
	return f
}
