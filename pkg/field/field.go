// Package field computes the playing field — the working coordinate
// space all placement and collision math runs in — and the scale factor
// that maps a finished layout onto the actual viewport.
//
// Decoupling layout units from display pixels keeps the engine's output
// stable across viewport sizes: the same word list laid out for 800x600
// and 1600x1200 produces the same geometry, only the final scale differs.
package field

import (
	"math"

	"github.com/wordfield/wordfield/pkg/errors"
	"github.com/wordfield/wordfield/pkg/geom"
)

// BaseHeight is the fixed height of the playing field in layout units.
// The width is derived from it via the target aspect ratio.
const BaseHeight = 256.0

// Field is the working coordinate space, centered on the origin.
type Field struct {
	Width  float64
	Height float64
}

// Compute derives the playing field for a target viewport. The field
// keeps the viewport's aspect ratio at a fixed base height.
func Compute(targetWidth, targetHeight float64) (Field, error) {
	if targetWidth <= 0 || targetHeight <= 0 {
		return Field{}, errors.New(errors.ErrCodeInvalidViewport,
			"viewport must have positive dimensions, got %gx%g", targetWidth, targetHeight)
	}
	return Field{
		Width:  BaseHeight * (targetWidth / targetHeight),
		Height: BaseHeight,
	}, nil
}

// Bounds returns the field extents as a rect centered on the origin.
func (f Field) Bounds() geom.Rect {
	return geom.Rect{
		Left:   -f.Width / 2,
		Right:  f.Width / 2,
		Top:    -f.Height / 2,
		Bottom: f.Height / 2,
	}
}

// Contains reports whether r lies fully inside the field.
func (f Field) Contains(r geom.Rect) bool {
	return f.Bounds().ContainsRect(r)
}

// Scale returns the largest uniform scale that fits the occupied bounds
// of a finished layout into the target viewport without distortion.
//
// The occupied extents are taken symmetrically around the origin: the
// occupied width is twice the largest absolute x coordinate touched by
// any placed word, and likewise for the height.
func Scale(targetWidth, targetHeight float64, occupied geom.Rect) float64 {
	occW := 2 * math.Max(math.Abs(occupied.Left), math.Abs(occupied.Right))
	occH := 2 * math.Max(math.Abs(occupied.Top), math.Abs(occupied.Bottom))
	return math.Min(targetWidth/occW, targetHeight/occH)
}
