// Package geom provides the axis-aligned rectangle math used by the
// word-cloud layout engine. All coordinates are in field units with the
// y axis growing downward, matching SVG user space.
package geom

// Rect is an axis-aligned bounding box. Right and Bottom are derived
// edges: Right = Left + width, Bottom = Top + height.
type Rect struct {
	Left, Right float64
	Top, Bottom float64
}

// FromCenter builds a rect of the given size centered on (cx, cy).
func FromCenter(cx, cy, width, height float64) Rect {
	return Rect{
		Left:   cx - width/2,
		Right:  cx + width/2,
		Top:    cy - height/2,
		Bottom: cy + height/2,
	}
}

// Width returns the horizontal span of the rect.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical span of the rect.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// CenterX returns the horizontal center point of the rect.
func (r Rect) CenterX() float64 { return (r.Left + r.Right) / 2 }

// CenterY returns the vertical center point of the rect.
func (r Rect) CenterY() float64 { return (r.Top + r.Bottom) / 2 }

// Translate returns a copy of the rect shifted by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Right:  r.Right + dx,
		Top:    r.Top + dy,
		Bottom: r.Bottom + dy,
	}
}

// Intersects reports whether the two rects overlap. Rects that merely
// touch along an edge still count as intersecting. The test is symmetric
// under swapping the receiver and argument.
func (r Rect) Intersects(o Rect) bool {
	return !(o.Left > r.Right || o.Right < r.Left || o.Top > r.Bottom || o.Bottom < r.Top)
}

// ContainsRect reports whether o lies fully inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.Left >= r.Left && o.Right <= r.Right && o.Top >= r.Top && o.Bottom <= r.Bottom
}
