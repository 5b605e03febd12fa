package sink

import (
	"bytes"
	"fmt"

	"github.com/wordfield/wordfield/pkg/cloud"
	"github.com/wordfield/wordfield/pkg/font"
	"github.com/wordfield/wordfield/pkg/render/cloud/styles"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style  styles.Style
	family string
}

// WithStyle sets the visual style. Defaults to [styles.Simple].
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithFontFamily overrides the font family recorded in the layout.
func WithFontFamily(f string) SVGOption { return func(r *svgRenderer) { r.family = f } }

// RenderSVG renders the layout as an SVG document.
//
// Words are positioned in field coordinates inside a single group that
// translates the origin to the viewport center and applies the uniform
// layout scale. This reproduces the exact geometry the layout stage
// computed, regardless of viewport size.
func RenderSVG(l cloud.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(l, opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.Width, l.Height, l.Width, l.Height)

	r.style.RenderBackground(&buf, l.Width, l.Height)

	fmt.Fprintf(&buf, `  <g transform="translate(%.1f %.1f) scale(%.4f)">`+"\n",
		l.Width/2, l.Height/2, l.Scale)

	maxWeight := maxLayoutWeight(l)
	for _, w := range l.Words {
		r.style.RenderWord(&buf, styles.Word{
			Text:     w.Text,
			X:        w.X,
			Y:        w.Y,
			Rotation: w.Rotation,
			FontSize: w.FontSize,
			Relative: relativeWeight(w.Weight, maxWeight),
			Family:   r.family,
		})
	}

	buf.WriteString("  </g>\n</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(l cloud.Layout, opts ...SVGOption) svgRenderer {
	r := svgRenderer{family: l.FontFamily}
	if s, ok := styles.Lookup(l.Style); ok {
		r.style = s
	}
	for _, opt := range opts {
		opt(&r)
	}
	if r.style == nil {
		r.style = styles.Simple{}
	}
	if r.family == "" {
		r.family = font.FallbackFamily
	}
	return r
}

func maxLayoutWeight(l cloud.Layout) float64 {
	var maxWeight float64
	for _, w := range l.Words {
		if w.Weight > maxWeight {
			maxWeight = w.Weight
		}
	}
	return maxWeight
}

func relativeWeight(weight, maxWeight float64) float64 {
	if maxWeight <= 0 {
		return 0
	}
	return weight / maxWeight
}
