package sink

import (
	"github.com/wordfield/wordfield/pkg/cloud"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	style string
	seed  uint64
}

// WithJSONStyle records the style name (e.g. "simple", "ink") in the
// JSON output for round-trip rendering.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

// WithJSONSeed records the layout seed in the JSON output, enabling
// reproducible re-layout of the same word list.
func WithJSONSeed(seed uint64) JSONOption { return func(r *jsonRenderer) { r.seed = seed } }

// RenderJSON exports the layout as a pretty-printed JSON document.
// This is the primary data interchange format, enabling:
//
//   - Caching computed layouts for fast re-rendering
//   - Round-trip rendering (re-import and render identically)
//   - Integration with external visualization tools
//
// Options are recorded into the document so a later `render` run can
// reproduce the exact visual without recomputing the layout.
func RenderJSON(l cloud.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{style: l.Style, seed: l.Seed}
	for _, opt := range opts {
		opt(&r)
	}
	l.Style = r.style
	l.Seed = r.seed
	return cloud.MarshalLayout(l)
}
