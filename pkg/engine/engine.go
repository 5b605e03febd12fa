// Package engine implements the word-cloud placement algorithm.
//
// # Overview
//
// The engine consumes a weighted word list and a target viewport and
// produces non-overlapping positions and rotations for as many words as
// fit: words are processed in descending weight order, each word gets one
// starting candidate from a placement strategy, and collisions are
// resolved by walking the candidate outward along a spiral until it is
// free and inside the playing field, or the spiral bound is exceeded and
// the word is discarded.
//
// All geometry runs in field units (see [field.Compute]); the result
// carries a single uniform scale factor that maps the finished layout
// onto the target viewport.
//
// The engine is deliberately free of rendering concerns: text extents
// come from an injected [Measurer], and hosts that need to release
// visual resources for dropped words register a discard callback.
//
//	eng := engine.New(measurer,
//	    engine.WithRotation(placement.Rotation{From: -90, To: 90, Orientations: 2}),
//	    engine.WithSeed(42))
//	res, err := eng.Layout(ctx, words, 800, 600)
package engine

import (
	"cmp"
	"context"
	"math"
	"slices"
	"time"

	"github.com/wordfield/wordfield/pkg/field"
	"github.com/wordfield/wordfield/pkg/geom"
	"github.com/wordfield/wordfield/pkg/observability"
	"github.com/wordfield/wordfield/pkg/placement"
	"github.com/wordfield/wordfield/pkg/spiral"
)

// Word is one weighted input label. Weights must be non-negative; this
// is a caller contract, not validated here. A zero weight yields the
// minimum rendered size.
type Word struct {
	Text   string  `json:"text"`
	Weight float64 `json:"weight"`
}

// PlacedWord is a word the engine found a spot for.
type PlacedWord struct {
	Word

	// Rect is the occupied bounding box in field coordinates.
	Rect geom.Rect

	// Rotation is the final rotation in degrees.
	Rotation float64

	// RelativeWeight is the weight normalized against the batch maximum,
	// in [0, 1]. The heaviest word of a batch is always 1.
	RelativeWeight float64

	// FontSize is the derived size metric handed to the measurer.
	FontSize float64

	// lastCollidedWith caches the placed word this one most recently
	// intersected during collision resolution. Consecutive spiral
	// attempts tend to hit the same neighbor, so checking the cached
	// rect first skips most full scans. Cleared the moment the cached
	// pair no longer intersects.
	lastCollidedWith *PlacedWord
}

// Result is the outcome of one layout run.
type Result struct {
	// Field is the working coordinate space the rects live in.
	Field field.Field

	// Placed holds the successfully placed words, in placement order
	// (descending weight).
	Placed []*PlacedWord

	// Discarded holds the words that could not be placed within the
	// spiral bound, in processing order.
	Discarded []Word

	// Scale is the uniform group scale that fits the occupied bounds
	// into the target viewport. Zero when nothing was placed.
	Scale float64
}

// Measurer returns the axis-aligned bounding box a word occupies when
// rendered at the given size, family and rotation, centered on the
// origin. The engine treats the result as opaque geometry.
type Measurer interface {
	Measure(text string, fontSize float64, family string, rotation float64) geom.Rect
}

// MeasurerFunc adapts a function to the Measurer interface.
type MeasurerFunc func(text string, fontSize float64, family string, rotation float64) geom.Rect

func (f MeasurerFunc) Measure(text string, fontSize float64, family string, rotation float64) geom.Rect {
	return f(text, fontSize, family, rotation)
}

// DefaultMaxFontSize is the font size given to the heaviest word when
// no cap is configured.
const DefaultMaxFontSize = 60.0

// Engine lays out word clouds. Construct with New; the zero value is
// not usable.
type Engine struct {
	measurer    Measurer
	spiral      spiral.Func
	strategy    placement.Strategy
	rotation    placement.Rotation
	maxFontSize float64
	fontFamily  string
	onDiscard   func(Word)
}

// Option configures an Engine.
type Option func(*Engine)

// WithSpiral sets the offset generator used for collision retries.
func WithSpiral(fn spiral.Func) Option {
	return func(e *Engine) { e.spiral = fn }
}

// WithStrategy sets the placement strategy.
func WithStrategy(s placement.Strategy) Option {
	return func(e *Engine) { e.strategy = s }
}

// WithSeed replaces the strategy with the default random strategy built
// from the given seed. A later WithStrategy option wins.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		s, _ := placement.New(placement.DefaultName, seed)
		e.strategy = s
	}
}

// WithRotation sets the rotation configuration.
func WithRotation(r placement.Rotation) Option {
	return func(e *Engine) { e.rotation = r }
}

// WithMaxFontSize caps the size metric of the heaviest word.
func WithMaxFontSize(size float64) Option {
	return func(e *Engine) { e.maxFontSize = size }
}

// WithFontFamily sets the font family handed to the measurer.
func WithFontFamily(family string) Option {
	return func(e *Engine) { e.fontFamily = family }
}

// WithDiscard registers a callback invoked for every word dropped from
// the output, so hosts can release the word's visual resource.
func WithDiscard(fn func(Word)) Option {
	return func(e *Engine) { e.onDiscard = fn }
}

// New creates an engine with the given measurer. Defaults: archimedean
// spiral, seeded random strategy, two orientations between -90 and 90
// degrees, max font size 60.
func New(m Measurer, opts ...Option) *Engine {
	e := &Engine{
		measurer:    m,
		spiral:      spiral.Archimedean,
		rotation:    placement.DefaultRotation,
		maxFontSize: DefaultMaxFontSize,
		fontFamily:  "sans-serif",
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.strategy == nil {
		e.strategy, _ = placement.New(placement.DefaultName, 0)
	}
	return e
}

// Layout computes the cloud for the given words and target viewport.
// Words are processed strictly sequentially in descending weight order
// (stable for ties); the context is checked between words.
func (e *Engine) Layout(ctx context.Context, words []Word, targetWidth, targetHeight float64) (*Result, error) {
	start := time.Now()
	hooks := observability.Layout()
	hooks.OnLayoutStart(ctx, len(words))

	f, err := field.Compute(targetWidth, targetHeight)
	if err != nil {
		hooks.OnLayoutComplete(ctx, 0, 0, time.Since(start), err)
		return nil, err
	}

	res := &Result{Field: f}
	if len(words) == 0 {
		hooks.OnLayoutComplete(ctx, 0, 0, time.Since(start), nil)
		return res, nil
	}

	sorted := slices.Clone(words)
	slices.SortStableFunc(sorted, func(a, b Word) int {
		return cmp.Compare(b.Weight, a.Weight)
	})
	maxWeight := sorted[0].Weight

	// Note: this compares a squared quantity against a linear offset,
	// which makes the bound effectively unreachable on realistic field
	// sizes. Kept verbatim for compatibility with the original cutoff.
	maxDelta := f.Width*f.Width + f.Height*f.Height

	for _, w := range sorted {
		select {
		case <-ctx.Done():
			hooks.OnLayoutComplete(ctx, len(res.Placed), len(res.Discarded), time.Since(start), ctx.Err())
			return nil, ctx.Err()
		default:
		}

		rel := 0.0
		if maxWeight > 0 {
			rel = w.Weight / maxWeight
		}
		fontSize := rel * e.maxFontSize

		cand := e.strategy.Place(w.Text, w.Weight, placement.Context{
			Field:    f,
			Rotation: e.rotation,
			Placed:   len(res.Placed),
		})

		base := e.measurer.
			Measure(w.Text, fontSize, e.fontFamily, cand.Rotation).
			Translate(cand.X, cand.Y)

		pw := &PlacedWord{
			Word:           w,
			Rect:           base,
			Rotation:       cand.Rotation,
			RelativeWeight: rel,
			FontSize:       fontSize,
		}

		attempt := 0
		dx, dy := 0.0, 0.0
		ok := !e.collidesWithAny(pw, res.Placed) && f.Contains(pw.Rect)
		for !ok && math.Min(math.Abs(dx), math.Abs(dy)) < maxDelta {
			attempt++
			dx, dy = e.spiral(attempt)
			pw.Rect = base.Translate(dx, dy)
			ok = !e.collidesWithAny(pw, res.Placed) && f.Contains(pw.Rect)
		}

		if ok {
			res.Placed = append(res.Placed, pw)
			hooks.OnWordPlaced(ctx, w.Text, attempt)
			continue
		}

		res.Discarded = append(res.Discarded, w)
		if e.onDiscard != nil {
			e.onDiscard(w)
		}
		hooks.OnWordDiscarded(ctx, w.Text, attempt)
	}

	if len(res.Placed) > 0 {
		res.Scale = field.Scale(targetWidth, targetHeight, occupiedBounds(res.Placed))
	}

	hooks.OnLayoutComplete(ctx, len(res.Placed), len(res.Discarded), time.Since(start), nil)
	return res, nil
}

// collidesWithAny reports whether the candidate rect intersects any
// placed word. The cached collision partner is tested first: on a hit
// the scan is skipped entirely, on a stale entry the cache is cleared
// before falling through to the full scan. A scan hit re-primes the
// cache.
func (e *Engine) collidesWithAny(c *PlacedWord, placed []*PlacedWord) bool {
	if last := c.lastCollidedWith; last != nil {
		if c.Rect.Intersects(last.Rect) {
			return true
		}
		c.lastCollidedWith = nil
	}
	for _, p := range placed {
		if c.Rect.Intersects(p.Rect) {
			c.lastCollidedWith = p
			return true
		}
	}
	return false
}

// occupiedBounds returns the tight bounding box over all placed rects.
func occupiedBounds(placed []*PlacedWord) geom.Rect {
	b := placed[0].Rect
	for _, p := range placed[1:] {
		b.Left = min(b.Left, p.Rect.Left)
		b.Right = max(b.Right, p.Rect.Right)
		b.Top = min(b.Top, p.Rect.Top)
		b.Bottom = max(b.Bottom, p.Rect.Bottom)
	}
	return b
}
