package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/wordfield/wordfield/pkg/cache"
	"github.com/wordfield/wordfield/pkg/cloud"
	"github.com/wordfield/wordfield/pkg/engine"
	"github.com/wordfield/wordfield/pkg/font"
	"github.com/wordfield/wordfield/pkg/observability"
	"github.com/wordfield/wordfield/pkg/placement"
	"github.com/wordfield/wordfield/pkg/spiral"
	"github.com/wordfield/wordfield/pkg/words"
)

// Runner encapsulates pipeline execution with caching.
// Both the CLI and the serving mode use this to avoid duplicating
// caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete count → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Count
	countStart := time.Now()
	list, err := r.Count(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("count: %w", err)
	}
	result.Words = list
	result.WordsHash = HashWords(list)
	result.Stats.CountTime = time.Since(countStart)
	result.Stats.WordCount = len(list)

	r.Logger.Info("counted words",
		"words", len(list),
		"duration", result.Stats.CountTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	layout, layoutHit, err := r.ComputeLayoutWithCacheInfo(ctx, list, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = layout
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.PlacedCount = len(layout.Words)
	result.Stats.DiscardedCount = len(layout.Discarded)
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"placed", len(layout.Words),
		"discarded", len(layout.Discarded),
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, layout, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Count resolves the word list from the options: an explicit list wins,
// otherwise the text is frequency-counted.
func (r *Runner) Count(ctx context.Context, opts Options) ([]engine.Word, error) {
	if err := opts.ValidateForCount(); err != nil {
		return nil, err
	}
	if len(opts.Words) > 0 {
		return opts.Words, nil
	}
	return words.Count(strings.NewReader(opts.Text), opts.CountOptions())
}

// ComputeLayoutWithCacheInfo computes a layout with caching and returns
// cache hit info.
func (r *Runner) ComputeLayoutWithCacheInfo(ctx context.Context, list []engine.Word, opts Options) (cloud.Layout, bool, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return cloud.Layout{}, false, err
	}
	r.applyLogger(&opts)

	cacheKey := r.Keyer.LayoutKey(HashWords(list), opts.LayoutKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			cached, err := cloud.UnmarshalLayout(data)
			if err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return cached, true, nil
			}
			// If deserialization fails, fall through to recompute
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	layout, err := ComputeLayout(ctx, list, opts)
	if err != nil {
		return cloud.Layout{}, false, err
	}

	if data, err := cloud.MarshalLayout(layout); err == nil {
		if serr := r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout); serr == nil {
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}

	return layout, false, nil
}

// ComputeLayout is a convenience wrapper that discards the cache hit info.
func (r *Runner) ComputeLayout(ctx context.Context, list []engine.Word, opts Options) (cloud.Layout, error) {
	layout, _, err := r.ComputeLayoutWithCacheInfo(ctx, list, opts)
	return layout, err
}

// ComputeLayout places the word list without consulting any cache.
func ComputeLayout(ctx context.Context, list []engine.Word, opts Options) (cloud.Layout, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return cloud.Layout{}, err
	}

	measurer, err := font.NewMeasurer()
	if err != nil {
		return cloud.Layout{}, fmt.Errorf("load font: %w", err)
	}

	strategy, err := placement.New(opts.Strategy, opts.Seed)
	if err != nil {
		return cloud.Layout{}, err
	}
	spiralFn, err := spiral.Lookup(opts.Spiral)
	if err != nil {
		return cloud.Layout{}, err
	}

	eng := engine.New(measurer,
		engine.WithStrategy(strategy),
		engine.WithSpiral(spiralFn),
		engine.WithRotation(opts.Rotation()),
		engine.WithMaxFontSize(opts.MaxFontSize),
		engine.WithFontFamily(opts.FontFamily),
	)

	res, err := eng.Layout(ctx, list, opts.Width, opts.Height)
	if err != nil {
		return cloud.Layout{}, err
	}

	layout := cloud.FromResult(res, opts.Width, opts.Height)
	layout.Style = opts.Style
	layout.FontFamily = opts.FontFamily
	layout.Seed = opts.Seed
	return layout, nil
}

// RenderWithCacheInfo generates artifacts with caching and returns cache
// hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, layout cloud.Layout, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key from layout data
	layoutData, err := cloud.MarshalLayout(layout)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	rendered, err := Render(ctx, layout, opts)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if serr := r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact); serr == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return rendered, false, nil
}

// RenderArtifacts is a convenience wrapper that discards the cache hit info.
func (r *Runner) RenderArtifacts(ctx context.Context, layout cloud.Layout, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, layout, opts)
	return artifacts, err
}

// HashWords computes the content hash of a word list for cache keys.
func HashWords(list []engine.Word) string {
	data, _ := json.Marshal(list)
	return cache.Hash(data)
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
