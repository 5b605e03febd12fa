// Package pipeline provides the core word-cloud pipeline for wordfield.
//
// This package implements the complete count → layout → render pipeline
// that is shared by the CLI commands and the HTTP serving mode. By
// centralizing this logic, all entry points behave identically and the
// caching rules live in one place.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Count: Turn plain text into a weighted word list (or load an
//     existing words.json / words.toml file).
//  2. Layout: Place the words collision-free on the layout field.
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON).
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Text:    "the quick brown fox ...",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	list, err := runner.Count(ctx, opts)
//	layout, err := runner.ComputeLayout(ctx, list, opts)
//	artifacts, err := runner.Render(ctx, layout, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/wordfield/wordfield/pkg/cache"
	"github.com/wordfield/wordfield/pkg/cloud"
	"github.com/wordfield/wordfield/pkg/engine"
	"github.com/wordfield/wordfield/pkg/errors"
	"github.com/wordfield/wordfield/pkg/placement"
	"github.com/wordfield/wordfield/pkg/render/cloud/styles"
	"github.com/wordfield/wordfield/pkg/spiral"
	"github.com/wordfield/wordfield/pkg/words"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Serve Mode
// =============================================================================

const (
	// DefaultWidth is the default target viewport width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default target viewport height in pixels.
	DefaultHeight = 600.0

	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = uint64(42)

	// DefaultTop caps how many words a count feeds into the layout.
	DefaultTop = 100
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the word-cloud pipeline.
// This struct supports JSON serialization for serve-mode requests.
type Options struct {
	// Count options. Exactly one word source is used: an explicit word
	// list, raw text, or a words file loaded by the caller.
	Words     []engine.Word `json:"words,omitempty"`
	Text      string        `json:"text,omitempty"`
	Top       int           `json:"top,omitempty"`
	MinLength int           `json:"min_length,omitempty"`
	StopWords []string      `json:"stop_words,omitempty"`
	KeepCase  bool          `json:"keep_case,omitempty"`

	// Layout options
	Width        float64 `json:"width,omitempty"`
	Height       float64 `json:"height,omitempty"`
	Strategy     string  `json:"strategy,omitempty"`
	Spiral       string  `json:"spiral,omitempty"`
	RotationFrom float64 `json:"rotation_from,omitempty"`
	RotationTo   float64 `json:"rotation_to,omitempty"`
	Orientations int     `json:"orientations,omitempty"`
	MaxFontSize  float64 `json:"max_font_size,omitempty"`
	FontFamily   string  `json:"font_family,omitempty"`
	Seed         uint64  `json:"seed,omitempty"`
	Refresh      bool    `json:"refresh,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Style   string   `json:"style,omitempty"`
	Scale   float64  `json:"scale,omitempty"` // PNG raster scale

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Words is the weighted word list that was laid out.
	Words []engine.Word

	// WordsHash is the content hash of the word list.
	WordsHash string

	// Layout is the computed layout document.
	Layout cloud.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	WordCount      int
	PlacedCount    int
	DiscardedCount int
	CountTime      time.Duration
	LayoutTime     time.Duration
	RenderTime     time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is registered.
func ValidateStyle(style string) error {
	if _, ok := styles.Lookup(style); !ok {
		return errors.New(errors.ErrCodeInvalidStyle,
			"invalid style: %q (available: %v)", style, styles.Names())
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for
// the full pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForCount(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForCount checks required fields for the counting stage.
func (o *Options) ValidateForCount() error {
	if len(o.Words) == 0 && o.Text == "" {
		return errors.New(errors.ErrCodeInvalidInput, "words or text is required")
	}
	if o.Top == 0 {
		o.Top = DefaultTop
	}
	o.applyLoggerDefault()
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Strategy == "" {
		o.Strategy = placement.DefaultName
	}
	if o.Spiral == "" {
		o.Spiral = spiral.DefaultName
	}
	if o.RotationFrom == 0 && o.RotationTo == 0 && o.Orientations == 0 {
		r := placement.DefaultRotation
		o.RotationFrom, o.RotationTo, o.Orientations = r.From, r.To, r.Orientations
	}
	if o.MaxFontSize == 0 {
		o.MaxFontSize = engine.DefaultMaxFontSize
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	o.applyLoggerDefault()
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if err := errors.ValidateViewport(o.Width, o.Height); err != nil {
		return err
	}
	if err := errors.ValidateRotation(o.RotationFrom, o.RotationTo, o.Orientations); err != nil {
		return err
	}
	if _, err := spiral.Lookup(o.Spiral); err != nil {
		return err
	}
	if _, err := placement.New(o.Strategy, o.Seed); err != nil {
		return err
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = styles.DefaultName
	}
	if o.Scale == 0 {
		o.Scale = 2.0
	}
	o.applyLoggerDefault()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidateStyle(o.Style)
}

// Rotation returns the layout rotation described by the options.
func (o *Options) Rotation() placement.Rotation {
	return placement.Rotation{
		From:         o.RotationFrom,
		To:           o.RotationTo,
		Orientations: o.Orientations,
	}
}

// CountOptions returns the counting options described by the options.
func (o *Options) CountOptions() words.CountOptions {
	return words.CountOptions{
		Top:       o.Top,
		MinLength: o.MinLength,
		StopWords: o.StopWords,
		KeepCase:  o.KeepCase,
	}
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Width:        o.Width,
		Height:       o.Height,
		Strategy:     o.Strategy,
		Spiral:       o.Spiral,
		RotationFrom: o.RotationFrom,
		RotationTo:   o.RotationTo,
		Orientations: o.Orientations,
		MaxFontSize:  o.MaxFontSize,
		FontFamily:   o.FontFamily,
		Seed:         o.Seed,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Style:  o.Style,
		Scale:  o.Scale,
	}
}

func (o *Options) applyLoggerDefault() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}
