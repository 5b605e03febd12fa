package pipeline

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/wordfield/wordfield/pkg/cloud"
	"github.com/wordfield/wordfield/pkg/render/cloud/sink"
	"github.com/wordfield/wordfield/pkg/render/cloud/styles"
)

// Render generates output artifacts in the requested formats.
// Formats render concurrently; the first failure cancels the rest.
func Render(ctx context.Context, l cloud.Layout, opts Options) (map[string][]byte, error) {
	opts = applyLayoutMetadata(opts, l)
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	svgOpts := buildSVGOptions(l, opts)

	artifacts := make(map[string][]byte, len(opts.Formats))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for _, format := range opts.Formats {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := renderFormat(l, format, svgOpts, opts)
			if err != nil {
				return fmt.Errorf("render %s: %w", format, err)
			}
			mu.Lock()
			artifacts[format] = data
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return artifacts, nil
}

func renderFormat(l cloud.Layout, format string, svgOpts []sink.SVGOption, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return sink.RenderSVG(l, svgOpts...), nil
	case FormatPNG:
		return sink.RenderPNG(l, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.Scale))
	case FormatPDF:
		return sink.RenderPDF(l, sink.WithPDFSVGOptions(svgOpts...))
	case FormatJSON:
		return sink.RenderJSON(l, sink.WithJSONStyle(opts.Style), sink.WithJSONSeed(opts.Seed))
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// applyLayoutMetadata applies layout metadata to options if not already
// set. This ensures serialized layouts keep their original render
// settings on re-render.
func applyLayoutMetadata(opts Options, l cloud.Layout) Options {
	if opts.Style == "" && l.Style != "" {
		opts.Style = l.Style
	}
	if opts.Seed == 0 && l.Seed != 0 {
		opts.Seed = l.Seed
	}
	if opts.FontFamily == "" && l.FontFamily != "" {
		opts.FontFamily = l.FontFamily
	}
	return opts
}

// buildSVGOptions builds SVG rendering options.
func buildSVGOptions(l cloud.Layout, opts Options) []sink.SVGOption {
	var svgOpts []sink.SVGOption

	if s, ok := styles.Lookup(opts.Style); ok {
		svgOpts = append(svgOpts, sink.WithStyle(s))
	}
	if opts.FontFamily != "" {
		svgOpts = append(svgOpts, sink.WithFontFamily(opts.FontFamily))
	}

	return svgOpts
}

// RenderFromLayoutData renders output from serialized layout data.
// This is useful when the layout was computed elsewhere (e.g. cached or
// written by the `layout` command).
func RenderFromLayoutData(ctx context.Context, layoutData []byte, opts Options) (map[string][]byte, error) {
	parsed, err := cloud.UnmarshalLayout(layoutData)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	return Render(ctx, parsed, opts)
}
