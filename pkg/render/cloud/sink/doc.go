// Package sink provides output format renderers for word clouds.
//
// A "sink" transforms a serialized [cloud.Layout] into a final output
// format. This package provides renderers for:
//
//   - SVG: Scalable vector graphics
//   - JSON: Layout data export for caching and external tools
//   - PDF: Print-ready output (requires rsvg-convert)
//   - PNG: Raster image output (requires rsvg-convert)
//
// Basic usage:
//
//	svg := sink.RenderSVG(layout, sink.WithStyle(styles.Ink{}))
//	png, err := sink.RenderPNG(layout, sink.WithScale(2))
//
// PDF and PNG render SVG first, then convert through [render.ToPDF]
// and [render.ToPNG]. These require librsvg to be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// To add a new output format, create a renderer function following the
// func RenderFoo(l cloud.Layout, opts ...FooOption) ([]byte, error)
// shape, then register it in internal/cli/render.go for CLI support.
//
// [cloud.Layout]: github.com/wordfield/wordfield/pkg/cloud.Layout
// [render.ToPDF]: github.com/wordfield/wordfield/pkg/render.ToPDF
// [render.ToPNG]: github.com/wordfield/wordfield/pkg/render.ToPNG
package sink
