// Package render provides output rendering for computed word clouds.
//
// # Overview
//
// This package contains the rendering pipeline that transforms a
// serialized [cloud.Layout] into visual outputs. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Word-cloud sinks and styles (in the [cloud] subpackages)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats
// using the external rsvg-convert tool (from librsvg):
//
//	svg := sink.RenderSVG(layout, opts...)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Word-Cloud Rendering
//
// The [cloud/sink] subpackage renders layouts into SVG, JSON, PNG and
// PDF. The [cloud/styles] subpackage holds the visual styles that
// control palette and text presentation.
//
// [cloud.Layout]: github.com/wordfield/wordfield/pkg/cloud.Layout
// [cloud/sink]: github.com/wordfield/wordfield/pkg/render/cloud/sink
// [cloud/styles]: github.com/wordfield/wordfield/pkg/render/cloud/styles
package render
