// Package pkg provides the core libraries for wordfield word-cloud layout.
//
// # Overview
//
// Wordfield turns weighted word lists into collision-free cloud layouts
// and renders them. The pkg directory is organized into four main areas:
//
//  1. [engine] - Domain logic (spiral placement, collision detection)
//  2. [words] - Input handling (tokenizing, counting, word list files)
//  3. [render] - Output (SVG styles and sinks, raster conversion)
//  4. [pipeline] - Orchestration (count → layout → render)
//
// # Architecture
//
// The typical data flow through wordfield:
//
//	Plain text / words.json
//	         ↓
//	    [words] package (tokenize and count)
//	         ↓
//	    [engine] package (spiral placement + collision detection)
//	         ↓
//	    [cloud] package (layout document)
//	         ↓
//	    [render] package (styles + sinks)
//	         ↓
//	    SVG/PNG/PDF/JSON output
//
// Supporting packages: [geom] for rectangles, [spiral] for traversal
// functions, [placement] for start-position strategies, [field] for the
// layout field and viewport scaling, [cache] for content-addressed
// caching, [httputil] for fetching remote text, [errors] for coded
// errors, and [observability] for cache and HTTP hooks.
package pkg
