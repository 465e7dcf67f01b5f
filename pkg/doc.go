// Package pkg provides the core libraries for glyphsmith glyph composition.
//
// # Overview
//
// Glyphsmith builds new ideograph-like glyphs by placing existing radical
// drawings side by side (⿰) or stacked (⿱) on a square canvas. The pkg
// directory is organized into three areas:
//
//  1. Geometry and documents: [layout] plans the two slots of an
//     arrangement, [svgdoc] loads, frames, sanitizes and encodes SVG.
//  2. Composition: [compose] places components into slots and runs the
//     two- and three-part compose operation against a [store].
//  3. Surfaces: [catalog] resolves radical identifiers, [config] loads
//     settings, [server] exposes the HTTP API and [render] exports PNG
//     and PDF.
//
// # Architecture
//
//	component ids (心, 061, 61)
//	         ↓
//	    [catalog] (id → SVG path)
//	         ↓
//	    [svgdoc] (parse, frame)
//	         ↓
//	    [layout] + [compose] (plan slots, place, nest)
//	         ↓
//	    [store] (file, memory, Redis, MongoDB)
//
// # Quick Start
//
//	cat, _ := catalog.LoadFile("data/radicals_214.json", "svg")
//	st, _ := store.NewFile("out")
//	engine := compose.New(cat, st)
//	res, err := engine.Compose(ctx, compose.Request{
//	    Components: []string{"人", "木"},
//	    Layout:     layout.SideBySide,
//	    Name:       "rest",
//	})
//	// res.Name == "rest_lr_<unix>.svg"
//
// Supporting packages: [errors] defines the error codes shared by every
// surface, [observability] carries optional hooks for metrics and tracing,
// and [buildinfo] reports the version.
package pkg
