// Package render exports composed glyphs to raster and print formats.
//
// Glyphs are produced as SVG. [Convert] turns an SVG document into PNG or
// PDF using the external rsvg-convert tool (from librsvg):
//
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//	pdf, err := render.ToPDF(ctx, svg)
//
// SVG output is passed through unchanged, so callers can treat every
// format the same way.
package render
