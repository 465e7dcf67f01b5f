// Package layout plans where the components of a glyph go on the canvas.
//
// A layout [Kind] names one of the two ideographic arrangements:
// [SideBySide] (⿰, left-right) and [Stacked] (⿱, top-bottom). [Plan]
// turns a kind and a [Config] into two destination rectangles ([Slot]) on a
// square canvas of side [Config.Size]. Planning is a pure function of its
// inputs.
//
// # Configuration
//
// Every [Config] field has a default and is clamped by [Config.Normalize];
// out-of-range values are corrected, never rejected.
//
//	cfg := layout.Default()
//	cfg.LeftWidthRatio = 2 // clamped to 0.9
//	p := layout.Plan(layout.SideBySide, cfg)
//	left, right := p.Slots[0], p.Slots[1]
//
// Side-by-side slots carry an inset: content is fitted to [Slot.Inner], which
// shrinks the slot horizontally so glyphs never touch its edges. Stacked slots
// span the full canvas width and have no inset; the compositor fits content
// into them with a uniform scale instead.
package layout
