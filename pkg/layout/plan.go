package layout

import "math"

// Rect is an axis-aligned rectangle in canvas coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Slot is the destination rectangle reserved for one component.
type Slot struct {
	Rect

	// Inset is the fraction of the slot width kept free on each side.
	Inset float64
}

// Inner returns the rectangle content is fitted to: the slot shrunk
// horizontally by Inset on both sides. The vertical extent is unchanged.
func (s Slot) Inner() Rect {
	return Rect{
		X: s.X + s.W*s.Inset,
		Y: s.Y,
		W: s.W * (1 - 2*s.Inset),
		H: s.H,
	}
}

// Layout is a planned two-slot arrangement on a square canvas.
type Layout struct {
	Kind Kind

	// Config is the normalized configuration the plan was built from.
	Config Config

	// Slots holds the first (left or top) and second (right or bottom) slot.
	Slots [2]Slot

	// OuterMargin and Gutter are the absolute spacings used, in canvas units.
	OuterMargin float64
	Gutter      float64
}

// Size returns the canvas side length.
func (l Layout) Size() float64 { return l.Config.Size }

// Plan computes the two slots for kind on the canvas described by cfg.
// cfg is normalized first.
func Plan(kind Kind, cfg Config) Layout {
	cfg = cfg.Normalize()
	if kind == Stacked {
		return planStacked(cfg)
	}
	return planSideBySide(cfg)
}

// planSideBySide splits the width into a left and a right slot between
// equal outer margins. Both slots share one vertically centered band.
func planSideBySide(cfg Config) Layout {
	size := cfg.Size
	outer := size * cfg.OuterMarginRatio
	gutter := size * cfg.GutterRatio

	totalW := math.Max(1, size-2*outer-gutter)
	totalH := size * cfg.HeightRatio
	yOffset := (size - totalH) / 2

	leftW := totalW * cfg.LeftWidthRatio
	rightW := totalW - leftW

	return Layout{
		Kind:   SideBySide,
		Config: cfg,
		Slots: [2]Slot{
			{Rect: Rect{X: outer, Y: yOffset, W: leftW, H: totalH}, Inset: cfg.SlotInsetRatio},
			{Rect: Rect{X: outer + leftW + gutter, Y: yOffset, W: rightW, H: totalH}, Inset: cfg.SlotInsetRatio},
		},
		OuterMargin: outer,
		Gutter:      gutter,
	}
}

// planStacked splits the height into a top and a bottom slot separated by
// the gutter. Both slots span the full width.
func planStacked(cfg Config) Layout {
	size := cfg.Size
	gutter := size * cfg.GutterRatio
	usableH := size - gutter
	topH := usableH * cfg.TopHeightRatio

	return Layout{
		Kind:   Stacked,
		Config: cfg,
		Slots: [2]Slot{
			{Rect: Rect{X: 0, Y: 0, W: size, H: topH}},
			{Rect: Rect{X: 0, Y: topH + gutter, W: size, H: usableH - topH}},
		},
		Gutter: gutter,
	}
}
