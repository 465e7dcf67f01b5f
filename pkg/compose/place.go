package compose

import (
	"math"

	"github.com/matzehuels/glyphsmith/pkg/layout"
	"github.com/matzehuels/glyphsmith/pkg/svgdoc"
)

// Placement maps a component's local coordinates into the canvas:
// a point p lands at (TX + p.x*SX, TY + p.y*SY).
type Placement struct {
	TX, TY float64
	SX, SY float64
}

// Transform renders the placement as an SVG transform attribute value.
func (p Placement) Transform() string {
	return "translate(" + svgdoc.FormatNumber(p.TX) + "," + svgdoc.FormatNumber(p.TY) + ") " +
		"scale(" + svgdoc.FormatNumber(p.SX) + "," + svgdoc.FormatNumber(p.SY) + ")"
}

// Apply maps a point from component space into canvas space.
func (p Placement) Apply(x, y float64) (float64, float64) {
	return p.TX + x*p.SX, p.TY + y*p.SY
}

// Bounds returns the canvas rectangle the frame f is drawn into.
func (p Placement) Bounds(f svgdoc.Frame) layout.Rect {
	f = f.OrDefault()
	x0, y0 := p.Apply(f.X, f.Y)
	x1, y1 := p.Apply(f.X+f.W, f.Y+f.H)
	return layout.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Place computes the placement of a component with frame f into slot i
// (0 or 1) of l. A degenerate frame is treated as the default square.
func Place(l layout.Layout, i int, f svgdoc.Frame) Placement {
	f = f.OrDefault()
	slot := l.Slots[i]
	if l.Kind == layout.Stacked {
		return placeUniform(slot.Rect, f)
	}
	return placeFill(l, slot, f)
}

// placeFill stretches f to the full inner width and the full band height.
func placeFill(l layout.Layout, slot layout.Slot, f svgdoc.Frame) Placement {
	inner := slot.Inner()
	sx := inner.W / f.W
	sy := slot.H / f.H
	drawW, drawH := f.W*sx, f.H*sy

	p := Placement{SX: sx, SY: sy}
	p.TX = inner.X + (inner.W-drawW)/2 - f.X*sx
	if l.Config.Align == layout.AlignBaseline {
		p.TY = l.Size() - drawH - f.Y*sy
	} else {
		p.TY = slot.Y + (slot.H-drawH)/2 - f.Y*sy
	}
	return p
}

// placeUniform fits f inside r without distortion and centers it.
func placeUniform(r layout.Rect, f svgdoc.Frame) Placement {
	s := math.Min(r.W/f.W, r.H/f.H)
	drawW, drawH := f.W*s, f.H*s
	return Placement{
		TX: r.X + (r.W-drawW)/2 - f.X*s,
		TY: r.Y + (r.H-drawH)/2 - f.Y*s,
		SX: s,
		SY: s,
	}
}
