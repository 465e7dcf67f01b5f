package compose

import (
	"github.com/beevik/etree"

	"github.com/matzehuels/glyphsmith/pkg/errors"
	"github.com/matzehuels/glyphsmith/pkg/layout"
	"github.com/matzehuels/glyphsmith/pkg/svgdoc"
)

// Glyph is a composed pair of components on a fresh canvas.
type Glyph struct {
	// Layout is the slot plan the pair was placed with.
	Layout layout.Layout

	// Placements holds the transform of the first and second component.
	Placements [2]Placement

	doc *etree.Document
}

// Pair composes first and second under kind. The components are not
// modified; their content is deep-copied into the new document, so the
// same component may be used in any number of glyphs.
func Pair(first, second *svgdoc.Component, kind layout.Kind, cfg layout.Config) *Glyph {
	l := layout.Plan(kind, cfg)
	g := &Glyph{Layout: l, doc: svgdoc.NewCanvas(l.Size())}

	root := g.doc.Root()
	for i, c := range [2]*svgdoc.Component{first, second} {
		p := Place(l, i, c.Frame)
		g.Placements[i] = p
		root.AddChild(svgdoc.Group(p.Transform(), c.Content(), c.Prefixes()...))
	}
	return g
}

// Document returns the glyph's document tree.
func (g *Glyph) Document() *etree.Document {
	return g.doc
}

// Groups returns the component groups in drawing order.
func (g *Glyph) Groups() []*etree.Element {
	return g.doc.Root().SelectElements("g")
}

// Bytes serializes the glyph as a sanitized SVG document.
func (g *Glyph) Bytes() ([]byte, error) {
	data, err := svgdoc.Encode(g.doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode glyph")
	}
	return svgdoc.Sanitize(data), nil
}
