package svgdoc

import (
	"bytes"
	"io"
	"os"

	"github.com/beevik/etree"

	"github.com/matzehuels/glyphsmith/pkg/errors"
)

// Component is a loaded component drawing: its coordinate frame and its
// top-level content elements in document order.
type Component struct {
	// Frame is the declared viewBox, or DefaultFrame if none was usable.
	Frame Frame

	// DeclaredFrame reports whether Frame came from the document.
	DeclaredFrame bool

	children []*etree.Element
	prefixes []Prefix
}

// Prefix is a namespace prefix declared on a component's root, such as
// xmlns:xlink. Content moved out of the root needs it redeclared.
type Prefix struct {
	Name string
	URI  string
}

// Load parses an SVG component from r.
// It fails with MALFORMED_DOCUMENT if r is not well-formed XML or has no
// root element. Geometry problems never fail the load.
func Load(r io.Reader) (*Component, error) {
	return load(r, "component")
}

func load(r io.Reader, name string) (*Component, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedDocument, err, "parse %s", name)
	}
	root := doc.Root()
	if root == nil {
		return nil, errors.New(errors.ErrCodeMalformedDocument, "%s has no root element", name)
	}

	frame, declared := DefaultFrame, false
	if vb := root.SelectAttr("viewBox"); vb != nil {
		frame, declared = ParseViewBox(vb.Value)
	}

	var prefixes []Prefix
	for _, a := range root.Attr {
		if a.Space == "xmlns" && a.Key != "" {
			prefixes = append(prefixes, Prefix{Name: a.Key, URI: a.Value})
		}
	}

	// The source tree is private to this call, so the children can be
	// kept without copying; Content copies on the way out.
	return &Component{
		Frame:         frame,
		DeclaredFrame: declared,
		children:      root.ChildElements(),
		prefixes:      prefixes,
	}, nil
}

// Parse loads a component from an in-memory document.
func Parse(data []byte) (*Component, error) {
	return Load(bytes.NewReader(data))
}

// LoadFile loads a component from an SVG file on disk.
// A missing file yields COMPONENT_NOT_FOUND.
func LoadFile(path string) (*Component, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeComponentNotFound, err, "component file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open component %s", path)
	}
	defer f.Close()

	return load(f, path)
}

// Len returns the number of top-level content elements.
func (c *Component) Len() int {
	return len(c.children)
}

// Prefixes returns the namespace prefixes declared on the component's root
// in document order.
func (c *Component) Prefixes() []Prefix {
	return append([]Prefix(nil), c.prefixes...)
}

// Content returns deep copies of the component's top-level elements in
// document order. The copies are detached and may be attached to any tree.
func (c *Component) Content() []*etree.Element {
	out := make([]*etree.Element, len(c.children))
	for i, el := range c.children {
		out[i] = el.Copy()
	}
	return out
}
