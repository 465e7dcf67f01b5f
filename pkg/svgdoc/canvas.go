package svgdoc

import (
	"github.com/beevik/etree"
)

// Namespace is the SVG namespace every produced document declares once.
const Namespace = "http://www.w3.org/2000/svg"

// NewCanvas creates an empty output document: an XML declaration and a
// single <svg> root with one namespace declaration, a "0 0 size size"
// viewBox, and matching width and height.
func NewCanvas(size float64) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	n := FormatNumber(size)
	root := doc.CreateElement("svg")
	root.CreateAttr("xmlns", Namespace)
	root.CreateAttr("viewBox", "0 0 "+n+" "+n)
	root.CreateAttr("width", n)
	root.CreateAttr("height", n)
	return doc
}

// Group wraps content in a <g> element carrying transform and declaring
// prefixes, so prefixed names in content stay bound once it leaves its
// source document. The content elements are attached as-is; pass copies.
func Group(transform string, content []*etree.Element, prefixes ...Prefix) *etree.Element {
	g := etree.NewElement("g")
	g.CreateAttr("transform", transform)
	for _, p := range prefixes {
		g.CreateAttr("xmlns:"+p.Name, p.URI)
	}
	for _, el := range content {
		g.AddChild(el)
	}
	return g
}

// Encode serializes doc.
func Encode(doc *etree.Document) ([]byte, error) {
	return doc.WriteToBytes()
}
