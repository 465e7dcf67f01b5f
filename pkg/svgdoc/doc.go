// Package svgdoc loads, builds and sanitizes the SVG documents that glyph
// composition works on.
//
// # Components
//
// A component is a square SVG drawing of one radical. [Load] parses it and
// keeps two things: the coordinate [Frame] declared by the root viewBox and
// the ordered top-level child elements (the drawable content, including any
// <defs>). Malformed geometry never aborts a load: a missing or unparseable
// viewBox, or one with a non-positive width or height, degrades to
// [DefaultFrame].
//
// A loaded [Component] is immutable. [Component.Content] hands out deep
// copies of the children so the same component can be placed into any
// number of output documents.
//
// # Canvases
//
// [NewCanvas] creates a fresh output document whose root carries exactly one
// namespace declaration and a viewBox of "0 0 size size". [Group] wraps
// content in a single transformed <g> element.
//
// # Sanitizing
//
// [Sanitize] normalizes the opening tag of a document's root element so it
// carries exactly one default namespace declaration. It works on raw bytes,
// never fails, and is idempotent, so it can run after every write and before
// every read of a stored document.
package svgdoc
