// Package compose builds new glyphs from two or three component drawings.
//
// # Pairs
//
// [Pair] is the transform compositor: it plans two slots with
// [layout.Plan], computes one [Placement] per component, and assembles a
// fresh canvas holding one transformed <g> group per component, first
// operand first. Side-by-side placement scales each axis independently so
// both components fill their slot; stacked placement keeps the aspect ratio.
//
// # Requests
//
// [Engine.Compose] serves a [Request] of 2 or 3 component identifiers.
// Identifiers are resolved through a [Resolver] and results are written to
// a [store.Store]. Three components are composed by nesting: the last two
// are paired under the alternate layout into a temporary intermediate,
// which is stored, sanitized, read back and paired with the first
// component under the requested layout.
//
// If any step of the nested path fails the engine logs a warning and
// returns the pair of the first two components instead, marking the
// [Result] as degraded. A request with fewer than two components yields
// [ErrNotComposable].
package compose
