package svgdoc

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DefaultSize is the side length of the default component frame and canvas.
const DefaultSize = 1024.0

// DefaultFrame is used whenever a component declares no usable viewBox.
var DefaultFrame = Frame{X: 0, Y: 0, W: DefaultSize, H: DefaultSize}

// Frame is the local coordinate space a component is authored in,
// as declared by its viewBox: min-x, min-y, width, height.
type Frame struct {
	X, Y, W, H float64
}

// Degenerate reports whether the frame cannot be scaled from: a
// non-positive or non-finite extent, or a non-finite origin.
func (f Frame) Degenerate() bool {
	for _, v := range []float64{f.X, f.Y, f.W, f.H} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}
	return f.W <= 0 || f.H <= 0
}

// OrDefault returns f, or DefaultFrame if f is degenerate.
func (f Frame) OrDefault() Frame {
	if f.Degenerate() {
		return DefaultFrame
	}
	return f
}

// String renders the frame as a viewBox attribute value.
func (f Frame) String() string {
	return strings.Join([]string{
		FormatNumber(f.X), FormatNumber(f.Y), FormatNumber(f.W), FormatNumber(f.H),
	}, " ")
}

var viewBoxSep = regexp.MustCompile(`[\s,]+`)

// ParseViewBox parses a viewBox attribute value. Numbers may be separated
// by whitespace, commas, or both. The second return value is false, and the
// frame is DefaultFrame, when the value does not hold exactly four numbers
// or describes a degenerate frame.
func ParseViewBox(s string) (Frame, bool) {
	fields := viewBoxSep.Split(strings.TrimSpace(s), -1)
	if len(fields) != 4 {
		return DefaultFrame, false
	}
	var v [4]float64
	for i, field := range fields {
		n, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return DefaultFrame, false
		}
		v[i] = n
	}
	f := Frame{X: v[0], Y: v[1], W: v[2], H: v[3]}
	if f.Degenerate() {
		return DefaultFrame, false
	}
	return f, true
}

// FormatNumber formats a coordinate for an SVG attribute: at most six
// decimals, no trailing zeros, and never "-0".
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}
