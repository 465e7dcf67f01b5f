package layout

import (
	"strings"

	"github.com/matzehuels/glyphsmith/pkg/errors"
)

// Kind is a two-component arrangement.
type Kind int

const (
	// SideBySide splits the canvas into a left and a right slot (⿰).
	SideBySide Kind = iota
	// Stacked splits the canvas into a top and a bottom slot (⿱).
	Stacked
)

// String returns the canonical name of the kind.
func (k Kind) String() string {
	switch k {
	case SideBySide:
		return "side-by-side"
	case Stacked:
		return "stacked"
	}
	return "unknown"
}

// Tag returns the short tag used in output resource names.
func (k Kind) Tag() string {
	if k == Stacked {
		return "tb"
	}
	return "lr"
}

// Symbol returns the ideographic description character for the kind.
func (k Kind) Symbol() string {
	if k == Stacked {
		return "⿱"
	}
	return "⿰"
}

// Alternate returns the other kind. Nested compositions always use the
// alternate kind for the inner pair.
func (k Kind) Alternate() Kind {
	if k == Stacked {
		return SideBySide
	}
	return Stacked
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == SideBySide || k == Stacked
}

// ParseKind parses a layout name. It accepts the canonical names, the short
// tags ("lr", "tb") and the ideographic description characters.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "side-by-side", "sidebyside", "lr", "left-right", "⿰":
		return SideBySide, nil
	case "stacked", "tb", "top-bottom", "⿱":
		return Stacked, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "invalid layout: %q (must be side-by-side or stacked)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
