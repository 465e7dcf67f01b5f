package compose

import (
	stderrors "errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/matzehuels/glyphsmith/pkg/errors"
	"github.com/matzehuels/glyphsmith/pkg/layout"
)

// ErrNotComposable is returned for requests with fewer than two components.
// No document is produced.
var ErrNotComposable = stderrors.New("not composable: at least two components are required")

// MaxComponents is the largest number of components one request may name.
const MaxComponents = 3

// DefaultBaseName is used when a request name has no usable characters.
const DefaultBaseName = "generated"

// maxBaseNameBytes keeps the longest derived name, a temporary one, well
// under file system name limits.
const maxBaseNameBytes = 128

// Request asks for a new glyph.
type Request struct {
	// Components are the ordered component identifiers, 2 or 3 of them.
	Components []string `json:"components"`

	// Layout is the outer arrangement.
	Layout layout.Kind `json:"layout"`

	// Name seeds the output resource name, usually the word the glyph
	// was made for.
	Name string `json:"name,omitempty"`
}

// Validate checks the request without touching any resource.
func (r Request) Validate() error {
	switch n := len(r.Components); {
	case n < 2:
		return ErrNotComposable
	case n > MaxComponents:
		return errors.New(errors.ErrCodeInvalidRequest, "expected 2 or 3 components, got %d", n)
	}
	if !r.Layout.Valid() {
		return errors.New(errors.ErrCodeInvalidRequest, "unknown layout %d", int(r.Layout))
	}
	for _, id := range r.Components {
		if err := errors.ValidateComponentID(id); err != nil {
			return err
		}
	}
	return nil
}

// BaseName returns the lowercased request name reduced to letters, digits,
// '-' and '_', or DefaultBaseName if nothing is left. The result is cut on
// a rune boundary at maxBaseNameBytes.
func (r Request) BaseName() string {
	var b strings.Builder
	for _, ch := range strings.ToLower(r.Name) {
		if !unicode.IsLetter(ch) && !unicode.IsDigit(ch) && ch != '-' && ch != '_' {
			continue
		}
		if b.Len()+utf8.RuneLen(ch) > maxBaseNameBytes {
			break
		}
		b.WriteRune(ch)
	}
	if b.Len() == 0 {
		return DefaultBaseName
	}
	return b.String()
}
