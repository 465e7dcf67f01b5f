// Package catalog maps component identifiers to radical SVG files.
//
// A [Catalog] is built once from the radicals table (a JSON array of
// {num, id, pinyin, gloss, strokes, tags}) and never changes afterwards.
// It accepts three identifier forms for the same radical:
//
//	心      the radical glyph
//	061     its zero-padded number
//	61      its number
//
// and resolves each to <dir>/061.svg. A Catalog satisfies
// compose.Resolver.
package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/glyphsmith/pkg/errors"
)

// Radical is one entry of the radicals table.
type Radical struct {
	Num     int      `json:"num"`
	ID      string   `json:"id"`
	Pinyin  string   `json:"pinyin,omitempty"`
	Gloss   string   `json:"gloss,omitempty"`
	Strokes int      `json:"strokes,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// File returns the SVG file name of the radical, e.g. "061.svg".
func (r Radical) File() string {
	return FileName(r.Num)
}

// FileName returns the SVG file name for radical number n.
func FileName(n int) string {
	return fmt.Sprintf("%03d.svg", n)
}

// Catalog is an immutable radical lookup rooted at an SVG directory.
type Catalog struct {
	dir     string
	entries []Radical
	byKey   map[string]int
}

// New builds a catalog over entries whose SVG files live in dir.
// Entries must have positive, unique numbers and unique glyph ids.
// With no entries only numeric identifiers resolve.
func New(dir string, entries []Radical) (*Catalog, error) {
	c := &Catalog{
		dir:     dir,
		entries: slices.Clone(entries),
		byKey:   make(map[string]int, 2*len(entries)),
	}
	slices.SortFunc(c.entries, func(a, b Radical) int { return a.Num - b.Num })

	for _, r := range c.entries {
		if r.Num <= 0 {
			return nil, errors.New(errors.ErrCodeMalformedCatalog, "radical %q has invalid number %d", r.ID, r.Num)
		}
		num := fmt.Sprintf("%03d", r.Num)
		if _, dup := c.byKey[num]; dup {
			return nil, errors.New(errors.ErrCodeMalformedCatalog, "duplicate radical number %d", r.Num)
		}
		c.byKey[num] = r.Num
		if r.ID == "" {
			continue
		}
		if _, dup := c.byKey[r.ID]; dup {
			return nil, errors.New(errors.ErrCodeMalformedCatalog, "duplicate radical id %q", r.ID)
		}
		c.byKey[r.ID] = r.Num
	}
	return c, nil
}

// Load reads the radicals table from r.
func Load(r io.Reader, dir string) (*Catalog, error) {
	var entries []Radical
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedCatalog, err, "decode radicals table")
	}
	return New(dir, entries)
}

// LoadFile reads the radicals table from path.
func LoadFile(path, dir string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeNotFound, err, "radicals table %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open radicals table %s", path)
	}
	defer f.Close()

	c, err := Load(f, dir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Dir returns the SVG directory.
func (c *Catalog) Dir() string {
	return c.dir
}

// Len returns the number of radicals in the table.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns the radicals ordered by number.
func (c *Catalog) Entries() []Radical {
	return slices.Clone(c.entries)
}

// Num returns the radical number identified by id: a glyph, a zero-padded
// number or a plain number.
func (c *Catalog) Num(id string) (int, error) {
	id = strings.TrimSpace(id)
	if n, ok := c.byKey[id]; ok {
		return n, nil
	}
	if n, err := strconv.Atoi(id); err == nil && n > 0 && isDigits(id) {
		return n, nil
	}
	return 0, errors.New(errors.ErrCodeComponentNotFound, "unknown component %q", id)
}

// Lookup returns the table entry for id.
func (c *Catalog) Lookup(id string) (Radical, bool) {
	n, err := c.Num(id)
	if err != nil {
		return Radical{}, false
	}
	i, found := slices.BinarySearchFunc(c.entries, n, func(r Radical, n int) int { return r.Num - n })
	if !found {
		return Radical{}, false
	}
	return c.entries[i], true
}

// Resolve returns the path of the SVG file for id. It fails with
// COMPONENT_NOT_FOUND if id is unknown or the file does not exist.
func (c *Catalog) Resolve(id string) (string, error) {
	n, err := c.Num(id)
	if err != nil {
		return "", err
	}
	path := filepath.Join(c.dir, FileName(n))
	if _, err := os.Stat(path); err != nil {
		return "", errors.Wrap(errors.ErrCodeComponentNotFound, err, "component %q", id)
	}
	return path, nil
}

// Search returns the radicals whose glyph, pinyin, gloss or tags contain
// term, ignoring case, ordered by number. An empty term matches everything.
func (c *Catalog) Search(term string) []Radical {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return c.Entries()
	}
	var out []Radical
	for _, r := range c.entries {
		if r.matches(term) {
			out = append(out, r)
		}
	}
	return out
}

func (r Radical) matches(term string) bool {
	if r.ID == term || strings.Contains(strings.ToLower(r.Pinyin), term) || strings.Contains(strings.ToLower(r.Gloss), term) {
		return true
	}
	return slices.ContainsFunc(r.Tags, func(tag string) bool { return strings.EqualFold(tag, term) })
}

func isDigits(s string) bool {
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return s != ""
}
