package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/glyphsmith/pkg/errors"
)

const table = `[
  {"num": 61, "id": "心", "pinyin": "xīn", "gloss": "heart", "strokes": 4, "tags": ["heart", "mind"]},
  {"num": 85, "id": "水", "pinyin": "shuǐ", "gloss": "water", "strokes": 4, "tags": ["water"]},
  {"num": 9, "id": "人", "pinyin": "rén", "gloss": "man", "strokes": 2, "tags": ["person"]}
]`

func setup(t *testing.T) *Catalog {
	t.Helper()
	dir := t.TempDir()
	for _, n := range []string{"009", "061", "085", "100"} {
		if err := os.WriteFile(filepath.Join(dir, n+".svg"), []byte("<svg/>"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	c, err := Load(strings.NewReader(table), dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return c
}

func TestResolve(t *testing.T) {
	c := setup(t)

	tests := []struct {
		id   string
		want string
	}{
		{"心", "061.svg"},
		{"061", "061.svg"},
		{"61", "061.svg"},
		{" 85 ", "085.svg"},
		{"9", "009.svg"},
		{"100", "100.svg"},
	}
	for _, tt := range tests {
		got, err := c.Resolve(tt.id)
		if err != nil {
			t.Errorf("Resolve(%q) error: %v", tt.id, err)
			continue
		}
		if want := filepath.Join(c.Dir(), tt.want); got != want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.id, got, want)
		}
	}
}

func TestResolveMissing(t *testing.T) {
	c := setup(t)
	for _, id := range []string{"火", "200", "-1", "0", "6a", ""} {
		if _, err := c.Resolve(id); !errors.Is(err, errors.ErrCodeComponentNotFound) {
			t.Errorf("Resolve(%q) error = %v, want COMPONENT_NOT_FOUND", id, err)
		}
	}
}

func TestDirectoryOnly(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "007.svg"), []byte("<svg/>"), 0644)

	c, err := New(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Resolve("7"); err != nil {
		t.Errorf("numeric id should resolve without a table: %v", err)
	}
	if _, err := c.Resolve("心"); err == nil {
		t.Error("glyph id should not resolve without a table")
	}
}

func TestLookupAndSearch(t *testing.T) {
	c := setup(t)

	r, ok := c.Lookup("061")
	if !ok || r.ID != "心" || r.Gloss != "heart" {
		t.Errorf("Lookup(061) = %+v, %v", r, ok)
	}
	if _, ok := c.Lookup("100"); ok {
		t.Error("numbers without a table entry have no Radical")
	}

	entries := c.Entries()
	if len(entries) != 3 || entries[0].Num != 9 || entries[2].Num != 85 {
		t.Errorf("Entries() not ordered by number: %+v", entries)
	}
	entries[0].ID = "changed"
	if c.Entries()[0].ID != "人" {
		t.Error("Entries() must return a copy")
	}

	tests := map[string][]int{
		"":       {9, 61, 85},
		"WATER":  {85},
		"mind":   {61},
		"xīn":    {61},
		"人":      {9},
		"nothing": nil,
	}
	for term, want := range tests {
		got := c.Search(term)
		if len(got) != len(want) {
			t.Errorf("Search(%q) = %d results, want %d", term, len(got), len(want))
			continue
		}
		for i := range got {
			if got[i].Num != want[i] {
				t.Errorf("Search(%q)[%d] = %d, want %d", term, i, got[i].Num, want[i])
			}
		}
	}
}

func TestMalformed(t *testing.T) {
	tests := map[string]string{
		"not json":     `{"num":`,
		"not an array": `{"num": 1}`,
		"dup number":   `[{"num": 1, "id": "一"}, {"num": 1, "id": "丨"}]`,
		"dup id":       `[{"num": 1, "id": "一"}, {"num": 2, "id": "一"}]`,
		"bad number":   `[{"num": 0, "id": "一"}]`,
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(strings.NewReader(in), t.TempDir()); !errors.Is(err, errors.ErrCodeMalformedCatalog) {
				t.Errorf("error = %v, want MALFORMED_CATALOG", err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "radicals.json")
	os.WriteFile(path, []byte(table), 0644)

	c, err := LoadFile(path, dir)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d", c.Len())
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.json"), dir); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("missing table error = %v", err)
	}
}
