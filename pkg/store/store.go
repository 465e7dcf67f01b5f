// Package store persists composed glyph documents under simple names.
//
// A [Store] is the output resource namespace of the composition engine:
// final glyphs are written to it for serving, and nested compositions park
// their temporary intermediate documents in it. Backends:
//
//   - [File]: one file per resource in a directory (CLI and single-host serving)
//   - [Memory]: in-process map (tests, ephemeral servers)
//   - [Redis]: shared key/value store for multi-instance serving
//   - [Mongo]: document collection for deployments that keep glyphs long-term
//
// Names are validated with [errors.ValidateResourceName] by every backend, so
// a name can never address anything outside the store.
//
// [Sanitizing] wraps any store so that every document read back is
// re-sanitized, whoever wrote it.
package store

import (
	"context"

	"github.com/matzehuels/glyphsmith/pkg/errors"
	"github.com/matzehuels/glyphsmith/pkg/svgdoc"
)

// Store is a flat namespace of named documents.
type Store interface {
	// Put stores data under name, replacing any existing document.
	Put(ctx context.Context, name string, data []byte) error

	// Get returns the document stored under name.
	// It fails with NOT_FOUND if there is none.
	Get(ctx context.Context, name string) ([]byte, error)

	// Delete removes the document stored under name.
	// Deleting a missing document is not an error.
	Delete(ctx context.Context, name string) error

	// Close releases backend resources.
	Close() error
}

// notFound builds the error every backend returns for a missing document.
func notFound(name string) error {
	return errors.New(errors.ErrCodeNotFound, "glyph %q not found", name)
}

// IsNotFound reports whether err means the requested document does not exist.
func IsNotFound(err error) bool {
	return errors.Has(err, errors.ErrCodeNotFound)
}

// Sanitizing wraps a Store so that Get always returns a sanitized document.
// Writes pass through unchanged.
type Sanitizing struct {
	Store
}

// WithSanitize returns s wrapped in Sanitizing. Wrapping twice is a no-op.
func WithSanitize(s Store) Store {
	if _, ok := s.(*Sanitizing); ok {
		return s
	}
	return &Sanitizing{Store: s}
}

// Get returns the sanitized document stored under name.
func (s *Sanitizing) Get(ctx context.Context, name string) ([]byte, error) {
	data, err := s.Store.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return svgdoc.Sanitize(data), nil
}

// Ensure Sanitizing implements Store.
var _ Store = (*Sanitizing)(nil)
