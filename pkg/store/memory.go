package store

import (
	"context"
	"slices"
	"sync"

	"github.com/matzehuels/glyphsmith/pkg/errors"
)

// Memory keeps documents in a map. It is safe for concurrent use.
type Memory struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{docs: make(map[string][]byte)}
}

// Put stores a copy of data.
func (s *Memory) Put(ctx context.Context, name string, data []byte) error {
	if err := errors.ValidateResourceName(name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[name] = slices.Clone(data)
	return nil
}

// Get returns a copy of the stored document.
func (s *Memory) Get(ctx context.Context, name string) ([]byte, error) {
	if err := errors.ValidateResourceName(name); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.docs[name]
	if !ok {
		return nil, notFound(name)
	}
	return slices.Clone(data), nil
}

// Delete removes the document.
func (s *Memory) Delete(ctx context.Context, name string) error {
	if err := errors.ValidateResourceName(name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, name)
	return nil
}

// Names returns the stored names in sorted order.
func (s *Memory) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.docs))
	for name := range s.docs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Close does nothing.
func (s *Memory) Close() error {
	return nil
}

// Ensure Memory implements Store.
var _ Store = (*Memory)(nil)
