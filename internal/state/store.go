package state

import (
	"fmt"
	"sync/atomic"

	"github.com/danieljhkim/backupscope/internal/scope"
)

// Store holds the committed overrides and answers state queries.
//
// Reads are lock free. Replace persists before it swaps, so a failed write
// leaves the previous overrides in place both on disk and in memory.
type Store struct {
	options OptionStore
	current atomic.Pointer[scope.Overrides]
}

// NewStore creates a Store with no overrides.
func NewStore(options OptionStore) *Store {
	s := &Store{options: options}
	s.current.Store(scope.Empty())
	return s
}

// Load replaces the in-memory overrides with the persisted record.
// A missing record means nothing has been committed yet.
func (s *Store) Load() error {
	data, ok, err := s.options.Get(FileListKey)
	if err != nil {
		return fmt.Errorf("failed to read file list: %w", err)
	}
	if !ok {
		s.current.Store(scope.Empty())
		return nil
	}

	o, err := DecodeOverrides(data)
	if err != nil {
		return err
	}
	s.current.Store(o)
	return nil
}

// Current returns the live overrides. The value must not be modified.
func (s *Store) Current() *scope.Overrides {
	return s.current.Load()
}

// Replace persists o and makes it the live overrides.
func (s *Store) Replace(o *scope.Overrides) error {
	if o == nil {
		return fmt.Errorf("replace: overrides cannot be nil")
	}
	data, err := EncodeOverrides(o)
	if err != nil {
		return err
	}
	if err := s.options.Set(FileListKey, data); err != nil {
		return fmt.Errorf("failed to persist file list: %w", err)
	}
	s.current.Store(o)
	return nil
}

// Clear drops every override, making all paths Included.
func (s *Store) Clear() error {
	return s.Replace(scope.Empty())
}

// Resolve returns the effective state of path under the live overrides.
func (s *Store) Resolve(path string) (scope.State, error) {
	if err := scope.ValidatePath(path); err != nil {
		return 0, err
	}
	return s.Current().Resolve(path), nil
}
