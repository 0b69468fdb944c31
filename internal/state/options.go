package state

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/danieljhkim/backupscope/internal/fsops"
)

// OptionStore persists named values.
type OptionStore interface {
	// Get returns the value stored under key. The boolean is false when
	// nothing has been stored yet.
	Get(key string) ([]byte, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error
}

// FileOptionStore implements OptionStore as a single JSON document on disk.
type FileOptionStore struct {
	fs   fsops.FS
	path string
	mu   sync.Mutex
}

// NewFileOptionStore creates a new FileOptionStore backed by path.
func NewFileOptionStore(fs fsops.FS, path string) *FileOptionStore {
	return &FileOptionStore{fs: fs, path: path}
}

// Get returns the value stored under key.
func (s *FileOptionStore) Get(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, false, err
	}
	value, ok := doc[key]
	if !ok {
		return nil, false, nil
	}
	return []byte(value), true, nil
}

// Set stores value under key and rewrites the document atomically.
func (s *FileOptionStore) Set(key string, value []byte) error {
	if !json.Valid(value) {
		return fmt.Errorf("option %q: value is not valid JSON", key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	doc[key] = json.RawMessage(value)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal options: %w", err)
	}
	if err := s.fs.AtomicWrite(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write options: %w", err)
	}
	return nil
}

func (s *FileOptionStore) load() (map[string]json.RawMessage, error) {
	exists, err := s.fs.Exists(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to check options: %w", err)
	}
	if !exists {
		return make(map[string]json.RawMessage), nil
	}

	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read options: %w", err)
	}

	doc := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal options: %w", err)
	}
	return doc, nil
}

// MemoryOptionStore implements OptionStore in memory.
type MemoryOptionStore struct {
	mu     sync.Mutex
	values map[string][]byte
}

// NewMemoryOptionStore creates an empty MemoryOptionStore.
func NewMemoryOptionStore() *MemoryOptionStore {
	return &MemoryOptionStore{values: make(map[string][]byte)}
}

func (s *MemoryOptionStore) Get(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (s *MemoryOptionStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = append([]byte(nil), value...)
	return nil
}
