package notes

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store persists the full note collection as a single pretty-printed JSON
// array on disk. Every Load reads the whole file and every Save rewrites it;
// there is no caching and no indexing, so a concurrent process always sees
// the last completed write.
type Store struct {
	filePath string
	mu       sync.RWMutex
}

// NewStore opens a store backed by the given file, creating it as an empty
// collection when absent.
func NewStore(filePath string) (*Store, error) {
	s := &Store{filePath: filePath}
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		if err := s.Save([]*Note{}); err != nil {
			return nil, fmt.Errorf("failed to initialize store: %w", err)
		}
	}
	return s, nil
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.filePath
}

// Load reads the full collection from disk. A missing or empty file yields
// an empty collection rather than an error.
func (s *Store) Load() ([]*Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Note{}, nil
		}
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}
	if len(data) == 0 {
		return []*Note{}, nil
	}

	var collection []*Note
	if err := json.Unmarshal(data, &collection); err != nil {
		return nil, fmt.Errorf("failed to parse store file: %w", err)
	}
	if collection == nil {
		collection = []*Note{}
	}
	return collection, nil
}

// Save rewrites the full collection to disk, pretty-printed.
func (s *Store) Save(collection []*Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal notes: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.filePath), 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	if err := os.WriteFile(s.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	return nil
}
