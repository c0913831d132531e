package testutil

import (
	"fmt"
	"path/filepath"
	"sort"

	"mapkeep/pkg/naming"
)

// Compile-time interface compliance check
var _ naming.Store = (*MemStore)(nil)

// MemStore is an in-memory naming.Store for engine tests. It records every
// mutation so tests can assert on side effects.
type MemStore struct {
	Files   map[string]bool
	Renames [][2]string
	Removed []string
}

// NewMemStore creates a MemStore pre-populated with the given file names.
func NewMemStore(names ...string) *MemStore {
	files := make(map[string]bool, len(names))
	for _, name := range names {
		files[name] = true
	}
	return &MemStore{Files: files}
}

func (s *MemStore) Exists(name string) (bool, error) {
	return s.Files[name], nil
}

func (s *MemStore) List() ([]string, error) {
	names := make([]string, 0, len(s.Files))
	for name := range s.Files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *MemStore) Rename(oldName, newName string) error {
	if !s.Files[oldName] {
		return fmt.Errorf("rename %s: file does not exist", oldName)
	}
	delete(s.Files, oldName)
	s.Files[newName] = true
	s.Renames = append(s.Renames, [2]string{oldName, newName})
	return nil
}

func (s *MemStore) Remove(name string) error {
	if !s.Files[name] {
		return fmt.Errorf("remove %s: file does not exist", name)
	}
	delete(s.Files, name)
	s.Removed = append(s.Removed, name)
	return nil
}

func (s *MemStore) PathFor(name string) string {
	return filepath.Join("maps", name)
}

// Mutated reports whether any rename or removal was recorded.
func (s *MemStore) Mutated() bool {
	return len(s.Renames) > 0 || len(s.Removed) > 0
}
