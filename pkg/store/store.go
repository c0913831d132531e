// Package store is the filesystem backend for the naming engine. It scopes
// every operation to one managed map directory, guarded by path containment
// checks, and records renames and soft-deletes in a per-run journal.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mapkeep/pkg/journal"
	"mapkeep/pkg/metadata"
	"mapkeep/pkg/safepath"
	"mapkeep/pkg/trash"
)

// PlaceholderContent is written by CreatePlaceholder.
const PlaceholderContent = "placeholder map file, safe to delete\n"

// Store manages map files inside a single directory. Removals go to the
// metadata trash rather than being deleted outright.
type Store struct {
	dir       string
	ext       string
	validator *safepath.Validator
	trasher   *trash.Trasher

	journalPath string
	journal     *journal.Writer
}

// Open prepares the managed directory for one command invocation. The
// directory is created when missing. command labels the run in metadata
// paths, e.g. "save".
func Open(dir, ext, command string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create map directory: %w", err)
	}

	validator, err := safepath.New(dir)
	if err != nil {
		return nil, err
	}

	meta, err := metadata.Init(validator.Root(), validator)
	if err != nil {
		return nil, err
	}

	runID := meta.RunID(command)

	return &Store{
		dir:         validator.Root(),
		ext:         ext,
		validator:   validator,
		trasher:     trash.New(meta, runID, validator),
		journalPath: meta.JournalPath(runID),
	}, nil
}

// Dir returns the absolute path of the managed directory.
func (s *Store) Dir() string {
	return s.dir
}

// PathFor returns the full path for a bare file name.
func (s *Store) PathFor(name string) string {
	return filepath.Join(s.dir, name)
}

// Exists reports whether name exists as a regular file in the directory.
func (s *Store) Exists(name string) (bool, error) {
	path := s.PathFor(name)
	if err := s.validator.ValidatePath(path); err != nil {
		return false, err
	}

	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", name, err)
	}

	return info.Mode().IsRegular(), nil
}

// List returns the map file names in the directory, sorted. Subdirectories,
// including the metadata directory, and files with a foreign extension are
// skipped.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read map directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(entry.Name(), s.ext) {
			continue
		}
		names = append(names, entry.Name())
	}

	return names, nil
}

// Rename moves oldName to newName within the directory and journals the move.
func (s *Store) Rename(oldName, newName string) error {
	if err := s.validator.SafeRename(s.PathFor(oldName), s.PathFor(newName)); err != nil {
		return fmt.Errorf("rename %s to %s: %w", oldName, newName, err)
	}

	return s.log(journal.Entry{Type: "rename", Source: oldName, Dest: newName})
}

// Remove moves name into the run's trash directory and journals the move.
func (s *Store) Remove(name string) error {
	dest, err := s.trasher.Trash(s.PathFor(name))
	if err != nil {
		return fmt.Errorf("remove %s: %w", name, err)
	}

	return s.log(journal.Entry{Type: "trash", Source: name, Dest: dest})
}

// Close releases the journal, if one was opened.
func (s *Store) Close() error {
	if s.journal == nil {
		return nil
	}
	return s.journal.Close()
}

// log appends an entry to the run journal, opening it on first use so runs
// that mutate nothing leave no journal behind.
func (s *Store) log(entry journal.Entry) error {
	if s.journal == nil {
		if err := s.validator.SafeMkdirAll(filepath.Dir(s.journalPath)); err != nil {
			return fmt.Errorf("create journal directory: %w", err)
		}

		w, err := journal.NewWriter(s.journalPath)
		if err != nil {
			return err
		}
		s.journal = w
	}

	return s.journal.Log(entry)
}

// CreatePlaceholder writes an empty placeholder map at path, refusing to
// overwrite an existing file.
func CreatePlaceholder(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if _, err := f.WriteString(PlaceholderContent); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	return f.Close()
}
