// Package metadata manages the .mapkeep/ directory used for safety
// infrastructure inside a managed map directory.
package metadata

import (
	"fmt"
	"path/filepath"
	"time"

	"mapkeep/pkg/safepath"
)

// DirName is the name of the metadata directory inside the managed dir.
const DirName = ".mapkeep"

// Dir provides access to the .mapkeep/ metadata directory structure.
type Dir struct {
	root      string // absolute path to .mapkeep/
	validator *safepath.Validator
}

// Init creates and returns a Dir for the given managed root.
// It creates the .mapkeep/ directory if it does not already exist.
func Init(targetRoot string, validator *safepath.Validator) (*Dir, error) {
	metaRoot := filepath.Join(targetRoot, DirName)

	if err := validator.SafeMkdirAll(metaRoot); err != nil {
		return nil, fmt.Errorf("create metadata directory: %w", err)
	}

	return &Dir{
		root:      metaRoot,
		validator: validator,
	}, nil
}

// Root returns the absolute path to the .mapkeep/ directory.
func (d *Dir) Root() string {
	return d.root
}

// TrashDir returns the trash directory path for a given run ID.
func (d *Dir) TrashDir(runID string) string {
	return filepath.Join(d.root, "trash", runID)
}

// JournalPath returns the journal file path for a given run ID.
func (d *Dir) JournalPath(runID string) string {
	return filepath.Join(d.root, "journal", runID+".jsonl")
}

// RunID generates an identifier for one invocation of a command,
// e.g. "save-20260831T143022".
func (d *Dir) RunID(command string) string {
	return fmt.Sprintf("%s-%s", command, time.Now().UTC().Format("20060102T150405"))
}
