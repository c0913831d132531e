// Package trash provides soft-delete capability for files in the managed
// directory. Files are moved to .mapkeep/trash/<run-id>/ instead of being
// permanently deleted, so a replaced or deleted map can be recovered by hand.
package trash

import (
	"fmt"
	"os"
	"path/filepath"

	"mapkeep/pkg/metadata"
	"mapkeep/pkg/safepath"
)

// Trasher moves files into a run-specific trash directory instead of
// deleting them.
type Trasher struct {
	trashRoot string // .mapkeep/trash/<run-id>/
	validator *safepath.Validator
}

// New creates a Trasher for the given run. The trash directory itself is
// created lazily on first use, so runs that delete nothing leave no trace.
func New(metaDir *metadata.Dir, runID string, validator *safepath.Validator) *Trasher {
	return &Trasher{
		trashRoot: metaDir.TrashDir(runID),
		validator: validator,
	}
}

// Trash moves the file at path into the trash directory and returns the
// destination path.
func (t *Trasher) Trash(path string) (string, error) {
	if err := t.validator.ValidatePath(path); err != nil {
		return "", fmt.Errorf("validate source for trash: %w", err)
	}

	if err := t.validator.SafeMkdirAll(t.trashRoot); err != nil {
		return "", fmt.Errorf("create trash directory: %w", err)
	}

	dest := t.freeDest(filepath.Base(path))
	if err := t.validator.SafeRename(path, dest); err != nil {
		return "", fmt.Errorf("move to trash: %w", err)
	}

	return dest, nil
}

// freeDest picks a destination name inside the trash dir, suffixing with a
// counter when the same name was already trashed during this run.
func (t *Trasher) freeDest(name string) string {
	dest := filepath.Join(t.trashRoot, name)
	if _, err := os.Lstat(dest); err != nil {
		return dest
	}

	ext := filepath.Ext(name)
	stem := name[:len(name)-len(ext)]
	for n := 1; ; n++ {
		dest = filepath.Join(t.trashRoot, fmt.Sprintf("%s_%d%s", stem, n, ext))
		if _, err := os.Lstat(dest); err != nil {
			return dest
		}
	}
}
