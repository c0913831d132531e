// Package safepath provides path containment validation so that file
// operations never escape the managed map directory.
package safepath

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrPathEscape indicates an attempt to access a path outside the root.
	ErrPathEscape = errors.New("path escapes root directory")
	// ErrSymlinkEscape indicates a path resolves through a symlink to a
	// location outside the root.
	ErrSymlinkEscape = errors.New("symlink target escapes root directory")
	// ErrInvalidRoot indicates the root path is invalid.
	ErrInvalidRoot = errors.New("invalid root directory")
)

// Validator ensures all paths are contained within a root directory.
type Validator struct {
	root string // absolute, symlink-resolved, cleaned
}

// New creates a Validator for the given root, which must be an existing
// directory.
func New(root string) (*Validator, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRoot, err)
	}

	resolvedRoot, err := filepath.EvalSymlinks(absRoot)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRoot, err)
	}

	info, err := os.Stat(resolvedRoot)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory", ErrInvalidRoot)
	}

	return &Validator{root: filepath.Clean(resolvedRoot)}, nil
}

// Root returns the absolute path to the root directory.
func (v *Validator) Root() string {
	return v.root
}

// ValidatePath checks that path is contained within the root.
func (v *Validator) ValidatePath(path string) error {
	return v.containsPath(path)
}

// SafeMkdirAll creates a directory (and parents) only inside the root.
func (v *Validator) SafeMkdirAll(path string) error {
	if err := v.validateForMutation(path); err != nil {
		return fmt.Errorf("%w: %s", err, path)
	}

	return os.MkdirAll(path, 0o755)
}

// SafeRename renames a file only if both source and destination stay
// within the root.
func (v *Validator) SafeRename(oldPath, newPath string) error {
	if err := v.validateForMutation(oldPath); err != nil {
		return fmt.Errorf("source %w: %s", err, oldPath)
	}
	if err := v.validateForMutation(newPath); err != nil {
		return fmt.Errorf("destination %w: %s", err, newPath)
	}

	return os.Rename(oldPath, newPath)
}

// SafeRemove removes a single file only if it is within the root.
func (v *Validator) SafeRemove(path string) error {
	if err := v.validateForMutation(path); err != nil {
		return fmt.Errorf("%w: %s", err, path)
	}

	return os.Remove(path)
}

func (v *Validator) containsPath(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path", ErrPathEscape)
	}

	if !isSubPath(v.root, filepath.Clean(absPath)) {
		return ErrPathEscape
	}

	return nil
}

// validateForMutation checks the lexical path and additionally resolves the
// deepest existing ancestor through symlinks, so a mutation cannot be
// redirected outside the root by a planted link.
func (v *Validator) validateForMutation(path string) error {
	if err := v.containsPath(path); err != nil {
		return err
	}

	resolved, err := resolveExistingPrefix(path)
	if err != nil {
		return err
	}

	if err := v.containsPath(resolved); err != nil {
		return fmt.Errorf("%w: %s -> %s", ErrSymlinkEscape, path, resolved)
	}

	return nil
}

// resolveExistingPrefix resolves symlinks for path, falling back to the
// nearest existing ancestor when path itself does not exist yet.
func resolveExistingPrefix(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("cannot resolve path: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(absPath)
	if err == nil {
		return resolved, nil
	}
	if !os.IsNotExist(err) {
		return "", fmt.Errorf("cannot resolve symlinks: %w", err)
	}

	parent := filepath.Dir(absPath)
	if parent == absPath {
		return "", fmt.Errorf("cannot resolve symlinks: %w", err)
	}

	return resolveExistingPrefix(parent)
}

// isSubPath reports whether child is contained in parent. Both paths must be
// absolute and clean.
func isSubPath(parent, child string) bool {
	if parent == child {
		return true
	}

	parentWithSep := parent
	if !strings.HasSuffix(parentWithSep, string(filepath.Separator)) {
		parentWithSep += string(filepath.Separator)
	}

	return strings.HasPrefix(child, parentWithSep)
}
