// Package naming drives the interactive save/load name resolution flow.
// The engine owns the decision logic only: reading input, rendering menus
// and touching the filesystem are delegated to injected collaborators, so
// the whole flow can be exercised with scripted responses.
package naming

import (
	"errors"
	"fmt"
	"io"

	"mapkeep/pkg/conflict"
	"mapkeep/pkg/nameparse"
	"mapkeep/pkg/sequence"
)

// Intent selects the flow to run.
type Intent int

const (
	// Save resolves a target for new content, handling conflicts.
	Save Intent = iota
	// Load resolves an existing file.
	Load
)

var (
	// ErrNoInput means the prompter was cancelled before a name was accepted.
	ErrNoInput = errors.New("no file name provided")
	// ErrNotFound means a load target does not exist.
	ErrNotFound = errors.New("file does not exist")
	// ErrAborted means the user chose to abandon the save.
	ErrAborted = errors.New("file selection aborted")
	// ErrDeleted means the run ended by deleting the existing file.
	ErrDeleted = errors.New("existing file deleted")
)

// Prompter collects user input. Implementations render prompts and menus;
// the engine only consumes the returned values. Cancellation is reported as
// an error wrapping io.EOF; any other error is a read failure.
type Prompter interface {
	// ReadName asks for a candidate file name. files is the current
	// directory listing, passed along for display.
	ReadName(files []string) (string, error)
	// Choose asks the user to pick one of the enumerated options and
	// returns the chosen key.
	Choose(prompt string, options []conflict.Option) (string, error)
}

// Store is the filesystem collaborator. Names are bare file names inside
// the managed directory; PathFor turns a name into the final path handed
// back to the caller.
type Store interface {
	Exists(name string) (bool, error)
	List() ([]string, error)
	Rename(oldName, newName string) error
	Remove(name string) error
	PathFor(name string) string
}

// Options configures an Engine.
type Options struct {
	// Extension is the map file extension including the leading dot.
	Extension string
	// MaxNameLen bounds the length of a resolved file name. Zero disables
	// the check.
	MaxNameLen int
}

// Engine orchestrates one naming flow per Run call. It holds no state
// between runs.
type Engine struct {
	store    Store
	prompter Prompter
	ext      string
	maxLen   int
}

// New creates an Engine with the given collaborators.
func New(store Store, prompter Prompter, opts Options) *Engine {
	return &Engine{
		store:    store,
		prompter: prompter,
		ext:      opts.Extension,
		maxLen:   opts.MaxNameLen,
	}
}

// Run drives the flow to a terminal state and returns the resolved path.
//
// Each iteration asks the prompter for a candidate, classifies it, and
// resolves it against the store. Recoverable rejections (empty name, bad
// extension, name too long, out-of-range selection, a "pick a different
// name" conflict choice) loop back to the prompt; everything else ends the
// run. Cancellation is honored at the input step only: once a candidate is
// accepted the flow runs to a terminal state.
func (e *Engine) Run(intent Intent) (string, error) {
	for {
		files, err := e.store.List()
		if err != nil {
			return "", fmt.Errorf("list files: %w", err)
		}

		raw, err := e.prompter.ReadName(files)
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: %v", ErrNoInput, err)
		}
		if err != nil {
			return "", fmt.Errorf("read name: %w", err)
		}

		name, err := nameparse.Classify(raw, e.ext, e.maxLen)
		if err != nil {
			if recoverable(err) {
				continue
			}
			return "", err
		}

		path, retry, err := e.resolve(intent, name, files)
		if err != nil {
			return "", err
		}
		if retry {
			continue
		}
		return path, nil
	}
}

// resolve turns a classified name into a final path. retry reports that the
// candidate was discarded and the prompt should run again.
func (e *Engine) resolve(intent Intent, name nameparse.Name, files []string) (path string, retry bool, err error) {
	switch name.Kind {
	case nameparse.KindSelection:
		if name.Index < 0 || name.Index >= len(files) {
			return "", true, nil
		}
		selected := files[name.Index]
		if intent == Load {
			return e.store.PathFor(selected), false, nil
		}
		return e.commitSave(selected, e.baseOf(selected))

	case nameparse.KindSequential:
		if intent == Save {
			// A fresh member by construction; no conflict possible.
			fileName, err := sequence.NextFree(name.Base, e.ext, e.store.Exists)
			if err != nil {
				return "", false, err
			}
			return e.store.PathFor(fileName), false, nil
		}
		fileName, err := sequence.Latest(name.Base, e.ext, e.store.Exists)
		if err != nil {
			return "", false, err
		}
		return e.store.PathFor(fileName), false, nil

	case nameparse.KindMember:
		if intent == Load {
			fileName, err := sequence.Member(name.Base, e.ext, name.Index, e.store.Exists)
			if err != nil {
				return "", false, err
			}
			return e.store.PathFor(fileName), false, nil
		}
		return e.commitSave(sequence.Format(name.Base, name.Index, e.ext), name.Base)

	default: // KindPlain
		fileName := name.Base + e.ext
		if intent == Load {
			taken, err := e.store.Exists(fileName)
			if err != nil {
				return "", false, fmt.Errorf("check %s: %w", fileName, err)
			}
			if !taken {
				return "", false, fmt.Errorf("%w: %s", ErrNotFound, fileName)
			}
			return e.store.PathFor(fileName), false, nil
		}
		return e.commitSave(fileName, name.Base)
	}
}

// commitSave checks a save candidate for a conflict and, when one exists,
// applies the user's conflict decision, performing the renames and
// removals the decision calls for through the store.
func (e *Engine) commitSave(fileName, base string) (path string, retry bool, err error) {
	taken, err := e.store.Exists(fileName)
	if err != nil {
		return "", false, fmt.Errorf("check %s: %w", fileName, err)
	}
	if !taken {
		return e.store.PathFor(fileName), false, nil
	}

	decision, err := conflict.Resolve(fileName, base, e.ext, e.store.Exists, e.prompter.Choose)
	if err != nil {
		return "", false, err
	}

	switch decision.Kind {
	case conflict.Replace:
		if err := e.store.Remove(decision.Target); err != nil {
			return "", false, fmt.Errorf("replace %s: %w", decision.Target, err)
		}
		return e.store.PathFor(fileName), false, nil

	case conflict.SequenceExisting:
		if err := e.store.Rename(decision.FreedName, decision.ExistingTarget); err != nil {
			return "", false, fmt.Errorf("move %s into sequence: %w", decision.FreedName, err)
		}
		return e.store.PathFor(decision.FreedName), false, nil

	case conflict.SequenceNew:
		return e.store.PathFor(decision.Target), false, nil

	case conflict.Retry:
		return "", true, nil

	case conflict.Delete:
		if err := e.store.Remove(decision.Target); err != nil {
			return "", false, fmt.Errorf("delete %s: %w", decision.Target, err)
		}
		return "", false, fmt.Errorf("%w: %s", ErrDeleted, decision.Target)

	default:
		return "", false, ErrAborted
	}
}

// baseOf derives the sequence base from a listed file name, so conflicts on
// an explicit member continue the same family.
func (e *Engine) baseOf(fileName string) string {
	stem := fileName
	if len(e.ext) > 0 && len(stem) > len(e.ext) && stem[len(stem)-len(e.ext):] == e.ext {
		stem = stem[:len(stem)-len(e.ext)]
	}

	if base, _, ok := nameparse.SplitMember(stem); ok {
		return base
	}
	return stem
}

func recoverable(err error) bool {
	return errors.Is(err, nameparse.ErrEmptyName) ||
		errors.Is(err, nameparse.ErrNameTooLong) ||
		errors.Is(err, nameparse.ErrUnknownType)
}

// ResolveFileName runs the flow and collapses every failure to absence,
// the contract simple callers rely on. Diagnostic detail is available via
// Engine.Run directly.
func ResolveFileName(e *Engine, isSaving bool) (string, bool) {
	intent := Load
	if isSaving {
		intent = Save
	}

	path, err := e.Run(intent)
	if err != nil {
		return "", false
	}
	return path, true
}
