// Package conflict decides how a save should proceed when its target path
// already exists. The policy only names target paths; every filesystem
// effect is performed by the caller.
package conflict

import (
	"fmt"

	"mapkeep/pkg/sequence"
)

// Choice keys understood by Resolve.
const (
	ChoiceReplace          = "r"
	ChoiceSequenceExisting = "m"
	ChoiceSequenceNew      = "c"
	ChoiceRetry            = "n"
	ChoiceDelete           = "d"
	ChoiceAbort            = "q"
)

// Option is one enumerated choice presented to the user. Rendering is the
// caller's concern.
type Option struct {
	Key   string
	Label string
}

// Options returns the enumerated choices for a conflict on name.
func Options(name string) []Option {
	return []Option{
		{Key: ChoiceReplace, Label: "replace " + name},
		{Key: ChoiceSequenceExisting, Label: "move existing " + name + " into the sequence, keep this name"},
		{Key: ChoiceSequenceNew, Label: "save new content as the next sequence member"},
		{Key: ChoiceRetry, Label: "pick a different name"},
		{Key: ChoiceDelete, Label: "delete existing " + name},
		{Key: ChoiceAbort, Label: "abort"},
	}
}

// Kind enumerates conflict decisions.
type Kind int

const (
	// Abort abandons the save.
	Abort Kind = iota
	// Replace removes the on-disk file and keeps the requested name.
	Replace
	// SequenceExisting renames the on-disk file into the sequence and
	// frees the requested name for the new content.
	SequenceExisting
	// SequenceNew saves the new content as the next free sequence member.
	SequenceNew
	// Retry discards this candidate and asks for a new name.
	Retry
	// Delete removes the on-disk file and ends the run without a result.
	Delete
)

// Decision is the outcome of resolving one conflict. It is constructed per
// conflict event and consumed immediately by the caller.
type Decision struct {
	Kind           Kind
	ExistingTarget string // SequenceExisting: new name for the on-disk file
	FreedName      string // SequenceExisting: name freed for the new content
	Target         string // SequenceNew: name for the new content; Replace/Delete: the on-disk file
}

// ChooseFunc asks the user to pick one of the enumerated options and
// returns the chosen key.
type ChooseFunc func(prompt string, options []Option) (string, error)

// Resolve maps the user's choice for an existing save target into a
// Decision. Sequence targets are computed here; no filesystem effect is
// performed. No state is retained across calls.
func Resolve(requested, base, ext string, exists sequence.ExistsFunc, choose ChooseFunc) (Decision, error) {
	prompt := fmt.Sprintf("%s already exists", requested)

	key, err := choose(prompt, Options(requested))
	if err != nil {
		return Decision{}, err
	}

	switch key {
	case ChoiceReplace:
		return Decision{Kind: Replace, Target: requested}, nil

	case ChoiceSequenceExisting:
		target, err := sequence.NextFree(base, ext, exists)
		if err != nil {
			return Decision{}, err
		}
		return Decision{Kind: SequenceExisting, ExistingTarget: target, FreedName: requested}, nil

	case ChoiceSequenceNew:
		target, err := sequence.NextFree(base, ext, exists)
		if err != nil {
			return Decision{}, err
		}
		return Decision{Kind: SequenceNew, Target: target}, nil

	case ChoiceRetry:
		return Decision{Kind: Retry}, nil

	case ChoiceDelete:
		return Decision{Kind: Delete, Target: requested}, nil

	default:
		return Decision{Kind: Abort}, nil
	}
}
