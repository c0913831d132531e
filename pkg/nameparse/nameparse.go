// Package nameparse classifies raw user-supplied candidate names.
// Classification is pure string inspection; no filesystem access.
package nameparse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Marker is the trailing character requesting sequential naming.
const Marker = "_"

// memberDigits is the fixed width of a sequence index suffix.
const memberDigits = 3

var (
	// ErrEmptyName is returned when the candidate is empty after trimming.
	ErrEmptyName = errors.New("empty file name")
	// ErrNameTooLong is returned when the resolved name exceeds the limit.
	ErrNameTooLong = errors.New("file name too long")
	// ErrUnknownType is returned when the candidate carries a foreign
	// extension.
	ErrUnknownType = errors.New("unsupported file type")
)

// Kind describes how a candidate name should be interpreted.
type Kind int

const (
	// KindPlain is an ordinary base name.
	KindPlain Kind = iota
	// KindSequential is a base name with the trailing sequential marker,
	// asking for an auto-assigned index.
	KindSequential
	// KindMember is an explicit sequence member reference (base_NNN).
	KindMember
	// KindSelection is an all-digit input selecting a file from the
	// directory listing by position.
	KindSelection
)

// Name is the classification of a raw candidate name. Base never includes
// the marker, a member suffix, or the extension.
type Name struct {
	Kind  Kind
	Base  string
	Index int // member index (KindMember) or listing position (KindSelection)
}

// Classify normalizes raw and classifies it. Interior whitespace runs are
// collapsed to single underscores; an extension other than ext is rejected;
// maxLen bounds the length of the resolved file name (0 disables the check).
func Classify(raw, ext string, maxLen int) (Name, error) {
	name := strings.Join(strings.Fields(raw), Marker)
	if name == "" {
		return Name{}, ErrEmptyName
	}

	if digitsOnly(name) {
		index, err := strconv.Atoi(name)
		if err != nil {
			// Digit run too long to fit an int; no listing is that big.
			return Name{}, fmt.Errorf("%w: %s", ErrNameTooLong, name)
		}
		return Name{Kind: KindSelection, Index: index}, nil
	}

	stem := name
	if dot := strings.IndexByte(name, '.'); dot >= 0 {
		if name[dot:] != ext {
			return Name{}, fmt.Errorf("%w: want %s", ErrUnknownType, ext)
		}
		stem = name[:dot]
	}

	if maxLen > 0 && len(stem)+len(ext) > maxLen {
		return Name{}, fmt.Errorf("%w: %d > %d chars", ErrNameTooLong, len(stem)+len(ext), maxLen)
	}

	if strings.HasSuffix(stem, Marker) {
		return Name{Kind: KindSequential, Base: strings.TrimSuffix(stem, Marker)}, nil
	}

	if base, index, ok := SplitMember(stem); ok {
		return Name{Kind: KindMember, Base: base, Index: index}, nil
	}

	return Name{Kind: KindPlain, Base: stem}, nil
}

// SplitMember splits a stem of the form base_NNN (exactly three trailing
// digits after an underscore) into its base and index.
func SplitMember(stem string) (base string, index int, ok bool) {
	i := strings.LastIndex(stem, Marker)
	if i < 0 {
		return "", 0, false
	}

	suffix := stem[i+1:]
	if len(suffix) != memberDigits || !digitsOnly(suffix) {
		return "", 0, false
	}

	index, err := strconv.Atoi(suffix)
	if err != nil {
		return "", 0, false
	}

	return stem[:i], index, true
}

func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
