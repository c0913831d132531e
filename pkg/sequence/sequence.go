// Package sequence computes members of the base_NNN sequential naming
// scheme. Indices are rendered as zero-padded three-digit decimals; the
// scheme never grows a fourth digit.
package sequence

import (
	"errors"
	"fmt"
)

// MaxIndex is the highest index the three-digit scheme can hold.
const MaxIndex = 999

var (
	// ErrExhausted is returned when every index in [0, MaxIndex] is taken.
	ErrExhausted = errors.New("sequence exhausted, no free index below 1000")
	// ErrMemberNotFound is returned when a requested member does not exist.
	ErrMemberNotFound = errors.New("sequence member does not exist")
)

// ExistsFunc reports whether a candidate file name is already taken.
// It is a point-in-time query; no locking is implied.
type ExistsFunc func(name string) (bool, error)

// Format renders a sequence member name, e.g. Format("test", 5, ".map")
// returns "test_005.map".
func Format(base string, index int, ext string) string {
	return fmt.Sprintf("%s_%03d%s", base, index, ext)
}

// NextFree scans indices in ascending order and returns the first member
// name that does not exist yet. The result is deterministic for a fixed
// exists predicate.
func NextFree(base, ext string, exists ExistsFunc) (string, error) {
	for index := 0; index <= MaxIndex; index++ {
		name := Format(base, index, ext)

		taken, err := exists(name)
		if err != nil {
			return "", fmt.Errorf("check %s: %w", name, err)
		}
		if !taken {
			return name, nil
		}
	}

	return "", ErrExhausted
}

// Member validates that the member at index exists and returns its name.
func Member(base, ext string, index int, exists ExistsFunc) (string, error) {
	if index < 0 || index > MaxIndex {
		return "", fmt.Errorf("%w: index %d out of range", ErrMemberNotFound, index)
	}

	name := Format(base, index, ext)

	taken, err := exists(name)
	if err != nil {
		return "", fmt.Errorf("check %s: %w", name, err)
	}
	if !taken {
		return "", fmt.Errorf("%w: %s", ErrMemberNotFound, name)
	}

	return name, nil
}

// Latest returns the highest existing member name for base, used by the
// load flow when the user supplies the sequential marker.
func Latest(base, ext string, exists ExistsFunc) (string, error) {
	latest := ""
	for index := 0; index <= MaxIndex; index++ {
		name := Format(base, index, ext)

		taken, err := exists(name)
		if err != nil {
			return "", fmt.Errorf("check %s: %w", name, err)
		}
		if taken {
			latest = name
		}
	}

	if latest == "" {
		return "", fmt.Errorf("%w: no members named %s", ErrMemberNotFound, Format(base, 0, ext))
	}

	return latest, nil
}
