package conflict_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapkeep/pkg/conflict"
	"mapkeep/pkg/sequence"
)

func existing(names ...string) sequence.ExistsFunc {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return func(name string) (bool, error) {
		return set[name], nil
	}
}

func chooser(key string) conflict.ChooseFunc {
	return func(string, []conflict.Option) (string, error) {
		return key, nil
	}
}

func TestResolve_SequenceExisting(t *testing.T) {
	t.Parallel()

	d, err := conflict.Resolve("test.map", "test", ".map",
		existing("test.map"), chooser(conflict.ChoiceSequenceExisting))
	require.NoError(t, err)

	assert.Equal(t, conflict.SequenceExisting, d.Kind)
	assert.Equal(t, "test_000.map", d.ExistingTarget)
	assert.Equal(t, "test.map", d.FreedName)
}

func TestResolve_SequenceExisting_SkipsTakenMembers(t *testing.T) {
	t.Parallel()

	d, err := conflict.Resolve("test.map", "test", ".map",
		existing("test.map", "test_000.map", "test_001.map"),
		chooser(conflict.ChoiceSequenceExisting))
	require.NoError(t, err)

	assert.Equal(t, "test_002.map", d.ExistingTarget)
}

func TestResolve_SequenceNew(t *testing.T) {
	t.Parallel()

	d, err := conflict.Resolve("test.map", "test", ".map",
		existing("test.map", "test_000.map"), chooser(conflict.ChoiceSequenceNew))
	require.NoError(t, err)

	assert.Equal(t, conflict.SequenceNew, d.Kind)
	assert.Equal(t, "test_001.map", d.Target)
}

func TestResolve_Replace(t *testing.T) {
	t.Parallel()

	d, err := conflict.Resolve("test.map", "test", ".map",
		existing("test.map"), chooser(conflict.ChoiceReplace))
	require.NoError(t, err)

	assert.Equal(t, conflict.Replace, d.Kind)
	assert.Equal(t, "test.map", d.Target)
}

func TestResolve_Retry(t *testing.T) {
	t.Parallel()

	d, err := conflict.Resolve("test.map", "test", ".map",
		existing("test.map"), chooser(conflict.ChoiceRetry))
	require.NoError(t, err)

	assert.Equal(t, conflict.Retry, d.Kind)
}

func TestResolve_Delete(t *testing.T) {
	t.Parallel()

	d, err := conflict.Resolve("test.map", "test", ".map",
		existing("test.map"), chooser(conflict.ChoiceDelete))
	require.NoError(t, err)

	assert.Equal(t, conflict.Delete, d.Kind)
	assert.Equal(t, "test.map", d.Target)
}

func TestResolve_UnknownKeyAborts(t *testing.T) {
	t.Parallel()

	d, err := conflict.Resolve("test.map", "test", ".map",
		existing("test.map"), chooser("zzz"))
	require.NoError(t, err)

	assert.Equal(t, conflict.Abort, d.Kind)
}

func TestResolve_ChooseErrorPropagates(t *testing.T) {
	t.Parallel()

	boom := errors.New("input closed")
	failing := func(string, []conflict.Option) (string, error) { return "", boom }

	_, err := conflict.Resolve("test.map", "test", ".map", existing("test.map"), failing)
	assert.ErrorIs(t, err, boom)
}

func TestResolve_ExhaustedSequencePropagates(t *testing.T) {
	t.Parallel()

	all := func(string) (bool, error) { return true, nil }

	_, err := conflict.Resolve("test.map", "test", ".map", all,
		chooser(conflict.ChoiceSequenceExisting))
	assert.ErrorIs(t, err, sequence.ErrExhausted)
}

func TestOptions_EnumerateAllChoices(t *testing.T) {
	t.Parallel()

	opts := conflict.Options("test.map")

	keys := make([]string, 0, len(opts))
	for _, opt := range opts {
		keys = append(keys, opt.Key)
	}

	assert.Equal(t, []string{
		conflict.ChoiceReplace,
		conflict.ChoiceSequenceExisting,
		conflict.ChoiceSequenceNew,
		conflict.ChoiceRetry,
		conflict.ChoiceDelete,
		conflict.ChoiceAbort,
	}, keys)
}
