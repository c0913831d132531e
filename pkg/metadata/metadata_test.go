package metadata

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapkeep/pkg/safepath"
)

func newDir(t *testing.T) *Dir {
	t.Helper()

	root := t.TempDir()
	v, err := safepath.New(root)
	require.NoError(t, err)

	d, err := Init(v.Root(), v)
	require.NoError(t, err)
	return d
}

func TestInit_CreatesMetadataDirectory(t *testing.T) {
	t.Parallel()

	d := newDir(t)

	info, err := os.Stat(d.Root())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, DirName, filepath.Base(d.Root()))
}

func TestInit_IsIdempotent(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	v, err := safepath.New(root)
	require.NoError(t, err)

	first, err := Init(v.Root(), v)
	require.NoError(t, err)
	second, err := Init(v.Root(), v)
	require.NoError(t, err)

	assert.Equal(t, first.Root(), second.Root())
}

func TestPaths(t *testing.T) {
	t.Parallel()

	d := newDir(t)

	assert.Equal(t, filepath.Join(d.Root(), "trash", "save-1"), d.TrashDir("save-1"))
	assert.Equal(t, filepath.Join(d.Root(), "journal", "save-1.jsonl"), d.JournalPath("save-1"))
}

func TestRunID_Format(t *testing.T) {
	t.Parallel()

	d := newDir(t)

	runID := d.RunID("save")
	assert.Regexp(t, regexp.MustCompile(`^save-\d{8}T\d{6}$`), runID)
}
