package trash

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapkeep/pkg/metadata"
	"mapkeep/pkg/safepath"
)

func newTrasher(t *testing.T) (*Trasher, string) {
	t.Helper()

	root := t.TempDir()
	v, err := safepath.New(root)
	require.NoError(t, err)

	metaDir, err := metadata.Init(v.Root(), v)
	require.NoError(t, err)

	return New(metaDir, "save-1", v), v.Root()
}

func TestTrash_MovesFile(t *testing.T) {
	t.Parallel()

	trasher, root := newTrasher(t)

	src := filepath.Join(root, "old.map")
	require.NoError(t, os.WriteFile(src, []byte("content"), 0o644))

	dest, err := trasher.Trash(src)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, ".mapkeep", "trash", "save-1", "old.map"), dest)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))

	_, err = os.Stat(src)
	assert.True(t, os.IsNotExist(err))
}

func TestTrash_LazyDirectoryCreation(t *testing.T) {
	t.Parallel()

	trasher, root := newTrasher(t)

	_, err := os.Stat(filepath.Join(root, ".mapkeep", "trash", "save-1"))
	assert.True(t, os.IsNotExist(err), "trash dir must not exist before first use")

	src := filepath.Join(root, "old.map")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0o644))
	_, err = trasher.Trash(src)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(root, ".mapkeep", "trash", "save-1"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestTrash_SuffixesRepeatedNames(t *testing.T) {
	t.Parallel()

	trasher, root := newTrasher(t)

	first := filepath.Join(root, "old.map")
	require.NoError(t, os.WriteFile(first, []byte("one"), 0o644))
	firstDest, err := trasher.Trash(first)
	require.NoError(t, err)

	second := filepath.Join(root, "old.map")
	require.NoError(t, os.WriteFile(second, []byte("two"), 0o644))
	secondDest, err := trasher.Trash(second)
	require.NoError(t, err)

	assert.NotEqual(t, firstDest, secondDest)
	assert.Equal(t, "old_1.map", filepath.Base(secondDest))
}

func TestTrash_RejectsOutsidePath(t *testing.T) {
	t.Parallel()

	trasher, _ := newTrasher(t)

	outside := filepath.Join(t.TempDir(), "outside.map")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o644))

	_, err := trasher.Trash(outside)
	assert.ErrorIs(t, err, safepath.ErrPathEscape)
}
