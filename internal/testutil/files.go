package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateFile writes content to path, creating parent directories as needed.
func CreateFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// CreateFiles creates empty files with the given names inside dir.
func CreateFiles(t *testing.T, dir string, names ...string) {
	t.Helper()

	for _, name := range names {
		CreateFile(t, filepath.Join(dir, name), "")
	}
}
