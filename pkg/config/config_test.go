package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "mapkeep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverlaysFileOntoDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "directory: /data/maps\nmaxNameLength: 50\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/maps", cfg.Directory)
	assert.Equal(t, 50, cfg.MaxNameLength)
	assert.Equal(t, ".map", cfg.Extension)
	assert.Equal(t, 4, cfg.ListColumns)
}

func TestLoad_NormalizesExtensionDot(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "extension: sav\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ".sav", cfg.Extension)
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "directory: [unclosed\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsNegativeNameLength(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "maxNameLength: -1\n")

	_, err := Load(path)
	assert.Error(t, err)
}
