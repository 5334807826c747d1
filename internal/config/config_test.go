package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palettekit/palettekit/internal/runnables"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PALETTEKIT_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	c, err := Load()
	require.NoError(t, err)
	assert.Empty(t, c.Palette.HiddenNamespaces)
	assert.True(t, c.Palette.SmartCase)
	assert.Empty(t, c.Release.Channel)
	assert.Equal(t, runnables.DefaultTaskFile, c.Tasks.File)
	assert.Equal(t, []string{"."}, c.Tasks.Roots)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[palette]
hidden_namespaces = ["debug", "internal"]
smart_case = false

[release]
channel = "stable"

[tasks]
roots = ["/src/one", "/src/two"]
`), 0o644))
	t.Setenv("PALETTEKIT_CONFIG", path)

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"debug", "internal"}, c.Palette.HiddenNamespaces)
	assert.False(t, c.Palette.SmartCase)
	assert.Equal(t, "stable", c.Release.Channel)
	assert.Equal(t, []string{"/src/one", "/src/two"}, c.Tasks.Roots)
	assert.Equal(t, runnables.DefaultTaskFile, c.Tasks.File)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("PALETTEKIT_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("PALETTEKIT_RELEASE_CHANNEL", "preview")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "preview", c.Release.Channel)
}
