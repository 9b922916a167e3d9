package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := NewLoader().Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Author)
	assert.Equal(t, "MIT", cfg.License)
	assert.Equal(t, ".", cfg.Directory)
	assert.True(t, cfg.Git)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"author: Jane Doe\nlicense: Apache-2.0\ndirectory: /srv/packages\ngit: false\n"), 0o644))

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", cfg.Author)
	assert.Equal(t, "Apache-2.0", cfg.License)
	assert.Equal(t, "/srv/packages", cfg.Directory)
	assert.False(t, cfg.Git)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("author: File Author\n"), 0o644))

	t.Setenv("REK_AUTHOR", "Env Author")
	t.Setenv("REK_LICENSE", "GPL-3.0")

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Env Author", cfg.Author)
	assert.Equal(t, "GPL-3.0", cfg.License)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("author: [unclosed\n"), 0o644))

	_, err := NewLoader().Load(path)
	assert.Error(t, err)
}
