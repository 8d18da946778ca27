package configpaths

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG_CONFIG_HOME is not used on windows")
	}
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	p, err := DefaultConfigPath("yml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "gmmplugingen", "gmmplugingen.yaml"), p)

	p, err = DefaultConfigPath("toml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "gmmplugingen", "gmmplugingen.toml"), p)

	p, err = DefaultConfigPath("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "gmmplugingen", "gmmplugingen.json"), p)
}

func TestConfigCandidatePaths(t *testing.T) {
	jsonPaths, yamlPaths, tomlPaths := ConfigCandidatePaths("custom.toml")

	require.NotEmpty(t, tomlPaths)
	assert.Equal(t, "custom.toml", tomlPaths[0], "the user path comes first")
	assert.NotContains(t, jsonPaths, "custom.toml")
	assert.NotContains(t, yamlPaths, "custom.toml")

	for _, p := range yamlPaths {
		ext := filepath.Ext(p)
		assert.True(t, ext == ".yaml" || ext == ".yml", p)
	}

	jsonPaths, _, _ = ConfigCandidatePaths("settings")
	assert.Equal(t, "settings", jsonPaths[0])
}
