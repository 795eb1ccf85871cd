package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(EnvHome, home)
	return home
}

func TestLoad_Defaults(t *testing.T) {
	home := setupHome(t)

	settings, source, err := Load("")

	require.NoError(t, err)
	assert.Empty(t, source)
	assert.True(t, settings.BackgroundRemoval)
	assert.Equal(t, 8, settings.Concurrency)
	assert.Equal(t, home, settings.DataDir)
	assert.Equal(t, FormatTable, settings.Format)
	assert.True(t, settings.Journal)
	assert.Equal(t, 100, settings.MaxLogFiles)
	assert.Empty(t, settings.DefaultBranch)
}

func TestLoad_TOMLFile(t *testing.T) {
	home := setupHome(t)
	content := `default_branch = "develop"
concurrency = 4
background_removal = false
format = "json"
`
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.toml"), []byte(content), 0644))

	settings, source, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "config.toml"), source)
	assert.Equal(t, "develop", settings.DefaultBranch)
	assert.Equal(t, 4, settings.Concurrency)
	assert.False(t, settings.BackgroundRemoval)
	assert.Equal(t, FormatJSON, settings.Format)
	assert.True(t, settings.Journal, "unset keys keep defaults")
}

func TestLoad_JSONFile(t *testing.T) {
	home := setupHome(t)
	path := filepath.Join(home, "custom.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"journal": false, "max_log_files": 5}`), 0644))

	settings, source, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, path, source)
	assert.False(t, settings.Journal)
	assert.Equal(t, 5, settings.MaxLogFiles)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	home := setupHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.toml"), []byte("concurrency = 4\n"), 0644))
	t.Setenv("GALHO_CONCURRENCY", "16")
	t.Setenv("GALHO_DEFAULT_BRANCH", "trunk")

	settings, _, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, 16, settings.Concurrency)
	assert.Equal(t, "trunk", settings.DefaultBranch)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"concurrency too low", "concurrency = 0\n"},
		{"concurrency too high", "concurrency = 65\n"},
		{"unknown format", "format = \"xml\"\n"},
		{"invalid branch name", "default_branch = \"bad name\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := setupHome(t)
			require.NoError(t, os.WriteFile(filepath.Join(home, "config.toml"), []byte(tt.content), 0644))

			_, _, err := Load("")

			require.Error(t, err)
			assert.Contains(t, err.Error(), "config validation failed")
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	setupHome(t)

	_, _, err := Load(filepath.Join(t.TempDir(), "absent.toml"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_MalformedFile(t *testing.T) {
	home := setupHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.toml"), []byte("concurrency = ["), 0644))

	_, _, err := Load("")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestMarshalTOML_RoundTrip(t *testing.T) {
	home := setupHome(t)
	settings, _, err := Load("")
	require.NoError(t, err)
	settings.DefaultBranch = "main"

	data, err := MarshalTOML(settings)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.toml"), data, 0644))

	reloaded, _, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, settings, reloaded)
}

func TestDescribe(t *testing.T) {
	infos := Describe()

	keys := make(map[string]SettingInfo, len(infos))
	for _, info := range infos {
		keys[info.Key] = info
	}
	require.Contains(t, keys, "concurrency")
	assert.Equal(t, "GALHO_CONCURRENCY", keys["concurrency"].Env)
	assert.Equal(t, 8, keys["concurrency"].Default)
	assert.Equal(t, "min=1,max=64", keys["concurrency"].Rule)
	assert.Len(t, infos, len(Defaults()))
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, homeDir, ExpandPath("~"))
	assert.Equal(t, filepath.Join(homeDir, "x"), ExpandPath("~/x"))
	assert.Equal(t, "/abs", ExpandPath("/abs"))
}
