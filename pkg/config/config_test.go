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
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, 5, c.Engine.MaxSuggestions)
	assert.Equal(t, 2, c.Engine.MaxEditDistance)
	assert.Equal(t, 10, c.Engine.DefaultLimit)
	assert.Equal(t, 4, c.Engine.LoadWorkers)
	assert.Equal(t, 64, c.Server.MaxLimit)
	assert.Equal(t, 256, c.Server.MaxQuery)
}

func TestLoadConfigKeepsDefaultsForMissingKeys(t *testing.T) {
	path := writeConfig(t, "[engine]\nmax_suggestions = 8\n\n[cli]\nshow_scores = false\n")

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8, c.Engine.MaxSuggestions)
	assert.Equal(t, 2, c.Engine.MaxEditDistance)
	assert.False(t, c.CLI.ShowScores)
	assert.Equal(t, 64, c.Server.MaxLimit)
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	// a wrongly typed value fails strict decoding; valid keys are salvaged
	path := writeConfig(t, "[engine]\nmax_suggestions = \"many\"\nmax_edit_distance = 1\n\n[server]\nmax_limit = 16\n")

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, c.Engine.MaxSuggestions)
	assert.Equal(t, 1, c.Engine.MaxEditDistance)
	assert.Equal(t, 16, c.Server.MaxLimit)
}

func TestLoadConfigUnparseable(t *testing.T) {
	path := writeConfig(t, "[engine\nthis is not toml")

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
}

func TestInitConfigCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	c, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
	assert.FileExists(t, path)

	reloaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, c, reloaded)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	c := DefaultConfig()
	c.Engine.LoadWorkers = 9
	c.CLI.DefaultLimit = 3

	require.NoError(t, SaveConfig(c, path))
	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, c, loaded)
}

func TestLoadConfigWithPriorityCustomPath(t *testing.T) {
	path := writeConfig(t, "[cli]\ndefault_limit = 3\n")

	c, used, err := LoadConfigWithPriority(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, 3, c.CLI.DefaultLimit)
}
