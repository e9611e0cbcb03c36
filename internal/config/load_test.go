package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chtmp runs the test from a fresh temp directory so Load's config file
// handling never touches the real working directory.
func chtmp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(orig))
	})
	return dir
}

func TestLoadDefaults(t *testing.T) {
	dir := chtmp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "cards", cfg.Cards.Dir)
	assert.Equal(t, "data.json", cfg.Data.File)
	assert.Equal(t, 10, cfg.Study.UnitsPerTheme)
	assert.Equal(t, 3, cfg.Study.ReviewValidated)
	assert.Equal(t, 3, cfg.Study.ValidStreakDays)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
	assert.Equal(t, "info", cfg.Server.LogLevel)

	// First run materializes the defaults for editing.
	_, err = os.Stat(filepath.Join(dir, "config.yaml"))
	assert.NoError(t, err)
}

func TestLoadFromFile(t *testing.T) {
	dir := chtmp(t)
	content := `
cards:
  dir: decks
study:
  units_per_theme: 5
  valid_streak_days: 4
server:
  log_level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "decks", cfg.Cards.Dir)
	assert.Equal(t, 5, cfg.Study.UnitsPerTheme)
	assert.Equal(t, 4, cfg.Study.ValidStreakDays)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "data.json", cfg.Data.File, "unset keys keep defaults")
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := chtmp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("study:\n  units_per_theme: 5\n"), 0o644))
	t.Setenv("RECALLBOX_STUDY_UNITS_PER_THEME", "7")
	t.Setenv("RECALLBOX_DATA_FILE", "elsewhere.json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Study.UnitsPerTheme)
	assert.Equal(t, "elsewhere.json", cfg.Data.File)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	chtmp(t)
	t.Setenv("RECALLBOX_SERVER_LOG_LEVEL", "loud")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsZeroPoolSize(t *testing.T) {
	chtmp(t)
	t.Setenv("RECALLBOX_STUDY_UNITS_PER_THEME", "0")

	_, err := Load()
	assert.Error(t, err)
}
