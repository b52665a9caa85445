package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("WORTWIDGET_DATA", t.TempDir())

	c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultRefreshSeconds, c.RefreshIntervalSeconds)
	assert.Equal(t, DefaultDailyGoal, c.DailyGoal)
	assert.Equal(t, DefaultMaxHistoryEntries, c.MaxHistoryEntries)
	assert.Equal(t, []string{"all"}, c.EnabledCategories)
	assert.Equal(t, 60*time.Second, c.RefreshInterval())
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
vocab_dir: /srv/vocab
data_dir: /srv/data
refresh_interval_seconds: 30
daily_goal: 10
enabled_categories: [food, verbs]
time_based_categories: true
time_rules:
  morning: [food, adjectives]
  night: [core_1000]
max_history_entries: 50
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/vocab", c.VocabDir)
	assert.Equal(t, "/srv/data", c.DataDir)
	assert.Equal(t, 30, c.RefreshIntervalSeconds)
	assert.Equal(t, 10, c.DailyGoal)
	assert.Equal(t, 50, c.MaxHistoryEntries)
	assert.True(t, c.TimeBasedCategories)
	assert.Equal(t, []string{"food", "adjectives"}, c.TimeRules["morning"])
	assert.Equal(t, filepath.Join("/srv/data", "history.json"), c.HistoryPath())
	assert.Equal(t, filepath.Join("/srv/data", "progress.json"), c.ProgressPath())
	assert.Equal(t, filepath.Join("/srv/data", "journal.db"), c.JournalPath())
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("refresh_interval_seconds: [not scalar"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefaultDataDirEnvOverride(t *testing.T) {
	t.Setenv("WORTWIDGET_DATA", "/custom/data")

	dir, err := DefaultDataDir()
	require.NoError(t, err)
	assert.Equal(t, "/custom/data", dir)
}

func TestDefaultDataDirXDG(t *testing.T) {
	t.Setenv("WORTWIDGET_DATA", "")
	t.Setenv("XDG_DATA_HOME", "/xdg/share")

	dir, err := DefaultDataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg/share", "wortwidget"), dir)
}

func TestVocabDirDefaultsUnderDataDir(t *testing.T) {
	t.Setenv("WORTWIDGET_DATA", "/d")

	c := Default()
	assert.Equal(t, filepath.Join("/d", "vocabulary"), c.VocabDir)
}
