// Package config carries the explicit configuration each scheduler
// component receives at construction: source directories, persistence
// targets and learning tunables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied on load when the config file is missing or a field
// is unset.
const (
	DefaultRefreshSeconds    = 60
	DefaultDailyGoal         = 20
	DefaultMaxHistoryEntries = 1000
)

// Config is the application configuration, loaded from a YAML file.
type Config struct {
	// VocabDir holds the read-only vocabulary source documents.
	VocabDir string `yaml:"vocab_dir"`
	// DataDir holds writable state: history.json, progress.json and
	// the event journal.
	DataDir string `yaml:"data_dir"`

	RefreshIntervalSeconds int      `yaml:"refresh_interval_seconds"`
	DailyGoal              int      `yaml:"daily_goal"`
	EnabledCategories      []string `yaml:"enabled_categories"`
	MaxHistoryEntries      int      `yaml:"max_history_entries"`

	// TimeBasedCategories switches the time-of-day category overlay on;
	// TimeRules maps the buckets (morning, afternoon, evening, night)
	// to category lists.
	TimeBasedCategories bool                `yaml:"time_based_categories"`
	TimeRules           map[string][]string `yaml:"time_rules"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	c := Config{}
	c.applyDefaults()
	return c
}

// Load reads the YAML config at path. A missing file yields defaults;
// a malformed file is an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	c.applyDefaults()
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.RefreshIntervalSeconds <= 0 {
		c.RefreshIntervalSeconds = DefaultRefreshSeconds
	}
	if c.DailyGoal <= 0 {
		c.DailyGoal = DefaultDailyGoal
	}
	if c.MaxHistoryEntries <= 0 {
		c.MaxHistoryEntries = DefaultMaxHistoryEntries
	}
	if len(c.EnabledCategories) == 0 {
		c.EnabledCategories = []string{"all"}
	}
	if c.DataDir == "" {
		if dir, err := DefaultDataDir(); err == nil {
			c.DataDir = dir
		}
	}
	if c.VocabDir == "" && c.DataDir != "" {
		c.VocabDir = filepath.Join(c.DataDir, "vocabulary")
	}
}

// RefreshInterval returns the display refresh period.
func (c Config) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshIntervalSeconds) * time.Second
}

// HistoryPath returns the exposure history document path.
func (c Config) HistoryPath() string {
	return filepath.Join(c.DataDir, "history.json")
}

// ProgressPath returns the progress document path.
func (c Config) ProgressPath() string {
	return filepath.Join(c.DataDir, "progress.json")
}

// JournalPath returns the event journal database path.
func (c Config) JournalPath() string {
	return filepath.Join(c.DataDir, "journal.db")
}

// DefaultDataDir resolves the writable data directory in priority
// order: the WORTWIDGET_DATA environment variable, then
// $XDG_DATA_HOME/wortwidget, then ~/.local/share/wortwidget.
func DefaultDataDir() (string, error) {
	if p := os.Getenv("WORTWIDGET_DATA"); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "wortwidget"), nil
}

// DefaultPath returns the default config file location inside the data
// directory.
func DefaultPath() (string, error) {
	dir, err := DefaultDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}
