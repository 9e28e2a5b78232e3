// internal/config/config.go
//
// User settings for the viewer, stored as YAML in the platform config
// directory (e.g. ~/.config/mosaiq/config.yaml). Review sessions themselves
// are never persisted; only preferences survive a restart.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// AppDir is the directory name under the user config root.
	AppDir = "mosaiq"

	configFile = "config.yaml"
)

// Settings models config.yaml.
type Settings struct {
	// MinSlotsMatched is the minimum number of distinct slots a discovered
	// set must fill before it qualifies during a review scan.
	MinSlotsMatched int `yaml:"min_slots_matched"`

	// Layout is the cell layout the viewer starts with:
	// horizontal, vertical or grid.
	Layout string `yaml:"layout"`

	// ShowJournal toggles the journal panel at the bottom of the screen.
	ShowJournal bool `yaml:"show_journal"`
}

// Config couples loaded settings with the file they came from.
type Config struct {
	path     string
	Settings Settings
}

func defaultSettings() Settings {
	return Settings{
		MinSlotsMatched: 2,
		Layout:          "horizontal",
		ShowJournal:     true,
	}
}

// DefaultDir returns the per-user configuration directory for the viewer.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: locate user config dir: %w", err)
	}
	return filepath.Join(base, AppDir), nil
}

// Load reads config.yaml from dir, filling in defaults when the file is
// missing or fields are unset.
func Load(dir string) (*Config, error) {
	c := &Config{
		path:     filepath.Join(dir, configFile),
		Settings: defaultSettings(),
	}
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", c.path, err)
	}
	if err := yaml.Unmarshal(data, &c.Settings); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", c.path, err)
	}
	if c.Settings.MinSlotsMatched < 1 {
		c.Settings.MinSlotsMatched = defaultSettings().MinSlotsMatched
	}
	if c.Settings.Layout == "" {
		c.Settings.Layout = defaultSettings().Layout
	}
	return c, nil
}

// Path returns the on-disk location of the config file.
func (c *Config) Path() string { return c.path }

// Save writes the current settings back to config.yaml, creating the
// directory if needed.
func (c *Config) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("config: ensure dir: %w", err)
	}
	data, err := yaml.Marshal(c.Settings)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", c.path, err)
	}
	return nil
}
