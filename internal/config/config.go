package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the shell's startup configuration, read once from
// ~/.husk/config.yaml. husk never writes it back; the file is the user's.
type Config struct {
	Aliases     map[string]string `yaml:"aliases,omitempty"`
	Theme       string            `yaml:"theme"`
	PathRefresh string            `yaml:"path_refresh"`
	HistorySize int               `yaml:"history_size"`
}

// Executable-index refresh policies.
const (
	RefreshStartup = "startup" // scan PATH once when the shell starts
	RefreshWatch   = "watch"   // startup scan plus fsnotify invalidation
	RefreshCommand = "command" // rescan before every command
)

const defaultHistorySize = 1000

func Default() *Config {
	return &Config{
		Theme:       "plain",
		PathRefresh: RefreshWatch,
		HistorySize: defaultHistorySize,
		Aliases:     make(map[string]string),
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".husk"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func HistoryPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history"), nil
}

// Load reads the config file if one exists, applies environment overrides
// and normalizes the result. A missing file (or unresolvable home) just
// yields the defaults; a file that exists but won't parse or validate is
// an error.
func Load() (*Config, error) {
	cfg := Default()

	if path, err := ConfigPath(); err == nil {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, err
		}
	}

	if theme := os.Getenv("HUSK_THEME"); theme != "" {
		cfg.Theme = theme
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize fills gaps left by a partial config file and rejects values
// the shell cannot act on.
func (c *Config) normalize() error {
	switch c.PathRefresh {
	case RefreshStartup, RefreshWatch, RefreshCommand:
	case "":
		c.PathRefresh = RefreshWatch
	default:
		return fmt.Errorf("invalid path_refresh %q (want %s, %s or %s)",
			c.PathRefresh, RefreshStartup, RefreshWatch, RefreshCommand)
	}

	if c.HistorySize <= 0 {
		c.HistorySize = defaultHistorySize
	}

	if c.Aliases == nil {
		c.Aliases = make(map[string]string)
	}
	return nil
}
