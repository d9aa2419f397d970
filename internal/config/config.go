// Package config loads runtime settings from a YAML file with
// POTUI_* environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/goccy/go-yaml"
	homedir "github.com/mitchellh/go-homedir"
)

const (
	defaultPageSize   = 10
	defaultSearchFold = "unicode"
)

// Config holds runtime settings for the editor.
type Config struct {
	PageSize   int    `yaml:"page_size"`
	SearchFold string `yaml:"search_fold"`
	LogFile    string `yaml:"log_file"`
	MemoryPath string `yaml:"memory_path"`
	Language   string `yaml:"language"`
}

// DefaultPath is the config file location used when no --config flag
// is given.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "potui", "config.yaml"), nil
}

// Load reads the YAML config at path, falling back to the default
// location when path is empty. A missing file at the default location
// just yields defaults; a missing explicit path is an error.
// Environment variables override file values.
func Load(path string) (Config, error) {
	cfg := Config{
		PageSize:   defaultPageSize,
		SearchFold: defaultSearchFold,
	}

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No config file is fine; run on defaults.
	default:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnv(&cfg)

	if cfg.MemoryPath == "" {
		home, err := homedir.Dir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home directory: %w", err)
		}
		cfg.MemoryPath = filepath.Join(home, ".config", "potui", "memory.db")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("POTUI_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.PageSize = n
		}
	}
	if v := os.Getenv("POTUI_SEARCH_FOLD"); v != "" {
		cfg.SearchFold = v
	}
	if v := os.Getenv("POTUI_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("POTUI_MEMORY_PATH"); v != "" {
		cfg.MemoryPath = v
	}
	if v := os.Getenv("POTUI_LANGUAGE"); v != "" {
		cfg.Language = v
	}
}

func (c Config) Validate() error {
	if c.PageSize < 1 {
		return fmt.Errorf("page_size must be positive: %d", c.PageSize)
	}
	if c.SearchFold != "unicode" && c.SearchFold != "ascii" {
		return fmt.Errorf("search_fold must be unicode or ascii: %s", c.SearchFold)
	}
	if c.MemoryPath == "" {
		return fmt.Errorf("memory_path is required")
	}
	return nil
}
