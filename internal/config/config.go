// Package config loads the optional signpost app config (.signpost/config.yml).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/tetherwind/signpost/internal/constants"
)

// Config is the app-level configuration. It tunes where rules live and how
// signpost logs; the rule documents themselves carry everything else.
type Config struct {
	RulesDir string   `yaml:"rules_dir"`
	LogLevel string   `yaml:"log_level"`
	Disabled []string `yaml:"disabled"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		RulesDir: filepath.Join(constants.ProjectDir, constants.RulesSubDir),
		LogLevel: "warn",
	}
}

// Load reads the config file at path. A missing file yields the defaults;
// unknown keys are rejected so typos fail loudly.
func Load(fsys afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.RulesDir == "" {
		cfg.RulesDir = Default().RulesDir
	}

	return cfg, nil
}

// DisabledSet returns the disabled rule identifiers as a lookup set.
func (c *Config) DisabledSet() map[string]bool {
	if len(c.Disabled) == 0 {
		return nil
	}
	set := make(map[string]bool, len(c.Disabled))
	for _, id := range c.Disabled {
		set[id] = true
	}
	return set
}
