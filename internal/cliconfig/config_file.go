package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	Input    string `toml:"input"`
	LogLevel string `toml:"log_level"`
	Watch    *bool  `toml:"watch"`
	Debounce string `toml:"debounce"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
// A relative input path is resolved against the config file's directory.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	if fc.Input != "" && !filepath.IsAbs(fc.Input) {
		fc.Input = filepath.Join(filepath.Dir(path), fc.Input)
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.numstat/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".numstat", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("input", fc.Input, &cfg.InputPath)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setBool("watch", fc.Watch, &cfg.Watch)

	if err := s.setDuration("debounce", fc.Debounce, &cfg.DebounceDelay); err != nil {
		return err
	}
	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
