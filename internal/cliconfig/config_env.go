package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (NUMSTAT_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("input", os.Getenv("NUMSTAT_INPUT"), &cfg.InputPath)
	s.setString("log-level", os.Getenv("NUMSTAT_LOG_LEVEL"), &cfg.LogLevel)
	s.setBoolFromString("watch", os.Getenv("NUMSTAT_WATCH"), &cfg.Watch)

	if err := s.setDuration("debounce", os.Getenv("NUMSTAT_DEBOUNCE"), &cfg.DebounceDelay); err != nil {
		return err
	}
	return nil
}
