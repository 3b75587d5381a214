package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ConfigPathEnv names the variable that overrides the config file location.
const ConfigPathEnv = EnvPrefix + "CONFIG"

// GetConfigDir returns the path to the indeedsearch configuration directory.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".indeedsearch"), nil
}

// DefaultPath returns $INDEEDSEARCH_CONFIG as seen through lookup when set, otherwise
// config.yaml in the configuration directory. A nil lookup reads the process environment.
func DefaultPath(lookup LookupFunc) (string, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if p, ok := lookup(ConfigPathEnv); ok && p != "" {
		return p, nil
	}
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// ResolvePath picks the config file to load. An explicit path, or one named by
// $INDEEDSEARCH_CONFIG, must exist; the default file in the configuration directory
// may be absent. An empty path means no file is read.
func ResolvePath(explicit string, lookup LookupFunc) (path string, required bool) {
	if explicit != "" {
		return explicit, true
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if p, ok := lookup(ConfigPathEnv); ok && p != "" {
		return p, true
	}
	p, err := DefaultPath(lookup)
	if err != nil {
		return "", false
	}
	return p, false
}

// Load builds a Config from defaults, the YAML file at path and the environment.
// A missing file is an error only when required is true, as for a path given
// explicitly on the command line.
func Load(path string, required bool, lookup LookupFunc) (*Config, error) {
	cfg := New()

	if path != "" {
		err := ShallowMergeYAML(cfg, path)
		switch {
		case err == nil:
		case errors.Is(err, fs.ErrNotExist) && !required:
		default:
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(lookup); err != nil {
		return nil, err
	}
	return cfg, nil
}

// EnsureLogDir creates the parent directory of the configured log file, if any.
func (lc LoggingConfig) EnsureLogDir() error {
	if lc.File == "" {
		return nil
	}
	logDir := filepath.Dir(lc.File)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return fmt.Errorf("failed to create log directory %q: %w", logDir, err)
	}
	return nil
}
