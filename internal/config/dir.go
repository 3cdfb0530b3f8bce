package config

import (
	"os"
	"path/filepath"
)

const (
	ConfigDirEnv   = "ENVDIFF_CONFIG_DIR"
	ConfigSubdir   = "envdiff"
	ConfigFileName = "config.yaml"
)

// ConfigDir resolves the directory of the global settings file, first match
// wins: $ENVDIFF_CONFIG_DIR, $XDG_CONFIG_HOME/envdiff, ~/.config/envdiff,
// ./envdiff.
func ConfigDir() string {
	if d := os.Getenv(ConfigDirEnv); d != "" {
		return d
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); filepath.IsAbs(xdg) {
		return filepath.Join(xdg, ConfigSubdir)
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, ".config", ConfigSubdir)
	}
	return filepath.Join(".", ConfigSubdir)
}

// GlobalPath is the user wide settings file.
func GlobalPath() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}
