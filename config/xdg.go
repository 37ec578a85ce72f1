package config

import (
	"os"
	"path/filepath"
)

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultConfigPath returns the config path: COHMETRIX_CONFIG when set,
// else config.toml in the XDG config home.
func DefaultConfigPath() string {
	if v := os.Getenv("COHMETRIX_CONFIG"); v != "" {
		return v
	}
	return filepath.Join(XDGConfigHome(), "cohmetrix", "config.toml")
}
