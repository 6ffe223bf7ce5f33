//go:build !darwin && !windows

package config

import (
	"os"
	"path/filepath"
)

// osSpecificConfigDirPath determines the path to the directory where the configuration file is looked for by default
// on the Linux (and other XDG-compatible) operating systems.
func osSpecificConfigDirPath() string {
	if v, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok && v != "" {
		return v
	}

	if v, ok := os.LookupEnv("HOME"); ok && v != "" {
		return filepath.Join(v, ".config")
	}

	return ""
}
