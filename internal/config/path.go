package config

import (
	"os"
	"path/filepath"

	"github.com/tarampampam/clparser/internal/env"
)

// FileName holds the name of the configuration file.
const FileName = "clparser.yml"

// DefaultDirPath returns the default directory path where the configuration file is looked for by default.
// Only in case of exception, this function returns an empty string.
func DefaultDirPath() string {
	if v, ok := env.ConfigDir.Lookup(); ok {
		return v
	}

	if v := osSpecificConfigDirPath(); v != "" {
		return v
	}

	if v, err := os.Getwd(); err == nil {
		return v // fallback to the current working directory
	}

	return "" // no default path
}

// DefaultFilePath returns the path to the configuration file in the default directory. The boolean flag is
// false when there is no such regular file.
func DefaultFilePath() (string, bool) {
	var dir = DefaultDirPath()

	if dir == "" {
		return "", false
	}

	var path = filepath.Join(dir, FileName)

	if stat, err := os.Stat(path); err != nil || !stat.Mode().IsRegular() {
		return "", false
	}

	return path, true
}
