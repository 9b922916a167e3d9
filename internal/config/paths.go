package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Paths contains standard filesystem paths for REK.
type Paths struct {
	// ConfigFile is the path to the config file (~/.rek/config.yaml).
	ConfigFile string

	// HomeDir is the REK home directory (~/.rek).
	HomeDir string
}

// DefaultPaths returns the default paths for REK.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	rekHome := filepath.Join(homeDir, ".rek")

	return &Paths{
		ConfigFile: filepath.Join(rekHome, "config.yaml"),
		HomeDir:    rekHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If REK_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("REK_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
