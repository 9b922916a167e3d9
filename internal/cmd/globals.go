package cmd

import (
	"github.com/blockguard-sf/rek/internal/config"
)

// cliConfig holds the configuration loaded by the root command.
var cliConfig *config.Config

// SetConfig stores the loaded configuration for command implementations.
func SetConfig(cfg *config.Config) {
	cliConfig = cfg
}

// GetConfig returns the loaded configuration, falling back to defaults when
// the root command has not loaded one (unit tests, mainly).
func GetConfig() *config.Config {
	if cliConfig == nil {
		return config.DefaultConfig()
	}
	return cliConfig
}
