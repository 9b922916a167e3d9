// Package config provides configuration loading and management.
package config

// Config holds prompt defaults for the REK CLI.
// Loaded from ~/.rek/config.yaml; every field can be overridden by a
// REK_-prefixed environment variable.
type Config struct {
	// Author is the default package author offered by the prompts.
	// Env: REK_AUTHOR
	Author string `mapstructure:"author" yaml:"author"`

	// License is the default license offered by the prompts.
	// Env: REK_LICENSE
	License string `mapstructure:"license" yaml:"license"`

	// Directory is the default target directory offered by the prompts.
	// Env: REK_DIRECTORY
	Directory string `mapstructure:"directory" yaml:"directory"`

	// Git is the default answer to the repository-initialization prompt.
	Git bool `mapstructure:"git" yaml:"git"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `rek config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		License:   "MIT",
		Directory: ".",
		Git:       true,
	}
}
