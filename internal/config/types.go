// Package config provides configuration loading and management for commitgate.
//
// Configuration is loaded using Viper, supporting YAML config files and
// environment variable overrides. The package provides sensible defaults
// that work out of the box, with the ability to point the gate at a
// non-PATH cargo binary, pin the workspace directory, and switch to plain
// output for terminals without styling support.
//
// Key types:
//   - [Config] is the root configuration container with all settings
//   - [Loader] handles Viper-based configuration loading
//   - [CargoConfig] contains cargo binary settings
//
// Configuration priority (highest to lowest):
//  1. Environment variables (COMMITGATE_ prefix)
//  2. Config file specified by COMMITGATE_CONFIG_PATH
//  3. User config directory (platform-standard):
//     - Linux: ~/.config/commitgate/config.yaml
//     - macOS: ~/Library/Application Support/commitgate/config.yaml
//     - Windows: %APPDATA%\commitgate\config.yaml
//  4. ./commitgate.yaml (repository-local fallback)
//  5. [DefaultConfig] defaults
//
// The check list itself is not configuration: which commands run, their
// order, and their arguments are compiled in. Config only adapts the gate
// to its host.
package config

// Config represents the root configuration structure.
//
// This is the main configuration container loaded by [Loader] and used
// throughout the application. Use [DefaultConfig] to get sensible defaults.
type Config struct {
	// Cargo contains cargo binary configuration.
	Cargo CargoConfig `mapstructure:"cargo"`

	// Output contains terminal output configuration.
	Output OutputConfig `mapstructure:"output"`
}

// CargoConfig contains cargo binary configuration.
//
// These settings control where the cargo binary lives and where the checks
// run.
type CargoConfig struct {
	// BinaryPath is the path to the cargo binary.
	// Default: "cargo" (assumes cargo is in PATH).
	// Can be overridden with the COMMITGATE_CARGO_PATH environment variable.
	BinaryPath string `mapstructure:"binary_path"`

	// Dir is the working directory the checks run in.
	// Default: "" (inherit the invoking directory; commit hooks run at the
	// repository root).
	Dir string `mapstructure:"dir"`
}

// OutputConfig contains terminal output configuration.
type OutputConfig struct {
	// Plain disables styled output. Useful when the gate's output is
	// captured by a hook wrapper or shown on a terminal without color
	// support. Default: false.
	Plain bool `mapstructure:"plain"`
}

// DefaultConfig returns a new [Config] with sensible defaults.
//
// The defaults assume cargo is on PATH, checks run in the invoking
// directory, and output is styled. They work without any configuration
// file.
func DefaultConfig() *Config {
	return &Config{
		Cargo: CargoConfig{
			BinaryPath: "cargo",
		},
		Output: OutputConfig{
			Plain: false,
		},
	}
}
