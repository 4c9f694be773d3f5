package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// envConfigPath names an explicit config file, bypassing the search order.
const envConfigPath = "COMMITGATE_CONFIG_PATH"

// Loader handles Viper-based configuration loading.
//
// Create with [NewLoader], then call [Loader.Load] for the standard search
// order or [Loader.LoadFromFile] for an explicit path. A Loader is meant
// for a single load.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new [Loader] with a fresh Viper instance.
func NewLoader() *Loader {
	return &Loader{v: viper.New()}
}

// prepare registers defaults and environment bindings on the underlying
// Viper instance. Defaults double as the key registry that makes
// AutomaticEnv pick the variables up.
func (l *Loader) prepare() {
	defaults := DefaultConfig()
	l.v.SetDefault("cargo.binary_path", defaults.Cargo.BinaryPath)
	l.v.SetDefault("cargo.dir", defaults.Cargo.Dir)
	l.v.SetDefault("output.plain", defaults.Output.Plain)

	l.v.SetEnvPrefix("COMMITGATE")
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.v.AutomaticEnv()
	l.v.BindEnv("cargo.binary_path", "COMMITGATE_CARGO_PATH")
}

// Load reads configuration using the standard search order: an explicit
// file named by COMMITGATE_CONFIG_PATH, then the user config directory,
// then ./commitgate.yaml, then pure defaults. Environment variables
// override file values in every case.
func (l *Loader) Load() (*Config, error) {
	if path := os.Getenv(envConfigPath); path != "" {
		return l.LoadFromFile(path)
	}

	l.prepare()

	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
		break
	}

	return l.unmarshal()
}

// LoadFromFile reads configuration from an explicit file path. Environment
// variables still take precedence over file values.
func (l *Loader) LoadFromFile(path string) (*Config, error) {
	l.prepare()

	l.v.SetConfigFile(path)
	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	return l.unmarshal()
}

func (l *Loader) unmarshal() (*Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// searchPaths returns the implicit config file locations in priority order.
func searchPaths() []string {
	var paths []string
	if path, err := DefaultConfigPath(); err == nil {
		paths = append(paths, path)
	}
	paths = append(paths, "commitgate.yaml")
	return paths
}

// ConfigDir returns the platform-standard configuration directory for
// commitgate (for example ~/.config/commitgate on Linux).
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine user config directory: %w", err)
	}
	return filepath.Join(base, "commitgate"), nil
}

// DefaultConfigPath returns the full path of the config file inside
// [ConfigDir].
func DefaultConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}
