package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	appName    = "airstatus"
	configFile = "config.yaml"
)

// Config holds launcher settings for the scanner subprocess and the
// dashboard. Values from the config file can be overridden by flags.
type Config struct {
	// Interpreter is the Python interpreter used to run the scanner.
	// Empty means auto-resolve: the bootstrap virtualenv interpreter if
	// present, otherwise "python3" from PATH.
	Interpreter string `yaml:"interpreter,omitempty"`

	// Scanner is the path to the scanner script (main.py).
	Scanner string `yaml:"scanner,omitempty"`

	// MinRSSI is the minimum signal strength passed to the scanner as
	// AIRSTATUS_MIN_RSSI. Weaker beacons are ignored.
	MinRSSI int `yaml:"min_rssi"`

	// Debug enables the scanner's debug output and the raw-payload
	// trailer in the dashboard (AIRSTATUS_DEBUG).
	Debug bool `yaml:"debug"`

	// UpdateSec is the scanner poll interval in seconds
	// (AIRSTATUS_UPDATE_SEC).
	UpdateSec float64 `yaml:"update_sec"`

	// NameHints are device-name substrings the scanner matches when no
	// manufacturer frame is present (AIRSTATUS_NAME_HINTS).
	NameHints []string `yaml:"name_hints,omitempty"`
}

// Default returns a Config with the launcher's default values.
func Default() *Config {
	return &Config{
		Interpreter: "",
		Scanner:     "main.py",
		MinRSSI:     -100,
		Debug:       true,
		UpdateSec:   1,
	}
}

// Dir returns the configuration directory, following XDG conventions:
// $XDG_CONFIG_HOME/airstatus or $HOME/.config/airstatus.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

// Path returns the full path to the configuration file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// DataDir returns the data directory used for the bootstrap virtualenv:
// $XDG_DATA_HOME/airstatus or $HOME/.local/share/airstatus.
func DataDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", appName), nil
}

// VenvDir returns the path of the private virtualenv managed by
// `airstatus setup`.
func VenvDir() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "venv"), nil
}

// ResolveInterpreter returns the interpreter to launch the scanner with.
// An explicit setting wins; otherwise the bootstrap virtualenv is
// preferred when it exists, falling back to "python3" from PATH.
func (c *Config) ResolveInterpreter() string {
	if c.Interpreter != "" {
		return c.Interpreter
	}
	if venv, err := VenvDir(); err == nil {
		python := filepath.Join(venv, "bin", "python")
		if _, err := os.Stat(python); err == nil {
			return python
		}
	}
	return "python3"
}

// Load reads the configuration from the given path. A missing file is
// not an error: defaults are returned so first runs work unconfigured.
// If path is empty, the default config path is used.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to the given path, creating the
// directory if needed. If path is empty, the default config path is
// used.
func (c *Config) Save(path string) error {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
