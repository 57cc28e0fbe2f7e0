package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

const (
	appName = "tui-renamer"

	DefaultTheme          = "tokyo-night"
	DefaultInsertionColor = "#9ece6a"
	DefaultDeletionColor  = "#f7768e"
)

// ErrInvalidValue is returned by Persist for a value a field can't hold
var ErrInvalidValue = errors.New("invalid config value")

// Config holds application configuration
type Config struct {
	Theme          string            `toml:"theme"`
	InsertionColor string            `toml:"insertion_color"`
	DeletionColor  string            `toml:"deletion_color"`
	PresetFile     string            `toml:"preset_file"`
	Workers        int               `toml:"workers"`
	Settings       map[string]string `toml:"settings"`

	// Session settings (not persisted to TOML, overrides persisted settings)
	sessionSettings map[string]string

	// path the config was loaded from, Save writes back to it
	path string
}

// Load loads the config file from the standard location
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaultConfig(), nil // Return default if can't find config path
	}

	return LoadFromFile(configPath)
}

// LoadFromFile loads config from a specific file
func LoadFromFile(filePath string) (*Config, error) {
	// If file doesn't exist, return default config
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		config := defaultConfig()
		config.path = filePath
		return config, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyDefaults()
	config.path = filePath
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	if !validColor(c.InsertionColor) {
		c.InsertionColor = DefaultInsertionColor
	}
	if !validColor(c.DeletionColor) {
		c.DeletionColor = DefaultDeletionColor
	}
	if c.PresetFile == "" {
		c.PresetFile = defaultPresetFile()
	} else {
		c.PresetFile = expandHome(c.PresetFile)
	}
	if c.Workers < 0 {
		c.Workers = 0
	}
	if c.Settings == nil {
		c.Settings = make(map[string]string)
	}
	if c.sessionSettings == nil {
		c.sessionSettings = make(map[string]string)
	}
}

func validColor(value string) bool {
	_, err := colorful.Hex(value)
	return err == nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// defaultConfig returns the default configuration
func defaultConfig() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func defaultPresetFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "presets.toml")
	}
	return filepath.Join(home, ".local", "share", appName, "presets.toml")
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
}

// GetConfigDir returns the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".config", appName), nil
}

// Path returns the file Save writes to
func (c *Config) Path() string {
	if c.path != "" {
		return c.path
	}
	path, err := getConfigPath()
	if err != nil {
		return ""
	}
	return path
}

// Colors returns the insertion and deletion colors
func (c *Config) Colors() (insertion, deletion colorful.Color) {
	insertion, _ = colorful.Hex(DefaultInsertionColor)
	deletion, _ = colorful.Hex(DefaultDeletionColor)
	if ins, err := colorful.Hex(c.Get("insertion_color")); err == nil {
		insertion = ins
	}
	if del, err := colorful.Hex(c.Get("deletion_color")); err == nil {
		deletion = del
	}
	return insertion, deletion
}

// Set sets a session configuration value
func (c *Config) Set(key, value string) {
	if c.sessionSettings == nil {
		c.sessionSettings = make(map[string]string)
	}
	c.sessionSettings[key] = value
}

// Get retrieves a configuration value, checking session settings first
// (which override persisted settings). The top level fields are
// available under their TOML names. Returns empty string if not found.
func (c *Config) Get(key string) string {
	if val, ok := c.sessionSettings[key]; ok {
		return val
	}

	switch key {
	case "theme":
		return c.Theme
	case "insertion_color":
		return c.InsertionColor
	case "deletion_color":
		return c.DeletionColor
	case "preset_file":
		return c.PresetFile
	case "workers":
		return strconv.Itoa(c.Workers)
	}

	if val, ok := c.Settings[key]; ok {
		return val
	}
	return ""
}

// GetAll returns all configuration values (top level fields, persisted
// settings and session settings). Session settings override the others.
func (c *Config) GetAll() map[string]string {
	result := map[string]string{
		"theme":           c.Theme,
		"insertion_color": c.InsertionColor,
		"deletion_color":  c.DeletionColor,
		"preset_file":     c.PresetFile,
		"workers":         strconv.Itoa(c.Workers),
	}

	for k, v := range c.Settings {
		result[k] = v
	}
	for k, v := range c.sessionSettings {
		result[k] = v
	}

	return result
}

// Persist changes a value that Save writes out. Top level fields are set
// by their TOML names, any other key goes to the settings table.
func (c *Config) Persist(key, value string) error {
	switch key {
	case "theme":
		c.Theme = value
	case "insertion_color", "deletion_color":
		if !validColor(value) {
			return fmt.Errorf("%w: %s must be a hex color, got %q", ErrInvalidValue, key, value)
		}
		if key == "insertion_color" {
			c.InsertionColor = value
		} else {
			c.DeletionColor = value
		}
	case "preset_file":
		c.PresetFile = expandHome(value)
	case "workers":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: workers must be a number >= 0, got %q", ErrInvalidValue, value)
		}
		c.Workers = n
	default:
		if c.Settings == nil {
			c.Settings = make(map[string]string)
		}
		c.Settings[key] = value
	}
	return nil
}

// Save persists the configuration to the TOML file
// Note: session settings are not persisted
func (c *Config) Save() error {
	configPath := c.Path()
	if configPath == "" {
		return fmt.Errorf("failed to get config path")
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
