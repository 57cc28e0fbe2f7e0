package theme

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/pelletier/go-toml/v2"
)

// ThemeConfig represents the raw TOML theme configuration
type ThemeConfig struct {
	Name   string            `toml:"name"`
	Colors map[string]string `toml:"colors"`
}

// colorKeys maps the keys of the [colors] table to theme fields
var colorKeys = map[string]func(*Colors) *tcell.Color{
	"name_text":      func(c *Colors) *tcell.Color { return &c.NameText },
	"name_selected":  func(c *Colors) *tcell.Color { return &c.NameSelected },
	"name_changed":   func(c *Colors) *tcell.Color { return &c.NameChanged },
	"insertion":      func(c *Colors) *tcell.Color { return &c.Insertion },
	"deletion":       func(c *Colors) *tcell.Color { return &c.Deletion },
	"unchanged":      func(c *Colors) *tcell.Color { return &c.Unchanged },
	"step_label":     func(c *Colors) *tcell.Color { return &c.StepLabel },
	"border":         func(c *Colors) *tcell.Color { return &c.Border },
	"title":          func(c *Colors) *tcell.Color { return &c.Title },
	"status_message": func(c *Colors) *tcell.Color { return &c.StatusMessage },
	"status_error":   func(c *Colors) *tcell.Color { return &c.StatusError },
}

// getThemePaths returns the search paths for theme files
func getThemePaths() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return []string{
		filepath.Join(home, ".config", "tui-renamer", "themes"),
		filepath.Join(home, ".local", "share", "tui-renamer", "themes"),
	}
}

// findThemeFile searches for a theme file in standard locations
func findThemeFile(themeName string) (string, error) {
	filename := themeName + ".toml"

	for _, dir := range getThemePaths() {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("theme file not found: %s", filename)
}

// LoadThemeFromFile loads a theme from a TOML file
func LoadThemeFromFile(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var config ThemeConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}

	return configToTheme(config)
}

// LoadTheme loads a theme by name, searching standard theme directories
func LoadTheme(themeName string) (*Theme, error) {
	filePath, err := findThemeFile(themeName)
	if err != nil {
		return nil, err
	}

	return LoadThemeFromFile(filePath)
}

// configToTheme converts a ThemeConfig to a Theme, with fallback to Tokyo
// Night for missing colors. Unknown color keys are an error.
func configToTheme(config ThemeConfig) (*Theme, error) {
	theme := TokyoNight()

	for key, value := range config.Colors {
		field, ok := colorKeys[key]
		if !ok {
			return nil, fmt.Errorf("unknown theme color %q", key)
		}
		if value != "" {
			*field(&theme.Colors) = ParseColor(value)
		}
	}

	if config.Name != "" {
		theme.Name = config.Name
	}
	return theme, nil
}

// LoadThemeOrDefault loads a theme by name, or returns Tokyo Night if not found
func LoadThemeOrDefault(themeName string) *Theme {
	switch themeName {
	case "default":
		return Default()
	case "", "tokyo-night":
		return TokyoNight()
	}

	theme, err := LoadTheme(themeName)
	if err != nil {
		return TokyoNight()
	}
	return theme
}
