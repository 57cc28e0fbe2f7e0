package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		want  tcell.Color
	}{
		{"#9ece6a", tcell.NewRGBColor(0x9e, 0xce, 0x6a)},
		{"#fff", tcell.NewRGBColor(255, 255, 255)},
		{"f7768e", tcell.NewRGBColor(0xf7, 0x76, 0x8e)},
		{" rgb(1, 2, 3) ", tcell.NewRGBColor(1, 2, 3)},
		{"rgb(1,2,300)", tcell.ColorDefault},
		{"#12345", tcell.ColorDefault},
		{"#zzzzzz", tcell.ColorDefault},
		{"blue", tcell.ColorDefault},
	}

	for _, tt := range tests {
		if got := ParseColor(tt.input); got != tt.want {
			t.Errorf("ParseColor(%q) = %v, expected %v", tt.input, got, tt.want)
		}
	}
}

func TestFromColorful(t *testing.T) {
	c := colorful.Color{R: 1, G: 0.5, B: 0}
	r, g, b := c.RGB255()
	if got := FromColorful(c); got != tcell.NewRGBColor(int32(r), int32(g), int32(b)) {
		t.Errorf("Unexpected color %v", got)
	}
}

func TestConfigToTheme(t *testing.T) {
	theme, err := configToTheme(ThemeConfig{
		Name:   "custom",
		Colors: map[string]string{"insertion": "#00ff00", "border": ""},
	})
	if err != nil {
		t.Fatalf("configToTheme returned error: %v", err)
	}
	if theme.Name != "custom" {
		t.Errorf("Expected name 'custom', got '%s'", theme.Name)
	}
	if theme.Colors.Insertion != tcell.NewRGBColor(0, 255, 0) {
		t.Errorf("Expected green insertion color, got %v", theme.Colors.Insertion)
	}
	if theme.Colors.Deletion != TokyoNight().Colors.Deletion {
		t.Errorf("Expected unset colors to fall back to Tokyo Night")
	}

	if _, err := configToTheme(ThemeConfig{Colors: map[string]string{"tree_text": "#fff"}}); err == nil {
		t.Errorf("Expected an error for an unknown color key")
	}
}

func TestLoadThemeFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.toml")
	content := "name = \"mine\"\n\n[colors]\ndeletion = \"#ff0000\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	theme, err := LoadThemeFromFile(path)
	if err != nil {
		t.Fatalf("LoadThemeFromFile returned error: %v", err)
	}
	if theme.Colors.Deletion != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("Expected red deletion color, got %v", theme.Colors.Deletion)
	}
}

func TestLoadThemeOrDefault(t *testing.T) {
	if LoadThemeOrDefault("default").Name != "default" {
		t.Errorf("Expected the default theme")
	}
	if LoadThemeOrDefault("does-not-exist-anywhere").Name != "tokyo-night" {
		t.Errorf("Expected Tokyo Night fallback")
	}
}

func TestWithDiffColors(t *testing.T) {
	base := TokyoNight()
	changed := base.WithDiffColors(tcell.ColorBlue, tcell.ColorYellow)

	if changed.Colors.Insertion != tcell.ColorBlue || changed.Colors.Deletion != tcell.ColorYellow {
		t.Errorf("Diff colors were not applied")
	}
	if base.Colors.Insertion == tcell.ColorBlue {
		t.Errorf("WithDiffColors should not modify the receiver")
	}
}
