package theme

import (
	"github.com/gdamore/tcell/v2"
)

// Colors holds the colors of the preview screen
type Colors struct {
	// Name list
	NameText     tcell.Color
	NameSelected tcell.Color
	NameChanged  tcell.Color

	// Diff spans
	Insertion tcell.Color
	Deletion  tcell.Color
	Unchanged tcell.Color

	// Per-step expansion
	StepLabel tcell.Color

	// Frame
	Border tcell.Color
	Title  tcell.Color

	// Status line
	StatusMessage tcell.Color
	StatusError   tcell.Color
}

// Theme represents a complete color theme
type Theme struct {
	Name   string
	Colors Colors
}

// Default returns a theme using terminal defaults, apart from the diff
// colors which have to stand out
func Default() *Theme {
	return &Theme{
		Name: "default",
		Colors: Colors{
			NameText:      tcell.ColorDefault,
			NameSelected:  tcell.ColorDefault,
			NameChanged:   tcell.ColorDefault,
			Insertion:     tcell.ColorGreen,
			Deletion:      tcell.ColorRed,
			Unchanged:     tcell.ColorDefault,
			StepLabel:     tcell.ColorDefault,
			Border:        tcell.ColorDefault,
			Title:         tcell.ColorDefault,
			StatusMessage: tcell.ColorDefault,
			StatusError:   tcell.ColorRed,
		},
	}
}

// TokyoNight returns the Tokyo Night theme
func TokyoNight() *Theme {
	return &Theme{
		Name: "tokyo-night",
		Colors: Colors{
			NameText:      ParseColor("#c0caf5"), // Light gray-blue
			NameSelected:  ParseColor("#7aa2f7"), // Blue
			NameChanged:   ParseColor("#e0af68"), // Yellow
			Insertion:     ParseColor("#9ece6a"), // Green
			Deletion:      ParseColor("#f7768e"), // Red
			Unchanged:     ParseColor("#565f89"), // Comment gray
			StepLabel:     ParseColor("#bb9af7"), // Magenta
			Border:        ParseColor("#7dcfff"), // Cyan
			Title:         ParseColor("#bb9af7"), // Magenta
			StatusMessage: ParseColor("#9ece6a"), // Green
			StatusError:   ParseColor("#f7768e"), // Red
		},
	}
}

// WithDiffColors returns a copy of t using the given insertion and
// deletion colors
func (t *Theme) WithDiffColors(insertion, deletion tcell.Color) *Theme {
	c := *t
	c.Colors.Insertion = insertion
	c.Colors.Deletion = deletion
	return &c
}
