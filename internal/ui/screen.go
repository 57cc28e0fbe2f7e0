package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/pstuifzand/tui-renamer/internal/theme"
)

// Screen manages the tcell screen and rendering
type Screen struct {
	tcellScreen tcell.Screen
	width       int
	height      int
	Theme       *theme.Theme
}

// NewScreen creates and initializes a terminal screen using t
func NewScreen(t *theme.Theme) (*Screen, error) {
	tcellScreen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	return NewScreenFrom(tcellScreen, t)
}

// NewScreenFrom wraps an existing tcell screen, for example a
// tcell.SimulationScreen, and initializes it
func NewScreenFrom(tcellScreen tcell.Screen, t *theme.Theme) (*Screen, error) {
	if err := tcellScreen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	if t == nil {
		t = theme.Default()
	}

	width, height := tcellScreen.Size()
	return &Screen{
		tcellScreen: tcellScreen,
		width:       width,
		height:      height,
		Theme:       t,
	}, nil
}

// Close closes the screen
func (s *Screen) Close() error {
	s.tcellScreen.Fini()
	return nil
}

// Clear clears the entire screen
func (s *Screen) Clear() {
	s.tcellScreen.Clear()
}

// SetCell sets a cell at the given position
func (s *Screen) SetCell(x, y int, r rune, style tcell.Style) {
	if x >= 0 && x < s.width && y >= 0 && y < s.height {
		s.tcellScreen.SetContent(x, y, r, nil, style)
	}
}

// DrawString draws text at x, y and returns the number of columns used.
// Wide runes take two columns.
func (s *Screen) DrawString(x, y int, text string, style tcell.Style) int {
	col := 0
	for _, r := range text {
		w := RuneWidth(r)
		if w == 0 {
			continue
		}
		s.SetCell(x+col, y, r, style)
		col += w
	}
	return col
}

// DrawStringLimited draws text, truncating it to maxWidth columns
func (s *Screen) DrawStringLimited(x, y int, text string, maxWidth int, style tcell.Style) int {
	if maxWidth <= 0 {
		return 0
	}
	return s.DrawString(x, y, TruncateToWidth(text, maxWidth), style)
}

// PollEvent waits for the next event
func (s *Screen) PollEvent() tcell.Event {
	return s.tcellScreen.PollEvent()
}

// Show shows the screen
func (s *Screen) Show() {
	s.tcellScreen.Show()
}

// Sync redraws the whole terminal, used after a resize
func (s *Screen) Sync() {
	s.tcellScreen.Sync()
}

// Size returns the width and height of the screen
func (s *Screen) Size() (int, int) {
	s.width, s.height = s.tcellScreen.Size()
	return s.width, s.height
}

// NameStyle returns the style for a name in the list
func (s *Screen) NameStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.NameText)
}

// SelectedStyle returns the style for the name under the cursor
func (s *Screen) SelectedStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.NameSelected).Bold(true).Reverse(true)
}

// ChangedStyle returns the style for the header of a renamed name
func (s *Screen) ChangedStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.NameChanged).Bold(true)
}

// InsertionStyle returns the style for inserted text
func (s *Screen) InsertionStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.Insertion).Bold(true)
}

// DeletionStyle returns the style for deleted text
func (s *Screen) DeletionStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.Deletion).StrikeThrough(true)
}

// UnchangedStyle returns the style for kept text
func (s *Screen) UnchangedStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.Unchanged)
}

// StepLabelStyle returns the style for step labels
func (s *Screen) StepLabelStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.StepLabel).Italic(true)
}

// BorderStyle returns the style for the frame
func (s *Screen) BorderStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.Border)
}

// TitleStyle returns the style for the frame title
func (s *Screen) TitleStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.Title).Bold(true)
}

// StatusStyle returns the style for the status line
func (s *Screen) StatusStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.StatusMessage)
}

// ErrorStyle returns the style for error messages
func (s *Screen) ErrorStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.StatusError).Bold(true)
}

// drawBox draws a single line border
func drawBox(screen *Screen, x, y, width, height int, style tcell.Style) {
	right, bottom := x+width-1, y+height-1
	for i := x + 1; i < right; i++ {
		screen.SetCell(i, y, '─', style)
		screen.SetCell(i, bottom, '─', style)
	}
	for i := y + 1; i < bottom; i++ {
		screen.SetCell(x, i, '│', style)
		screen.SetCell(right, i, '│', style)
	}
	screen.SetCell(x, y, '┌', style)
	screen.SetCell(right, y, '┐', style)
	screen.SetCell(x, bottom, '└', style)
	screen.SetCell(right, bottom, '┘', style)
}
