package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pstuifzand/tui-renamer/internal/rename"
	"github.com/pstuifzand/tui-renamer/internal/sequence"
	"github.com/pstuifzand/tui-renamer/internal/theme"
)

func newSimScreen(t *testing.T, width, height int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := NewScreenFrom(sim, theme.Default())
	require.NoError(t, err)
	sim.SetSize(width, height)
	t.Cleanup(func() { _ = screen.Close() })
	return screen, sim
}

func rowText(sim tcell.SimulationScreen, y int) string {
	cells, width, _ := sim.GetContents()
	var sb strings.Builder
	for x := 0; x < width; x++ {
		cell := cells[y*width+x]
		if len(cell.Runes) == 0 {
			sb.WriteByte(' ')
			continue
		}
		sb.WriteString(string(cell.Runes))
	}
	return sb.String()
}

func screenText(sim tcell.SimulationScreen) string {
	_, _, height := sim.GetContents()
	rows := make([]string, height)
	for y := range rows {
		rows[y] = rowText(sim, y)
	}
	return strings.Join(rows, "\n")
}

func samplePreviews(t *testing.T, names ...string) []*sequence.ResultSequence {
	t.Helper()
	add := rename.NewAddString()
	add.Prefix = "new_"
	upper := rename.NewChangeCase()
	upper.Casing = rename.Uppercase
	seq := sequence.NewPipeline(add, upper)

	out := make([]*sequence.ResultSequence, len(names))
	for i, name := range names {
		out[i] = seq.Preview(name, i)
	}
	return out
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestPreviewViewLines(t *testing.T) {
	pv := NewPreviewView("Preview", samplePreviews(t, "a"))

	assert.Equal(t, []string{"a", "  [-a-]", "  {+NEW_A+}"}, pv.Lines())
	assert.Equal(t, 1, pv.Changed())
}

func TestPreviewViewToggle(t *testing.T) {
	pv := NewPreviewView("Preview", samplePreviews(t, "a", "b"))
	collapsed := len(pv.Lines())

	assert.False(t, pv.IsExpanded(0))
	pv.HandleKey(key(tcell.KeyEnter))
	assert.True(t, pv.IsExpanded(0))
	assert.Greater(t, len(pv.Lines()), collapsed)

	joined := strings.Join(pv.Lines(), "\n")
	assert.Contains(t, joined, "1. Prefix or Suffix")
	assert.Contains(t, joined, "2 of 2 steps changed the name")

	pv.HandleKey(runeKey(' '))
	assert.False(t, pv.IsExpanded(0))
	assert.Equal(t, collapsed, len(pv.Lines()))

	pv.HandleKey(runeKey('e'))
	assert.True(t, pv.IsExpanded(0))
	assert.True(t, pv.IsExpanded(1))
	pv.HandleKey(runeKey('e'))
	assert.False(t, pv.IsExpanded(1))
}

func TestPreviewViewCursor(t *testing.T) {
	pv := NewPreviewView("Preview", samplePreviews(t, "a", "b", "c"))

	pv.HandleKey(key(tcell.KeyUp))
	assert.Equal(t, 0, pv.Cursor())

	pv.HandleKey(runeKey('j'))
	pv.HandleKey(key(tcell.KeyDown))
	assert.Equal(t, 2, pv.Cursor())
	pv.HandleKey(key(tcell.KeyDown))
	assert.Equal(t, 2, pv.Cursor())

	pv.HandleKey(key(tcell.KeyHome))
	assert.Equal(t, 0, pv.Cursor())
	pv.HandleKey(key(tcell.KeyEnd))
	assert.Equal(t, 2, pv.Cursor())
	pv.HandleKey(runeKey('k'))
	assert.Equal(t, 1, pv.Cursor())
}

func TestPreviewViewQuitKeys(t *testing.T) {
	pv := NewPreviewView("Preview", nil)

	assert.True(t, pv.HandleKey(runeKey('q')))
	assert.True(t, pv.HandleKey(key(tcell.KeyEscape)))
	assert.True(t, pv.HandleKey(key(tcell.KeyCtrlC)))
	assert.False(t, pv.HandleKey(runeKey('x')))
	assert.False(t, pv.HandleKey(key(tcell.KeyDown)))
}

func TestPreviewViewRender(t *testing.T) {
	screen, sim := newSimScreen(t, 50, 10)
	pv := NewPreviewView("Preview", samplePreviews(t, "a", "b"))
	pv.SetStatus("dry run")

	pv.Render(screen)
	screen.Show()

	assert.Contains(t, rowText(sim, 0), "Preview: 2 names, 2 renamed")
	assert.Contains(t, rowText(sim, 1), "▸ a")
	assert.Contains(t, rowText(sim, 2), "- a")
	assert.Contains(t, rowText(sim, 3), "+ NEW_A")
	assert.Contains(t, rowText(sim, 9), "dry run")
}

func TestPreviewViewRenderSpanStyles(t *testing.T) {
	screen, sim := newSimScreen(t, 40, 8)
	pv := NewPreviewView("Preview", samplePreviews(t, "a"))

	pv.Render(screen)
	screen.Show()

	row := rowText(sim, 3)
	idx := strings.Index(row, "NEW_A")
	require.GreaterOrEqual(t, idx, 0)
	col := len([]rune(row[:idx]))

	_, _, style, _ := sim.GetContent(col, 3)
	assert.Equal(t, screen.InsertionStyle(), style)
}

func TestPreviewViewRenderEmpty(t *testing.T) {
	screen, sim := newSimScreen(t, 40, 6)
	pv := NewPreviewView("Preview", nil)

	pv.Render(screen)
	screen.Show()

	assert.Contains(t, screenText(sim), "no names to preview")
	assert.Contains(t, rowText(sim, 0), "0 names, 0 renamed")
}

func TestPreviewViewScrollsToCursor(t *testing.T) {
	names := []string{"a", "b", "c", "d", "e", "f"}
	screen, sim := newSimScreen(t, 40, 8)
	pv := NewPreviewView("Preview", samplePreviews(t, names...))

	pv.Render(screen)
	for range names {
		pv.HandleKey(key(tcell.KeyDown))
	}
	screen.Clear()
	pv.Render(screen)
	screen.Show()

	text := screenText(sim)
	assert.Contains(t, text, "▸ f")
	assert.NotContains(t, text, "▸ a")
}

func TestRunQuits(t *testing.T) {
	screen, sim := newSimScreen(t, 40, 8)
	pv := NewPreviewView("Preview", samplePreviews(t, "a"))

	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	require.NoError(t, Run(screen, pv))
	assert.True(t, pv.IsExpanded(0))
}
