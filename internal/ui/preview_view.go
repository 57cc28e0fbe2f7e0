package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/pstuifzand/tui-renamer/internal/diff"
	"github.com/pstuifzand/tui-renamer/internal/sequence"
)

// viewLine is one row of the preview and the entry it belongs to
type viewLine struct {
	entry int
	line  diff.Line
}

// PreviewView shows a batch of previewed names. Each name shows its
// original and new form; Enter expands a name into its individual steps.
type PreviewView struct {
	entries  []*sequence.ResultSequence
	expanded []bool
	title    string
	status   string

	lines        []viewLine
	entryStart   []int
	cursor       int
	scrollOffset int
	pageHeight   int
}

// NewPreviewView creates a view over entries
func NewPreviewView(title string, entries []*sequence.ResultSequence) *PreviewView {
	pv := &PreviewView{
		entries:    entries,
		expanded:   make([]bool, len(entries)),
		title:      title,
		pageHeight: 10,
	}
	pv.rebuild()
	return pv
}

// SetStatus sets the text shown in the bottom border
func (pv *PreviewView) SetStatus(status string) {
	pv.status = status
}

// Cursor returns the index of the selected entry
func (pv *PreviewView) Cursor() int {
	return pv.cursor
}

// IsExpanded reports whether entry shows its steps
func (pv *PreviewView) IsExpanded(entry int) bool {
	return entry >= 0 && entry < len(pv.expanded) && pv.expanded[entry]
}

// Changed returns the number of entries whose name changes
func (pv *PreviewView) Changed() int {
	n := 0
	for _, rs := range pv.entries {
		if rs.Changed() {
			n++
		}
	}
	return n
}

// rebuild lays out all rows from the entries and their expansion state
func (pv *PreviewView) rebuild() {
	pv.lines = pv.lines[:0]
	pv.entryStart = make([]int, len(pv.entries))

	for i, rs := range pv.entries {
		pv.entryStart[i] = len(pv.lines)
		for _, line := range diff.BuildLines(rs.OriginalName(), rs.Steps(), pv.expanded[i]) {
			pv.lines = append(pv.lines, viewLine{entry: i, line: line})
		}
	}
}

// HandleKey processes a key press. It returns true when the view should
// close.
func (pv *PreviewView) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		pv.moveCursor(-1)
	case tcell.KeyDown:
		pv.moveCursor(1)
	case tcell.KeyPgUp, tcell.KeyCtrlU:
		pv.moveCursor(-pv.pageHeight / 2)
	case tcell.KeyPgDn, tcell.KeyCtrlD:
		pv.moveCursor(pv.pageHeight / 2)
	case tcell.KeyHome:
		pv.moveCursor(-len(pv.entries))
	case tcell.KeyEnd:
		pv.moveCursor(len(pv.entries))
	case tcell.KeyEnter:
		pv.Toggle(pv.cursor)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'k':
			pv.moveCursor(-1)
		case 'j':
			pv.moveCursor(1)
		case ' ':
			pv.Toggle(pv.cursor)
		case 'e':
			pv.ExpandAll(!pv.allExpanded())
		}
	}
	return false
}

// Toggle expands or collapses the steps of entry
func (pv *PreviewView) Toggle(entry int) {
	if entry < 0 || entry >= len(pv.entries) {
		return
	}
	pv.expanded[entry] = !pv.expanded[entry]
	pv.rebuild()
	pv.keepCursorVisible()
}

// ExpandAll expands or collapses every entry
func (pv *PreviewView) ExpandAll(expand bool) {
	for i := range pv.expanded {
		pv.expanded[i] = expand
	}
	pv.rebuild()
	pv.keepCursorVisible()
}

func (pv *PreviewView) allExpanded() bool {
	for _, e := range pv.expanded {
		if !e {
			return false
		}
	}
	return len(pv.expanded) > 0
}

func (pv *PreviewView) moveCursor(delta int) {
	if len(pv.entries) == 0 {
		return
	}
	pv.cursor = clamp(pv.cursor+delta, 0, len(pv.entries)-1)
	pv.keepCursorVisible()
}

// keepCursorVisible scrolls so all rows of the selected entry fit, or at
// least its first row
func (pv *PreviewView) keepCursorVisible() {
	if len(pv.entries) == 0 {
		pv.scrollOffset = 0
		return
	}
	start := pv.entryStart[pv.cursor]
	end := len(pv.lines)
	if pv.cursor+1 < len(pv.entryStart) {
		end = pv.entryStart[pv.cursor+1]
	}

	if end-pv.scrollOffset > pv.pageHeight {
		pv.scrollOffset = end - pv.pageHeight
	}
	if start < pv.scrollOffset {
		pv.scrollOffset = start
	}
	pv.scrollOffset = clamp(pv.scrollOffset, 0, max(0, len(pv.lines)-1))
}

// Render draws the view over the whole screen
func (pv *PreviewView) Render(screen *Screen) {
	width, height := screen.Size()
	if width < 20 || height < 5 {
		return
	}

	drawBox(screen, 0, 0, width, height, screen.BorderStyle())

	title := fmt.Sprintf(" %s: %d names, %d renamed ", pv.title, len(pv.entries), pv.Changed())
	screen.DrawStringLimited(2, 0, title, width-4, screen.TitleStyle())

	pv.pageHeight = height - 2
	pv.keepCursorVisible()
	pv.renderContent(screen, 1, 1, width-2, pv.pageHeight)

	footer := " j/k: move | Enter: steps | e: expand all | q: quit "
	if pv.status != "" {
		footer = " " + pv.status + " |" + footer
	}
	screen.DrawStringLimited(2, height-1, TruncateToWidthWithEllipsis(footer, width-4), width-4, screen.StatusStyle())
}

func (pv *PreviewView) renderContent(screen *Screen, x, y, width, height int) {
	if len(pv.lines) == 0 {
		screen.DrawStringLimited(x+1, y, "no names to preview", width-1, screen.UnchangedStyle())
		return
	}

	end := min(pv.scrollOffset+height, len(pv.lines))
	for i := pv.scrollOffset; i < end; i++ {
		pv.renderLine(screen, x, y+i-pv.scrollOffset, width, pv.lines[i])
	}

	if len(pv.lines) > height {
		barY := y + pv.scrollOffset*height/len(pv.lines)
		screen.SetCell(x+width-1, barY, '█', screen.BorderStyle())
	}
}

func (pv *PreviewView) renderLine(screen *Screen, x, y, width int, vl viewLine) {
	line := vl.line
	col := x + 1 + 2*line.Indent
	limit := x + width - 1

	switch line.Type {
	case diff.LineTypeHeader:
		marker := "▸ "
		if pv.expanded[vl.entry] {
			marker = "▾ "
		}
		style := screen.NameStyle()
		if pv.entries[vl.entry].Changed() {
			style = screen.ChangedStyle()
		}
		if vl.entry == pv.cursor {
			style = screen.SelectedStyle()
		}
		screen.DrawStringLimited(col, y, marker+line.Content, limit-col, style)

	case diff.LineTypeSummary:
		screen.DrawStringLimited(col, y, line.Content, limit-col, screen.StepLabelStyle())

	case diff.LineTypeBefore, diff.LineTypeAfter, diff.LineTypeUnchanged:
		prefix := map[diff.LineType]string{
			diff.LineTypeBefore:    "- ",
			diff.LineTypeAfter:     "+ ",
			diff.LineTypeUnchanged: "= ",
		}[line.Type]
		col += screen.DrawStringLimited(col, y, prefix, limit-col, screen.UnchangedStyle())
		for _, span := range line.Spans {
			if col >= limit {
				break
			}
			col += screen.DrawStringLimited(col, y, span.Text, limit-col, pv.spanStyle(screen, span.Op, line.Type))
		}
	}
}

func (pv *PreviewView) spanStyle(screen *Screen, op diff.Op, lineType diff.LineType) tcell.Style {
	switch {
	case op == diff.Insertion:
		return screen.InsertionStyle()
	case op == diff.Deletion:
		return screen.DeletionStyle()
	case lineType == diff.LineTypeUnchanged:
		return screen.UnchangedStyle()
	default:
		return screen.NameStyle()
	}
}

// Lines returns the rows as plain text, deletions marked [-…-] and
// insertions {+…+}
func (pv *PreviewView) Lines() []string {
	out := make([]string, len(pv.lines))
	for i, vl := range pv.lines {
		out[i] = strings.TrimRight(diff.PlainText(vl.line), " ")
	}
	return out
}

// Run shows view on screen until the user closes it
func Run(screen *Screen, view *PreviewView) error {
	for {
		screen.Clear()
		view.Render(screen)
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if view.HandleKey(ev) {
				return nil
			}
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
