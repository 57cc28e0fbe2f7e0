package ui

import (
	"github.com/mattn/go-runewidth"
)

// Widths are display columns, not bytes or runes: wide runes (CJK, most
// emoji) take two columns and combining marks take none.

// RuneWidth returns the display width of r. Control and combining
// characters count as zero.
func RuneWidth(r rune) int {
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 0
}

// StringWidth returns the display width of s
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// TruncateToWidth cuts s to at most maxWidth columns without splitting a
// rune
func TruncateToWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	width := 0
	for i, r := range s {
		rw := RuneWidth(r)
		if width+rw > maxWidth {
			return s[:i]
		}
		width += rw
	}
	return s
}

// TruncateToWidthWithEllipsis cuts s to maxWidth columns, ending in "..."
// when anything was cut
func TruncateToWidthWithEllipsis(s string, maxWidth int) string {
	if StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return TruncateToWidth(s, maxWidth)
	}
	return TruncateToWidth(s, maxWidth-3) + "..."
}
