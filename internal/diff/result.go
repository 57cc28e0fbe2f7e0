package diff

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Result is the ordered list of spans one operation produced for one name.
// Joining the Equal and Insertion spans gives the output, joining the
// Equal and Deletion spans gives the input.
type Result struct {
	diffs []Diff
}

// Empty is the result with no spans. Its original and output are both "".
var Empty = Result{}

// NewResult creates a result from spans. The spans are copied.
func NewResult(diffs ...Diff) Result {
	if len(diffs) == 0 {
		return Result{}
	}
	copied := make([]Diff, len(diffs))
	copy(copied, diffs)
	return Result{diffs: copied}
}

// Unchanged returns a result that keeps text as a single Equal span
func Unchanged(text string) Result {
	return NewResult(Diff{Text: text, Op: Equal})
}

// Diffs returns a copy of the spans
func (r Result) Diffs() []Diff {
	out := make([]Diff, len(r.diffs))
	copy(out, r.diffs)
	return out
}

// Len returns the number of spans
func (r Result) Len() int {
	return len(r.diffs)
}

// Original returns the text before the operation
func (r Result) Original() string {
	return r.join(Deletion)
}

// Output returns the text after the operation
func (r Result) Output() string {
	return r.join(Insertion)
}

// Changed reports whether any span inserts or deletes text
func (r Result) Changed() bool {
	for _, d := range r.diffs {
		if d.Op != Equal && d.Text != "" {
			return true
		}
	}
	return false
}

// Before returns the spans that make up the original text
func (r Result) Before() []Diff {
	return r.filter(Deletion)
}

// After returns the spans that make up the output text
func (r Result) After() []Diff {
	return r.filter(Insertion)
}

// OriginalColored renders the original text, wrapping deleted spans in
// <color=#rrggbb> markup
func (r Result) OriginalColored(c colorful.Color) string {
	return Markup(r.Before(), Deletion, c)
}

// OutputColored renders the output text, wrapping inserted spans in
// <color=#rrggbb> markup
func (r Result) OutputColored(c colorful.Color) string {
	return Markup(r.After(), Insertion, c)
}

// join concatenates Equal spans and spans of the given op
func (r Result) join(op Op) string {
	var sb strings.Builder
	for _, d := range r.diffs {
		if d.Op == Equal || d.Op == op {
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}

func (r Result) filter(op Op) []Diff {
	out := make([]Diff, 0, len(r.diffs))
	for _, d := range r.diffs {
		if d.Op == Equal || d.Op == op {
			out = append(out, d)
		}
	}
	return out
}

// Markup renders spans as text, wrapping every non-empty span of the
// highlighted op in a color tag
func Markup(spans []Diff, highlight Op, c colorful.Color) string {
	var sb strings.Builder
	hex := c.Hex()
	for _, d := range spans {
		if d.Op == highlight && highlight != Equal && d.Text != "" {
			sb.WriteString("<color=")
			sb.WriteString(hex)
			sb.WriteString(">")
			sb.WriteString(d.Text)
			sb.WriteString("</color>")
			continue
		}
		sb.WriteString(d.Text)
	}
	return sb.String()
}

// HexColor parses #RRGGBB or #RGB, returning fallback if the value is invalid
func HexColor(value string, fallback colorful.Color) colorful.Color {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "#") {
		value = "#" + value
	}
	c, err := colorful.Hex(value)
	if err != nil {
		return fallback
	}
	return c
}
