package diff

import (
	"fmt"
	"strings"
)

// Step is one evaluated operation as shown in a preview: a label for the
// operation and the spans it produced
type Step struct {
	Label  string
	Result Result
}

// BuildLines converts the steps for one name into display lines.
// Without verbose only the final before/after pair is built, with verbose
// every step gets its own pair. This is suitable for both CLI and TUI output.
func BuildLines(original string, steps []Step, verbose bool) []Line {
	var lines []Line

	lines = append(lines, Line{Type: LineTypeHeader, Content: original})

	if len(steps) == 0 {
		lines = append(lines, Line{
			Type:   LineTypeUnchanged,
			Spans:  []Diff{{Text: original, Op: Equal}},
			Indent: 1,
		})
		return lines
	}

	if !verbose {
		first, last := steps[0].Result, steps[len(steps)-1].Result
		if first.Original() == last.Output() {
			lines = append(lines, Line{
				Type:   LineTypeUnchanged,
				Spans:  []Diff{{Text: original, Op: Equal}},
				Indent: 1,
			})
			return lines
		}
		whole := ComputeSemantic(first.Original(), last.Output())
		lines = append(lines, formatStep(whole, 1)...)
		return lines
	}

	changed := 0
	for i, step := range steps {
		label := step.Label
		if label == "" {
			label = "step"
		}
		lines = append(lines, Line{
			Type:    LineTypeSummary,
			Content: fmt.Sprintf("%d. %s", i+1, label),
			Indent:  1,
		})
		if !step.Result.Changed() {
			lines = append(lines, Line{
				Type:   LineTypeUnchanged,
				Spans:  step.Result.Diffs(),
				Indent: 2,
			})
			continue
		}
		changed++
		lines = append(lines, formatStep(step.Result, 2)...)
	}

	lines = append(lines, Line{
		Type:    LineTypeSummary,
		Content: fmt.Sprintf("%d of %d steps changed the name", changed, len(steps)),
		Indent:  1,
	})
	return lines
}

// formatStep creates the before and after lines for one result
func formatStep(r Result, indent int) []Line {
	return []Line{
		{Type: LineTypeBefore, Spans: r.Before(), Indent: indent},
		{Type: LineTypeAfter, Spans: r.After(), Indent: indent},
	}
}

// PlainText flattens a line to text, marking deletions with [-…-] and
// insertions with {+…+}
func PlainText(line Line) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("  ", line.Indent))
	if line.Spans == nil {
		sb.WriteString(line.Content)
		return sb.String()
	}
	for _, d := range line.Spans {
		switch d.Op {
		case Deletion:
			sb.WriteString("[-" + d.Text + "-]")
		case Insertion:
			sb.WriteString("{+" + d.Text + "+}")
		default:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}
