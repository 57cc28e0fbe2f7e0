package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/pstuifzand/tui-renamer/internal/diff"
	"github.com/pstuifzand/tui-renamer/internal/fsrename"
	"github.com/pstuifzand/tui-renamer/internal/sequence"
)

// painter colors diff spans for terminal output
type painter struct {
	insertion *color.Color
	deletion  *color.Color
	label     *color.Color
	warn      *color.Color
	ok        *color.Color
}

func newPainter(insertion, deletion colorful.Color) *painter {
	ir, ig, ib := insertion.RGB255()
	dr, dg, db := deletion.RGB255()
	return &painter{
		insertion: color.RGB(int(ir), int(ig), int(ib)),
		deletion:  color.RGB(int(dr), int(dg), int(db)).Add(color.CrossedOut),
		label:     color.New(color.FgCyan),
		warn:      color.New(color.FgYellow),
		ok:        color.New(color.FgGreen),
	}
}

func (o *rootOptions) painter() *painter {
	ins, del := o.cfg.Colors()
	return newPainter(ins, del)
}

// spans renders spans, coloring insertions and deletions
func (p *painter) spans(spans []diff.Diff) string {
	var sb strings.Builder
	for _, d := range spans {
		switch d.Op {
		case diff.Insertion:
			sb.WriteString(p.insertion.Sprint(d.Text))
		case diff.Deletion:
			sb.WriteString(p.deletion.Sprint(d.Text))
		default:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}

// line renders one preview line
func (p *painter) line(line diff.Line) string {
	indent := strings.Repeat("  ", line.Indent)
	switch line.Type {
	case diff.LineTypeHeader:
		return indent + line.Content
	case diff.LineTypeSummary:
		return indent + p.label.Sprint(line.Content)
	case diff.LineTypeBefore:
		return indent + "- " + p.spans(line.Spans)
	case diff.LineTypeAfter:
		return indent + "+ " + p.spans(line.Spans)
	case diff.LineTypeUnchanged:
		return indent + "= " + p.spans(line.Spans)
	default:
		return ""
	}
}

// writeSteps prints every name with the spans of each step
func (p *painter) writeSteps(w io.Writer, previews []*sequence.ResultSequence) {
	for i, rs := range previews {
		if i > 0 {
			fmt.Fprintln(w)
		}
		for _, line := range diff.BuildLines(rs.OriginalName(), rs.Steps(), true) {
			fmt.Fprintln(w, p.line(line))
		}
	}
}

// nameChange is one row of the preview table
type nameChange struct {
	before, after string
}

func changesFromPreviews(previews []*sequence.ResultSequence) []nameChange {
	rows := make([]nameChange, len(previews))
	for i, rs := range previews {
		rows[i] = nameChange{before: rs.OriginalName(), after: rs.NewName()}
	}
	return rows
}

// changesFromPlan uses the full names, extensions included
func changesFromPlan(plan *fsrename.Plan) []nameChange {
	rows := make([]nameChange, len(plan.Names))
	for i, name := range plan.Names {
		rows[i] = nameChange{before: name, after: plan.NewName(i)}
	}
	return rows
}

// previewTable renders the before and after name of every row
func (p *painter) previewTable(rows []nameChange) string {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"#", "Original", "New"})

	changed := 0
	for i, row := range rows {
		whole := diff.ComputeSemantic(row.before, row.after)
		newName := "="
		if row.before != row.after {
			changed++
			newName = p.spans(whole.After())
		}
		tbl.AppendRow(table.Row{i + 1, p.spans(whole.Before()), newName})
	}

	tbl.AppendFooter(table.Row{"", fmt.Sprintf("%s names", formatCount(len(rows))), fmt.Sprintf("%s renamed", formatCount(changed))})
	return tbl.Render()
}

// conflictTable renders the names a plan can't rename
func (p *painter) conflictTable(conflicts []fsrename.Conflict) string {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"Name", "New name", "Reason"})
	for _, c := range conflicts {
		tbl.AppendRow(table.Row{c.OldName, c.NewName, p.warn.Sprint(c.Reason)})
	}
	return tbl.Render()
}

// formatCount writes n with thousands separators
func formatCount(n int) string {
	return humanize.Comma(int64(n))
}

func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Format.Footer = text.FormatDefault
	return tbl
}
