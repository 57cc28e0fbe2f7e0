package diff

import (
	"testing"
)

func TestBuildLinesNoSteps(t *testing.T) {
	lines := BuildLines("name", nil, false)
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if lines[0].Type != LineTypeHeader || lines[0].Content != "name" {
		t.Errorf("Expected header 'name', got %+v", lines[0])
	}
	if lines[1].Type != LineTypeUnchanged {
		t.Errorf("Expected unchanged line, got %v", lines[1].Type)
	}
}

func TestBuildLinesFinalOnly(t *testing.T) {
	steps := []Step{
		{Label: "Replace", Result: NewResult(
			Diff{Text: "foo", Op: Deletion},
			Diff{Text: "bar", Op: Insertion},
		)},
		{Label: "Suffix", Result: NewResult(
			Diff{Text: "bar", Op: Equal},
			Diff{Text: "_1", Op: Insertion},
		)},
	}

	lines := BuildLines("foo", steps, false)
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}
	if lines[1].Type != LineTypeBefore || lines[2].Type != LineTypeAfter {
		t.Fatalf("Expected before/after lines, got %v/%v", lines[1].Type, lines[2].Type)
	}

	before := joinSpans(lines[1].Spans)
	after := joinSpans(lines[2].Spans)
	if before != "foo" {
		t.Errorf("Expected before text 'foo', got '%s'", before)
	}
	if after != "bar_1" {
		t.Errorf("Expected after text 'bar_1', got '%s'", after)
	}
}

func TestBuildLinesVerbose(t *testing.T) {
	steps := []Step{
		{Label: "Noop", Result: Unchanged("foo")},
		{Label: "Suffix", Result: NewResult(
			Diff{Text: "foo", Op: Equal},
			Diff{Text: "_1", Op: Insertion},
		)},
	}

	lines := BuildLines("foo", steps, true)

	// header, label, unchanged, label, before, after, summary
	if len(lines) != 7 {
		t.Fatalf("Expected 7 lines, got %d", len(lines))
	}
	if lines[1].Content != "1. Noop" {
		t.Errorf("Expected '1. Noop', got '%s'", lines[1].Content)
	}
	if lines[2].Type != LineTypeUnchanged {
		t.Errorf("Expected unchanged line for no-op step, got %v", lines[2].Type)
	}
	if lines[6].Content != "1 of 2 steps changed the name" {
		t.Errorf("Unexpected summary '%s'", lines[6].Content)
	}
}

func TestPlainTextMarkers(t *testing.T) {
	line := Line{Indent: 1, Spans: []Diff{
		{Text: "a", Op: Equal},
		{Text: "b", Op: Deletion},
		{Text: "c", Op: Insertion},
	}}
	if got := PlainText(line); got != "  a[-b-]{+c+}" {
		t.Errorf("Expected '  a[-b-]{+c+}', got '%s'", got)
	}
}

func joinSpans(spans []Diff) string {
	var out string
	for _, d := range spans {
		out += d.Text
	}
	return out
}
