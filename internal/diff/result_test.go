package diff

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

func TestResultOriginalAndOutput(t *testing.T) {
	r := NewResult(
		Diff{Text: "foo", Op: Equal},
		Diff{Text: "bar", Op: Deletion},
		Diff{Text: "baz", Op: Insertion},
		Diff{Text: "!", Op: Equal},
	)

	assert.Equal(t, "foobar!", r.Original())
	assert.Equal(t, "foobaz!", r.Output())
	assert.True(t, r.Changed())
	assert.Equal(t, 4, r.Len())
}

func TestResultIsImmutable(t *testing.T) {
	spans := []Diff{{Text: "a", Op: Equal}}
	r := NewResult(spans...)
	spans[0].Text = "b"

	got := r.Diffs()
	got[0].Text = "c"

	assert.Equal(t, "a", r.Output())
}

func TestEmptyResult(t *testing.T) {
	assert.Equal(t, "", Empty.Original())
	assert.Equal(t, "", Empty.Output())
	assert.False(t, Empty.Changed())
}

func TestUnchanged(t *testing.T) {
	r := Unchanged("name")
	assert.False(t, r.Changed())
	assert.Equal(t, "name", r.Original())
	assert.Equal(t, "name", r.Output())
}

func TestColoredRendering(t *testing.T) {
	red := colorful.Color{R: 1, G: 0, B: 0}
	green := colorful.Color{R: 0, G: 1, B: 0}
	r := NewResult(
		Diff{Text: "file", Op: Equal},
		Diff{Text: "_old", Op: Deletion},
		Diff{Text: "_new", Op: Insertion},
	)

	assert.Equal(t, "file<color=#ff0000>_old</color>", r.OriginalColored(red))
	assert.Equal(t, "file<color=#00ff00>_new</color>", r.OutputColored(green))
}

func TestHexColor(t *testing.T) {
	fallback := colorful.Color{R: 0, G: 0, B: 1}

	tests := []struct {
		input string
		want  string
	}{
		{"#ff0000", "#ff0000"},
		{"00ff00", "#00ff00"},
		{"#fff", "#ffffff"},
		{"nope", "#0000ff"},
		{"", "#0000ff"},
	}

	for _, tt := range tests {
		got := HexColor(tt.input, fallback)
		if got.Hex() != tt.want {
			t.Errorf("HexColor(%q) = %s, expected %s", tt.input, got.Hex(), tt.want)
		}
	}
}
