package rename

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pstuifzand/tui-renamer/internal/diff"
)

// checkInvariants verifies the spans of r rebuild input and output
func checkInvariants(t *testing.T, input string, r diff.Result) {
	t.Helper()
	assert.Equal(t, input, r.Original(), "spans must rebuild the input")
}

func TestEnumerateLeadingZero(t *testing.T) {
	op := NewEnumerate()
	op.SetCountFormatPreset(LeadingZero)

	for i, want := range []string{"file00", "file01", "file02"} {
		r := op.Rename("file", i)
		checkInvariants(t, "file", r)
		assert.Equal(t, want, r.Output())
	}
}

func TestEnumeratePrependAndIncrement(t *testing.T) {
	op := NewEnumerate()
	op.StartingCount = 10
	op.Increment = 5
	op.Prepend = true
	op.SetCountFormatPreset(Underscore)

	r := op.Rename("file", 2)
	assert.Equal(t, "_20file", r.Output())
	spans := r.Diffs()
	require.Len(t, spans, 2)
	assert.Equal(t, diff.Insertion, spans[0].Op)
	assert.Equal(t, diff.Equal, spans[1].Op)
}

func TestEnumerateInvalidFormatPassesThrough(t *testing.T) {
	op := NewEnumerate()
	op.SetCountFormat("'broken")

	assert.False(t, op.IsCountStringFormatValid())
	assert.False(t, op.HasErrors())

	r := op.Rename("file", 3)
	assert.Equal(t, "file", r.Output())
	assert.False(t, r.Changed())
}

func TestEnumerateDefaults(t *testing.T) {
	op := NewEnumerate()
	assert.Equal(t, "0", op.CountFormat())
	assert.Equal(t, 1, op.Increment)
	assert.Equal(t, SingleDigit, op.FormatPreset)
	assert.True(t, op.IsCountStringFormatValid())

	op.SetCountFormat("D3")
	assert.Equal(t, CustomFormat, op.FormatPreset)
	assert.Equal(t, "file004", op.Rename("file", 4).Output())
}

func TestEnumerateEmptyInput(t *testing.T) {
	op := NewEnumerate()
	r := op.Rename("", 2)
	assert.Equal(t, "", r.Original())
	assert.Equal(t, "2", r.Output())
}

func TestReplaceStringCaseInsensitive(t *testing.T) {
	op := NewReplaceString()
	op.SearchString = "Foo"
	op.ReplacementString = "Bar"

	r := op.Rename("foofoo", 0)
	checkInvariants(t, "foofoo", r)
	assert.Equal(t, "BarBar", r.Output())
	assert.Equal(t, []diff.Diff{
		{Text: "foo", Op: diff.Deletion},
		{Text: "Bar", Op: diff.Insertion},
		{Text: "foo", Op: diff.Deletion},
		{Text: "Bar", Op: diff.Insertion},
	}, r.Diffs())
}

func TestReplaceStringCaseSensitive(t *testing.T) {
	op := NewReplaceString()
	op.SearchString = "Foo"
	op.ReplacementString = "Bar"
	op.SearchIsCaseSensitive = true

	assert.Equal(t, "fooBar", op.Rename("fooFoo", 0).Output())
}

func TestReplaceStringLiteralEscapesPattern(t *testing.T) {
	op := NewReplaceString()
	op.SearchString = "a.b"
	op.ReplacementString = "$1"

	assert.Equal(t, "axb", op.Rename("axb", 0).Output())
	assert.Equal(t, "x$1y", op.Rename("xa.by", 0).Output())
}

func TestReplaceStringRegexGroups(t *testing.T) {
	op := NewReplaceString()
	op.UseRegex = true
	op.SearchString = `(\w+)_(\d+)`
	op.ReplacementString = "${2}-$1"

	r := op.Rename("walk_01.png", 0)
	checkInvariants(t, "walk_01.png", r)
	assert.Equal(t, "01-walk.png", r.Output())
}

func TestReplaceStringMiddleAndTrailing(t *testing.T) {
	op := NewReplaceString()
	op.SearchString = "_"
	op.ReplacementString = ""

	r := op.Rename("a_b_c", 0)
	checkInvariants(t, "a_b_c", r)
	assert.Equal(t, "abc", r.Output())
	for _, d := range r.Diffs() {
		assert.NotEqual(t, diff.Insertion, d.Op, "empty replacement must not insert")
	}
}

func TestReplaceStringNoOps(t *testing.T) {
	tests := []struct {
		name   string
		search string
		regex  bool
		input  string
	}{
		{"empty search", "", false, "name"},
		{"absent text", "zzz", false, "name"},
		{"invalid regex", "([", true, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := NewReplaceString()
			op.SearchString = tt.search
			op.UseRegex = tt.regex
			op.ReplacementString = "x"

			r := op.Rename(tt.input, 0)
			require.Equal(t, 1, r.Len())
			assert.Equal(t, diff.Diff{Text: tt.input, Op: diff.Equal}, r.Diffs()[0])
		})
	}
}

func TestReplaceStringEmptyInput(t *testing.T) {
	op := NewReplaceString()
	op.SearchString = "a"
	assert.Equal(t, 0, op.Rename("", 0).Len())
}

func TestReplaceStringHasErrors(t *testing.T) {
	op := NewReplaceString()
	op.SearchString = "(["
	assert.False(t, op.HasErrors(), "literal search never has errors")

	op.UseRegex = true
	assert.True(t, op.HasErrors())

	op.SearchString = "ok+"
	assert.False(t, op.HasErrors())
}

func TestRemoveCharactersPresets(t *testing.T) {
	tests := []struct {
		preset CharacterPreset
		input  string
		want   string
	}{
		{Whitespace, "a b  c", "abc"},
		{Numbers, "walk01b2", "walkb"},
		{Symbols, "hero!@#_v2", "herov2"},
	}

	for _, tt := range tests {
		op := NewRemoveCharacters()
		op.SetOptionPreset(tt.preset)
		r := op.Rename(tt.input, 0)
		checkInvariants(t, tt.input, r)
		assert.Equal(t, tt.want, r.Output(), "preset %s", tt.preset)
	}
}

func TestRemoveCharactersSpans(t *testing.T) {
	op := NewRemoveCharacters()
	op.SetOptionPreset(Whitespace)

	assert.Equal(t, []diff.Diff{
		{Text: "a", Op: diff.Equal},
		{Text: " ", Op: diff.Deletion},
		{Text: "b", Op: diff.Equal},
		{Text: "  ", Op: diff.Deletion},
		{Text: "c", Op: diff.Equal},
	}, op.Rename("a b  c", 0).Diffs())
}

func TestRemoveCharactersCustom(t *testing.T) {
	op := NewRemoveCharacters()
	op.SetCustomCharacters("ab", false)
	assert.Equal(t, "c", op.Rename("aAbBc", 0).Output())

	op.SetCustomCharacters("ab", true)
	assert.Equal(t, "ABc", op.Rename("aAbBc", 0).Output())

	op.SetCustomCharacters("", false)
	assert.Equal(t, "aAbBc", op.Rename("aAbBc", 0).Output())
}

func TestTrimCharacters(t *testing.T) {
	op := NewTrimCharacters()
	op.NumFrontDeleteChars = 2
	op.NumBackDeleteChars = 1

	r := op.Rename("ab_name_c", 0)
	checkInvariants(t, "ab_name_c", r)
	assert.Equal(t, "_name_", r.Output())

	op.Preset = Symbols
	assert.Equal(t, "name", op.Rename("ab_name_c", 0).Output())

	op.NumFrontDeleteChars = 100
	r = op.Rename("short", 0)
	assert.Equal(t, "", r.Output())
	assert.Equal(t, "short", r.Original())
}

func TestTrimCharactersNegativeCounts(t *testing.T) {
	op := NewTrimCharacters()
	op.NumFrontDeleteChars = -1
	assert.True(t, op.HasErrors())
	assert.Equal(t, "name", op.Rename("name", 0).Output())
}

func TestChangeCase(t *testing.T) {
	tests := []struct {
		casing    Casing
		firstOnly bool
		input     string
		want      string
	}{
		{Lowercase, false, "HeLLo World", "hello world"},
		{Uppercase, false, "hello", "HELLO"},
		{Uppercase, true, "hello", "Hello"},
		{Lowercase, true, "HELLO", "hELLO"},
		{Titlecase, false, "big red door", "Big Red Door"},
		{Uppercase, false, "straße", "STRASSE"},
	}

	for _, tt := range tests {
		op := NewChangeCase()
		op.Casing = tt.casing
		op.ChangeFirstCharacterOnly = tt.firstOnly

		r := op.Rename(tt.input, 0)
		checkInvariants(t, tt.input, r)
		assert.Equal(t, tt.want, r.Output())
	}
}

func TestInvalidUTF8SurvivesSpans(t *testing.T) {
	const input = "a\xffb1"

	numbers := NewRemoveCharacters()
	numbers.SetOptionPreset(Numbers)
	r := numbers.Rename(input, 0)
	checkInvariants(t, input, r)
	assert.Equal(t, "a\xffb", r.Output())

	symbols := NewRemoveCharacters()
	r = symbols.Rename(input, 0)
	checkInvariants(t, input, r)
	assert.False(t, r.Changed())

	r = NewTrimCharacters().Rename(input, 0)
	checkInvariants(t, input, r)
	assert.False(t, r.Changed())

	trim := NewTrimCharacters()
	trim.NumFrontDeleteChars = 1
	trim.NumBackDeleteChars = 2
	r = trim.Rename(input, 0)
	checkInvariants(t, input, r)
	assert.Equal(t, "\xff", r.Output())

	r = NewChangeCase().Rename(input, 0)
	checkInvariants(t, input, r)
	assert.False(t, r.Changed())

	upper := NewChangeCase()
	upper.Casing = Uppercase
	r = upper.Rename(input, 0)
	checkInvariants(t, input, r)
	assert.Equal(t, "A\xffB1", r.Output())
}

func TestChangeCaseUnchangedName(t *testing.T) {
	op := NewChangeCase()
	r := op.Rename("lower", 0)
	assert.False(t, r.Changed())
}

func TestAddString(t *testing.T) {
	op := NewAddString()
	op.Prefix = "pre_"
	op.Suffix = "_post"

	r := op.Rename("name", 0)
	checkInvariants(t, "name", r)
	assert.Equal(t, "pre_name_post", r.Output())
	assert.Equal(t, 3, r.Len())

	assert.Equal(t, "name", NewAddString().Rename("name", 0).Output())
}

func TestAddStringSequence(t *testing.T) {
	op := NewAddStringSequence()
	op.StringSequence = []string{"_a", "_b", "_c"}

	assert.Equal(t, "x_a", op.Rename("x", 0).Output())
	assert.Equal(t, "x_c", op.Rename("x", 2).Output())
	assert.Equal(t, "x_a", op.Rename("x", 3).Output())
	assert.Equal(t, "x_c", op.Rename("x", -1).Output())

	op.Prepend = true
	assert.Equal(t, "_bx", op.Rename("x", 1).Output())

	assert.Equal(t, "x", NewAddStringSequence().Rename("x", 5).Output())
}

func TestCountByLetter(t *testing.T) {
	op := NewCountByLetter()

	tests := map[int]string{0: "A", 1: "B", 25: "Z", 26: "AA", 27: "AB", 52: "BA", 701: "ZZ", 702: "AAA"}
	for index, want := range tests {
		assert.Equal(t, want, op.CountString(index), "index %d", index)
	}

	assert.Equal(t, "nameC", op.Rename("name", 2).Output())

	op.DoNotCarryOver = true
	assert.Equal(t, "A", op.CountString(26))

	op.StartingCount = -5
	assert.Equal(t, "name", op.Rename("name", 0).Output())
}

func TestCountByLetterErrors(t *testing.T) {
	op := NewCountByLetter()
	assert.False(t, op.HasErrors())

	op.CountSequence = nil
	assert.True(t, op.HasErrors())
	assert.Equal(t, "name", op.Rename("name", 1).Output())

	op.CountSequence = []string{"a", ""}
	assert.True(t, op.HasErrors())
}

func TestReplaceName(t *testing.T) {
	op := NewReplaceName()
	op.NewName = "hero"

	r := op.Rename("villain", 0)
	checkInvariants(t, "villain", r)
	assert.Equal(t, "hero", r.Output())

	assert.False(t, op.Rename("hero", 0).Changed())
	assert.Equal(t, "", NewReplaceName().Rename("villain", 0).Output())
}

func TestEmptyInputNeverPanics(t *testing.T) {
	for _, id := range IDs() {
		op, err := New(id)
		require.NoError(t, err)
		assert.NotPanics(t, func() {
			r := op.Rename("", 0)
			assert.Equal(t, "", r.Original(), id)
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	seq := NewAddStringSequence()
	seq.StringSequence = []string{"a", "b"}
	clone := seq.Clone().(*AddStringSequence)
	clone.StringSequence[0] = "z"
	assert.Equal(t, "a", seq.StringSequence[0])

	letters := NewCountByLetter()
	letterClone := letters.Clone().(*CountByLetter)
	letterClone.CountSequence[0] = "?"
	assert.Equal(t, "A", letters.CountSequence[0])

	enum := NewEnumerate()
	enumClone := enum.Clone()
	assert.True(t, enum.Equal(enumClone))
	enumClone.(*Enumerate).Increment = 3
	assert.False(t, enum.Equal(enumClone))
}

func TestEqualAndHash(t *testing.T) {
	a := NewReplaceString()
	a.SearchString = "x"
	b := NewReplaceString()
	b.SearchString = "x"

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())

	b.ReplacementString = "y"
	assert.False(t, a.Equal(b))
	assert.NotEqual(t, a.Hash(), b.Hash())

	assert.False(t, a.Equal(NewEnumerate()))
	assert.NotEqual(t, NewAddString().Hash(), NewReplaceName().Hash())
}

func TestEnumerateEqualUsesEffectiveFormat(t *testing.T) {
	a := NewEnumerate()
	b := NewEnumerate()
	b.CustomFormat = "000"

	// both use the SingleDigit preset, so the custom format doesn't matter
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
}
