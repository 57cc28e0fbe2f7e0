package rename

import (
	"unicode/utf8"

	"github.com/pstuifzand/tui-renamer/internal/diff"
)

// TrimCharacters deletes a number of characters from the front and back of
// the name, then strips any characters of a preset class or custom set
// from both ends of what is left. The default custom set is empty, so only
// the counts apply.
type TrimCharacters struct {
	NumFrontDeleteChars int             `json:"numFrontDeleteChars"`
	NumBackDeleteChars  int             `json:"numBackDeleteChars"`
	Preset              CharacterPreset `json:"presetID"`
	CharactersToTrim    string          `json:"charactersToTrim"`
	IsCaseSensitive     bool            `json:"isCaseSensitive"`
}

// NewTrimCharacters returns a TrimCharacters that keeps the name as is
func NewTrimCharacters() *TrimCharacters {
	return &TrimCharacters{Preset: Custom}
}

// ID implements Operation
func (o *TrimCharacters) ID() string { return TrimCharactersID }

// HasErrors implements Operation
func (o *TrimCharacters) HasErrors() bool {
	return o.NumFrontDeleteChars < 0 || o.NumBackDeleteChars < 0 || !o.Preset.valid()
}

// Rename implements Operation
func (o *TrimCharacters) Rename(input string, _ int) diff.Result {
	if input == "" {
		return diff.Empty
	}

	// byte offset of every character, plus len(input); an invalid byte
	// counts as one character
	offsets := make([]int, 0, len(input)+1)
	for i := 0; i < len(input); {
		offsets = append(offsets, i)
		_, size := utf8.DecodeRuneInString(input[i:])
		i += size
	}
	count := len(offsets)
	offsets = append(offsets, len(input))

	front := clamp(o.NumFrontDeleteChars, 0, count)
	back := clamp(o.NumBackDeleteChars, 0, count-front)

	match := o.Preset.matcher(o.CharactersToTrim, o.IsCaseSensitive)
	start, end := front, count-back
	for start < end && matchAt(input, offsets[start], match) {
		start++
	}
	for end > start && matchAt(input, offsets[end-1], match) {
		end--
	}

	from, to := offsets[start], offsets[end]
	spans := make([]diff.Diff, 0, 3)
	if from > 0 {
		spans = append(spans, diff.NewDiff(input[:from], diff.Deletion))
	}
	if from < to {
		spans = append(spans, diff.NewDiff(input[from:to], diff.Equal))
	}
	if to < len(input) {
		spans = append(spans, diff.NewDiff(input[to:], diff.Deletion))
	}
	return diff.NewResult(spans...)
}

// Clone implements Operation
func (o *TrimCharacters) Clone() Operation {
	c := *o
	return &c
}

// Equal implements Operation
func (o *TrimCharacters) Equal(other Operation) bool {
	x, ok := other.(*TrimCharacters)
	if !ok || x == nil {
		return false
	}
	return *o == *x
}

// Hash implements Operation
func (o *TrimCharacters) Hash() uint64 {
	return newHasher(TrimCharactersID).
		int(o.NumFrontDeleteChars).
		int(o.NumBackDeleteChars).
		int(int(o.Preset)).
		str(o.CharactersToTrim).
		bool(o.IsCaseSensitive).
		sum()
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
