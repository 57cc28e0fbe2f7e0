package rename

import (
	"slices"
	"strings"

	"github.com/pstuifzand/tui-renamer/internal/diff"
)

// UppercaseAlphabet is the default CountByLetter sequence
var UppercaseAlphabet = strings.Split("ABCDEFGHIJKLMNOPQRSTUVWXYZ", "")

// CountByLetter adds a count made of letters: A, B, ... Z, AA, AB, ...
// With DoNotCarryOver the count wraps around instead: ... Y, Z, A, B.
type CountByLetter struct {
	CountSequence  []string `json:"countSequence"`
	StartingCount  int      `json:"startingCount"`
	Increment      int      `json:"increment"`
	Prepend        bool     `json:"prepend"`
	DoNotCarryOver bool     `json:"doNotCarryOver"`
}

// NewCountByLetter returns a CountByLetter counting A, B, C... after the name
func NewCountByLetter() *CountByLetter {
	return &CountByLetter{
		CountSequence: slices.Clone(UppercaseAlphabet),
		Increment:     1,
	}
}

// ID implements Operation
func (o *CountByLetter) ID() string { return CountByLetterID }

// HasErrors implements Operation
func (o *CountByLetter) HasErrors() bool {
	if len(o.CountSequence) == 0 {
		return true
	}
	for _, s := range o.CountSequence {
		if s == "" {
			return true
		}
	}
	return false
}

// CountString returns the letters for a count index, or "" when the index
// is negative or the sequence is empty
func (o *CountByLetter) CountString(index int) string {
	n := len(o.CountSequence)
	if n == 0 || index < 0 {
		return ""
	}
	if o.DoNotCarryOver {
		return o.CountSequence[index%n]
	}

	// bijective base n: 0 -> A, n-1 -> Z, n -> AA
	var parts []string
	for v := index + 1; v > 0; v = (v - 1) / n {
		parts = append(parts, o.CountSequence[(v-1)%n])
	}
	slices.Reverse(parts)
	return strings.Join(parts, "")
}

// Rename implements Operation
func (o *CountByLetter) Rename(input string, relativeCount int) diff.Result {
	text := o.CountString(o.StartingCount + relativeCount*o.Increment)
	if text == "" && input != "" {
		return diff.Unchanged(input)
	}
	return insertAround(input, text, o.Prepend)
}

// Clone implements Operation
func (o *CountByLetter) Clone() Operation {
	c := *o
	c.CountSequence = slices.Clone(o.CountSequence)
	return &c
}

// Equal implements Operation
func (o *CountByLetter) Equal(other Operation) bool {
	x, ok := other.(*CountByLetter)
	if !ok || x == nil {
		return false
	}
	return o.StartingCount == x.StartingCount &&
		o.Increment == x.Increment &&
		o.Prepend == x.Prepend &&
		o.DoNotCarryOver == x.DoNotCarryOver &&
		slices.Equal(o.CountSequence, x.CountSequence)
}

// Hash implements Operation
func (o *CountByLetter) Hash() uint64 {
	return newHasher(CountByLetterID).
		strs(o.CountSequence).
		int(o.StartingCount).
		int(o.Increment).
		bool(o.Prepend).
		bool(o.DoNotCarryOver).
		sum()
}
