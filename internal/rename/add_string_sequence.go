package rename

import (
	"slices"

	"github.com/pstuifzand/tui-renamer/internal/diff"
)

// AddStringSequence adds one string of a list to each name, cycling
// through the list by relative count
type AddStringSequence struct {
	StringSequence []string `json:"stringSequence"`
	Prepend        bool     `json:"prepend"`
}

// NewAddStringSequence returns an AddStringSequence with an empty list
func NewAddStringSequence() *AddStringSequence {
	return &AddStringSequence{StringSequence: []string{}}
}

// ID implements Operation
func (o *AddStringSequence) ID() string { return AddStringSequenceID }

// HasErrors implements Operation
func (o *AddStringSequence) HasErrors() bool { return false }

// Rename implements Operation
func (o *AddStringSequence) Rename(input string, relativeCount int) diff.Result {
	n := len(o.StringSequence)
	if n == 0 {
		if input == "" {
			return diff.Empty
		}
		return diff.Unchanged(input)
	}
	idx := ((relativeCount % n) + n) % n
	return insertAround(input, o.StringSequence[idx], o.Prepend)
}

// Clone implements Operation
func (o *AddStringSequence) Clone() Operation {
	return &AddStringSequence{
		StringSequence: slices.Clone(o.StringSequence),
		Prepend:        o.Prepend,
	}
}

// Equal implements Operation
func (o *AddStringSequence) Equal(other Operation) bool {
	x, ok := other.(*AddStringSequence)
	if !ok || x == nil {
		return false
	}
	return o.Prepend == x.Prepend && slices.Equal(o.StringSequence, x.StringSequence)
}

// Hash implements Operation
func (o *AddStringSequence) Hash() uint64 {
	return newHasher(AddStringSequenceID).strs(o.StringSequence).bool(o.Prepend).sum()
}
