package rename

import (
	"github.com/pstuifzand/tui-renamer/internal/diff"
)

// AddString adds a prefix and/or a suffix to the name
type AddString struct {
	Prefix string `json:"prefix"`
	Suffix string `json:"suffix"`
}

// NewAddString returns an AddString with nothing to add
func NewAddString() *AddString {
	return &AddString{}
}

// ID implements Operation
func (o *AddString) ID() string { return AddStringID }

// HasErrors implements Operation
func (o *AddString) HasErrors() bool { return false }

// Rename implements Operation
func (o *AddString) Rename(input string, _ int) diff.Result {
	spans := make([]diff.Diff, 0, 3)
	if o.Prefix != "" {
		spans = append(spans, diff.NewDiff(o.Prefix, diff.Insertion))
	}
	if input != "" {
		spans = append(spans, diff.NewDiff(input, diff.Equal))
	}
	if o.Suffix != "" {
		spans = append(spans, diff.NewDiff(o.Suffix, diff.Insertion))
	}
	return diff.NewResult(spans...)
}

// Clone implements Operation
func (o *AddString) Clone() Operation {
	c := *o
	return &c
}

// Equal implements Operation
func (o *AddString) Equal(other Operation) bool {
	x, ok := other.(*AddString)
	if !ok || x == nil {
		return false
	}
	return *o == *x
}

// Hash implements Operation
func (o *AddString) Hash() uint64 {
	return newHasher(AddStringID).str(o.Prefix).str(o.Suffix).sum()
}
