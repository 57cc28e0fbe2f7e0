package rename

import (
	"github.com/pstuifzand/tui-renamer/internal/diff"
)

// ReplaceName replaces the whole name with NewName
type ReplaceName struct {
	NewName string `json:"newName"`
}

// NewReplaceName returns a ReplaceName with an empty new name
func NewReplaceName() *ReplaceName {
	return &ReplaceName{}
}

// ID implements Operation
func (o *ReplaceName) ID() string { return ReplaceNameID }

// HasErrors implements Operation
func (o *ReplaceName) HasErrors() bool { return false }

// Rename implements Operation
func (o *ReplaceName) Rename(input string, _ int) diff.Result {
	if input == o.NewName {
		return diff.NewResult(diff.NewDiff(input, diff.Equal))
	}
	spans := make([]diff.Diff, 0, 2)
	if input != "" {
		spans = append(spans, diff.NewDiff(input, diff.Deletion))
	}
	if o.NewName != "" {
		spans = append(spans, diff.NewDiff(o.NewName, diff.Insertion))
	}
	return diff.NewResult(spans...)
}

// Clone implements Operation
func (o *ReplaceName) Clone() Operation {
	c := *o
	return &c
}

// Equal implements Operation
func (o *ReplaceName) Equal(other Operation) bool {
	x, ok := other.(*ReplaceName)
	if !ok || x == nil {
		return false
	}
	return *o == *x
}

// Hash implements Operation
func (o *ReplaceName) Hash() uint64 {
	return newHasher(ReplaceNameID).str(o.NewName).sum()
}
