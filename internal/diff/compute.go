package diff

import (
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Compute aligns before and after character by character and returns the
// spans that turn one into the other. Deletions come before the insertions
// that replace them. When either side is not valid UTF-8 the whole of
// before is deleted and the whole of after inserted.
func Compute(before, after string) Result {
	if before == after {
		if before == "" {
			return Empty
		}
		return Unchanged(before)
	}
	if !utf8.ValidString(before) || !utf8.ValidString(after) {
		return replaced(before, after)
	}

	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0
	patches := dmp.DiffMain(before, after, false)

	diffs := make([]Diff, 0, len(patches))
	for _, p := range patches {
		if p.Text == "" {
			continue
		}
		diffs = append(diffs, Diff{Text: p.Text, Op: fromPatchOp(p.Type)})
	}
	return NewResult(diffs...)
}

// ComputeSemantic is Compute followed by a cleanup pass that merges
// character level noise into word sized spans. Better for showing a
// whole-name change to a person.
func ComputeSemantic(before, after string) Result {
	if before == after || !utf8.ValidString(before) || !utf8.ValidString(after) {
		return Compute(before, after)
	}

	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0
	patches := dmp.DiffCleanupSemantic(dmp.DiffMain(before, after, false))

	diffs := make([]Diff, 0, len(patches))
	for _, p := range patches {
		if p.Text == "" {
			continue
		}
		diffs = append(diffs, Diff{Text: p.Text, Op: fromPatchOp(p.Type)})
	}
	return NewResult(diffs...)
}

// replaced skips the character diff, which would turn invalid bytes into
// U+FFFD
func replaced(before, after string) Result {
	var diffs []Diff
	if before != "" {
		diffs = append(diffs, Diff{Text: before, Op: Deletion})
	}
	if after != "" {
		diffs = append(diffs, Diff{Text: after, Op: Insertion})
	}
	return NewResult(diffs...)
}

func fromPatchOp(t diffmatchpatch.Operation) Op {
	switch t {
	case diffmatchpatch.DiffInsert:
		return Insertion
	case diffmatchpatch.DiffDelete:
		return Deletion
	default:
		return Equal
	}
}
