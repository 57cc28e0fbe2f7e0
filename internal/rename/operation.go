// Package rename holds the text operations a rename sequence is built from.
//
// Every operation is a pure function of the current name, the relative
// count for that name and its own configuration. Operations never fail:
// a bad configuration is reported by HasErrors and the rename degrades to
// keeping the name as it is.
package rename

import (
	"hash"
	"hash/fnv"
	"strconv"

	"github.com/pstuifzand/tui-renamer/internal/diff"
)

// Operation is one configurable step of a rename sequence
type Operation interface {
	// ID returns the identifier used to tag the operation when serialized
	ID() string

	// Rename applies the operation to input. relativeCount is the
	// position of the name in the batch being renamed.
	Rename(input string, relativeCount int) diff.Result

	// HasErrors reports whether the configuration can't be used as is
	HasErrors() bool

	// Clone returns a deep copy that shares nothing with the original
	Clone() Operation

	// Equal compares configurations by value
	Equal(other Operation) bool

	// Hash returns a hash of the configuration. Operations that are Equal
	// have the same hash.
	Hash() uint64
}

// hasher accumulates configuration fields into a 64-bit FNV-1a hash.
// Strings are length prefixed so adjacent fields can't run together.
type hasher struct {
	h hash.Hash64
}

func newHasher(id string) *hasher {
	h := &hasher{h: fnv.New64a()}
	h.str(id)
	return h
}

func (h *hasher) str(s string) *hasher {
	h.h.Write([]byte(strconv.Itoa(len(s))))
	h.h.Write([]byte{':'})
	h.h.Write([]byte(s))
	return h
}

func (h *hasher) int(v int) *hasher {
	h.h.Write([]byte(strconv.Itoa(v)))
	h.h.Write([]byte{';'})
	return h
}

func (h *hasher) bool(v bool) *hasher {
	if v {
		h.h.Write([]byte{1})
	} else {
		h.h.Write([]byte{0})
	}
	return h
}

func (h *hasher) strs(values []string) *hasher {
	h.int(len(values))
	for _, v := range values {
		h.str(v)
	}
	return h
}

func (h *hasher) sum() uint64 {
	return h.h.Sum64()
}

// insertAround puts text before or after input as an insertion.
// Empty parts are left out.
func insertAround(input, text string, prepend bool) diff.Result {
	spans := make([]diff.Diff, 0, 2)
	if prepend && text != "" {
		spans = append(spans, diff.NewDiff(text, diff.Insertion))
	}
	if input != "" {
		spans = append(spans, diff.NewDiff(input, diff.Equal))
	}
	if !prepend && text != "" {
		spans = append(spans, diff.NewDiff(text, diff.Insertion))
	}
	return diff.NewResult(spans...)
}
