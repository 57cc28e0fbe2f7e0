// Package sequence runs an ordered list of rename operations over a name
// and persists the list as text.
package sequence

import (
	"errors"
	"fmt"
	"hash/fnv"
	"slices"
	"strconv"

	"github.com/pstuifzand/tui-renamer/internal/diff"
	"github.com/pstuifzand/tui-renamer/internal/rename"
)

// ErrIndexOutOfRange is returned by list operations given a bad index
var ErrIndexOutOfRange = errors.New("index out of range")

// Sequence is an ordered list of operations. Each operation receives the
// output of the one before it, and all of them get the same relative
// count. T narrows the kind of operation a sequence may hold.
type Sequence[T rename.Operation] struct {
	ops []T
}

// Pipeline is a sequence that holds any operation. Deserialize and the
// preset store produce pipelines.
type Pipeline = Sequence[rename.Operation]

// New creates a sequence holding ops in order
func New[T rename.Operation](ops ...T) *Sequence[T] {
	return &Sequence[T]{ops: slices.Clone(ops)}
}

// NewPipeline creates a pipeline holding ops in order
func NewPipeline(ops ...rename.Operation) *Pipeline {
	return New(ops...)
}

// Len returns the number of operations
func (s *Sequence[T]) Len() int {
	return len(s.ops)
}

// At returns the operation at index
func (s *Sequence[T]) At(index int) (T, error) {
	if err := s.check(index, len(s.ops)); err != nil {
		var zero T
		return zero, err
	}
	return s.ops[index], nil
}

// Set replaces the operation at index
func (s *Sequence[T]) Set(index int, op T) error {
	if err := s.check(index, len(s.ops)); err != nil {
		return err
	}
	s.ops[index] = op
	return nil
}

// Append adds ops to the end
func (s *Sequence[T]) Append(ops ...T) {
	s.ops = append(s.ops, ops...)
}

// Insert puts op at index, shifting later operations back. index may be
// Len() to append.
func (s *Sequence[T]) Insert(index int, op T) error {
	if err := s.check(index, len(s.ops)+1); err != nil {
		return err
	}
	s.ops = slices.Insert(s.ops, index, op)
	return nil
}

// RemoveAt removes the operation at index
func (s *Sequence[T]) RemoveAt(index int) error {
	if err := s.check(index, len(s.ops)); err != nil {
		return err
	}
	s.ops = slices.Delete(s.ops, index, index+1)
	return nil
}

// Remove removes the first operation equal to op. It reports whether one
// was found.
func (s *Sequence[T]) Remove(op T) bool {
	i := s.IndexOf(op)
	if i < 0 {
		return false
	}
	s.ops = slices.Delete(s.ops, i, i+1)
	return true
}

// Move moves the operation at from so that it ends up at index to
func (s *Sequence[T]) Move(from, to int) error {
	if err := s.check(from, len(s.ops)); err != nil {
		return err
	}
	if err := s.check(to, len(s.ops)); err != nil {
		return err
	}
	if from == to {
		return nil
	}
	op := s.ops[from]
	s.ops = slices.Delete(s.ops, from, from+1)
	s.ops = slices.Insert(s.ops, to, op)
	return nil
}

// Clear removes all operations
func (s *Sequence[T]) Clear() {
	s.ops = nil
}

// IndexOf returns the index of the first operation equal to op, or -1
func (s *Sequence[T]) IndexOf(op T) int {
	return slices.IndexFunc(s.ops, func(o T) bool { return o.Equal(op) })
}

// Contains reports whether an operation equal to op is in the sequence
func (s *Sequence[T]) Contains(op T) bool {
	return s.IndexOf(op) >= 0
}

// Operations returns a copy of the list. The operations themselves are
// shared.
func (s *Sequence[T]) Operations() []T {
	return slices.Clone(s.ops)
}

// Clone returns a deep copy; every operation is cloned
func (s *Sequence[T]) Clone() *Sequence[T] {
	c := &Sequence[T]{ops: make([]T, 0, len(s.ops))}
	for _, op := range s.ops {
		c.ops = append(c.ops, op.Clone().(T))
	}
	return c
}

// Equal reports whether both sequences hold equal operations in the same
// order
func (s *Sequence[T]) Equal(other *Sequence[T]) bool {
	if other == nil {
		return false
	}
	return slices.EqualFunc(s.ops, other.ops, func(a, b T) bool { return a.Equal(b) })
}

// Hash combines the hashes of the operations in order
func (s *Sequence[T]) Hash() uint64 {
	h := fnv.New64a()
	for _, op := range s.ops {
		h.Write([]byte(strconv.FormatUint(op.Hash(), 16)))
		h.Write([]byte{'/'})
	}
	return h.Sum64()
}

// HasErrors reports whether any operation has a configuration error
func (s *Sequence[T]) HasErrors() bool {
	return slices.ContainsFunc(s.ops, func(op T) bool { return op.HasErrors() })
}

// Evaluate runs every operation over name and returns one result per
// step. An empty sequence still returns one result that keeps the name.
func (s *Sequence[T]) Evaluate(name string, relativeCount int) []diff.Result {
	if len(s.ops) == 0 {
		return []diff.Result{diff.Unchanged(name)}
	}

	results := make([]diff.Result, 0, len(s.ops))
	current := name
	for _, op := range s.ops {
		r := op.Rename(current, relativeCount)
		results = append(results, r)
		current = r.Output()
	}
	return results
}

// Preview evaluates name and wraps the steps with the labels of the
// operations that produced them
func (s *Sequence[T]) Preview(name string, relativeCount int) *ResultSequence {
	results := s.Evaluate(name, relativeCount)
	labels := make([]string, len(s.ops))
	for i, op := range s.ops {
		labels[i] = rename.Label(op)
	}
	return newResultSequence(results, labels)
}

// ResultingName returns the name after every operation has run
func (s *Sequence[T]) ResultingName(name string, relativeCount int) string {
	results := s.Evaluate(name, relativeCount)
	return results[len(results)-1].Output()
}

func (s *Sequence[T]) check(index, limit int) error {
	if index < 0 || index >= limit {
		return fmt.Errorf("%w: %d (length %d)", ErrIndexOutOfRange, index, len(s.ops))
	}
	return nil
}
