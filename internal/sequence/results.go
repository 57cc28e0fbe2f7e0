package sequence

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/pstuifzand/tui-renamer/internal/diff"
)

// ErrStepOutOfRange is returned when a step index is outside [0, NumSteps)
var ErrStepOutOfRange = errors.New("step index out of range")

// ResultSequence is the read-only record of one name passing through a
// sequence, one result per step
type ResultSequence struct {
	steps  []diff.Result
	labels []string
}

// NewResultSequence wraps the results of an evaluation. The slice is
// copied.
func NewResultSequence(steps []diff.Result) *ResultSequence {
	return newResultSequence(steps, nil)
}

func newResultSequence(steps []diff.Result, labels []string) *ResultSequence {
	rs := &ResultSequence{
		steps:  make([]diff.Result, len(steps)),
		labels: make([]string, len(steps)),
	}
	copy(rs.steps, steps)
	copy(rs.labels, labels)
	return rs
}

// OriginalName is the input of the first step, or "" when there are no
// steps
func (rs *ResultSequence) OriginalName() string {
	if len(rs.steps) == 0 {
		return ""
	}
	return rs.steps[0].Original()
}

// NewName is the output of the last step, or "" when there are no steps
func (rs *ResultSequence) NewName() string {
	if len(rs.steps) == 0 {
		return ""
	}
	return rs.steps[len(rs.steps)-1].Output()
}

// Changed reports whether the new name differs from the original
func (rs *ResultSequence) Changed() bool {
	return rs.OriginalName() != rs.NewName()
}

// NumSteps returns the number of steps
func (rs *ResultSequence) NumSteps() int {
	return len(rs.steps)
}

// Step returns the result of step index
func (rs *ResultSequence) Step(index int) (diff.Result, error) {
	if err := rs.check(index); err != nil {
		return diff.Empty, err
	}
	return rs.steps[index], nil
}

// StepLabel returns the name of the operation behind step index. Steps
// of an empty sequence have no label.
func (rs *ResultSequence) StepLabel(index int) (string, error) {
	if err := rs.check(index); err != nil {
		return "", err
	}
	return rs.labels[index], nil
}

// Steps returns the results paired with their labels, ready for
// diff.BuildLines
func (rs *ResultSequence) Steps() []diff.Step {
	steps := make([]diff.Step, len(rs.steps))
	for i, r := range rs.steps {
		steps[i] = diff.Step{Label: rs.labels[i], Result: r}
	}
	return steps
}

// NameBeforeAtStep renders the input of step index with the text that
// step deletes wrapped in color markup
func (rs *ResultSequence) NameBeforeAtStep(index int, deletionColor colorful.Color) (string, error) {
	if err := rs.check(index); err != nil {
		return "", err
	}
	return rs.steps[index].OriginalColored(deletionColor), nil
}

// NameAfterAtStep renders the output of step index with the text that
// step inserts wrapped in color markup
func (rs *ResultSequence) NameAfterAtStep(index int, insertionColor colorful.Color) (string, error) {
	if err := rs.check(index); err != nil {
		return "", err
	}
	return rs.steps[index].OutputColored(insertionColor), nil
}

func (rs *ResultSequence) check(index int) error {
	if index < 0 || index >= len(rs.steps) {
		return fmt.Errorf("%w: %d (steps: %d)", ErrStepOutOfRange, index, len(rs.steps))
	}
	return nil
}
