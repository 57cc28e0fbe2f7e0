package fsrename

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// ErrNothingToApply is returned for a plan or journal without renames
var ErrNothingToApply = errors.New("nothing to rename")

// Journal records the renames Apply made so they can be undone
type Journal struct {
	Dir       string    `json:"dir"`
	AppliedAt time.Time `json:"appliedAt"`
	Ops       []Op      `json:"ops"`
}

// Apply renames the files of the plan. Files first move to temporary
// names and then to their new names, so names may be swapped or
// rotated. Conflicts are skipped. If any rename fails every file is
// moved back and the error is returned.
func Apply(plan *Plan) (*Journal, error) {
	if len(plan.Ops) == 0 {
		return nil, ErrNothingToApply
	}
	if err := renameAll(plan.Dir, plan.Ops); err != nil {
		return nil, err
	}
	return &Journal{Dir: plan.Dir, AppliedAt: time.Now(), Ops: append([]Op(nil), plan.Ops...)}, nil
}

// Undo moves the files of an applied journal back to their old names
func Undo(j *Journal) error {
	if len(j.Ops) == 0 {
		return ErrNothingToApply
	}

	reverse := make([]Op, len(j.Ops))
	for i, op := range j.Ops {
		reverse[i] = Op{OldName: op.NewName, NewName: op.OldName}
	}
	for _, op := range reverse {
		if _, err := os.Lstat(filepath.Join(j.Dir, op.OldName)); err != nil {
			return fmt.Errorf("failed to undo, %s is missing: %w", op.OldName, err)
		}
	}
	return renameAll(j.Dir, reverse)
}

type step struct {
	from, tmp, to string
}

func renameAll(dir string, ops []Op) error {
	suffix := ".~renametmp~" + strconv.FormatInt(time.Now().UnixNano(), 36)

	// phase 1: every file to a temporary name
	steps := make([]step, 0, len(ops))
	for _, op := range ops {
		from := filepath.Join(dir, op.OldName)
		tmp := from + suffix
		for i := 0; exists(tmp); i++ {
			tmp = from + suffix + strconv.Itoa(i)
		}

		if err := os.Rename(from, tmp); err != nil {
			rollback(steps, nil)
			return fmt.Errorf("failed to rename %s: %w", op.OldName, err)
		}
		steps = append(steps, step{from: from, tmp: tmp, to: filepath.Join(dir, op.NewName)})
	}

	// phase 2: temporary names to the new names
	for i, st := range steps {
		if exists(st.to) {
			rollback(steps[i:], steps[:i])
			return fmt.Errorf("failed to rename %s: %s already exists", filepath.Base(st.from), filepath.Base(st.to))
		}
		if err := os.Rename(st.tmp, st.to); err != nil {
			rollback(steps[i:], steps[:i])
			return fmt.Errorf("failed to rename %s: %w", filepath.Base(st.from), err)
		}
		slog.Debug("renamed file", "from", filepath.Base(st.from), "to", filepath.Base(st.to))
	}
	return nil
}

// rollback returns files to their original names. pending files are still
// at their temporary name, done files are at their new name.
func rollback(pending, done []step) {
	for i := len(done) - 1; i >= 0; i-- {
		if err := os.Rename(done[i].to, done[i].tmp); err != nil {
			slog.Error("failed to roll back rename", "file", done[i].to, "error", err)
		}
	}
	for _, st := range append(append([]step(nil), done...), pending...) {
		if err := os.Rename(st.tmp, st.from); err != nil {
			slog.Error("failed to roll back rename", "file", st.tmp, "error", err)
		}
	}
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// Save writes the journal as JSON
func (j *Journal) Save(path string) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(j, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal journal: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write journal: %w", err)
	}
	return nil
}

// LoadJournal reads a journal written by Save
func LoadJournal(path string) (*Journal, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}

	var j Journal
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("failed to parse journal: %w", err)
	}
	return &j, nil
}
