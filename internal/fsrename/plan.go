// Package fsrename applies a rename sequence to the files of a directory.
//
// A Plan is built first and shows what would happen, including the names
// that can't be renamed. Apply carries out the plan and returns a Journal
// that Undo can reverse.
package fsrename

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pstuifzand/tui-renamer/internal/sequence"
)

// Op renames OldName to NewName inside the plan directory
type Op struct {
	OldName string `json:"oldName"`
	NewName string `json:"newName"`
}

// Conflict is a name the plan leaves alone, and why
type Conflict struct {
	OldName string `json:"oldName"`
	NewName string `json:"newName"`
	Reason  string `json:"reason"`
}

// Conflict reasons
const (
	ReasonEmptyName    = "new name is empty"
	ReasonInvalidName  = "new name is not a plain file name"
	ReasonDuplicate    = "another file gets the same name"
	ReasonExistingFile = "a file with that name already exists"
)

// Options change how a plan is built
type Options struct {
	// KeepExtension runs the sequence over the name without its extension
	// and puts the extension back afterwards
	KeepExtension bool

	// Workers bounds the goroutines used for the preview, 0 uses GOMAXPROCS
	Workers int
}

// Plan is the outcome of running a sequence over the names in Dir
type Plan struct {
	Dir       string
	Ops       []Op
	Conflicts []Conflict
	Unchanged int

	// Previews of the sorted names, without their extension when
	// Options.KeepExtension is set. Names and Extensions line up with them.
	Previews   []*sequence.ResultSequence
	Names      []string
	Extensions []string
}

// ListNames returns the regular files in dir, sorted naturally
func ListNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	SortNatural(names)
	return names, nil
}

// BuildPlan previews names through seq. Names are sorted naturally and
// the position of a name in that order is its relative count.
func BuildPlan(ctx context.Context, dir string, names []string, seq *sequence.Pipeline, opts Options) (*Plan, error) {
	sorted := append([]string(nil), names...)
	SortNatural(sorted)

	stems, exts := sorted, make([]string, len(sorted))
	if opts.KeepExtension {
		stems = make([]string, len(sorted))
		for i, name := range sorted {
			exts[i] = filepath.Ext(name)
			stems[i] = strings.TrimSuffix(name, exts[i])
		}
	}

	previews, err := sequence.PreviewBatch(ctx, seq, stems, opts.Workers)
	if err != nil {
		return nil, fmt.Errorf("failed to preview names: %w", err)
	}

	plan := &Plan{Dir: dir, Previews: previews, Names: sorted, Extensions: exts}
	var candidates []Op
	for i, rs := range previews {
		newName := rs.NewName() + exts[i]
		if newName == sorted[i] {
			plan.Unchanged++
			continue
		}
		candidates = append(candidates, Op{OldName: sorted[i], NewName: newName})
	}

	plan.resolve(candidates)
	slog.Debug("built rename plan", "dir", dir, "names", len(sorted),
		"renames", len(plan.Ops), "conflicts", len(plan.Conflicts), "unchanged", plan.Unchanged)
	return plan, nil
}

// resolve splits candidates into ops and conflicts. Dropping a candidate
// keeps its file in place, which can block another candidate, so checks
// repeat until nothing changes.
func (p *Plan) resolve(candidates []Op) {
	reasons := make(map[string]string)

	targets := make(map[string]int)
	for _, c := range candidates {
		switch {
		case c.NewName == "":
			reasons[c.OldName] = ReasonEmptyName
		case !plainName(c.NewName):
			reasons[c.OldName] = ReasonInvalidName
		default:
			targets[fsKey(c.NewName)]++
		}
	}
	for _, c := range candidates {
		if _, bad := reasons[c.OldName]; !bad && targets[fsKey(c.NewName)] > 1 {
			reasons[c.OldName] = ReasonDuplicate
		}
	}

	for changed := true; changed; {
		changed = false
		moving := make(map[string]bool)
		for _, c := range candidates {
			if _, bad := reasons[c.OldName]; !bad {
				moving[fsKey(c.OldName)] = true
			}
		}
		for _, c := range candidates {
			if _, bad := reasons[c.OldName]; bad {
				continue
			}
			key := fsKey(c.NewName)
			if key == fsKey(c.OldName) || moving[key] {
				continue
			}
			if _, err := os.Lstat(filepath.Join(p.Dir, c.NewName)); err == nil {
				reasons[c.OldName] = ReasonExistingFile
				changed = true
			}
		}
	}

	for _, c := range candidates {
		if reason, bad := reasons[c.OldName]; bad {
			p.Conflicts = append(p.Conflicts, Conflict{OldName: c.OldName, NewName: c.NewName, Reason: reason})
			continue
		}
		p.Ops = append(p.Ops, c)
	}
}

// plainName reports whether name stays inside the directory
func plainName(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/`+string(filepath.Separator))
}

// NewName returns the full new name of the i-th sorted name, extension
// included
func (p *Plan) NewName(i int) string {
	return p.Previews[i].NewName() + p.Extensions[i]
}

// HasConflicts reports whether some names can't be renamed
func (p *Plan) HasConflicts() bool {
	return len(p.Conflicts) > 0
}
