package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/ncruces/go-strftime"
	"github.com/spf13/cobra"

	"github.com/pstuifzand/tui-renamer/internal/fsrename"
)

const (
	journalFileName   = "last-rename.json"
	defaultDateFormat = "%Y-%m-%d %H:%M"
)

// Sentinel errors for apply and undo.
var (
	ErrConflicts = errors.New("some names can't be renamed, use --skip-conflicts to rename the others")
	ErrNoJournal = errors.New("no rename to undo")
)

// ApplyCommand holds the flags of the apply command.
type ApplyCommand struct {
	opts   *rootOptions
	source sourceFlags

	dryRun        bool
	skipConflicts bool
	keepExtension bool
	journalPath   string
}

func newApplyCommand(opts *rootOptions) *cobra.Command {
	ac := &ApplyCommand{opts: opts}

	cmd := &cobra.Command{
		Use:   "apply <directory>",
		Short: "Rename the files of a directory",
		Long: `Rename the files of a directory with a sequence.

Names that would collide, become empty or leave the directory are
reported and the command stops unless --skip-conflicts is given. The
renames are recorded in a journal so "tui-renamer undo" can reverse them.`,
		Args: cobra.ExactArgs(1),
		RunE: ac.run,
	}

	ac.source.register(cmd)
	cmd.Flags().BoolVar(&ac.dryRun, "dry-run", false, "show the renames without doing them")
	cmd.Flags().BoolVar(&ac.skipConflicts, "skip-conflicts", false, "rename what can be renamed and leave conflicting names")
	cmd.Flags().BoolVarP(&ac.keepExtension, "keep-extension", "k", false, "leave file extensions untouched")
	cmd.Flags().StringVar(&ac.journalPath, "journal", "", "journal file (default next to the preset file)")

	return cmd
}

func (ac *ApplyCommand) run(cmd *cobra.Command, args []string) error {
	seq, err := ac.source.load(ac.opts)
	if err != nil {
		return err
	}

	plan, err := buildPlan(cmd, ac.opts, args[0], seq, ac.keepExtension)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	p := ac.opts.painter()

	if plan.HasConflicts() {
		p.warn.Fprintf(out, "%s names can't be renamed:\n", formatCount(len(plan.Conflicts)))
		fmt.Fprintln(out, p.conflictTable(plan.Conflicts))
		if !ac.skipConflicts {
			return ErrConflicts
		}
	}

	if len(plan.Ops) == 0 {
		fmt.Fprintln(out, "Nothing to rename.")
		return nil
	}

	if ac.dryRun {
		for _, op := range plan.Ops {
			fmt.Fprintf(out, "%s -> %s\n", op.OldName, op.NewName)
		}
		fmt.Fprintf(out, "Would rename %s of %s files.\n",
			formatCount(len(plan.Ops)), formatCount(len(plan.Ops)+len(plan.Conflicts)+plan.Unchanged))
		return nil
	}

	journal, err := fsrename.Apply(plan)
	if err != nil {
		return err
	}

	path := journalPath(ac.opts, ac.journalPath)
	if err := journal.Save(path); err != nil {
		slog.Error("renamed files but could not write the journal", "path", path, "error", err)
		return err
	}
	slog.Info("applied renames", "dir", plan.Dir, "renamed", len(plan.Ops), "journal", path)

	p.ok.Fprintf(out, "Renamed %s %s.\n", formatCount(len(plan.Ops)), english.PluralWord(len(plan.Ops), "file", ""))
	return nil
}

// UndoCommand holds the flags of the undo command.
type UndoCommand struct {
	opts        *rootOptions
	journalPath string
}

func newUndoCommand(opts *rootOptions) *cobra.Command {
	uc := &UndoCommand{opts: opts}

	cmd := &cobra.Command{
		Use:   "undo",
		Short: "Reverse the last apply",
		Args:  cobra.NoArgs,
		RunE:  uc.run,
	}

	cmd.Flags().StringVar(&uc.journalPath, "journal", "", "journal file (default next to the preset file)")

	return cmd
}

func (uc *UndoCommand) run(cmd *cobra.Command, _ []string) error {
	path := journalPath(uc.opts, uc.journalPath)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return ErrNoJournal
	}

	journal, err := fsrename.LoadJournal(path)
	if err != nil {
		return err
	}

	if err := fsrename.Undo(journal); err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		slog.Warn("failed to remove journal", "path", path, "error", err)
	}

	uc.opts.painter().ok.Fprintf(cmd.OutOrStdout(), "Restored %s %s renamed %s (%s).\n",
		formatCount(len(journal.Ops)), english.PluralWord(len(journal.Ops), "file", ""),
		humanize.Time(journal.AppliedAt), uc.opts.formatDate(journal.AppliedAt))
	return nil
}

// formatDate formats t with the strftime pattern of the date_format
// setting
func (o *rootOptions) formatDate(t time.Time) string {
	format := o.cfg.Get("date_format")
	if format == "" {
		format = defaultDateFormat
	}
	return strftime.Format(format, t)
}

func journalPath(opts *rootOptions, flag string) string {
	if flag != "" {
		return flag
	}
	return filepath.Join(filepath.Dir(opts.cfg.Get("preset_file")), journalFileName)
}
