package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pstuifzand/tui-renamer/internal/fsrename"
	"github.com/pstuifzand/tui-renamer/internal/sequence"
	"github.com/pstuifzand/tui-renamer/internal/theme"
	"github.com/pstuifzand/tui-renamer/internal/ui"
)

// PreviewCommand holds the flags of the preview command.
type PreviewCommand struct {
	opts   *rootOptions
	source sourceFlags

	names         []string
	steps         bool
	tui           bool
	keepExtension bool
}

func newPreviewCommand(opts *rootOptions) *cobra.Command {
	pc := &PreviewCommand{opts: opts}

	cmd := &cobra.Command{
		Use:   "preview [directory]",
		Short: "Show how a sequence renames the files of a directory",
		Long: `Show how a sequence renames the files of a directory, or the names
given with --name. Nothing is renamed.

Files are sorted naturally (file2 before file10); the position of a file
in that order is its count for enumerating operations.`,
		Args: cobra.MaximumNArgs(1),
		RunE: pc.run,
	}

	pc.source.register(cmd)
	cmd.Flags().StringArrayVarP(&pc.names, "name", "n", nil, "preview this name instead of reading a directory (repeatable)")
	cmd.Flags().BoolVarP(&pc.steps, "steps", "s", false, "show every operation step")
	cmd.Flags().BoolVar(&pc.tui, "tui", false, "browse the preview in a terminal view")
	cmd.Flags().BoolVarP(&pc.keepExtension, "keep-extension", "k", false, "leave file extensions untouched")

	return cmd
}

func (pc *PreviewCommand) run(cmd *cobra.Command, args []string) error {
	seq, err := pc.source.load(pc.opts)
	if err != nil {
		return err
	}

	var (
		previews  []*sequence.ResultSequence
		rows      []nameChange
		conflicts []fsrename.Conflict
		title     = "Preview"
	)

	if len(pc.names) > 0 {
		previews, err = sequence.PreviewBatch(cmd.Context(), seq, pc.names, workersFromConfig(pc.opts))
		if err != nil {
			return fmt.Errorf("failed to preview names: %w", err)
		}
		rows = changesFromPreviews(previews)
	} else {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}
		plan, err := buildPlan(cmd, pc.opts, dir, seq, pc.keepExtension)
		if err != nil {
			return err
		}
		previews, conflicts = plan.Previews, plan.Conflicts
		rows = changesFromPlan(plan)
		title = "Preview " + dir
	}

	if pc.tui {
		return pc.runTUI(title, previews, len(conflicts))
	}

	out := cmd.OutOrStdout()
	p := pc.opts.painter()
	if pc.steps {
		p.writeSteps(out, previews)
	} else {
		fmt.Fprintln(out, p.previewTable(rows))
	}

	if len(conflicts) > 0 {
		fmt.Fprintln(out)
		p.warn.Fprintf(out, "%s names can't be renamed:\n", formatCount(len(conflicts)))
		fmt.Fprintln(out, p.conflictTable(conflicts))
	}
	return nil
}

func (pc *PreviewCommand) runTUI(title string, previews []*sequence.ResultSequence, conflicts int) error {
	ins, del := pc.opts.cfg.Colors()
	t := theme.LoadThemeOrDefault(pc.opts.cfg.Get("theme")).
		WithDiffColors(theme.FromColorful(ins), theme.FromColorful(del))

	screen, err := ui.NewScreen(t)
	if err != nil {
		return err
	}
	defer screen.Close()

	view := ui.NewPreviewView(title, previews)
	if conflicts > 0 {
		view.SetStatus(formatCount(conflicts) + " conflicts")
	}
	return ui.Run(screen, view)
}

func workersFromConfig(opts *rootOptions) int {
	n, err := strconv.Atoi(opts.cfg.Get("workers"))
	if err != nil {
		return 0
	}
	return n
}

// buildPlan lists dir and plans the renames of its files
func buildPlan(cmd *cobra.Command, opts *rootOptions, dir string, seq *sequence.Pipeline, keepExtension bool) (*fsrename.Plan, error) {
	names, err := fsrename.ListNames(dir)
	if err != nil {
		return nil, err
	}

	return fsrename.BuildPlan(cmd.Context(), dir, names, seq, fsrename.Options{
		KeepExtension: keepExtension,
		Workers:       workersFromConfig(opts),
	})
}
