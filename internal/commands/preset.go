package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/pstuifzand/tui-renamer/internal/rename"
)

func newPresetCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage saved sequences",
	}

	cmd.AddCommand(newPresetListCommand(opts))
	cmd.AddCommand(newPresetSaveCommand(opts))
	cmd.AddCommand(newPresetShowCommand(opts))
	cmd.AddCommand(newPresetDeleteCommand(opts))
	cmd.AddCommand(newPresetFindCommand(opts))

	return cmd
}

func newPresetListCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := opts.presets()
			if err != nil {
				return err
			}

			tbl := newTable()
			tbl.AppendHeader(table.Row{"Name", "Operations"})
			for _, name := range store.Names() {
				seq, err := store.Get(name)
				if err != nil {
					tbl.AppendRow(table.Row{name, opts.painter().warn.Sprint(err)})
					continue
				}
				tbl.AppendRow(table.Row{name, seq.Len()})
			}
			tbl.AppendFooter(table.Row{fmt.Sprintf("%s presets", formatCount(store.Len())), ""})

			fmt.Fprintln(cmd.OutOrStdout(), tbl.Render())
			return nil
		},
	}
}

func newPresetSaveCommand(opts *rootOptions) *cobra.Command {
	var (
		source    sourceFlags
		overwrite bool
	)

	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save a sequence as a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := source.load(opts)
			if err != nil {
				return err
			}

			store, err := opts.presets()
			if err != nil {
				return err
			}
			if err := store.Save(args[0], seq, overwrite); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved preset %q with %d operations.\n", args[0], seq.Len())
			return nil
		},
	}

	source.register(cmd)
	cmd.Flags().BoolVarP(&overwrite, "force", "f", false, "replace an existing preset")

	return cmd
}

func newPresetShowCommand(opts *rootOptions) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show the operations of a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.presets()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if raw {
				data, err := store.Raw(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(out, data)
				return nil
			}

			seq, err := store.Get(args[0])
			if err != nil {
				return err
			}

			p := opts.painter()
			tbl := newTable()
			tbl.AppendHeader(table.Row{"#", "Operation", "Id", "Status"})
			for i, op := range seq.Operations() {
				status := p.ok.Sprint("ok")
				if op.HasErrors() {
					status = p.warn.Sprint("invalid")
				}
				tbl.AppendRow(table.Row{i + 1, rename.Label(op), op.ID(), status})
			}

			fmt.Fprintln(out, tbl.Render())
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print the stored serialized sequence")

	return cmd
}

func newPresetDeleteCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.presets()
			if err != nil {
				return err
			}
			if err := store.Delete(args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted preset %q.\n", args[0])
			return nil
		},
	}
}

func newPresetFindCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "find <query>",
		Short: "Find presets by fuzzy name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.presets()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			matches := store.Find(args[0])
			if len(matches) == 0 {
				fmt.Fprintf(out, "No presets match %q.\n", args[0])
				return nil
			}
			for _, name := range matches {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
}
