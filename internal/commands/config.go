package commands

import (
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newConfigCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change configuration values",
	}

	cmd.AddCommand(newConfigShowCommand(opts))
	cmd.AddCommand(newConfigSetCommand(opts))

	return cmd
}

func newConfigShowCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "List every configuration value, --set overrides included",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all := opts.cfg.GetAll()
			keys := make([]string, 0, len(all))
			for k := range all {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			tbl := newTable()
			tbl.AppendHeader(table.Row{"Key", "Value"})
			for _, k := range keys {
				tbl.AppendRow(table.Row{k, all[k]})
			}
			tbl.AppendFooter(table.Row{opts.cfg.Path(), ""})

			fmt.Fprintln(cmd.OutOrStdout(), tbl.Render())
			return nil
		},
	}
}

func newConfigSetCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Store a configuration value in the config file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.cfg.Persist(args[0], args[1]); err != nil {
				return err
			}
			if err := opts.cfg.Save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s = %q to %s.\n", args[0], args[1], opts.cfg.Path())
			return nil
		},
	}
}
