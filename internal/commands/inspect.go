package commands

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

// dumper prints values without pointer addresses so dumps can be diffed
var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func newInspectCommand(opts *rootOptions) *cobra.Command {
	var (
		source sourceFlags
		name   string
		count  int
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Dump a sequence and its serialized form for debugging",
		Long: `Dump the decoded operations of a sequence together with the string it
serializes to. With --name the spans every step produces for that name
are dumped too.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			seq, err := source.load(opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			serialized, err := seq.Serialize()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "serialized (hash %016x):\n%s\n\n", seq.Hash(), serialized)

			for i, op := range seq.Operations() {
				fmt.Fprintf(out, "%d. %s\n", i+1, op.ID())
				dumper.Fdump(out, op)
			}

			if name == "" {
				return nil
			}

			fmt.Fprintf(out, "\nsteps for %q (count %d):\n", name, count)
			for i, result := range seq.Evaluate(name, count) {
				fmt.Fprintf(out, "%d. %q -> %q\n", i+1, result.Original(), result.Output())
				dumper.Fdump(out, result.Diffs())
			}
			return nil
		},
	}

	source.register(cmd)
	cmd.Flags().StringVarP(&name, "name", "n", "", "also dump the steps for this name")
	cmd.Flags().IntVar(&count, "count", 0, "relative count used with --name")

	return cmd
}
