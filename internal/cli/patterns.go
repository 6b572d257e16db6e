package cli

import (
	"fmt"
	"text/tabwriter"

	"lifegrid/pkg/sims/life"

	"github.com/spf13/cobra"
)

func newPatternsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List the built-in seed patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tCELLS")
			for _, name := range life.PatternNames() {
				p, err := life.LookupPattern(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%d\n", p.Name, len(p.Cells))
			}
			return tw.Flush()
		},
	}
}
