package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/amirkhaki/gofordummies/pkg/lessons"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list lessons in run order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for i, l := range lessons.All() {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, l.Name, l.Summary)
			}
			return tw.Flush()
		},
	}
}
