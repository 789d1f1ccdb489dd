package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amirkhaki/gofordummies/pkg/lessons"
	"github.com/amirkhaki/gofordummies/pkg/source"
)

func newSourceCmd() *cobra.Command {
	var all bool

	sourceCmd := &cobra.Command{
		Use:   "source [NAME]...",
		Short: "print the annotated source of lessons",
		Long: `Source prints the code behind a lesson, comments included. NAME is a
lesson name (any case) or the name of a helper function such as
PassByReference or Route.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fnd, err := source.NewFinder(lessons.Sources)
			if err != nil {
				return err
			}

			if all {
				for _, fn := range fnd.Funcs() {
					fmt.Fprintf(cmd.OutOrStdout(), "// %s:%d\n%s\n\n", fn.File, fn.Line, fn.Text)
				}
				return nil
			}
			if len(args) == 0 {
				return errors.New("name a lesson or function, or pass --all")
			}

			var jerr error
			for _, name := range args {
				if l, ok := lessons.Lookup(name); ok {
					name = l.Name
				}
				fn, err := fnd.Find(name)
				if err != nil {
					jerr = errors.Join(jerr, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "// %s:%d\n%s\n\n", fn.File, fn.Line, fn.Text)
			}
			return jerr
		},
	}

	sourceCmd.Flags().BoolVarP(&all, "all", "a", false,
		"print every function of every lesson")
	return sourceCmd
}
