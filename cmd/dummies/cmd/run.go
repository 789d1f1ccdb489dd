package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/amirkhaki/gofordummies/pkg/config"
	"github.com/amirkhaki/gofordummies/pkg/lessons"
	"github.com/amirkhaki/gofordummies/pkg/trace"
)

func newRunCmd(opts *options) *cobra.Command {
	var flags config.Flags

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run lessons in order",
		Long: `Run prints the selected lessons, always in the fixed lesson order
whatever order they are named in. With --trace the printed output is also
recorded so it can be replayed later.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(opts)
			if err != nil {
				return err
			}
			flags.Apply(c, cmd.Flags())
			return runLessons(cmd.OutOrStdout(), c)
		},
	}
	flags.Register(runCmd.Flags())
	return runCmd
}

// runLessons prints the banner and lessons c selects to w, recording a
// trace when c asks for one.
func runLessons(w io.Writer, c *config.Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	ls, err := lessons.Select(c.Run.Lessons)
	if err != nil {
		return err
	}
	log.Debugf("running %d lessons", len(ls))

	if c.Trace.Path == "" {
		if c.Run.Banner {
			fmt.Fprintln(w, lessons.Banner)
		}
		lessons.Run(w, ls, lessons.Hooks{})
		return nil
	}

	sink, err := trace.NewFileSink(c.Trace.Path, c.Trace.Format)
	if err != nil {
		return err
	}
	rec := trace.NewRecorder(w, sink)
	if c.Run.Banner {
		fmt.Fprintln(rec, lessons.Banner)
	}
	lessons.Run(rec, ls, lessons.Hooks{Enter: rec.Enter, Exit: rec.Exit})

	if err := rec.Finalize(); err != nil {
		return fmt.Errorf("lessons ran but the trace was not saved: %w", err)
	}
	log.Infof("trace saved to %s (%s)", sink.Path(), c.Trace.Format)
	return nil
}
