package cmd

import (
	"github.com/spf13/cobra"

	"github.com/amirkhaki/gofordummies/pkg/trace"
)

func newReplayCmd() *cobra.Command {
	var format string

	replayCmd := &cobra.Command{
		Use:   "replay TRACE",
		Short: "print the output of a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := trace.Load(args[0], format)
			if err != nil {
				return err
			}
			log.Debugf("replaying %d events from %s, lessons %v", len(events), args[0], trace.Lessons(events))
			return trace.Replay(cmd.OutOrStdout(), events)
		},
	}

	replayCmd.Flags().StringVarP(&format, "format", "f", "",
		"trace format: json or cbor (default detected from the file)")
	return replayCmd
}
