// Package cmd implements the dummies command tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	"github.com/tliron/commonlog/simple"

	"github.com/amirkhaki/gofordummies/pkg/config"
)

var log = commonlog.GetLogger("dummies")

// options shared by every command.
type options struct {
	verbose    int
	configPath string
}

// NewRootCmd builds the dummies command tree. Without a subcommand it runs
// every lesson.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "dummies",
		Short: "Go language walkthrough, one printed lesson per feature",
		Long: `dummies prints annotated demonstrations of Go's core syntax and
semantics: variables, operators, functions, scope, flow control, loops,
arrays, types with embedding, and pointers.

Run it without arguments to see every lesson in order.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(opts.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(opts)
			if err != nil {
				return err
			}
			return runLessons(cmd.OutOrStdout(), c)
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().CountVarP(&opts.verbose, "verbose", "v",
		"diagnostic verbosity (repeat for more)")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"path of a dummies.toml file (default $"+config.EnvConfig+")")

	rootCmd.AddCommand(
		newRunCmd(opts),
		newListCmd(),
		newSourceCmd(),
		newReplayCmd(),
	)
	return rootCmd
}

// Execute runs the command tree against os.Args, reporting any error on
// stderr.
func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "dummies: %v\n", err)
	}
	return err
}

// configureLogging sends diagnostics to the current os.Stderr at the given
// verbosity. The backend is unbuffered: a buffered one only flushes when
// the process leaves through kutil's exit handlers.
func configureLogging(verbosity int) {
	backend := simple.NewBackend()
	backend.Buffered = false
	commonlog.SetBackend(backend)
	commonlog.Configure(verbosity, nil)
}

func loadConfig(opts *options) (*config.Config, error) {
	c, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if c.Path != "" {
		log.Infof("loaded config from %s", c.Path)
	}
	return c, nil
}
