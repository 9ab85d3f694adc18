// Package commands defines the command line interface of the deal service.
package commands

import (
	"fmt"

	"github.com/guttosm/deal-service/internal/driver"
	"github.com/guttosm/deal-service/internal/logger"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	logLevel  string
	logPretty bool
}

// NewRootCmd returns the root command. Without a subcommand it reads test
// cases from stdin and prints one cost per line to stdout.
func NewRootCmd() (*cobra.Command, error) {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "deal-service",
		Short: "Calculates the minimum cost of buying a quantity through power-of-three deals",
		Long: `Reads a test case count t followed by t quantities from stdin and prints
the minimum cost of each quantity on its own line.

Use the serve command to expose the same calculation over HTTP.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger.InitWithWriter(opts.logLevel, opts.logPretty, cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return driver.Run(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level written to stderr")
	rootCmd.PersistentFlags().BoolVar(&opts.logPretty, "log-pretty", false, "human readable logs")

	if cmd, err := NewServeCommand(); err != nil {
		return nil, fmt.Errorf("could not set up 'serve' command: %w", err)
	} else {
		rootCmd.AddCommand(cmd)
	}

	return rootCmd, nil
}
