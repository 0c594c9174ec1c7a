// Package cli implements the scg-ingest command tree.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCmd returns the scg-ingest root command. level is raised to debug
// when --debug is given (or the config file asks for it).
func NewRootCmd(logger *zap.Logger, level zap.AtomicLevel, version string) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "scg-ingest",
		Short: "Customer CSV ingestion",
		Long: `scg-ingest reads customer records from a CSV file and reports
failures as a chain of stages, most specific first.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				level.SetLevel(zap.DebugLevel)
			}
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging, including each error context entry")

	cmd.AddCommand(NewLoadCmd(logger, level))

	return cmd
}
