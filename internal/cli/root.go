// Package cli handles the command-line interface logic
// using the Cobra library.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/acme-corp/churn-ingest/pkg/logger"
)

func NewRootCmd(log *logger.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "churn-ingest",
		Short: "Batch ingestion of the customer churn dataset into MongoDB",
		Long: `churn-ingest downloads the customer churn dataset snapshot, applies
column-level cleanup, and bulk-loads the records into a MongoDB collection,
replacing its prior contents.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.AddCommand(NewIngestCmd(log))

	return rootCmd
}
