package cli

import (
	"github.com/spf13/cobra"

	"github.com/acme-corp/churn-ingest/internal/config"
	"github.com/acme-corp/churn-ingest/internal/etl"
	"github.com/acme-corp/churn-ingest/pkg/dataset"
	"github.com/acme-corp/churn-ingest/pkg/logger"
)

type IngestOptions struct {
	CacheDir string
	DryRun   bool
}

func NewIngestCmd(log *logger.Logger) *cobra.Command {
	opts := &IngestOptions{}

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Run the extract-transform-load job",
		RunE: func(c *cobra.Command, args []string) error {
			return runIngest(c, opts, log)
		},
	}

	cmd.Flags().StringVarP(&opts.CacheDir, "cache-dir", "c", ".cache/datasets", "Directory for downloaded dataset snapshots")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Extract and transform only, skip the load stage")

	return cmd
}

func runIngest(cmd *cobra.Command, opts *IngestOptions, log *logger.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	hub := dataset.NewClient(opts.CacheDir)
	pipeline := etl.NewPipeline(
		cfg,
		etl.NewDatasetExtractor(hub, log),
		etl.NewTransformer(log),
		etl.NewMongoLoader(cfg, log),
		log,
		opts.DryRun,
	)

	return pipeline.Run(cmd.Context())
}
