package etl

import (
	"context"

	"github.com/acme-corp/churn-ingest/internal/config"
	"github.com/acme-corp/churn-ingest/pkg/errs"
	"github.com/acme-corp/churn-ingest/pkg/logger"
)

// Pipeline runs the three stages strictly in sequence over one in-memory
// batch. No retries, no rollback: any stage failure ends the run.
type Pipeline struct {
	Config      *config.Config
	Extractor   Extractor
	Transformer *Transformer
	Loader      Loader
	Logger      *logger.Logger
	// DryRun skips the load stage after extract and transform succeed.
	DryRun bool
}

func NewPipeline(cfg *config.Config, ext Extractor, tr *Transformer, loader Loader, log *logger.Logger, dryRun bool) *Pipeline {
	return &Pipeline{
		Config:      cfg,
		Extractor:   ext,
		Transformer: tr,
		Loader:      loader,
		Logger:      log,
		DryRun:      dryRun,
	}
}

func (p *Pipeline) Run(ctx context.Context) error {
	p.Logger.Infof("ETL pipeline started | source=%s", p.Config.DataSource)

	table, err := p.Extractor.Extract(ctx, p.Config.DataSource)
	if err != nil {
		p.Logger.Errorf("Data extraction failed: %v", err)
		return errs.Wrap(errs.KindPipeline, "extraction stage failed", err)
	}

	batch, err := p.Transformer.Transform(table)
	if err != nil {
		p.Logger.Errorf("Data transformation failed: %v", err)
		return errs.Wrap(errs.KindPipeline, "transformation stage failed", err)
	}

	if p.DryRun {
		p.Logger.Infof("[DRY RUN] Skipping load | records=%d", len(batch))
		return nil
	}

	inserted, err := p.Loader.Load(ctx, batch)
	if err != nil {
		p.Logger.Errorf("Data load failed: %v", err)
		return errs.Wrap(errs.KindPipeline, "load stage failed", err)
	}

	p.Logger.Infof("ETL pipeline completed | total_inserted=%d", inserted)
	return nil
}
