package etl

import (
	"context"

	"github.com/acme-corp/churn-ingest/pkg/models"
)

// Downloader fetches a dataset snapshot and returns the local directory
// holding its files.
type Downloader interface {
	Download(ctx context.Context, source string) (string, error)
}

type Extractor interface {
	Extract(ctx context.Context, source string) (*models.RawTable, error)
}

type Loader interface {
	Load(ctx context.Context, batch models.Batch) (int, error)
}
