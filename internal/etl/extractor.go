package etl

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/acme-corp/churn-ingest/pkg/errs"
	"github.com/acme-corp/churn-ingest/pkg/logger"
	"github.com/acme-corp/churn-ingest/pkg/models"
	"github.com/acme-corp/churn-ingest/pkg/utils"
)

// DatasetExtractor pulls a snapshot from the dataset hub and parses the
// single CSV file it must contain into a RawTable.
type DatasetExtractor struct {
	Downloader Downloader
	Logger     *logger.Logger
}

func NewDatasetExtractor(dl Downloader, log *logger.Logger) *DatasetExtractor {
	return &DatasetExtractor{Downloader: dl, Logger: log}
}

func (e *DatasetExtractor) Extract(ctx context.Context, source string) (*models.RawTable, error) {
	e.Logger.Infof("Starting data extraction | source=%s", source)

	dir, err := e.Downloader.Download(ctx, source)
	if err != nil {
		return nil, errs.Wrap(errs.KindExtract, "dataset download failed", err)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, errs.Wrap(errs.KindExtract, "listing snapshot files", err)
	}
	if len(files) != 1 {
		return nil, errs.Newf(errs.KindExtract,
			"expected exactly one CSV file in dataset directory, found %d", len(files))
	}

	table, err := parseCSV(files[0])
	if err != nil {
		return nil, errs.Wrap(errs.KindExtract, "parsing dataset file", err)
	}
	if table.NumRows() == 0 {
		return nil, errs.New(errs.KindExtract, "extracted dataset is empty")
	}

	e.Logger.Infof("Data extraction completed | rows=%d columns=%d", table.NumRows(), len(table.Columns))
	return table, nil
}

// parseCSV reads a CSV file into a RawTable. The first row is the header;
// cells go through type inference so numeric-looking values become numbers.
func parseCSV(path string) (*models.RawTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, err
	}

	table := &models.RawTable{Columns: header}
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		cells := make([]interface{}, len(row))
		for i, cell := range row {
			cells[i] = utils.InferValue(cell)
		}
		table.AppendRow(cells)
	}

	return table, nil
}
