package etl

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/acme-corp/churn-ingest/pkg/errs"
	"github.com/acme-corp/churn-ingest/pkg/logger"
	"github.com/acme-corp/churn-ingest/pkg/models"
	"github.com/acme-corp/churn-ingest/pkg/utils"
)

const (
	// FieldCustomerID is the primary key: unique per record within a batch
	// and within the target collection.
	FieldCustomerID    = "customerID"
	FieldSeniorCitizen = "SeniorCitizen"
	FieldTotalCharges  = "TotalCharges"
)

// Transformer applies the column-level cleanup rules and converts the table
// into store-ready records.
type Transformer struct {
	Logger *logger.Logger
}

func NewTransformer(log *logger.Logger) *Transformer {
	return &Transformer{Logger: log}
}

// Transform runs dedup, normalization, and coercion in order, then
// materializes one record per surviving row. Either a full batch comes back
// or an error before any record is produced.
func (t *Transformer) Transform(table *models.RawTable) (models.Batch, error) {
	t.Logger.Infof("Starting data transformation")

	if table.NumRows() == 0 {
		return nil, errs.New(errs.KindTransform, "cannot transform an empty table")
	}

	rows, err := dedupByCustomerID(table)
	if err != nil {
		return nil, err
	}

	normalizeSeniorCitizen(table, rows)
	coerceTotalCharges(table, rows)

	batch := materialize(table.Columns, rows)

	t.Logger.Infof("Data transformation completed | records=%d", len(batch))
	return batch, nil
}

// dedupByCustomerID keeps the first occurrence of each customerID value,
// preserving the original row order.
func dedupByCustomerID(table *models.RawTable) ([][]interface{}, error) {
	idx := table.ColumnIndex(FieldCustomerID)
	if idx < 0 {
		return nil, errs.Newf(errs.KindTransform, "missing primary key column '%s'", FieldCustomerID)
	}

	seen := make(map[string]bool, table.NumRows())
	rows := make([][]interface{}, 0, table.NumRows())
	for _, row := range table.Rows {
		key := fmt.Sprintf("%v", row[idx])
		if seen[key] {
			continue
		}
		seen[key] = true
		rows = append(rows, row)
	}
	return rows, nil
}

// normalizeSeniorCitizen maps the 1/0 flag to "Yes"/"No". Any other value
// passes through unchanged.
func normalizeSeniorCitizen(table *models.RawTable, rows [][]interface{}) {
	idx := table.ColumnIndex(FieldSeniorCitizen)
	if idx < 0 {
		return
	}

	for _, row := range rows {
		switch row[idx] {
		case int64(1), float64(1), "1":
			row[idx] = "Yes"
		case int64(0), float64(0), "0":
			row[idx] = "No"
		}
	}
}

// coerceTotalCharges turns the monetary column into a float or nil. Values
// that cannot be parsed become nil rather than failing the batch.
func coerceTotalCharges(table *models.RawTable, rows [][]interface{}) {
	idx := table.ColumnIndex(FieldTotalCharges)
	if idx < 0 {
		return
	}

	for _, row := range rows {
		row[idx] = utils.CoerceFloat(row[idx])
	}
}

// materialize converts rows into ordered documents, keeping the
// column-to-key mapping and row order.
func materialize(columns []string, rows [][]interface{}) models.Batch {
	batch := make(models.Batch, 0, len(rows))
	for _, row := range rows {
		doc := make(models.Record, 0, len(columns))
		for i, col := range columns {
			doc = append(doc, bson.E{Key: col, Value: row[i]})
		}
		batch = append(batch, doc)
	}
	return batch
}
