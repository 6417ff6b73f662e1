// Package models holds the in-memory data model shared between the ETL
// stages: the raw tabular snapshot and the records produced from it.
package models

import "go.mongodb.org/mongo-driver/bson"

// Record is one customer as an ordered field→value document. bson.D keeps
// the source column order all the way into the store.
type Record = bson.D

// Batch is the full set of records produced by one pipeline run.
type Batch = []Record

// RawTable is a parsed tabular file: named columns, one row per source
// record. Cells are string, int64, float64, or nil.
type RawTable struct {
	Columns []string
	Rows    [][]interface{}
}

// ColumnIndex returns the position of the named column, or -1 if the table
// has no such column.
func (t *RawTable) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

func (t *RawTable) NumRows() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

func (t *RawTable) AppendRow(row []interface{}) {
	t.Rows = append(t.Rows, row)
}
