package models

import "testing"

func TestRawTable(t *testing.T) {
	table := &RawTable{Columns: []string{"customerID", "tenure"}}
	if table.NumRows() != 0 {
		t.Errorf("fresh table should have 0 rows, got %d", table.NumRows())
	}

	table.AppendRow([]interface{}{"A", int64(12)})
	table.AppendRow([]interface{}{"B", int64(3)})
	if table.NumRows() != 2 {
		t.Errorf("expected 2 rows, got %d", table.NumRows())
	}

	if idx := table.ColumnIndex("tenure"); idx != 1 {
		t.Errorf("expected tenure at index 1, got %d", idx)
	}
	if idx := table.ColumnIndex("nope"); idx != -1 {
		t.Errorf("expected -1 for unknown column, got %d", idx)
	}

	var nilTable *RawTable
	if nilTable.NumRows() != 0 {
		t.Error("nil table should report 0 rows")
	}
}
