package analysis

import (
	"testing"

	"github.com/KaramelBytes/reelviz-cli/internal/dataset"
)

// table builds a Table from a header and rows of raw values.
func table(t *testing.T, header []string, rows ...[]string) *dataset.Table {
	t.Helper()
	recs := make([]dataset.Record, len(rows))
	for i, row := range rows {
		r := dataset.Record{}
		for j, h := range header {
			if j < len(row) {
				r[h] = row[j]
			}
		}
		recs[i] = r
	}
	tbl, err := dataset.FromRecords(recs, header, dataset.DefaultSchema())
	if err != nil {
		t.Fatalf("FromRecords: %v", err)
	}
	return tbl
}

func column(t *testing.T, tbl *dataset.Table, name string) dataset.Column {
	t.Helper()
	c, ok := tbl.Column(name)
	if !ok {
		t.Fatalf("column %s not found", name)
	}
	return c
}
