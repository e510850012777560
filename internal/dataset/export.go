package dataset

import (
	"bytes"
	"encoding/csv"
)

// ExportCSV serializes the table back to CSV, header first, preserving column
// order. Reloading the output yields the same row set and column order.
func ExportCSV(t *Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(t.Columns()); err != nil {
		return nil, err
	}
	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)
		// Rows are padded on load, but a projected view can still carry
		// fewer cells than columns.
		if len(row) < len(t.Columns()) {
			padded := make([]string, len(t.Columns()))
			copy(padded, row)
			row = padded
		}
		if err := w.Write(row[:len(t.Columns())]); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
