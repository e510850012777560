package transform

import "pad2skills/internal/dataset"

// WithDerived appends a computed column, materializing a new table. The
// skills view uses this to attach the preparation category derived from the
// O*NET job zone before pivoting or sorting on it.
func WithDerived(t *dataset.Table, column string, derive func(t *dataset.Table, row int) string) *dataset.Table {
	if t == nil {
		return nil
	}

	columns := append(t.Columns(), column)
	rows := make([][]string, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		src := t.Row(i)
		if len(src) > len(columns)-1 {
			src = src[:len(columns)-1]
		}
		row := make([]string, 0, len(columns))
		row = append(row, src...)
		for len(row) < len(columns)-1 {
			row = append(row, "")
		}
		row = append(row, derive(t, i))
		rows = append(rows, row)
	}
	return dataset.NewTable(columns, rows)
}
