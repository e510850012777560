package dataset

// Table is an in-memory CSV dataset: a fixed column order plus string cells.
// Tables are immutable after load; every transformation returns a new Table
// that shares the underlying row slices of its source.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

func NewTable(columns []string, rows [][]string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)

	idx := make(map[string]int, len(cols))
	for i, c := range cols {
		idx[c] = i
	}

	return &Table{columns: cols, index: idx, rows: rows}
}

func (t *Table) Columns() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

func (t *Table) HasColumn(name string) bool {
	if t == nil {
		return false
	}
	_, ok := t.index[name]
	return ok
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

func (t *Table) Empty() bool {
	return t.Len() == 0
}

// Cell returns the value at (row, column). Unknown columns and out-of-range
// rows yield the empty string, mirroring how the dashboard treats absent data.
func (t *Table) Cell(row int, column string) string {
	if t == nil || row < 0 || row >= len(t.rows) {
		return ""
	}
	i, ok := t.index[column]
	if !ok || i >= len(t.rows[row]) {
		return ""
	}
	return t.rows[row][i]
}

// Row returns the raw cells of one row. Callers must not mutate the result.
func (t *Table) Row(row int) []string {
	if t == nil || row < 0 || row >= len(t.rows) {
		return nil
	}
	return t.rows[row]
}

// WithRows builds a table with the same column contract but a different row
// set. Used by the transform package to materialize filtered views.
func (t *Table) WithRows(rows [][]string) *Table {
	if t == nil {
		return nil
	}
	return &Table{columns: t.columns, index: t.index, rows: rows}
}

// Slice returns rows [from, to) as a new table. Bounds are clamped so a page
// past the end degrades to an empty table rather than panicking.
func (t *Table) Slice(from, to int) *Table {
	if t == nil {
		return nil
	}
	n := len(t.rows)
	if from < 0 {
		from = 0
	}
	if to > n {
		to = n
	}
	if from >= to {
		return t.WithRows(nil)
	}
	return t.WithRows(t.rows[from:to])
}

// Select projects the table onto the given columns in the given order,
// optionally renaming them for display. Unknown columns project to empty
// cells so a partially damaged file still renders.
func (t *Table) Select(columns []string, renames map[string]string) *Table {
	if t == nil {
		return nil
	}

	out := make([]string, 0, len(columns))
	src := make([]int, 0, len(columns))
	for _, c := range columns {
		name := c
		if renamed, ok := renames[c]; ok {
			name = renamed
		}
		out = append(out, name)
		if i, ok := t.index[c]; ok {
			src = append(src, i)
		} else {
			src = append(src, -1)
		}
	}

	rows := make([][]string, 0, len(t.rows))
	for _, r := range t.rows {
		row := make([]string, len(src))
		for j, i := range src {
			if i >= 0 && i < len(r) {
				row[j] = r[i]
			}
		}
		rows = append(rows, row)
	}

	return NewTable(out, rows)
}
