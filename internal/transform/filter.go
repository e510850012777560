// Package transform holds the pure table operations behind every dashboard
// view: filtering, deduplication, count aggregation and percentage pivots.
// All functions tolerate empty input and never mutate their source table.
package transform

import (
	"sort"
	"strings"

	"pad2skills/internal/dataset"
)

// All is the selector value that leaves a table unfiltered. The UI renders it
// as "ALL" for projects and "All Industries" for industries; both normalize
// to this sentinel.
const All = "ALL"

// IsAll reports whether a selector value means "no filter".
func IsAll(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "all", "all industries":
		return true
	}
	return false
}

// FilterEquals returns the rows whose column equals value. The All sentinel
// returns the input table unchanged; a value absent from the table yields an
// empty table, not an error.
func FilterEquals(t *dataset.Table, column, value string) *dataset.Table {
	if t == nil {
		return nil
	}
	if IsAll(value) {
		return t
	}

	var rows [][]string
	for i := 0; i < t.Len(); i++ {
		if t.Cell(i, column) == value {
			rows = append(rows, t.Row(i))
		}
	}
	return t.WithRows(rows)
}

// FilterTrue keeps rows whose column holds a truthy flag. The source data
// serializes booleans as "True"/"False".
func FilterTrue(t *dataset.Table, column string) *dataset.Table {
	if t == nil {
		return nil
	}

	var rows [][]string
	for i := 0; i < t.Len(); i++ {
		switch strings.ToLower(strings.TrimSpace(t.Cell(i, column))) {
		case "true", "1":
			rows = append(rows, t.Row(i))
		}
	}
	return t.WithRows(rows)
}

// DedupeBy keeps the first row per distinct key in file order. Used for the
// all-projects occupation view, where each occupation should count once even
// when several projects reference it.
func DedupeBy(t *dataset.Table, column string) *dataset.Table {
	if t == nil {
		return nil
	}

	seen := make(map[string]bool, t.Len())
	var rows [][]string
	for i := 0; i < t.Len(); i++ {
		key := t.Cell(i, column)
		if seen[key] {
			continue
		}
		seen[key] = true
		rows = append(rows, t.Row(i))
	}
	return t.WithRows(rows)
}

// DistinctValues returns the sorted distinct non-blank values of a column.
func DistinctValues(t *dataset.Table, column string) []string {
	if t == nil {
		return nil
	}

	seen := make(map[string]bool)
	out := make([]string, 0)
	for i := 0; i < t.Len(); i++ {
		v := strings.TrimSpace(t.Cell(i, column))
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// SortBy orders rows by the given columns ascending, with a stable fallback
// to the original file order.
func SortBy(t *dataset.Table, columns ...string) *dataset.Table {
	if t == nil {
		return nil
	}

	order := make([]int, t.Len())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		for _, c := range columns {
			va, vb := t.Cell(order[a], c), t.Cell(order[b], c)
			if va != vb {
				return va < vb
			}
		}
		return false
	})

	rows := make([][]string, 0, t.Len())
	for _, i := range order {
		rows = append(rows, t.Row(i))
	}
	return t.WithRows(rows)
}

// SortByRank orders rows by a caller-supplied ranking of one column's values
// (e.g. Low < Medium < High), then by the remaining columns ascending.
// Values missing from the ranking sort last.
func SortByRank(t *dataset.Table, rankColumn string, rank map[string]int, then ...string) *dataset.Table {
	if t == nil {
		return nil
	}

	pos := func(i int) int {
		if r, ok := rank[t.Cell(i, rankColumn)]; ok {
			return r
		}
		return len(rank)
	}

	order := make([]int, t.Len())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ra, rb := pos(order[a]), pos(order[b])
		if ra != rb {
			return ra < rb
		}
		for _, c := range then {
			va, vb := t.Cell(order[a], c), t.Cell(order[b], c)
			if va != vb {
				return va < vb
			}
		}
		return false
	})

	rows := make([][]string, 0, t.Len())
	for _, i := range order {
		rows = append(rows, t.Row(i))
	}
	return t.WithRows(rows)
}
