package transform

import (
	"math"
	"sort"

	"pad2skills/internal/dataset"
)

// GroupCount is one bucket of an aggregation.
type GroupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// AggregateCounts counts rows per distinct value of groupColumn, sorted by
// count descending then key ascending. The counts always sum to the row count
// of the input.
func AggregateCounts(t *dataset.Table, groupColumn string) []GroupCount {
	counts := make(map[string]int)
	for i := 0; i < t.Len(); i++ {
		counts[t.Cell(i, groupColumn)]++
	}
	return sortCounts(counts)
}

// AggregateUnique counts distinct idColumn values per distinct value of
// groupColumn. Backs the occupations-by-industry donut, where each ESCO id
// counts once per industry no matter how many rows reference it.
func AggregateUnique(t *dataset.Table, groupColumn, idColumn string) []GroupCount {
	ids := make(map[string]map[string]bool)
	for i := 0; i < t.Len(); i++ {
		g := t.Cell(i, groupColumn)
		if ids[g] == nil {
			ids[g] = make(map[string]bool)
		}
		ids[g][t.Cell(i, idColumn)] = true
	}

	counts := make(map[string]int, len(ids))
	for g, set := range ids {
		counts[g] = len(set)
	}
	return sortCounts(counts)
}

func sortCounts(counts map[string]int) []GroupCount {
	out := make([]GroupCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, GroupCount{Key: k, Count: n})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Count != out[b].Count {
			return out[a].Count > out[b].Count
		}
		return out[a].Key < out[b].Key
	})
	return out
}

// Pivot is a dense rows-by-columns matrix of counts and percentages. Percentages
// are normalized within each column and rounded to one decimal, so every
// column of Percentages sums to ~100 for non-empty columns.
type Pivot struct {
	Rows        []string    `json:"rows"`
	Cols        []string    `json:"cols"`
	Counts      [][]int     `json:"counts"`
	Percentages [][]float64 `json:"percentages"`
}

func (p Pivot) Empty() bool {
	return len(p.Rows) == 0 || len(p.Cols) == 0
}

// PivotPercentages cross-tabulates rowColumn against colColumn. colOrder
// fixes the column ordering when provided (preparation levels render
// Low, then Medium, then High); otherwise columns sort ascending. Rows sort ascending.
// Cells with no data hold zero.
func PivotPercentages(t *dataset.Table, rowColumn, colColumn string, colOrder []string) Pivot {
	if t == nil || t.Empty() {
		return Pivot{}
	}

	type cell struct{ row, col string }
	counts := make(map[cell]int)
	rowSet := make(map[string]bool)
	colSet := make(map[string]bool)
	for i := 0; i < t.Len(); i++ {
		r, c := t.Cell(i, rowColumn), t.Cell(i, colColumn)
		counts[cell{r, c}]++
		rowSet[r] = true
		colSet[c] = true
	}

	rows := make([]string, 0, len(rowSet))
	for r := range rowSet {
		rows = append(rows, r)
	}
	sort.Strings(rows)

	var cols []string
	if len(colOrder) > 0 {
		for _, c := range colOrder {
			if colSet[c] {
				cols = append(cols, c)
				delete(colSet, c)
			}
		}
	}
	rest := make([]string, 0, len(colSet))
	for c := range colSet {
		rest = append(rest, c)
	}
	sort.Strings(rest)
	cols = append(cols, rest...)

	p := Pivot{
		Rows:        rows,
		Cols:        cols,
		Counts:      make([][]int, len(rows)),
		Percentages: make([][]float64, len(rows)),
	}

	colTotals := make([]int, len(cols))
	for i, r := range rows {
		p.Counts[i] = make([]int, len(cols))
		p.Percentages[i] = make([]float64, len(cols))
		for j, c := range cols {
			n := counts[cell{r, c}]
			p.Counts[i][j] = n
			colTotals[j] += n
		}
	}
	for i := range rows {
		for j := range cols {
			if colTotals[j] == 0 {
				continue
			}
			pct := float64(p.Counts[i][j]) / float64(colTotals[j]) * 100
			p.Percentages[i][j] = math.Round(pct*10) / 10
		}
	}

	return p
}
