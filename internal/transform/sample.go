package transform

import (
	"math/rand"

	"pad2skills/internal/dataset"
)

// sampleSeed keeps example rows stable across renders, matching the fixed
// seed the dashboard has always used.
const sampleSeed = 42

// Sample returns up to n rows drawn without replacement. The same table
// yields the same sample on every call.
func Sample(t *dataset.Table, n int) *dataset.Table {
	if t == nil {
		return nil
	}
	if n >= t.Len() {
		return t
	}
	if n <= 0 {
		return t.WithRows(nil)
	}

	rng := rand.New(rand.NewSource(sampleSeed))
	order := rng.Perm(t.Len())

	rows := make([][]string, 0, n)
	for _, i := range order[:n] {
		rows = append(rows, t.Row(i))
	}
	return t.WithRows(rows)
}
