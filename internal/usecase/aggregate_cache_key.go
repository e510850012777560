package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

// aggregateKeyInput normalizes a filter selection so equivalent selections
// (case, spacing, the ALL spellings) share a cache entry.
type aggregateKeyInput struct {
	Op       string `json:"op"`
	Project  string `json:"project"`
	Industry string `json:"industry"`
	TopFive  bool   `json:"top_five"`
}

func normalizeSelector(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), " ")
}

// AggregateCacheKey derives the cache key for one aggregate over one filter
// selection. Derived aggregates are pure functions of (table, selection), so
// the key plus the loader's mod-signature cache make repeated renders cheap.
func AggregateCacheKey(op, project, industry string, topFive bool) string {
	in := aggregateKeyInput{
		Op:       op,
		Project:  normalizeSelector(project),
		Industry: normalizeSelector(industry),
		TopFive:  topFive,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "agg:" + op + ":" + hex.EncodeToString(sum[:])
}
