package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

// memCache is an in-process AggregateCache for tests.
type memCache struct {
	store map[string][]byte
	sets  int
	hits  int
}

func newMemCache() *memCache {
	return &memCache{store: make(map[string][]byte)}
}

func (m *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := m.store[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	m.hits++
	return true, nil
}

func (m *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.store[key] = b
	m.sets++
	return nil
}

func TestAggregateCacheKey_NormalizesSelectors(t *testing.T) {
	a := AggregateCacheKey("industry_donut", "Grid  Upgrade", "", false)
	b := AggregateCacheKey("industry_donut", "  grid upgrade ", "", false)
	if a != b {
		t.Fatalf("expected equivalent selections to share a key")
	}

	c := AggregateCacheKey("industry_donut", "Irrigation", "", false)
	if a == c {
		t.Fatalf("expected distinct selections to differ")
	}

	d := AggregateCacheKey("skills_heatmap", "Grid Upgrade", "", false)
	if a == d {
		t.Fatalf("expected distinct ops to differ")
	}

	e := AggregateCacheKey("skills_heatmap", "Grid Upgrade", "", true)
	if d == e {
		t.Fatalf("expected top-five toggle to differ")
	}
}
