package usecase

import (
	"context"
	"time"
)

// AggregateCache memoizes derived aggregates by their filter selection. The
// Redis implementation degrades to a permanent miss when unreachable, so
// usecases treat every cache error as a miss.
type AggregateCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

func cacheGet(ctx context.Context, c AggregateCache, key string, out any) bool {
	if c == nil {
		return false
	}
	ok, err := c.GetJSON(ctx, key, out)
	return ok && err == nil
}

func cacheSet(ctx context.Context, c AggregateCache, key string, value any) {
	if c == nil {
		return
	}
	_ = c.SetJSON(ctx, key, value, 0)
}
