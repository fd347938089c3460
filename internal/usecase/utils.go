package usecase

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// invalidateByPattern deletes every cache key matching the pattern.
// Write paths call this for the ledger and statement namespaces so
// stale derived views never outlive the records behind them.
func invalidateByPattern(ctx context.Context, rdb *redis.Client, pattern string) {
	iter := rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		_ = rdb.Del(ctx, iter.Val()).Err()
	}
}

func invalidateDerivedCaches(ctx context.Context, rdb *redis.Client) {
	invalidateByPattern(ctx, rdb, "ledger:*")
	invalidateByPattern(ctx, rdb, "statement:*")
}

func floatValue(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
