package pagecache

import (
	"context"
	"time"
)

// Store is the key-value contract shared by every driver.
//
// Set with ttl <= 0 keeps the value until it is deleted. Counters and lists
// never expire.
type Store interface {
	Driver() Driver
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Increment(ctx context.Context, key string, delta int64) (int64, error)
	Append(ctx context.Context, key string, values ...[]byte) (int64, error)
	Range(ctx context.Context, key string, start, stop int64) ([][]byte, error)
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, keys ...string) error
	Flush(ctx context.Context) error
}

// listBounds resolves redis-style inclusive indexes against a list of size n.
// ok is false when the range selects nothing.
func listBounds(n, start, stop int64) (int64, int64, bool) {
	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}
	if n == 0 || start > stop {
		return 0, 0, false
	}
	return start, stop + 1, true
}

func cloneBytes(value []byte) []byte {
	if value == nil {
		return nil
	}
	clone := make([]byte, len(value))
	copy(clone, value)
	return clone
}
