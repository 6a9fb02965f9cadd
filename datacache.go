package pagecache

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"
)

// StoreMethod is the name under which DataCache.Store calls are recorded.
const StoreMethod = "DataCache.Store"

// DataCache keeps arbitrary scalar values under random keys and records every
// Store call.
type DataCache struct {
	store Store
	save  Method[any, string]
}

// NewDataCache flushes store and returns a DataCache writing to it.
func NewDataCache(ctx context.Context, store Store) (*DataCache, error) {
	if err := store.Flush(ctx); err != nil {
		return nil, err
	}
	c := &DataCache{store: store}
	c.save = CallHistory(store, StoreMethod, CountCalls[any, string](store, StoreMethod, c.put))
	return c, nil
}

// Store saves data under a new UUID key and returns the key. Accepted types
// are string, []byte, the integer types and the float types.
func (c *DataCache) Store(ctx context.Context, data any) (string, error) {
	return c.save(ctx, data)
}

func (c *DataCache) put(ctx context.Context, data any) (string, error) {
	body, err := encodeScalar(data)
	if err != nil {
		return "", err
	}
	key := uuid.NewString()
	if err := c.store.Set(ctx, key, body, 0); err != nil {
		return "", err
	}
	return key, nil
}

// Get returns the raw bytes stored under key.
func (c *DataCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return c.store.Get(ctx, key)
}

// GetString returns the value under key as a string.
func (c *DataCache) GetString(ctx context.Context, key string) (string, bool, error) {
	return GetAs(ctx, c, key, func(b []byte) (string, error) { return string(b), nil })
}

// GetInt returns the value under key parsed as a base 10 integer.
func (c *DataCache) GetInt(ctx context.Context, key string) (int64, bool, error) {
	return GetAs(ctx, c, key, func(b []byte) (int64, error) {
		return strconv.ParseInt(string(b), 10, 64)
	})
}

// GetAs reads key and converts the raw bytes with fn.
func GetAs[T any](ctx context.Context, c *DataCache, key string, fn func([]byte) (T, error)) (T, bool, error) {
	var zero T
	body, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return zero, ok, err
	}
	out, err := fn(body)
	if err != nil {
		return zero, false, err
	}
	return out, true, nil
}

// Calls returns how many times Store has been called.
func (c *DataCache) Calls(ctx context.Context) (int64, error) {
	return CallCount(ctx, c.store, StoreMethod)
}

// Replay writes the Store call history to w.
func (c *DataCache) Replay(ctx context.Context, w io.Writer) error {
	return Replay(ctx, c.store, StoreMethod, w)
}

func encodeScalar(data any) ([]byte, error) {
	switch v := data.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return cloneBytes(v), nil
	case int:
		return []byte(strconv.FormatInt(int64(v), 10)), nil
	case int8:
		return []byte(strconv.FormatInt(int64(v), 10)), nil
	case int16:
		return []byte(strconv.FormatInt(int64(v), 10)), nil
	case int32:
		return []byte(strconv.FormatInt(int64(v), 10)), nil
	case int64:
		return []byte(strconv.FormatInt(v, 10)), nil
	case uint:
		return []byte(strconv.FormatUint(uint64(v), 10)), nil
	case uint8:
		return []byte(strconv.FormatUint(uint64(v), 10)), nil
	case uint16:
		return []byte(strconv.FormatUint(uint64(v), 10)), nil
	case uint32:
		return []byte(strconv.FormatUint(uint64(v), 10)), nil
	case uint64:
		return []byte(strconv.FormatUint(v, 10)), nil
	case float32:
		return []byte(strconv.FormatFloat(float64(v), 'g', -1, 32)), nil
	case float64:
		return []byte(strconv.FormatFloat(v, 'g', -1, 64)), nil
	default:
		return nil, fmt.Errorf("unsupported data type %T", data)
	}
}
