package pagecache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type memoryStore struct {
	cache *gocache.Cache
	// mu serialises read-modify-write operations (counters and lists).
	mu sync.Mutex
}

func newMemoryStore(cleanupInterval time.Duration) Store {
	if cleanupInterval <= 0 {
		cleanupInterval = defaultMemoryCleanupInterval
	}
	return &memoryStore{
		cache: gocache.New(gocache.NoExpiration, cleanupInterval),
	}
}

func (s *memoryStore) Driver() Driver {
	return DriverMemory
}

func (s *memoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	item, ok := s.cache.Get(key)
	if !ok {
		return nil, false, nil
	}
	body, ok := item.([]byte)
	if !ok {
		return nil, false, nil
	}
	return cloneBytes(body), true, nil
}

func (s *memoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.cache.Set(key, cloneBytes(value), expiration(ttl))
	return nil
}

func (s *memoryStore) Increment(_ context.Context, key string, delta int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.readInt64(key)
	if err != nil {
		return 0, err
	}
	next := current + delta
	s.cache.Set(key, []byte(strconv.FormatInt(next, 10)), gocache.NoExpiration)
	return next, nil
}

func (s *memoryStore) Append(_ context.Context, key string, values ...[]byte) (int64, error) {
	if len(values) == 0 {
		return 0, errors.New("append requires at least one value")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.readList(key)
	if err != nil {
		return 0, err
	}
	next := make([][]byte, 0, len(list)+len(values))
	next = append(next, list...)
	for _, value := range values {
		next = append(next, cloneBytes(value))
	}
	s.cache.Set(key, next, gocache.NoExpiration)
	return int64(len(next)), nil
}

func (s *memoryStore) Range(_ context.Context, key string, start, stop int64) ([][]byte, error) {
	s.mu.Lock()
	list, err := s.readList(key)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	from, to, ok := listBounds(int64(len(list)), start, stop)
	if !ok {
		return [][]byte{}, nil
	}
	out := make([][]byte, 0, to-from)
	for _, item := range list[from:to] {
		out = append(out, cloneBytes(item))
	}
	return out, nil
}

func (s *memoryStore) Exists(_ context.Context, key string) (bool, error) {
	_, ok := s.cache.Get(key)
	return ok, nil
}

func (s *memoryStore) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		s.cache.Delete(key)
	}
	return nil
}

func (s *memoryStore) Flush(_ context.Context) error {
	s.cache.Flush()
	return nil
}

func (s *memoryStore) readInt64(key string) (int64, error) {
	body, ok := s.cache.Get(key)
	if !ok {
		return 0, nil
	}
	switch value := body.(type) {
	case []byte:
		n, err := strconv.ParseInt(string(value), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("cache key %q does not contain a numeric value", key)
		}
		return n, nil
	case int64:
		return value, nil
	default:
		return 0, fmt.Errorf("cache key %q does not contain a numeric value", key)
	}
}

func (s *memoryStore) readList(key string) ([][]byte, error) {
	item, ok := s.cache.Get(key)
	if !ok {
		return nil, nil
	}
	list, ok := item.([][]byte)
	if !ok {
		return nil, fmt.Errorf("cache key %q does not contain a list", key)
	}
	return list, nil
}

func expiration(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return gocache.NoExpiration
	}
	return ttl
}
