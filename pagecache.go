// Package pagecache counts and caches page fetches in a key-value store.
//
// Every fetch bumps a per-URL access counter; bodies are kept for PageTTL so
// repeated fetches of the same URL are served from the store.
package pagecache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// PageTTL is how long a fetched body stays cached.
const PageTTL = 10 * time.Second

const (
	countKeyPrefix  = "count:"
	cachedKeyPrefix = "cached:"
)

// FetchFunc retrieves the body served at url.
type FetchFunc func(ctx context.Context, url string) (string, error)

// CountKey returns the store key of the access counter for url.
func CountKey(url string) string { return countKeyPrefix + url }

// CachedKey returns the store key of the cached body for url.
func CachedKey(url string) string { return cachedKeyPrefix + url }

// PageCache wraps a FetchFunc with access counting and caching.
//
// Concurrent misses for the same URL are not deduplicated: each caller
// fetches and the last write wins.
type PageCache struct {
	store    Store
	fetch    FetchFunc
	ttl      time.Duration
	observer Observer
}

// New binds a fetch function to a store.
//
// Example: cache a fetcher
//
//	ctx := context.Background()
//	pages := pagecache.New(pagecache.NewMemoryStore(ctx), pagecache.NewHTTPFetcher(nil))
//	body, _ := pages.Get(ctx, "http://example.com")
//	fmt.Println(len(body) > 0) // true
func New(store Store, fetch FetchFunc) *PageCache {
	return &PageCache{
		store: store,
		fetch: fetch,
		ttl:   PageTTL,
	}
}

// CountAndCache decorates fetch so that it counts and caches through store.
//
// Example: decorate a fetch function
//
//	getPage := pagecache.CountAndCache(store, pagecache.NewHTTPFetcher(nil))
//	body, err := getPage(ctx, "http://example.com")
func CountAndCache(store Store, fetch FetchFunc) FetchFunc {
	return New(store, fetch).Get
}

// WithObserver attaches an observer to receive a get_page event per call.
func (p *PageCache) WithObserver(o Observer) *PageCache {
	p.observer = o
	return p
}

// Store returns the underlying store.
func (p *PageCache) Store() Store {
	return p.store
}

// Get returns the body for url, fetching it only when no cached copy exists.
// Errors from the store or the fetch function are returned unchanged.
func (p *PageCache) Get(ctx context.Context, url string) (string, error) {
	start := time.Now()
	if _, err := p.store.Increment(ctx, CountKey(url), 1); err != nil {
		p.observe(ctx, url, false, err, start)
		return "", err
	}

	cached, ok, err := p.store.Get(ctx, CachedKey(url))
	if err != nil {
		p.observe(ctx, url, false, err, start)
		return "", err
	}
	// An empty body is treated like a missing one.
	if ok && len(cached) > 0 {
		p.observe(ctx, url, true, nil, start)
		return string(cached), nil
	}

	if p.fetch == nil {
		err := errors.New("page cache requires a fetch function")
		p.observe(ctx, url, false, err, start)
		return "", err
	}
	body, err := p.fetch(ctx, url)
	if err != nil {
		p.observe(ctx, url, false, err, start)
		return "", err
	}
	if err := p.store.Set(ctx, CachedKey(url), []byte(body), p.ttl); err != nil {
		p.observe(ctx, url, false, err, start)
		return "", err
	}
	p.observe(ctx, url, false, nil, start)
	return body, nil
}

// Count returns how many times url has been requested. Unknown URLs report 0.
func (p *PageCache) Count(ctx context.Context, url string) (int64, error) {
	return readCounter(ctx, p.store, CountKey(url))
}

func (p *PageCache) observe(ctx context.Context, url string, hit bool, err error, start time.Time) {
	if p.observer == nil {
		return
	}
	p.observer.OnCacheOp(ctx, "get_page", url, hit, err, time.Since(start), p.store.Driver())
}

func readCounter(ctx context.Context, store Store, key string) (int64, error) {
	body, ok, err := store.Get(ctx, key)
	if err != nil || !ok {
		return 0, err
	}
	n, err := strconv.ParseInt(string(body), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("cache key %q does not contain a numeric value", key)
	}
	return n, nil
}
