package cachefake

import (
	"context"
	"sync"
	"testing"
)

// Fetcher is a scripted fetch function that records every URL it is asked for.
type Fetcher struct {
	// Body is returned for every URL unless Err is set.
	Body string
	// Err, when set, is returned instead of Body.
	Err error

	mu    sync.Mutex
	calls map[string]int
}

// NewFetcher returns a Fetcher answering every URL with body.
func NewFetcher(body string) *Fetcher {
	return &Fetcher{Body: body, calls: make(map[string]int)}
}

// Fetch satisfies pagecache.FetchFunc.
func (f *Fetcher) Fetch(_ context.Context, url string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[url]++
	if f.Err != nil {
		return "", f.Err
	}
	return f.Body, nil
}

// SetBody changes the body returned by later fetches.
func (f *Fetcher) SetBody(body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Body = body
}

// Calls returns how many times url was fetched.
func (f *Fetcher) Calls(url string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[url]
}

// AssertFetched verifies url was fetched the expected number of times.
func (f *Fetcher) AssertFetched(t *testing.T, url string, times int) {
	t.Helper()
	if got := f.Calls(url); got != times {
		t.Fatalf("expected fetch %q called %d times, got %d", url, times, got)
	}
}
