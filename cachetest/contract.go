package cachetest

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/goforj/pagecache"
)

// Options configures shared store contract checks.
type Options struct {
	// CaseName is used to namespace keys. Defaults to t.Name().
	CaseName string
	// NullSemantics enables relaxed expectations for the null store.
	NullSemantics bool
	// SkipCloneCheck disables the "get returns a cloned value" assertion.
	SkipCloneCheck bool
	// TTL controls the expiry duration used in TTL tests.
	TTL time.Duration
	// TTLWait is how long the harness waits for expiry to occur.
	TTLWait time.Duration
	// SkipFlush disables the flush assertion for drivers where it is expensive or unavailable.
	SkipFlush bool
}

// Store is the contract exercised by RunStoreContract.
type Store = pagecache.Store

// RunStoreContract runs a backend-agnostic store contract suite.
func RunStoreContract(t *testing.T, store Store, opts Options) {
	t.Helper()

	caseName := opts.CaseName
	if caseName == "" {
		caseName = t.Name()
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 50 * time.Millisecond
	}
	wait := opts.TTLWait
	if wait <= 0 {
		wait = 120 * time.Millisecond
	}

	ctx := context.Background()
	key := func(s string) string {
		return sanitize(caseName) + ":" + s
	}

	// Set/Get round-trip.
	if err := store.Set(ctx, key("alpha"), []byte("value"), time.Second); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	body, ok, err := store.Get(ctx, key("alpha"))
	if err != nil {
		t.Fatalf("get failed: ok=%v err=%v", ok, err)
	}
	if opts.NullSemantics {
		if ok {
			t.Fatalf("expected miss for null semantics")
		}
	} else {
		if !ok || string(body) != "value" {
			t.Fatalf("unexpected get result: ok=%v body=%q err=%v", ok, string(body), err)
		}
		if !opts.SkipCloneCheck {
			body[0] = 'X'
			body2, ok2, err2 := store.Get(ctx, key("alpha"))
			if err2 != nil || !ok2 || string(body2) != "value" {
				t.Fatalf("expected stored value unchanged, got ok=%v body=%q err=%v", ok2, string(body2), err2)
			}
		}
	}

	// TTL expiry.
	if err := store.Set(ctx, key("ttl"), []byte("v"), ttl); err != nil {
		t.Fatalf("set ttl failed: %v", err)
	}
	if err := waitForMiss(ctx, store, key("ttl"), wait); err != nil {
		t.Fatalf("expected ttl expiry: %v", err)
	}

	// Zero ttl keeps the value.
	if err := store.Set(ctx, key("forever"), []byte("v"), 0); err != nil {
		t.Fatalf("set without ttl failed: %v", err)
	}
	exists, err := store.Exists(ctx, key("forever"))
	if err != nil {
		t.Fatalf("exists failed: %v", err)
	}
	if exists == opts.NullSemantics {
		t.Fatalf("unexpected exists=%v for key without ttl", exists)
	}

	// Counters.
	n, err := store.Increment(ctx, key("counter"), 3)
	if err != nil {
		t.Fatalf("increment failed: %v", err)
	}
	if opts.NullSemantics {
		if n != 0 {
			t.Fatalf("expected null-like increment to return 0, got %d", n)
		}
	} else if n != 3 {
		t.Fatalf("expected increment=3, got %d", n)
	}
	n, err = store.Increment(ctx, key("counter"), -1)
	if err != nil {
		t.Fatalf("negative increment failed: %v", err)
	}
	if !opts.NullSemantics && n != 2 {
		t.Fatalf("expected increment=2, got %d", n)
	}
	if !opts.NullSemantics {
		raw, ok, err := store.Get(ctx, key("counter"))
		if err != nil || !ok || string(raw) != "2" {
			t.Fatalf("expected counter readable as bytes, got ok=%v body=%q err=%v", ok, string(raw), err)
		}
	}

	// Lists.
	size, err := store.Append(ctx, key("list"), []byte("a"), []byte("b"))
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}
	size, err = store.Append(ctx, key("list"), []byte("c"))
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}
	items, err := store.Range(ctx, key("list"), 0, -1)
	if err != nil {
		t.Fatalf("range failed: %v", err)
	}
	if opts.NullSemantics {
		if len(items) != 0 {
			t.Fatalf("expected null-like range to be empty, got %d items", len(items))
		}
	} else {
		if size != 3 {
			t.Fatalf("expected list size 3, got %d", size)
		}
		if got := joinItems(items); got != "a,b,c" {
			t.Fatalf("unexpected range result %q", got)
		}
		tail, err := store.Range(ctx, key("list"), -2, -1)
		if err != nil {
			t.Fatalf("range tail failed: %v", err)
		}
		if got := joinItems(tail); got != "b,c" {
			t.Fatalf("unexpected tail range %q", got)
		}
		empty, err := store.Range(ctx, key("missing-list"), 0, -1)
		if err != nil || len(empty) != 0 {
			t.Fatalf("expected empty range for missing list, got %d items err=%v", len(empty), err)
		}
	}

	// Delete.
	if err := store.Set(ctx, key("a"), []byte("1"), time.Second); err != nil {
		t.Fatalf("set a failed: %v", err)
	}
	if err := store.Set(ctx, key("b"), []byte("2"), time.Second); err != nil {
		t.Fatalf("set b failed: %v", err)
	}
	if err := store.Delete(ctx, key("a"), key("b")); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok, err := store.Get(ctx, key("a")); err != nil || ok {
		t.Fatalf("expected key a deleted; ok=%v err=%v", ok, err)
	}
	if _, ok, err := store.Get(ctx, key("b")); err != nil || ok {
		t.Fatalf("expected key b deleted; ok=%v err=%v", ok, err)
	}

	// Flush.
	if !opts.SkipFlush {
		if err := store.Set(ctx, key("flush"), []byte("x"), time.Second); err != nil {
			t.Fatalf("set flush failed: %v", err)
		}
		if err := store.Flush(ctx); err != nil {
			t.Fatalf("flush failed: %v", err)
		}
		if _, ok, err := store.Get(ctx, key("flush")); err != nil || ok {
			t.Fatalf("expected flush to clear key; ok=%v err=%v", ok, err)
		}
	}
}

func waitForMiss(ctx context.Context, store Store, key string, wait time.Duration) error {
	deadline := time.Now().Add(wait)
	for time.Now().Before(deadline) {
		_, ok, err := store.Get(ctx, key)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		time.Sleep(10 * time.Millisecond)
	}
	_, ok, err := store.Get(ctx, key)
	if err != nil {
		return err
	}
	if ok {
		return fmt.Errorf("key %q still present after %s", key, wait)
	}
	return nil
}

func joinItems(items [][]byte) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, string(item))
	}
	return strings.Join(parts, ",")
}

func sanitize(s string) string {
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
