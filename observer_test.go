package pagecache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
)

type observerSpy struct {
	ops  []string
	hits []bool
	errs []error
}

func (o *observerSpy) OnCacheOp(_ context.Context, op string, key string, hit bool, err error, dur time.Duration, driver Driver) {
	_ = key
	_ = dur
	_ = driver
	o.ops = append(o.ops, op)
	o.hits = append(o.hits, hit)
	o.errs = append(o.errs, err)
}

func TestWithObserverHooks(t *testing.T) {
	obs := &observerSpy{}
	pages := New(newMemoryStore(0), func(context.Context, string) (string, error) {
		return "body", nil
	}).WithObserver(obs)

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if _, err := pages.Get(ctx, "http://a.test"); err != nil {
			t.Fatalf("get failed: %v", err)
		}
	}

	if len(obs.ops) != 2 || obs.ops[0] != "get_page" {
		t.Fatalf("expected two get_page events, got %v", obs.ops)
	}
	if obs.hits[0] || !obs.hits[1] {
		t.Fatalf("expected miss then hit, got %v", obs.hits)
	}
}

func TestObserverFuncNilIsNoop(t *testing.T) {
	var f ObserverFunc
	f.OnCacheOp(context.Background(), "get_page", "k", false, nil, 0, DriverMemory)
}

func TestLogObserverWritesEntries(t *testing.T) {
	handler := memory.New()
	logger := &log.Logger{Handler: handler, Level: log.DebugLevel}
	obs := LogObserver{Logger: logger}

	obs.OnCacheOp(context.Background(), "get_page", "http://a.test", true, nil, time.Millisecond, DriverMemory)
	obs.OnCacheOp(context.Background(), "get_page", "http://b.test", false, errors.New("down"), time.Millisecond, DriverRedis)

	if len(handler.Entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(handler.Entries))
	}
	first := handler.Entries[0]
	if first.Level != log.DebugLevel || first.Fields["key"] != "http://a.test" || first.Fields["hit"] != true {
		t.Fatalf("unexpected debug entry: %+v", first)
	}
	second := handler.Entries[1]
	if second.Level != log.ErrorLevel || second.Fields["driver"] != "redis" {
		t.Fatalf("unexpected error entry: %+v", second)
	}
	if second.Fields["error"] != "down" {
		t.Fatalf("expected error field, got %v", second.Fields["error"])
	}
}
