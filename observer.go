package pagecache

import (
	"context"
	"time"

	"github.com/apex/log"
)

// Observer receives events for page cache operations.
// It is called after each operation completes.
type Observer interface {
	OnCacheOp(ctx context.Context, op string, key string, hit bool, err error, dur time.Duration, driver Driver)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ctx context.Context, op string, key string, hit bool, err error, dur time.Duration, driver Driver)

// OnCacheOp implements Observer.
func (f ObserverFunc) OnCacheOp(ctx context.Context, op string, key string, hit bool, err error, dur time.Duration, driver Driver) {
	if f == nil {
		return
	}
	f(ctx, op, key, hit, err, dur, driver)
}

// LogObserver writes one debug entry per operation, or an error entry when
// the operation failed. A nil Logger uses the apex/log default.
type LogObserver struct {
	Logger log.Interface
}

// OnCacheOp implements Observer.
func (o LogObserver) OnCacheOp(_ context.Context, op string, key string, hit bool, err error, dur time.Duration, driver Driver) {
	logger := o.Logger
	if logger == nil {
		logger = log.Log
	}
	entry := logger.WithFields(log.Fields{
		"op":       op,
		"key":      key,
		"hit":      hit,
		"driver":   string(driver),
		"duration": dur,
	})
	if err != nil {
		entry.WithError(err).Error("cache op failed")
		return
	}
	entry.Debug("cache op")
}
