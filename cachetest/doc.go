// Package cachetest provides reusable store contract tests for pagecache.Store implementations.
//
// Example pattern:
//
//	func TestRedisStoreContract(t *testing.T) {
//		client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:6379"})
//		store := pagecache.NewRedisStore(context.Background(), client, pagecache.WithPrefix("test"))
//
//		// Namespace keys per test and tune TTL waits for backend semantics as needed.
//		cachetest.RunStoreContract(t, store, cachetest.Options{
//			CaseName: t.Name(),
//			TTL:      time.Second,
//			TTLWait:  1500 * time.Millisecond,
//		})
//	}
package cachetest
