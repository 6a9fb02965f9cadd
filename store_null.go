package pagecache

import (
	"context"
	"time"
)

type nullStore struct{}

func newNullStore() Store { return &nullStore{} }

func (s *nullStore) Driver() Driver { return DriverNull }

func (s *nullStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

func (s *nullStore) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

func (s *nullStore) Increment(context.Context, string, int64) (int64, error) {
	return 0, nil
}

func (s *nullStore) Append(context.Context, string, ...[]byte) (int64, error) {
	return 0, nil
}

func (s *nullStore) Range(context.Context, string, int64, int64) ([][]byte, error) {
	return nil, nil
}

func (s *nullStore) Exists(context.Context, string) (bool, error) { return false, nil }

func (s *nullStore) Delete(context.Context, ...string) error { return nil }

func (s *nullStore) Flush(context.Context) error { return nil }
