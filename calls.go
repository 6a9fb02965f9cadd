package pagecache

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// Method is a single-argument operation that the call recorders can wrap.
type Method[A, R any] func(ctx context.Context, arg A) (R, error)

// InputsKey returns the list key holding recorded inputs of name.
func InputsKey(name string) string { return name + ":inputs" }

// OutputsKey returns the list key holding recorded outputs of name.
func OutputsKey(name string) string { return name + ":outputs" }

// CountCalls increments the counter stored under name before every call to fn.
func CountCalls[A, R any](store Store, name string, fn Method[A, R]) Method[A, R] {
	return func(ctx context.Context, arg A) (R, error) {
		if _, err := store.Increment(ctx, name, 1); err != nil {
			var zero R
			return zero, err
		}
		return fn(ctx, arg)
	}
}

// CallHistory records the JSON encoded argument of every call to fn and, when
// fn succeeds, its result formatted with fmt.
func CallHistory[A, R any](store Store, name string, fn Method[A, R]) Method[A, R] {
	return func(ctx context.Context, arg A) (R, error) {
		var zero R
		input, err := json.Marshal(arg)
		if err != nil {
			return zero, fmt.Errorf("encode %s input: %w", name, err)
		}
		if _, err := store.Append(ctx, InputsKey(name), input); err != nil {
			return zero, err
		}
		out, err := fn(ctx, arg)
		if err != nil {
			return zero, err
		}
		if _, err := store.Append(ctx, OutputsKey(name), []byte(fmt.Sprint(out))); err != nil {
			return zero, err
		}
		return out, nil
	}
}

// CallCount returns the number of recorded calls of name.
func CallCount(ctx context.Context, store Store, name string) (int64, error) {
	return readCounter(ctx, store, name)
}

// Replay writes the recorded history of name to w:
//
//	DataCache.Store was called 2 times:
//	DataCache.Store("foo") -> 5c3b...
//	DataCache.Store(42) -> 9a1f...
func Replay(ctx context.Context, store Store, name string, w io.Writer) error {
	count, err := CallCount(ctx, store, name)
	if err != nil {
		return err
	}
	inputs, err := store.Range(ctx, InputsKey(name), 0, -1)
	if err != nil {
		return err
	}
	outputs, err := store.Range(ctx, OutputsKey(name), 0, -1)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "%s was called %d times:\n", name, count); err != nil {
		return err
	}
	for i := 0; i < len(inputs) && i < len(outputs); i++ {
		if _, err := fmt.Fprintf(w, "%s(%s) -> %s\n", name, inputs[i], outputs[i]); err != nil {
			return err
		}
	}
	return nil
}
