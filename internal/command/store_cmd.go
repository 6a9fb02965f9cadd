package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/goforj/pagecache"
)

// StoreCommandBuilder returns the command that saves values in a fresh
// DataCache and replays the recorded calls.
func StoreCommandBuilder(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "store",
		Usage:     "flush the store, save each value under a new key and replay the calls",
		ArgsUsage: "VALUE [VALUE...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return StoreCommandAction(ctx, cmd, out)
		},
	}
}

func StoreCommandAction(ctx context.Context, cmd *cli.Command, out io.Writer) error {
	values := cmd.Args().Slice()
	if len(values) == 0 {
		return errors.New("store requires at least one value")
	}

	store, release, err := openStore(ctx, cmd)
	if err != nil {
		return err
	}
	defer release()

	cache, err := pagecache.NewDataCache(ctx, store)
	if err != nil {
		return fmt.Errorf("flush store: %w", err)
	}
	for _, value := range values {
		key, err := cache.Store(ctx, parseValue(value))
		if err != nil {
			return fmt.Errorf("store %q: %w", value, err)
		}
		fmt.Fprintln(out, key)
	}
	return cache.Replay(ctx, out)
}

// parseValue keeps numbers numeric so they are recorded as such.
func parseValue(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
