package command

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/goforj/pagecache"
)

// CountCommandBuilder returns the command that prints per-URL access counts.
func CountCommandBuilder(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "count",
		Usage:     "print how many times each URL was requested",
		ArgsUsage: "URL [URL...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return CountCommandAction(ctx, cmd, out)
		},
	}
}

func CountCommandAction(ctx context.Context, cmd *cli.Command, out io.Writer) error {
	urls := cmd.Args().Slice()
	if len(urls) == 0 {
		return errors.New("count requires at least one URL")
	}

	store, release, err := openStore(ctx, cmd)
	if err != nil {
		return err
	}
	defer release()

	pages := pagecache.New(store, nil)
	for _, url := range urls {
		n, err := pages.Count(ctx, url)
		if err != nil {
			return fmt.Errorf("count %s: %w", url, err)
		}
		fmt.Fprintf(out, "%d\t%s\n", n, url)
	}
	return nil
}
