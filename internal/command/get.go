package command

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/goforj/pagecache"
)

// GetCommandBuilder returns the command that fetches pages through the cache.
func GetCommandBuilder(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "fetch one or more URLs, serving cached copies when fresh",
		ArgsUsage: "URL [URL...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return GetCommandAction(ctx, cmd, out)
		},
	}
}

func GetCommandAction(ctx context.Context, cmd *cli.Command, out io.Writer) error {
	urls := cmd.Args().Slice()
	if len(urls) == 0 {
		return errors.New("get requires at least one URL")
	}

	store, release, err := openStore(ctx, cmd)
	if err != nil {
		return err
	}
	defer release()

	pages := pagecache.New(store, pagecache.NewHTTPFetcher(nil)).
		WithObserver(pagecache.LogObserver{Logger: log.Log})
	for _, url := range urls {
		body, err := pages.Get(ctx, url)
		if err != nil {
			return fmt.Errorf("get %s: %w", url, err)
		}
		fmt.Fprintln(out, body)
	}
	return nil
}
