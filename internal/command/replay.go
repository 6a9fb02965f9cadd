package command

import (
	"context"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/goforj/pagecache"
)

// ReplayCommandBuilder returns the command that prints a recorded call history.
func ReplayCommandBuilder(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "replay",
		Usage:     "print the recorded calls of a method",
		ArgsUsage: "[METHOD]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return ReplayCommandAction(ctx, cmd, out)
		},
	}
}

func ReplayCommandAction(ctx context.Context, cmd *cli.Command, out io.Writer) error {
	name := cmd.Args().First()
	if name == "" {
		name = pagecache.StoreMethod
	}

	store, release, err := openStore(ctx, cmd)
	if err != nil {
		return err
	}
	defer release()

	return pagecache.Replay(ctx, store, name, out)
}
