package command

import (
	"context"
	"io"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/goforj/pagecache/internal/config"
)

// InitApp builds the pagecache command tree. Command output goes to out.
func InitApp(_ context.Context, out io.Writer) *cli.Command {
	app := &cli.Command{
		Name:   "pagecache",
		Usage:  "fetch pages through a counting cache",
		Flags:  NewGlobalFlags(config.Path()),
		Writer: out,
	}

	app.Commands = append(app.Commands,
		GetCommandBuilder(out),
		CountCommandBuilder(out),
		StoreCommandBuilder(out),
		ReplayCommandBuilder(out),
	)

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app
}
