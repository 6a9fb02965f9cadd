package main

import (
	"context"
	"fmt"
	"os"

	"github.com/goforj/pagecache/internal/command"
	mylog "github.com/goforj/pagecache/internal/log"
)

func main() {
	os.Exit(realMain(context.Background(), os.Args))
}

func realMain(ctx context.Context, args []string) int {
	mylog.InitLogger()

	app := command.InitApp(ctx, os.Stdout)
	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
