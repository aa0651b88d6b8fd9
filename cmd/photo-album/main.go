package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fivetwenty-io/photo-album/cmd/photo-album/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := commands.NewRootCommand(commands.Options{
		Build: commands.BuildInfo{
			Version: version,
			Commit:  commit,
			Date:    date,
		},
	})

	return rootCmd.ExecuteContext(ctx)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
