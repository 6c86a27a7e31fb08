// Package main provides the entry point for the digitime binary.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"digitime/internal/cli"
)

// Set via ldflags.
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.Execute(ctx, cli.BuildInfo{Version: version, Commit: commit, Date: date})
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "digitime:", err)
	}
	os.Exit(cli.ExitCode(err))
}
