// Command mnemo manages tiered markdown memories and queries a wiki-linked
// knowledge base.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/entrhq/mnemo/pkg/cli"
)

var version = "dev"

func main() {
	// Cancel in-flight lock waits and scans on Ctrl-C.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.Execute(ctx, os.Args[1:], cli.WithVersion(version)); err != nil {
		cancel()
		os.Exit(1)
	}
}
