// Package main is the entry point for the docserver demo server.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/vitalvas/docmount/cmd/docserver/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
