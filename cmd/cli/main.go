package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/vfg2006/ads-monitor-api/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCmd(cli.DefaultLoader).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
