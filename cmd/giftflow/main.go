// Command giftflow reads an allocation problem from YAML, solves it as a
// max-flow or min-cost max-flow and prints the assignment.
//
//	giftflow solve problem.yaml --mode mincost --rank-cost linear --format json
//
// Every flag can also be set through a GIFTFLOW_* environment variable
// (dashes become underscores) or a config file passed with --config.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
