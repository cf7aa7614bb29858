// Package main is the entry point for the timebanner service.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/timebanner/timebanner/cmd/timebanner/commands"
	_ "github.com/timebanner/timebanner/internal/wiring"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cli := commands.New()
	cli.SetArgs(args)

	if err := cli.Execute(ctx); err != nil {
		// The logger may not be constructed yet if wiring failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	return 0
}
