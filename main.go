package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/PolarWolf314/secretsanta/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	// Restore default signal handling after the first interrupt so a second
	// one kills the process.
	context.AfterFunc(ctx, stop)
	code := cmd.Execute(ctx)
	stop()
	os.Exit(code)
}
