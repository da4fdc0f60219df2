package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"techstudio/internal/cli"
	"techstudio/internal/di"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := cli.Execute(ctx, di.InitializeApp)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
