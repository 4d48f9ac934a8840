package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"invtrack/internal/cli"
)

func main() {
	//Ctrl+Cで実行中のDB操作をキャンセルする
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Run(ctx, os.Args[1:], cli.Options{})
	stop()
	os.Exit(code)
}
