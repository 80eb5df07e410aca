package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/arjunguha/slopjson/internal/app"
	"github.com/arjunguha/slopjson/internal/config"
)

func main() {
	exitCode := run()
	os.Exit(exitCode)
}

func run() int {
	cfg, exitResult := config.Parse(os.Args)
	if exitResult != nil {
		exitResult.Print()
		return exitResult.ExitCode
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return app.New(cfg, os.Stdin, os.Stdout, os.Stderr).Run(ctx)
}
