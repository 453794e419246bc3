package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/iqranow/iqranow-cli/internal/client/cli"
	"github.com/iqranow/iqranow-cli/internal/client/config"
	"github.com/iqranow/iqranow-cli/internal/logging"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.NewTintLogger(os.Stderr, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, cleanup, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer cleanup()

	app.Run(ctx)
}
