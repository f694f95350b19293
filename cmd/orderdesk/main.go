package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"orderdesk/config"
	"orderdesk/internal/cliapp"
	"orderdesk/pkg/log"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config: ", err)
		return 1
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Cancel in-flight requests on Ctrl-C
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Wire the client
	app, err := cliapp.New(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to initialize client: ", err)
		return 1
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warnf(ctx, "orderdesk.main: close: %v", err)
		}
	}()

	return app.Execute(ctx, os.Args[1:])
}
