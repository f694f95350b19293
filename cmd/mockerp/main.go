package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"orderdesk/config"
	"orderdesk/internal/httpserver"
	"orderdesk/internal/mockerp"
	pkgJWT "orderdesk/pkg/jwt"
	"orderdesk/pkg/log"
)

// mockerp serves the ERP endpoints from memory so the client can be exercised without the
// real backend.
func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}
	if err := cfg.ValidateMockERP(); err != nil {
		fmt.Println("Invalid mockerp config: ", err)
		os.Exit(1)
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Register graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Initialize JWT Manager
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.MockERP.JWTSecret,
		TTL:       cfg.MockERP.TokenTTL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		os.Exit(1)
	}

	// 5. Seed the in-memory ERP
	store := mockerp.NewStore()
	logger.Infof(ctx, "Fake ERP seeded, invite codes: %s, %s", mockerp.InviteCodeAcme, mockerp.InviteCodeNorth)

	// 6. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Host:        cfg.MockERP.Host,
		Port:        cfg.MockERP.Port,
		Mode:        cfg.MockERP.Mode,
		Environment: cfg.Environment.Name,
		Store:       store,
		JWTManager:  jwtManager,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}
}
