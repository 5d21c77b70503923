package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tibino/marta/config"
	"github.com/tibino/marta/conversation"
	"github.com/tibino/marta/language"
	"github.com/tibino/marta/log"
	"github.com/tibino/marta/reservation"
	"github.com/tibino/marta/server"
	"github.com/tibino/marta/session"
)

func main() {
	log.Configure(log.Config{})
	logger := log.WithComponent("main")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	// Redis is optional; memory stays authoritative either way.
	rdb := session.DialRedis(cfg)

	store := session.NewStore(cfg.SessionTTL, rdb)
	ledger := reservation.NewLedger(rdb)
	validator := reservation.NewValidator(cfg.Hours, cfg.LunchCutoff, cfg.DinnerCutoff, cfg.MaxCapacity, ledger)
	hub := server.NewStaffHub()

	orchestrator := conversation.New(
		reservation.NewExtractor(),
		validator,
		ledger,
		language.NewDetector(),
		hub,
		cfg.DefaultLanguage,
	)

	// Start cleanup routine
	ctx, cancel := context.WithCancel(context.Background())
	go store.StartCleanupRoutine(ctx)

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	switch cfg.ServerType {
	case "http":
		srv := server.NewHTTPServer(cfg, store, orchestrator)

		go func() {
			<-sigChan
			logger.Info().Msg("received shutdown signal")
			cancel()
			store.Shutdown()
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Msg("server shutdown error")
			}
		}()

		if err := srv.Start(); err != nil && err.Error() != "http: Server closed" {
			logger.Fatal().Err(err).Msg("server error")
		}

	case "websocket":
		wsSrv := server.NewWSServer(cfg, store, orchestrator, hub)

		go func() {
			<-sigChan
			logger.Info().Msg("received shutdown signal")
			cancel()
			store.Shutdown()
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			if err := wsSrv.Shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Msg("websocket server shutdown error")
			}
		}()

		if err := wsSrv.Start(); err != nil && err.Error() != "http: Server closed" {
			logger.Fatal().Err(err).Msg("websocket server error")
		}

	case "both":
		srv := server.NewHTTPServer(cfg, store, orchestrator)
		wsSrv := server.NewWSServer(cfg, store, orchestrator, hub)

		go func() {
			<-sigChan
			logger.Info().Msg("received shutdown signal")
			cancel()
			store.Shutdown()
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Msg("server shutdown error")
			}
			if err := wsSrv.Shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Msg("websocket server shutdown error")
			}
		}()

		// Start WebSocket server in background
		go func() {
			if err := wsSrv.Start(); err != nil && err.Error() != "http: Server closed" {
				logger.Fatal().Err(err).Msg("websocket server error")
			}
		}()

		// Start HTTP server (blocks)
		if err := srv.Start(); err != nil && err.Error() != "http: Server closed" {
			logger.Fatal().Err(err).Msg("server error")
		}

	default:
		logger.Fatal().Str("server_type", cfg.ServerType).Msg("unknown SERVER_TYPE")
	}

	logger.Info().Msg("server stopped")
}
