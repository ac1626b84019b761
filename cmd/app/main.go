// @title LootForge API
// @version 1.0
// @description Loot box economy: box openings, inventory, passives and a player market.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/osse101/LootForge_Go/docs"
	"github.com/osse101/LootForge_Go/internal/bootstrap"
	"github.com/osse101/LootForge_Go/internal/catalog"
	"github.com/osse101/LootForge_Go/internal/config"
	"github.com/osse101/LootForge_Go/internal/database"
	"github.com/osse101/LootForge_Go/internal/handler"
	"github.com/osse101/LootForge_Go/internal/scheduler"
	"github.com/osse101/LootForge_Go/internal/server"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	if err := run(cfg); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	if cfg.AutoMigrate {
		if err := database.Migrate(ctx, dbPool); err != nil {
			return err
		}
	}

	handler.InitValidator()

	c := catalog.Default()
	repos := bootstrap.InitializeRepositories(dbPool)
	if err := bootstrap.SyncCatalog(ctx, repos.Player, c); err != nil {
		return err
	}

	events, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}

	services, background, err := bootstrap.InitializeServices(cfg, repos, c, events)
	if err != nil {
		return err
	}

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventSystem: events,
		Scheduler:   background.Scheduler,
	}); err != nil {
		return err
	}

	background.Pool.Start()
	ticker := scheduler.New(background.Pool)
	ticker.Schedule(bootstrap.PassiveSweepJobName, cfg.SweepInterval, background.Scheduler.SweepJob())
	slog.Info(bootstrap.LogMsgPassiveSweepScheduled, "interval", cfg.SweepInterval)

	srv, err := server.NewServer(cfg, dbPool, services)
	if err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	case runErr = <-serverErr:
		slog.Error("Server failed", "error", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:     srv,
		Ticker:     ticker,
		Background: background,
		Events:     events,
	})

	return runErr
}
