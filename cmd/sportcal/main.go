package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/sportcal/internal/config"
	"git.home.luguber.info/inful/sportcal/internal/daemon"
	"git.home.luguber.info/inful/sportcal/internal/events"
	"git.home.luguber.info/inful/sportcal/internal/i18n"
	"git.home.luguber.info/inful/sportcal/internal/logfields"
	"git.home.luguber.info/inful/sportcal/internal/metrics"
	"git.home.luguber.info/inful/sportcal/internal/server/httpserver"
	"git.home.luguber.info/inful/sportcal/internal/service"
	"git.home.luguber.info/inful/sportcal/internal/storage"
	"git.home.luguber.info/inful/sportcal/internal/version"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"config.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Serve struct {
	} `cmd:"" default:"1" help:"Run the exercise calendar API"`

	Migrate struct {
	} `cmd:"" help:"Initialize the database schema and exit"`

	Version struct {
	} `cmd:"" help:"Print version information"`
}

// logLevel is shared with the config watcher so the level can change at
// runtime without restarting.
var logLevel = new(slog.LevelVar)

func main() {
	ctx := kong.Parse(&CLI)

	switch ctx.Command() {
	case "serve":
		if err := runServe(); err != nil {
			slog.Error("Serve failed", "error", err)
			os.Exit(1)
		}
	case "migrate":
		if err := runMigrate(); err != nil {
			slog.Error("Migrate failed", "error", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("sportcal %s (commit %s, built %s)\n", version.Version, version.GitCommit, version.BuildTime)
	}
}

func setupLogging(cfg *config.Config) {
	applyLogLevel(cfg)
	if CLI.Verbose {
		logLevel.Set(slog.LevelDebug)
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	var handler slog.Handler
	if cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func applyLogLevel(cfg *config.Config) {
	switch cfg.Log.Level {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "warn":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
	}
}

func runServe() error {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return err
	}
	setupLogging(cfg)

	slog.Info("Starting sportcal",
		slog.String("version", version.Version),
		logfields.Port(cfg.HTTP.Port),
		slog.String("db", cfg.Database.Path))

	store, err := storage.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Warn("Failed to close store", "error", err)
		}
	}()

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.NATS.URL != "" {
		natsPub, err := events.NewNATSPublisher(cfg.NATS.URL)
		if err != nil {
			return fmt.Errorf("failed to connect to NATS: %w", err)
		}
		publisher = natsPub
		slog.Info("Event publishing enabled", slog.String("url", cfg.NATS.URL))
	}
	defer publisher.Close()

	registry := prom.NewRegistry()
	recorder := metrics.NewPrometheusRecorder(registry)

	svc := service.New(store, i18n.NewTitler(cfg.Locale), service.Options{
		Publisher: publisher,
		Recorder:  recorder,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	srv := httpserver.New(cfg, svc, recorder, registry)
	if err := srv.Start(ctx); err != nil {
		return err
	}

	var snapshots *daemon.SnapshotScheduler
	if cfg.Snapshot.At != "" {
		hour, minute, err := config.ParseClock(cfg.Snapshot.At)
		if err != nil {
			return err
		}
		snapshots, err = daemon.NewSnapshotScheduler(svc, hour, minute)
		if err != nil {
			return err
		}
		snapshots.Start()
	}

	watcher, err := config.NewWatcher(CLI.Config, func(reloaded *config.Config) {
		applyLogLevel(reloaded)
	})
	if err != nil {
		slog.Warn("Config watching disabled", "error", err)
	} else {
		go watcher.Run(ctx)
	}

	slog.Info("sportcal started, waiting for shutdown signal...")
	<-ctx.Done()
	slog.Info("Shutdown signal received, stopping...")

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer stopCancel()

	if snapshots != nil {
		if err := snapshots.Stop(); err != nil {
			slog.Warn("Failed to stop snapshot scheduler", "error", err)
		}
	}
	if err := srv.Stop(stopCtx); err != nil {
		return fmt.Errorf("failed to stop HTTP servers: %w", err)
	}

	slog.Info("sportcal stopped successfully")
	return nil
}

func runMigrate() error {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return err
	}
	setupLogging(cfg)

	// Opening the store creates the schema idempotently.
	store, err := storage.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := store.Close(); err != nil {
		return err
	}
	slog.Info("Database schema initialized", slog.String("path", cfg.Database.Path))
	return nil
}
