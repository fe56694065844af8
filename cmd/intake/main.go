package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"dnsintake/internal/app"
	"dnsintake/internal/config"
)

const (
	envLocal       = "local"
	envDevelopment = "development"
)

func main() {
	cfg := config.MustLoad()
	log := setupLogger(cfg.Env)

	log.Info("starting application",
		slog.String("env", cfg.Env),
		slog.String("storage", cfg.Storage.Driver),
		slog.String("publisher", cfg.Publisher),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := app.New(ctx, log, cfg)
	if err != nil {
		log.Error("failed to initialize application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	runErr := make(chan error, 1)
	go func() {
		runErr <- application.Run(ctx)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	exitCode := 0
	select {
	case stopSignal := <-stop:
		log.Info("shutting down application", slog.String("signal", stopSignal.String()))
	case err := <-runErr:
		if err != nil {
			log.Error("application failed", slog.String("error", err.Error()))
			exitCode = 1
		}
	}

	cancel()
	application.Stop()

	log.Info("application stopped")
	os.Exit(exitCode)
}

// setupLogger picks the handler by env. Anything other than local or
// development logs JSON at info level.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(
				os.Stdout,
				&slog.HandlerOptions{Level: slog.LevelDebug},
			),
		)
	case envDevelopment:
		log = slog.New(
			slog.NewJSONHandler(
				os.Stdout,
				&slog.HandlerOptions{Level: slog.LevelDebug},
			),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(
				os.Stdout,
				&slog.HandlerOptions{Level: slog.LevelInfo},
			),
		)
	}

	return log
}
