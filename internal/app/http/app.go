package httpapp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"
)

type App struct {
	log    *slog.Logger
	server *http.Server
	port   int
}

type AppConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

func New(log *slog.Logger, handler http.Handler, cfg AppConfig) *App {
	return &App{
		log: log,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           handler,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
		},
		port: cfg.Port,
	}
}

func (a *App) Run() error {
	const op = "httpapp.Run"

	log := a.log.With(slog.String("op", op), slog.Int("port", a.port))

	l, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		log.Error("failed to listen", slog.String("error", err.Error()))
		return fmt.Errorf("%s: failed to listen: %w", op, err)
	}

	return a.Serve(l)
}

// Serve handles requests on l until Stop is called. A stopped server
// returns nil.
func (a *App) Serve(l net.Listener) error {
	const op = "httpapp.Serve"

	a.log.Info("http server started", slog.String("op", op), slog.String("addr", l.Addr().String()))

	if err := a.server.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s: serve: %w", op, err)
	}

	return nil
}

// Stop waits for in-flight requests until ctx ends.
func (a *App) Stop(ctx context.Context) error {
	const op = "httpapp.Stop"

	a.log.With(slog.String("op", op)).
		Info("stopping http server", slog.Int("port", a.port))

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("%s: shutdown: %w", op, err)
	}

	return nil
}
