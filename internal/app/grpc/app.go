package grpcapp

import (
	"fmt"
	"log/slog"
	"net"
	"time"

	dnsservicegrpc "dnsintake/internal/grpc/dnsservice"
	greetergrpc "dnsintake/internal/grpc/greeter"
	"dnsintake/internal/middleware"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

type Service interface {
	greetergrpc.Greeter
	dnsservicegrpc.DNSIntake
}

type App struct {
	log        *slog.Logger
	gRPCServer *grpc.Server
	port       int
}

type AppConfig struct {
	Port              int
	Workers           int
	ConnectionTimeout time.Duration
}

// New builds the gRPC server. At most cfg.Workers handlers run at once;
// further calls wait for a free worker.
func New(log *slog.Logger, service Service, cfg AppConfig) *App {
	opts := []grpc.ServerOption{
		grpc.NumStreamWorkers(uint32(cfg.Workers)),
		grpc.ChainUnaryInterceptor(
			middleware.RecoveryInterceptor(log),
			middleware.LoggingInterceptor(log),
			middleware.ConcurrencyLimitInterceptor(cfg.Workers),
		),
	}
	if cfg.ConnectionTimeout > 0 {
		opts = append(opts, grpc.ConnectionTimeout(cfg.ConnectionTimeout))
	}

	gRPCServer := grpc.NewServer(opts...)

	greetergrpc.Register(gRPCServer, service)
	dnsservicegrpc.Register(gRPCServer, service)
	reflection.Register(gRPCServer)

	return &App{
		log:        log,
		gRPCServer: gRPCServer,
		port:       cfg.Port,
	}
}

func (a *App) MustRun() {
	if err := a.Run(); err != nil {
		panic(err)
	}
}

func (a *App) Run() error {
	const op = "grpcapp.Run"

	log := a.log.With(slog.String("op", op), slog.Int("port", a.port))

	l, err := net.Listen("tcp", fmt.Sprintf(":%d", a.port))
	if err != nil {
		log.Error("failed to listen", slog.String("error", err.Error()))
		return fmt.Errorf("%s: failed to listen: %w", op, err)
	}

	return a.Serve(l)
}

// Serve accepts connections on l until Stop is called.
func (a *App) Serve(l net.Listener) error {
	const op = "grpcapp.Serve"

	a.log.Info("grpc server started", slog.String("op", op), slog.String("addr", l.Addr().String()))

	if err := a.gRPCServer.Serve(l); err != nil {
		return fmt.Errorf("%s: serve: %w", op, err)
	}

	return nil
}

func (a *App) Stop() {
	const op = "grpcapp.Stop"

	a.log.With(slog.String("op", op)).
		Info("stopping grpc server", slog.Int("port", a.port))
	a.gRPCServer.GracefulStop()
}
