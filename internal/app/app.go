package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	grpcapp "dnsintake/internal/app/grpc"
	httpapp "dnsintake/internal/app/http"
	"dnsintake/internal/blocklist"
	"dnsintake/internal/config"
	"dnsintake/internal/events"
	"dnsintake/internal/http/handlers"
	kafkaclient "dnsintake/internal/lib/kafka"
	"dnsintake/internal/lib/metrics"
	eventgetter "dnsintake/internal/services/event-getter"
	"dnsintake/internal/services/intake"
	"dnsintake/internal/services/processors"
	"dnsintake/internal/storage"
	"dnsintake/internal/storage/mongostorage"
	"dnsintake/internal/storage/sqlstorage"
)

type App struct {
	log     *slog.Logger
	cfg     *config.Config
	GRPCApp *grpcapp.App
	HTTPApp *httpapp.App

	storage   storage.Storage
	blocklist *blocklist.Redis
	publisher events.Publisher
	consumer  *kafkaclient.Consumer
	getter    *eventgetter.Getter

	wg sync.WaitGroup
}

// New connects every backend named by cfg and wires the front doors to a
// single intake service. Nothing listens until Run is called.
func New(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	const op = "app.New"

	a := &App{log: log, cfg: cfg}

	store, err := newStorage(ctx, log, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	a.storage = store

	var bl intake.Blocklist
	if cfg.Redis.Enabled {
		a.blocklist, err = blocklist.NewRedis(ctx, log, cfg.Redis.URL, cfg.Redis.Key)
		if err != nil {
			a.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		bl = a.blocklist
	}

	a.publisher, err = newPublisher(log, cfg)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	svc := intake.New(log, store, a.publisher, bl, cfg.Storage.Timeout, cfg.PublishTimeout)

	a.GRPCApp = grpcapp.New(log, svc, grpcapp.AppConfig{
		Port:              cfg.GRPC.Port,
		Workers:           cfg.GRPC.Workers,
		ConnectionTimeout: cfg.GRPC.ConnectionTimeout,
	})

	router := handlers.NewRouter(log, handlers.NewHandler(log, svc, cfg.HTTP.MaxBodyBytes), cfg.HTTP.MaxInFlight)
	a.HTTPApp = httpapp.New(log, router, httpapp.AppConfig{
		Port:         cfg.HTTP.Port,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	})

	if cfg.Kafka.Consumer.Enabled {
		a.consumer, err = kafkaclient.NewConsumer(
			log, cfg.Kafka.Brokers, cfg.Kafka.Consumer.Topic, cfg.Kafka.Consumer.GroupID, cfg.Kafka.DialAddress)
		if err != nil {
			a.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		processor := processors.NewDNSQueryProcessor(log, svc)
		a.getter = eventgetter.New(log, a.consumer, processor, cfg.Kafka.Consumer.RetryDelay)
	}

	return a, nil
}

func newStorage(ctx context.Context, log *slog.Logger, cfg config.StorageConfig) (storage.Storage, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		s, err := sqlstorage.New(log, "pgx", cfg.Postgres.DSN)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverSQLite:
		if dir := filepath.Dir(cfg.SQLite.Path); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create storage dir: %w", err)
			}
		}
		s, err := sqlstorage.New(log, "sqlite3", cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		s, err := mongostorage.New(ctx, log, mongostorage.Config{
			URI:            cfg.Mongo.URI,
			Database:       cfg.Mongo.Database,
			Collection:     cfg.Mongo.Collection,
			ConnectTimeout: cfg.Mongo.ConnectTimeout,
		})
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}

func newPublisher(log *slog.Logger, cfg *config.Config) (events.Publisher, error) {
	switch cfg.Publisher {
	case config.PublisherKafka:
		producer, err := kafkaclient.NewProducer(log, cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.DialAddress)
		if err != nil {
			return nil, err
		}
		return events.NewKafkaPublisher(producer), nil
	case config.PublisherNATS:
		p, err := events.NewNATSPublisher(cfg.NATS.URL, cfg.NATS.Subject)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return events.NoopPublisher{}, nil
	}
}

// Run starts every listener and the optional Kafka intake loop. It returns
// when ctx is canceled or a listener fails.
func (a *App) Run(ctx context.Context) error {
	const op = "app.Run"

	errCh := make(chan error, 3)

	go func() { errCh <- a.GRPCApp.Run() }()
	go func() { errCh <- a.HTTPApp.Run() }()
	go func() {
		if err := metrics.Listen(ctx, a.cfg.Metrics.Host, a.cfg.Metrics.Port); err != nil {
			errCh <- fmt.Errorf("metrics: %w", err)
		}
	}()

	if a.getter != nil {
		a.wg.Add(1)
		go func() {
			defer a.wg.Done()
			_ = a.getter.GetEventStart(ctx)
		}()
	}

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		if err == nil {
			return nil
		}
		return fmt.Errorf("%s: %w", op, err)
	}
}

// Stop shuts the front doors down first, then the backends. The caller
// cancels the context passed to Run before calling Stop.
func (a *App) Stop() {
	const op = "app.Stop"

	log := a.log.With(slog.String("op", op))

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Shutdown)
	defer cancel()

	a.GRPCApp.Stop()
	if err := a.HTTPApp.Stop(ctx); err != nil {
		log.Error("failed to stop http server", slog.String("error", err.Error()))
	}

	a.wg.Wait()
	a.close()
}

func (a *App) close() {
	log := a.log.With(slog.String("op", "app.close"))

	if a.consumer != nil {
		if err := a.consumer.Close(); err != nil {
			log.Error("failed to close kafka consumer", slog.String("error", err.Error()))
		}
	}
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			log.Error("failed to close publisher", slog.String("error", err.Error()))
		}
	}
	if a.blocklist != nil {
		if err := a.blocklist.Close(); err != nil {
			log.Error("failed to close blocklist", slog.String("error", err.Error()))
		}
	}
	if a.storage != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.storage.Close(ctx); err != nil {
			log.Error("failed to close storage", slog.String("error", err.Error()))
		}
	}
}
