package mongostorage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"dnsintake/internal/domain/models"
	"dnsintake/internal/storage"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.mongodb.org/mongo-driver/v2/x/mongo/driver/topology"
)

type Config struct {
	URI            string
	Database       string
	Collection     string
	ConnectTimeout time.Duration
}

type Storage struct {
	log        *slog.Logger
	client     *mongo.Client
	collection *mongo.Collection
}

type document struct {
	Source     string    `bson:"source"`
	Kind       string    `bson:"kind"`
	Payload    any       `bson:"payload"`
	ReceivedAt time.Time `bson:"received_at"`
}

// New connects to MongoDB and pings the primary. The returned Storage owns
// the client for the lifetime of the process.
func New(ctx context.Context, log *slog.Logger, cfg Config) (*Storage, error) {
	const op = "mongostorage.New"

	log = log.With(slog.String("op", op), slog.String("database", cfg.Database), slog.String("collection", cfg.Collection))

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("%s: connect: %w: %w", op, storage.ErrStoreUnavailable, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%s: ping: %w: %w", op, storage.ErrStoreUnavailable, err)
	}

	log.Info("connected to mongodb")

	return &Storage{
		log:        log,
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// SaveEvent inserts a single document and returns the ObjectID assigned by
// the driver as a hex string.
func (s *Storage) SaveEvent(ctx context.Context, event models.IngestedEvent) (string, error) {
	const op = "mongostorage.SaveEvent"

	raw, err := bson.Marshal(document{
		Source:     event.Source,
		Kind:       event.Kind,
		Payload:    event.Payload,
		ReceivedAt: event.ReceivedAt,
	})
	if err != nil {
		return "", fmt.Errorf("%s: marshal: %w: %w", op, storage.ErrStoreRejected, err)
	}

	res, err := s.collection.InsertOne(ctx, bson.Raw(raw))
	if err != nil {
		return "", fmt.Errorf("%s: insert: %w", op, classify(err))
	}

	return insertedID(res.InsertedID), nil
}

func (s *Storage) Close(ctx context.Context) error {
	const op = "mongostorage.Close"

	s.log.Info("disconnecting from mongodb")
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// classify attaches the storage sentinel matching err, if any.
func classify(err error) error {
	var (
		writeErr     mongo.WriteException
		selectionErr topology.ServerSelectionError
	)

	switch {
	case errors.Is(err, mongo.ErrClientDisconnected),
		errors.As(err, &selectionErr),
		mongo.IsNetworkError(err),
		mongo.IsTimeout(err):
		return fmt.Errorf("%w: %w", storage.ErrStoreUnavailable, err)
	case mongo.IsDuplicateKeyError(err),
		errors.As(err, &writeErr) && len(writeErr.WriteErrors) > 0:
		return fmt.Errorf("%w: %w", storage.ErrStoreRejected, err)
	default:
		return err
	}
}

func insertedID(id any) string {
	switch v := id.(type) {
	case bson.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
