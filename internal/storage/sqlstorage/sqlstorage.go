package sqlstorage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"

	"dnsintake/internal/domain/models"
	"dnsintake/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/mattn/go-sqlite3"
)

type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

const eventsTable = "events"

const createEventsTableSQLite = `
CREATE TABLE IF NOT EXISTS events (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	source      TEXT NOT NULL,
	kind        TEXT NOT NULL,
	payload     TEXT NOT NULL,
	received_at TIMESTAMP NOT NULL
)`

const createEventsTablePostgres = `
CREATE TABLE IF NOT EXISTS events (
	id          BIGSERIAL PRIMARY KEY,
	source      TEXT NOT NULL,
	kind        TEXT NOT NULL,
	payload     JSONB NOT NULL,
	received_at TIMESTAMPTZ NOT NULL
)`

type SQLStorage struct {
	log     *slog.Logger
	db      *sql.DB
	dialect Dialect
}

// New opens the database, checks the connection and makes sure the events
// table exists.
func New(log *slog.Logger, driver string, dsn string) (*SQLStorage, error) {
	const op = "sqlstorage.New"

	log = log.With(slog.String("op", op), slog.String("driver", driver))

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open database: %w", op, err)
	}

	dialect := detectDialect(driver)
	if dialect == SQLite {
		// sqlite allows a single writer.
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: failed to ping database: %w: %w", op, storage.ErrStoreUnavailable, err)
	}

	ddl := createEventsTableSQLite
	if dialect == Postgres {
		ddl = createEventsTablePostgres
	}

	if _, err := db.Exec(ddl); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: failed to create events table: %w", op, err)
	}

	log.Info("database connected")

	return &SQLStorage{
		log:     log,
		db:      db,
		dialect: dialect,
	}, nil
}

func detectDialect(driver string) Dialect {
	switch driver {
	case "postgres", "pgx":
		return Postgres
	default:
		return SQLite
	}
}

func (s *SQLStorage) builder() sq.StatementBuilderType {
	switch s.dialect {
	case Postgres:
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	default:
		return sq.StatementBuilder.PlaceholderFormat(sq.Question)
	}
}

// SaveEvent stores the payload as JSON text and returns the row id.
func (s *SQLStorage) SaveEvent(ctx context.Context, event models.IngestedEvent) (string, error) {
	const op = "sqlstorage.SaveEvent"

	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return "", fmt.Errorf("%s: marshal payload: %w: %w", op, storage.ErrStoreRejected, err)
	}

	insert := s.builder().
		Insert(eventsTable).
		Columns("source", "kind", "payload", "received_at").
		Values(event.Source, event.Kind, string(payload), event.ReceivedAt.UTC())

	if s.dialect == Postgres {
		return s.saveReturning(ctx, insert)
	}

	q, args, err := insert.ToSql()
	if err != nil {
		return "", fmt.Errorf("%s: build query: %w", op, err)
	}

	res, err := s.db.ExecContext(ctx, q, args...)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, classify(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return strconv.FormatInt(id, 10), nil
}

// saveReturning is the Postgres path: the driver has no LastInsertId.
func (s *SQLStorage) saveReturning(ctx context.Context, insert sq.InsertBuilder) (string, error) {
	const op = "sqlstorage.SaveEvent"

	q, args, err := insert.Suffix("RETURNING id").ToSql()
	if err != nil {
		return "", fmt.Errorf("%s: build query: %w", op, err)
	}

	var id int64
	if err := s.db.QueryRowContext(ctx, q, args...).Scan(&id); err != nil {
		return "", fmt.Errorf("%s: %w", op, classify(err))
	}

	return strconv.FormatInt(id, 10), nil
}

func (s *SQLStorage) Close(_ context.Context) error {
	const op = "sqlstorage.Close"

	s.log.Info("closing database")
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func classify(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrConstraint, sqlite3.ErrTooBig, sqlite3.ErrMismatch:
			return fmt.Errorf("%w: %w", storage.ErrStoreRejected, err)
		case sqlite3.ErrBusy, sqlite3.ErrLocked, sqlite3.ErrCantOpen, sqlite3.ErrIoErr, sqlite3.ErrFull:
			return fmt.Errorf("%w: %w", storage.ErrStoreUnavailable, err)
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case strings.HasPrefix(pgErr.Code, "22"), strings.HasPrefix(pgErr.Code, "23"):
			return fmt.Errorf("%w: %w", storage.ErrStoreRejected, err)
		case strings.HasPrefix(pgErr.Code, "08"), strings.HasPrefix(pgErr.Code, "53"), strings.HasPrefix(pgErr.Code, "57"):
			return fmt.Errorf("%w: %w", storage.ErrStoreUnavailable, err)
		}
	}

	var netErr net.Error
	if errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) ||
		pgconn.Timeout(err) ||
		errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", storage.ErrStoreUnavailable, err)
	}

	return err
}
