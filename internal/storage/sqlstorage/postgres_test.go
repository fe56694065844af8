package sqlstorage

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"dnsintake/internal/domain/models"
	"dnsintake/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unfulfilled expectations: %v", err)
		}
		db.Close()
	})
	return db, mock
}

func newPostgresStorage(db *sql.DB) *SQLStorage {
	return &SQLStorage{
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		db:      db,
		dialect: Postgres,
	}
}

func TestSaveEvent_PostgresReturningID(t *testing.T) {
	db, mock := newMockDB(t)
	s := newPostgresStorage(db)

	receivedAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO events \(source,kind,payload,received_at\) VALUES \(\$1,\$2,\$3,\$4\) RETURNING id`).
		WithArgs(models.SourceGreeter, models.KindGreeting, `"Hello, gopher!"`, receivedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	id, err := s.SaveEvent(context.Background(), models.IngestedEvent{
		Source:     models.SourceGreeter,
		Kind:       models.KindGreeting,
		Payload:    "Hello, gopher!",
		ReceivedAt: receivedAt,
	})

	require.NoError(t, err)
	assert.Equal(t, "42", id)
}

func TestSaveEvent_PostgresUnavailable(t *testing.T) {
	db, mock := newMockDB(t)
	s := newPostgresStorage(db)

	mock.ExpectQuery(`INSERT INTO events`).
		WillReturnError(&pgconn.PgError{Code: "57P01", Message: "terminating connection due to administrator command"})

	_, err := s.SaveEvent(context.Background(), models.IngestedEvent{
		Source:     models.SourceHTTP,
		Kind:       models.KindDNSQuery,
		Payload:    map[string]any{"domain": "example.com"},
		ReceivedAt: time.Now().UTC(),
	})

	assert.ErrorIs(t, err, storage.ErrStoreUnavailable)
}

func TestSaveEvent_PostgresRejected(t *testing.T) {
	db, mock := newMockDB(t)
	s := newPostgresStorage(db)

	mock.ExpectQuery(`INSERT INTO events`).
		WillReturnError(&pgconn.PgError{Code: "22P05", Message: "unsupported Unicode escape sequence"})

	_, err := s.SaveEvent(context.Background(), models.IngestedEvent{
		Source:     models.SourceHTTP,
		Kind:       models.KindDNSQuery,
		Payload:    map[string]any{"domain": "\u0000"},
		ReceivedAt: time.Now().UTC(),
	})

	assert.ErrorIs(t, err, storage.ErrStoreRejected)
}
