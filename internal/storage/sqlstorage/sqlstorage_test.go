package sqlstorage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"dnsintake/internal/domain/models"
	"dnsintake/internal/storage"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *SQLStorage {
	t.Helper()

	s, err := New(
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		"sqlite3",
		filepath.Join(t.TempDir(), "events.db"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	return s
}

func TestSaveEvent(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	query := models.DNSQuery{
		IPAddress: gofakeit.IPv4Address(),
		Domain:    gofakeit.DomainName(),
		QueryType: "AAAA",
		Timestamp: time.Now().Unix(),
	}
	receivedAt := time.Now().UTC()

	id, err := s.SaveEvent(ctx, models.IngestedEvent{
		Source:     models.SourceHTTP,
		Kind:       models.KindDNSQuery,
		Payload:    query,
		ReceivedAt: receivedAt,
	})
	require.NoError(t, err)

	rowID, err := strconv.ParseInt(id, 10, 64)
	require.NoError(t, err)

	var source, kind, payload string
	err = s.db.QueryRowContext(ctx,
		"SELECT source, kind, payload FROM events WHERE id = ?", rowID,
	).Scan(&source, &kind, &payload)
	require.NoError(t, err)

	assert.Equal(t, models.SourceHTTP, source)
	assert.Equal(t, models.KindDNSQuery, kind)

	var got models.DNSQuery
	require.NoError(t, json.Unmarshal([]byte(payload), &got))
	assert.Equal(t, query, got)
}

func TestSaveEvent_AssignsDistinctIDs(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	seen := make(map[string]struct{})
	for range 5 {
		id, err := s.SaveEvent(ctx, models.IngestedEvent{
			Source:     models.SourceGreeter,
			Kind:       models.KindGreeting,
			Payload:    "Hello, " + gofakeit.FirstName() + "!",
			ReceivedAt: time.Now(),
		})
		require.NoError(t, err)
		seen[id] = struct{}{}
	}

	assert.Len(t, seen, 5)
}

func TestSaveEvent_UnencodablePayload(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.SaveEvent(context.Background(), models.IngestedEvent{
		Source:     models.SourceHTTP,
		Kind:       models.KindDNSQuery,
		Payload:    func() {},
		ReceivedAt: time.Now(),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrStoreRejected)
}

func TestClassify(t *testing.T) {
	busy := sqlite3.Error{Code: sqlite3.ErrBusy}
	constraint := sqlite3.Error{Code: sqlite3.ErrConstraint}
	other := errors.New("boom")

	assert.ErrorIs(t, classify(busy), storage.ErrStoreUnavailable)
	assert.ErrorIs(t, classify(constraint), storage.ErrStoreRejected)
	assert.ErrorIs(t, classify(context.DeadlineExceeded), storage.ErrStoreUnavailable)
	assert.Same(t, other, classify(other))
}

func TestClassify_Postgres(t *testing.T) {
	tests := []struct {
		code string
		want error
	}{
		{"23505", storage.ErrStoreRejected},
		{"22P02", storage.ErrStoreRejected},
		{"08006", storage.ErrStoreUnavailable},
		{"53300", storage.ErrStoreUnavailable},
		{"57P01", storage.ErrStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := classify(&pgconn.PgError{Code: tt.code})
			assert.ErrorIs(t, err, tt.want)
		})
	}

	syntax := &pgconn.PgError{Code: "42601"}
	assert.Same(t, syntax, classify(syntax))
}

func TestDetectDialect(t *testing.T) {
	assert.Equal(t, SQLite, detectDialect("sqlite3"))
	assert.Equal(t, Postgres, detectDialect("pgx"))
	assert.Equal(t, Postgres, detectDialect("postgres"))
}
