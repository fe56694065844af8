package mongostorage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"dnsintake/internal/domain/models"
	"dnsintake/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_UnreachableServer(t *testing.T) {
	_, err := New(context.Background(), discardLogger(), Config{
		URI:            "mongodb://127.0.0.1:1/?directConnection=true",
		Database:       "CDS",
		Collection:     "DNS",
		ConnectTimeout: 200 * time.Millisecond,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrStoreUnavailable)
}

func TestSaveEvent_UnencodablePayload(t *testing.T) {
	s := &Storage{log: discardLogger()}

	_, err := s.SaveEvent(context.Background(), models.IngestedEvent{
		Source:     models.SourceHTTP,
		Kind:       models.KindDNSQuery,
		Payload:    make(chan int),
		ReceivedAt: time.Now(),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrStoreRejected)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "deadline",
			err:  context.DeadlineExceeded,
			want: storage.ErrStoreUnavailable,
		},
		{
			name: "client disconnected",
			err:  mongo.ErrClientDisconnected,
			want: storage.ErrStoreUnavailable,
		},
		{
			name: "validation failure",
			err: mongo.WriteException{WriteErrors: mongo.WriteErrors{
				{Code: 121, Message: "Document failed validation"},
			}},
			want: storage.ErrStoreRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorContains(t, got, tt.err.Error())
		})
	}
}

func TestClassify_Unknown(t *testing.T) {
	boom := errors.New("boom")

	got := classify(boom)

	assert.Same(t, boom, got)
	assert.NotErrorIs(t, got, storage.ErrStoreUnavailable)
	assert.NotErrorIs(t, got, storage.ErrStoreRejected)
}

func TestInsertedID(t *testing.T) {
	oid := bson.NewObjectID()

	assert.Equal(t, oid.Hex(), insertedID(oid))
	assert.Equal(t, "abc", insertedID("abc"))
	assert.Equal(t, "42", insertedID(int32(42)))
}

func TestDocument_JSONNumberPayload(t *testing.T) {
	raw, err := bson.Marshal(document{
		Source: models.SourceHTTP,
		Kind:   models.KindDNSQuery,
		Payload: map[string]any{
			"id":    json.Number("9007199254740993"),
			"ratio": json.Number("0.25"),
		},
		ReceivedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	var got struct {
		Payload bson.M `bson:"payload"`
	}
	require.NoError(t, bson.Unmarshal(raw, &got))

	assert.Equal(t, int64(9007199254740993), got.Payload["id"])
	assert.Equal(t, 0.25, got.Payload["ratio"])
}
