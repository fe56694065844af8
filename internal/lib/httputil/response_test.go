package httputil

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteJSON(discardLogger(), rec, http.StatusOK, map[string]string{"status": "received"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"received"}`, rec.Body.String())
}

func TestWriteJSON_EncodeFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))
	rec := httptest.NewRecorder()

	WriteJSON(log, rec, http.StatusOK, map[string]any{"bad": make(chan int)})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, buf.String(), `"op":"httputil.WriteJSON"`)
	assert.Contains(t, buf.String(), "failed to encode response")
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(discardLogger(), rec, http.StatusBadRequest, "invalid JSON body")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid JSON body"}`, rec.Body.String())
}
