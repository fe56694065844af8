package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"dnsintake/internal/domain/models"
	"dnsintake/internal/lib/httputil"
	"dnsintake/internal/middleware"
	"dnsintake/internal/services/intake"
)

const DefaultMaxBodyBytes = 1 << 20

type DNSQueryIngester interface {
	IngestDNSQuery(ctx context.Context, source string, payload any) (models.Ack, error)
}

type Handler struct {
	log          *slog.Logger
	ingester     DNSQueryIngester
	maxBodyBytes int64
}

func NewHandler(log *slog.Logger, ingester DNSQueryIngester, maxBodyBytes int64) *Handler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	return &Handler{
		log:          log,
		ingester:     ingester,
		maxBodyBytes: maxBodyBytes,
	}
}

// Health reports liveness only. It never touches the store.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "200 OK")
}

// DNSQuery accepts one JSON document, persists it and acknowledges it.
func (h *Handler) DNSQuery(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.DNSQuery"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetRequestID(r.Context())),
	)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	payload, err := decodeBody(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			log.Warn("request body too large", slog.Int64("limit", maxErr.Limit))
			httputil.WriteError(log, w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		log.Warn("invalid request body", slog.String("error", err.Error()))
		httputil.WriteError(log, w, http.StatusBadRequest, err.Error())
		return
	}

	ack, err := h.ingester.IngestDNSQuery(r.Context(), models.SourceHTTP, payload)
	if err != nil {
		code, msg := statusFor(err)
		log.Error("failed to ingest dns query", slog.Int("status", code), slog.String("error", err.Error()))
		httputil.WriteError(log, w, code, msg)
		return
	}

	log.Debug("dns query received", slog.String("id", ack.ID))

	httputil.WriteJSON(log, w, http.StatusOK, map[string]string{"status": "received"})
}

var (
	errEmptyBody    = errors.New("empty request body")
	errInvalidJSON  = errors.New("invalid JSON body")
	errTrailingData = errors.New("unexpected data after JSON body")
)

// decodeBody reads exactly one JSON document. Numbers stay json.Number so
// integers past 2^53 reach the store unchanged.
func decodeBody(body io.Reader) (any, error) {
	dec := json.NewDecoder(body)
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return nil, err
		case errors.Is(err, io.EOF):
			return nil, errEmptyBody
		}
		return nil, errInvalidJSON
	}
	if payload == nil {
		return nil, errEmptyBody
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, err
		}
		return nil, errTrailingData
	}

	return payload, nil
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, intake.ErrMalformedInput):
		return http.StatusBadRequest, "malformed dns query"
	case errors.Is(err, intake.ErrUnavailable),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "store unavailable"
	}
	return http.StatusInternalServerError, "internal error"
}
