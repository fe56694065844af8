package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"dnsintake/internal/lib/httputil"
	"dnsintake/internal/lib/metrics"

	"github.com/google/uuid"
)

type contextKey string

const (
	RequestIDKey    contextKey = "request_id"
	RequestIDHeader            = "X-Request-ID"
)

// RequestID propagates the caller's X-Request-ID or assigns a new one.
func RequestID(log *slog.Logger) func(http.Handler) http.Handler {
	const op = "middleware.RequestID"

	log = log.With(slog.String("op", op))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
				log.Debug("request id assigned", slog.String("request_id", requestID), slog.String("path", r.URL.Path))
			}

			w.Header().Set(RequestIDHeader, requestID)

			ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// Recover turns a handler panic into a 500. http.ErrAbortHandler is passed on
// to net/http untouched, and nothing is written if the handler already sent
// its headers.
func Recover(log *slog.Logger) func(http.Handler) http.Handler {
	const op = "middleware.Recover"

	log = log.With(slog.String("op", op))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			defer func() {
				p := recover()
				if p == nil {
					return
				}
				if p == http.ErrAbortHandler {
					panic(p)
				}

				log.Error("panic recovered in HTTP handler",
					slog.String("path", r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
					slog.String("panic", fmt.Sprintf("%v", p)),
					slog.Bool("headers_sent", rec.wroteHeader),
					slog.String("stack", string(debug.Stack())),
				)

				if !rec.wroteHeader {
					httputil.WriteError(log, rec, http.StatusInternalServerError, "internal server error")
				}
			}()

			next.ServeHTTP(rec, r)
		})
	}
}

// LimitInFlight admits at most n requests at once. A request over the limit
// waits for a slot and gets 503 if its context ends first.
func LimitInFlight(log *slog.Logger, n int) func(http.Handler) http.Handler {
	const op = "middleware.LimitInFlight"

	log = log.With(slog.String("op", op))
	sem := make(chan struct{}, n)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case sem <- struct{}{}:
			case <-r.Context().Done():
				log.Warn("no free slot before request ended", slog.String("request_id", GetRequestID(r.Context())))
				httputil.WriteError(log, w, http.StatusServiceUnavailable, "server busy")
				return
			}
			defer func() { <-sem }()

			next.ServeHTTP(w, r)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.wroteHeader {
		return
	}
	r.status = code
	r.wroteHeader = true
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	return r.ResponseWriter.Write(b)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// Logging logs each request and records it in the HTTP request summary. It
// must sit outside Recover so recovered panics are counted as 500s.
func Logging(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}

			duration := time.Since(start)
			metrics.ObserveHTTPRequest(route, rec.status, duration)
			log.Info("http request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rec.status),
				slog.Duration("duration", duration),
				slog.String("request_id", GetRequestID(r.Context())),
			)
		})
	}
}
