package handlers

import (
	"log/slog"
	"net/http"

	"dnsintake/internal/middleware"
)

// NewRouter mounts the intake routes. Unknown methods on a known path get
// 405 from the mux. Only /dns-query counts against maxInFlight.
func NewRouter(log *slog.Logger, h *Handler, maxInFlight int) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health)
	mux.Handle("POST /dns-query", middleware.LimitInFlight(log, maxInFlight)(http.HandlerFunc(h.DNSQuery)))

	var handler http.Handler = mux
	handler = middleware.Recover(log)(handler)
	handler = middleware.Logging(log)(handler)
	handler = middleware.RequestID(log)(handler)

	return handler
}
