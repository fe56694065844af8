package httputil

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// WriteJSON writes data as a JSON response with the given status code.
func WriteJSON(log *slog.Logger, w http.ResponseWriter, status int, data any) {
	const op = "httputil.WriteJSON"

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.With(slog.String("op", op)).Error("failed to encode response", slog.Int("status", status), slog.String("error", err.Error()))
	}
}

// WriteError writes {"error": message}.
func WriteError(log *slog.Logger, w http.ResponseWriter, status int, message string) {
	WriteJSON(log, w, status, map[string]string{"error": message})
}
