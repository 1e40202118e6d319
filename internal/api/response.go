package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"homescan/internal/store"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("encoding response", "error", err)
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}

// storeError maps store and auth errors to HTTP responses. Persistence
// failures are logged; the in-memory state may be ahead of disk until a
// later save succeeds.
func storeError(w http.ResponseWriter, err error) {
	var perr *store.PersistenceError
	switch {
	case errors.Is(err, store.ErrNotFound):
		jsonError(w, http.StatusNotFound, "not found")
	case errors.Is(err, store.ErrDuplicateID):
		jsonError(w, http.StatusConflict, "duplicate id")
	case errors.Is(err, store.ErrAuth):
		jsonError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.As(err, &perr):
		slog.Warn("persistence failure", "collection", perr.Collection, "op", perr.Op, "error", perr.Err)
		jsonError(w, http.StatusInternalServerError, "storage failure")
	default:
		jsonError(w, http.StatusInternalServerError, "internal error")
	}
}
