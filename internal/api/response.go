package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/lmoreno/camisas/internal/inventory"
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

// repoError maps repository errors onto HTTP status codes: validation
// failures are the client's fault, a missing id is 404, anything else is a
// persistence problem.
func repoError(w http.ResponseWriter, err error) {
	var ve *inventory.ValidationError
	switch {
	case errors.As(err, &ve):
		jsonError(w, http.StatusBadRequest, ve.Error())
	case errors.Is(err, inventory.ErrNotFound):
		jsonError(w, http.StatusNotFound, "camisa not found")
	default:
		slog.Error("inventory operation failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}
