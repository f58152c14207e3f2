package adapthttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"momentum/internal/app"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"message": message, "success": false})
}

func writeValidation(w http.ResponseWriter, ve *app.ValidationError) {
	writeJSON(w, http.StatusBadRequest, map[string]any{"errors": ve.Fields, "success": false})
}

// respondError maps application errors to the response envelope. Unknown
// errors become an opaque 500.
func respondError(w http.ResponseWriter, err error) {
	var ve *app.ValidationError
	var ee *app.EntryError
	switch {
	case errors.As(err, &ve):
		writeValidation(w, ve)
	case errors.As(err, &ee):
		writeError(w, http.StatusBadRequest, ee.Error())
	case errors.Is(err, app.ErrUserExists):
		writeError(w, http.StatusBadRequest, "User already exists")
	case errors.Is(err, app.ErrInvalidCredentials):
		writeError(w, http.StatusBadRequest, "Invalid credentials")
	case errors.Is(err, app.ErrInvalidReference):
		writeError(w, http.StatusBadRequest, "Invalid reference")
	case errors.Is(err, app.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	default:
		writeError(w, http.StatusInternalServerError, "Server error")
	}
}

func parseJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

func urlID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}
