package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/mmynk/auctioneer/internal/models"
)

// errorBody is the wire shape of every failure.
type errorBody struct {
	Error string      `json:"error"`
	Code  models.Code `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError maps a structured domain error to its HTTP status and a
// stable JSON body. Unclassified errors become an opaque 500; the cause is
// logged, never returned.
func writeError(w http.ResponseWriter, err error) {
	var appErr *models.Error
	if errors.As(err, &appErr) {
		writeJSON(w, appErr.Code.HTTPStatus(), errorBody{Error: appErr.Message, Code: appErr.Code})
		return
	}
	slog.Error("Unhandled error", "error", err)
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Internal server error", Code: models.CodeUnknown})
}

// decodeJSON decodes the request body into v. An empty body decodes to the
// zero value so bodyless POSTs still work; anything else malformed is a
// validation error.
func decodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return models.WrapError(models.CodeValidation, "Invalid JSON body", err)
}
