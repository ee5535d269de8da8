package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"stormy/internal/core/port"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, errorResponse{Error: msg})
}

// writeDomainError maps use case errors to status codes. Unknown errors are
// logged and reported without detail.
func (h *Handler) writeDomainError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, port.ErrCampaignNotFound):
		h.writeError(w, http.StatusNotFound, "Campaign not found")
	case errors.Is(err, port.ErrCreatorNotFound):
		h.writeError(w, http.StatusNotFound, "Creator not found")
	case errors.Is(err, port.ErrEmailExists):
		h.writeError(w, http.StatusBadRequest, "Email already exists")
	default:
		h.logger.Error(op+" error", slog.Any("error", err), slog.String("path", r.URL.Path))
		h.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeJSON reads an optional JSON body into v. An empty body leaves v
// untouched.
func decodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
