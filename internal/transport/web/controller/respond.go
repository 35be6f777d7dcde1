package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/beliefted/beliefted-server/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		domain.LoggerFromContext(ctx).ErrorContext(ctx, "unable to write response", "error", err)
	}
}

// statusForError maps domain errors onto HTTP statuses. Anything unrecognised
// is a server error.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// writeError logs err and answers with its mapped status. Server errors get
// a generic message so storage details do not leak to clients.
func writeError(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	logger := domain.LoggerFromContext(ctx)
	status := statusForError(err)

	if status == http.StatusInternalServerError {
		logger.ErrorContext(ctx, msg, "error", err)
		writeJSON(ctx, w, status, errorResponse{Error: "internal error"})
		return
	}

	logger.InfoContext(ctx, msg, "error", err, "status", status)
	writeJSON(ctx, w, status, errorResponse{Error: err.Error()})
}

func decodeJSONBody(r *http.Request, v any) error {
	if r.Body == nil {
		return domain.ErrInvalidInput
	}
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: malformed JSON body: %v", domain.ErrInvalidInput, err)
	}
	return nil
}
