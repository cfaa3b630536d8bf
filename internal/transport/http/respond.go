package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/proyectocucea9-hash/proyectocucea/internal/domain"
	"github.com/proyectocucea9-hash/proyectocucea/internal/service/impl"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

var badRequestErrs = []error{
	domain.ErrInvalidDomain,
	domain.ErrWeakPassword,
	domain.ErrMalformedCode,
	domain.ErrCodeMismatch,
	domain.ErrCodeExpired,
	impl.ErrInvalidVoteType,
	impl.ErrMissingFields,
	impl.ErrInvalidCategory,
	impl.ErrInvalidAmount,
	impl.ErrInvalidDate,
	impl.ErrEmptyBody,
	impl.ErrEmptyImageURL,
	impl.ErrEmptyContentKey,
}

var notFoundErrs = []error{
	domain.ErrItemNotFound,
	domain.ErrCommentNotFound,
	domain.ErrSlideNotFound,
	domain.ErrContentNotFound,
	domain.ErrAccountNotFound,
	domain.ErrNoPendingRegistration,
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	for _, known := range badRequestErrs {
		if errors.Is(err, known) {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
			return
		}
	}
	for _, known := range notFoundErrs {
		if errors.Is(err, known) {
			writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
			return
		}
	}
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		writeJSON(w, http.StatusForbidden, errorBody{Error: err.Error()})
	case errors.Is(err, domain.ErrEmailTaken):
		writeJSON(w, http.StatusConflict, errorBody{Error: err.Error()})
	default:
		// Storage or other unexpected failure: the operation was rolled back
		// and is safe to retry.
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}
