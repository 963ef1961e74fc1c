package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/msuss/atelier/internal/domain"
	"github.com/msuss/atelier/internal/service"
	"github.com/msuss/atelier/internal/store"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps service errors onto HTTP statuses. Unknown errors
// are reported as 500 without their text.
func writeServiceError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	writeError(w, status, msg)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrArtistNotFound),
		errors.Is(err, service.ErrTemplateNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrArtistExists),
		errors.Is(err, store.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, service.ErrSelfCritique),
		errors.Is(err, service.ErrUnknownSkill),
		errors.Is(err, service.ErrInvalidPairCount),
		errors.Is(err, domain.ErrInvalidTemplate):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotEnoughArtists),
		errors.Is(err, service.ErrNoCreations):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
