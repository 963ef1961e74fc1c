package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/msuss/atelier/internal/domain"
	"github.com/msuss/atelier/internal/service"
	"github.com/msuss/atelier/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: ghost", service.ErrArtistNotFound), http.StatusNotFound},
		{service.ErrTemplateNotFound, http.StatusNotFound},
		{store.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: aria", service.ErrArtistExists), http.StatusConflict},
		{service.ErrSelfCritique, http.StatusBadRequest},
		{service.ErrUnknownSkill, http.StatusBadRequest},
		{service.ErrInvalidPairCount, http.StatusBadRequest},
		{domain.ErrInvalidTemplate, http.StatusBadRequest},
		{service.ErrNotEnoughArtists, http.StatusUnprocessableEntity},
		{service.ErrNoCreations, http.StatusUnprocessableEntity},
		{errors.New("disk full"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}
}

func TestWriteServiceErrorHidesInternalErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	writeServiceError(rec, errors.New("open /secret/path: permission denied"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, rec.Body.String())
}
