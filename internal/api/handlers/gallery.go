package handlers

import (
	"net/http"

	"github.com/msuss/atelier/internal/service"
)

type GalleryHandler struct {
	svc *service.GalleryService
}

func NewGalleryHandler(svc *service.GalleryService) *GalleryHandler {
	return &GalleryHandler{svc: svc}
}

func (h *GalleryHandler) List(w http.ResponseWriter, r *http.Request) {
	artists, err := h.svc.Artworks()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"artists": artists})
}
