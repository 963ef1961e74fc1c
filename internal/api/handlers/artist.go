package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/msuss/atelier/internal/service"
)

const defaultMemoryLimit = 10

type ArtistHandler struct {
	svc *service.ArtistService
}

func NewArtistHandler(svc *service.ArtistService) *ArtistHandler {
	return &ArtistHandler{svc: svc}
}

type createArtistRequest struct {
	Template string `json:"template"`
}

func (h *ArtistHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createArtistRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Template) == "" {
		writeError(w, http.StatusBadRequest, "template is required")
		return
	}

	id, err := h.svc.Create(r.Context(), req.Template)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	profile, err := h.svc.Get(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, profile)
}

func (h *ArtistHandler) Templates(w http.ResponseWriter, r *http.Request) {
	names, err := h.svc.Templates()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"templates": names})
}

func (h *ArtistHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// Memory returns recent context. ?limit=n, default 10.
func (h *ArtistHandler) Memory(w http.ResponseWriter, r *http.Request) {
	limit := defaultMemoryLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	id := chi.URLParam(r, "id")
	items, err := h.svc.Memory(id, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"artist": id, "memories": items})
}
