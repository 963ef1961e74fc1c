package handlers

import (
	"net/http"

	"github.com/msuss/atelier/internal/service"
)

type StudioHandler struct {
	svc *service.StudioService
}

func NewStudioHandler(svc *service.StudioService) *StudioHandler {
	return &StudioHandler{svc: svc}
}

type generateRequest struct {
	Artist string `json:"artist"`
	Skill  string `json:"skill"`
}

func (h *StudioHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Artist == "" {
		writeError(w, http.StatusBadRequest, "artist is required")
		return
	}
	if req.Skill == "" {
		req.Skill = "text"
	}

	res, err := h.svc.Generate(r.Context(), req.Artist, req.Skill)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

type feedbackRequest struct {
	Artist string `json:"artist"`
	Liked  *bool  `json:"liked"`
	Notes  string `json:"notes"`
}

func (h *StudioHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Artist == "" {
		writeError(w, http.StatusBadRequest, "artist is required")
		return
	}
	if req.Liked == nil {
		writeError(w, http.StatusBadRequest, "liked is required")
		return
	}

	res, err := h.svc.Feedback(r.Context(), req.Artist, *req.Liked, req.Notes)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *StudioHandler) Skills(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"skills": h.svc.Skills()})
}
