package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/msuss/atelier/internal/service"
)

type ExchangeHandler struct {
	svc *service.ExchangeService
}

func NewExchangeHandler(svc *service.ExchangeService) *ExchangeHandler {
	return &ExchangeHandler{svc: svc}
}

type critiqueRequest struct {
	Critic  string `json:"critic"`
	Subject string `json:"subject"`
	// Index selects the creation; a random one when omitted.
	Index *int `json:"index,omitempty"`
}

func (h *ExchangeHandler) Critique(w http.ResponseWriter, r *http.Request) {
	var req critiqueRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Critic == "" || req.Subject == "" {
		writeError(w, http.StatusBadRequest, "critic and subject are required")
		return
	}

	out, err := h.svc.CritiquePair(r.Context(), req.Critic, req.Subject, req.Index)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

type exchangeRequest struct {
	Count int `json:"count"`
}

// Exchange runs one round. An empty body runs a circular round.
func (h *ExchangeHandler) Exchange(w http.ResponseWriter, r *http.Request) {
	var req exchangeRequest
	if err := decode(r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	report, err := h.svc.RunRound(r.Context(), req.Count)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
