package rest

import (
	"context"
	"iter"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
	"github.com/heartmarshall/agrotiquiza-backend/internal/service/health"
)

type reproductionService interface {
	RecordInsemination(ctx context.Context, input health.InseminationInput) (*domain.Insemination, error)
	ListInseminations(ctx context.Context, limit, offset int) ([]*domain.Insemination, error)
	UpdateInsemination(ctx context.Context, input health.UpdateInseminationInput) (*domain.Insemination, error)
	DeleteInsemination(ctx context.Context, id int64) error
	PendingInseminations(ctx context.Context) iter.Seq2[*domain.Insemination, error]
	ConfirmGestation(ctx context.Context, input health.ConfirmInput) (*domain.GestationConfirmation, error)
	ListConfirmations(ctx context.Context, limit, offset int) ([]*domain.GestationConfirmation, error)
}

// ReproductionHandler serves inseminations and gestation confirmations.
type ReproductionHandler struct {
	repro reproductionService
	log   *slog.Logger
}

// NewReproductionHandler creates a ReproductionHandler.
func NewReproductionHandler(repro reproductionService, logger *slog.Logger) *ReproductionHandler {
	return &ReproductionHandler{repro: repro, log: logger.With("handler", "reproduction")}
}

type inseminationRequest struct {
	Tag         string `json:"tag"`
	Date        Date   `json:"date"`
	SemenType   string `json:"semen_type"`
	Inseminator string `json:"inseminator"`
}

// RecordInsemination handles POST /inseminations.
func (h *ReproductionHandler) RecordInsemination(w http.ResponseWriter, r *http.Request) {
	var req inseminationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	input := health.InseminationInput{
		Tag:         req.Tag,
		Date:        req.Date.Time,
		SemenType:   req.SemenType,
		Inseminator: req.Inseminator,
	}
	if id := actorID(r.Context()); id != nil {
		input.ActorID = *id
	}

	ins, err := h.repro.RecordInsemination(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toInseminationResponse(ins))
}

// ListInseminations handles GET /inseminations?limit=&offset=.
func (h *ReproductionHandler) ListInseminations(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pageParams(r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	list, err := h.repro.ListInseminations(r.Context(), limit, offset)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, newList(mapSlice(list, toInseminationResponse)))
}

type updateInseminationRequest struct {
	Date        *Date   `json:"date"`
	SemenType   *string `json:"semen_type"`
	Inseminator *string `json:"inseminator"`
}

// UpdateInsemination handles PATCH /inseminations/{id}.
func (h *ReproductionHandler) UpdateInsemination(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	var req updateInseminationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	ins, err := h.repro.UpdateInsemination(r.Context(), health.UpdateInseminationInput{
		ID:          id,
		Date:        timePtr(req.Date),
		SemenType:   req.SemenType,
		Inseminator: req.Inseminator,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toInseminationResponse(ins))
}

// DeleteInsemination handles DELETE /inseminations/{id}.
func (h *ReproductionHandler) DeleteInsemination(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	if err := h.repro.DeleteInsemination(r.Context(), id); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Pending handles GET /inseminations/pending?limit=. Reading stops once
// limit items have been collected.
func (h *ReproductionHandler) Pending(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", domain.MaxListLimit)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	limit = domain.ClampLimit(limit)

	items := make([]inseminationResponse, 0)
	for ins, err := range h.repro.PendingInseminations(r.Context()) {
		if err != nil {
			writeDomainError(w, r, h.log, err)
			return
		}
		items = append(items, toInseminationResponse(ins))
		if len(items) == limit {
			break
		}
	}
	writeJSON(w, http.StatusOK, newList(items))
}

type confirmRequest struct {
	ConfirmedOn Date    `json:"confirmed_on"`
	Method      string  `json:"method"`
	Result      string  `json:"result"`
	Responsible string  `json:"responsible"`
	Notes       *string `json:"notes"`
}

// Confirm handles POST /inseminations/{id}/confirmation.
func (h *ReproductionHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	var req confirmRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	c, err := h.repro.ConfirmGestation(r.Context(), health.ConfirmInput{
		InseminationID: id,
		ConfirmedOn:    req.ConfirmedOn.Time,
		Method:         req.Method,
		Result:         domain.GestationResult(req.Result),
		Responsible:    req.Responsible,
		Notes:          req.Notes,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toConfirmationResponse(c))
}

// ListConfirmations handles GET /confirmations?limit=&offset=.
func (h *ReproductionHandler) ListConfirmations(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pageParams(r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	list, err := h.repro.ListConfirmations(r.Context(), limit, offset)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, newList(mapSlice(list, toConfirmationResponse)))
}

func pageParams(r *http.Request) (limit, offset int, err error) {
	if limit, err = queryInt(r, "limit", 0); err != nil {
		return 0, 0, err
	}
	if offset, err = queryInt(r, "offset", 0); err != nil {
		return 0, 0, err
	}
	return limit, offset, nil
}
