package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
	"github.com/heartmarshall/agrotiquiza-backend/internal/service/farm"
)

type farmService interface {
	Create(ctx context.Context, input farm.CreateFarmInput) (*domain.Farm, error)
	Get(ctx context.Context, id int64) (*domain.Farm, error)
	List(ctx context.Context) ([]*domain.Farm, error)
	Update(ctx context.Context, input farm.UpdateFarmInput) (*domain.Farm, error)
	Delete(ctx context.Context, id int64) error
}

// FarmHandler serves the farm registry.
type FarmHandler struct {
	farms farmService
	log   *slog.Logger
}

// NewFarmHandler creates a FarmHandler.
func NewFarmHandler(farms farmService, logger *slog.Logger) *FarmHandler {
	return &FarmHandler{farms: farms, log: logger.With("handler", "farm")}
}

type createFarmRequest struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	Location string `json:"location"`
	Owner    string `json:"owner"`
	Phone    string `json:"phone"`
}

type updateFarmRequest struct {
	Name     *string `json:"name"`
	Code     *string `json:"code"`
	Location *string `json:"location"`
	Owner    *string `json:"owner"`
	Phone    *string `json:"phone"`
}

// Create handles POST /farms.
func (h *FarmHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createFarmRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	f, err := h.farms.Create(r.Context(), farm.CreateFarmInput(req))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toFarmResponse(f))
}

// Get handles GET /farms/{id}.
func (h *FarmHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	f, err := h.farms.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toFarmResponse(f))
}

// List handles GET /farms.
func (h *FarmHandler) List(w http.ResponseWriter, r *http.Request) {
	farms, err := h.farms.List(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, newList(mapSlice(farms, toFarmResponse)))
}

// Update handles PATCH /farms/{id}.
func (h *FarmHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	var req updateFarmRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	f, err := h.farms.Update(r.Context(), farm.UpdateFarmInput{
		ID:       id,
		Name:     req.Name,
		Code:     req.Code,
		Location: req.Location,
		Owner:    req.Owner,
		Phone:    req.Phone,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toFarmResponse(f))
}

// Delete handles DELETE /farms/{id}.
func (h *FarmHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	if err := h.farms.Delete(r.Context(), id); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
