package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
	"github.com/heartmarshall/agrotiquiza-backend/internal/service/health"
)

type sanitaryService interface {
	RecordSanitaryEvent(ctx context.Context, input health.SanitaryInput) (*domain.SanitaryEvent, error)
	GetSanitaryEvent(ctx context.Context, id int64) (*domain.SanitaryEvent, error)
	UpdateSanitaryEvent(ctx context.Context, input health.UpdateSanitaryInput) (*domain.SanitaryEvent, error)
	DeleteSanitaryEvent(ctx context.Context, id int64) error
	ListSanitaryEvents(ctx context.Context, filter domain.SanitaryFilter) ([]*domain.SanitaryEvent, error)
}

// SanitaryHandler serves sanitary events.
type SanitaryHandler struct {
	sanitary sanitaryService
	log      *slog.Logger
}

// NewSanitaryHandler creates a SanitaryHandler.
func NewSanitaryHandler(sanitary sanitaryService, logger *slog.Logger) *SanitaryHandler {
	return &SanitaryHandler{sanitary: sanitary, log: logger.With("handler", "sanitary")}
}

type sanitaryRequest struct {
	Tag         string  `json:"tag"`
	Date        Date    `json:"date"`
	Diagnosis   string  `json:"diagnosis"`
	Treatment   string  `json:"treatment"`
	Symptoms    *string `json:"symptoms"`
	Responsible string  `json:"responsible"`
}

type updateSanitaryRequest struct {
	Date        *Date   `json:"date"`
	Diagnosis   *string `json:"diagnosis"`
	Treatment   *string `json:"treatment"`
	Symptoms    *string `json:"symptoms"`
	Responsible *string `json:"responsible"`
}

// Create handles POST /sanitary-events.
func (h *SanitaryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req sanitaryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	event, err := h.sanitary.RecordSanitaryEvent(r.Context(), health.SanitaryInput{
		Tag:         req.Tag,
		Date:        req.Date.Time,
		Diagnosis:   req.Diagnosis,
		Treatment:   req.Treatment,
		Symptoms:    req.Symptoms,
		Responsible: req.Responsible,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSanitaryResponse(event))
}

// Get handles GET /sanitary-events/{id}.
func (h *SanitaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	event, err := h.sanitary.GetSanitaryEvent(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSanitaryResponse(event))
}

// List handles GET /sanitary-events?tag=&farm_id=.
func (h *SanitaryHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseSanitaryFilter(r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	events, err := h.sanitary.ListSanitaryEvents(r.Context(), filter)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, newList(mapSlice(events, toSanitaryResponse)))
}

func parseSanitaryFilter(r *http.Request) (domain.SanitaryFilter, error) {
	farmID, err := queryInt64Ptr(r, "farm_id")
	if err != nil {
		return domain.SanitaryFilter{}, err
	}
	return domain.SanitaryFilter{Tag: r.URL.Query().Get("tag"), FarmID: farmID}, nil
}

// Update handles PATCH /sanitary-events/{id}. An empty symptoms string
// clears the field.
func (h *SanitaryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	var req updateSanitaryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	event, err := h.sanitary.UpdateSanitaryEvent(r.Context(), health.UpdateSanitaryInput{
		ID:          id,
		Date:        timePtr(req.Date),
		Diagnosis:   req.Diagnosis,
		Treatment:   req.Treatment,
		Symptoms:    req.Symptoms,
		Responsible: req.Responsible,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSanitaryResponse(event))
}

// Delete handles DELETE /sanitary-events/{id}.
func (h *SanitaryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	if err := h.sanitary.DeleteSanitaryEvent(r.Context(), id); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
