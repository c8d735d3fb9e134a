package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
	"github.com/heartmarshall/agrotiquiza-backend/internal/service/livestock"
)

type eventService interface {
	RecordBirth(ctx context.Context, input livestock.BirthInput) (*domain.Birth, error)
	ListBirths(ctx context.Context, filter domain.BirthFilter) ([]*domain.Birth, error)
	RecordProduction(ctx context.Context, input livestock.ProductionInput) (*domain.MilkProduction, error)
	RecordExit(ctx context.Context, input livestock.ExitInput) (*domain.ExitEvent, error)
	TransferAnimals(ctx context.Context, input livestock.TransferInput) ([]*domain.Transfer, error)
	ListTransfers(ctx context.Context, input livestock.ListTransfersInput) ([]*domain.Transfer, error)
}

// EventHandler serves births, milk production, exits and transfers.
type EventHandler struct {
	events eventService
	log    *slog.Logger
}

// NewEventHandler creates an EventHandler.
func NewEventHandler(events eventService, logger *slog.Logger) *EventHandler {
	return &EventHandler{events: events, log: logger.With("handler", "event")}
}

type birthRequest struct {
	BirthDate     Date     `json:"birth_date"`
	MotherTag     string   `json:"mother_tag"`
	OffspringTag  string   `json:"offspring_tag"`
	OffspringName string   `json:"offspring_name"`
	FarmID        int64    `json:"farm_id"`
	Breed         string   `json:"breed"`
	Sex           string   `json:"sex"`
	WeightKg      *float64 `json:"weight_kg"`
}

// RecordBirth handles POST /births.
func (h *EventHandler) RecordBirth(w http.ResponseWriter, r *http.Request) {
	var req birthRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	b, err := h.events.RecordBirth(r.Context(), livestock.BirthInput{
		BirthDate:     req.BirthDate.Time,
		MotherTag:     req.MotherTag,
		OffspringTag:  req.OffspringTag,
		OffspringName: req.OffspringName,
		FarmID:        req.FarmID,
		Breed:         req.Breed,
		Sex:           domain.Sex(req.Sex),
		WeightKg:      req.WeightKg,
		ActorID:       actorID(r.Context()),
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBirthResponse(b))
}

// ListBirths handles GET /births?mother_tag=&farm_id=.
func (h *EventHandler) ListBirths(w http.ResponseWriter, r *http.Request) {
	filter, err := parseBirthFilter(r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	births, err := h.events.ListBirths(r.Context(), filter)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, newList(mapSlice(births, toBirthResponse)))
}

func parseBirthFilter(r *http.Request) (domain.BirthFilter, error) {
	farmID, err := queryInt64Ptr(r, "farm_id")
	if err != nil {
		return domain.BirthFilter{}, err
	}
	return domain.BirthFilter{MotherTag: r.URL.Query().Get("mother_tag"), FarmID: farmID}, nil
}

type productionRequest struct {
	Tag       string   `json:"tag"`
	Date      Date     `json:"date"`
	MorningKg *float64 `json:"morning_kg"`
	EveningKg *float64 `json:"evening_kg"`
}

// RecordProduction handles PUT /production. A second report for the same
// animal and day overwrites only the sides it carries; an omitted side keeps
// its stored value.
func (h *EventHandler) RecordProduction(w http.ResponseWriter, r *http.Request) {
	var req productionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	p, err := h.events.RecordProduction(r.Context(), livestock.ProductionInput{
		Tag:       req.Tag,
		Date:      req.Date.Time,
		MorningKg: req.MorningKg,
		EveningKg: req.EveningKg,
		ActorID:   actorID(r.Context()),
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductionResponse(p))
}

type exitRequest struct {
	Tag   string `json:"tag"`
	Date  Date   `json:"date"`
	Type  string `json:"type"`
	Notes string `json:"notes"`
}

// RecordExit handles POST /exits.
func (h *EventHandler) RecordExit(w http.ResponseWriter, r *http.Request) {
	var req exitRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	e, err := h.events.RecordExit(r.Context(), livestock.ExitInput{
		Tag:     req.Tag,
		Date:    req.Date.Time,
		Type:    domain.ExitType(req.Type),
		ActorID: actorID(r.Context()),
		Notes:   req.Notes,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toExitResponse(e))
}

type transferRequest struct {
	Tags              []string `json:"tags"`
	DestinationFarmID int64    `json:"destination_farm_id"`
}

// Transfer handles POST /transfers. The batch is all-or-nothing.
func (h *EventHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	transfers, err := h.events.TransferAnimals(r.Context(), livestock.TransferInput{
		Tags:              req.Tags,
		DestinationFarmID: req.DestinationFarmID,
		ActorID:           actorID(r.Context()),
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	h.writeTransfers(w, r, http.StatusCreated, transfers)
}

// ListTransfers handles GET /transfers?tag=&limit=&offset=.
func (h *EventHandler) ListTransfers(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	transfers, err := h.events.ListTransfers(r.Context(), livestock.ListTransfersInput{
		Tag:    r.URL.Query().Get("tag"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	h.writeTransfers(w, r, http.StatusOK, transfers)
}

func (h *EventHandler) writeTransfers(w http.ResponseWriter, r *http.Request, status int, transfers []*domain.Transfer) {
	ids := make([]int64, 0, 2*len(transfers))
	for _, t := range transfers {
		ids = append(ids, t.OriginFarmID, t.DestinationFarmID)
	}
	names, err := farmNames(r.Context(), ids)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, status, newList(mapSlice(transfers, func(t *domain.Transfer) transferResponse {
		resp := toTransferResponse(t)
		resp.OriginFarmName = names[t.OriginFarmID]
		resp.DestinationFarmName = names[t.DestinationFarmID]
		return resp
	})))
}
