package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
	"github.com/heartmarshall/agrotiquiza-backend/internal/service/livestock"
	"github.com/heartmarshall/agrotiquiza-backend/internal/transport/rest/loader"
	"github.com/heartmarshall/agrotiquiza-backend/pkg/ctxutil"
)

type animalService interface {
	LookupByTag(ctx context.Context, tag string) (*domain.Animal, error)
	CreateAnimal(ctx context.Context, input livestock.CreateAnimalInput) (*domain.Animal, error)
	GetAnimal(ctx context.Context, id int64) (*domain.AnimalDetail, error)
	SearchAnimals(ctx context.Context, filter domain.AnimalFilter) ([]*domain.Animal, int, error)
	SetMother(ctx context.Context, animalID int64, motherID *int64) (*domain.Animal, error)
	RecordWeighing(ctx context.Context, input livestock.WeighingInput) (*domain.Weighing, error)
	ListWeighings(ctx context.Context, tag string) ([]*domain.Weighing, error)
}

// AnimalHandler serves the animal registry and weighings.
type AnimalHandler struct {
	animals animalService
	log     *slog.Logger
}

// NewAnimalHandler creates an AnimalHandler.
func NewAnimalHandler(animals animalService, logger *slog.Logger) *AnimalHandler {
	return &AnimalHandler{animals: animals, log: logger.With("handler", "animal")}
}

type createAnimalRequest struct {
	Tag       string `json:"tag"`
	Name      string `json:"name"`
	BirthDate *Date  `json:"birth_date"`
	Breed     string `json:"breed"`
	Sex       string `json:"sex"`
	FarmID    int64  `json:"farm_id"`
	MotherTag string `json:"mother_tag"`
}

// Create handles POST /animals.
func (h *AnimalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAnimalRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	a, err := h.animals.CreateAnimal(r.Context(), livestock.CreateAnimalInput{
		Tag:       req.Tag,
		Name:      req.Name,
		BirthDate: timePtr(req.BirthDate),
		Breed:     req.Breed,
		Sex:       domain.Sex(req.Sex),
		FarmID:    req.FarmID,
		MotherTag: req.MotherTag,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAnimalResponse(a))
}

// Search handles GET /animals with optional q, farm_id, state, sex, limit
// and offset query parameters.
func (h *AnimalHandler) Search(w http.ResponseWriter, r *http.Request) {
	filter, err := parseAnimalFilter(r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	animals, total, err := h.animals.SearchAnimals(r.Context(), filter)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	ids := make([]int64, 0, len(animals))
	for _, a := range animals {
		ids = append(ids, a.FarmID)
	}
	names, err := farmNames(r.Context(), ids)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	items := mapSlice(animals, func(a *domain.Animal) animalResponse {
		resp := toAnimalResponse(a)
		resp.FarmName = names[a.FarmID]
		return resp
	})
	resp := newList(items)
	resp.Total = total
	writeJSON(w, http.StatusOK, resp)
}

func parseAnimalFilter(r *http.Request) (domain.AnimalFilter, error) {
	q := r.URL.Query()
	filter := domain.AnimalFilter{Query: q.Get("q")}

	var errs []domain.FieldError
	var err error
	if filter.FarmID, err = queryInt64Ptr(r, "farm_id"); err != nil {
		errs = append(errs, domain.FieldError{Field: "farm_id", Message: "must be a positive integer"})
	}
	if v := q.Get("state"); v != "" {
		st := domain.AnimalState(v)
		if !st.IsValid() {
			errs = append(errs, domain.FieldError{Field: "state", Message: "unknown state"})
		}
		filter.State = &st
	}
	if v := q.Get("sex"); v != "" {
		sex := domain.Sex(v)
		if !sex.IsValid() {
			errs = append(errs, domain.FieldError{Field: "sex", Message: "must be M or F"})
		}
		filter.Sex = &sex
	}
	if filter.Limit, err = queryInt(r, "limit", 0); err != nil {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be an integer"})
	}
	if filter.Offset, err = queryInt(r, "offset", 0); err != nil {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be an integer"})
	}

	if len(errs) > 0 {
		return domain.AnimalFilter{}, domain.NewValidationErrors(errs)
	}
	return filter, nil
}

// Get handles GET /animals/{id}.
func (h *AnimalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	detail, err := h.animals.GetAnimal(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAnimalDetailResponse(detail))
}

// Lookup handles GET /animals/lookup?tag=.
func (h *AnimalHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	a, err := h.animals.LookupByTag(r.Context(), r.URL.Query().Get("tag"))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAnimalResponse(a))
}

type setMotherRequest struct {
	MotherID *int64 `json:"mother_id"`
}

// SetMother handles PUT /animals/{id}/mother. A null mother_id clears it.
func (h *AnimalHandler) SetMother(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	var req setMotherRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	a, err := h.animals.SetMother(r.Context(), id, req.MotherID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAnimalResponse(a))
}

type weighingRequest struct {
	Tag      string  `json:"tag"`
	Date     Date    `json:"date"`
	WeightKg float64 `json:"weight_kg"`
	FarmID   int64   `json:"farm_id"`
}

// RecordWeighing handles POST /weighings.
func (h *AnimalHandler) RecordWeighing(w http.ResponseWriter, r *http.Request) {
	var req weighingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	wg, err := h.animals.RecordWeighing(r.Context(), livestock.WeighingInput{
		Tag:      req.Tag,
		Date:     req.Date.Time,
		WeightKg: req.WeightKg,
		FarmID:   req.FarmID,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toWeighingResponse(wg))
}

// ListWeighings handles GET /weighings?tag=.
func (h *AnimalHandler) ListWeighings(w http.ResponseWriter, r *http.Request) {
	list, err := h.animals.ListWeighings(r.Context(), r.URL.Query().Get("tag"))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, newList(mapSlice(list, toWeighingResponse)))
}

// farmNames resolves farm names through the request loader. Without a
// loader in the context no names are returned.
func farmNames(ctx context.Context, ids []int64) (map[int64]string, error) {
	l := loader.FromContext(ctx)
	if l == nil || len(ids) == 0 {
		return map[int64]string{}, nil
	}
	return l.FarmNames(ctx, ids)
}

// actorID returns the calling user's id, or nil for anonymous callers.
func actorID(ctx context.Context) *int64 {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil
	}
	return &id
}
