package livestock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
)

// LookupByTag finds an animal by its tag, ignoring case and surrounding space.
func (s *Service) LookupByTag(ctx context.Context, tag string) (*domain.Animal, error) {
	tag = domain.NormalizeTag(tag)
	if tag == "" {
		return nil, domain.NewValidationError("tag", "required")
	}
	return s.animalByTag(ctx, tag)
}

// CreateAnimal registers an animal that did not come from a recorded birth
// (purchases, initial inventory). New animals start active and open.
func (s *Service) CreateAnimal(ctx context.Context, input CreateAnimalInput) (*domain.Animal, error) {
	input.Tag = domain.NormalizeTag(input.Tag)
	input.MotherTag = domain.NormalizeTag(input.MotherTag)
	input.Name = domain.NormalizeText(input.Name)
	input.Breed = domain.NormalizeText(input.Breed)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Farm must exist
	if _, err := s.farmByID(ctx, input.FarmID); err != nil {
		return nil, err
	}

	// Step 3: Resolve the mother, if given
	var motherID *int64
	if input.MotherTag != "" {
		mother, err := s.animalByTag(ctx, input.MotherTag)
		if err != nil {
			return nil, err
		}
		if !mother.IsFemale() {
			return nil, fmt.Errorf("mother %q: %w", mother.Tag, domain.ErrInvalidSex)
		}
		motherID = &mother.ID
	}

	// Step 4: Insert; a racing insert of the same tag surfaces as a duplicate
	created, err := s.animals.Create(ctx, &domain.Animal{
		Tag:               input.Tag,
		Name:              input.Name,
		BirthDate:         input.BirthDate,
		Breed:             input.Breed,
		Sex:               input.Sex,
		State:             domain.AnimalStateActive,
		ReproductiveState: domain.ReproductiveOpen,
		FarmID:            input.FarmID,
		MotherID:          motherID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("animal %q: %w", input.Tag, domain.ErrDuplicateTag)
		}
		return nil, fmt.Errorf("create animal: %w", err)
	}

	s.log.InfoContext(ctx, "animal created",
		slog.Int64("animal_id", created.ID),
		slog.String("tag", created.Tag),
		slog.Int64("farm_id", created.FarmID),
	)

	return created, nil
}

// GetAnimal returns an animal together with its derived data: farm name,
// mother tag, latest weighing, age in days and offspring tags.
func (s *Service) GetAnimal(ctx context.Context, id int64) (*domain.AnimalDetail, error) {
	a, err := s.animals.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get animal: %w", err)
	}

	farm, err := s.farmByID(ctx, a.FarmID)
	if err != nil {
		return nil, err
	}

	detail := &domain.AnimalDetail{
		Animal:   a,
		FarmName: farm.Name,
		AgeDays:  a.AgeDays(s.now()),
	}

	if a.MotherID != nil {
		mother, err := s.animals.GetByID(ctx, *a.MotherID)
		switch {
		case err == nil:
			detail.MotherTag = &mother.Tag
		case !errors.Is(err, domain.ErrNotFound):
			return nil, fmt.Errorf("get mother: %w", err)
		}
	}

	latest, err := s.weighings.Latest(ctx, a.ID)
	switch {
	case err == nil:
		detail.LatestWeight = latest
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("get latest weighing: %w", err)
	}

	if detail.OffspringTags, err = s.animals.ListOffspringTags(ctx, a.ID); err != nil {
		return nil, fmt.Errorf("list offspring: %w", err)
	}

	return detail, nil
}

// SearchAnimals lists animals matching the filter and the total match count.
func (s *Service) SearchAnimals(ctx context.Context, filter domain.AnimalFilter) ([]*domain.Animal, int, error) {
	filter.Query = domain.NormalizeText(filter.Query)
	filter.Limit = domain.ClampLimit(filter.Limit)
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	if filter.State != nil && !filter.State.IsValid() {
		return nil, 0, domain.NewValidationError("state", "unknown state")
	}
	if filter.Sex != nil && !filter.Sex.IsValid() {
		return nil, 0, domain.NewValidationError("sex", "must be M or F")
	}

	animals, total, err := s.animals.Search(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("search animals: %w", err)
	}
	return animals, total, nil
}

// SetMother links an animal to its mother, or unlinks it when motherID is nil.
func (s *Service) SetMother(ctx context.Context, animalID int64, motherID *int64) (*domain.Animal, error) {
	a, err := s.animals.GetByID(ctx, animalID)
	if err != nil {
		return nil, fmt.Errorf("get animal: %w", err)
	}

	if err := a.ValidateMother(motherID); err != nil {
		return nil, err
	}

	if motherID != nil {
		mother, err := s.animals.GetByID(ctx, *motherID)
		if err != nil {
			return nil, fmt.Errorf("get mother: %w", err)
		}
		if !mother.IsFemale() {
			return nil, fmt.Errorf("mother %q: %w", mother.Tag, domain.ErrInvalidSex)
		}
	}

	if err := s.animals.SetMother(ctx, animalID, motherID); err != nil {
		return nil, fmt.Errorf("set mother: %w", err)
	}
	a.MotherID = motherID

	attrs := []any{slog.Int64("animal_id", animalID)}
	if motherID != nil {
		attrs = append(attrs, slog.Int64("mother_id", *motherID))
	}
	s.log.InfoContext(ctx, "mother updated", attrs...)

	return a, nil
}
