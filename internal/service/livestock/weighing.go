package livestock

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
)

// RecordWeighing stores a weight measurement. Animals that have left the
// herd cannot be weighed.
func (s *Service) RecordWeighing(ctx context.Context, input WeighingInput) (*domain.Weighing, error) {
	input.Tag = domain.NormalizeTag(input.Tag)

	// Step 1: Resolve the animal; an unknown tag is reported before field errors
	var a *domain.Animal
	if input.Tag != "" {
		var err error
		if a, err = s.animalByTag(ctx, input.Tag); err != nil {
			return nil, err
		}
	}

	// Step 2: Validate input and resolve the farm
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.farmByID(ctx, input.FarmID); err != nil {
		return nil, err
	}

	// Step 3: Lifecycle check
	if a.State.IsTerminal() {
		return nil, terminalStateError(a)
	}

	// Step 4: Insert
	w, err := s.weighings.Create(ctx, &domain.Weighing{
		Date:     input.Date,
		WeightKg: input.WeightKg,
		AnimalID: a.ID,
		FarmID:   input.FarmID,
	})
	if err != nil {
		return nil, fmt.Errorf("create weighing: %w", err)
	}

	s.log.InfoContext(ctx, "weighing recorded",
		slog.Int64("weighing_id", w.ID),
		slog.String("tag", a.Tag),
		slog.Float64("weight_kg", w.WeightKg),
	)

	return w, nil
}

// ListWeighings returns the weighing history of an animal, newest first.
func (s *Service) ListWeighings(ctx context.Context, tag string) ([]*domain.Weighing, error) {
	a, err := s.LookupByTag(ctx, tag)
	if err != nil {
		return nil, err
	}

	list, err := s.weighings.ListByAnimal(ctx, a.ID)
	if err != nil {
		return nil, fmt.Errorf("list weighings: %w", err)
	}
	return list, nil
}
