package health

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
)

// RecordSanitaryEvent stores a diagnosis and treatment for an animal. It has
// no effect on the animal's state.
func (s *Service) RecordSanitaryEvent(ctx context.Context, input SanitaryInput) (*domain.SanitaryEvent, error) {
	input.Tag = domain.NormalizeTag(input.Tag)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Resolve animal
	a, err := s.animalByTag(ctx, input.Tag)
	if err != nil {
		return nil, err
	}

	// Step 3: Insert
	event, err := s.sanitary.Create(ctx, &domain.SanitaryEvent{
		Date:        input.Date,
		AnimalID:    a.ID,
		Diagnosis:   strings.TrimSpace(input.Diagnosis),
		Treatment:   strings.TrimSpace(input.Treatment),
		Symptoms:    trimOrNil(input.Symptoms),
		Responsible: domain.NormalizeText(input.Responsible),
	})
	if err != nil {
		return nil, fmt.Errorf("create sanitary event: %w", err)
	}

	s.log.InfoContext(ctx, "sanitary event recorded",
		slog.Int64("sanitary_event_id", event.ID),
		slog.String("tag", a.Tag),
	)

	return event, nil
}

// GetSanitaryEvent returns one sanitary event.
func (s *Service) GetSanitaryEvent(ctx context.Context, id int64) (*domain.SanitaryEvent, error) {
	event, err := s.sanitary.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get sanitary event: %w", err)
	}
	return event, nil
}

// UpdateSanitaryEvent applies a partial update.
func (s *Service) UpdateSanitaryEvent(ctx context.Context, input UpdateSanitaryInput) (*domain.SanitaryEvent, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.SanitaryUpdateParams{
		Date:        input.Date,
		Diagnosis:   trimOrNil(input.Diagnosis),
		Treatment:   trimOrNil(input.Treatment),
		Responsible: trimOrNil(input.Responsible),
	}
	if input.Symptoms != nil {
		v := strings.TrimSpace(*input.Symptoms)
		params.Symptoms = &v
	}

	event, err := s.sanitary.Update(ctx, input.ID, params)
	if err != nil {
		return nil, fmt.Errorf("update sanitary event: %w", err)
	}

	s.log.InfoContext(ctx, "sanitary event updated", slog.Int64("sanitary_event_id", input.ID))

	return event, nil
}

// DeleteSanitaryEvent removes a sanitary event.
func (s *Service) DeleteSanitaryEvent(ctx context.Context, id int64) error {
	if err := s.sanitary.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete sanitary event: %w", err)
	}

	s.log.InfoContext(ctx, "sanitary event deleted", slog.Int64("sanitary_event_id", id))
	return nil
}

// ListSanitaryEvents returns sanitary events, optionally for one animal or farm.
func (s *Service) ListSanitaryEvents(ctx context.Context, filter domain.SanitaryFilter) ([]*domain.SanitaryEvent, error) {
	filter.Tag = domain.NormalizeTag(filter.Tag)

	events, err := s.sanitary.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list sanitary events: %w", err)
	}
	return events, nil
}
