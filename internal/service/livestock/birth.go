package livestock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
)

// RecordBirth registers a calving: the offspring animal and the birth record
// are written in one transaction, so a failure leaves neither behind.
func (s *Service) RecordBirth(ctx context.Context, input BirthInput) (*domain.Birth, error) {
	input.MotherTag = domain.NormalizeTag(input.MotherTag)
	input.OffspringTag = domain.NormalizeTag(input.OffspringTag)
	input.OffspringName = domain.NormalizeText(input.OffspringName)
	input.Breed = domain.NormalizeText(input.Breed)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Mother must be an active female
	mother, err := s.animalByTag(ctx, input.MotherTag)
	if err != nil {
		return nil, err
	}
	if !mother.IsFemale() {
		return nil, fmt.Errorf("mother %q: %w", mother.Tag, domain.ErrInvalidSex)
	}
	if !mother.CanRegisterBirth() {
		return nil, fmt.Errorf("mother %q is %s: %w", mother.Tag, mother.State, domain.ErrNotEligible)
	}

	// Step 3: Farm must exist
	if _, err := s.farmByID(ctx, input.FarmID); err != nil {
		return nil, err
	}

	// Step 4: Offspring tag must be free
	if err := s.ensureTagFree(ctx, input.OffspringTag); err != nil {
		return nil, err
	}

	// Step 5: Offspring, birth and mother update in one transaction
	var birth *domain.Birth
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		offspring, err := s.animals.Create(txCtx, &domain.Animal{
			Tag:               input.OffspringTag,
			Name:              input.OffspringName,
			BirthDate:         &input.BirthDate,
			Breed:             input.Breed,
			Sex:               input.Sex,
			State:             domain.AnimalStateActive,
			ReproductiveState: domain.ReproductiveOpen,
			FarmID:            input.FarmID,
			MotherID:          &mother.ID,
		})
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return fmt.Errorf("animal %q: %w", input.OffspringTag, domain.ErrDuplicateTag)
			}
			return fmt.Errorf("create offspring: %w", err)
		}

		birth, err = s.births.Create(txCtx, &domain.Birth{
			BirthDate:   input.BirthDate,
			MotherID:    mother.ID,
			OffspringID: &offspring.ID,
			FarmID:      input.FarmID,
			WeightKg:    input.WeightKg,
			Breed:       input.Breed,
			Sex:         input.Sex,
			CreatedBy:   input.ActorID,
		})
		if err != nil {
			return fmt.Errorf("create birth: %w", err)
		}
		birth.MotherTag = mother.Tag
		birth.OffspringTag = &offspring.Tag

		if s.cfg.ResetMotherOnBirth && mother.ReproductiveState != domain.ReproductiveOpen {
			if err := s.animals.UpdateReproductiveState(txCtx, mother.ID, domain.ReproductiveOpen); err != nil {
				return fmt.Errorf("reset mother: %w", err)
			}
			s.log.DebugContext(txCtx, "mother reset after birth",
				slog.Int64("mother_id", mother.ID),
				slog.String("previous", mother.ReproductiveState.String()),
			)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "birth recorded",
		slog.Int64("birth_id", birth.ID),
		slog.String("mother_tag", mother.Tag),
		slog.String("offspring_tag", input.OffspringTag),
	)

	return birth, nil
}

// ListBirths returns births matching the filter, newest first.
func (s *Service) ListBirths(ctx context.Context, filter domain.BirthFilter) ([]*domain.Birth, error) {
	filter.MotherTag = domain.NormalizeTag(filter.MotherTag)

	births, err := s.births.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list births: %w", err)
	}
	return births, nil
}

// ensureTagFree returns ErrDuplicateTag when an animal with the tag exists.
func (s *Service) ensureTagFree(ctx context.Context, tag string) error {
	_, err := s.animals.GetByTag(ctx, tag)
	switch {
	case err == nil:
		return fmt.Errorf("animal %q: %w", tag, domain.ErrDuplicateTag)
	case errors.Is(err, domain.ErrNotFound):
		return nil
	default:
		return fmt.Errorf("check tag: %w", err)
	}
}
