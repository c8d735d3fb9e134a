package livestock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
)

// RecordProduction stores a milking for one (animal, date). A day that
// already has a record is updated in place: the supplied side overwrites,
// the other side keeps its stored value.
func (s *Service) RecordProduction(ctx context.Context, input ProductionInput) (*domain.MilkProduction, error) {
	input.Tag = domain.NormalizeTag(input.Tag)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Only females are milked
	a, err := s.animalByTag(ctx, input.Tag)
	if err != nil {
		return nil, err
	}
	if !a.IsFemale() {
		return nil, fmt.Errorf("animal %q: %w", a.Tag, domain.ErrInvalidSex)
	}

	// Step 3: Read, then update or insert, in one transaction
	var (
		result  *domain.MilkProduction
		created bool
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.productions.GetByAnimalDate(txCtx, a.ID, input.Date)
		switch {
		case err == nil:
			morning, evening := existing.MorningKg, existing.EveningKg
			if input.MorningKg != nil {
				morning = input.MorningKg
			}
			if input.EveningKg != nil {
				evening = input.EveningKg
			}
			result, err = s.productions.UpdateValues(txCtx, existing.ID, morning, evening)
			if err != nil {
				return fmt.Errorf("update production: %w", err)
			}
			return nil

		case errors.Is(err, domain.ErrNotFound):
			result, err = s.productions.Create(txCtx, &domain.MilkProduction{
				Date:      input.Date,
				MorningKg: input.MorningKg,
				EveningKg: input.EveningKg,
				AnimalID:  a.ID,
				FarmID:    a.FarmID,
			})
			if err != nil {
				return fmt.Errorf("create production: %w", err)
			}
			created = true
			return nil

		default:
			return fmt.Errorf("get production: %w", err)
		}
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "production recorded",
		slog.Int64("production_id", result.ID),
		slog.String("tag", a.Tag),
		slog.Bool("created", created),
		slog.Float64("daily_total_kg", result.DailyTotal()),
	)

	return result, nil
}
