package livestock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
)

// RecordExit records a sale, death or cull and moves the animal to the
// matching terminal state. Both writes share one transaction.
func (s *Service) RecordExit(ctx context.Context, input ExitInput) (*domain.ExitEvent, error) {
	input.Tag = domain.NormalizeTag(input.Tag)
	input.Notes = domain.NormalizeText(input.Notes)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Resolve animal
	a, err := s.animalByTag(ctx, input.Tag)
	if err != nil {
		return nil, err
	}
	if a.State.IsTerminal() {
		return nil, fmt.Errorf("animal %q is %s: %w", a.Tag, a.State, domain.ErrAlreadyExited)
	}

	// Step 3: Event and state change
	newState := input.Type.ResultingState()
	var event *domain.ExitEvent
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		exists, err := s.exits.ExistsForAnimal(txCtx, a.ID)
		if err != nil {
			return fmt.Errorf("check exit: %w", err)
		}
		if exists {
			return fmt.Errorf("animal %q: %w", a.Tag, domain.ErrAlreadyExited)
		}

		event, err = s.exits.Create(txCtx, &domain.ExitEvent{
			Date:          input.Date,
			Type:          input.Type,
			AnimalID:      a.ID,
			ResponsibleID: input.ActorID,
			Notes:         input.Notes,
		})
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return fmt.Errorf("animal %q: %w", a.Tag, domain.ErrAlreadyExited)
			}
			return fmt.Errorf("create exit: %w", err)
		}

		if err := s.animals.UpdateState(txCtx, a.ID, newState); err != nil {
			return fmt.Errorf("update state: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "exit recorded",
		slog.Int64("exit_id", event.ID),
		slog.String("tag", a.Tag),
		slog.String("type", input.Type.String()),
		slog.String("state", newState.String()),
	)

	return event, nil
}
