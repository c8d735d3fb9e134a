package livestock

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
)

// TransferAnimals moves a batch of animals to one farm. Tags are processed
// in order inside a single transaction; the first failing tag aborts the
// whole batch and no transfer is kept.
func (s *Service) TransferAnimals(ctx context.Context, input TransferInput) ([]*domain.Transfer, error) {
	tags := make([]string, len(input.Tags))
	for i, tag := range input.Tags {
		tags[i] = domain.NormalizeTag(tag)
	}
	input.Tags = tags

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Destination must exist
	dest, err := s.farmByID(ctx, input.DestinationFarmID)
	if err != nil {
		return nil, err
	}

	// Step 3: Move every animal or none. A tag repeated in the batch is
	// already at the destination by the time it comes up again.
	out := make([]*domain.Transfer, 0, len(input.Tags))
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, tag := range input.Tags {
			t, err := s.transferOne(txCtx, tag, dest.ID, input.ActorID)
			if err != nil {
				return err
			}
			out = append(out, t)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "animals transferred",
		slog.Int64("destination_farm_id", dest.ID),
		slog.Int("count", len(out)),
	)

	return out, nil
}

func (s *Service) transferOne(ctx context.Context, tag string, destID int64, actorID *int64) (*domain.Transfer, error) {
	a, err := s.animalByTag(ctx, tag)
	if err != nil {
		return nil, err
	}
	if a.State.IsTerminal() {
		return nil, terminalStateError(a)
	}
	if a.FarmID == destID {
		return nil, fmt.Errorf("animal %q: %w", a.Tag, domain.ErrAlreadyThere)
	}

	t, err := s.transfers.Create(ctx, &domain.Transfer{
		OriginFarmID:      a.FarmID,
		DestinationFarmID: destID,
		AnimalID:          a.ID,
		UserID:            actorID,
		AnimalTag:         a.Tag,
	})
	if err != nil {
		return nil, fmt.Errorf("create transfer of %q: %w", a.Tag, err)
	}

	if err := s.animals.MoveToFarm(ctx, a.ID, destID, domain.AnimalStateTransferred); err != nil {
		return nil, fmt.Errorf("move %q: %w", a.Tag, err)
	}
	return t, nil
}

// ListTransfers returns the transfer history, optionally for one animal.
func (s *Service) ListTransfers(ctx context.Context, input ListTransfersInput) ([]*domain.Transfer, error) {
	var animalID *int64
	if tag := domain.NormalizeTag(input.Tag); tag != "" {
		a, err := s.animalByTag(ctx, tag)
		if err != nil {
			return nil, err
		}
		animalID = &a.ID
	}

	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	list, err := s.transfers.List(ctx, animalID, domain.ClampLimit(input.Limit), offset)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	return list, nil
}
