package health

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"strings"

	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
)

// RecordInsemination stores an insemination. A pregnant animal cannot be
// inseminated again until the pregnancy is resolved.
func (s *Service) RecordInsemination(ctx context.Context, input InseminationInput) (*domain.Insemination, error) {
	input.Tag = domain.NormalizeTag(input.Tag)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Resolve animal and check eligibility
	a, err := s.animalByTag(ctx, input.Tag)
	if err != nil {
		return nil, err
	}
	if !a.IsFemale() {
		return nil, fmt.Errorf("animal %q: %w", a.Tag, domain.ErrInvalidSex)
	}
	if a.State.IsTerminal() {
		return nil, fmt.Errorf("animal %q is %s: %w", a.Tag, a.State, domain.ErrInvalidState)
	}
	if a.ReproductiveState == domain.ReproductivePregnant {
		return nil, fmt.Errorf("animal %q: %w", a.Tag, domain.ErrAlreadyPregnant)
	}

	// Step 3: Insert
	ins, err := s.inseminations.Create(ctx, &domain.Insemination{
		Date:          input.Date,
		AnimalID:      a.ID,
		SemenType:     strings.TrimSpace(input.SemenType),
		Inseminator:   domain.NormalizeText(input.Inseminator),
		ResponsibleID: input.ActorID,
		AnimalTag:     a.Tag,
	})
	if err != nil {
		return nil, fmt.Errorf("create insemination: %w", err)
	}

	s.log.InfoContext(ctx, "insemination recorded",
		slog.Int64("insemination_id", ins.ID),
		slog.String("tag", a.Tag),
	)

	return ins, nil
}

// ListInseminations returns inseminations newest first.
func (s *Service) ListInseminations(ctx context.Context, limit, offset int) ([]*domain.Insemination, error) {
	list, err := s.inseminations.List(ctx, domain.ClampLimit(limit), max(offset, 0))
	if err != nil {
		return nil, fmt.Errorf("list inseminations: %w", err)
	}
	return list, nil
}

// UpdateInsemination applies a partial update. A confirmed insemination is
// frozen: its confirmation was made against these values.
func (s *Service) UpdateInsemination(ctx context.Context, input UpdateInseminationInput) (*domain.Insemination, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.InseminationUpdateParams{
		Date:      input.Date,
		SemenType: trimOrNil(input.SemenType),
	}
	if input.Inseminator != nil {
		v := domain.NormalizeText(*input.Inseminator)
		params.Inseminator = &v
	}

	var updated *domain.Insemination
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Step 2: Only pending inseminations can change
		ins, err := s.inseminations.GetByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get insemination: %w", err)
		}
		if ins.Confirmed {
			return fmt.Errorf("insemination %d: %w", ins.ID, domain.ErrAlreadyConfirmed)
		}

		// Step 3: Update
		updated, err = s.inseminations.Update(txCtx, ins.ID, params)
		if err != nil {
			return fmt.Errorf("update insemination: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "insemination updated", slog.Int64("insemination_id", input.ID))

	return updated, nil
}

// DeleteInsemination removes an insemination together with its
// confirmation. When the confirmation being removed belongs to the animal's
// latest insemination, the animal goes back to open.
func (s *Service) DeleteInsemination(ctx context.Context, id int64) error {
	var reset bool
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Step 1: Load
		ins, err := s.inseminations.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get insemination: %w", err)
		}

		// Step 2: Undo the reproductive state this confirmation set
		if ins.Confirmed {
			newer, err := s.inseminations.HasNewer(txCtx, ins)
			if err != nil {
				return err
			}
			if !newer {
				a, err := s.animalByTag(txCtx, ins.AnimalTag)
				if err != nil {
					return err
				}
				if a.ReproductiveState != domain.ReproductiveOpen {
					if err := s.animals.UpdateReproductiveState(txCtx, a.ID, domain.ReproductiveOpen); err != nil {
						return fmt.Errorf("update reproductive state: %w", err)
					}
					reset = true
				}
			}
		}

		// Step 3: Delete; the confirmation cascades
		if err := s.inseminations.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete insemination: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "insemination deleted",
		slog.Int64("insemination_id", id),
		slog.Bool("reproductive_state_reset", reset),
	)
	return nil
}

// PendingInseminations yields unconfirmed inseminations, most recent first.
// Pages are fetched lazily with a keyset cursor, so the sequence can be
// stopped early and ranged over again for a fresh read. A fetch error is
// yielded once and ends the sequence.
func (s *Service) PendingInseminations(ctx context.Context) iter.Seq2[*domain.Insemination, error] {
	return func(yield func(*domain.Insemination, error) bool) {
		var cursor *domain.PendingCursor
		for {
			page, err := s.inseminations.ListPending(ctx, cursor, s.pageSize)
			if err != nil {
				yield(nil, fmt.Errorf("list pending inseminations: %w", err))
				return
			}

			for _, ins := range page {
				if !yield(ins, nil) {
					return
				}
			}

			if len(page) < s.pageSize {
				return
			}
			last := page[len(page)-1]
			cursor = &domain.PendingCursor{Date: last.Date, ID: last.ID}
		}
	}
}

// ConfirmGestation records the result of a gestation check and sets the
// animal's reproductive state accordingly, in one transaction. Each
// insemination accepts a single confirmation.
func (s *Service) ConfirmGestation(ctx context.Context, input ConfirmInput) (*domain.GestationConfirmation, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var confirmation *domain.GestationConfirmation
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Step 2: Insemination must exist and be unconfirmed
		ins, err := s.inseminations.GetByID(txCtx, input.InseminationID)
		if err != nil {
			return fmt.Errorf("get insemination: %w", err)
		}
		if ins.Confirmed {
			return fmt.Errorf("insemination %d: %w", ins.ID, domain.ErrAlreadyConfirmed)
		}

		// Step 3: Insert confirmation; the unique key catches a racing confirm
		confirmation, err = s.inseminations.CreateConfirmation(txCtx, &domain.GestationConfirmation{
			ConfirmedOn:    input.ConfirmedOn,
			Method:         strings.TrimSpace(input.Method),
			Result:         input.Result,
			Responsible:    domain.NormalizeText(input.Responsible),
			Notes:          trimOrNil(input.Notes),
			InseminationID: ins.ID,
			AnimalTag:      ins.AnimalTag,
		})
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return fmt.Errorf("insemination %d: %w", ins.ID, domain.ErrAlreadyConfirmed)
			}
			return fmt.Errorf("create confirmation: %w", err)
		}

		// Step 4: Reproductive state follows the result
		if err := s.animals.UpdateReproductiveState(txCtx, ins.AnimalID, input.Result.ReproductiveState()); err != nil {
			return fmt.Errorf("update reproductive state: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "gestation confirmed",
		slog.Int64("insemination_id", input.InseminationID),
		slog.String("result", input.Result.String()),
	)

	return confirmation, nil
}

// ListConfirmations returns gestation confirmations newest first.
func (s *Service) ListConfirmations(ctx context.Context, limit, offset int) ([]*domain.GestationConfirmation, error) {
	list, err := s.inseminations.ListConfirmations(ctx, domain.ClampLimit(limit), max(offset, 0))
	if err != nil {
		return nil, fmt.Errorf("list confirmations: %w", err)
	}
	return list, nil
}
