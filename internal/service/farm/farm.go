package farm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
)

// Create registers a farm. Name and code are unique.
func (s *Service) Create(ctx context.Context, input CreateFarmInput) (*domain.Farm, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.farms.Create(ctx, &domain.Farm{
		Name:     domain.NormalizeText(input.Name),
		Code:     normalizeCode(input.Code),
		Location: domain.NormalizeText(input.Location),
		Owner:    domain.NormalizeText(input.Owner),
		Phone:    domain.NormalizeText(input.Phone),
	})
	if err != nil {
		return nil, fmt.Errorf("create farm: %w", err)
	}

	s.log.InfoContext(ctx, "farm created",
		slog.Int64("farm_id", created.ID),
		slog.String("code", created.Code),
	)

	return created, nil
}

// Get returns a farm by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Farm, error) {
	f, err := s.farms.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get farm: %w", err)
	}
	return f, nil
}

// List returns all farms ordered by name.
func (s *Service) List(ctx context.Context) ([]*domain.Farm, error) {
	farms, err := s.farms.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list farms: %w", err)
	}
	return farms, nil
}

// Update changes the given fields of a farm.
func (s *Service) Update(ctx context.Context, input UpdateFarmInput) (*domain.Farm, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.FarmUpdateParams{
		Name:     trimPtr(input.Name),
		Location: trimPtr(input.Location),
		Owner:    trimPtr(input.Owner),
		Phone:    trimPtr(input.Phone),
	}
	if input.Code != nil {
		code := normalizeCode(*input.Code)
		params.Code = &code
	}

	updated, err := s.farms.Update(ctx, input.ID, params)
	if err != nil {
		return nil, fmt.Errorf("update farm: %w", err)
	}

	s.log.InfoContext(ctx, "farm updated", slog.Int64("farm_id", input.ID))

	return updated, nil
}

// Delete removes a farm. Farms that still hold animals or records are
// refused with domain.ErrReferenced.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.farms.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete farm: %w", err)
	}

	s.log.InfoContext(ctx, "farm deleted", slog.Int64("farm_id", id))
	return nil
}
