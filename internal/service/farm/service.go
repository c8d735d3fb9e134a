// Package farm manages the farm registry.
package farm

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
)

type farmRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Farm, error)
	List(ctx context.Context) ([]*domain.Farm, error)
	Create(ctx context.Context, f *domain.Farm) (*domain.Farm, error)
	Update(ctx context.Context, id int64, params domain.FarmUpdateParams) (*domain.Farm, error)
	Delete(ctx context.Context, id int64) error
}

// Service provides farm CRUD.
type Service struct {
	farms farmRepo
	log   *slog.Logger
}

// NewService creates a new farm service.
func NewService(log *slog.Logger, farms farmRepo) *Service {
	return &Service{
		farms: farms,
		log:   log.With("service", "farm"),
	}
}
