// Package seeder fills an empty database with a demo herd: a few farms and
// a deterministic set of animals spread across them.
package seeder

import (
	"context"

	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
)

// FarmRepo is the farm storage used by the seeder. Implemented by farm.Repo.
type FarmRepo interface {
	List(ctx context.Context) ([]*domain.Farm, error)
	Create(ctx context.Context, f *domain.Farm) (*domain.Farm, error)
}

// AnimalRepo is the animal storage used by the seeder. Implemented by
// animal.Repo.
type AnimalRepo interface {
	GetByTag(ctx context.Context, tag string) (*domain.Animal, error)
	Create(ctx context.Context, a *domain.Animal) (*domain.Animal, error)
}
