// Package livestock is the write path for animals and the events recorded
// against them: weighings, births, milk production, exits and transfers.
package livestock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/agrotiquiza-backend/internal/config"
	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
)

type animalRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Animal, error)
	GetByTag(ctx context.Context, tag string) (*domain.Animal, error)
	Search(ctx context.Context, filter domain.AnimalFilter) ([]*domain.Animal, int, error)
	ListOffspringTags(ctx context.Context, motherID int64) ([]string, error)
	Create(ctx context.Context, a *domain.Animal) (*domain.Animal, error)
	UpdateState(ctx context.Context, id int64, state domain.AnimalState) error
	MoveToFarm(ctx context.Context, id int64, farmID int64, state domain.AnimalState) error
	UpdateReproductiveState(ctx context.Context, id int64, s domain.ReproductiveState) error
	SetMother(ctx context.Context, id int64, motherID *int64) error
}

type farmRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Farm, error)
}

type weighingRepo interface {
	Create(ctx context.Context, w *domain.Weighing) (*domain.Weighing, error)
	Latest(ctx context.Context, animalID int64) (*domain.Weighing, error)
	ListByAnimal(ctx context.Context, animalID int64) ([]*domain.Weighing, error)
}

type birthRepo interface {
	Create(ctx context.Context, b *domain.Birth) (*domain.Birth, error)
	List(ctx context.Context, filter domain.BirthFilter) ([]*domain.Birth, error)
}

type productionRepo interface {
	GetByAnimalDate(ctx context.Context, animalID int64, date time.Time) (*domain.MilkProduction, error)
	Create(ctx context.Context, p *domain.MilkProduction) (*domain.MilkProduction, error)
	UpdateValues(ctx context.Context, id int64, morningKg *float64, eveningKg *float64) (*domain.MilkProduction, error)
}

type exitRepo interface {
	ExistsForAnimal(ctx context.Context, animalID int64) (bool, error)
	Create(ctx context.Context, e *domain.ExitEvent) (*domain.ExitEvent, error)
}

type transferRepo interface {
	Create(ctx context.Context, t *domain.Transfer) (*domain.Transfer, error)
	List(ctx context.Context, animalID *int64, limit int, offset int) ([]*domain.Transfer, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements animal lifecycle operations.
type Service struct {
	log         *slog.Logger
	animals     animalRepo
	farms       farmRepo
	weighings   weighingRepo
	births      birthRepo
	productions productionRepo
	exits       exitRepo
	transfers   transferRepo
	tx          txManager
	cfg         config.LivestockConfig
	now         func() time.Time
}

// NewService creates a new livestock service.
func NewService(
	logger *slog.Logger,
	animals animalRepo,
	farms farmRepo,
	weighings weighingRepo,
	births birthRepo,
	productions productionRepo,
	exits exitRepo,
	transfers transferRepo,
	tx txManager,
	cfg config.LivestockConfig,
) *Service {
	return &Service{
		log:         logger.With("service", "livestock"),
		animals:     animals,
		farms:       farms,
		weighings:   weighings,
		births:      births,
		productions: productions,
		exits:       exits,
		transfers:   transfers,
		tx:          tx,
		cfg:         cfg,
		now:         time.Now,
	}
}

// animalByTag resolves a tag, reporting a missing animal by its tag.
func (s *Service) animalByTag(ctx context.Context, tag string) (*domain.Animal, error) {
	a, err := s.animals.GetByTag(ctx, tag)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.TagNotFound(tag)
		}
		return nil, fmt.Errorf("get animal by tag: %w", err)
	}
	return a, nil
}

// farmByID resolves a farm, keeping ErrNotFound matchable.
func (s *Service) farmByID(ctx context.Context, id int64) (*domain.Farm, error) {
	f, err := s.farms.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get farm: %w", err)
	}
	return f, nil
}

func terminalStateError(a *domain.Animal) error {
	return fmt.Errorf("animal %q is %s: %w", a.Tag, a.State, domain.ErrInvalidState)
}
