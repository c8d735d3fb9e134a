// Package health records sanitary events and the reproduction cycle:
// inseminations and gestation confirmations.
package health

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/agrotiquiza-backend/internal/config"
	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
)

type animalRepo interface {
	GetByTag(ctx context.Context, tag string) (*domain.Animal, error)
	UpdateReproductiveState(ctx context.Context, id int64, s domain.ReproductiveState) error
}

type sanitaryRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.SanitaryEvent, error)
	List(ctx context.Context, filter domain.SanitaryFilter) ([]*domain.SanitaryEvent, error)
	Create(ctx context.Context, e *domain.SanitaryEvent) (*domain.SanitaryEvent, error)
	Update(ctx context.Context, id int64, params domain.SanitaryUpdateParams) (*domain.SanitaryEvent, error)
	Delete(ctx context.Context, id int64) error
}

type inseminationRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Insemination, error)
	Create(ctx context.Context, ins *domain.Insemination) (*domain.Insemination, error)
	List(ctx context.Context, limit int, offset int) ([]*domain.Insemination, error)
	ListPending(ctx context.Context, after *domain.PendingCursor, limit int) ([]*domain.Insemination, error)
	CreateConfirmation(ctx context.Context, c *domain.GestationConfirmation) (*domain.GestationConfirmation, error)
	ListConfirmations(ctx context.Context, limit int, offset int) ([]*domain.GestationConfirmation, error)
	Update(ctx context.Context, id int64, params domain.InseminationUpdateParams) (*domain.Insemination, error)
	Delete(ctx context.Context, id int64) error
	HasNewer(ctx context.Context, ins *domain.Insemination) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const defaultPendingPageSize = 100

// Service provides sanitary and reproduction operations.
type Service struct {
	log           *slog.Logger
	animals       animalRepo
	sanitary      sanitaryRepo
	inseminations inseminationRepo
	tx            txManager
	pageSize      int
}

// NewService creates a new health service.
func NewService(
	logger *slog.Logger,
	animals animalRepo,
	sanitary sanitaryRepo,
	inseminations inseminationRepo,
	tx txManager,
	cfg config.LivestockConfig,
) *Service {
	pageSize := cfg.PendingPageSize
	if pageSize <= 0 {
		pageSize = defaultPendingPageSize
	}
	return &Service{
		log:           logger.With("service", "health"),
		animals:       animals,
		sanitary:      sanitary,
		inseminations: inseminations,
		tx:            tx,
		pageSize:      pageSize,
	}
}

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
