// Package report builds the read-only dashboard and spreadsheet exports.
package report

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
)

// statsRepo is the read-only aggregate store behind the dashboard.
type statsRepo interface {
	CountFarms(ctx context.Context) (int64, error)
	CountBirths(ctx context.Context) (int64, error)
	CountTransfers(ctx context.Context) (int64, error)
	CountSanitaryEvents(ctx context.Context) (int64, error)
	CountInseminations(ctx context.Context) (int64, error)
	CountPendingInseminations(ctx context.Context) (int64, error)
	CountPregnant(ctx context.Context) (int64, error)
	CountActiveFemales(ctx context.Context) (int64, error)
	TotalProductionKg(ctx context.Context) (float64, error)
	ExitsByType(ctx context.Context) (map[domain.ExitType]int64, error)
	AnimalsPerFarm(ctx context.Context) ([]domain.FarmCount, error)
	SanitaryEventsPerFarm(ctx context.Context) ([]domain.FarmCount, error)
	AvgProductionPerFarm(ctx context.Context) ([]domain.FarmAverage, error)
}

type birthRepo interface {
	List(ctx context.Context, filter domain.BirthFilter) ([]*domain.Birth, error)
}

type sanitaryRepo interface {
	List(ctx context.Context, filter domain.SanitaryFilter) ([]*domain.SanitaryEvent, error)
}

type farmRepo interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Farm, error)
}

// Service implements reporting operations.
type Service struct {
	log      *slog.Logger
	stats    statsRepo
	births   birthRepo
	sanitary sanitaryRepo
	farms    farmRepo
}

// NewService creates a new report service instance.
func NewService(
	logger *slog.Logger,
	stats statsRepo,
	births birthRepo,
	sanitary sanitaryRepo,
	farms farmRepo,
) *Service {
	return &Service{
		log:      logger.With("service", "report"),
		stats:    stats,
		births:   births,
		sanitary: sanitary,
		farms:    farms,
	}
}
