// Package weighing implements the Weighing repository using PostgreSQL.
package weighing

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/agrotiquiza-backend/internal/adapter/postgres"
	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
)

const table = "weighings"

var columns = []string{"id", "date", "weight_kg", "animal_id", "farm_id"}

type weighingRow struct {
	ID       int64     `db:"id"`
	Date     time.Time `db:"date"`
	WeightKg float64   `db:"weight_kg"`
	AnimalID int64     `db:"animal_id"`
	FarmID   int64     `db:"farm_id"`
}

func (r weighingRow) toDomain() *domain.Weighing {
	return &domain.Weighing{
		ID:       r.ID,
		Date:     r.Date,
		WeightKg: r.WeightKg,
		AnimalID: r.AnimalID,
		FarmID:   r.FarmID,
	}
}

// Repo provides weighing persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new weighing repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a weighing.
func (r *Repo) Create(ctx context.Context, w *domain.Weighing) (*domain.Weighing, error) {
	q := postgres.Builder.Insert(table).
		Columns("date", "weight_kg", "animal_id", "farm_id").
		Values(w.Date, w.WeightKg, w.AnimalID, w.FarmID).
		Suffix("RETURNING " + postgres.ColumnList(columns))

	var row weighingRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "weighing", w.AnimalID)
	}
	return row.toDomain(), nil
}

// Latest returns the most recent weighing of an animal, or domain.ErrNotFound.
func (r *Repo) Latest(ctx context.Context, animalID int64) (*domain.Weighing, error) {
	q := postgres.Builder.Select(columns...).From(table).
		Where(squirrel.Eq{"animal_id": animalID}).
		OrderBy("date DESC", "id DESC").
		Limit(1)

	var row weighingRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "weighing of animal", animalID)
	}
	return row.toDomain(), nil
}

// ListByAnimal returns an animal's weighings, newest first.
func (r *Repo) ListByAnimal(ctx context.Context, animalID int64) ([]*domain.Weighing, error) {
	q := postgres.Builder.Select(columns...).From(table).
		Where(squirrel.Eq{"animal_id": animalID}).
		OrderBy("date DESC", "id DESC")

	var rows []weighingRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, fmt.Errorf("list weighings of %d: %w", animalID, err)
	}

	out := make([]*domain.Weighing, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}
