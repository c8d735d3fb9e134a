// Package production implements the MilkProduction repository using PostgreSQL.
package production

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/agrotiquiza-backend/internal/adapter/postgres"
	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
)

const table = "milk_productions"

var columns = []string{"id", "date", "morning_kg", "evening_kg", "animal_id", "farm_id"}

type productionRow struct {
	ID        int64     `db:"id"`
	Date      time.Time `db:"date"`
	MorningKg *float64  `db:"morning_kg"`
	EveningKg *float64  `db:"evening_kg"`
	AnimalID  int64     `db:"animal_id"`
	FarmID    int64     `db:"farm_id"`
}

func (r productionRow) toDomain() *domain.MilkProduction {
	return &domain.MilkProduction{
		ID:        r.ID,
		Date:      r.Date,
		MorningKg: r.MorningKg,
		EveningKg: r.EveningKg,
		AnimalID:  r.AnimalID,
		FarmID:    r.FarmID,
	}
}

// Repo provides milk production persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new production repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByAnimalDate returns the record for (animalID, date) or domain.ErrNotFound.
func (r *Repo) GetByAnimalDate(ctx context.Context, animalID int64, date time.Time) (*domain.MilkProduction, error) {
	q := postgres.Builder.Select(columns...).From(table).
		Where(squirrel.Eq{"animal_id": animalID, "date": date})

	var row productionRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "production of animal", animalID)
	}
	return row.toDomain(), nil
}

// Create inserts a production record.
func (r *Repo) Create(ctx context.Context, p *domain.MilkProduction) (*domain.MilkProduction, error) {
	q := postgres.Builder.Insert(table).
		Columns("date", "morning_kg", "evening_kg", "animal_id", "farm_id").
		Values(p.Date, p.MorningKg, p.EveningKg, p.AnimalID, p.FarmID).
		Suffix("RETURNING " + postgres.ColumnList(columns))

	var row productionRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "production of animal", p.AnimalID)
	}
	return row.toDomain(), nil
}

// UpdateValues overwrites both milking values of an existing record.
func (r *Repo) UpdateValues(ctx context.Context, id int64, morningKg, eveningKg *float64) (*domain.MilkProduction, error) {
	q := postgres.Builder.Update(table).
		Set("morning_kg", morningKg).
		Set("evening_kg", eveningKg).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + postgres.ColumnList(columns))

	var row productionRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "production", id)
	}
	return row.toDomain(), nil
}
