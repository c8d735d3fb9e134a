// Package birth implements the Birth repository using PostgreSQL.
package birth

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/agrotiquiza-backend/internal/adapter/postgres"
	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
)

const table = "births"

var columns = []string{
	"id", "birth_date", "mother_id", "offspring_id", "farm_id",
	"weight_kg", "breed", "sex", "created_by", "created_at",
}

type birthRow struct {
	ID           int64     `db:"id"`
	BirthDate    time.Time `db:"birth_date"`
	MotherID     int64     `db:"mother_id"`
	OffspringID  *int64    `db:"offspring_id"`
	FarmID       int64     `db:"farm_id"`
	WeightKg     *float64  `db:"weight_kg"`
	Breed        string    `db:"breed"`
	Sex          string    `db:"sex"`
	CreatedBy    *int64    `db:"created_by"`
	CreatedAt    time.Time `db:"created_at"`
	MotherTag    string    `db:"mother_tag"`
	OffspringTag *string   `db:"offspring_tag"`
}

func (r birthRow) toDomain() *domain.Birth {
	return &domain.Birth{
		ID:           r.ID,
		BirthDate:    r.BirthDate,
		MotherID:     r.MotherID,
		OffspringID:  r.OffspringID,
		FarmID:       r.FarmID,
		WeightKg:     r.WeightKg,
		Breed:        r.Breed,
		Sex:          domain.Sex(r.Sex),
		CreatedBy:    r.CreatedBy,
		CreatedAt:    r.CreatedAt,
		MotherTag:    r.MotherTag,
		OffspringTag: r.OffspringTag,
	}
}

// Repo provides birth persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new birth repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a birth record. Tag columns of the result stay empty.
func (r *Repo) Create(ctx context.Context, b *domain.Birth) (*domain.Birth, error) {
	q := postgres.Builder.Insert(table).
		Columns("birth_date", "mother_id", "offspring_id", "farm_id", "weight_kg", "breed", "sex", "created_by").
		Values(b.BirthDate, b.MotherID, b.OffspringID, b.FarmID, b.WeightKg, b.Breed, string(b.Sex), b.CreatedBy).
		Suffix("RETURNING " + postgres.ColumnList(columns) + ", '' AS mother_tag, NULL::text AS offspring_tag")

	var row birthRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "birth of mother", b.MotherID)
	}
	return row.toDomain(), nil
}

// List returns births joined with mother and offspring tags, newest first.
func (r *Repo) List(ctx context.Context, filter domain.BirthFilter) ([]*domain.Birth, error) {
	q := postgres.Builder.
		Select(postgres.Qualify("b", columns)...).
		Columns("m.tag AS mother_tag", "o.tag AS offspring_tag").
		From(table + " b").
		Join("animals m ON m.id = b.mother_id").
		LeftJoin("animals o ON o.id = b.offspring_id").
		OrderBy("b.birth_date DESC", "b.id DESC")

	if filter.MotherTag != "" {
		q = q.Where("lower(m.tag) = lower(?)", filter.MotherTag)
	}
	if filter.FarmID != nil {
		q = q.Where(squirrel.Eq{"b.farm_id": *filter.FarmID})
	}

	var rows []birthRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, fmt.Errorf("list births: %w", err)
	}

	out := make([]*domain.Birth, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}
