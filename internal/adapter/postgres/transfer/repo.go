// Package transfer implements the Transfer repository using PostgreSQL.
package transfer

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/agrotiquiza-backend/internal/adapter/postgres"
	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
)

const table = "transfers"

var columns = []string{"id", "transferred_at", "origin_farm_id", "destination_farm_id", "animal_id", "user_id"}

type transferRow struct {
	ID                int64     `db:"id"`
	TransferredAt     time.Time `db:"transferred_at"`
	OriginFarmID      int64     `db:"origin_farm_id"`
	DestinationFarmID int64     `db:"destination_farm_id"`
	AnimalID          int64     `db:"animal_id"`
	UserID            *int64    `db:"user_id"`
	AnimalTag         string    `db:"animal_tag"`
}

func (r transferRow) toDomain() *domain.Transfer {
	return &domain.Transfer{
		ID:                r.ID,
		TransferredAt:     r.TransferredAt,
		OriginFarmID:      r.OriginFarmID,
		DestinationFarmID: r.DestinationFarmID,
		AnimalID:          r.AnimalID,
		UserID:            r.UserID,
		AnimalTag:         r.AnimalTag,
	}
}

// Repo provides transfer persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new transfer repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a transfer. TransferredAt is set by the database.
func (r *Repo) Create(ctx context.Context, t *domain.Transfer) (*domain.Transfer, error) {
	q := postgres.Builder.Insert(table).
		Columns("origin_farm_id", "destination_farm_id", "animal_id", "user_id").
		Values(t.OriginFarmID, t.DestinationFarmID, t.AnimalID, t.UserID).
		Suffix("RETURNING " + postgres.ColumnList(columns) + ", '' AS animal_tag")

	var row transferRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "transfer of animal", t.AnimalID)
	}

	out := row.toDomain()
	out.AnimalTag = t.AnimalTag
	return out, nil
}

// List returns transfers newest first, optionally for one animal.
func (r *Repo) List(ctx context.Context, animalID *int64, limit, offset int) ([]*domain.Transfer, error) {
	q := postgres.Builder.
		Select(postgres.Qualify("t", columns)...).
		Column("a.tag AS animal_tag").
		From(table + " t").
		Join("animals a ON a.id = t.animal_id").
		OrderBy("t.transferred_at DESC", "t.id DESC").
		Limit(uint64(domain.ClampLimit(limit))).
		Offset(uint64(max(offset, 0)))

	if animalID != nil {
		q = q.Where(squirrel.Eq{"t.animal_id": *animalID})
	}

	var rows []transferRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}

	out := make([]*domain.Transfer, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}
