// Package exitevent implements the ExitEvent repository using PostgreSQL.
// At most one exit event exists per animal (unique animal_id).
package exitevent

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/agrotiquiza-backend/internal/adapter/postgres"
	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
)

const table = "exit_events"

var columns = []string{"id", "date", "type", "animal_id", "responsible_id", "notes"}

type exitRow struct {
	ID            int64     `db:"id"`
	Date          time.Time `db:"date"`
	Type          string    `db:"type"`
	AnimalID      int64     `db:"animal_id"`
	ResponsibleID *int64    `db:"responsible_id"`
	Notes         string    `db:"notes"`
}

func (r exitRow) toDomain() *domain.ExitEvent {
	return &domain.ExitEvent{
		ID:            r.ID,
		Date:          r.Date,
		Type:          domain.ExitType(r.Type),
		AnimalID:      r.AnimalID,
		ResponsibleID: r.ResponsibleID,
		Notes:         r.Notes,
	}
}

// Repo provides exit event persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new exit event repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ExistsForAnimal reports whether the animal already has an exit event.
func (r *Repo) ExistsForAnimal(ctx context.Context, animalID int64) (bool, error) {
	q := postgres.Builder.Select("1").From(table).Where(squirrel.Eq{"animal_id": animalID})

	exists, err := postgres.Exists(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return false, fmt.Errorf("check exit of animal %d: %w", animalID, err)
	}
	return exists, nil
}

// Create inserts an exit event. A second event for the same animal yields
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, e *domain.ExitEvent) (*domain.ExitEvent, error) {
	q := postgres.Builder.Insert(table).
		Columns("date", "type", "animal_id", "responsible_id", "notes").
		Values(e.Date, string(e.Type), e.AnimalID, e.ResponsibleID, e.Notes).
		Suffix("RETURNING " + postgres.ColumnList(columns))

	var row exitRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "exit of animal", e.AnimalID)
	}
	return row.toDomain(), nil
}
