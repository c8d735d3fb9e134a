// Package sanitary implements the SanitaryEvent repository using PostgreSQL.
package sanitary

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/agrotiquiza-backend/internal/adapter/postgres"
	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
)

const table = "sanitary_events"

var columns = []string{"id", "date", "animal_id", "diagnosis", "treatment", "symptoms", "responsible"}

type sanitaryRow struct {
	ID          int64     `db:"id"`
	Date        time.Time `db:"date"`
	AnimalID    int64     `db:"animal_id"`
	Diagnosis   string    `db:"diagnosis"`
	Treatment   string    `db:"treatment"`
	Symptoms    *string   `db:"symptoms"`
	Responsible string    `db:"responsible"`
	AnimalTag   string    `db:"animal_tag"`
	FarmID      int64     `db:"farm_id"`
}

func (r sanitaryRow) toDomain() *domain.SanitaryEvent {
	return &domain.SanitaryEvent{
		ID:          r.ID,
		Date:        r.Date,
		AnimalID:    r.AnimalID,
		Diagnosis:   r.Diagnosis,
		Treatment:   r.Treatment,
		Symptoms:    r.Symptoms,
		Responsible: r.Responsible,
		AnimalTag:   r.AnimalTag,
		FarmID:      r.FarmID,
	}
}

// Repo provides sanitary event persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new sanitary event repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// selectJoined selects events with the animal tag and current farm.
func selectJoined() squirrel.SelectBuilder {
	return postgres.Builder.
		Select(postgres.Qualify("s", columns)...).
		Columns("a.tag AS animal_tag", "a.farm_id AS farm_id").
		From(table + " s").
		Join("animals a ON a.id = s.animal_id")
}

// GetByID returns a sanitary event by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.SanitaryEvent, error) {
	q := selectJoined().Where(squirrel.Eq{"s.id": id})

	var row sanitaryRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "sanitary event", id)
	}
	return row.toDomain(), nil
}

// List returns events newest first, filtered by tag and/or farm.
func (r *Repo) List(ctx context.Context, filter domain.SanitaryFilter) ([]*domain.SanitaryEvent, error) {
	q := selectJoined().OrderBy("s.date DESC", "s.id DESC")
	if filter.Tag != "" {
		q = q.Where("lower(a.tag) = lower(?)", filter.Tag)
	}
	if filter.FarmID != nil {
		q = q.Where(squirrel.Eq{"a.farm_id": *filter.FarmID})
	}

	var rows []sanitaryRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, fmt.Errorf("list sanitary events: %w", err)
	}

	out := make([]*domain.SanitaryEvent, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// Create inserts a sanitary event.
func (r *Repo) Create(ctx context.Context, e *domain.SanitaryEvent) (*domain.SanitaryEvent, error) {
	q := postgres.Builder.Insert(table).
		Columns("date", "animal_id", "diagnosis", "treatment", "symptoms", "responsible").
		Values(e.Date, e.AnimalID, e.Diagnosis, e.Treatment, e.Symptoms, e.Responsible).
		Suffix("RETURNING id")

	var id int64
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &id, q); err != nil {
		return nil, postgres.MapError(err, "sanitary event of animal", e.AnimalID)
	}
	return r.GetByID(ctx, id)
}

// Update applies the non-nil fields of params.
func (r *Repo) Update(ctx context.Context, id int64, params domain.SanitaryUpdateParams) (*domain.SanitaryEvent, error) {
	set := map[string]any{}
	if params.Date != nil {
		set["date"] = *params.Date
	}
	if params.Diagnosis != nil {
		set["diagnosis"] = *params.Diagnosis
	}
	if params.Treatment != nil {
		set["treatment"] = *params.Treatment
	}
	if params.Symptoms != nil {
		// ptr("") clears the column.
		if *params.Symptoms == "" {
			set["symptoms"] = nil
		} else {
			set["symptoms"] = *params.Symptoms
		}
	}
	if params.Responsible != nil {
		set["responsible"] = *params.Responsible
	}

	if len(set) > 0 {
		q := postgres.Builder.Update(table).SetMap(set).Where(squirrel.Eq{"id": id})
		n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
		if err != nil {
			return nil, postgres.MapError(err, "sanitary event", id)
		}
		if n == 0 {
			return nil, fmt.Errorf("sanitary event %d: %w", id, domain.ErrNotFound)
		}
	}

	return r.GetByID(ctx, id)
}

// Delete removes a sanitary event.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.Builder.Delete(table).Where(squirrel.Eq{"id": id})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return postgres.MapError(err, "sanitary event", id)
	}
	if n == 0 {
		return fmt.Errorf("sanitary event %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
