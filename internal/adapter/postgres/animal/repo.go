// Package animal implements the Animal repository using PostgreSQL.
// Tag lookups are case-insensitive and backed by the unique index on lower(tag).
package animal

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/agrotiquiza-backend/internal/adapter/postgres"
	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
)

const table = "animals"

var columns = []string{
	"id", "tag", "name", "birth_date", "breed", "sex", "state",
	"reproductive_state", "farm_id", "mother_id", "created_at", "updated_at",
}

type animalRow struct {
	ID                int64      `db:"id"`
	Tag               string     `db:"tag"`
	Name              string     `db:"name"`
	BirthDate         *time.Time `db:"birth_date"`
	Breed             string     `db:"breed"`
	Sex               string     `db:"sex"`
	State             string     `db:"state"`
	ReproductiveState string     `db:"reproductive_state"`
	FarmID            int64      `db:"farm_id"`
	MotherID          *int64     `db:"mother_id"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
}

func (r animalRow) toDomain() *domain.Animal {
	return &domain.Animal{
		ID:                r.ID,
		Tag:               r.Tag,
		Name:              r.Name,
		BirthDate:         r.BirthDate,
		Breed:             r.Breed,
		Sex:               domain.Sex(r.Sex),
		State:             domain.AnimalState(r.State),
		ReproductiveState: domain.ReproductiveState(r.ReproductiveState),
		FarmID:            r.FarmID,
		MotherID:          r.MotherID,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

// Repo provides animal persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new animal repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an animal by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Animal, error) {
	q := postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"id": id})
	return r.getOne(ctx, q, id)
}

// GetByTag returns the animal whose tag matches case-insensitively.
func (r *Repo) GetByTag(ctx context.Context, tag string) (*domain.Animal, error) {
	q := postgres.Builder.Select(columns...).From(table).Where("lower(tag) = lower(?)", tag)
	return r.getOne(ctx, q, tag)
}

// Search returns a page of animals matching filter plus the total match count.
// Query matches tag or name with ILIKE.
func (r *Repo) Search(ctx context.Context, filter domain.AnimalFilter) ([]*domain.Animal, int, error) {
	where := squirrel.And{}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"tag": pattern},
			squirrel.ILike{"name": pattern},
		})
	}
	if filter.FarmID != nil {
		where = append(where, squirrel.Eq{"farm_id": *filter.FarmID})
	}
	if filter.State != nil {
		where = append(where, squirrel.Eq{"state": string(*filter.State)})
	}
	if filter.Sex != nil {
		where = append(where, squirrel.Eq{"sex": string(*filter.Sex)})
	}

	db := postgres.QuerierFromCtx(ctx, r.db)

	var total int
	countQ := postgres.Builder.Select("count(*)").From(table).Where(where)
	if err := postgres.Get(ctx, db, &total, countQ); err != nil {
		return nil, 0, fmt.Errorf("count animals: %w", err)
	}

	q := postgres.Builder.Select(columns...).From(table).
		Where(where).
		OrderBy("tag ASC").
		Limit(uint64(domain.ClampLimit(filter.Limit))).
		Offset(uint64(max(filter.Offset, 0)))

	var rows []animalRow
	if err := postgres.Select(ctx, db, &rows, q); err != nil {
		return nil, 0, fmt.Errorf("search animals: %w", err)
	}

	return toDomainList(rows), total, nil
}

// ListOffspringTags returns the tags of animals whose mother is motherID.
func (r *Repo) ListOffspringTags(ctx context.Context, motherID int64) ([]string, error) {
	q := postgres.Builder.Select("tag").From(table).
		Where(squirrel.Eq{"mother_id": motherID}).
		OrderBy("tag ASC")

	tags := []string{}
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &tags, q); err != nil {
		return nil, fmt.Errorf("list offspring of %d: %w", motherID, err)
	}
	return tags, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an animal. A tag collision yields domain.ErrAlreadyExists;
// an unknown farm or mother yields domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, a *domain.Animal) (*domain.Animal, error) {
	q := postgres.Builder.Insert(table).
		Columns("tag", "name", "birth_date", "breed", "sex", "state", "reproductive_state", "farm_id", "mother_id").
		Values(a.Tag, a.Name, a.BirthDate, a.Breed, string(a.Sex), string(a.State),
			string(a.ReproductiveState), a.FarmID, a.MotherID).
		Suffix("RETURNING " + postgres.ColumnList(columns))

	var row animalRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "animal", a.Tag)
	}
	return row.toDomain(), nil
}

// UpdateState sets the lifecycle state.
func (r *Repo) UpdateState(ctx context.Context, id int64, state domain.AnimalState) error {
	return r.update(ctx, id, map[string]any{"state": string(state)})
}

// MoveToFarm sets farm_id and the lifecycle state in one statement.
func (r *Repo) MoveToFarm(ctx context.Context, id, farmID int64, state domain.AnimalState) error {
	return r.update(ctx, id, map[string]any{"farm_id": farmID, "state": string(state)})
}

// UpdateReproductiveState sets the reproductive state.
func (r *Repo) UpdateReproductiveState(ctx context.Context, id int64, s domain.ReproductiveState) error {
	return r.update(ctx, id, map[string]any{"reproductive_state": string(s)})
}

// SetMother sets or clears (nil) the mother reference.
func (r *Repo) SetMother(ctx context.Context, id int64, motherID *int64) error {
	return r.update(ctx, id, map[string]any{"mother_id": motherID})
}

func (r *Repo) update(ctx context.Context, id int64, set map[string]any) error {
	set["updated_at"] = squirrel.Expr("now()")
	q := postgres.Builder.Update(table).SetMap(set).Where(squirrel.Eq{"id": id})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return postgres.MapError(err, "animal", id)
	}
	if n == 0 {
		return fmt.Errorf("animal %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) getOne(ctx context.Context, q squirrel.SelectBuilder, key any) (*domain.Animal, error) {
	var row animalRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "animal", key)
	}
	return row.toDomain(), nil
}

func toDomainList(rows []animalRow) []*domain.Animal {
	animals := make([]*domain.Animal, len(rows))
	for i, row := range rows {
		animals[i] = row.toDomain()
	}
	return animals
}
