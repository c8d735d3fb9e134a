// Package farm implements the Farm repository using PostgreSQL.
package farm

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/agrotiquiza-backend/internal/adapter/postgres"
	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
)

const table = "farms"

var columns = []string{"id", "name", "code", "location", "owner", "phone", "created_at", "updated_at"}

type farmRow struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Code      string    `db:"code"`
	Location  string    `db:"location"`
	Owner     string    `db:"owner"`
	Phone     string    `db:"phone"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r farmRow) toDomain() *domain.Farm {
	return &domain.Farm{
		ID:        r.ID,
		Name:      r.Name,
		Code:      r.Code,
		Location:  r.Location,
		Owner:     r.Owner,
		Phone:     r.Phone,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Repo provides farm persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new farm repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a farm by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Farm, error) {
	q := postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"id": id})

	var row farmRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "farm", id)
	}
	return row.toDomain(), nil
}

// GetByIDs returns farms for the given ids in no particular order (batch for DataLoader).
// Missing ids are silently skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Farm, error) {
	if len(ids) == 0 {
		return []*domain.Farm{}, nil
	}

	q := postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"id": ids})

	var rows []farmRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, fmt.Errorf("get farms by ids: %w", err)
	}
	return toDomainList(rows), nil
}

// List returns all farms ordered by name.
// Returns an empty slice (not nil) when there are no farms.
func (r *Repo) List(ctx context.Context) ([]*domain.Farm, error) {
	q := postgres.Builder.Select(columns...).From(table).OrderBy("name ASC")

	var rows []farmRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, fmt.Errorf("list farms: %w", err)
	}
	return toDomainList(rows), nil
}

// Create inserts a farm. Duplicate name or code yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, f *domain.Farm) (*domain.Farm, error) {
	q := postgres.Builder.Insert(table).
		Columns("name", "code", "location", "owner", "phone").
		Values(f.Name, f.Code, f.Location, f.Owner, f.Phone).
		Suffix("RETURNING " + postgres.ColumnList(columns))

	var row farmRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "farm", f.Code)
	}
	return row.toDomain(), nil
}

// Update applies the non-nil fields of params and returns the updated farm.
func (r *Repo) Update(ctx context.Context, id int64, params domain.FarmUpdateParams) (*domain.Farm, error) {
	set := map[string]any{"updated_at": squirrel.Expr("now()")}
	if params.Name != nil {
		set["name"] = *params.Name
	}
	if params.Code != nil {
		set["code"] = *params.Code
	}
	if params.Location != nil {
		set["location"] = *params.Location
	}
	if params.Owner != nil {
		set["owner"] = *params.Owner
	}
	if params.Phone != nil {
		set["phone"] = *params.Phone
	}

	q := postgres.Builder.Update(table).
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + postgres.ColumnList(columns))

	var row farmRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "farm", id)
	}
	return row.toDomain(), nil
}

// Delete removes a farm. A farm still referenced by animals or events
// yields domain.ErrReferenced.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.Builder.Delete(table).Where(squirrel.Eq{"id": id})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return postgres.MapError(err, "farm", id)
	}
	if n == 0 {
		return fmt.Errorf("farm %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func toDomainList(rows []farmRow) []*domain.Farm {
	farms := make([]*domain.Farm, len(rows))
	for i, row := range rows {
		farms[i] = row.toDomain()
	}
	return farms
}
