// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/agrotiquiza-backend/internal/adapter/postgres"
	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
)

const table = "users"

var columns = []string{
	"id", "document_id", "email", "first_name", "last_name", "role",
	"is_active", "is_temp_password", "password_hash", "created_at", "updated_at",
}

// userRow is the common field set returned by all user queries.
type userRow struct {
	ID             int64     `db:"id"`
	DocumentID     string    `db:"document_id"`
	Email          string    `db:"email"`
	FirstName      string    `db:"first_name"`
	LastName       string    `db:"last_name"`
	Role           string    `db:"role"`
	IsActive       bool      `db:"is_active"`
	IsTempPassword bool      `db:"is_temp_password"`
	PasswordHash   string    `db:"password_hash"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// toDomain converts a userRow into a domain.User.
func (r userRow) toDomain() *domain.User {
	return &domain.User{
		ID:             r.ID,
		DocumentID:     r.DocumentID,
		Email:          r.Email,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Role:           domain.Role(r.Role),
		IsActive:       r.IsActive,
		IsTempPassword: r.IsTempPassword,
		PasswordHash:   r.PasswordHash,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, id)
}

// GetByDocumentID returns a user by national document id (the login key).
func (r *Repo) GetByDocumentID(ctx context.Context, documentID string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"document_id": documentID}, documentID)
}

// List returns all users ordered by last and first name.
func (r *Repo) List(ctx context.Context) ([]*domain.User, error) {
	q := postgres.Builder.Select(columns...).From(table).OrderBy("last_name ASC", "first_name ASC", "id ASC")

	var rows []userRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]*domain.User, len(rows))
	for i, row := range rows {
		users[i] = row.toDomain()
	}
	return users, nil
}

// CountByRole returns the number of active users with role.
func (r *Repo) CountByRole(ctx context.Context, role domain.Role) (int, error) {
	q := postgres.Builder.Select("count(*)").From(table).
		Where(squirrel.Eq{"role": string(role), "is_active": true})

	var n int
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &n, q); err != nil {
		return 0, fmt.Errorf("count users by role: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a user. Duplicate document id or email yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.Builder.Insert(table).
		Columns("document_id", "email", "first_name", "last_name", "role", "is_active", "is_temp_password", "password_hash").
		Values(u.DocumentID, u.Email, u.FirstName, u.LastName, string(u.Role), u.IsActive, u.IsTempPassword, u.PasswordHash).
		Suffix("RETURNING " + postgres.ColumnList(columns))

	var row userRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "user", u.DocumentID)
	}
	return row.toDomain(), nil
}

// UpdatePassword stores a new hash and the temporary flag.
func (r *Repo) UpdatePassword(ctx context.Context, id int64, hash string, temporary bool) error {
	return r.update(ctx, id, map[string]any{"password_hash": hash, "is_temp_password": temporary})
}

// SetActive enables or disables login for the user.
func (r *Repo) SetActive(ctx context.Context, id int64, active bool) error {
	return r.update(ctx, id, map[string]any{"is_active": active})
}

// SetRole changes the user's role.
func (r *Repo) SetRole(ctx context.Context, id int64, role domain.Role) error {
	return r.update(ctx, id, map[string]any{"role": string(role)})
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) getOne(ctx context.Context, where squirrel.Sqlizer, key any) (*domain.User, error) {
	q := postgres.Builder.Select(columns...).From(table).Where(where)

	var row userRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "user", key)
	}
	return row.toDomain(), nil
}

func (r *Repo) update(ctx context.Context, id int64, set map[string]any) error {
	set["updated_at"] = squirrel.Expr("now()")
	q := postgres.Builder.Update(table).SetMap(set).Where(squirrel.Eq{"id": id})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if n == 0 {
		return fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
