package testhelper

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return strings.ToUpper(uuid.New().String()[:8])
}

// UniqueTag returns an animal tag that does not collide across tests sharing
// the container.
func UniqueTag(prefix string) string {
	return prefix + "-" + uniqueSuffix()
}

// SeedUser creates an active manager with a dummy password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	user := domain.User{
		DocumentID:   "DOC" + suffix,
		Email:        "user-" + strings.ToLower(suffix) + "@example.com",
		FirstName:    "Test",
		LastName:     "User " + suffix,
		Role:         domain.RoleManager,
		IsActive:     true,
		PasswordHash: "$2a$04$invalidinvalidinvalidinvalidinvalidinvalidinvalidinva",
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO users (document_id, email, first_name, last_name, role, is_active, is_temp_password, password_hash)
		 VALUES ($1, $2, $3, $4, $5, $6, false, $7)
		 RETURNING id, created_at, updated_at`,
		user.DocumentID, user.Email, user.FirstName, user.LastName, string(user.Role), user.IsActive, user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// SeedFarm creates a farm with a unique name and code.
func SeedFarm(t *testing.T, pool *pgxpool.Pool) domain.Farm {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	farm := domain.Farm{
		Name:     "Finca " + suffix,
		Code:     "F" + suffix,
		Location: "Tiquiza",
		Owner:    "Test Owner",
		Phone:    "3000000000",
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO farms (name, code, location, owner, phone)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		farm.Name, farm.Code, farm.Location, farm.Owner, farm.Phone,
	).Scan(&farm.ID, &farm.CreatedAt, &farm.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedFarm insert: %v", err)
	}

	return farm
}

// AnimalOption customizes SeedAnimal.
type AnimalOption func(a *domain.Animal)

// WithSex sets the animal's sex.
func WithSex(sex domain.Sex) AnimalOption {
	return func(a *domain.Animal) { a.Sex = sex }
}

// WithState sets the animal's lifecycle state.
func WithState(state domain.AnimalState) AnimalOption {
	return func(a *domain.Animal) { a.State = state }
}

// WithTag overrides the generated tag.
func WithTag(tag string) AnimalOption {
	return func(a *domain.Animal) { a.Tag = tag }
}

// WithReproductiveState sets the animal's reproductive state.
func WithReproductiveState(s domain.ReproductiveState) AnimalOption {
	return func(a *domain.Animal) { a.ReproductiveState = s }
}

// SeedAnimal creates an active female in farmID unless options say otherwise.
func SeedAnimal(t *testing.T, pool *pgxpool.Pool, farmID int64, opts ...AnimalOption) domain.Animal {
	t.Helper()
	ctx := context.Background()

	birth := time.Date(2021, 3, 15, 0, 0, 0, 0, time.UTC)
	animal := domain.Animal{
		Tag:               UniqueTag("A"),
		Name:              "Test animal",
		BirthDate:         &birth,
		Breed:             "Holstein",
		Sex:               domain.SexFemale,
		State:             domain.AnimalStateActive,
		ReproductiveState: domain.ReproductiveOpen,
		FarmID:            farmID,
	}
	for _, opt := range opts {
		opt(&animal)
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO animals (tag, name, birth_date, breed, sex, state, reproductive_state, farm_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		animal.Tag, animal.Name, animal.BirthDate, animal.Breed, string(animal.Sex),
		string(animal.State), string(animal.ReproductiveState), animal.FarmID,
	).Scan(&animal.ID, &animal.CreatedAt, &animal.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedAnimal insert: %v", err)
	}

	return animal
}

// SeedInsemination creates an unconfirmed insemination for animalID.
func SeedInsemination(t *testing.T, pool *pgxpool.Pool, animalID, responsibleID int64, date time.Time) domain.Insemination {
	t.Helper()
	ctx := context.Background()

	ins := domain.Insemination{
		Date:          date,
		AnimalID:      animalID,
		SemenType:     "sexed",
		Inseminator:   "Tech",
		ResponsibleID: responsibleID,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO inseminations (date, animal_id, semen_type, inseminator, responsible_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		ins.Date, ins.AnimalID, ins.SemenType, ins.Inseminator, ins.ResponsibleID,
	).Scan(&ins.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedInsemination insert: %v", err)
	}

	return ins
}

// CountRows returns the number of rows in table matching where (with args).
func CountRows(t *testing.T, pool *pgxpool.Pool, table, where string, args ...any) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM `+table+` WHERE `+where, args...,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountRows %s: %v", table, err)
	}
	return n
}
