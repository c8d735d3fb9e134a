package livestock

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/heartmarshall/agrotiquiza-backend/internal/config"
	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
)

//go:generate moq -out animal_repo_mock_test.go -pkg livestock . animalRepo
//go:generate moq -out farm_repo_mock_test.go -pkg livestock . farmRepo
//go:generate moq -out weighing_repo_mock_test.go -pkg livestock . weighingRepo
//go:generate moq -out birth_repo_mock_test.go -pkg livestock . birthRepo
//go:generate moq -out production_repo_mock_test.go -pkg livestock . productionRepo
//go:generate moq -out exit_repo_mock_test.go -pkg livestock . exitRepo
//go:generate moq -out transfer_repo_mock_test.go -pkg livestock . transferRepo
//go:generate moq -out tx_manager_mock_test.go -pkg livestock . txManager

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

// fixture bundles the service dependencies. Mocks start empty: any call to a
// method the test did not stub panics.
type fixture struct {
	animals     *animalRepoMock
	farms       *farmRepoMock
	weighings   *weighingRepoMock
	births      *birthRepoMock
	productions *productionRepoMock
	exits       *exitRepoMock
	transfers   *transferRepoMock
	tx          *txManagerMock
	cfg         config.LivestockConfig
}

func newFixture() *fixture {
	return &fixture{
		animals:     &animalRepoMock{},
		farms:       defaultFarmsMock(),
		weighings:   &weighingRepoMock{},
		births:      &birthRepoMock{},
		productions: &productionRepoMock{},
		exits:       &exitRepoMock{},
		transfers:   &transferRepoMock{},
		tx:          defaultTxMock(),
		cfg:         config.LivestockConfig{ResetMotherOnBirth: true, PendingPageSize: 100},
	}
}

func (f *fixture) service() *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(logger, f.animals, f.farms, f.weighings, f.births,
		f.productions, f.exits, f.transfers, f.tx, f.cfg)
	svc.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

// defaultTxMock returns a txManagerMock that simply calls the function with the same context.
func defaultTxMock() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
}

// defaultFarmsMock knows farms 1 and 2.
func defaultFarmsMock() *farmRepoMock {
	return &farmRepoMock{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Farm, error) {
			switch id {
			case 1:
				return &domain.Farm{ID: 1, Name: "La Esperanza", Code: "F01"}, nil
			case 2:
				return &domain.Farm{ID: 2, Name: "El Roble", Code: "F02"}, nil
			}
			return nil, domain.ErrNotFound
		},
	}
}

// herd serves GetByTag from a fixed set of animals keyed by upper-case tag.
func herd(animals ...*domain.Animal) func(ctx context.Context, tag string) (*domain.Animal, error) {
	byTag := make(map[string]*domain.Animal, len(animals))
	for _, a := range animals {
		byTag[a.Tag] = a
	}
	return func(ctx context.Context, tag string) (*domain.Animal, error) {
		if a, ok := byTag[tag]; ok {
			cp := *a
			return &cp, nil
		}
		return nil, domain.ErrNotFound
	}
}

func cow(id int64, tag string, farmID int64) *domain.Animal {
	return &domain.Animal{
		ID:                id,
		Tag:               tag,
		Sex:               domain.SexFemale,
		State:             domain.AnimalStateActive,
		ReproductiveState: domain.ReproductiveOpen,
		FarmID:            farmID,
	}
}

func bull(id int64, tag string, farmID int64) *domain.Animal {
	a := cow(id, tag, farmID)
	a.Sex = domain.SexMale
	return a
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }
