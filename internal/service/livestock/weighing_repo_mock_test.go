package livestock

import (
	"context"
	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
	"sync"
)

var _ weighingRepo = &weighingRepoMock{}

type weighingRepoMock struct {
	CreateFunc       func(ctx context.Context, w *domain.Weighing) (*domain.Weighing, error)
	LatestFunc       func(ctx context.Context, animalID int64) (*domain.Weighing, error)
	ListByAnimalFunc func(ctx context.Context, animalID int64) ([]*domain.Weighing, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			W   *domain.Weighing
		}
		Latest []struct {
			Ctx      context.Context
			AnimalID int64
		}
		ListByAnimal []struct {
			Ctx      context.Context
			AnimalID int64
		}
	}
	lockCreate       sync.RWMutex
	lockLatest       sync.RWMutex
	lockListByAnimal sync.RWMutex
}

func (mock *weighingRepoMock) Create(ctx context.Context, w *domain.Weighing) (*domain.Weighing, error) {
	if mock.CreateFunc == nil {
		panic("weighingRepoMock.CreateFunc: method is nil but weighingRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		W   *domain.Weighing
	}{Ctx: ctx, W: w}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, w)
}

func (mock *weighingRepoMock) CreateCalls() []struct {
	Ctx context.Context
	W   *domain.Weighing
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *weighingRepoMock) Latest(ctx context.Context, animalID int64) (*domain.Weighing, error) {
	if mock.LatestFunc == nil {
		panic("weighingRepoMock.LatestFunc: method is nil but weighingRepo.Latest was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AnimalID int64
	}{Ctx: ctx, AnimalID: animalID}
	mock.lockLatest.Lock()
	mock.calls.Latest = append(mock.calls.Latest, callInfo)
	mock.lockLatest.Unlock()
	return mock.LatestFunc(ctx, animalID)
}

func (mock *weighingRepoMock) LatestCalls() []struct {
	Ctx      context.Context
	AnimalID int64
} {
	mock.lockLatest.RLock()
	calls := mock.calls.Latest
	mock.lockLatest.RUnlock()
	return calls
}

func (mock *weighingRepoMock) ListByAnimal(ctx context.Context, animalID int64) ([]*domain.Weighing, error) {
	if mock.ListByAnimalFunc == nil {
		panic("weighingRepoMock.ListByAnimalFunc: method is nil but weighingRepo.ListByAnimal was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AnimalID int64
	}{Ctx: ctx, AnimalID: animalID}
	mock.lockListByAnimal.Lock()
	mock.calls.ListByAnimal = append(mock.calls.ListByAnimal, callInfo)
	mock.lockListByAnimal.Unlock()
	return mock.ListByAnimalFunc(ctx, animalID)
}

func (mock *weighingRepoMock) ListByAnimalCalls() []struct {
	Ctx      context.Context
	AnimalID int64
} {
	mock.lockListByAnimal.RLock()
	calls := mock.calls.ListByAnimal
	mock.lockListByAnimal.RUnlock()
	return calls
}
