package livestock

import (
	"context"
	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
	"sync"
)

var _ transferRepo = &transferRepoMock{}

type transferRepoMock struct {
	CreateFunc func(ctx context.Context, t *domain.Transfer) (*domain.Transfer, error)
	ListFunc   func(ctx context.Context, animalID *int64, limit int, offset int) ([]*domain.Transfer, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			T   *domain.Transfer
		}
		List []struct {
			Ctx      context.Context
			AnimalID *int64
			Limit    int
			Offset   int
		}
	}
	lockCreate sync.RWMutex
	lockList   sync.RWMutex
}

func (mock *transferRepoMock) Create(ctx context.Context, t *domain.Transfer) (*domain.Transfer, error) {
	if mock.CreateFunc == nil {
		panic("transferRepoMock.CreateFunc: method is nil but transferRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.Transfer
	}{Ctx: ctx, T: t}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *transferRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   *domain.Transfer
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *transferRepoMock) List(ctx context.Context, animalID *int64, limit int, offset int) ([]*domain.Transfer, error) {
	if mock.ListFunc == nil {
		panic("transferRepoMock.ListFunc: method is nil but transferRepo.List was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AnimalID *int64
		Limit    int
		Offset   int
	}{Ctx: ctx, AnimalID: animalID, Limit: limit, Offset: offset}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, animalID, limit, offset)
}

func (mock *transferRepoMock) ListCalls() []struct {
	Ctx      context.Context
	AnimalID *int64
	Limit    int
	Offset   int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
