package livestock

import (
	"context"
	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
	"sync"
)

var _ birthRepo = &birthRepoMock{}

type birthRepoMock struct {
	CreateFunc func(ctx context.Context, b *domain.Birth) (*domain.Birth, error)
	ListFunc   func(ctx context.Context, filter domain.BirthFilter) ([]*domain.Birth, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			B   *domain.Birth
		}
		List []struct {
			Ctx    context.Context
			Filter domain.BirthFilter
		}
	}
	lockCreate sync.RWMutex
	lockList   sync.RWMutex
}

func (mock *birthRepoMock) Create(ctx context.Context, b *domain.Birth) (*domain.Birth, error) {
	if mock.CreateFunc == nil {
		panic("birthRepoMock.CreateFunc: method is nil but birthRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		B   *domain.Birth
	}{Ctx: ctx, B: b}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, b)
}

func (mock *birthRepoMock) CreateCalls() []struct {
	Ctx context.Context
	B   *domain.Birth
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *birthRepoMock) List(ctx context.Context, filter domain.BirthFilter) ([]*domain.Birth, error) {
	if mock.ListFunc == nil {
		panic("birthRepoMock.ListFunc: method is nil but birthRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.BirthFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *birthRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.BirthFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
