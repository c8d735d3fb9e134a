package report

import (
	"context"
	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
	"sync"
)

var _ birthRepo = &birthRepoMock{}

type birthRepoMock struct {
	ListFunc func(ctx context.Context, filter domain.BirthFilter) ([]*domain.Birth, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			Filter domain.BirthFilter
		}
	}
	lockList sync.RWMutex
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
