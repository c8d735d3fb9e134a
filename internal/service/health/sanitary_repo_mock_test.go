package health

import (
	"context"
	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
	"sync"
)

var _ sanitaryRepo = &sanitaryRepoMock{}

type sanitaryRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.SanitaryEvent, error)
	ListFunc    func(ctx context.Context, filter domain.SanitaryFilter) ([]*domain.SanitaryEvent, error)
	CreateFunc  func(ctx context.Context, e *domain.SanitaryEvent) (*domain.SanitaryEvent, error)
	UpdateFunc  func(ctx context.Context, id int64, params domain.SanitaryUpdateParams) (*domain.SanitaryEvent, error)
	DeleteFunc  func(ctx context.Context, id int64) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
		List []struct {
			Ctx    context.Context
			Filter domain.SanitaryFilter
		}
		Create []struct {
			Ctx context.Context
			E   *domain.SanitaryEvent
		}
		Update []struct {
			Ctx    context.Context
			Id     int64
			Params domain.SanitaryUpdateParams
		}
		Delete []struct {
			Ctx context.Context
			Id  int64
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *sanitaryRepoMock) GetByID(ctx context.Context, id int64) (*domain.SanitaryEvent, error) {
	if mock.GetByIDFunc == nil {
		panic("sanitaryRepoMock.GetByIDFunc: method is nil but sanitaryRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *sanitaryRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *sanitaryRepoMock) List(ctx context.Context, filter domain.SanitaryFilter) ([]*domain.SanitaryEvent, error) {
	if mock.ListFunc == nil {
		panic("sanitaryRepoMock.ListFunc: method is nil but sanitaryRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.SanitaryFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *sanitaryRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.SanitaryFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *sanitaryRepoMock) Create(ctx context.Context, e *domain.SanitaryEvent) (*domain.SanitaryEvent, error) {
	if mock.CreateFunc == nil {
		panic("sanitaryRepoMock.CreateFunc: method is nil but sanitaryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.SanitaryEvent
	}{Ctx: ctx, E: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *sanitaryRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   *domain.SanitaryEvent
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *sanitaryRepoMock) Update(ctx context.Context, id int64, params domain.SanitaryUpdateParams) (*domain.SanitaryEvent, error) {
	if mock.UpdateFunc == nil {
		panic("sanitaryRepoMock.UpdateFunc: method is nil but sanitaryRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     int64
		Params domain.SanitaryUpdateParams
	}{Ctx: ctx, Id: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *sanitaryRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	Id     int64
	Params domain.SanitaryUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *sanitaryRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("sanitaryRepoMock.DeleteFunc: method is nil but sanitaryRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *sanitaryRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
