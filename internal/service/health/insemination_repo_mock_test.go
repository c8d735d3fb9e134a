package health

import (
	"context"
	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
	"sync"
)

var _ inseminationRepo = &inseminationRepoMock{}

type inseminationRepoMock struct {
	GetByIDFunc            func(ctx context.Context, id int64) (*domain.Insemination, error)
	CreateFunc             func(ctx context.Context, ins *domain.Insemination) (*domain.Insemination, error)
	ListFunc               func(ctx context.Context, limit int, offset int) ([]*domain.Insemination, error)
	ListPendingFunc        func(ctx context.Context, after *domain.PendingCursor, limit int) ([]*domain.Insemination, error)
	CreateConfirmationFunc func(ctx context.Context, c *domain.GestationConfirmation) (*domain.GestationConfirmation, error)
	ListConfirmationsFunc  func(ctx context.Context, limit int, offset int) ([]*domain.GestationConfirmation, error)
	UpdateFunc             func(ctx context.Context, id int64, params domain.InseminationUpdateParams) (*domain.Insemination, error)
	DeleteFunc             func(ctx context.Context, id int64) error
	HasNewerFunc           func(ctx context.Context, ins *domain.Insemination) (bool, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
		Create []struct {
			Ctx context.Context
			Ins *domain.Insemination
		}
		List []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
		ListPending []struct {
			Ctx   context.Context
			After *domain.PendingCursor
			Limit int
		}
		CreateConfirmation []struct {
			Ctx context.Context
			C   *domain.GestationConfirmation
		}
		ListConfirmations []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
		Update []struct {
			Ctx    context.Context
			Id     int64
			Params domain.InseminationUpdateParams
		}
		Delete []struct {
			Ctx context.Context
			Id  int64
		}
		HasNewer []struct {
			Ctx context.Context
			Ins *domain.Insemination
		}
	}
	lockGetByID            sync.RWMutex
	lockCreate             sync.RWMutex
	lockList               sync.RWMutex
	lockListPending        sync.RWMutex
	lockCreateConfirmation sync.RWMutex
	lockListConfirmations  sync.RWMutex
	lockUpdate             sync.RWMutex
	lockDelete             sync.RWMutex
	lockHasNewer           sync.RWMutex
}

func (mock *inseminationRepoMock) GetByID(ctx context.Context, id int64) (*domain.Insemination, error) {
	if mock.GetByIDFunc == nil {
		panic("inseminationRepoMock.GetByIDFunc: method is nil but inseminationRepo.GetByID was just called")
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

func (mock *inseminationRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *inseminationRepoMock) Create(ctx context.Context, ins *domain.Insemination) (*domain.Insemination, error) {
	if mock.CreateFunc == nil {
		panic("inseminationRepoMock.CreateFunc: method is nil but inseminationRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ins *domain.Insemination
	}{Ctx: ctx, Ins: ins}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, ins)
}

func (mock *inseminationRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Ins *domain.Insemination
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *inseminationRepoMock) List(ctx context.Context, limit int, offset int) ([]*domain.Insemination, error) {
	if mock.ListFunc == nil {
		panic("inseminationRepoMock.ListFunc: method is nil but inseminationRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}{Ctx: ctx, Limit: limit, Offset: offset}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, limit, offset)
}

func (mock *inseminationRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *inseminationRepoMock) ListPending(ctx context.Context, after *domain.PendingCursor, limit int) ([]*domain.Insemination, error) {
	if mock.ListPendingFunc == nil {
		panic("inseminationRepoMock.ListPendingFunc: method is nil but inseminationRepo.ListPending was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		After *domain.PendingCursor
		Limit int
	}{Ctx: ctx, After: after, Limit: limit}
	mock.lockListPending.Lock()
	mock.calls.ListPending = append(mock.calls.ListPending, callInfo)
	mock.lockListPending.Unlock()
	return mock.ListPendingFunc(ctx, after, limit)
}

func (mock *inseminationRepoMock) ListPendingCalls() []struct {
	Ctx   context.Context
	After *domain.PendingCursor
	Limit int
} {
	mock.lockListPending.RLock()
	calls := mock.calls.ListPending
	mock.lockListPending.RUnlock()
	return calls
}

func (mock *inseminationRepoMock) CreateConfirmation(ctx context.Context, c *domain.GestationConfirmation) (*domain.GestationConfirmation, error) {
	if mock.CreateConfirmationFunc == nil {
		panic("inseminationRepoMock.CreateConfirmationFunc: method is nil but inseminationRepo.CreateConfirmation was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.GestationConfirmation
	}{Ctx: ctx, C: c}
	mock.lockCreateConfirmation.Lock()
	mock.calls.CreateConfirmation = append(mock.calls.CreateConfirmation, callInfo)
	mock.lockCreateConfirmation.Unlock()
	return mock.CreateConfirmationFunc(ctx, c)
}

func (mock *inseminationRepoMock) CreateConfirmationCalls() []struct {
	Ctx context.Context
	C   *domain.GestationConfirmation
} {
	mock.lockCreateConfirmation.RLock()
	calls := mock.calls.CreateConfirmation
	mock.lockCreateConfirmation.RUnlock()
	return calls
}

func (mock *inseminationRepoMock) ListConfirmations(ctx context.Context, limit int, offset int) ([]*domain.GestationConfirmation, error) {
	if mock.ListConfirmationsFunc == nil {
		panic("inseminationRepoMock.ListConfirmationsFunc: method is nil but inseminationRepo.ListConfirmations was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}{Ctx: ctx, Limit: limit, Offset: offset}
	mock.lockListConfirmations.Lock()
	mock.calls.ListConfirmations = append(mock.calls.ListConfirmations, callInfo)
	mock.lockListConfirmations.Unlock()
	return mock.ListConfirmationsFunc(ctx, limit, offset)
}

func (mock *inseminationRepoMock) ListConfirmationsCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockListConfirmations.RLock()
	calls := mock.calls.ListConfirmations
	mock.lockListConfirmations.RUnlock()
	return calls
}

func (mock *inseminationRepoMock) Update(ctx context.Context, id int64, params domain.InseminationUpdateParams) (*domain.Insemination, error) {
	if mock.UpdateFunc == nil {
		panic("inseminationRepoMock.UpdateFunc: method is nil but inseminationRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     int64
		Params domain.InseminationUpdateParams
	}{Ctx: ctx, Id: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *inseminationRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	Id     int64
	Params domain.InseminationUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *inseminationRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("inseminationRepoMock.DeleteFunc: method is nil but inseminationRepo.Delete was just called")
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

func (mock *inseminationRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *inseminationRepoMock) HasNewer(ctx context.Context, ins *domain.Insemination) (bool, error) {
	if mock.HasNewerFunc == nil {
		panic("inseminationRepoMock.HasNewerFunc: method is nil but inseminationRepo.HasNewer was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ins *domain.Insemination
	}{Ctx: ctx, Ins: ins}
	mock.lockHasNewer.Lock()
	mock.calls.HasNewer = append(mock.calls.HasNewer, callInfo)
	mock.lockHasNewer.Unlock()
	return mock.HasNewerFunc(ctx, ins)
}

func (mock *inseminationRepoMock) HasNewerCalls() []struct {
	Ctx context.Context
	Ins *domain.Insemination
} {
	mock.lockHasNewer.RLock()
	calls := mock.calls.HasNewer
	mock.lockHasNewer.RUnlock()
	return calls
}
