package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
	"github.com/heartmarshall/agrotiquiza-backend/internal/service/livestock"
)

var _ eventService = &eventServiceMock{}

type eventServiceMock struct {
	RecordBirthFunc      func(ctx context.Context, input livestock.BirthInput) (*domain.Birth, error)
	ListBirthsFunc       func(ctx context.Context, filter domain.BirthFilter) ([]*domain.Birth, error)
	RecordProductionFunc func(ctx context.Context, input livestock.ProductionInput) (*domain.MilkProduction, error)
	RecordExitFunc       func(ctx context.Context, input livestock.ExitInput) (*domain.ExitEvent, error)
	TransferAnimalsFunc  func(ctx context.Context, input livestock.TransferInput) ([]*domain.Transfer, error)
	ListTransfersFunc    func(ctx context.Context, input livestock.ListTransfersInput) ([]*domain.Transfer, error)

	calls struct {
		RecordBirth []struct {
			Ctx   context.Context
			Input livestock.BirthInput
		}
		ListBirths []struct {
			Ctx    context.Context
			Filter domain.BirthFilter
		}
		RecordProduction []struct {
			Ctx   context.Context
			Input livestock.ProductionInput
		}
		RecordExit []struct {
			Ctx   context.Context
			Input livestock.ExitInput
		}
		TransferAnimals []struct {
			Ctx   context.Context
			Input livestock.TransferInput
		}
		ListTransfers []struct {
			Ctx   context.Context
			Input livestock.ListTransfersInput
		}
	}
	lockRecordBirth      sync.RWMutex
	lockListBirths       sync.RWMutex
	lockRecordProduction sync.RWMutex
	lockRecordExit       sync.RWMutex
	lockTransferAnimals  sync.RWMutex
	lockListTransfers    sync.RWMutex
}

func (mock *eventServiceMock) RecordBirth(ctx context.Context, input livestock.BirthInput) (*domain.Birth, error) {
	if mock.RecordBirthFunc == nil {
		panic("eventServiceMock.RecordBirthFunc: method is nil but eventService.RecordBirth was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input livestock.BirthInput
	}{Ctx: ctx, Input: input}
	mock.lockRecordBirth.Lock()
	mock.calls.RecordBirth = append(mock.calls.RecordBirth, callInfo)
	mock.lockRecordBirth.Unlock()
	return mock.RecordBirthFunc(ctx, input)
}

func (mock *eventServiceMock) RecordBirthCalls() []struct {
	Ctx   context.Context
	Input livestock.BirthInput
} {
	mock.lockRecordBirth.RLock()
	calls := mock.calls.RecordBirth
	mock.lockRecordBirth.RUnlock()
	return calls
}

func (mock *eventServiceMock) ListBirths(ctx context.Context, filter domain.BirthFilter) ([]*domain.Birth, error) {
	if mock.ListBirthsFunc == nil {
		panic("eventServiceMock.ListBirthsFunc: method is nil but eventService.ListBirths was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.BirthFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockListBirths.Lock()
	mock.calls.ListBirths = append(mock.calls.ListBirths, callInfo)
	mock.lockListBirths.Unlock()
	return mock.ListBirthsFunc(ctx, filter)
}

func (mock *eventServiceMock) ListBirthsCalls() []struct {
	Ctx    context.Context
	Filter domain.BirthFilter
} {
	mock.lockListBirths.RLock()
	calls := mock.calls.ListBirths
	mock.lockListBirths.RUnlock()
	return calls
}

func (mock *eventServiceMock) RecordProduction(ctx context.Context, input livestock.ProductionInput) (*domain.MilkProduction, error) {
	if mock.RecordProductionFunc == nil {
		panic("eventServiceMock.RecordProductionFunc: method is nil but eventService.RecordProduction was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input livestock.ProductionInput
	}{Ctx: ctx, Input: input}
	mock.lockRecordProduction.Lock()
	mock.calls.RecordProduction = append(mock.calls.RecordProduction, callInfo)
	mock.lockRecordProduction.Unlock()
	return mock.RecordProductionFunc(ctx, input)
}

func (mock *eventServiceMock) RecordProductionCalls() []struct {
	Ctx   context.Context
	Input livestock.ProductionInput
} {
	mock.lockRecordProduction.RLock()
	calls := mock.calls.RecordProduction
	mock.lockRecordProduction.RUnlock()
	return calls
}

func (mock *eventServiceMock) RecordExit(ctx context.Context, input livestock.ExitInput) (*domain.ExitEvent, error) {
	if mock.RecordExitFunc == nil {
		panic("eventServiceMock.RecordExitFunc: method is nil but eventService.RecordExit was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input livestock.ExitInput
	}{Ctx: ctx, Input: input}
	mock.lockRecordExit.Lock()
	mock.calls.RecordExit = append(mock.calls.RecordExit, callInfo)
	mock.lockRecordExit.Unlock()
	return mock.RecordExitFunc(ctx, input)
}

func (mock *eventServiceMock) RecordExitCalls() []struct {
	Ctx   context.Context
	Input livestock.ExitInput
} {
	mock.lockRecordExit.RLock()
	calls := mock.calls.RecordExit
	mock.lockRecordExit.RUnlock()
	return calls
}

func (mock *eventServiceMock) TransferAnimals(ctx context.Context, input livestock.TransferInput) ([]*domain.Transfer, error) {
	if mock.TransferAnimalsFunc == nil {
		panic("eventServiceMock.TransferAnimalsFunc: method is nil but eventService.TransferAnimals was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input livestock.TransferInput
	}{Ctx: ctx, Input: input}
	mock.lockTransferAnimals.Lock()
	mock.calls.TransferAnimals = append(mock.calls.TransferAnimals, callInfo)
	mock.lockTransferAnimals.Unlock()
	return mock.TransferAnimalsFunc(ctx, input)
}

func (mock *eventServiceMock) TransferAnimalsCalls() []struct {
	Ctx   context.Context
	Input livestock.TransferInput
} {
	mock.lockTransferAnimals.RLock()
	calls := mock.calls.TransferAnimals
	mock.lockTransferAnimals.RUnlock()
	return calls
}

func (mock *eventServiceMock) ListTransfers(ctx context.Context, input livestock.ListTransfersInput) ([]*domain.Transfer, error) {
	if mock.ListTransfersFunc == nil {
		panic("eventServiceMock.ListTransfersFunc: method is nil but eventService.ListTransfers was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input livestock.ListTransfersInput
	}{Ctx: ctx, Input: input}
	mock.lockListTransfers.Lock()
	mock.calls.ListTransfers = append(mock.calls.ListTransfers, callInfo)
	mock.lockListTransfers.Unlock()
	return mock.ListTransfersFunc(ctx, input)
}

func (mock *eventServiceMock) ListTransfersCalls() []struct {
	Ctx   context.Context
	Input livestock.ListTransfersInput
} {
	mock.lockListTransfers.RLock()
	calls := mock.calls.ListTransfers
	mock.lockListTransfers.RUnlock()
	return calls
}
