package report

import (
	"context"
	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
	"sync"
)

var _ statsRepo = &statsRepoMock{}

type statsRepoMock struct {
	CountFarmsFunc                func(ctx context.Context) (int64, error)
	CountBirthsFunc               func(ctx context.Context) (int64, error)
	CountTransfersFunc            func(ctx context.Context) (int64, error)
	CountSanitaryEventsFunc       func(ctx context.Context) (int64, error)
	CountInseminationsFunc        func(ctx context.Context) (int64, error)
	CountPendingInseminationsFunc func(ctx context.Context) (int64, error)
	CountPregnantFunc             func(ctx context.Context) (int64, error)
	CountActiveFemalesFunc        func(ctx context.Context) (int64, error)
	TotalProductionKgFunc         func(ctx context.Context) (float64, error)
	ExitsByTypeFunc               func(ctx context.Context) (map[domain.ExitType]int64, error)
	AnimalsPerFarmFunc            func(ctx context.Context) ([]domain.FarmCount, error)
	SanitaryEventsPerFarmFunc     func(ctx context.Context) ([]domain.FarmCount, error)
	AvgProductionPerFarmFunc      func(ctx context.Context) ([]domain.FarmAverage, error)

	calls struct {
		CountFarms []struct {
			Ctx context.Context
		}
		CountBirths []struct {
			Ctx context.Context
		}
		CountTransfers []struct {
			Ctx context.Context
		}
		CountSanitaryEvents []struct {
			Ctx context.Context
		}
		CountInseminations []struct {
			Ctx context.Context
		}
		CountPendingInseminations []struct {
			Ctx context.Context
		}
		CountPregnant []struct {
			Ctx context.Context
		}
		CountActiveFemales []struct {
			Ctx context.Context
		}
		TotalProductionKg []struct {
			Ctx context.Context
		}
		ExitsByType []struct {
			Ctx context.Context
		}
		AnimalsPerFarm []struct {
			Ctx context.Context
		}
		SanitaryEventsPerFarm []struct {
			Ctx context.Context
		}
		AvgProductionPerFarm []struct {
			Ctx context.Context
		}
	}
	lockCountFarms                sync.RWMutex
	lockCountBirths               sync.RWMutex
	lockCountTransfers            sync.RWMutex
	lockCountSanitaryEvents       sync.RWMutex
	lockCountInseminations        sync.RWMutex
	lockCountPendingInseminations sync.RWMutex
	lockCountPregnant             sync.RWMutex
	lockCountActiveFemales        sync.RWMutex
	lockTotalProductionKg         sync.RWMutex
	lockExitsByType               sync.RWMutex
	lockAnimalsPerFarm            sync.RWMutex
	lockSanitaryEventsPerFarm     sync.RWMutex
	lockAvgProductionPerFarm      sync.RWMutex
}

func (mock *statsRepoMock) CountFarms(ctx context.Context) (int64, error) {
	if mock.CountFarmsFunc == nil {
		panic("statsRepoMock.CountFarmsFunc: method is nil but statsRepo.CountFarms was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockCountFarms.Lock()
	mock.calls.CountFarms = append(mock.calls.CountFarms, callInfo)
	mock.lockCountFarms.Unlock()
	return mock.CountFarmsFunc(ctx)
}

func (mock *statsRepoMock) CountFarmsCalls() []struct{ Ctx context.Context } {
	mock.lockCountFarms.RLock()
	calls := mock.calls.CountFarms
	mock.lockCountFarms.RUnlock()
	return calls
}

func (mock *statsRepoMock) CountBirths(ctx context.Context) (int64, error) {
	if mock.CountBirthsFunc == nil {
		panic("statsRepoMock.CountBirthsFunc: method is nil but statsRepo.CountBirths was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockCountBirths.Lock()
	mock.calls.CountBirths = append(mock.calls.CountBirths, callInfo)
	mock.lockCountBirths.Unlock()
	return mock.CountBirthsFunc(ctx)
}

func (mock *statsRepoMock) CountBirthsCalls() []struct{ Ctx context.Context } {
	mock.lockCountBirths.RLock()
	calls := mock.calls.CountBirths
	mock.lockCountBirths.RUnlock()
	return calls
}

func (mock *statsRepoMock) CountTransfers(ctx context.Context) (int64, error) {
	if mock.CountTransfersFunc == nil {
		panic("statsRepoMock.CountTransfersFunc: method is nil but statsRepo.CountTransfers was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockCountTransfers.Lock()
	mock.calls.CountTransfers = append(mock.calls.CountTransfers, callInfo)
	mock.lockCountTransfers.Unlock()
	return mock.CountTransfersFunc(ctx)
}

func (mock *statsRepoMock) CountTransfersCalls() []struct{ Ctx context.Context } {
	mock.lockCountTransfers.RLock()
	calls := mock.calls.CountTransfers
	mock.lockCountTransfers.RUnlock()
	return calls
}

func (mock *statsRepoMock) CountSanitaryEvents(ctx context.Context) (int64, error) {
	if mock.CountSanitaryEventsFunc == nil {
		panic("statsRepoMock.CountSanitaryEventsFunc: method is nil but statsRepo.CountSanitaryEvents was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockCountSanitaryEvents.Lock()
	mock.calls.CountSanitaryEvents = append(mock.calls.CountSanitaryEvents, callInfo)
	mock.lockCountSanitaryEvents.Unlock()
	return mock.CountSanitaryEventsFunc(ctx)
}

func (mock *statsRepoMock) CountSanitaryEventsCalls() []struct{ Ctx context.Context } {
	mock.lockCountSanitaryEvents.RLock()
	calls := mock.calls.CountSanitaryEvents
	mock.lockCountSanitaryEvents.RUnlock()
	return calls
}

func (mock *statsRepoMock) CountInseminations(ctx context.Context) (int64, error) {
	if mock.CountInseminationsFunc == nil {
		panic("statsRepoMock.CountInseminationsFunc: method is nil but statsRepo.CountInseminations was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockCountInseminations.Lock()
	mock.calls.CountInseminations = append(mock.calls.CountInseminations, callInfo)
	mock.lockCountInseminations.Unlock()
	return mock.CountInseminationsFunc(ctx)
}

func (mock *statsRepoMock) CountInseminationsCalls() []struct{ Ctx context.Context } {
	mock.lockCountInseminations.RLock()
	calls := mock.calls.CountInseminations
	mock.lockCountInseminations.RUnlock()
	return calls
}

func (mock *statsRepoMock) CountPendingInseminations(ctx context.Context) (int64, error) {
	if mock.CountPendingInseminationsFunc == nil {
		panic("statsRepoMock.CountPendingInseminationsFunc: method is nil but statsRepo.CountPendingInseminations was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockCountPendingInseminations.Lock()
	mock.calls.CountPendingInseminations = append(mock.calls.CountPendingInseminations, callInfo)
	mock.lockCountPendingInseminations.Unlock()
	return mock.CountPendingInseminationsFunc(ctx)
}

func (mock *statsRepoMock) CountPendingInseminationsCalls() []struct{ Ctx context.Context } {
	mock.lockCountPendingInseminations.RLock()
	calls := mock.calls.CountPendingInseminations
	mock.lockCountPendingInseminations.RUnlock()
	return calls
}

func (mock *statsRepoMock) CountPregnant(ctx context.Context) (int64, error) {
	if mock.CountPregnantFunc == nil {
		panic("statsRepoMock.CountPregnantFunc: method is nil but statsRepo.CountPregnant was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockCountPregnant.Lock()
	mock.calls.CountPregnant = append(mock.calls.CountPregnant, callInfo)
	mock.lockCountPregnant.Unlock()
	return mock.CountPregnantFunc(ctx)
}

func (mock *statsRepoMock) CountPregnantCalls() []struct{ Ctx context.Context } {
	mock.lockCountPregnant.RLock()
	calls := mock.calls.CountPregnant
	mock.lockCountPregnant.RUnlock()
	return calls
}

func (mock *statsRepoMock) CountActiveFemales(ctx context.Context) (int64, error) {
	if mock.CountActiveFemalesFunc == nil {
		panic("statsRepoMock.CountActiveFemalesFunc: method is nil but statsRepo.CountActiveFemales was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockCountActiveFemales.Lock()
	mock.calls.CountActiveFemales = append(mock.calls.CountActiveFemales, callInfo)
	mock.lockCountActiveFemales.Unlock()
	return mock.CountActiveFemalesFunc(ctx)
}

func (mock *statsRepoMock) CountActiveFemalesCalls() []struct{ Ctx context.Context } {
	mock.lockCountActiveFemales.RLock()
	calls := mock.calls.CountActiveFemales
	mock.lockCountActiveFemales.RUnlock()
	return calls
}

func (mock *statsRepoMock) TotalProductionKg(ctx context.Context) (float64, error) {
	if mock.TotalProductionKgFunc == nil {
		panic("statsRepoMock.TotalProductionKgFunc: method is nil but statsRepo.TotalProductionKg was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockTotalProductionKg.Lock()
	mock.calls.TotalProductionKg = append(mock.calls.TotalProductionKg, callInfo)
	mock.lockTotalProductionKg.Unlock()
	return mock.TotalProductionKgFunc(ctx)
}

func (mock *statsRepoMock) TotalProductionKgCalls() []struct{ Ctx context.Context } {
	mock.lockTotalProductionKg.RLock()
	calls := mock.calls.TotalProductionKg
	mock.lockTotalProductionKg.RUnlock()
	return calls
}

func (mock *statsRepoMock) ExitsByType(ctx context.Context) (map[domain.ExitType]int64, error) {
	if mock.ExitsByTypeFunc == nil {
		panic("statsRepoMock.ExitsByTypeFunc: method is nil but statsRepo.ExitsByType was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockExitsByType.Lock()
	mock.calls.ExitsByType = append(mock.calls.ExitsByType, callInfo)
	mock.lockExitsByType.Unlock()
	return mock.ExitsByTypeFunc(ctx)
}

func (mock *statsRepoMock) ExitsByTypeCalls() []struct{ Ctx context.Context } {
	mock.lockExitsByType.RLock()
	calls := mock.calls.ExitsByType
	mock.lockExitsByType.RUnlock()
	return calls
}

func (mock *statsRepoMock) AnimalsPerFarm(ctx context.Context) ([]domain.FarmCount, error) {
	if mock.AnimalsPerFarmFunc == nil {
		panic("statsRepoMock.AnimalsPerFarmFunc: method is nil but statsRepo.AnimalsPerFarm was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockAnimalsPerFarm.Lock()
	mock.calls.AnimalsPerFarm = append(mock.calls.AnimalsPerFarm, callInfo)
	mock.lockAnimalsPerFarm.Unlock()
	return mock.AnimalsPerFarmFunc(ctx)
}

func (mock *statsRepoMock) AnimalsPerFarmCalls() []struct{ Ctx context.Context } {
	mock.lockAnimalsPerFarm.RLock()
	calls := mock.calls.AnimalsPerFarm
	mock.lockAnimalsPerFarm.RUnlock()
	return calls
}

func (mock *statsRepoMock) SanitaryEventsPerFarm(ctx context.Context) ([]domain.FarmCount, error) {
	if mock.SanitaryEventsPerFarmFunc == nil {
		panic("statsRepoMock.SanitaryEventsPerFarmFunc: method is nil but statsRepo.SanitaryEventsPerFarm was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockSanitaryEventsPerFarm.Lock()
	mock.calls.SanitaryEventsPerFarm = append(mock.calls.SanitaryEventsPerFarm, callInfo)
	mock.lockSanitaryEventsPerFarm.Unlock()
	return mock.SanitaryEventsPerFarmFunc(ctx)
}

func (mock *statsRepoMock) SanitaryEventsPerFarmCalls() []struct{ Ctx context.Context } {
	mock.lockSanitaryEventsPerFarm.RLock()
	calls := mock.calls.SanitaryEventsPerFarm
	mock.lockSanitaryEventsPerFarm.RUnlock()
	return calls
}

func (mock *statsRepoMock) AvgProductionPerFarm(ctx context.Context) ([]domain.FarmAverage, error) {
	if mock.AvgProductionPerFarmFunc == nil {
		panic("statsRepoMock.AvgProductionPerFarmFunc: method is nil but statsRepo.AvgProductionPerFarm was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockAvgProductionPerFarm.Lock()
	mock.calls.AvgProductionPerFarm = append(mock.calls.AvgProductionPerFarm, callInfo)
	mock.lockAvgProductionPerFarm.Unlock()
	return mock.AvgProductionPerFarmFunc(ctx)
}

func (mock *statsRepoMock) AvgProductionPerFarmCalls() []struct{ Ctx context.Context } {
	mock.lockAvgProductionPerFarm.RLock()
	calls := mock.calls.AvgProductionPerFarm
	mock.lockAvgProductionPerFarm.RUnlock()
	return calls
}
