package health

import (
	"context"
	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
	"sync"
)

var _ animalRepo = &animalRepoMock{}

type animalRepoMock struct {
	GetByTagFunc                func(ctx context.Context, tag string) (*domain.Animal, error)
	UpdateReproductiveStateFunc func(ctx context.Context, id int64, s domain.ReproductiveState) error

	calls struct {
		GetByTag []struct {
			Ctx context.Context
			Tag string
		}
		UpdateReproductiveState []struct {
			Ctx context.Context
			Id  int64
			S   domain.ReproductiveState
		}
	}
	lockGetByTag                sync.RWMutex
	lockUpdateReproductiveState sync.RWMutex
}

func (mock *animalRepoMock) GetByTag(ctx context.Context, tag string) (*domain.Animal, error) {
	if mock.GetByTagFunc == nil {
		panic("animalRepoMock.GetByTagFunc: method is nil but animalRepo.GetByTag was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Tag string
	}{Ctx: ctx, Tag: tag}
	mock.lockGetByTag.Lock()
	mock.calls.GetByTag = append(mock.calls.GetByTag, callInfo)
	mock.lockGetByTag.Unlock()
	return mock.GetByTagFunc(ctx, tag)
}

func (mock *animalRepoMock) GetByTagCalls() []struct {
	Ctx context.Context
	Tag string
} {
	mock.lockGetByTag.RLock()
	calls := mock.calls.GetByTag
	mock.lockGetByTag.RUnlock()
	return calls
}

func (mock *animalRepoMock) UpdateReproductiveState(ctx context.Context, id int64, s domain.ReproductiveState) error {
	if mock.UpdateReproductiveStateFunc == nil {
		panic("animalRepoMock.UpdateReproductiveStateFunc: method is nil but animalRepo.UpdateReproductiveState was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
		S   domain.ReproductiveState
	}{Ctx: ctx, Id: id, S: s}
	mock.lockUpdateReproductiveState.Lock()
	mock.calls.UpdateReproductiveState = append(mock.calls.UpdateReproductiveState, callInfo)
	mock.lockUpdateReproductiveState.Unlock()
	return mock.UpdateReproductiveStateFunc(ctx, id, s)
}

func (mock *animalRepoMock) UpdateReproductiveStateCalls() []struct {
	Ctx context.Context
	Id  int64
	S   domain.ReproductiveState
} {
	mock.lockUpdateReproductiveState.RLock()
	calls := mock.calls.UpdateReproductiveState
	mock.lockUpdateReproductiveState.RUnlock()
	return calls
}
