package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
	"github.com/heartmarshall/agrotiquiza-backend/internal/service/livestock"
)

var _ animalService = &animalServiceMock{}

type animalServiceMock struct {
	LookupByTagFunc    func(ctx context.Context, tag string) (*domain.Animal, error)
	CreateAnimalFunc   func(ctx context.Context, input livestock.CreateAnimalInput) (*domain.Animal, error)
	GetAnimalFunc      func(ctx context.Context, id int64) (*domain.AnimalDetail, error)
	SearchAnimalsFunc  func(ctx context.Context, filter domain.AnimalFilter) ([]*domain.Animal, int, error)
	SetMotherFunc      func(ctx context.Context, animalID int64, motherID *int64) (*domain.Animal, error)
	RecordWeighingFunc func(ctx context.Context, input livestock.WeighingInput) (*domain.Weighing, error)
	ListWeighingsFunc  func(ctx context.Context, tag string) ([]*domain.Weighing, error)

	calls struct {
		LookupByTag []struct {
			Ctx context.Context
			Tag string
		}
		CreateAnimal []struct {
			Ctx   context.Context
			Input livestock.CreateAnimalInput
		}
		GetAnimal []struct {
			Ctx context.Context
			Id  int64
		}
		SearchAnimals []struct {
			Ctx    context.Context
			Filter domain.AnimalFilter
		}
		SetMother []struct {
			Ctx      context.Context
			AnimalID int64
			MotherID *int64
		}
		RecordWeighing []struct {
			Ctx   context.Context
			Input livestock.WeighingInput
		}
		ListWeighings []struct {
			Ctx context.Context
			Tag string
		}
	}
	lockLookupByTag    sync.RWMutex
	lockCreateAnimal   sync.RWMutex
	lockGetAnimal      sync.RWMutex
	lockSearchAnimals  sync.RWMutex
	lockSetMother      sync.RWMutex
	lockRecordWeighing sync.RWMutex
	lockListWeighings  sync.RWMutex
}

func (mock *animalServiceMock) LookupByTag(ctx context.Context, tag string) (*domain.Animal, error) {
	if mock.LookupByTagFunc == nil {
		panic("animalServiceMock.LookupByTagFunc: method is nil but animalService.LookupByTag was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Tag string
	}{Ctx: ctx, Tag: tag}
	mock.lockLookupByTag.Lock()
	mock.calls.LookupByTag = append(mock.calls.LookupByTag, callInfo)
	mock.lockLookupByTag.Unlock()
	return mock.LookupByTagFunc(ctx, tag)
}

func (mock *animalServiceMock) LookupByTagCalls() []struct {
	Ctx context.Context
	Tag string
} {
	mock.lockLookupByTag.RLock()
	calls := mock.calls.LookupByTag
	mock.lockLookupByTag.RUnlock()
	return calls
}

func (mock *animalServiceMock) CreateAnimal(ctx context.Context, input livestock.CreateAnimalInput) (*domain.Animal, error) {
	if mock.CreateAnimalFunc == nil {
		panic("animalServiceMock.CreateAnimalFunc: method is nil but animalService.CreateAnimal was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input livestock.CreateAnimalInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateAnimal.Lock()
	mock.calls.CreateAnimal = append(mock.calls.CreateAnimal, callInfo)
	mock.lockCreateAnimal.Unlock()
	return mock.CreateAnimalFunc(ctx, input)
}

func (mock *animalServiceMock) CreateAnimalCalls() []struct {
	Ctx   context.Context
	Input livestock.CreateAnimalInput
} {
	mock.lockCreateAnimal.RLock()
	calls := mock.calls.CreateAnimal
	mock.lockCreateAnimal.RUnlock()
	return calls
}

func (mock *animalServiceMock) GetAnimal(ctx context.Context, id int64) (*domain.AnimalDetail, error) {
	if mock.GetAnimalFunc == nil {
		panic("animalServiceMock.GetAnimalFunc: method is nil but animalService.GetAnimal was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockGetAnimal.Lock()
	mock.calls.GetAnimal = append(mock.calls.GetAnimal, callInfo)
	mock.lockGetAnimal.Unlock()
	return mock.GetAnimalFunc(ctx, id)
}

func (mock *animalServiceMock) GetAnimalCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetAnimal.RLock()
	calls := mock.calls.GetAnimal
	mock.lockGetAnimal.RUnlock()
	return calls
}

func (mock *animalServiceMock) SearchAnimals(ctx context.Context, filter domain.AnimalFilter) ([]*domain.Animal, int, error) {
	if mock.SearchAnimalsFunc == nil {
		panic("animalServiceMock.SearchAnimalsFunc: method is nil but animalService.SearchAnimals was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.AnimalFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockSearchAnimals.Lock()
	mock.calls.SearchAnimals = append(mock.calls.SearchAnimals, callInfo)
	mock.lockSearchAnimals.Unlock()
	return mock.SearchAnimalsFunc(ctx, filter)
}

func (mock *animalServiceMock) SearchAnimalsCalls() []struct {
	Ctx    context.Context
	Filter domain.AnimalFilter
} {
	mock.lockSearchAnimals.RLock()
	calls := mock.calls.SearchAnimals
	mock.lockSearchAnimals.RUnlock()
	return calls
}

func (mock *animalServiceMock) SetMother(ctx context.Context, animalID int64, motherID *int64) (*domain.Animal, error) {
	if mock.SetMotherFunc == nil {
		panic("animalServiceMock.SetMotherFunc: method is nil but animalService.SetMother was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AnimalID int64
		MotherID *int64
	}{Ctx: ctx, AnimalID: animalID, MotherID: motherID}
	mock.lockSetMother.Lock()
	mock.calls.SetMother = append(mock.calls.SetMother, callInfo)
	mock.lockSetMother.Unlock()
	return mock.SetMotherFunc(ctx, animalID, motherID)
}

func (mock *animalServiceMock) SetMotherCalls() []struct {
	Ctx      context.Context
	AnimalID int64
	MotherID *int64
} {
	mock.lockSetMother.RLock()
	calls := mock.calls.SetMother
	mock.lockSetMother.RUnlock()
	return calls
}

func (mock *animalServiceMock) RecordWeighing(ctx context.Context, input livestock.WeighingInput) (*domain.Weighing, error) {
	if mock.RecordWeighingFunc == nil {
		panic("animalServiceMock.RecordWeighingFunc: method is nil but animalService.RecordWeighing was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input livestock.WeighingInput
	}{Ctx: ctx, Input: input}
	mock.lockRecordWeighing.Lock()
	mock.calls.RecordWeighing = append(mock.calls.RecordWeighing, callInfo)
	mock.lockRecordWeighing.Unlock()
	return mock.RecordWeighingFunc(ctx, input)
}

func (mock *animalServiceMock) RecordWeighingCalls() []struct {
	Ctx   context.Context
	Input livestock.WeighingInput
} {
	mock.lockRecordWeighing.RLock()
	calls := mock.calls.RecordWeighing
	mock.lockRecordWeighing.RUnlock()
	return calls
}

func (mock *animalServiceMock) ListWeighings(ctx context.Context, tag string) ([]*domain.Weighing, error) {
	if mock.ListWeighingsFunc == nil {
		panic("animalServiceMock.ListWeighingsFunc: method is nil but animalService.ListWeighings was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Tag string
	}{Ctx: ctx, Tag: tag}
	mock.lockListWeighings.Lock()
	mock.calls.ListWeighings = append(mock.calls.ListWeighings, callInfo)
	mock.lockListWeighings.Unlock()
	return mock.ListWeighingsFunc(ctx, tag)
}

func (mock *animalServiceMock) ListWeighingsCalls() []struct {
	Ctx context.Context
	Tag string
} {
	mock.lockListWeighings.RLock()
	calls := mock.calls.ListWeighings
	mock.lockListWeighings.RUnlock()
	return calls
}
