package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
	"github.com/heartmarshall/agrotiquiza-backend/internal/service/health"
)

var _ sanitaryService = &sanitaryServiceMock{}

type sanitaryServiceMock struct {
	RecordSanitaryEventFunc func(ctx context.Context, input health.SanitaryInput) (*domain.SanitaryEvent, error)
	GetSanitaryEventFunc    func(ctx context.Context, id int64) (*domain.SanitaryEvent, error)
	UpdateSanitaryEventFunc func(ctx context.Context, input health.UpdateSanitaryInput) (*domain.SanitaryEvent, error)
	DeleteSanitaryEventFunc func(ctx context.Context, id int64) error
	ListSanitaryEventsFunc  func(ctx context.Context, filter domain.SanitaryFilter) ([]*domain.SanitaryEvent, error)

	calls struct {
		RecordSanitaryEvent []struct {
			Ctx   context.Context
			Input health.SanitaryInput
		}
		GetSanitaryEvent []struct {
			Ctx context.Context
			Id  int64
		}
		UpdateSanitaryEvent []struct {
			Ctx   context.Context
			Input health.UpdateSanitaryInput
		}
		DeleteSanitaryEvent []struct {
			Ctx context.Context
			Id  int64
		}
		ListSanitaryEvents []struct {
			Ctx    context.Context
			Filter domain.SanitaryFilter
		}
	}
	lockRecordSanitaryEvent sync.RWMutex
	lockGetSanitaryEvent    sync.RWMutex
	lockUpdateSanitaryEvent sync.RWMutex
	lockDeleteSanitaryEvent sync.RWMutex
	lockListSanitaryEvents  sync.RWMutex
}

func (mock *sanitaryServiceMock) RecordSanitaryEvent(ctx context.Context, input health.SanitaryInput) (*domain.SanitaryEvent, error) {
	if mock.RecordSanitaryEventFunc == nil {
		panic("sanitaryServiceMock.RecordSanitaryEventFunc: method is nil but sanitaryService.RecordSanitaryEvent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input health.SanitaryInput
	}{Ctx: ctx, Input: input}
	mock.lockRecordSanitaryEvent.Lock()
	mock.calls.RecordSanitaryEvent = append(mock.calls.RecordSanitaryEvent, callInfo)
	mock.lockRecordSanitaryEvent.Unlock()
	return mock.RecordSanitaryEventFunc(ctx, input)
}

func (mock *sanitaryServiceMock) RecordSanitaryEventCalls() []struct {
	Ctx   context.Context
	Input health.SanitaryInput
} {
	mock.lockRecordSanitaryEvent.RLock()
	calls := mock.calls.RecordSanitaryEvent
	mock.lockRecordSanitaryEvent.RUnlock()
	return calls
}

func (mock *sanitaryServiceMock) GetSanitaryEvent(ctx context.Context, id int64) (*domain.SanitaryEvent, error) {
	if mock.GetSanitaryEventFunc == nil {
		panic("sanitaryServiceMock.GetSanitaryEventFunc: method is nil but sanitaryService.GetSanitaryEvent was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockGetSanitaryEvent.Lock()
	mock.calls.GetSanitaryEvent = append(mock.calls.GetSanitaryEvent, callInfo)
	mock.lockGetSanitaryEvent.Unlock()
	return mock.GetSanitaryEventFunc(ctx, id)
}

func (mock *sanitaryServiceMock) GetSanitaryEventCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetSanitaryEvent.RLock()
	calls := mock.calls.GetSanitaryEvent
	mock.lockGetSanitaryEvent.RUnlock()
	return calls
}

func (mock *sanitaryServiceMock) UpdateSanitaryEvent(ctx context.Context, input health.UpdateSanitaryInput) (*domain.SanitaryEvent, error) {
	if mock.UpdateSanitaryEventFunc == nil {
		panic("sanitaryServiceMock.UpdateSanitaryEventFunc: method is nil but sanitaryService.UpdateSanitaryEvent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input health.UpdateSanitaryInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateSanitaryEvent.Lock()
	mock.calls.UpdateSanitaryEvent = append(mock.calls.UpdateSanitaryEvent, callInfo)
	mock.lockUpdateSanitaryEvent.Unlock()
	return mock.UpdateSanitaryEventFunc(ctx, input)
}

func (mock *sanitaryServiceMock) UpdateSanitaryEventCalls() []struct {
	Ctx   context.Context
	Input health.UpdateSanitaryInput
} {
	mock.lockUpdateSanitaryEvent.RLock()
	calls := mock.calls.UpdateSanitaryEvent
	mock.lockUpdateSanitaryEvent.RUnlock()
	return calls
}

func (mock *sanitaryServiceMock) DeleteSanitaryEvent(ctx context.Context, id int64) error {
	if mock.DeleteSanitaryEventFunc == nil {
		panic("sanitaryServiceMock.DeleteSanitaryEventFunc: method is nil but sanitaryService.DeleteSanitaryEvent was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockDeleteSanitaryEvent.Lock()
	mock.calls.DeleteSanitaryEvent = append(mock.calls.DeleteSanitaryEvent, callInfo)
	mock.lockDeleteSanitaryEvent.Unlock()
	return mock.DeleteSanitaryEventFunc(ctx, id)
}

func (mock *sanitaryServiceMock) DeleteSanitaryEventCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockDeleteSanitaryEvent.RLock()
	calls := mock.calls.DeleteSanitaryEvent
	mock.lockDeleteSanitaryEvent.RUnlock()
	return calls
}

func (mock *sanitaryServiceMock) ListSanitaryEvents(ctx context.Context, filter domain.SanitaryFilter) ([]*domain.SanitaryEvent, error) {
	if mock.ListSanitaryEventsFunc == nil {
		panic("sanitaryServiceMock.ListSanitaryEventsFunc: method is nil but sanitaryService.ListSanitaryEvents was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.SanitaryFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockListSanitaryEvents.Lock()
	mock.calls.ListSanitaryEvents = append(mock.calls.ListSanitaryEvents, callInfo)
	mock.lockListSanitaryEvents.Unlock()
	return mock.ListSanitaryEventsFunc(ctx, filter)
}

func (mock *sanitaryServiceMock) ListSanitaryEventsCalls() []struct {
	Ctx    context.Context
	Filter domain.SanitaryFilter
} {
	mock.lockListSanitaryEvents.RLock()
	calls := mock.calls.ListSanitaryEvents
	mock.lockListSanitaryEvents.RUnlock()
	return calls
}
