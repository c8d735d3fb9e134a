package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/agrotiquiza-backend/internal/service/user"
)

var _ passwordService = &passwordServiceMock{}

type passwordServiceMock struct {
	ChangePasswordFunc func(ctx context.Context, input user.ChangePasswordInput) error

	calls struct {
		ChangePassword []struct {
			Ctx   context.Context
			Input user.ChangePasswordInput
		}
	}
	lockChangePassword sync.RWMutex
}

func (mock *passwordServiceMock) ChangePassword(ctx context.Context, input user.ChangePasswordInput) error {
	if mock.ChangePasswordFunc == nil {
		panic("passwordServiceMock.ChangePasswordFunc: method is nil but passwordService.ChangePassword was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.ChangePasswordInput
	}{Ctx: ctx, Input: input}
	mock.lockChangePassword.Lock()
	mock.calls.ChangePassword = append(mock.calls.ChangePassword, callInfo)
	mock.lockChangePassword.Unlock()
	return mock.ChangePasswordFunc(ctx, input)
}

func (mock *passwordServiceMock) ChangePasswordCalls() []struct {
	Ctx   context.Context
	Input user.ChangePasswordInput
} {
	mock.lockChangePassword.RLock()
	calls := mock.calls.ChangePassword
	mock.lockChangePassword.RUnlock()
	return calls
}
