package mocks

import (
	"context"
	"io"

	"github.com/grachmannico95/ledger-engine/internal/domain"
	"github.com/grachmannico95/ledger-engine/internal/ledger"
	"github.com/stretchr/testify/mock"
)

// MockLedgerService is a mock type for the LedgerService type
type MockLedgerService struct {
	mock.Mock
}

type MockLedgerService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockLedgerService) EXPECT() *MockLedgerService_Expecter {
	return &MockLedgerService_Expecter{mock: &_m.Mock}
}

// UploadStatement provides a mock function with given fields: ctx, reader
func (_m *MockLedgerService) UploadStatement(ctx context.Context, reader io.Reader) (string, error) {
	ret := _m.Called(ctx, reader)

	if len(ret) == 0 {
		panic("no return value specified for UploadStatement")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, io.Reader) (string, error)); ok {
		return rf(ctx, reader)
	}
	if rf, ok := ret.Get(0).(func(context.Context, io.Reader) string); ok {
		r0 = rf(ctx, reader)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(context.Context, io.Reader) error); ok {
		r1 = rf(ctx, reader)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockLedgerService_UploadStatement_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UploadStatement'
type MockLedgerService_UploadStatement_Call struct {
	*mock.Call
}

// UploadStatement is a helper method to define mock.On call
func (_e *MockLedgerService_Expecter) UploadStatement(ctx interface{}, reader interface{}) *MockLedgerService_UploadStatement_Call {
	return &MockLedgerService_UploadStatement_Call{Call: _e.mock.On("UploadStatement", ctx, reader)}
}

func (_c *MockLedgerService_UploadStatement_Call) Run(run func(ctx context.Context, reader io.Reader)) *MockLedgerService_UploadStatement_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(io.Reader))
	})
	return _c
}

func (_c *MockLedgerService_UploadStatement_Call) Return(_a0 string, _a1 error) *MockLedgerService_UploadStatement_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockLedgerService_UploadStatement_Call) RunAndReturn(run func(context.Context, io.Reader) (string, error)) *MockLedgerService_UploadStatement_Call {
	_c.Call.Return(run)
	return _c
}

// GetRunStatus provides a mock function with given fields: ctx, runID
func (_m *MockLedgerService) GetRunStatus(ctx context.Context, runID string) (*domain.Run, error) {
	ret := _m.Called(ctx, runID)

	if len(ret) == 0 {
		panic("no return value specified for GetRunStatus")
	}

	var r0 *domain.Run
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*domain.Run, error)); ok {
		return rf(ctx, runID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *domain.Run); ok {
		r0 = rf(ctx, runID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.Run)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, runID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockLedgerService_GetRunStatus_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetRunStatus'
type MockLedgerService_GetRunStatus_Call struct {
	*mock.Call
}

// GetRunStatus is a helper method to define mock.On call
func (_e *MockLedgerService_Expecter) GetRunStatus(ctx interface{}, runID interface{}) *MockLedgerService_GetRunStatus_Call {
	return &MockLedgerService_GetRunStatus_Call{Call: _e.mock.On("GetRunStatus", ctx, runID)}
}

func (_c *MockLedgerService_GetRunStatus_Call) Run(run func(ctx context.Context, runID string)) *MockLedgerService_GetRunStatus_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockLedgerService_GetRunStatus_Call) Return(_a0 *domain.Run, _a1 error) *MockLedgerService_GetRunStatus_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockLedgerService_GetRunStatus_Call) RunAndReturn(run func(context.Context, string) (*domain.Run, error)) *MockLedgerService_GetRunStatus_Call {
	_c.Call.Return(run)
	return _c
}

// GetAccounts provides a mock function with given fields: ctx, runID
func (_m *MockLedgerService) GetAccounts(ctx context.Context, runID string) ([]ledger.AccountData, error) {
	ret := _m.Called(ctx, runID)

	if len(ret) == 0 {
		panic("no return value specified for GetAccounts")
	}

	var r0 []ledger.AccountData
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) ([]ledger.AccountData, error)); ok {
		return rf(ctx, runID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) []ledger.AccountData); ok {
		r0 = rf(ctx, runID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]ledger.AccountData)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, runID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockLedgerService_GetAccounts_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetAccounts'
type MockLedgerService_GetAccounts_Call struct {
	*mock.Call
}

// GetAccounts is a helper method to define mock.On call
func (_e *MockLedgerService_Expecter) GetAccounts(ctx interface{}, runID interface{}) *MockLedgerService_GetAccounts_Call {
	return &MockLedgerService_GetAccounts_Call{Call: _e.mock.On("GetAccounts", ctx, runID)}
}

func (_c *MockLedgerService_GetAccounts_Call) Run(run func(ctx context.Context, runID string)) *MockLedgerService_GetAccounts_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockLedgerService_GetAccounts_Call) Return(_a0 []ledger.AccountData, _a1 error) *MockLedgerService_GetAccounts_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockLedgerService_GetAccounts_Call) RunAndReturn(run func(context.Context, string) ([]ledger.AccountData, error)) *MockLedgerService_GetAccounts_Call {
	_c.Call.Return(run)
	return _c
}

// GetIssues provides a mock function with given fields: ctx, runID, page, perPage, reason
func (_m *MockLedgerService) GetIssues(ctx context.Context, runID string, page int, perPage int, reason *string) ([]domain.Issue, int, error) {
	ret := _m.Called(ctx, runID, page, perPage, reason)

	if len(ret) == 0 {
		panic("no return value specified for GetIssues")
	}

	var r0 []domain.Issue
	var r1 int
	var r2 error
	if rf, ok := ret.Get(0).(func(context.Context, string, int, int, *string) ([]domain.Issue, int, error)); ok {
		return rf(ctx, runID, page, perPage, reason)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, int, int, *string) []domain.Issue); ok {
		r0 = rf(ctx, runID, page, perPage, reason)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.Issue)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, int, int, *string) int); ok {
		r1 = rf(ctx, runID, page, perPage, reason)
	} else {
		r1 = ret.Get(1).(int)
	}

	if rf, ok := ret.Get(2).(func(context.Context, string, int, int, *string) error); ok {
		r2 = rf(ctx, runID, page, perPage, reason)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// MockLedgerService_GetIssues_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetIssues'
type MockLedgerService_GetIssues_Call struct {
	*mock.Call
}

// GetIssues is a helper method to define mock.On call
func (_e *MockLedgerService_Expecter) GetIssues(ctx interface{}, runID interface{}, page interface{}, perPage interface{}, reason interface{}) *MockLedgerService_GetIssues_Call {
	return &MockLedgerService_GetIssues_Call{Call: _e.mock.On("GetIssues", ctx, runID, page, perPage, reason)}
}

func (_c *MockLedgerService_GetIssues_Call) Run(run func(ctx context.Context, runID string, page int, perPage int, reason *string)) *MockLedgerService_GetIssues_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(int), args[3].(int), args[4].(*string))
	})
	return _c
}

func (_c *MockLedgerService_GetIssues_Call) Return(_a0 []domain.Issue, _a1 int, _a2 error) *MockLedgerService_GetIssues_Call {
	_c.Call.Return(_a0, _a1, _a2)
	return _c
}

func (_c *MockLedgerService_GetIssues_Call) RunAndReturn(run func(context.Context, string, int, int, *string) ([]domain.Issue, int, error)) *MockLedgerService_GetIssues_Call {
	_c.Call.Return(run)
	return _c
}

// SubmitAction provides a mock function with given fields: ctx, action
func (_m *MockLedgerService) SubmitAction(ctx context.Context, action ledger.Action) (string, error) {
	ret := _m.Called(ctx, action)

	if len(ret) == 0 {
		panic("no return value specified for SubmitAction")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, ledger.Action) (string, error)); ok {
		return rf(ctx, action)
	}
	if rf, ok := ret.Get(0).(func(context.Context, ledger.Action) string); ok {
		r0 = rf(ctx, action)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(context.Context, ledger.Action) error); ok {
		r1 = rf(ctx, action)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockLedgerService_SubmitAction_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SubmitAction'
type MockLedgerService_SubmitAction_Call struct {
	*mock.Call
}

// SubmitAction is a helper method to define mock.On call
func (_e *MockLedgerService_Expecter) SubmitAction(ctx interface{}, action interface{}) *MockLedgerService_SubmitAction_Call {
	return &MockLedgerService_SubmitAction_Call{Call: _e.mock.On("SubmitAction", ctx, action)}
}

func (_c *MockLedgerService_SubmitAction_Call) Run(run func(ctx context.Context, action ledger.Action)) *MockLedgerService_SubmitAction_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(ledger.Action))
	})
	return _c
}

func (_c *MockLedgerService_SubmitAction_Call) Return(_a0 string, _a1 error) *MockLedgerService_SubmitAction_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockLedgerService_SubmitAction_Call) RunAndReturn(run func(context.Context, ledger.Action) (string, error)) *MockLedgerService_SubmitAction_Call {
	_c.Call.Return(run)
	return _c
}

// LiveAccounts provides a mock function with given fields: ctx
func (_m *MockLedgerService) LiveAccounts(ctx context.Context) []ledger.AccountData {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for LiveAccounts")
	}

	var r0 []ledger.AccountData
	if rf, ok := ret.Get(0).(func(context.Context) []ledger.AccountData); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]ledger.AccountData)
		}
	}

	return r0
}

// MockLedgerService_LiveAccounts_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'LiveAccounts'
type MockLedgerService_LiveAccounts_Call struct {
	*mock.Call
}

// LiveAccounts is a helper method to define mock.On call
func (_e *MockLedgerService_Expecter) LiveAccounts(ctx interface{}) *MockLedgerService_LiveAccounts_Call {
	return &MockLedgerService_LiveAccounts_Call{Call: _e.mock.On("LiveAccounts", ctx)}
}

func (_c *MockLedgerService_LiveAccounts_Call) Run(run func(ctx context.Context)) *MockLedgerService_LiveAccounts_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockLedgerService_LiveAccounts_Call) Return(_a0 []ledger.AccountData) *MockLedgerService_LiveAccounts_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockLedgerService_LiveAccounts_Call) RunAndReturn(run func(context.Context) []ledger.AccountData) *MockLedgerService_LiveAccounts_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockLedgerService creates a new instance of MockLedgerService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockLedgerService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLedgerService {
	m := &MockLedgerService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
