package mocks

import (
	"context"

	"github.com/grachmannico95/ledger-engine/internal/domain"
	"github.com/grachmannico95/ledger-engine/internal/ledger"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock type for the Repository type
type MockRepository struct {
	mock.Mock
}

type MockRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRepository) EXPECT() *MockRepository_Expecter {
	return &MockRepository_Expecter{mock: &_m.Mock}
}

// CreateRun provides a mock function with given fields: ctx, runID
func (_m *MockRepository) CreateRun(ctx context.Context, runID string) error {
	ret := _m.Called(ctx, runID)

	if len(ret) == 0 {
		panic("no return value specified for CreateRun")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, runID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockRepository_CreateRun_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateRun'
type MockRepository_CreateRun_Call struct {
	*mock.Call
}

// CreateRun is a helper method to define mock.On call
func (_e *MockRepository_Expecter) CreateRun(ctx interface{}, runID interface{}) *MockRepository_CreateRun_Call {
	return &MockRepository_CreateRun_Call{Call: _e.mock.On("CreateRun", ctx, runID)}
}

func (_c *MockRepository_CreateRun_Call) Run(run func(ctx context.Context, runID string)) *MockRepository_CreateRun_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockRepository_CreateRun_Call) Return(_a0 error) *MockRepository_CreateRun_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRepository_CreateRun_Call) RunAndReturn(run func(context.Context, string) error) *MockRepository_CreateRun_Call {
	_c.Call.Return(run)
	return _c
}

// GetRun provides a mock function with given fields: ctx, runID
func (_m *MockRepository) GetRun(ctx context.Context, runID string) (*domain.Run, error) {
	ret := _m.Called(ctx, runID)

	if len(ret) == 0 {
		panic("no return value specified for GetRun")
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

// MockRepository_GetRun_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetRun'
type MockRepository_GetRun_Call struct {
	*mock.Call
}

// GetRun is a helper method to define mock.On call
func (_e *MockRepository_Expecter) GetRun(ctx interface{}, runID interface{}) *MockRepository_GetRun_Call {
	return &MockRepository_GetRun_Call{Call: _e.mock.On("GetRun", ctx, runID)}
}

func (_c *MockRepository_GetRun_Call) Run(run func(ctx context.Context, runID string)) *MockRepository_GetRun_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockRepository_GetRun_Call) Return(_a0 *domain.Run, _a1 error) *MockRepository_GetRun_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockRepository_GetRun_Call) RunAndReturn(run func(context.Context, string) (*domain.Run, error)) *MockRepository_GetRun_Call {
	_c.Call.Return(run)
	return _c
}

// UpdateRunStatus provides a mock function with given fields: ctx, runID, status, reason
func (_m *MockRepository) UpdateRunStatus(ctx context.Context, runID string, status domain.RunStatus, reason string) error {
	ret := _m.Called(ctx, runID, status, reason)

	if len(ret) == 0 {
		panic("no return value specified for UpdateRunStatus")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, domain.RunStatus, string) error); ok {
		r0 = rf(ctx, runID, status, reason)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockRepository_UpdateRunStatus_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateRunStatus'
type MockRepository_UpdateRunStatus_Call struct {
	*mock.Call
}

// UpdateRunStatus is a helper method to define mock.On call
func (_e *MockRepository_Expecter) UpdateRunStatus(ctx interface{}, runID interface{}, status interface{}, reason interface{}) *MockRepository_UpdateRunStatus_Call {
	return &MockRepository_UpdateRunStatus_Call{Call: _e.mock.On("UpdateRunStatus", ctx, runID, status, reason)}
}

func (_c *MockRepository_UpdateRunStatus_Call) Run(run func(ctx context.Context, runID string, status domain.RunStatus, reason string)) *MockRepository_UpdateRunStatus_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(domain.RunStatus), args[3].(string))
	})
	return _c
}

func (_c *MockRepository_UpdateRunStatus_Call) Return(_a0 error) *MockRepository_UpdateRunStatus_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRepository_UpdateRunStatus_Call) RunAndReturn(run func(context.Context, string, domain.RunStatus, string) error) *MockRepository_UpdateRunStatus_Call {
	_c.Call.Return(run)
	return _c
}

// IncrementProcessedRows provides a mock function with given fields: ctx, runID, n
func (_m *MockRepository) IncrementProcessedRows(ctx context.Context, runID string, n int) error {
	ret := _m.Called(ctx, runID, n)

	if len(ret) == 0 {
		panic("no return value specified for IncrementProcessedRows")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, int) error); ok {
		r0 = rf(ctx, runID, n)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockRepository_IncrementProcessedRows_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'IncrementProcessedRows'
type MockRepository_IncrementProcessedRows_Call struct {
	*mock.Call
}

// IncrementProcessedRows is a helper method to define mock.On call
func (_e *MockRepository_Expecter) IncrementProcessedRows(ctx interface{}, runID interface{}, n interface{}) *MockRepository_IncrementProcessedRows_Call {
	return &MockRepository_IncrementProcessedRows_Call{Call: _e.mock.On("IncrementProcessedRows", ctx, runID, n)}
}

func (_c *MockRepository_IncrementProcessedRows_Call) Run(run func(ctx context.Context, runID string, n int)) *MockRepository_IncrementProcessedRows_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(int))
	})
	return _c
}

func (_c *MockRepository_IncrementProcessedRows_Call) Return(_a0 error) *MockRepository_IncrementProcessedRows_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRepository_IncrementProcessedRows_Call) RunAndReturn(run func(context.Context, string, int) error) *MockRepository_IncrementProcessedRows_Call {
	_c.Call.Return(run)
	return _c
}

// IncrementRejectedRows provides a mock function with given fields: ctx, runID, n
func (_m *MockRepository) IncrementRejectedRows(ctx context.Context, runID string, n int) error {
	ret := _m.Called(ctx, runID, n)

	if len(ret) == 0 {
		panic("no return value specified for IncrementRejectedRows")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, int) error); ok {
		r0 = rf(ctx, runID, n)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockRepository_IncrementRejectedRows_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'IncrementRejectedRows'
type MockRepository_IncrementRejectedRows_Call struct {
	*mock.Call
}

// IncrementRejectedRows is a helper method to define mock.On call
func (_e *MockRepository_Expecter) IncrementRejectedRows(ctx interface{}, runID interface{}, n interface{}) *MockRepository_IncrementRejectedRows_Call {
	return &MockRepository_IncrementRejectedRows_Call{Call: _e.mock.On("IncrementRejectedRows", ctx, runID, n)}
}

func (_c *MockRepository_IncrementRejectedRows_Call) Run(run func(ctx context.Context, runID string, n int)) *MockRepository_IncrementRejectedRows_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(int))
	})
	return _c
}

func (_c *MockRepository_IncrementRejectedRows_Call) Return(_a0 error) *MockRepository_IncrementRejectedRows_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRepository_IncrementRejectedRows_Call) RunAndReturn(run func(context.Context, string, int) error) *MockRepository_IncrementRejectedRows_Call {
	_c.Call.Return(run)
	return _c
}

// SaveSnapshot provides a mock function with given fields: ctx, runID, snapshot
func (_m *MockRepository) SaveSnapshot(ctx context.Context, runID string, snapshot domain.Snapshot) error {
	ret := _m.Called(ctx, runID, snapshot)

	if len(ret) == 0 {
		panic("no return value specified for SaveSnapshot")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, domain.Snapshot) error); ok {
		r0 = rf(ctx, runID, snapshot)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockRepository_SaveSnapshot_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SaveSnapshot'
type MockRepository_SaveSnapshot_Call struct {
	*mock.Call
}

// SaveSnapshot is a helper method to define mock.On call
func (_e *MockRepository_Expecter) SaveSnapshot(ctx interface{}, runID interface{}, snapshot interface{}) *MockRepository_SaveSnapshot_Call {
	return &MockRepository_SaveSnapshot_Call{Call: _e.mock.On("SaveSnapshot", ctx, runID, snapshot)}
}

func (_c *MockRepository_SaveSnapshot_Call) Run(run func(ctx context.Context, runID string, snapshot domain.Snapshot)) *MockRepository_SaveSnapshot_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(domain.Snapshot))
	})
	return _c
}

func (_c *MockRepository_SaveSnapshot_Call) Return(_a0 error) *MockRepository_SaveSnapshot_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRepository_SaveSnapshot_Call) RunAndReturn(run func(context.Context, string, domain.Snapshot) error) *MockRepository_SaveSnapshot_Call {
	_c.Call.Return(run)
	return _c
}

// GetAccounts provides a mock function with given fields: ctx, runID
func (_m *MockRepository) GetAccounts(ctx context.Context, runID string) ([]ledger.AccountData, error) {
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

// MockRepository_GetAccounts_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetAccounts'
type MockRepository_GetAccounts_Call struct {
	*mock.Call
}

// GetAccounts is a helper method to define mock.On call
func (_e *MockRepository_Expecter) GetAccounts(ctx interface{}, runID interface{}) *MockRepository_GetAccounts_Call {
	return &MockRepository_GetAccounts_Call{Call: _e.mock.On("GetAccounts", ctx, runID)}
}

func (_c *MockRepository_GetAccounts_Call) Run(run func(ctx context.Context, runID string)) *MockRepository_GetAccounts_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockRepository_GetAccounts_Call) Return(_a0 []ledger.AccountData, _a1 error) *MockRepository_GetAccounts_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockRepository_GetAccounts_Call) RunAndReturn(run func(context.Context, string) ([]ledger.AccountData, error)) *MockRepository_GetAccounts_Call {
	_c.Call.Return(run)
	return _c
}

// GetIssues provides a mock function with given fields: ctx, runID, page, perPage, reason
func (_m *MockRepository) GetIssues(ctx context.Context, runID string, page int, perPage int, reason *string) ([]domain.Issue, int, error) {
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

// MockRepository_GetIssues_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetIssues'
type MockRepository_GetIssues_Call struct {
	*mock.Call
}

// GetIssues is a helper method to define mock.On call
func (_e *MockRepository_Expecter) GetIssues(ctx interface{}, runID interface{}, page interface{}, perPage interface{}, reason interface{}) *MockRepository_GetIssues_Call {
	return &MockRepository_GetIssues_Call{Call: _e.mock.On("GetIssues", ctx, runID, page, perPage, reason)}
}

func (_c *MockRepository_GetIssues_Call) Run(run func(ctx context.Context, runID string, page int, perPage int, reason *string)) *MockRepository_GetIssues_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(int), args[3].(int), args[4].(*string))
	})
	return _c
}

func (_c *MockRepository_GetIssues_Call) Return(_a0 []domain.Issue, _a1 int, _a2 error) *MockRepository_GetIssues_Call {
	_c.Call.Return(_a0, _a1, _a2)
	return _c
}

func (_c *MockRepository_GetIssues_Call) RunAndReturn(run func(context.Context, string, int, int, *string) ([]domain.Issue, int, error)) *MockRepository_GetIssues_Call {
	_c.Call.Return(run)
	return _c
}

// IsEventProcessed provides a mock function with given fields: ctx, eventID
func (_m *MockRepository) IsEventProcessed(ctx context.Context, eventID string) (bool, error) {
	ret := _m.Called(ctx, eventID)

	if len(ret) == 0 {
		panic("no return value specified for IsEventProcessed")
	}

	var r0 bool
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (bool, error)); ok {
		return rf(ctx, eventID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) bool); ok {
		r0 = rf(ctx, eventID)
	} else {
		r0 = ret.Get(0).(bool)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, eventID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockRepository_IsEventProcessed_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'IsEventProcessed'
type MockRepository_IsEventProcessed_Call struct {
	*mock.Call
}

// IsEventProcessed is a helper method to define mock.On call
func (_e *MockRepository_Expecter) IsEventProcessed(ctx interface{}, eventID interface{}) *MockRepository_IsEventProcessed_Call {
	return &MockRepository_IsEventProcessed_Call{Call: _e.mock.On("IsEventProcessed", ctx, eventID)}
}

func (_c *MockRepository_IsEventProcessed_Call) Run(run func(ctx context.Context, eventID string)) *MockRepository_IsEventProcessed_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockRepository_IsEventProcessed_Call) Return(_a0 bool, _a1 error) *MockRepository_IsEventProcessed_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockRepository_IsEventProcessed_Call) RunAndReturn(run func(context.Context, string) (bool, error)) *MockRepository_IsEventProcessed_Call {
	_c.Call.Return(run)
	return _c
}

// MarkEventProcessed provides a mock function with given fields: ctx, eventID
func (_m *MockRepository) MarkEventProcessed(ctx context.Context, eventID string) error {
	ret := _m.Called(ctx, eventID)

	if len(ret) == 0 {
		panic("no return value specified for MarkEventProcessed")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, eventID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockRepository_MarkEventProcessed_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'MarkEventProcessed'
type MockRepository_MarkEventProcessed_Call struct {
	*mock.Call
}

// MarkEventProcessed is a helper method to define mock.On call
func (_e *MockRepository_Expecter) MarkEventProcessed(ctx interface{}, eventID interface{}) *MockRepository_MarkEventProcessed_Call {
	return &MockRepository_MarkEventProcessed_Call{Call: _e.mock.On("MarkEventProcessed", ctx, eventID)}
}

func (_c *MockRepository_MarkEventProcessed_Call) Run(run func(ctx context.Context, eventID string)) *MockRepository_MarkEventProcessed_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockRepository_MarkEventProcessed_Call) Return(_a0 error) *MockRepository_MarkEventProcessed_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRepository_MarkEventProcessed_Call) RunAndReturn(run func(context.Context, string) error) *MockRepository_MarkEventProcessed_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockRepository creates a new instance of MockRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepository {
	m := &MockRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
