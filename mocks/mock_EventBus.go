package mocks

import (
	"context"

	"github.com/grachmannico95/ledger-engine/internal/eventbus"
	"github.com/stretchr/testify/mock"
)

// MockEventBus is a mock type for the EventBus type
type MockEventBus struct {
	mock.Mock
}

type MockEventBus_Expecter struct {
	mock *mock.Mock
}

func (_m *MockEventBus) EXPECT() *MockEventBus_Expecter {
	return &MockEventBus_Expecter{mock: &_m.Mock}
}

// Publish provides a mock function with given fields: ctx, event
func (_m *MockEventBus) Publish(ctx context.Context, event eventbus.Event) error {
	ret := _m.Called(ctx, event)

	if len(ret) == 0 {
		panic("no return value specified for Publish")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, eventbus.Event) error); ok {
		r0 = rf(ctx, event)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockEventBus_Publish_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Publish'
type MockEventBus_Publish_Call struct {
	*mock.Call
}

// Publish is a helper method to define mock.On call
func (_e *MockEventBus_Expecter) Publish(ctx interface{}, event interface{}) *MockEventBus_Publish_Call {
	return &MockEventBus_Publish_Call{Call: _e.mock.On("Publish", ctx, event)}
}

func (_c *MockEventBus_Publish_Call) Run(run func(ctx context.Context, event eventbus.Event)) *MockEventBus_Publish_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(eventbus.Event))
	})
	return _c
}

func (_c *MockEventBus_Publish_Call) Return(_a0 error) *MockEventBus_Publish_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockEventBus_Publish_Call) RunAndReturn(run func(context.Context, eventbus.Event) error) *MockEventBus_Publish_Call {
	_c.Call.Return(run)
	return _c
}

// Subscribe provides a mock function with given fields: eventType, consumer
func (_m *MockEventBus) Subscribe(eventType eventbus.EventType, consumer eventbus.Consumer) error {
	ret := _m.Called(eventType, consumer)

	if len(ret) == 0 {
		panic("no return value specified for Subscribe")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(eventbus.EventType, eventbus.Consumer) error); ok {
		r0 = rf(eventType, consumer)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockEventBus_Subscribe_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Subscribe'
type MockEventBus_Subscribe_Call struct {
	*mock.Call
}

// Subscribe is a helper method to define mock.On call
func (_e *MockEventBus_Expecter) Subscribe(eventType interface{}, consumer interface{}) *MockEventBus_Subscribe_Call {
	return &MockEventBus_Subscribe_Call{Call: _e.mock.On("Subscribe", eventType, consumer)}
}

func (_c *MockEventBus_Subscribe_Call) Run(run func(eventType eventbus.EventType, consumer eventbus.Consumer)) *MockEventBus_Subscribe_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(eventbus.EventType), args[1].(eventbus.Consumer))
	})
	return _c
}

func (_c *MockEventBus_Subscribe_Call) Return(_a0 error) *MockEventBus_Subscribe_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockEventBus_Subscribe_Call) RunAndReturn(run func(eventbus.EventType, eventbus.Consumer) error) *MockEventBus_Subscribe_Call {
	_c.Call.Return(run)
	return _c
}

// Start provides a mock function with given fields: ctx
func (_m *MockEventBus) Start(ctx context.Context) error {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Start")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockEventBus_Start_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Start'
type MockEventBus_Start_Call struct {
	*mock.Call
}

// Start is a helper method to define mock.On call
func (_e *MockEventBus_Expecter) Start(ctx interface{}) *MockEventBus_Start_Call {
	return &MockEventBus_Start_Call{Call: _e.mock.On("Start", ctx)}
}

func (_c *MockEventBus_Start_Call) Run(run func(ctx context.Context)) *MockEventBus_Start_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockEventBus_Start_Call) Return(_a0 error) *MockEventBus_Start_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockEventBus_Start_Call) RunAndReturn(run func(context.Context) error) *MockEventBus_Start_Call {
	_c.Call.Return(run)
	return _c
}

// Shutdown provides a mock function with given fields: ctx
func (_m *MockEventBus) Shutdown(ctx context.Context) error {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Shutdown")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockEventBus_Shutdown_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Shutdown'
type MockEventBus_Shutdown_Call struct {
	*mock.Call
}

// Shutdown is a helper method to define mock.On call
func (_e *MockEventBus_Expecter) Shutdown(ctx interface{}) *MockEventBus_Shutdown_Call {
	return &MockEventBus_Shutdown_Call{Call: _e.mock.On("Shutdown", ctx)}
}

func (_c *MockEventBus_Shutdown_Call) Run(run func(ctx context.Context)) *MockEventBus_Shutdown_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockEventBus_Shutdown_Call) Return(_a0 error) *MockEventBus_Shutdown_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockEventBus_Shutdown_Call) RunAndReturn(run func(context.Context) error) *MockEventBus_Shutdown_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockEventBus creates a new instance of MockEventBus. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockEventBus(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventBus {
	m := &MockEventBus{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
