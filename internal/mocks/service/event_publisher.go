package service

import (
	"context"

	"postboard/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockEventPublisher is a mock of service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func NewMockEventPublisher(t testingT) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockEventPublisher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockEventPublisher) EXPECT() *MockEventPublisher_Expecter {
	return &MockEventPublisher_Expecter{mock: &_m.Mock}
}

func (_m *MockEventPublisher) PublishActivity(ctx context.Context, event *entity.ActivityEvent) error {
	return _m.Called(ctx, event).Error(0)
}

func (_e *MockEventPublisher_Expecter) PublishActivity(ctx, event any) *mock.Call {
	return _e.mock.On("PublishActivity", ctx, event)
}

func (_m *MockEventPublisher) Close() error {
	return _m.Called().Error(0)
}

func (_e *MockEventPublisher_Expecter) Close() *mock.Call {
	return _e.mock.On("Close")
}
