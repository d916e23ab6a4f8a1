package service

import (
	"context"

	"postboard/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockMailer is a mock of service.Mailer.
type MockMailer struct {
	mock.Mock
}

func NewMockMailer(t testingT) *MockMailer {
	m := &MockMailer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockMailer_Expecter struct {
	mock *mock.Mock
}

func (_m *MockMailer) EXPECT() *MockMailer_Expecter {
	return &MockMailer_Expecter{mock: &_m.Mock}
}

func (_m *MockMailer) Send(ctx context.Context, msg *service.MailMessage) error {
	return _m.Called(ctx, msg).Error(0)
}

func (_e *MockMailer_Expecter) Send(ctx, msg any) *mock.Call {
	return _e.mock.On("Send", ctx, msg)
}
