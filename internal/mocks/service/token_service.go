package service

import (
	"postboard/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockTokenService is a mock of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func NewMockTokenService(t testingT) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockTokenService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenService) EXPECT() *MockTokenService_Expecter {
	return &MockTokenService_Expecter{mock: &_m.Mock}
}

func (_m *MockTokenService) Issue(subject string, kind entity.TokenKind) (string, error) {
	ret := _m.Called(subject, kind)

	return ret.String(0), ret.Error(1)
}

func (_e *MockTokenService_Expecter) Issue(subject, kind any) *mock.Call {
	return _e.mock.On("Issue", subject, kind)
}

func (_m *MockTokenService) Validate(token string, expected entity.TokenKind) (string, error) {
	ret := _m.Called(token, expected)

	return ret.String(0), ret.Error(1)
}

func (_e *MockTokenService_Expecter) Validate(token, expected any) *mock.Call {
	return _e.mock.On("Validate", token, expected)
}
