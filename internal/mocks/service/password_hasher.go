package service

import "github.com/stretchr/testify/mock"

// MockPasswordHasher is a mock of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func NewMockPasswordHasher(t testingT) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockPasswordHasher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPasswordHasher) EXPECT() *MockPasswordHasher_Expecter {
	return &MockPasswordHasher_Expecter{mock: &_m.Mock}
}

func (_m *MockPasswordHasher) Hash(password string) (string, error) {
	ret := _m.Called(password)

	return ret.String(0), ret.Error(1)
}

func (_e *MockPasswordHasher_Expecter) Hash(password any) *mock.Call {
	return _e.mock.On("Hash", password)
}

func (_m *MockPasswordHasher) Verify(password, digest string) bool {
	return _m.Called(password, digest).Bool(0)
}

func (_e *MockPasswordHasher_Expecter) Verify(password, digest any) *mock.Call {
	return _e.mock.On("Verify", password, digest)
}
