package service

import "github.com/stretchr/testify/mock"

// MockQRCodeService is a mock of service.QRCodeService.
type MockQRCodeService struct {
	mock.Mock
}

func NewMockQRCodeService(t testingT) *MockQRCodeService {
	m := &MockQRCodeService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockQRCodeService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockQRCodeService) EXPECT() *MockQRCodeService_Expecter {
	return &MockQRCodeService_Expecter{mock: &_m.Mock}
}

func (_m *MockQRCodeService) GeneratePostShareQR(postID int64) ([]byte, error) {
	ret := _m.Called(postID)

	return returned[[]byte](ret, 0), ret.Error(1)
}

func (_e *MockQRCodeService_Expecter) GeneratePostShareQR(postID any) *mock.Call {
	return _e.mock.On("GeneratePostShareQR", postID)
}
