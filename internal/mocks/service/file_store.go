package service

import (
	"context"
	"io"

	"postboard/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockFileStore is a mock of service.FileStore.
type MockFileStore struct {
	mock.Mock
}

func NewMockFileStore(t testingT) *MockFileStore {
	m := &MockFileStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockFileStore_Expecter struct {
	mock *mock.Mock
}

func (_m *MockFileStore) EXPECT() *MockFileStore_Expecter {
	return &MockFileStore_Expecter{mock: &_m.Mock}
}

func (_m *MockFileStore) Put(ctx context.Context, key, contentType string, r io.Reader) error {
	return _m.Called(ctx, key, contentType, r).Error(0)
}

func (_e *MockFileStore_Expecter) Put(ctx, key, contentType, r any) *mock.Call {
	return _e.mock.On("Put", ctx, key, contentType, r)
}

func (_m *MockFileStore) List(ctx context.Context, prefix string) ([]*entity.StoredFile, error) {
	ret := _m.Called(ctx, prefix)

	return returned[[]*entity.StoredFile](ret, 0), ret.Error(1)
}

func (_e *MockFileStore_Expecter) List(ctx, prefix any) *mock.Call {
	return _e.mock.On("List", ctx, prefix)
}

func (_m *MockFileStore) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	ret := _m.Called(ctx, key)

	return returned[io.ReadCloser](ret, 0), ret.String(1), ret.Error(2)
}

func (_e *MockFileStore_Expecter) Open(ctx, key any) *mock.Call {
	return _e.mock.On("Open", ctx, key)
}

func (_m *MockFileStore) URL(key string) string {
	return _m.Called(key).String(0)
}

func (_e *MockFileStore_Expecter) URL(key any) *mock.Call {
	return _e.mock.On("URL", key)
}
