package repository

import (
	"context"

	"postboard/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a mock of repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

// NewMockTransactionManager creates a mock whose expectations are asserted on cleanup.
func NewMockTransactionManager(t testingT) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockTransactionManager_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTransactionManager) EXPECT() *MockTransactionManager_Expecter {
	return &MockTransactionManager_Expecter{mock: &_m.Mock}
}

// Execute records the call. When the expectation returns a function of the
// same signature it is invoked, so a test can run fn against mocked repositories.
func (_m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	ret := _m.Called(ctx, fn)

	if rf, ok := ret.Get(0).(func(context.Context, func(repository.RepositoryFactory) error) error); ok {
		return rf(ctx, fn)
	}

	return ret.Error(0)
}

func (_e *MockTransactionManager_Expecter) Execute(ctx, fn any) *mock.Call {
	return _e.mock.On("Execute", ctx, fn)
}

// MockRepositoryFactory is a mock of repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

// NewMockRepositoryFactory creates a mock whose expectations are asserted on cleanup.
func NewMockRepositoryFactory(t testingT) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockRepositoryFactory_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRepositoryFactory) EXPECT() *MockRepositoryFactory_Expecter {
	return &MockRepositoryFactory_Expecter{mock: &_m.Mock}
}

func (_m *MockRepositoryFactory) NewUserRepository() repository.UserRepository {
	return returned[repository.UserRepository](_m.Called(), 0)
}

func (_e *MockRepositoryFactory_Expecter) NewUserRepository() *mock.Call {
	return _e.mock.On("NewUserRepository")
}

func (_m *MockRepositoryFactory) NewPostRepository() repository.PostRepository {
	return returned[repository.PostRepository](_m.Called(), 0)
}

func (_e *MockRepositoryFactory_Expecter) NewPostRepository() *mock.Call {
	return _e.mock.On("NewPostRepository")
}

func (_m *MockRepositoryFactory) NewCommentRepository() repository.CommentRepository {
	return returned[repository.CommentRepository](_m.Called(), 0)
}

func (_e *MockRepositoryFactory_Expecter) NewCommentRepository() *mock.Call {
	return _e.mock.On("NewCommentRepository")
}

func (_m *MockRepositoryFactory) NewLikeRepository() repository.LikeRepository {
	return returned[repository.LikeRepository](_m.Called(), 0)
}

func (_e *MockRepositoryFactory_Expecter) NewLikeRepository() *mock.Call {
	return _e.mock.On("NewLikeRepository")
}
