package repository

import (
	"context"

	"postboard/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a mock whose expectations are asserted on cleanup.
func NewMockUserRepository(t testingT) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockUserRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUserRepository) EXPECT() *MockUserRepository_Expecter {
	return &MockUserRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	ret := _m.Called(ctx, id)

	return returned[*entity.User](ret, 0), ret.Error(1)
}

func (_e *MockUserRepository_Expecter) FindByID(ctx, id any) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	ret := _m.Called(ctx, email)

	return returned[*entity.User](ret, 0), ret.Error(1)
}

func (_e *MockUserRepository_Expecter) FindByEmail(ctx, email any) *mock.Call {
	return _e.mock.On("FindByEmail", ctx, email)
}

func (_m *MockUserRepository) List(ctx context.Context) ([]*entity.User, error) {
	ret := _m.Called(ctx)

	return returned[[]*entity.User](ret, 0), ret.Error(1)
}

func (_e *MockUserRepository_Expecter) List(ctx any) *mock.Call {
	return _e.mock.On("List", ctx)
}

func (_m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return _m.Called(ctx, user).Error(0)
}

func (_e *MockUserRepository_Expecter) Create(ctx, user any) *mock.Call {
	return _e.mock.On("Create", ctx, user)
}

func (_m *MockUserRepository) MarkConfirmed(ctx context.Context, id int64) error {
	return _m.Called(ctx, id).Error(0)
}

func (_e *MockUserRepository_Expecter) MarkConfirmed(ctx, id any) *mock.Call {
	return _e.mock.On("MarkConfirmed", ctx, id)
}
