package repository

import (
	"context"

	"postboard/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockPostRepository is a mock of repository.PostRepository.
type MockPostRepository struct {
	mock.Mock
}

// NewMockPostRepository creates a mock whose expectations are asserted on cleanup.
func NewMockPostRepository(t testingT) *MockPostRepository {
	m := &MockPostRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockPostRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPostRepository) EXPECT() *MockPostRepository_Expecter {
	return &MockPostRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockPostRepository) Create(ctx context.Context, post *entity.Post) error {
	return _m.Called(ctx, post).Error(0)
}

func (_e *MockPostRepository_Expecter) Create(ctx, post any) *mock.Call {
	return _e.mock.On("Create", ctx, post)
}

func (_m *MockPostRepository) FindByID(ctx context.Context, id int64) (*entity.Post, error) {
	ret := _m.Called(ctx, id)

	return returned[*entity.Post](ret, 0), ret.Error(1)
}

func (_e *MockPostRepository_Expecter) FindByID(ctx, id any) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_m *MockPostRepository) Exists(ctx context.Context, id int64) (bool, error) {
	ret := _m.Called(ctx, id)

	return ret.Bool(0), ret.Error(1)
}

func (_e *MockPostRepository_Expecter) Exists(ctx, id any) *mock.Call {
	return _e.mock.On("Exists", ctx, id)
}

func (_m *MockPostRepository) List(ctx context.Context, sorting entity.PostSorting) ([]*entity.Post, error) {
	ret := _m.Called(ctx, sorting)

	return returned[[]*entity.Post](ret, 0), ret.Error(1)
}

func (_e *MockPostRepository_Expecter) List(ctx, sorting any) *mock.Call {
	return _e.mock.On("List", ctx, sorting)
}

// MockCommentRepository is a mock of repository.CommentRepository.
type MockCommentRepository struct {
	mock.Mock
}

// NewMockCommentRepository creates a mock whose expectations are asserted on cleanup.
func NewMockCommentRepository(t testingT) *MockCommentRepository {
	m := &MockCommentRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockCommentRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCommentRepository) EXPECT() *MockCommentRepository_Expecter {
	return &MockCommentRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockCommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	return _m.Called(ctx, comment).Error(0)
}

func (_e *MockCommentRepository_Expecter) Create(ctx, comment any) *mock.Call {
	return _e.mock.On("Create", ctx, comment)
}

func (_m *MockCommentRepository) List(ctx context.Context) ([]*entity.Comment, error) {
	ret := _m.Called(ctx)

	return returned[[]*entity.Comment](ret, 0), ret.Error(1)
}

func (_e *MockCommentRepository_Expecter) List(ctx any) *mock.Call {
	return _e.mock.On("List", ctx)
}

func (_m *MockCommentRepository) ListByPost(ctx context.Context, postID int64) ([]*entity.Comment, error) {
	ret := _m.Called(ctx, postID)

	return returned[[]*entity.Comment](ret, 0), ret.Error(1)
}

func (_e *MockCommentRepository_Expecter) ListByPost(ctx, postID any) *mock.Call {
	return _e.mock.On("ListByPost", ctx, postID)
}

// MockLikeRepository is a mock of repository.LikeRepository.
type MockLikeRepository struct {
	mock.Mock
}

// NewMockLikeRepository creates a mock whose expectations are asserted on cleanup.
func NewMockLikeRepository(t testingT) *MockLikeRepository {
	m := &MockLikeRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockLikeRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockLikeRepository) EXPECT() *MockLikeRepository_Expecter {
	return &MockLikeRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockLikeRepository) Create(ctx context.Context, like *entity.Like) error {
	return _m.Called(ctx, like).Error(0)
}

func (_e *MockLikeRepository_Expecter) Create(ctx, like any) *mock.Call {
	return _e.mock.On("Create", ctx, like)
}
