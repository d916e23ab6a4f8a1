package impl

import (
	"context"
	"testing"
	"time"

	"postboard/internal/domain/entity"
	domainerrors "postboard/internal/domain/errors"
	"postboard/internal/domain/repository"
	mockRepo "postboard/internal/mocks/repository"
	mockSvc "postboard/internal/mocks/service"
	"postboard/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type postServiceFixtures struct {
	service     usecase.PostUsecase
	postRepo    *mockRepo.MockPostRepository
	commentRepo *mockRepo.MockCommentRepository
	likeRepo    *mockRepo.MockLikeRepository
	publisher   *mockSvc.MockEventPublisher
	qrService   *mockSvc.MockQRCodeService
}

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func createTestPostService(t *testing.T) postServiceFixtures {
	fx := postServiceFixtures{
		postRepo:    mockRepo.NewMockPostRepository(t),
		commentRepo: mockRepo.NewMockCommentRepository(t),
		likeRepo:    mockRepo.NewMockLikeRepository(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
		qrService:   mockSvc.NewMockQRCodeService(t),
	}

	srv := NewPostService(PostServiceParams{
		PostRepo:    fx.postRepo,
		CommentRepo: fx.commentRepo,
		LikeRepo:    fx.likeRepo,
		Publisher:   fx.publisher,
		QRService:   fx.qrService,
		Logger:      newDiscardLogger(),
	})
	srv.(*postService).now = func() time.Time { return fixedNow }
	fx.service = srv

	return fx
}

func activity(kind entity.ActivityType, actor, post, resource int64) any {
	return mock.MatchedBy(func(e *entity.ActivityEvent) bool {
		return e.Type == kind && e.ActorID == actor && e.PostID == post &&
			e.ResourceID == resource && e.OccurredAt.Equal(fixedNow)
	})
}

func TestPostService_CreatePost(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	author := &entity.User{ID: 5}

	fx.postRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Post) bool { return p.Body == "hello" && p.UserID == 5 })).
		Run(func(args mock.Arguments) { args.Get(1).(*entity.Post).ID = 11 }).
		Return(nil)
	fx.publisher.EXPECT().PublishActivity(ctx, activity(entity.ActivityPostCreated, 5, 11, 11)).Return(nil)

	post, err := fx.service.CreatePost(ctx, author, &usecase.CreatePostInput{Body: "hello"})

	require.NoError(t, err)
	assert.Equal(t, int64(11), post.ID)
	assert.Nil(t, post.ImageURL)
}

func TestPostService_CreatePost_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	fx.postRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishActivity(ctx, mock.Anything).Return(errors.New("broker down"))

	_, err := fx.service.CreatePost(ctx, &entity.User{ID: 1}, &usecase.CreatePostInput{})

	require.NoError(t, err)
}

func TestPostService_ListPosts(t *testing.T) {
	ctx := context.Background()

	for _, tt := range []struct {
		query string
		want  entity.PostSorting
	}{
		{query: "", want: entity.SortNew},
		{query: "old", want: entity.SortOld},
		{query: "most_likes", want: entity.SortMostLikes},
	} {
		t.Run("sorting "+string(tt.want), func(t *testing.T) {
			fx := createTestPostService(t)
			fx.postRepo.EXPECT().List(ctx, tt.want).Return([]*entity.Post{{ID: 1, Likes: 2}}, nil)

			posts, err := fx.service.ListPosts(ctx, tt.query)

			require.NoError(t, err)
			assert.Len(t, posts, 1)
		})
	}

	t.Run("unknown sorting", func(t *testing.T) {
		fx := createTestPostService(t)

		_, err := fx.service.ListPosts(ctx, "random")

		require.ErrorIs(t, err, domainerrors.ErrInvalidSorting)
	})
}

func TestPostService_GetPostWithComments(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		fx := createTestPostService(t)
		fx.postRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.Post{ID: 1, Likes: 3}, nil)
		fx.commentRepo.EXPECT().ListByPost(ctx, int64(1)).Return([]*entity.Comment{{ID: 1}, {ID: 2}}, nil)

		got, err := fx.service.GetPostWithComments(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, int64(3), got.Post.Likes)
		assert.Len(t, got.Comments, 2)
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestPostService(t)
		fx.postRepo.EXPECT().FindByID(ctx, int64(9)).Return(nil, repository.ErrPostNotFound)

		_, err := fx.service.GetPostWithComments(ctx, 9)

		require.ErrorIs(t, err, domainerrors.ErrPostNotFound)
		assert.Contains(t, err.Error(), "Post with id=9 not found")
	})
}

func TestPostService_CreateComment(t *testing.T) {
	ctx := context.Background()
	author := &entity.User{ID: 2}

	t.Run("stored and published", func(t *testing.T) {
		fx := createTestPostService(t)
		fx.postRepo.EXPECT().Exists(ctx, int64(4)).Return(true, nil)
		fx.commentRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(c *entity.Comment) bool { return c.PostID == 4 && c.UserID == 2 })).
			Run(func(args mock.Arguments) { args.Get(1).(*entity.Comment).ID = 8 }).
			Return(nil)
		fx.publisher.EXPECT().PublishActivity(ctx, activity(entity.ActivityCommentCreated, 2, 4, 8)).Return(nil)

		comment, err := fx.service.CreateComment(ctx, author, &usecase.CreateCommentInput{PostID: 4, Body: "nice"})

		require.NoError(t, err)
		assert.Equal(t, "nice", comment.Body)
	})

	t.Run("post missing", func(t *testing.T) {
		fx := createTestPostService(t)
		fx.postRepo.EXPECT().Exists(ctx, int64(4)).Return(false, nil)

		_, err := fx.service.CreateComment(ctx, author, &usecase.CreateCommentInput{PostID: 4, Body: "nice"})

		require.ErrorIs(t, err, domainerrors.ErrPostNotFound)
	})

	t.Run("post deleted concurrently", func(t *testing.T) {
		fx := createTestPostService(t)
		fx.postRepo.EXPECT().Exists(ctx, int64(4)).Return(true, nil)
		fx.commentRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrPostNotFound)

		_, err := fx.service.CreateComment(ctx, author, &usecase.CreateCommentInput{PostID: 4})

		require.ErrorIs(t, err, domainerrors.ErrPostNotFound)
	})
}

func TestPostService_LikePost(t *testing.T) {
	ctx := context.Background()
	author := &entity.User{ID: 2}

	t.Run("liked", func(t *testing.T) {
		fx := createTestPostService(t)
		fx.postRepo.EXPECT().Exists(ctx, int64(4)).Return(true, nil)
		fx.likeRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Like")).
			Run(func(args mock.Arguments) { args.Get(1).(*entity.Like).ID = 30 }).
			Return(nil)
		fx.publisher.EXPECT().PublishActivity(ctx, activity(entity.ActivityPostLiked, 2, 4, 30)).Return(nil)

		like, err := fx.service.LikePost(ctx, author, 4)

		require.NoError(t, err)
		assert.Equal(t, int64(4), like.PostID)
		assert.Equal(t, int64(2), like.UserID)
	})

	t.Run("store unavailable", func(t *testing.T) {
		fx := createTestPostService(t)
		fx.postRepo.EXPECT().Exists(ctx, int64(4)).
			Return(false, domainerrors.NewStoreError("check post", errors.New("down")))

		_, err := fx.service.LikePost(ctx, author, 4)

		require.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
	})
}

func TestPostService_ListCommentsOnPost(t *testing.T) {
	ctx := context.Background()
	fx := createTestPostService(t)
	fx.postRepo.EXPECT().Exists(ctx, int64(4)).Return(true, nil)
	fx.commentRepo.EXPECT().ListByPost(ctx, int64(4)).Return([]*entity.Comment{{ID: 1}}, nil)

	comments, err := fx.service.ListCommentsOnPost(ctx, 4)

	require.NoError(t, err)
	assert.Len(t, comments, 1)
}

func TestPostService_PostShareQR(t *testing.T) {
	ctx := context.Background()

	t.Run("renders", func(t *testing.T) {
		fx := createTestPostService(t)
		fx.postRepo.EXPECT().Exists(ctx, int64(4)).Return(true, nil)
		fx.qrService.EXPECT().GeneratePostShareQR(int64(4)).Return([]byte("png"), nil)

		png, err := fx.service.PostShareQR(ctx, 4)

		require.NoError(t, err)
		assert.Equal(t, []byte("png"), png)
	})

	t.Run("post missing", func(t *testing.T) {
		fx := createTestPostService(t)
		fx.postRepo.EXPECT().Exists(ctx, int64(4)).Return(false, nil)

		_, err := fx.service.PostShareQR(ctx, 4)

		require.ErrorIs(t, err, domainerrors.ErrPostNotFound)
	})
}
