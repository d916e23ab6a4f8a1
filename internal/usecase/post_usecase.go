package usecase

import (
	"context"

	"postboard/internal/domain/entity"
)

// CreatePostInput defines the content of a new post.
type CreatePostInput struct {
	Body     string
	ImageURL *string
}

// CreateCommentInput defines the content of a new comment.
type CreateCommentInput struct {
	PostID int64
	Body   string
}

// PostUsecase defines post, comment and like operations. Mutations take the
// already resolved author.
type PostUsecase interface {
	CreatePost(ctx context.Context, author *entity.User, input *CreatePostInput) (*entity.Post, error)
	ListPosts(ctx context.Context, sorting string) ([]*entity.Post, error)
	GetPostWithComments(ctx context.Context, postID int64) (*entity.PostWithComments, error)
	ListComments(ctx context.Context) ([]*entity.Comment, error)
	ListCommentsOnPost(ctx context.Context, postID int64) ([]*entity.Comment, error)
	CreateComment(ctx context.Context, author *entity.User, input *CreateCommentInput) (*entity.Comment, error)
	LikePost(ctx context.Context, author *entity.User, postID int64) (*entity.Like, error)
	PostShareQR(ctx context.Context, postID int64) ([]byte, error)
}
