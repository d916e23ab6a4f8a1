package repository

import (
	"context"
	"errors"

	"postboard/internal/domain/entity"
)

// ErrPostNotFound is returned when a post id does not exist.
var ErrPostNotFound = errors.New("post not found")

// PostRepository persists posts and answers like-count aware queries.
type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error

	// FindByID returns the post with its like count.
	FindByID(ctx context.Context, id int64) (*entity.Post, error)

	// Exists reports whether a post with the id is stored.
	Exists(ctx context.Context, id int64) (bool, error)

	// List returns every post with its like count in the requested order.
	List(ctx context.Context, sorting entity.PostSorting) ([]*entity.Post, error)
}

// CommentRepository persists comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error

	// List returns every comment ordered by id.
	List(ctx context.Context) ([]*entity.Comment, error)

	// ListByPost returns the comments of a post ordered by id.
	ListByPost(ctx context.Context, postID int64) ([]*entity.Comment, error)
}

// LikeRepository persists likes.
type LikeRepository interface {
	Create(ctx context.Context, like *entity.Like) error
}
