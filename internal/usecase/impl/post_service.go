package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "postboard/internal/delivery/context"
	"postboard/internal/domain/entity"
	domainerrors "postboard/internal/domain/errors"
	"postboard/internal/domain/repository"
	"postboard/internal/domain/service"
	"postboard/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type postService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	likeRepo    repository.LikeRepository
	publisher   service.EventPublisher
	qrService   service.QRCodeService
	logger      *slog.Logger
	now         func() time.Time
}

// PostServiceParams holds dependencies for PostService, injected by Fx.
type PostServiceParams struct {
	fx.In

	PostRepo    repository.PostRepository
	CommentRepo repository.CommentRepository
	LikeRepo    repository.LikeRepository
	Publisher   service.EventPublisher
	QRService   service.QRCodeService
	Logger      *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		postRepo:    params.PostRepo,
		commentRepo: params.CommentRepo,
		likeRepo:    params.LikeRepo,
		publisher:   params.Publisher,
		qrService:   params.QRService,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePost stores a post authored by author.
func (srv *postService) CreatePost(ctx context.Context, author *entity.User, input *usecase.CreatePostInput) (*entity.Post, error) {
	post := &entity.Post{
		Body:     input.Body,
		UserID:   author.ID,
		ImageURL: input.ImageURL,
	}
	if err := srv.postRepo.Create(ctx, post); err != nil {
		return nil, errors.Wrap(err, "failed to create post")
	}

	srv.log(ctx).Info("Post created", slog.Int64("postID", post.ID), slog.Int64("userID", author.ID))
	srv.publish(ctx, entity.ActivityPostCreated, author.ID, post.ID, post.ID)

	return post, nil
}

// ListPosts returns all posts in the requested order.
func (srv *postService) ListPosts(ctx context.Context, sorting string) ([]*entity.Post, error) {
	order, ok := entity.ParsePostSorting(sorting)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrInvalidSorting)
	}

	posts, err := srv.postRepo.List(ctx, order)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	return posts, nil
}

// GetPostWithComments returns a post with its like count and comments.
func (srv *postService) GetPostWithComments(ctx context.Context, postID int64) (*entity.PostWithComments, error) {
	post, err := srv.postRepo.FindByID(ctx, postID)
	if errors.Is(err, repository.ErrPostNotFound) {
		return nil, postNotFound(postID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find post")
	}

	comments, err := srv.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return &entity.PostWithComments{Post: post, Comments: comments}, nil
}

// ListComments returns every comment.
func (srv *postService) ListComments(ctx context.Context) ([]*entity.Comment, error) {
	comments, err := srv.commentRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return comments, nil
}

// ListCommentsOnPost returns the comments of an existing post.
func (srv *postService) ListCommentsOnPost(ctx context.Context, postID int64) ([]*entity.Comment, error) {
	if err := srv.ensurePost(ctx, postID); err != nil {
		return nil, err
	}

	comments, err := srv.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return comments, nil
}

// CreateComment attaches a comment to an existing post.
func (srv *postService) CreateComment(ctx context.Context, author *entity.User, input *usecase.CreateCommentInput) (*entity.Comment, error) {
	if err := srv.ensurePost(ctx, input.PostID); err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		Body:   input.Body,
		PostID: input.PostID,
		UserID: author.ID,
	}
	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, postNotFound(input.PostID)
		}

		return nil, errors.Wrap(err, "failed to create comment")
	}

	srv.publish(ctx, entity.ActivityCommentCreated, author.ID, input.PostID, comment.ID)

	return comment, nil
}

// LikePost records a like. Repeated likes by the same user are all stored.
func (srv *postService) LikePost(ctx context.Context, author *entity.User, postID int64) (*entity.Like, error) {
	if err := srv.ensurePost(ctx, postID); err != nil {
		return nil, err
	}

	like := &entity.Like{PostID: postID, UserID: author.ID}
	if err := srv.likeRepo.Create(ctx, like); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, postNotFound(postID)
		}

		return nil, errors.Wrap(err, "failed to like post")
	}

	srv.publish(ctx, entity.ActivityPostLiked, author.ID, postID, like.ID)

	return like, nil
}

// PostShareQR renders a QR code linking to an existing post.
func (srv *postService) PostShareQR(ctx context.Context, postID int64) ([]byte, error) {
	if err := srv.ensurePost(ctx, postID); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GeneratePostShareQR(postID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return png, nil
}

func (srv *postService) ensurePost(ctx context.Context, postID int64) error {
	exists, err := srv.postRepo.Exists(ctx, postID)
	if err != nil {
		return errors.Wrap(err, "failed to check post")
	}
	if !exists {
		return postNotFound(postID)
	}

	return nil
}

// publish broadcasts an activity event. Failures are logged only.
func (srv *postService) publish(ctx context.Context, kind entity.ActivityType, actorID, postID, resourceID int64) {
	event := &entity.ActivityEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       kind,
		ActorID:    actorID,
		PostID:     postID,
		ResourceID: resourceID,
		OccurredAt: srv.now().UTC(),
	}

	if err := srv.publisher.PublishActivity(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish activity event",
			slog.String("type", string(kind)),
			slog.Int64("postID", postID),
			slog.Any("error", err))
	}
}

func postNotFound(postID int64) error {
	return errors.WithStack(domainerrors.ErrPostNotFound.WithMessage("Post with id=%d not found", postID))
}
