package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "postboard/internal/delivery/context"
	"postboard/internal/domain/entity"
	"postboard/internal/domain/repository"
	"postboard/internal/domain/service"
	"postboard/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type activityService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	mailer   service.Mailer
	logger   *slog.Logger
}

// ActivityServiceParams holds dependencies for ActivityService, injected by Fx.
type ActivityServiceParams struct {
	fx.In

	PostRepo repository.PostRepository
	UserRepo repository.UserRepository
	Mailer   service.Mailer
	Logger   *slog.Logger
}

// NewActivityService is the constructor for activityService.
func NewActivityService(params ActivityServiceParams) usecase.ActivityUsecase {
	return &activityService{
		postRepo: params.PostRepo,
		userRepo: params.UserRepo,
		mailer:   params.Mailer,
		logger:   params.Logger,
	}
}

func (srv *activityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *activityService) HandleActivity(ctx context.Context, event *entity.ActivityEvent) error {
	var verb string
	switch event.Type {
	case entity.ActivityCommentCreated:
		verb = "commented on"
	case entity.ActivityPostLiked:
		verb = "liked"
	default:
		srv.log(ctx).Debug("Ignoring activity event", slog.String("type", string(event.Type)))

		return nil
	}

	post, err := srv.postRepo.FindByID(ctx, event.PostID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			srv.log(ctx).Info("Post of activity event no longer exists", slog.Int64("postID", event.PostID))

			return nil
		}

		return errors.Wrap(err, "load post")
	}

	// Nobody needs to hear about their own likes.
	if post.UserID == event.ActorID {
		return nil
	}

	author, err := srv.userRepo.FindByID(ctx, post.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil
		}

		return errors.Wrap(err, "load post author")
	}

	actorName := "Someone"
	actor, err := srv.userRepo.FindByID(ctx, event.ActorID)
	switch {
	case err == nil:
		actorName = actor.Email
	case !errors.Is(err, repository.ErrUserNotFound):
		return errors.Wrap(err, "load actor")
	}

	msg := &service.MailMessage{
		To:      author.Email,
		Subject: "New activity on your post",
		Text:    fmt.Sprintf("Hi %s! %s %s your post #%d.", author.Email, actorName, verb, post.ID),
	}
	if err := srv.mailer.Send(ctx, msg); err != nil {
		return errors.Wrap(err, "notify post author")
	}

	srv.log(ctx).Info("Notified post author",
		slog.String("type", string(event.Type)),
		slog.Int64("postID", post.ID),
		slog.Int64("authorID", author.ID))

	return nil
}
