package impl

import (
	"context"
	"log/slog"

	deliverycontext "postboard/internal/delivery/context"
	"postboard/internal/domain/entity"
	domainerrors "postboard/internal/domain/errors"
	"postboard/internal/domain/repository"
	"postboard/internal/domain/service"
	"postboard/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type identityService struct {
	userRepo     repository.UserRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve maps an access token to its user.
func (srv *identityService) Resolve(ctx context.Context, accessToken string) (*entity.User, error) {
	email, err := srv.tokenService.Validate(accessToken, entity.TokenKindAccess)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Debug("Token subject has no user", slog.String("email", email))

		return nil, errors.WithStack(domainerrors.ErrIdentityNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve identity")
	}

	return user, nil
}

// ListUsers returns every registered user.
func (srv *identityService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}
