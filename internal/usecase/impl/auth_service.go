// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"html"
	"log/slog"

	"postboard/config"
	deliverycontext "postboard/internal/delivery/context"
	"postboard/internal/domain/entity"
	domainerrors "postboard/internal/domain/errors"
	"postboard/internal/domain/repository"
	"postboard/internal/domain/service"
	"postboard/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	tokenTypeBearer     = "bearer"
	confirmEmailSubject = "Successfully signed up"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	mailer       service.Mailer
	strictMailer bool
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Mailer       service.Mailer
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	strict := false
	if params.Config != nil && params.Config.Mail != nil {
		strict = params.Config.Mail.StrictMailerErrors
	}

	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		mailer:       params.Mailer,
		strictMailer: strict,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register stores an unconfirmed user and sends the confirmation link.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	digest, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	var (
		registered *entity.User
		mail       *service.MailMessage
		link       string
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		existing, err := userRepo.FindByEmail(ctx, input.Email)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to look up email")
		}
		if existing != nil {
			return domainerrors.ErrDuplicateIdentity.WithMessage("User with email already existed: %s", input.Email)
		}

		user := &entity.User{
			Email:        input.Email,
			PasswordHash: digest,
			Confirmed:    false,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		token, err := srv.tokenService.Issue(user.Email, entity.TokenKindConfirmation)
		if err != nil {
			return errors.Wrap(err, "failed to issue confirmation token")
		}

		registered = user
		link = confirmationURL(input.ConfirmationBaseURL, token)
		mail = confirmationMail(user.Email, link)

		// In strict mode a delivery failure must roll the insert back.
		if srv.strictMailer {
			return srv.mailer.Send(ctx, mail)
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	if !srv.strictMailer {
		if err := srv.mailer.Send(ctx, mail); err != nil {
			srv.log(ctx).Warn("Failed to send confirmation email",
				slog.String("email", input.Email),
				slog.Int64("userID", registered.ID),
				slog.Any("error", err))
		}
	}

	srv.log(ctx).Info("Registration completed", slog.Int64("userID", registered.ID))

	return &usecase.RegisterOutput{User: registered, ConfirmationURL: link}, nil
}

// Confirm marks the user named by a confirmation token as confirmed.
// Confirming an already confirmed user succeeds without changes.
func (srv *authService) Confirm(ctx context.Context, token string) error {
	email, err := srv.tokenService.Validate(token, entity.TokenKindConfirmation)
	if err != nil {
		return err
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return errors.WithStack(domainerrors.ErrIdentityNotFound)
	}
	if err != nil {
		return errors.Wrap(err, "failed to find user")
	}

	if user.Confirmed {
		srv.log(ctx).Debug("User already confirmed", slog.Int64("userID", user.ID))

		return nil
	}

	if err := srv.userRepo.MarkConfirmed(ctx, user.ID); err != nil {
		return errors.Wrap(err, "failed to confirm user")
	}

	srv.log(ctx).Info("User confirmed", slog.Int64("userID", user.ID))

	return nil
}

// Login verifies credentials and issues an access token. Every credential
// problem surfaces as the same AuthenticationFailed error.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, srv.loginFailed(ctx, input.Email, "unknown email")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, srv.loginFailed(ctx, input.Email, "password mismatch")
	}

	if !user.Confirmed {
		return nil, srv.loginFailed(ctx, input.Email, "user email not confirmed")
	}

	token, err := srv.tokenService.Issue(user.Email, entity.TokenKindAccess)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Info("User logged in", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{AccessToken: token, TokenType: tokenTypeBearer}, nil
}

func (srv *authService) loginFailed(ctx context.Context, email, reason string) error {
	srv.log(ctx).Info("Login rejected", slog.String("email", email), slog.String("reason", reason))

	return errors.Wrap(domainerrors.ErrAuthenticationFailed, reason)
}

func confirmationURL(base, token string) string {
	return base + "/confirm/" + token
}

func confirmationMail(to, link string) *service.MailMessage {
	htmlTo, htmlLink := html.EscapeString(to), html.EscapeString(link)

	return &service.MailMessage{
		To:      to,
		Subject: confirmEmailSubject,
		Text: "Hi " + to + "! You have successfully signed up to our system." +
			" Please confirm your email by clicking on the following link: " + link,
		HTML: `<p>Hi ` + htmlTo + `!</p><p>Please confirm your email: <a href="` + htmlLink + `">` + htmlLink + `</a></p>`,
	}
}
