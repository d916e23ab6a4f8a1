package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "postboard/internal/delivery/context"
	domainerrors "postboard/internal/domain/errors"
	"postboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerScheme = "Bearer"

// AuthMiddleware resolves the bearer token of a request to a user.
type AuthMiddleware struct {
	identity usecase.IdentityUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(identity usecase.IdentityUsecase) *AuthMiddleware {
	return &AuthMiddleware{identity: identity}
}

// Authenticate rejects the request unless it carries a valid access token of an existing user.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return errors.WithStack(domainerrors.ErrNotAuthenticated)
		}

		ctx := c.Request().Context()
		user, err := m.identity.Resolve(ctx, token)
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetUser(c, user)

		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.Int64("user_id", user.ID)))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

// bearerToken extracts the credentials of an "Authorization: Bearer <token>" header.
// The scheme is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}
