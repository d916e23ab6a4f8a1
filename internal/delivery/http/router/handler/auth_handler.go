package handler

import (
	"log/slog"
	"net/http"

	"postboard/config"
	"postboard/internal/delivery/http/response"
	"postboard/internal/domain/entity"
	"postboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const registeredDetail = "User created. Please confirm your email."

// AuthHandler serves registration, confirmation, login and the user listing.
type AuthHandler struct {
	auth     usecase.AuthUsecase
	identity usecase.IdentityUsecase
	cfg      *config.Config
	logger   *slog.Logger
}

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	Auth     usecase.AuthUsecase
	Identity usecase.IdentityUsecase
	Config   *config.Config
	Logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		auth:     params.Auth,
		identity: params.Identity,
		cfg:      params.Config,
		logger:   params.Logger,
	}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerResponse struct {
	ID              int64  `json:"id"`
	Email           string `json:"email"`
	Detail          string `json:"detail"`
	ConfirmationURL string `json:"confirmation_url"`
}

type tokenRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type userResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Confirmed bool   `json:"confirmed"`
}

func newUserResponse(user *entity.User) userResponse {
	return userResponse{ID: user.ID, Email: user.Email, Confirmed: user.Confirmed}
}

// Register handles POST /register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.auth.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:               req.Email,
		Password:            req.Password,
		ConfirmationBaseURL: baseURL(h.cfg, c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, registerResponse{
		ID:              output.User.ID,
		Email:           output.User.Email,
		Detail:          registeredDetail,
		ConfirmationURL: output.ConfirmationURL,
	})
}

// Confirm handles GET /confirm/:token.
func (h *AuthHandler) Confirm(c echo.Context) error {
	if err := h.auth.Confirm(c.Request().Context(), c.Param("token")); err != nil {
		return errors.WithStack(err)
	}

	return response.Detail(c, http.StatusOK, "User confirmed")
}

// Token handles POST /token with form or JSON credentials.
func (h *AuthHandler) Token(c echo.Context) error {
	var req tokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.auth.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tokenResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
	})
}

// ListUsers handles GET /users.
func (h *AuthHandler) ListUsers(c echo.Context) error {
	users, err := h.identity.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]userResponse, 0, len(users))
	for _, user := range users {
		out = append(out, newUserResponse(user))
	}

	return response.Success(c, http.StatusOK, out)
}
