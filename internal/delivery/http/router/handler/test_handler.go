package handler

import (
	"net/http"

	"postboard/internal/delivery/http/response"
	"postboard/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TestHandler serves debugging endpoints that are mounted only when test routes are enabled.
type TestHandler struct {
	mailer service.Mailer
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(mailer service.Mailer) *TestHandler {
	return &TestHandler{mailer: mailer}
}

type sendEmailRequest struct {
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Body    string `json:"body" validate:"required"`
}

// SendEmail pushes an arbitrary message through the configured mailer.
func (h *TestHandler) SendEmail(c echo.Context) error {
	var req sendEmailRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err := h.mailer.Send(c.Request().Context(), &service.MailMessage{
		To:      req.To,
		Subject: req.Subject,
		Text:    req.Body,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Detail(c, http.StatusOK, "Email sent")
}

// WhoAmI echoes the identity resolved from the bearer token.
func (h *TestHandler) WhoAmI(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}
