// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"

	"postboard/config"
	"postboard/internal/delivery/http/response"
	"postboard/internal/delivery/http/validator"
	domainerrors "postboard/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// bindAndValidate binds the request into req and runs struct validation.
// Malformed bodies are reported as validation failures.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) && httpErr.Code == http.StatusRequestEntityTooLarge {
			return err
		}

		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	return errors.WithStack(c.Validate(req))
}

// pathID parses a positive numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.WithStack(&validator.ValidationError{
			BaseError: domainerrors.ErrValidationFailed,
			Fields:    []validator.FieldError{{Field: name, Rule: "gt", Param: "0"}},
		})
	}

	return id, nil
}

// baseURL returns the configured public URL or, in develop where it may be
// unset, the scheme and host of the request.
func baseURL(cfg *config.Config, c echo.Context) string {
	if cfg != nil && cfg.HTTP.PublicURL != "" {
		return cfg.HTTP.PublicURL
	}

	return c.Scheme() + "://" + c.Request().Host
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
