// Package response writes JSON bodies in the shapes clients of the API expect.
package response

import (
	"net/http"

	deliverycontext "postboard/internal/delivery/context"
	domainerrors "postboard/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// DetailResponse is a bare confirmation message.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// Success writes data as the whole response body.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Detail writes {"detail": message}.
func Detail(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, DetailResponse{Detail: message})
}

// Error writes the error body. Field errors are dropped for 5xx and auth failures.
func Error(c echo.Context, statusCode int, errorCode string, message string, fieldErrors any) error {
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		fieldErrors = nil
	}

	if statusCode == http.StatusUnauthorized {
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	}

	return c.JSON(statusCode, domainerrors.ErrorResponse{
		Detail:    message,
		Code:      errorCode,
		Errors:    fieldErrors,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}
