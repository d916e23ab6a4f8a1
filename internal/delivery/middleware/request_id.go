// Package middleware holds echo middleware shared by the API and the worker.
package middleware

import (
	"log/slog"

	deliverycontext "postboard/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware assigns every request an id and a logger carrying it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses a well-formed X-Request-Id from the caller and replaces
// anything else with a fresh UUID before it reaches logs or responses.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		supplied := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		requestID := deliverycontext.RequestIDOrNew(supplied)

		reqLogger := m.logger.With(slog.String("request_id", requestID))
		if supplied != "" && supplied != requestID {
			reqLogger.Debug("Replaced malformed request id", slog.Int("supplied_length", len(supplied)))
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
