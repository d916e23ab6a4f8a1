package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "postboard/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		supplied string
		keep     bool
	}{
		{name: "absent", supplied: "", keep: false},
		{name: "uuid", supplied: "0b6f8c1e-7f3a-4d2b-9c55-1a2b3c4d5e6f", keep: true},
		{name: "trace style", supplied: "trace.42:span_7", keep: true},
		{name: "header injection", supplied: "abc\r\nSet-Cookie: x=1", keep: false},
		{name: "html", supplied: "<script>alert(1)</script>", keep: false},
		{name: "too long", supplied: strings.Repeat("a", deliverycontext.MaxRequestIDLength+1), keep: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			var fromEcho, fromContext string
			e.GET("/", func(c echo.Context) error {
				fromEcho = deliverycontext.GetRequestID(c)
				fromContext = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return c.NoContent(http.StatusNoContent)
			}, NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).Process)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.supplied != "" {
				// Assign directly so raw control characters reach the middleware.
				req.Header[deliverycontext.HeaderXRequestID] = []string{tt.supplied}
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			require.NotEmpty(t, got)
			assert.Equal(t, got, fromEcho)
			assert.Equal(t, got, fromContext)
			if tt.keep {
				assert.Equal(t, tt.supplied, got)

				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err, "a fresh uuid replaces %q", tt.supplied)
		})
	}
}
