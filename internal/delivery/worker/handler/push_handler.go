package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"postboard/config"
	deliverycontext "postboard/internal/delivery/context"
	"postboard/internal/domain/constants"
	"postboard/internal/domain/entity"
	domainerrors "postboard/internal/domain/errors"
	"postboard/internal/usecase"
	"postboard/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// tokenValidator checks a Google-signed OIDC token for the given audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler handles Pub/Sub push messages carrying activity events
type PushHandler struct {
	verifyPushAuth bool
	pushAudience   string
	validateToken  tokenValidator
	logger         *slog.Logger
	activity       usecase.ActivityUsecase
	now            func() time.Time
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Activity usecase.ActivityUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google pushes carry an OIDC token, and local development skips the check.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var pushAudience string
	if params.Config.PubSub != nil {
		pushAudience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		pushAudience:   pushAudience,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		activity:       params.Activity,
		now:            time.Now,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// Retryable failures answer 503 so Pub/Sub redelivers; anything else is
// acknowledged with 200 to avoid endless redelivery of a poison message.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event entity.ActivityEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse activity event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	attrs := []any{
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("type", string(event.Type)),
		slog.Int64("post_id", event.PostID),
	}
	if !event.OccurredAt.IsZero() {
		attrs = append(attrs, slog.String("lag", util.FormatDuration(h.now().Sub(event.OccurredAt))))
	}
	reqLogger.Info("[Worker] Processing activity event", attrs...)

	if err := h.activity.HandleActivity(ctx, &event); err != nil {
		retryable := isRetryable(err)
		reqLogger.Error("[Worker] Failed to process activity event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// isRetryable reports whether a failure is transient on the infrastructure side.
func isRetryable(err error) bool {
	return errors.Is(err, domainerrors.ErrStoreUnavailable) ||
		errors.Is(err, domainerrors.ErrMailDeliveryFailed) ||
		errors.Is(err, context.DeadlineExceeded)
}

// extractRequestID picks the first well-formed id from message attributes,
// the event payload or the request context, and generates one otherwise.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *entity.ActivityEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID := pushMsg.Message.Attributes["request_id"]; deliverycontext.ValidRequestID(requestID) {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if deliverycontext.ValidRequestID(event.RequestID) {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	payload, err := h.validateToken(req.Context(), token, h.audience(req))
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}

// audience is the configured push audience, or the URL of this endpoint as
// seen by the request. Behind a TLS-terminating proxy the derived scheme is
// http, so deployments set the audience explicitly.
func (h *PushHandler) audience(req *http.Request) string {
	if h.pushAudience != "" {
		return h.pushAudience
	}

	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}

	return fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
}
