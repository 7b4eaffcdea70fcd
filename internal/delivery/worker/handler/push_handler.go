package handler

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"pushgate/config"
	deliverycontext "pushgate/internal/delivery/context"
	"pushgate/internal/domain/constants"
	domainerrors "pushgate/internal/domain/errors"
	"pushgate/internal/domain/service"
	"pushgate/internal/usecase"

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

// PushHandler handles Pub/Sub push messages carrying dispatch events
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	dispatchUC     usecase.DispatchUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	DispatchUC usecase.DispatchUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only verify push auth for the Google provider outside development
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		dispatchUC:     params.DispatchUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// Malformed messages are acked with 4xx so the subscription does not
// redeliver them forever; dispatch failures that may succeed on retry
// return 503 to trigger redelivery.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
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

	var event service.DispatchEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse dispatch event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	notificationID, err := uuid.Parse(event.NotificationID)
	if err != nil {
		h.logger.Error("[Worker] Invalid notification ID in dispatch event",
			slog.String("notification_id", event.NotificationID))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(&pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing dispatch event",
		slog.String("notification_id", event.NotificationID),
	)

	summary, err := h.dispatchUC.Dispatch(ctx, notificationID)
	if err != nil {
		reqLogger.Error("[Worker] Dispatch failed",
			slog.String("notification_id", event.NotificationID),
			slog.Any("error", err),
		)

		// Terminal outcomes must be acked or Pub/Sub will redeliver an
		// event that can never succeed. The status guard makes duplicate
		// deliveries of an already dispatched notification land here too.
		if isTerminalDispatchError(err) {
			return c.NoContent(http.StatusOK)
		}

		return c.NoContent(http.StatusServiceUnavailable)
	}

	reqLogger.Info("[Worker] Dispatch completed",
		slog.String("notification_id", event.NotificationID),
		slog.Int("total_recipients", summary.TotalRecipients),
		slog.Int("success_count", summary.SuccessCount),
		slog.Int("failure_count", summary.FailureCount),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, the event, or generates a new one
func (h *PushHandler) extractRequestID(pushMsg *PubSubMessage, event *service.DispatchEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	return uuid.New().String()
}

// isTerminalDispatchError reports whether retrying the event cannot change the outcome
func isTerminalDispatchError(err error) bool {
	return errors.Is(err, domainerrors.ErrNotificationNotFound) ||
		errors.Is(err, domainerrors.ErrNotificationNotEligible) ||
		errors.Is(err, domainerrors.ErrNoEligibleRecipients)
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience should be the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
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
