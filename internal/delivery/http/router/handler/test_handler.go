package handler

import (
	"log/slog"
	"net/http"
	"time"

	"pushgate/config"
	"pushgate/internal/delivery/http/response"
	domainerrors "pushgate/internal/domain/errors"
	"pushgate/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TestHandlerParams holds dependencies for TestHandler, injected by Fx.
type TestHandlerParams struct {
	fx.In

	Config    *config.Config
	Messenger service.PushMessenger
	Logger    *slog.Logger
}

// TestHandler exposes diagnostic endpoints for exercising the push gateway
// against a single token without creating a notification record.
type TestHandler struct {
	cfg       *config.Config
	messenger service.PushMessenger
	logger    *slog.Logger
}

// NewTestHandler is the constructor for TestHandler
func NewTestHandler(params TestHandlerParams) *TestHandler {
	return &TestHandler{
		cfg:       params.Config,
		messenger: params.Messenger,
		logger:    params.Logger,
	}
}

// TestPushRequest represents the request body for a single-token test send
type TestPushRequest struct {
	Token    string            `json:"token" validate:"required"`
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	Data     map[string]string `json:"data"`
	ImageURL string            `json:"image_url" validate:"omitempty,url"`
}

// TestPush sends one real message through the gateway to the given token
func (h *TestHandler) TestPush(c echo.Context) error {
	var req TestPushRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid test push input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	ctx := c.Request().Context()
	if !h.messenger.Available(ctx) {
		return response.HandleAppError(c, domainerrors.ErrGatewayUnavailable)
	}

	message := &service.PushMessage{
		Title:    orDefault(req.Title, "Test Notification"),
		Body:     orDefault(req.Body, "This is a test push notification"),
		Data:     req.Data,
		ImageURL: req.ImageURL,
	}

	result := h.messenger.Send(ctx, req.Token, message)
	if !result.Success {
		h.logger.Warn("test push rejected by gateway",
			slog.String("error", result.Error))

		return response.HandleAppError(c,
			domainerrors.ErrGatewayRejected.WithDetails(result.Error))
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"message_id": result.MessageID,
	}, "Test notification sent successfully")
}

// MockTestPush simulates a successful send without contacting the gateway.
// It is only routed when test routes are enabled in the configuration.
func (h *TestHandler) MockTestPush(c echo.Context) error {
	var req TestPushRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid test push input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"message_id": "mock-" + uuid.NewString(),
		"mock":       true,
	}, "Mock notification sent successfully")
}

// TestConnection reports whether the push gateway is reachable and configured
func (h *TestHandler) TestConnection(c echo.Context) error {
	available := h.messenger.Available(c.Request().Context())

	message := "Push gateway is available"
	if !available {
		message = "Push gateway is not available"
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"available": available,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}, message)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
