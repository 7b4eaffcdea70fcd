package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pushgate/config"
	"pushgate/internal/delivery/http/validator"
	"pushgate/internal/domain/service"
	mockService "pushgate/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEchoContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestHandlerWithMessenger(t *testing.T) (*TestHandler, *mockService.MockPushMessenger) {
	messenger := mockService.NewMockPushMessenger(t)
	handler := &TestHandler{
		cfg:       &config.Config{},
		messenger: messenger,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	return handler, messenger
}

func TestTestHandler_TestPush_Success(t *testing.T) {
	handler, messenger := newTestHandlerWithMessenger(t)

	messenger.EXPECT().
		Available(mock.Anything).
		Return(true)

	messenger.EXPECT().
		Send(mock.Anything, "device-token", mock.AnythingOfType("*service.PushMessage")).
		Return(service.SendResult{Token: "device-token", Success: true, MessageID: "msg-1"})

	c, rec := newTestEchoContext(t, http.MethodPost, "/api/notifications/test", `{"token":"device-token"}`)

	err := handler.TestPush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "msg-1")
}

func TestTestHandler_TestPush_ForwardsImageURL(t *testing.T) {
	handler, messenger := newTestHandlerWithMessenger(t)

	messenger.EXPECT().
		Available(mock.Anything).
		Return(true)

	var sentMsg *service.PushMessage
	messenger.EXPECT().
		Send(mock.Anything, "device-token", mock.AnythingOfType("*service.PushMessage")).
		Run(func(ctx context.Context, token string, msg *service.PushMessage) {
			sentMsg = msg
		}).
		Return(service.SendResult{Token: "device-token", Success: true, MessageID: "msg-2"})

	body := `{"token":"device-token","title":"Promo","image_url":"https://cdn.example.com/promo.png"}`
	c, rec := newTestEchoContext(t, http.MethodPost, "/api/notifications/test", body)

	err := handler.TestPush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, sentMsg)
	assert.Equal(t, "https://cdn.example.com/promo.png", sentMsg.ImageURL)
	assert.Equal(t, "Promo", sentMsg.Title)
}

func TestTestHandler_TestPush_InvalidImageURL(t *testing.T) {
	handler, messenger := newTestHandlerWithMessenger(t)

	body := `{"token":"device-token","image_url":"not-a-url"}`
	c, rec := newTestEchoContext(t, http.MethodPost, "/api/notifications/test", body)

	err := handler.TestPush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	messenger.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestTestHandler_TestPush_GatewayUnavailable(t *testing.T) {
	handler, messenger := newTestHandlerWithMessenger(t)

	messenger.EXPECT().
		Available(mock.Anything).
		Return(false)

	c, rec := newTestEchoContext(t, http.MethodPost, "/api/notifications/test", `{"token":"device-token"}`)

	err := handler.TestPush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "GATEWAY_UNAVAILABLE")
	messenger.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestTestHandler_TestPush_GatewayRejected(t *testing.T) {
	handler, messenger := newTestHandlerWithMessenger(t)

	messenger.EXPECT().
		Available(mock.Anything).
		Return(true)

	messenger.EXPECT().
		Send(mock.Anything, "device-token", mock.AnythingOfType("*service.PushMessage")).
		Return(service.SendResult{Token: "device-token", Success: false, Error: "unregistered token"})

	c, rec := newTestEchoContext(t, http.MethodPost, "/api/notifications/test", `{"token":"device-token"}`)

	err := handler.TestPush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "GATEWAY_REJECTED")
	assert.Contains(t, rec.Body.String(), "unregistered token")
}

func TestTestHandler_TestPush_MissingToken(t *testing.T) {
	handler, _ := newTestHandlerWithMessenger(t)

	c, rec := newTestEchoContext(t, http.MethodPost, "/api/notifications/test", `{}`)

	err := handler.TestPush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTestHandler_MockTestPush(t *testing.T) {
	handler, messenger := newTestHandlerWithMessenger(t)

	c, rec := newTestEchoContext(t, http.MethodPost, "/api/notifications/mock-test", `{"token":"device-token"}`)

	err := handler.MockTestPush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "mock-")
	messenger.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	messenger.AssertNotCalled(t, "Available", mock.Anything)
}

func TestTestHandler_TestConnection(t *testing.T) {
	handler, messenger := newTestHandlerWithMessenger(t)

	messenger.EXPECT().
		Available(mock.Anything).
		Return(true)

	c, rec := newTestEchoContext(t, http.MethodGet, "/api/notifications/test-connection", "")

	err := handler.TestConnection(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"available":true`)
	assert.Contains(t, rec.Body.String(), "timestamp")
}
