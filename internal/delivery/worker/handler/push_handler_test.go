package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "pushgate/internal/domain/errors"
	"pushgate/internal/domain/service"
	mockUsecase "pushgate/internal/mocks/usecase"
	"pushgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushHandler(t *testing.T) (*PushHandler, *mockUsecase.MockDispatchUsecase) {
	dispatchUC := mockUsecase.NewMockDispatchUsecase(t)
	handler := &PushHandler{
		verifyPushAuth: false,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		dispatchUC:     dispatchUC,
	}

	return handler, dispatchUC
}

func pushRequestBody(t *testing.T, event service.DispatchEvent) string {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	envelope := map[string]any{
		"message": map[string]any{
			"data":      base64.StdEncoding.EncodeToString(payload),
			"messageId": "pubsub-message-1",
		},
		"subscription": "projects/demo/subscriptions/dispatch",
	}

	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	return string(body)
}

func newPushContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPushHandler_HandlePush_Success(t *testing.T) {
	handler, dispatchUC := newPushHandler(t)

	notificationID := uuid.New()
	body := pushRequestBody(t, service.DispatchEvent{NotificationID: notificationID.String()})

	dispatchUC.EXPECT().
		Dispatch(mock.Anything, notificationID).
		Return(&usecase.DispatchSummary{TotalRecipients: 5, SuccessCount: 5}, nil)

	c, rec := newPushContext(body)

	err := handler.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_TerminalErrorIsAcked(t *testing.T) {
	handler, dispatchUC := newPushHandler(t)

	notificationID := uuid.New()
	body := pushRequestBody(t, service.DispatchEvent{NotificationID: notificationID.String()})

	// Duplicate delivery of an already dispatched notification: the status
	// guard rejects it and the message must be acked, not redelivered.
	dispatchUC.EXPECT().
		Dispatch(mock.Anything, notificationID).
		Return(nil, domainerrors.ErrNotificationNotEligible)

	c, rec := newPushContext(body)

	err := handler.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_TransientErrorTriggersRetry(t *testing.T) {
	handler, dispatchUC := newPushHandler(t)

	notificationID := uuid.New()
	body := pushRequestBody(t, service.DispatchEvent{NotificationID: notificationID.String()})

	dispatchUC.EXPECT().
		Dispatch(mock.Anything, notificationID).
		Return(nil, errors.New("database unavailable"))

	c, rec := newPushContext(body)

	err := handler.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_MalformedBase64(t *testing.T) {
	handler, dispatchUC := newPushHandler(t)

	body := `{"message":{"data":"%%%not-base64%%%","messageId":"m1"},"subscription":"s"}`
	c, rec := newPushContext(body)

	err := handler.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	dispatchUC.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestPushHandler_HandlePush_InvalidNotificationID(t *testing.T) {
	handler, dispatchUC := newPushHandler(t)

	body := pushRequestBody(t, service.DispatchEvent{NotificationID: "not-a-uuid"})
	c, rec := newPushContext(body)

	err := handler.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	dispatchUC.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}
