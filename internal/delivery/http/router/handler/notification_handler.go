package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"pushgate/internal/delivery/http/response"
	"pushgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	DispatchUC     usecase.DispatchUsecase
	Logger         *slog.Logger
}

// NotificationHandler holds dependencies for notification-related handlers
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	dispatchUC     usecase.DispatchUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		dispatchUC:     params.DispatchUC,
		logger:         params.Logger,
	}
}

// CreateNotificationRequest represents the request body for creating a notification
type CreateNotificationRequest struct {
	Title          string            `json:"title" validate:"required"`
	Body           string            `json:"body" validate:"required"`
	Data           map[string]string `json:"data"`
	ImageURL       string            `json:"image_url" validate:"omitempty,url"`
	AutoSend       *bool             `json:"auto_send"`
	SendToAll      bool              `json:"send_to_all"`
	TargetUserIDs  []string          `json:"target_user_ids" validate:"omitempty,dive,uuid"`
	TargetPlatform string            `json:"target_platform" validate:"omitempty,oneof=all android ios web"`
	CreatedBy      string            `json:"created_by" validate:"omitempty,uuid"`
}

// DispatchNotificationsRequest represents the request body for the manual dispatch trigger
type DispatchNotificationsRequest struct {
	NotificationIDs []string `json:"notification_ids" validate:"required,min=1,dive,uuid"`
}

// CreateNotification handles creation of a notification request. When
// auto_send is enabled the dispatch trigger fires after the record commits.
func (h *NotificationHandler) CreateNotification(c echo.Context) error {
	var req CreateNotificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	targetUserIDs := make([]uuid.UUID, 0, len(req.TargetUserIDs))
	for _, raw := range req.TargetUserIDs {
		userID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid target user ID")
		}
		targetUserIDs = append(targetUserIDs, userID)
	}

	autoSend := true
	if req.AutoSend != nil {
		autoSend = *req.AutoSend
	}

	var createdBy uuid.UUID
	if req.CreatedBy != "" {
		parsed, err := uuid.Parse(req.CreatedBy)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid creator ID")
		}
		createdBy = parsed
	}

	draft := &usecase.NotificationDraft{
		Title:          req.Title,
		Body:           req.Body,
		Data:           req.Data,
		ImageURL:       req.ImageURL,
		AutoSend:       autoSend,
		SendToAll:      req.SendToAll,
		TargetUserIDs:  targetUserIDs,
		TargetPlatform: req.TargetPlatform,
		CreatedBy:      createdBy,
	}

	notification, err := h.notificationUC.CreateNotification(c.Request().Context(), draft)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, notification, "Notification created successfully")
}

// GetNotification handles fetching a single notification by ID
func (h *NotificationHandler) GetNotification(c echo.Context) error {
	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	notification, err := h.notificationUC.GetNotification(c.Request().Context(), notificationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notification, "Notification retrieved successfully")
}

// ListNotifications handles listing notifications, newest first
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	limit, offset, err := parsePagination(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	notifications, err := h.notificationUC.ListNotifications(c.Request().Context(), limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications, "Notifications retrieved successfully")
}

// GetDeliveryLogs handles fetching per-recipient delivery outcomes for a notification
func (h *NotificationHandler) GetDeliveryLogs(c echo.Context) error {
	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	limit, offset, err := parsePagination(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	logs, err := h.notificationUC.GetDeliveryLogs(c.Request().Context(), notificationID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, logs, "Delivery logs retrieved successfully")
}

// DispatchNotifications handles the manual dispatch trigger for a batch of
// notification IDs. Ineligible notifications are skipped, not failed.
func (h *NotificationHandler) DispatchNotifications(c echo.Context) error {
	var req DispatchNotificationsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dispatch input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	notificationIDs := make([]uuid.UUID, 0, len(req.NotificationIDs))
	for _, raw := range req.NotificationIDs {
		notificationID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
		}
		notificationIDs = append(notificationIDs, notificationID)
	}

	report, err := h.dispatchUC.DispatchMany(c.Request().Context(), notificationIDs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report, "Dispatch completed")
}

// parsePagination reads limit and offset query parameters with bounds applied
func parsePagination(c echo.Context) (limit, offset int, err error) {
	limit = defaultListLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, parseErr := strconv.Atoi(raw)
		if parseErr != nil || parsed < 1 {
			return 0, 0, errors.New("invalid limit parameter")
		}
		limit = min(parsed, maxListLimit)
	}

	if raw := c.QueryParam("offset"); raw != "" {
		parsed, parseErr := strconv.Atoi(raw)
		if parseErr != nil || parsed < 0 {
			return 0, 0, errors.New("invalid offset parameter")
		}
		offset = parsed
	}

	return limit, offset, nil
}
