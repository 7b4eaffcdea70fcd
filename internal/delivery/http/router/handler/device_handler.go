package handler

import (
	"log/slog"
	"net/http"

	"pushgate/internal/delivery/http/response"
	"pushgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDeviceRequest represents the request body for registering a device token
type RegisterDeviceRequest struct {
	Token      string `json:"token" validate:"required"`
	DeviceType string `json:"device_type" validate:"omitempty,oneof=android ios web"`
	UserID     string `json:"user_id" validate:"omitempty,uuid"`
}

// UnregisterDeviceRequest represents the request body for unregistering a device token
type UnregisterDeviceRequest struct {
	Token string `json:"token" validate:"required"`
}

// RegisterDevice handles device token registration. Registering a token that
// already exists updates the stored record and responds 200 instead of 201.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	registration := &usecase.DeviceRegistration{
		Token:    req.Token,
		Platform: req.DeviceType,
	}
	if req.UserID != "" {
		userID, err := uuid.Parse(req.UserID)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
		}
		registration.UserID = &userID
	}

	device, created, err := h.deviceUC.RegisterDevice(c.Request().Context(), registration)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	statusCode := http.StatusOK
	message := "Device token updated successfully"
	if created {
		statusCode = http.StatusCreated
		message = "Device token registered successfully"
	}

	return response.Success(c, statusCode, map[string]any{
		"device_id": device.ID,
		"created":   created,
	}, message)
}

// UnregisterDevice handles device token deactivation
func (h *DeviceHandler) UnregisterDevice(c echo.Context) error {
	var req UnregisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid unregistration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.deviceUC.UnregisterDevice(c.Request().Context(), req.Token); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Device token unregistered successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
