package usecase

import (
	"context"

	"pushgate/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceRegistration represents the registration input for one device token
type DeviceRegistration struct {
	Token    string     `json:"token"`
	Platform string     `json:"platform"`
	UserID   *uuid.UUID `json:"user_id"`
}

// DeviceUsecase defines the interface for device management use cases
type DeviceUsecase interface {
	// RegisterDevice registers a device token or idempotently updates the
	// existing record for the same token. The boolean reports whether a new
	// record was created.
	RegisterDevice(ctx context.Context, registration *DeviceRegistration) (*entity.Device, bool, error)

	// UnregisterDevice deactivates the device with the given token.
	UnregisterDevice(ctx context.Context, token string) error
}
