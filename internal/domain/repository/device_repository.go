// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pushgate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device whose token already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// CreateDevice persists a new device.
	CreateDevice(ctx context.Context, device *entity.Device) error

	// FindDeviceByToken retrieves a device by its unique gateway token.
	FindDeviceByToken(ctx context.Context, token string) (*entity.Device, error)

	// UpdateDevice updates platform, owner and active flag of an existing device.
	UpdateDevice(ctx context.Context, device *entity.Device) error

	// DeactivateDeviceByToken clears the active flag on the matching device.
	// Returns ErrDeviceNotFound when no device carries the token.
	DeactivateDeviceByToken(ctx context.Context, token string) error

	// FindAudience resolves the active devices matching the targeting criteria.
	// platform narrows to one platform when non-empty; userIDs narrows to
	// devices owned by those users when non-empty. The result order is stable
	// (created_at, id) so that batching is deterministic.
	FindAudience(ctx context.Context, platform string, userIDs []uuid.UUID) ([]*entity.Device, error)
}
