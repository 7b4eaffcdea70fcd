package impl

import (
	"context"
	"fmt"
	"time"

	"pushgate/internal/domain/constants"
	"pushgate/internal/domain/entity"
	domainerrors "pushgate/internal/domain/errors"
	"pushgate/internal/domain/repository"
	"pushgate/internal/errors"
	"pushgate/internal/usecase"

	"github.com/google/uuid"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

// RegisterDevice registers a device token or updates the existing record for
// the same token. Registration is idempotent: one row per token, reflecting
// the latest platform and owner, reactivated if it had been unregistered.
func (s *deviceService) RegisterDevice(ctx context.Context, registration *usecase.DeviceRegistration) (*entity.Device, bool, error) {
	if registration.Token == "" {
		return nil, false, domainerrors.ErrTokenRequired
	}

	platform := registration.Platform
	if platform == "" {
		platform = constants.PlatformAndroid
	}
	if !constants.ValidPlatform(platform) {
		return nil, false, domainerrors.ErrInvalidPlatform
	}

	existing, err := s.deviceRepo.FindDeviceByToken(ctx, registration.Token)
	switch {
	case err == nil:
		existing.Platform = platform
		existing.UserID = registration.UserID
		existing.IsActive = true

		if err := s.deviceRepo.UpdateDevice(ctx, existing); err != nil {
			return nil, false, fmt.Errorf("failed to update device: %w", err)
		}

		return existing, false, nil

	case errors.Is(err, repository.ErrDeviceNotFound):
		device := &entity.Device{
			ID:        uuid.New(),
			Token:     registration.Token,
			Platform:  platform,
			UserID:    registration.UserID,
			IsActive:  true,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
			return nil, false, fmt.Errorf("failed to create device: %w", err)
		}

		return device, true, nil

	default:
		return nil, false, fmt.Errorf("failed to find device by token: %w", err)
	}
}

// UnregisterDevice deactivates the device with the given token. The record is
// kept so historical delivery logs stay resolvable.
func (s *deviceService) UnregisterDevice(ctx context.Context, token string) error {
	if token == "" {
		return domainerrors.ErrTokenRequired
	}

	if err := s.deviceRepo.DeactivateDeviceByToken(ctx, token); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return fmt.Errorf("failed to deactivate device: %w", err)
	}

	return nil
}
