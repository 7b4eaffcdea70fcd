// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"pushgate/internal/domain/entity"
	domainerrors "pushgate/internal/domain/errors"
	"pushgate/internal/domain/repository"
	"pushgate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// CreateDevice persists a new device.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	// Update the entity with generated values
	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindDeviceByToken retrieves a device by its unique gateway token.
func (repo *deviceRepository) FindDeviceByToken(ctx context.Context, token string) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by token")
	}

	return toDeviceDomain(&deviceM), nil
}

// UpdateDevice updates platform, owner and active flag of an existing device.
func (repo *deviceRepository) UpdateDevice(ctx context.Context, device *entity.Device) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", device.ID).
		Updates(map[string]any{
			"platform":  device.Platform,
			"user_id":   device.UserID,
			"is_active": device.IsActive,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeactivateDeviceByToken clears the active flag on the matching device.
func (repo *deviceRepository) DeactivateDeviceByToken(ctx context.Context, token string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("token = ?", token).
		Update("is_active", false)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// FindAudience resolves the active devices matching the targeting criteria,
// ordered by (created_at, id) so batching is deterministic for the same set.
func (repo *deviceRepository) FindAudience(ctx context.Context, platform string, userIDs []uuid.UUID) ([]*entity.Device, error) {
	query := repo.db.WithContext(ctx).
		Where("is_active = ?", true)

	if platform != "" {
		query = query.Where("platform = ?", platform)
	}
	if len(userIDs) > 0 {
		query = query.Where("user_id IN ?", userIDs)
	}

	var deviceModels []*model.DeviceModel
	if err := query.
		Order("created_at ASC, id ASC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to resolve audience")
	}

	devices := make([]*entity.Device, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// fromDeviceDomain converts a domain entity into its GORM model.
func fromDeviceDomain(device *entity.Device) *model.DeviceModel {
	return &model.DeviceModel{
		ID:        device.ID,
		Token:     device.Token,
		Platform:  device.Platform,
		UserID:    device.UserID,
		IsActive:  device.IsActive,
		CreatedAt: device.CreatedAt,
		UpdatedAt: device.UpdatedAt,
	}
}

// toDeviceDomain converts a GORM model into its domain entity.
func toDeviceDomain(deviceM *model.DeviceModel) *entity.Device {
	return &entity.Device{
		ID:        deviceM.ID,
		Token:     deviceM.Token,
		Platform:  deviceM.Platform,
		UserID:    deviceM.UserID,
		IsActive:  deviceM.IsActive,
		CreatedAt: deviceM.CreatedAt,
		UpdatedAt: deviceM.UpdatedAt,
	}
}
