package impl

import (
	"context"
	"testing"

	"pushgate/internal/domain/constants"
	"pushgate/internal/domain/entity"
	domainerrors "pushgate/internal/domain/errors"
	"pushgate/internal/domain/repository"
	mockRepo "pushgate/internal/mocks/repository"
	"pushgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(deviceRepo)

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	registration := &usecase.DeviceRegistration{
		Token:    "test-push-token",
		Platform: "ios",
		UserID:   &userID,
	}

	fx.deviceRepo.EXPECT().
		FindDeviceByToken(ctx, "test-push-token").
		Return(nil, repository.ErrDeviceNotFound)

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.Device")).
		Return(nil)

	device, created, err := fx.service.RegisterDevice(ctx, registration)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotNil(t, device)
	assert.Equal(t, "test-push-token", device.Token)
	assert.Equal(t, "ios", device.Platform)
	assert.Equal(t, &userID, device.UserID)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_ExistingToken(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	newOwner := uuid.New()
	existing := &entity.Device{
		ID:       uuid.New(),
		Token:    "test-push-token",
		Platform: "android",
		IsActive: false,
	}

	registration := &usecase.DeviceRegistration{
		Token:    "test-push-token",
		Platform: "web",
		UserID:   &newOwner,
	}

	fx.deviceRepo.EXPECT().
		FindDeviceByToken(ctx, "test-push-token").
		Return(existing, nil)

	fx.deviceRepo.EXPECT().
		UpdateDevice(ctx, existing).
		Return(nil)

	device, created, err := fx.service.RegisterDevice(ctx, registration)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existing.ID, device.ID)
	assert.Equal(t, "web", device.Platform)
	assert.Equal(t, &newOwner, device.UserID)
	assert.True(t, device.IsActive, "re-registering must reactivate the device")
}

func TestDeviceService_RegisterDevice_DefaultPlatform(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	registration := &usecase.DeviceRegistration{
		Token: "test-push-token",
	}

	fx.deviceRepo.EXPECT().
		FindDeviceByToken(ctx, "test-push-token").
		Return(nil, repository.ErrDeviceNotFound)

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.Device")).
		Return(nil)

	device, created, err := fx.service.RegisterDevice(ctx, registration)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, constants.PlatformAndroid, device.Platform)
}

func TestDeviceService_RegisterDevice_EmptyToken(t *testing.T) {
	fx := createTestDeviceService(t)

	device, created, err := fx.service.RegisterDevice(context.Background(), &usecase.DeviceRegistration{})
	assert.Error(t, err)
	assert.Equal(t, domainerrors.ErrTokenRequired, err)
	assert.False(t, created)
	assert.Nil(t, device)
}

func TestDeviceService_RegisterDevice_InvalidPlatform(t *testing.T) {
	fx := createTestDeviceService(t)

	registration := &usecase.DeviceRegistration{
		Token:    "test-push-token",
		Platform: "blackberry",
	}

	device, created, err := fx.service.RegisterDevice(context.Background(), registration)
	assert.Error(t, err)
	assert.Equal(t, domainerrors.ErrInvalidPlatform, err)
	assert.False(t, created)
	assert.Nil(t, device)
}

func TestDeviceService_RegisterDevice_FindError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	registration := &usecase.DeviceRegistration{
		Token: "test-push-token",
	}

	fx.deviceRepo.EXPECT().
		FindDeviceByToken(ctx, "test-push-token").
		Return(nil, errors.New("database error"))

	device, created, err := fx.service.RegisterDevice(ctx, registration)
	assert.Error(t, err)
	assert.Nil(t, device)
	assert.False(t, created)
	assert.Contains(t, err.Error(), "failed to find device by token")
}

func TestDeviceService_RegisterDevice_CreateError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	registration := &usecase.DeviceRegistration{
		Token: "test-push-token",
	}

	fx.deviceRepo.EXPECT().
		FindDeviceByToken(ctx, "test-push-token").
		Return(nil, repository.ErrDeviceNotFound)

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.Device")).
		Return(errors.New("database error"))

	device, created, err := fx.service.RegisterDevice(ctx, registration)
	assert.Error(t, err)
	assert.Nil(t, device)
	assert.False(t, created)
	assert.Contains(t, err.Error(), "failed to create device")
}

func TestDeviceService_UnregisterDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		DeactivateDeviceByToken(ctx, "test-push-token").
		Return(nil)

	err := fx.service.UnregisterDevice(ctx, "test-push-token")
	require.NoError(t, err)
}

func TestDeviceService_UnregisterDevice_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		DeactivateDeviceByToken(ctx, "unknown-token").
		Return(repository.ErrDeviceNotFound)

	err := fx.service.UnregisterDevice(ctx, "unknown-token")
	assert.Error(t, err)
	assert.Equal(t, domainerrors.ErrDeviceNotFound, err)
}

func TestDeviceService_UnregisterDevice_EmptyToken(t *testing.T) {
	fx := createTestDeviceService(t)

	err := fx.service.UnregisterDevice(context.Background(), "")
	assert.Error(t, err)
	assert.Equal(t, domainerrors.ErrTokenRequired, err)
}
