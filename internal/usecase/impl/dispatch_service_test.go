package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"pushgate/internal/domain/constants"
	"pushgate/internal/domain/entity"
	domainerrors "pushgate/internal/domain/errors"
	"pushgate/internal/domain/repository"
	"pushgate/internal/domain/service"
	mockRepo "pushgate/internal/mocks/repository"
	mockService "pushgate/internal/mocks/service"
	"pushgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// dispatchServiceFixtures holds all test dependencies for dispatch service tests.
type dispatchServiceFixtures struct {
	service          usecase.DispatchUsecase
	notificationRepo *mockRepo.MockNotificationRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	messenger        *mockService.MockPushMessenger
}

func createTestDispatchService(t *testing.T) dispatchServiceFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	messenger := mockService.NewMockPushMessenger(t)
	svc := NewDispatchService(logger, notificationRepo, deviceRepo, messenger)

	return dispatchServiceFixtures{
		service:          svc,
		notificationRepo: notificationRepo,
		deviceRepo:       deviceRepo,
		messenger:        messenger,
	}
}

func draftNotification(id uuid.UUID) *entity.Notification {
	return &entity.Notification{
		ID:             id,
		Title:          "New menu online",
		Body:           "Check out this week's specials",
		SendToAll:      true,
		TargetPlatform: constants.PlatformAll,
		Status:         constants.StatusDraft,
	}
}

func makeDevices(n int) []*entity.Device {
	devices := make([]*entity.Device, 0, n)
	for i := 0; i < n; i++ {
		devices = append(devices, &entity.Device{
			ID:       uuid.New(),
			Token:    fmt.Sprintf("token-%d", i),
			Platform: constants.PlatformAndroid,
			IsActive: true,
		})
	}

	return devices
}

func TestDispatchService_Dispatch_MixedOutcomes(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	id := uuid.New()
	notification := draftNotification(id)
	devices := makeDevices(3)

	fx.notificationRepo.EXPECT().
		FindNotificationByID(ctx, id).
		Return(notification, nil)

	fx.notificationRepo.EXPECT().
		UpdateNotificationStatusFrom(ctx, id, constants.StatusDraft, constants.StatusSending).
		Return(true, nil)

	fx.deviceRepo.EXPECT().
		FindAudience(ctx, "", []uuid.UUID(nil)).
		Return(devices, nil)

	fx.notificationRepo.EXPECT().
		SetTotalRecipients(ctx, id, 3).
		Return(nil)

	fx.messenger.EXPECT().
		SendAll(ctx, []string{"token-0", "token-1", "token-2"}, mock.AnythingOfType("*service.PushMessage")).
		Return(service.BatchResult{
			SuccessCount: 2,
			FailureCount: 1,
			Responses: []service.SendResult{
				{Token: "token-0", Success: true, MessageID: "msg-0"},
				{Token: "token-1", Success: false, Error: "unregistered token"},
				{Token: "token-2", Success: true, MessageID: "msg-2"},
			},
		})

	var capturedLogs []*entity.DeliveryLog
	fx.notificationRepo.EXPECT().
		BatchCreateDeliveryLogs(ctx, mock.AnythingOfType("[]*entity.DeliveryLog")).
		RunAndReturn(func(_ context.Context, logs []*entity.DeliveryLog) error {
			capturedLogs = logs

			return nil
		})

	fx.notificationRepo.EXPECT().
		FinalizeDispatch(ctx, id, 2, 1, mock.AnythingOfType("time.Time"), constants.StatusSent).
		Return(nil)

	summary, err := fx.service.Dispatch(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalRecipients)
	assert.Equal(t, 2, summary.SuccessCount)
	assert.Equal(t, 1, summary.FailureCount)

	require.Len(t, capturedLogs, 3)
	assert.Equal(t, devices[0].ID, capturedLogs[0].DeviceID)
	assert.Equal(t, constants.DeliverySuccess, capturedLogs[0].Status)
	assert.Equal(t, "msg-0", capturedLogs[0].MessageID)
	assert.Equal(t, devices[1].ID, capturedLogs[1].DeviceID)
	assert.Equal(t, constants.DeliveryFailed, capturedLogs[1].Status)
	assert.Equal(t, "unregistered token", capturedLogs[1].ErrorMessage)
	assert.Equal(t, constants.DeliverySuccess, capturedLogs[2].Status)
}

func TestDispatchService_Dispatch_AllFailuresEndsFailed(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	id := uuid.New()
	devices := makeDevices(2)

	fx.notificationRepo.EXPECT().
		FindNotificationByID(ctx, id).
		Return(draftNotification(id), nil)

	fx.notificationRepo.EXPECT().
		UpdateNotificationStatusFrom(ctx, id, constants.StatusDraft, constants.StatusSending).
		Return(true, nil)

	fx.deviceRepo.EXPECT().
		FindAudience(ctx, "", []uuid.UUID(nil)).
		Return(devices, nil)

	fx.notificationRepo.EXPECT().
		SetTotalRecipients(ctx, id, 2).
		Return(nil)

	fx.messenger.EXPECT().
		SendAll(ctx, mock.AnythingOfType("[]string"), mock.AnythingOfType("*service.PushMessage")).
		Return(service.BatchResult{
			SuccessCount: 0,
			FailureCount: 2,
			Responses: []service.SendResult{
				{Token: "token-0", Success: false, Error: "unavailable"},
				{Token: "token-1", Success: false, Error: "unavailable"},
			},
		})

	fx.notificationRepo.EXPECT().
		BatchCreateDeliveryLogs(ctx, mock.AnythingOfType("[]*entity.DeliveryLog")).
		Return(nil)

	fx.notificationRepo.EXPECT().
		FinalizeDispatch(ctx, id, 0, 2, mock.AnythingOfType("time.Time"), constants.StatusFailed).
		Return(nil)

	summary, err := fx.service.Dispatch(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.SuccessCount)
	assert.Equal(t, 2, summary.FailureCount)
}

func TestDispatchService_Dispatch_BatchesOf500(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	id := uuid.New()
	devices := makeDevices(1200)

	fx.notificationRepo.EXPECT().
		FindNotificationByID(ctx, id).
		Return(draftNotification(id), nil)

	fx.notificationRepo.EXPECT().
		UpdateNotificationStatusFrom(ctx, id, constants.StatusDraft, constants.StatusSending).
		Return(true, nil)

	fx.deviceRepo.EXPECT().
		FindAudience(ctx, "", []uuid.UUID(nil)).
		Return(devices, nil)

	fx.notificationRepo.EXPECT().
		SetTotalRecipients(ctx, id, 1200).
		Return(nil)

	var batchSizes []int
	fx.messenger.EXPECT().
		SendAll(ctx, mock.AnythingOfType("[]string"), mock.AnythingOfType("*service.PushMessage")).
		RunAndReturn(func(_ context.Context, tokens []string, _ *service.PushMessage) service.BatchResult {
			batchSizes = append(batchSizes, len(tokens))

			responses := make([]service.SendResult, 0, len(tokens))
			for _, token := range tokens {
				responses = append(responses, service.SendResult{Token: token, Success: true, MessageID: "msg-" + token})
			}

			return service.BatchResult{
				SuccessCount: len(tokens),
				Responses:    responses,
			}
		})

	var capturedLogs []*entity.DeliveryLog
	fx.notificationRepo.EXPECT().
		BatchCreateDeliveryLogs(ctx, mock.AnythingOfType("[]*entity.DeliveryLog")).
		RunAndReturn(func(_ context.Context, logs []*entity.DeliveryLog) error {
			capturedLogs = logs

			return nil
		})

	fx.notificationRepo.EXPECT().
		FinalizeDispatch(ctx, id, 1200, 0, mock.AnythingOfType("time.Time"), constants.StatusSent).
		Return(nil)

	summary, err := fx.service.Dispatch(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1200, summary.TotalRecipients)
	assert.Equal(t, []int{500, 500, 200}, batchSizes)
	assert.Len(t, capturedLogs, 1200)
}

func TestDispatchService_Dispatch_EmptyAudience(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.notificationRepo.EXPECT().
		FindNotificationByID(ctx, id).
		Return(draftNotification(id), nil)

	fx.notificationRepo.EXPECT().
		UpdateNotificationStatusFrom(ctx, id, constants.StatusDraft, constants.StatusSending).
		Return(true, nil)

	fx.deviceRepo.EXPECT().
		FindAudience(ctx, "", []uuid.UUID(nil)).
		Return([]*entity.Device{}, nil)

	fx.notificationRepo.EXPECT().
		UpdateNotificationStatus(ctx, id, constants.StatusFailed).
		Return(nil)

	summary, err := fx.service.Dispatch(ctx, id)
	assert.Error(t, err)
	assert.Equal(t, domainerrors.ErrNoEligibleRecipients, err)
	assert.Nil(t, summary)
	fx.notificationRepo.AssertNotCalled(t, "BatchCreateDeliveryLogs", mock.Anything, mock.Anything)
	fx.messenger.AssertNotCalled(t, "SendAll", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatchService_Dispatch_NotDraft(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	id := uuid.New()
	notification := draftNotification(id)
	notification.Status = constants.StatusSent

	fx.notificationRepo.EXPECT().
		FindNotificationByID(ctx, id).
		Return(notification, nil)

	summary, err := fx.service.Dispatch(ctx, id)
	assert.Error(t, err)
	assert.Equal(t, domainerrors.ErrNotificationNotEligible, err)
	assert.Nil(t, summary)
}

func TestDispatchService_Dispatch_LostStatusRace(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.notificationRepo.EXPECT().
		FindNotificationByID(ctx, id).
		Return(draftNotification(id), nil)

	// A concurrent dispatch won the draft->sending transition first.
	fx.notificationRepo.EXPECT().
		UpdateNotificationStatusFrom(ctx, id, constants.StatusDraft, constants.StatusSending).
		Return(false, nil)

	summary, err := fx.service.Dispatch(ctx, id)
	assert.Error(t, err)
	assert.Equal(t, domainerrors.ErrNotificationNotEligible, err)
	assert.Nil(t, summary)
	fx.deviceRepo.AssertNotCalled(t, "FindAudience", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatchService_Dispatch_NotFound(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.notificationRepo.EXPECT().
		FindNotificationByID(ctx, id).
		Return(nil, repository.ErrNotificationNotFound)

	summary, err := fx.service.Dispatch(ctx, id)
	assert.Error(t, err)
	assert.Equal(t, domainerrors.ErrNotificationNotFound, err)
	assert.Nil(t, summary)
}

func TestDispatchService_Dispatch_AudienceErrorForcesFailed(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.notificationRepo.EXPECT().
		FindNotificationByID(ctx, id).
		Return(draftNotification(id), nil)

	fx.notificationRepo.EXPECT().
		UpdateNotificationStatusFrom(ctx, id, constants.StatusDraft, constants.StatusSending).
		Return(true, nil)

	fx.deviceRepo.EXPECT().
		FindAudience(ctx, "", []uuid.UUID(nil)).
		Return(nil, errors.New("database error"))

	fx.notificationRepo.EXPECT().
		UpdateNotificationStatus(ctx, id, constants.StatusFailed).
		Return(nil)

	summary, err := fx.service.Dispatch(ctx, id)
	assert.Error(t, err)
	assert.Nil(t, summary)
	assert.Contains(t, err.Error(), "failed to resolve audience")
}

func TestDispatchService_Dispatch_FinalizeErrorForcesFailed(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	id := uuid.New()
	devices := makeDevices(1)

	fx.notificationRepo.EXPECT().
		FindNotificationByID(ctx, id).
		Return(draftNotification(id), nil)

	fx.notificationRepo.EXPECT().
		UpdateNotificationStatusFrom(ctx, id, constants.StatusDraft, constants.StatusSending).
		Return(true, nil)

	fx.deviceRepo.EXPECT().
		FindAudience(ctx, "", []uuid.UUID(nil)).
		Return(devices, nil)

	fx.notificationRepo.EXPECT().
		SetTotalRecipients(ctx, id, 1).
		Return(nil)

	fx.messenger.EXPECT().
		SendAll(ctx, []string{"token-0"}, mock.AnythingOfType("*service.PushMessage")).
		Return(service.BatchResult{
			SuccessCount: 1,
			Responses: []service.SendResult{
				{Token: "token-0", Success: true, MessageID: "msg-0"},
			},
		})

	fx.notificationRepo.EXPECT().
		BatchCreateDeliveryLogs(ctx, mock.AnythingOfType("[]*entity.DeliveryLog")).
		Return(nil)

	fx.notificationRepo.EXPECT().
		FinalizeDispatch(ctx, id, 1, 0, mock.AnythingOfType("time.Time"), constants.StatusSent).
		Return(errors.New("db connection reset"))

	// The notification must not stay in sending, it would be stuck there
	// forever since re-dispatch requires draft status.
	fx.notificationRepo.EXPECT().
		UpdateNotificationStatus(ctx, id, constants.StatusFailed).
		Return(nil)

	summary, err := fx.service.Dispatch(ctx, id)
	assert.Error(t, err)
	assert.Nil(t, summary)
	assert.Contains(t, err.Error(), "failed to finalize dispatch")
}

func TestDispatchService_Dispatch_TargetedAudienceFilters(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	id := uuid.New()
	targetUsers := []uuid.UUID{uuid.New(), uuid.New()}

	notification := draftNotification(id)
	notification.SendToAll = false
	notification.TargetUserIDs = targetUsers
	notification.TargetPlatform = constants.PlatformIOS

	devices := makeDevices(1)

	fx.notificationRepo.EXPECT().
		FindNotificationByID(ctx, id).
		Return(notification, nil)

	fx.notificationRepo.EXPECT().
		UpdateNotificationStatusFrom(ctx, id, constants.StatusDraft, constants.StatusSending).
		Return(true, nil)

	// Platform and user filters must reach the repository as given.
	fx.deviceRepo.EXPECT().
		FindAudience(ctx, constants.PlatformIOS, targetUsers).
		Return(devices, nil)

	fx.notificationRepo.EXPECT().
		SetTotalRecipients(ctx, id, 1).
		Return(nil)

	fx.messenger.EXPECT().
		SendAll(ctx, []string{"token-0"}, mock.AnythingOfType("*service.PushMessage")).
		Return(service.BatchResult{
			SuccessCount: 1,
			Responses:    []service.SendResult{{Token: "token-0", Success: true, MessageID: "msg-0"}},
		})

	fx.notificationRepo.EXPECT().
		BatchCreateDeliveryLogs(ctx, mock.AnythingOfType("[]*entity.DeliveryLog")).
		Return(nil)

	fx.notificationRepo.EXPECT().
		FinalizeDispatch(ctx, id, 1, 0, mock.AnythingOfType("time.Time"), constants.StatusSent).
		Return(nil)

	summary, err := fx.service.Dispatch(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalRecipients)
}

func TestDispatchService_Dispatch_LogPersistenceFailureDoesNotAbort(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	id := uuid.New()
	devices := makeDevices(1)

	fx.notificationRepo.EXPECT().
		FindNotificationByID(ctx, id).
		Return(draftNotification(id), nil)

	fx.notificationRepo.EXPECT().
		UpdateNotificationStatusFrom(ctx, id, constants.StatusDraft, constants.StatusSending).
		Return(true, nil)

	fx.deviceRepo.EXPECT().
		FindAudience(ctx, "", []uuid.UUID(nil)).
		Return(devices, nil)

	fx.notificationRepo.EXPECT().
		SetTotalRecipients(ctx, id, 1).
		Return(nil)

	fx.messenger.EXPECT().
		SendAll(ctx, []string{"token-0"}, mock.AnythingOfType("*service.PushMessage")).
		Return(service.BatchResult{
			SuccessCount: 1,
			Responses:    []service.SendResult{{Token: "token-0", Success: true, MessageID: "msg-0"}},
		})

	fx.notificationRepo.EXPECT().
		BatchCreateDeliveryLogs(ctx, mock.AnythingOfType("[]*entity.DeliveryLog")).
		Return(errors.New("database error"))

	fx.notificationRepo.EXPECT().
		FinalizeDispatch(ctx, id, 1, 0, mock.AnythingOfType("time.Time"), constants.StatusSent).
		Return(nil)

	summary, err := fx.service.Dispatch(ctx, id)
	require.NoError(t, err, "losing outcome logs must not undo a completed dispatch")
	assert.Equal(t, 1, summary.SuccessCount)
}

func TestDispatchService_DispatchMany_MixedSelection(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	dispatchable := uuid.New()
	alreadySent := uuid.New()
	broken := uuid.New()
	devices := makeDevices(1)

	// dispatchable runs the full pipeline.
	fx.notificationRepo.EXPECT().
		FindNotificationByID(ctx, dispatchable).
		Return(draftNotification(dispatchable), nil)
	fx.notificationRepo.EXPECT().
		UpdateNotificationStatusFrom(ctx, dispatchable, constants.StatusDraft, constants.StatusSending).
		Return(true, nil)
	fx.deviceRepo.EXPECT().
		FindAudience(ctx, "", []uuid.UUID(nil)).
		Return(devices, nil)
	fx.notificationRepo.EXPECT().
		SetTotalRecipients(ctx, dispatchable, 1).
		Return(nil)
	fx.messenger.EXPECT().
		SendAll(ctx, []string{"token-0"}, mock.AnythingOfType("*service.PushMessage")).
		Return(service.BatchResult{
			SuccessCount: 1,
			Responses:    []service.SendResult{{Token: "token-0", Success: true, MessageID: "msg-0"}},
		})
	fx.notificationRepo.EXPECT().
		BatchCreateDeliveryLogs(ctx, mock.AnythingOfType("[]*entity.DeliveryLog")).
		Return(nil)
	fx.notificationRepo.EXPECT().
		FinalizeDispatch(ctx, dispatchable, 1, 0, mock.AnythingOfType("time.Time"), constants.StatusSent).
		Return(nil)

	// alreadySent is skipped, not failed.
	sent := draftNotification(alreadySent)
	sent.Status = constants.StatusSent
	fx.notificationRepo.EXPECT().
		FindNotificationByID(ctx, alreadySent).
		Return(sent, nil)

	// broken errors out but does not abort the run.
	fx.notificationRepo.EXPECT().
		FindNotificationByID(ctx, broken).
		Return(nil, errors.New("database error"))

	report, err := fx.service.DispatchMany(ctx, []uuid.UUID{dispatchable, alreadySent, broken})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Dispatched)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 1, report.Failed)
}
