package impl

import (
	"context"
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

// notificationServiceFixtures holds all test dependencies for notification service tests.
type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	notificationRepo *mockRepo.MockNotificationRepository
	txManager        *mockRepo.MockTransactionManager
	publisher        *mockService.MockEventPublisher
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	publisher := mockService.NewMockEventPublisher(t)
	svc := NewNotificationService(logger, notificationRepo, txManager, publisher)

	return notificationServiceFixtures{
		service:          svc,
		notificationRepo: notificationRepo,
		txManager:        txManager,
		publisher:        publisher,
	}
}

// expectTransaction wires the transaction manager so the callback runs against
// the fixture's notification repository, the same way the real manager hands
// out transaction-bound repositories.
func (fx notificationServiceFixtures) expectTransaction(t *testing.T, ctx context.Context) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().
		NewNotificationRepository().
		Return(fx.notificationRepo)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestNotificationService_CreateNotification_AutoSendPublishesAfterCommit(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	draft := &usecase.NotificationDraft{
		Title:     "New menu online",
		Body:      "Check out this week's specials",
		AutoSend:  true,
		SendToAll: true,
	}

	committed := false

	fx.expectTransaction(t, ctx)
	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		RunAndReturn(func(_ context.Context, _ *entity.Notification) error {
			committed = true

			return nil
		})

	fx.publisher.EXPECT().
		PublishDispatchEvent(ctx, mock.AnythingOfType("*service.DispatchEvent")).
		RunAndReturn(func(_ context.Context, event *service.DispatchEvent) error {
			assert.True(t, committed, "event must be published after the record is committed")
			assert.NotEmpty(t, event.NotificationID)

			return nil
		})

	notification, err := fx.service.CreateNotification(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusDraft, notification.Status)
	assert.Equal(t, constants.PlatformAll, notification.TargetPlatform)
	assert.True(t, notification.AutoSend)
}

func TestNotificationService_CreateNotification_NoAutoSendNoEvent(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	draft := &usecase.NotificationDraft{
		Title:    "Draft only",
		Body:     "Saved for later",
		AutoSend: false,
	}

	fx.expectTransaction(t, ctx)
	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)

	notification, err := fx.service.CreateNotification(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusDraft, notification.Status)
	fx.publisher.AssertNotCalled(t, "PublishDispatchEvent", mock.Anything, mock.Anything)
}

func TestNotificationService_CreateNotification_PublishFailureNotFatal(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	draft := &usecase.NotificationDraft{
		Title:    "New menu online",
		Body:     "Check out this week's specials",
		AutoSend: true,
	}

	fx.expectTransaction(t, ctx)
	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishDispatchEvent(ctx, mock.AnythingOfType("*service.DispatchEvent")).
		Return(errors.New("broker unavailable"))

	notification, err := fx.service.CreateNotification(ctx, draft)
	require.NoError(t, err, "a failed trigger must not fail the creation")
	assert.Equal(t, constants.StatusDraft, notification.Status)
}

func TestNotificationService_CreateNotification_InvalidPlatform(t *testing.T) {
	fx := createTestNotificationService(t)

	draft := &usecase.NotificationDraft{
		Title:          "Bad platform",
		Body:           "Body",
		TargetPlatform: "symbian",
	}

	notification, err := fx.service.CreateNotification(context.Background(), draft)
	assert.Error(t, err)
	assert.Equal(t, domainerrors.ErrInvalidPlatform, err)
	assert.Nil(t, notification)
}

func TestNotificationService_CreateNotification_TransactionError(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	draft := &usecase.NotificationDraft{
		Title:    "New menu online",
		Body:     "Body",
		AutoSend: true,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("database error"))

	notification, err := fx.service.CreateNotification(ctx, draft)
	assert.Error(t, err)
	assert.Nil(t, notification)
	assert.Contains(t, err.Error(), "failed to create notification")
	fx.publisher.AssertNotCalled(t, "PublishDispatchEvent", mock.Anything, mock.Anything)
}

func TestNotificationService_GetNotification_NotFound(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.notificationRepo.EXPECT().
		FindNotificationByID(ctx, id).
		Return(nil, repository.ErrNotificationNotFound)

	notification, err := fx.service.GetNotification(ctx, id)
	assert.Error(t, err)
	assert.Equal(t, domainerrors.ErrNotificationNotFound, err)
	assert.Nil(t, notification)
}

func TestNotificationService_GetDeliveryLogs(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	id := uuid.New()
	notification := &entity.Notification{ID: id, Status: constants.StatusSent}
	logs := []*entity.DeliveryLog{
		{ID: uuid.New(), NotificationID: id, Status: constants.DeliverySuccess},
		{ID: uuid.New(), NotificationID: id, Status: constants.DeliveryFailed},
	}

	fx.notificationRepo.EXPECT().
		FindNotificationByID(ctx, id).
		Return(notification, nil)

	fx.notificationRepo.EXPECT().
		FindDeliveryLogs(ctx, id, 50, 0).
		Return(logs, nil)

	got, err := fx.service.GetDeliveryLogs(ctx, id, 50, 0)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestNotificationService_GetDeliveryLogs_NotificationMissing(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.notificationRepo.EXPECT().
		FindNotificationByID(ctx, id).
		Return(nil, repository.ErrNotificationNotFound)

	got, err := fx.service.GetDeliveryLogs(ctx, id, 50, 0)
	assert.Error(t, err)
	assert.Equal(t, domainerrors.ErrNotificationNotFound, err)
	assert.Nil(t, got)
}
