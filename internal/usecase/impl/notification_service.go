package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pushgate/internal/domain/constants"
	"pushgate/internal/domain/entity"
	domainerrors "pushgate/internal/domain/errors"
	"pushgate/internal/domain/repository"
	"pushgate/internal/domain/service"
	"pushgate/internal/errors"
	"pushgate/internal/usecase"

	"github.com/google/uuid"
)

type notificationService struct {
	logger           *slog.Logger
	notificationRepo repository.NotificationRepository
	txManager        repository.TransactionManager
	publisher        service.EventPublisher
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	logger *slog.Logger,
	notificationRepo repository.NotificationRepository,
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
) usecase.NotificationUsecase {
	return &notificationService{
		logger:           logger,
		notificationRepo: notificationRepo,
		txManager:        txManager,
		publisher:        publisher,
	}
}

// CreateNotification persists a new draft notification. The dispatch event for
// auto-send drafts is published only after Execute returns, i.e. after the
// creating transaction is durably committed, so the worker can never observe a
// notification that might still be rolled back.
func (s *notificationService) CreateNotification(ctx context.Context, draft *usecase.NotificationDraft) (*entity.Notification, error) {
	platform := draft.TargetPlatform
	if platform == "" {
		platform = constants.PlatformAll
	}
	if platform != constants.PlatformAll && !constants.ValidPlatform(platform) {
		return nil, domainerrors.ErrInvalidPlatform
	}

	notification := &entity.Notification{
		ID:             uuid.New(),
		Title:          draft.Title,
		Body:           draft.Body,
		Data:           draft.Data,
		ImageURL:       draft.ImageURL,
		AutoSend:       draft.AutoSend,
		SendToAll:      draft.SendToAll,
		TargetUserIDs:  draft.TargetUserIDs,
		TargetPlatform: platform,
		Status:         constants.StatusDraft,
		CreatedAt:      time.Now(),
		CreatedBy:      draft.CreatedBy,
	}

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewNotificationRepository().CreateNotification(ctx, notification)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	if notification.AutoSend {
		event := &service.DispatchEvent{
			NotificationID: notification.ID.String(),
		}
		if err := s.publisher.PublishDispatchEvent(ctx, event); err != nil {
			// The draft is committed either way; an operator can still
			// dispatch it manually, so publishing failures are not fatal.
			s.logger.Error("failed to publish dispatch event",
				slog.String("notification_id", notification.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	return notification, nil
}

// GetNotification retrieves a notification with its dispatch counters
func (s *notificationService) GetNotification(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	notification, err := s.notificationRepo.FindNotificationByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, domainerrors.ErrNotificationNotFound
		}

		return nil, fmt.Errorf("failed to find notification: %w", err)
	}

	return notification, nil
}

// ListNotifications retrieves notifications with pagination
func (s *notificationService) ListNotifications(ctx context.Context, limit, offset int) ([]*entity.Notification, error) {
	return s.notificationRepo.ListNotifications(ctx, limit, offset)
}

// GetDeliveryLogs retrieves the per-device outcomes recorded for a notification
func (s *notificationService) GetDeliveryLogs(ctx context.Context, notificationID uuid.UUID, limit, offset int) ([]*entity.DeliveryLog, error) {
	if _, err := s.GetNotification(ctx, notificationID); err != nil {
		return nil, err
	}

	return s.notificationRepo.FindDeliveryLogs(ctx, notificationID, limit, offset)
}
