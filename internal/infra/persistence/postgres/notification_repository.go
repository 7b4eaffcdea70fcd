// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"pushgate/internal/domain/entity"
	domainerrors "pushgate/internal/domain/errors"
	"pushgate/internal/domain/repository"
	"pushgate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const deliveryLogInsertBatchSize = 500

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification persists a new notification in draft status.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindNotificationByID retrieves a notification by its unique ID.
func (repo *notificationRepository) FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// ListNotifications retrieves notifications ordered by creation time, newest first.
func (repo *notificationRepository) ListNotifications(ctx context.Context, limit, offset int) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// UpdateNotificationStatusFrom transitions the status only when the current
// status matches the guard. The conditional WHERE makes the transition a
// compare-and-swap, so racing dispatch attempts cannot both win.
func (repo *notificationRepository) UpdateNotificationStatusFrom(ctx context.Context, id uuid.UUID, from, to string) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to update notification status")
	}

	return result.RowsAffected > 0, nil
}

// UpdateNotificationStatus forces the status unconditionally.
func (repo *notificationRepository) UpdateNotificationStatus(ctx context.Context, id uuid.UUID, status string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		Update("status", status)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update notification status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// SetTotalRecipients persists the resolved audience size before sending starts.
func (repo *notificationRepository) SetTotalRecipients(ctx context.Context, id uuid.UUID, total int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		Update("total_recipients", total)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set total recipients")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// FinalizeDispatch records the aggregate outcome of one dispatch pass.
func (repo *notificationRepository) FinalizeDispatch(ctx context.Context, id uuid.UUID, successCount, failureCount int, sentAt time.Time, status string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"successful_sends": successCount,
			"failed_sends":     failureCount,
			"sent_at":          sentAt,
			"status":           status,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to finalize dispatch")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// BatchCreateDeliveryLogs persists delivery log entries in insert batches.
func (repo *notificationRepository) BatchCreateDeliveryLogs(ctx context.Context, logs []*entity.DeliveryLog) error {
	if len(logs) == 0 {
		return nil
	}

	logModels := make([]*model.DeliveryLogModel, 0, len(logs))
	for _, log := range logs {
		logModels = append(logModels, fromDeliveryLogDomain(log))
	}

	if err := repo.db.WithContext(ctx).
		CreateInBatches(logModels, deliveryLogInsertBatchSize).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create delivery logs")
	}

	return nil
}

// FindDeliveryLogs retrieves the delivery logs recorded for a notification.
func (repo *notificationRepository) FindDeliveryLogs(ctx context.Context, notificationID uuid.UUID, limit, offset int) ([]*entity.DeliveryLog, error) {
	var logModels []*model.DeliveryLogModel

	if err := repo.db.WithContext(ctx).
		Where("notification_id = ?", notificationID).
		Order("sent_at ASC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find delivery logs")
	}

	logs := make([]*entity.DeliveryLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toDeliveryLogDomain(logM))
	}

	return logs, nil
}

// fromNotificationDomain converts a domain entity into its GORM model.
func fromNotificationDomain(notification *entity.Notification) *model.NotificationModel {
	return &model.NotificationModel{
		ID:              notification.ID,
		Title:           notification.Title,
		Body:            notification.Body,
		Data:            notification.Data,
		ImageURL:        notification.ImageURL,
		AutoSend:        notification.AutoSend,
		SendToAll:       notification.SendToAll,
		TargetUserIDs:   notification.TargetUserIDs,
		TargetPlatform:  notification.TargetPlatform,
		Status:          notification.Status,
		TotalRecipients: notification.TotalRecipients,
		SuccessfulSends: notification.SuccessfulSends,
		FailedSends:     notification.FailedSends,
		CreatedAt:       notification.CreatedAt,
		SentAt:          notification.SentAt,
		CreatedBy:       notification.CreatedBy,
	}
}

// toNotificationDomain converts a GORM model into its domain entity.
func toNotificationDomain(notificationM *model.NotificationModel) *entity.Notification {
	return &entity.Notification{
		ID:              notificationM.ID,
		Title:           notificationM.Title,
		Body:            notificationM.Body,
		Data:            notificationM.Data,
		ImageURL:        notificationM.ImageURL,
		AutoSend:        notificationM.AutoSend,
		SendToAll:       notificationM.SendToAll,
		TargetUserIDs:   notificationM.TargetUserIDs,
		TargetPlatform:  notificationM.TargetPlatform,
		Status:          notificationM.Status,
		TotalRecipients: notificationM.TotalRecipients,
		SuccessfulSends: notificationM.SuccessfulSends,
		FailedSends:     notificationM.FailedSends,
		CreatedAt:       notificationM.CreatedAt,
		SentAt:          notificationM.SentAt,
		CreatedBy:       notificationM.CreatedBy,
	}
}

// fromDeliveryLogDomain converts a domain entity into its GORM model.
func fromDeliveryLogDomain(log *entity.DeliveryLog) *model.DeliveryLogModel {
	return &model.DeliveryLogModel{
		ID:             log.ID,
		NotificationID: log.NotificationID,
		DeviceID:       log.DeviceID,
		Status:         log.Status,
		MessageID:      log.MessageID,
		ErrorMessage:   log.ErrorMessage,
		SentAt:         log.SentAt,
	}
}

// toDeliveryLogDomain converts a GORM model into its domain entity.
func toDeliveryLogDomain(logM *model.DeliveryLogModel) *entity.DeliveryLog {
	return &entity.DeliveryLog{
		ID:             logM.ID,
		NotificationID: logM.NotificationID,
		DeviceID:       logM.DeviceID,
		Status:         logM.Status,
		MessageID:      logM.MessageID,
		ErrorMessage:   logM.ErrorMessage,
		SentAt:         logM.SentAt,
	}
}
