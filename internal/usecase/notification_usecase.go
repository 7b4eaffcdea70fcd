package usecase

import (
	"context"

	"pushgate/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationDraft represents the input for creating a notification
type NotificationDraft struct {
	Title          string            `json:"title"`
	Body           string            `json:"body"`
	Data           map[string]string `json:"data"`
	ImageURL       string            `json:"image_url"`
	AutoSend       bool              `json:"auto_send"`
	SendToAll      bool              `json:"send_to_all"`
	TargetUserIDs  []uuid.UUID       `json:"target_user_ids"`
	TargetPlatform string            `json:"target_platform"`
	CreatedBy      uuid.UUID         `json:"created_by"`
}

// NotificationUsecase defines the interface for notification management use cases
type NotificationUsecase interface {
	// CreateNotification persists a new draft. When AutoSend is set, a
	// dispatch event is published after the creating transaction commits.
	CreateNotification(ctx context.Context, draft *NotificationDraft) (*entity.Notification, error)

	// GetNotification retrieves a notification with its dispatch counters.
	GetNotification(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// ListNotifications retrieves notifications with pagination.
	ListNotifications(ctx context.Context, limit, offset int) ([]*entity.Notification, error)

	// GetDeliveryLogs retrieves the per-device outcomes recorded for a notification.
	GetDeliveryLogs(ctx context.Context, notificationID uuid.UUID, limit, offset int) ([]*entity.DeliveryLog, error)
}
