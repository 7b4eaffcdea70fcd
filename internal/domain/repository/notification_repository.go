// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"pushgate/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// CreateNotification persists a new notification in draft status.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationByID retrieves a notification by its unique ID.
	FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// ListNotifications retrieves notifications ordered by creation time, newest first.
	ListNotifications(ctx context.Context, limit, offset int) ([]*entity.Notification, error)

	// UpdateNotificationStatusFrom transitions the status only when the
	// notification is currently in the expected status. Returns false when the
	// guard did not match, which callers treat as losing the dispatch race.
	UpdateNotificationStatusFrom(ctx context.Context, id uuid.UUID, from, to string) (bool, error)

	// UpdateNotificationStatus forces the status unconditionally. Used for the
	// best-effort failed transition at the trigger boundary.
	UpdateNotificationStatus(ctx context.Context, id uuid.UUID, status string) error

	// SetTotalRecipients persists the resolved audience size before sending
	// starts, so a crash mid-dispatch leaves a recoverable intermediate state.
	SetTotalRecipients(ctx context.Context, id uuid.UUID, total int) error

	// FinalizeDispatch records the aggregate outcome of one dispatch pass:
	// success/failure counters, completion timestamp and terminal status.
	FinalizeDispatch(ctx context.Context, id uuid.UUID, successCount, failureCount int, sentAt time.Time, status string) error

	// BatchCreateDeliveryLogs persists delivery log entries in batches.
	BatchCreateDeliveryLogs(ctx context.Context, logs []*entity.DeliveryLog) error

	// FindDeliveryLogs retrieves the delivery logs recorded for a notification.
	FindDeliveryLogs(ctx context.Context, notificationID uuid.UUID, limit, offset int) ([]*entity.DeliveryLog, error)
}
