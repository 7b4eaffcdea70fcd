// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification represents one push-message broadcast job.
//
// Counters are write-once per dispatch pass: TotalRecipients is persisted
// before sending starts, SuccessfulSends/FailedSends when the pass completes,
// and SuccessfulSends + FailedSends == TotalRecipients once Status is terminal.
type Notification struct {
	ID       uuid.UUID         `json:"id"`        // The Global Unique Identifier (GUID) for the notification.
	Title    string            `json:"title"`     // Notification title.
	Body     string            `json:"body"`      // Notification body text.
	Data     map[string]string `json:"data"`      // Optional structured data payload.
	ImageURL string            `json:"image_url"` // Optional image URL.

	AutoSend bool `json:"auto_send"` // Dispatch immediately after creation.

	SendToAll      bool        `json:"send_to_all"`      // Broadcast to every active device.
	TargetUserIDs  []uuid.UUID `json:"target_user_ids"`  // Explicit user set; only applied when SendToAll is false.
	TargetPlatform string      `json:"target_platform"`  // Platform filter (all, android, ios, web).

	Status          string     `json:"status"`           // Lifecycle status (draft, sending, sent, failed).
	TotalRecipients int        `json:"total_recipients"` // Number of devices resolved for this dispatch.
	SuccessfulSends int        `json:"successful_sends"` // Number of deliveries the gateway accepted.
	FailedSends     int        `json:"failed_sends"`     // Number of deliveries that failed.

	CreatedAt time.Time  `json:"created_at"` // Timestamp of when this record was created.
	SentAt    *time.Time `json:"sent_at"`    // Timestamp of dispatch completion; nil until then.
	CreatedBy uuid.UUID  `json:"created_by"` // The operator who created this notification.
}

// DeliveryLog represents the recorded outcome of one delivery attempt to one
// device. Rows are append-only: created during a dispatch pass and never
// mutated afterward.
type DeliveryLog struct {
	ID             uuid.UUID `json:"id"`              // The Global Unique Identifier (GUID) for the log entry.
	NotificationID uuid.UUID `json:"notification_id"` // The notification this log belongs to.
	DeviceID       uuid.UUID `json:"device_id"`       // The device that was targeted.
	Status         string    `json:"status"`          // Delivery outcome (success, failed).
	MessageID      string    `json:"message_id"`      // Gateway message ID when the send succeeded.
	ErrorMessage   string    `json:"error_message"`   // Gateway error detail when the send failed.
	SentAt         time.Time `json:"sent_at"`         // Timestamp of the delivery attempt.
}
