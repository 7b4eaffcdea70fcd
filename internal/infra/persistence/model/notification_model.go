package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// It represents one push-message broadcast job with its lifecycle counters.
type NotificationModel struct {
	ID       uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title    string            `gorm:"type:varchar(255);not null"`
	Body     string            `gorm:"type:text;not null"`
	Data     map[string]string `gorm:"type:jsonb;serializer:json"`
	ImageURL string            `gorm:"type:text"`

	AutoSend bool `gorm:"not null;default:true"`

	SendToAll      bool        `gorm:"not null;default:true"`
	TargetUserIDs  []uuid.UUID `gorm:"type:jsonb;serializer:json"`
	TargetPlatform string      `gorm:"type:varchar(20);not null;default:'all'"`

	Status          string `gorm:"type:varchar(20);not null;default:'draft';index"`
	TotalRecipients int    `gorm:"not null;default:0"`
	SuccessfulSends int    `gorm:"not null;default:0"`
	FailedSends     int    `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"index"`
	SentAt    *time.Time
	CreatedBy uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// DeliveryLogModel is the GORM-specific struct for the 'delivery_logs' table.
// Rows are append-only: one per (notification, device) delivery attempt.
type DeliveryLogModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	NotificationID uuid.UUID `gorm:"type:uuid;not null;index"`
	DeviceID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Status         string    `gorm:"type:varchar(20);not null"`
	MessageID      string    `gorm:"type:text"`
	ErrorMessage   string    `gorm:"type:text"`
	SentAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryLogModel) TableName() string {
	return "delivery_logs"
}
