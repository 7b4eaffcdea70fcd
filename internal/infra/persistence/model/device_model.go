package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModel is the GORM-specific struct for the 'devices' table.
// It represents one push-capable device installation keyed by gateway token.
type DeviceModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Token     string     `gorm:"type:text;not null;uniqueIndex"`
	Platform  string     `gorm:"type:varchar(20);not null;default:'android';index"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	IsActive  bool       `gorm:"not null;default:true;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}
