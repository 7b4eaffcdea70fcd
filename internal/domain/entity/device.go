// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Device represents one push-capable device installation, registered by its
// gateway token. A token is globally unique: re-registering the same token
// updates the existing record instead of creating a duplicate.
type Device struct {
	ID        uuid.UUID  `json:"id"`         // The Global Unique Identifier (GUID) for the device.
	Token     string     `json:"token"`      // Opaque push-gateway token for this installation.
	Platform  string     `json:"platform"`   // Device platform (android, ios, web).
	UserID    *uuid.UUID `json:"user_id"`    // Optional owning user; nil for anonymous installations.
	IsActive  bool       `json:"is_active"`  // Indicates if this device is eligible for dispatch.
	CreatedAt time.Time  `json:"created_at"` // Timestamp of when this device was registered.
	UpdatedAt time.Time  `json:"updated_at"` // Timestamp of the last modification.
}
