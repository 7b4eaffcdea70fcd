package service

import (
	"context"
)

// DispatchEvent asks the worker to run the dispatch pipeline for one
// notification. It is published only after the creating transaction has
// committed; redelivery is harmless because dispatch is guarded by the
// draft-only status check.
type DispatchEvent struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing
	NotificationID string `json:"notification_id"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDispatchEvent publishes a dispatch event for async processing
	PublishDispatchEvent(ctx context.Context, event *DispatchEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
