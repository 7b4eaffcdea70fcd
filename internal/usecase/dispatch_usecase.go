package usecase

import (
	"context"

	"github.com/google/uuid"
)

// DispatchSummary aggregates the outcome of one dispatch pass.
// SuccessCount + FailureCount == TotalRecipients once the pass completes.
type DispatchSummary struct {
	TotalRecipients int `json:"total_recipients"`
	SuccessCount    int `json:"success_count"`
	FailureCount    int `json:"failure_count"`
}

// BatchDispatchReport summarizes a manual multi-notification dispatch run.
type BatchDispatchReport struct {
	Dispatched int `json:"dispatched"` // Pipelines that ran to completion.
	Skipped    int `json:"skipped"`    // Notifications not in draft status.
	Failed     int `json:"failed"`     // Pipelines that ended in an error.
}

// DispatchUsecase drives the notification dispatch pipeline:
// audience resolution, batched delivery, outcome logging and the
// status transition to a terminal state.
type DispatchUsecase interface {
	// Dispatch runs the full pipeline for one draft notification.
	// Non-draft notifications yield ErrNotificationNotEligible; an empty
	// resolved audience marks the notification failed and yields
	// ErrNoEligibleRecipients.
	Dispatch(ctx context.Context, notificationID uuid.UUID) (*DispatchSummary, error)

	// DispatchMany dispatches each draft in the selection independently.
	// Non-draft notifications are skipped silently and one notification's
	// failure never aborts the others.
	DispatchMany(ctx context.Context, notificationIDs []uuid.UUID) (*BatchDispatchReport, error)
}
