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

const (
	// Push gateway batch size limit (FCM allows 500 recipients per call)
	gatewayBatchSize = 500
)

type dispatchService struct {
	logger           *slog.Logger
	notificationRepo repository.NotificationRepository
	deviceRepo       repository.DeviceRepository
	messenger        service.PushMessenger
}

// NewDispatchService creates a new dispatch service instance
func NewDispatchService(
	logger *slog.Logger,
	notificationRepo repository.NotificationRepository,
	deviceRepo repository.DeviceRepository,
	messenger service.PushMessenger,
) usecase.DispatchUsecase {
	return &dispatchService{
		logger:           logger,
		notificationRepo: notificationRepo,
		deviceRepo:       deviceRepo,
		messenger:        messenger,
	}
}

// Dispatch runs the full pipeline for one draft notification:
// guarded draft->sending transition, audience resolution, batched delivery
// through the gateway, one delivery log per recipient, and the terminal
// status transition with aggregate counters.
func (s *dispatchService) Dispatch(ctx context.Context, notificationID uuid.UUID) (*usecase.DispatchSummary, error) {
	notification, err := s.notificationRepo.FindNotificationByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, domainerrors.ErrNotificationNotFound
		}

		return nil, fmt.Errorf("failed to find notification: %w", err)
	}

	if notification.Status != constants.StatusDraft {
		return nil, domainerrors.ErrNotificationNotEligible
	}

	// Conditional update so that two racing dispatch attempts of the same
	// notification cannot both enter the sending pass.
	entered, err := s.notificationRepo.UpdateNotificationStatusFrom(ctx, notificationID, constants.StatusDraft, constants.StatusSending)
	if err != nil {
		return nil, fmt.Errorf("failed to mark notification sending: %w", err)
	}
	if !entered {
		return nil, domainerrors.ErrNotificationNotEligible
	}

	audience, err := s.resolveAudience(ctx, notification)
	if err != nil {
		s.forceFailed(ctx, notificationID)

		return nil, fmt.Errorf("failed to resolve audience: %w", err)
	}

	if len(audience) == 0 {
		if err := s.notificationRepo.UpdateNotificationStatus(ctx, notificationID, constants.StatusFailed); err != nil {
			s.logger.Error("failed to mark empty-audience notification failed",
				slog.String("notification_id", notificationID.String()),
				slog.Any("error", err),
			)
		}

		return nil, domainerrors.ErrNoEligibleRecipients
	}

	// Persisted before the first send so a crash mid-dispatch leaves a
	// recoverable intermediate state.
	if err := s.notificationRepo.SetTotalRecipients(ctx, notificationID, len(audience)); err != nil {
		s.forceFailed(ctx, notificationID)

		return nil, fmt.Errorf("failed to set total recipients: %w", err)
	}

	msg := &service.PushMessage{
		Title:    notification.Title,
		Body:     notification.Body,
		Data:     notification.Data,
		ImageURL: notification.ImageURL,
	}

	var (
		successCount = 0
		failureCount = 0
		deliveryLogs = make([]*entity.DeliveryLog, 0, len(audience))
	)

	for start := 0; start < len(audience); start += gatewayBatchSize {
		end := start + gatewayBatchSize
		if end > len(audience) {
			end = len(audience)
		}
		batch := audience[start:end]

		tokens := make([]string, 0, len(batch))
		for _, device := range batch {
			tokens = append(tokens, device.Token)
		}

		// Responses come back in input order, so index idx correlates each
		// result to batch[idx].
		result := s.messenger.SendAll(ctx, tokens, msg)

		successCount += result.SuccessCount
		failureCount += result.FailureCount

		for idx, resp := range result.Responses {
			device := batch[idx]

			status := constants.DeliverySuccess
			if !resp.Success {
				status = constants.DeliveryFailed
			}

			deliveryLogs = append(deliveryLogs, &entity.DeliveryLog{
				ID:             uuid.New(),
				NotificationID: notificationID,
				DeviceID:       device.ID,
				Status:         status,
				MessageID:      resp.MessageID,
				ErrorMessage:   resp.Error,
				SentAt:         time.Now(),
			})
		}
	}

	if err := s.notificationRepo.BatchCreateDeliveryLogs(ctx, deliveryLogs); err != nil {
		// Outcome logs are diagnostics; losing them must not undo a dispatch
		// that already happened on the gateway side.
		s.logger.Error("failed to persist delivery logs",
			slog.String("notification_id", notificationID.String()),
			slog.Int("log_count", len(deliveryLogs)),
			slog.Any("error", err),
		)
	}

	finalStatus := constants.StatusFailed
	if successCount > 0 {
		finalStatus = constants.StatusSent
	}

	if err := s.notificationRepo.FinalizeDispatch(ctx, notificationID, successCount, failureCount, time.Now(), finalStatus); err != nil {
		// A notification stuck in sending can never be re-dispatched, so
		// attempt the failed transition even though the counters are lost.
		s.forceFailed(ctx, notificationID)

		return nil, fmt.Errorf("failed to finalize dispatch: %w", err)
	}

	s.logger.Info("notification dispatched",
		slog.String("notification_id", notificationID.String()),
		slog.String("status", finalStatus),
		slog.Int("total", len(audience)),
		slog.Int("success", successCount),
		slog.Int("failed", failureCount),
	)

	return &usecase.DispatchSummary{
		TotalRecipients: len(audience),
		SuccessCount:    successCount,
		FailureCount:    failureCount,
	}, nil
}

// DispatchMany dispatches each selected notification independently. Non-draft
// notifications are skipped silently; one notification's failure never aborts
// the remaining selection.
func (s *dispatchService) DispatchMany(ctx context.Context, notificationIDs []uuid.UUID) (*usecase.BatchDispatchReport, error) {
	report := &usecase.BatchDispatchReport{}

	for _, id := range notificationIDs {
		_, err := s.Dispatch(ctx, id)
		switch {
		case err == nil:
			report.Dispatched++

		case errors.Is(err, domainerrors.ErrNotificationNotEligible):
			report.Skipped++

		default:
			report.Failed++
			s.logger.Error("dispatch failed",
				slog.String("notification_id", id.String()),
				slog.Any("error", err),
			)
		}
	}

	return report, nil
}

// resolveAudience translates the notification's targeting criteria into
// repository filters and returns the concrete, order-stable device list.
func (s *dispatchService) resolveAudience(ctx context.Context, notification *entity.Notification) ([]*entity.Device, error) {
	platform := ""
	if notification.TargetPlatform != constants.PlatformAll {
		platform = notification.TargetPlatform
	}

	var userIDs []uuid.UUID
	if !notification.SendToAll && len(notification.TargetUserIDs) > 0 {
		userIDs = notification.TargetUserIDs
	}

	return s.deviceRepo.FindAudience(ctx, platform, userIDs)
}

// forceFailed is the best-effort failed transition used when the pipeline
// breaks after the notification already left draft status.
func (s *dispatchService) forceFailed(ctx context.Context, notificationID uuid.UUID) {
	if err := s.notificationRepo.UpdateNotificationStatus(ctx, notificationID, constants.StatusFailed); err != nil {
		s.logger.Error("failed to force notification into failed status",
			slog.String("notification_id", notificationID.String()),
			slog.Any("error", err),
		)
	}
}
