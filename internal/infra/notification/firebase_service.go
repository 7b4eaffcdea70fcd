// Package notification implements the push gateway adapter on top of
// Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pushgate/config"
	"pushgate/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

const (
	// Fixed result error for every send attempted while the gateway client
	// never initialized. No network I/O happens in that state.
	notConfiguredError = "push gateway is not configured; check the service account credentials"

	defaultSendTimeout = 10 * time.Second
)

type firebaseMessenger struct {
	logger      *slog.Logger
	cfg         *config.FirebaseConfig
	sendTimeout time.Duration

	// Credential initialization runs at most once per process; both outcomes
	// (ready client, permanent failure) are memoized.
	initOnce sync.Once
	client   *messaging.Client
	initErr  error
}

// NewFirebaseMessenger creates the Firebase-backed push gateway adapter.
// Construction never fails: missing or broken credentials leave the adapter
// in a permanently-unavailable state in which every send reports a uniform
// configuration failure instead of crashing the caller.
func NewFirebaseMessenger(logger *slog.Logger, cfg *config.Config) service.PushMessenger {
	m := &firebaseMessenger{
		logger:      logger,
		cfg:         cfg.Firebase,
		sendTimeout: defaultSendTimeout,
	}
	if cfg.Firebase != nil && cfg.Firebase.SendTimeout > 0 {
		m.sendTimeout = cfg.Firebase.SendTimeout
	}

	return m
}

func (m *firebaseMessenger) messagingClient(ctx context.Context) (*messaging.Client, error) {
	m.initOnce.Do(func() {
		if m.cfg == nil || m.cfg.CredentialsPath == "" {
			m.initErr = errNotConfigured{}
			m.logger.Warn("firebase credentials not configured, push gateway disabled")

			return
		}

		opt := option.WithCredentialsFile(m.cfg.CredentialsPath)
		app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: m.cfg.ProjectID}, opt)
		if err != nil {
			m.initErr = err
			m.logger.Error("failed to initialize Firebase app", slog.Any("error", err))

			return
		}

		client, err := app.Messaging(ctx)
		if err != nil {
			m.initErr = err
			m.logger.Error("failed to create Firebase messaging client", slog.Any("error", err))

			return
		}

		m.client = client
		m.logger.Info("firebase messaging client initialized",
			slog.String("project_id", m.cfg.ProjectID),
		)
	})

	return m.client, m.initErr
}

type errNotConfigured struct{}

func (errNotConfigured) Error() string { return notConfiguredError }

// Available reports whether the gateway client initialized successfully.
func (m *firebaseMessenger) Available(ctx context.Context) bool {
	client, err := m.messagingClient(ctx)

	return err == nil && client != nil
}

// Send delivers a message to a single device token. Failures of any kind are
// converted into the result; this method never panics and never returns an
// error, so one recipient's failure cannot affect another's.
func (m *firebaseMessenger) Send(ctx context.Context, token string, msg *service.PushMessage) service.SendResult {
	client, err := m.messagingClient(ctx)
	if err != nil {
		return service.SendResult{Token: token, Error: notConfiguredError}
	}

	sendCtx, cancel := context.WithTimeout(ctx, m.sendTimeout)
	defer cancel()

	messageID, err := client.Send(sendCtx, &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title:    msg.Title,
			Body:     msg.Body,
			ImageURL: msg.ImageURL,
		},
		Data: msg.Data,
	})
	if err != nil {
		return service.SendResult{Token: token, Error: err.Error()}
	}

	return service.SendResult{Token: token, Success: true, MessageID: messageID}
}

// SendAll delivers a message to each token individually, preserving input
// order in the responses. It adds no gateway-side batching semantics; the
// caller enforces the gateway's per-call recipient limit.
func (m *firebaseMessenger) SendAll(ctx context.Context, tokens []string, msg *service.PushMessage) service.BatchResult {
	result := service.BatchResult{
		Responses: make([]service.SendResult, 0, len(tokens)),
	}

	for _, token := range tokens {
		resp := m.Send(ctx, token, msg)
		result.Responses = append(result.Responses, resp)

		if resp.Success {
			result.SuccessCount++
		} else {
			result.FailureCount++
		}
	}

	return result
}

// SendToTopic delivers a message to every device subscribed to a gateway topic.
func (m *firebaseMessenger) SendToTopic(ctx context.Context, topic string, msg *service.PushMessage) service.SendResult {
	client, err := m.messagingClient(ctx)
	if err != nil {
		return service.SendResult{Error: notConfiguredError}
	}

	sendCtx, cancel := context.WithTimeout(ctx, m.sendTimeout)
	defer cancel()

	messageID, err := client.Send(sendCtx, &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title:    msg.Title,
			Body:     msg.Body,
			ImageURL: msg.ImageURL,
		},
		Data: msg.Data,
	})
	if err != nil {
		return service.SendResult{Error: err.Error()}
	}

	return service.SendResult{Success: true, MessageID: messageID}
}
