package service

import (
	"context"
)

// PushMessage carries the content of one push notification.
type PushMessage struct {
	Title    string
	Body     string
	Data     map[string]string
	ImageURL string
}

// SendResult is the per-recipient outcome of one delivery attempt. Gateway
// failures are captured as data, never as errors, so one bad recipient can
// never unwind a dispatch.
type SendResult struct {
	Token     string `json:"token"`
	Success   bool   `json:"success"`
	MessageID string `json:"message_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

// BatchResult aggregates the outcomes of a multi-recipient send.
// Responses are returned in strict input order; callers rely on this for
// position-aligned correlation back to the originating devices.
type BatchResult struct {
	SuccessCount int
	FailureCount int
	Responses    []SendResult
}

// PushMessenger defines the interface for the external push gateway.
//
// Implementations memoize their credential initialization: both the ready and
// the permanently-unavailable state are terminal for the process lifetime.
// When the gateway is unavailable every send short-circuits to a failed
// result without network I/O.
type PushMessenger interface {
	// Available reports whether the gateway client initialized successfully.
	Available(ctx context.Context) bool

	// Send delivers a message to a single device token.
	Send(ctx context.Context, token string, msg *PushMessage) SendResult

	// SendAll delivers a message to each token in order. It is a plain loop
	// over Send with no gateway-side batching; enforcing the gateway's
	// per-call recipient limit is the caller's responsibility.
	SendAll(ctx context.Context, tokens []string, msg *PushMessage) BatchResult

	// SendToTopic delivers a message to a gateway topic.
	SendToTopic(ctx context.Context, topic string, msg *PushMessage) SendResult
}
