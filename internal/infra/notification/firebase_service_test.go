package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pushgate/config"
	"pushgate/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUnconfiguredMessenger() service.PushMessenger {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewFirebaseMessenger(logger, &config.Config{})
}

func TestFirebaseMessenger_Unconfigured_Available(t *testing.T) {
	messenger := newUnconfiguredMessenger()

	assert.False(t, messenger.Available(context.Background()))
}

func TestFirebaseMessenger_Unconfigured_SendReportsFailure(t *testing.T) {
	messenger := newUnconfiguredMessenger()

	result := messenger.Send(context.Background(), "some-token", &service.PushMessage{
		Title: "Test",
		Body:  "Body",
	})

	assert.False(t, result.Success)
	assert.Equal(t, "some-token", result.Token)
	assert.Equal(t, notConfiguredError, result.Error)
	assert.Empty(t, result.MessageID)
}

func TestFirebaseMessenger_Unconfigured_SendAllUniformFailures(t *testing.T) {
	messenger := newUnconfiguredMessenger()

	tokens := []string{"token-a", "token-b", "token-c"}
	result := messenger.SendAll(context.Background(), tokens, &service.PushMessage{
		Title: "Test",
		Body:  "Body",
	})

	assert.Equal(t, 0, result.SuccessCount)
	assert.Equal(t, 3, result.FailureCount)
	require.Len(t, result.Responses, 3)

	// Responses stay in input order even when every send fails.
	for idx, resp := range result.Responses {
		assert.Equal(t, tokens[idx], resp.Token)
		assert.False(t, resp.Success)
		assert.Equal(t, notConfiguredError, resp.Error)
	}
}

func TestFirebaseMessenger_Unconfigured_SendToTopic(t *testing.T) {
	messenger := newUnconfiguredMessenger()

	result := messenger.SendToTopic(context.Background(), "announcements", &service.PushMessage{
		Title: "Test",
		Body:  "Body",
	})

	assert.False(t, result.Success)
	assert.Equal(t, notConfiguredError, result.Error)
}

func TestFirebaseMessenger_SendAllEmptyTokenList(t *testing.T) {
	messenger := newUnconfiguredMessenger()

	result := messenger.SendAll(context.Background(), nil, &service.PushMessage{Title: "Test"})

	assert.Equal(t, 0, result.SuccessCount)
	assert.Equal(t, 0, result.FailureCount)
	assert.Empty(t, result.Responses)
}

func TestFirebaseMessenger_BrokenCredentialsStayUnavailable(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	messenger := NewFirebaseMessenger(logger, &config.Config{
		Firebase: &config.FirebaseConfig{
			ProjectID:       "demo-project",
			CredentialsPath: "/nonexistent/service-account.json",
		},
	})

	ctx := context.Background()

	// Initialization fails once and the failure is memoized.
	assert.False(t, messenger.Available(ctx))
	assert.False(t, messenger.Available(ctx))

	result := messenger.Send(ctx, "some-token", &service.PushMessage{Title: "Test"})
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
}
