package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"delishub/config"
	"delishub/internal/domain/constants"
	"delishub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEvent() *service.AccountEvent {
	return &service.AccountEvent{
		RequestID:  "req-1",
		EventID:    "evt-1",
		Type:       constants.EventTypeAccountDeleted,
		UserID:     "0f8fad5b-d9cb-469f-a165-70867728950e",
		OccurredAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishAccountEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newTestLogger())
	event := newTestEvent()

	require.NoError(t, publisher.PublishAccountEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, constants.EventTypeAccountDeleted, received.Message.Attributes["event_type"])
	assert.Equal(t, event.UserID, received.Message.Attributes["user_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.AccountEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newTestLogger())

	assert.Error(t, publisher.PublishAccountEvent(context.Background(), newTestEvent()))
	assert.NoError(t, publisher.Close())
}

func TestEventAttributes_OmitsEmptyRequestID(t *testing.T) {
	event := newTestEvent()
	event.RequestID = ""

	attributes := eventAttributes(event)

	_, ok := attributes["request_id"]
	assert.False(t, ok)
	assert.Equal(t, "evt-1", attributes["event_id"])
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.PubSubConfig
		wantErr  bool
		wantNoop bool
	}{
		{name: "not configured", cfg: nil, wantNoop: true},
		{name: "empty provider", cfg: &config.PubSubConfig{}, wantNoop: true},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:9999/push"}},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}, wantErr: true},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: true},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: newTestLogger(),
			})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.NotNil(t, publisher)

			_, isNoop := publisher.(*noopPublisher)
			assert.Equal(t, tt.wantNoop, isNoop)
			if isNoop {
				assert.NoError(t, publisher.PublishAccountEvent(context.Background(), newTestEvent()))
			}
		})
	}
}
