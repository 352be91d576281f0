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

	"paygate/config"
	"paygate/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	event := &service.ChargeEvent{
		RequestID:  "req-1",
		Event:      service.ChargeEventCompleted,
		Reference:  "ref-1",
		Status:     service.ChargeStatusSuccessful,
		ReceivedAt: time.Now().UTC().Truncate(time.Second),
	}

	var received service.ChargeEvent
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-1", r.Header.Get("X-Request-Id"))

		var msg PushMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		assert.Equal(t, "ref-1", msg.Message.Attributes["tx_ref"])
		assert.Equal(t, "req-1", msg.Message.Attributes["request_id"])

		data, err := base64.StdEncoding.DecodeString(msg.Message.Data)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, &received))

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	require.NoError(t, publisher.PublishChargeEvent(context.Background(), event))
	assert.Equal(t, *event, received)
	assert.NoError(t, publisher.Close())
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	err := publisher.PublishChargeEvent(context.Background(), &service.ChargeEvent{Reference: "ref-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		pubsub  *config.PubSubConfig
		enabled bool
		wantErr bool
	}{
		{name: "not configured", pubsub: nil},
		{name: "empty provider", pubsub: &config.PubSubConfig{}},
		{name: "local", pubsub: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:3001/push"}, enabled: true},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: "google", TopicID: "t"}, wantErr: true},
		{name: "unknown", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: newDiscardLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.NotNil(t, publisher)
			assert.Equal(t, tt.enabled, publisher.Enabled())
		})
	}
}

func TestNoopPublisher_DropsEvents(t *testing.T) {
	publisher := NewNoopPublisher(newDiscardLogger())

	assert.False(t, publisher.Enabled())
	assert.NoError(t, publisher.PublishChargeEvent(context.Background(), &service.ChargeEvent{Reference: "ref-1"}))
	assert.NoError(t, publisher.Close())
}
