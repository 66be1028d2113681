package producer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Webdevrishabh/ELMS/internal/messaging/kafka"
	kafkaMock "github.com/Webdevrishabh/ELMS/internal/messaging/kafka/mock"
	"github.com/Webdevrishabh/ELMS/internal/messaging/kafka/producer"
	"github.com/Webdevrishabh/ELMS/internal/shared/metrics"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	failTopic string
	written   []kafkago.Message
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if m.Topic == w.failTopic {
			return errors.New("leader not available")
		}
		w.written = append(w.written, m)
	}
	return nil
}

func pendingEvent(t *testing.T, topic string) kafka.OutboxEvent {
	t.Helper()
	ev, err := kafka.NewOutboxEvent(uuid.New(), "req-1", "notification", uuid.New(), "notification.requested", topic, map[string]string{"message": "hi"})
	require.NoError(t, err)
	return ev
}

func headerValue(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestProcessPendingEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes and marks sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{}
		reg := metrics.New()

		ev := pendingEvent(t, "elms.notification.requested.v1")
		repo.EXPECT().ListPending(ctx, 50).Return([]kafka.OutboxEvent{ev}, nil)
		repo.EXPECT().MarkSent(ctx, ev.ID).Return(nil)

		sent, err := producer.ProcessPendingEvents(ctx, repo, writer, reg, zap.NewNop())

		require.NoError(t, err)
		assert.Equal(t, 1, sent)
		require.Len(t, writer.written, 1)
		msg := writer.written[0]
		assert.Equal(t, ev.AggregateID.String(), string(msg.Key))
		assert.Equal(t, ev.Payload, msg.Value)
		assert.Equal(t, ev.ID.String(), headerValue(msg, "event_id"))
		assert.Equal(t, "notification.requested", headerValue(msg, "event_type"))
		assert.Equal(t, "req-1", headerValue(msg, "request_id"))

		count, err := testutil.GatherAndCount(reg.Gatherer(), "elms_outbox_events_total")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("negative publish failure marks failed and continues", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{failTopic: "broken"}

		bad := pendingEvent(t, "broken")
		good := pendingEvent(t, "elms.notification.requested.v1")
		repo.EXPECT().ListPending(ctx, 50).Return([]kafka.OutboxEvent{bad, good}, nil)
		repo.EXPECT().MarkFailed(ctx, bad.ID, "leader not available").Return(nil)
		repo.EXPECT().MarkSent(ctx, good.ID).Return(nil)

		sent, err := producer.ProcessPendingEvents(ctx, repo, writer, nil, zap.NewNop())

		require.NoError(t, err)
		assert.Equal(t, 1, sent)
		assert.Len(t, writer.written, 1)
	})

	t.Run("negative list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		repo.EXPECT().ListPending(ctx, 50).Return(nil, errors.New("db down"))

		_, err := producer.ProcessPendingEvents(ctx, repo, &fakeWriter{}, nil, zap.NewNop())
		assert.Error(t, err)
	})
}
