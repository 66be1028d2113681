package notification_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Webdevrishabh/ELMS/internal/events"
	"github.com/Webdevrishabh/ELMS/internal/messaging/kafka"
	kafkaMock "github.com/Webdevrishabh/ELMS/internal/messaging/kafka/mock"
	"github.com/Webdevrishabh/ELMS/internal/notification"
	"github.com/Webdevrishabh/ELMS/internal/shared/contextutil"
	"github.com/Webdevrishabh/ELMS/internal/shared/metrics"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type flakyStore struct {
	failFor map[uuid.UUID]bool
	stored  []events.NotificationRequested
}

func (s *flakyStore) Store(_ context.Context, ev events.NotificationRequested) error {
	if s.failFor[ev.UserID] {
		return errors.New("insert notification: connection refused")
	}
	s.stored = append(s.stored, ev)
	return nil
}

func TestDirectDispatcher(t *testing.T) {
	bad := uuid.New()
	good := uuid.New()
	store := &flakyStore{failFor: map[uuid.UUID]bool{bad: true}}
	reg := metrics.New()

	d := notification.NewDirectDispatcher(store, reg, zap.NewNop())

	assert.NotPanics(t, func() {
		d.Dispatch(context.Background(), events.Notify([]uuid.UUID{bad, good}, "hello", events.NotificationLeaveApplied, nil))
	})

	require.Len(t, store.stored, 1)
	assert.Equal(t, good, store.stored[0].UserID)

	count, err := testutil.GatherAndCount(reg.Gatherer(), "elms_notifications_dispatched_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestOutboxDispatcher(t *testing.T) {
	ctrl := gomock.NewController(t)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)
	d := notification.NewOutboxDispatcher(outbox, "", nil, zap.NewNop())

	leaveID := uuid.New()
	ev := events.NewNotificationRequested(uuid.New(), "Your leave request has been approved!", events.NotificationLeaveApproved, &leaveID)
	ctx := contextutil.WithRequestID(context.Background(), "req-42")

	t.Run("enqueues one outbox row per event", func(t *testing.T) {
		outbox.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
				assert.Equal(t, ev.EventID, e.ID)
				assert.Equal(t, "req-42", e.RequestID)
				assert.Equal(t, ev.UserID, e.AggregateID)
				assert.Equal(t, events.NotificationRequestedTopic, e.Topic)
				assert.Equal(t, events.NotificationRequestedType, e.EventType)
				assert.Equal(t, kafka.OutboxStatusPending, e.Status)

				var decoded events.NotificationRequested
				require.NoError(t, json.Unmarshal(e.Payload, &decoded))
				assert.Equal(t, ev.Message, decoded.Message)
				assert.Equal(t, leaveID, *decoded.LeaveID)
				return nil
			})

		d.Dispatch(ctx, []events.NotificationRequested{ev})
	})

	t.Run("negative outbox failure is swallowed", func(t *testing.T) {
		outbox.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("outbox insert failed"))

		assert.NotPanics(t, func() {
			d.Dispatch(ctx, []events.NotificationRequested{ev})
		})
	})
}
