package notification

import (
	"context"

	"github.com/Webdevrishabh/ELMS/internal/config"
	"github.com/Webdevrishabh/ELMS/internal/events"
	"github.com/Webdevrishabh/ELMS/internal/messaging/kafka"
	"github.com/Webdevrishabh/ELMS/internal/shared/contextutil"
	"github.com/Webdevrishabh/ELMS/internal/shared/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const aggregateNotification = "notification"

// Storer persists one requested notification. Service implements it.
type Storer interface {
	Store(ctx context.Context, ev events.NotificationRequested) error
}

// DirectDispatcher writes notification rows synchronously through the sink.
type DirectDispatcher struct {
	store   Storer
	metrics *metrics.Registry
	logger  *zap.Logger
}

func NewDirectDispatcher(store Storer, m *metrics.Registry, logger ...*zap.Logger) *DirectDispatcher {
	l := zap.L().Named("notification.dispatcher")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.dispatcher")
	}
	return &DirectDispatcher{store: store, metrics: m, logger: l}
}

func (d *DirectDispatcher) Dispatch(ctx context.Context, notes []events.NotificationRequested) {
	l := contextutil.GetLogger(ctx, d.logger)
	for _, ev := range notes {
		if err := d.store.Store(ctx, ev); err != nil {
			l.Warn("store notification failed",
				zap.String("event_id", ev.EventID.String()),
				zap.String("user_id", ev.UserID.String()),
				zap.String("type", ev.Type),
				zap.Error(err),
			)
			d.metrics.NotificationDispatched(config.DispatchModeDirect, "failed")
			continue
		}
		d.metrics.NotificationDispatched(config.DispatchModeDirect, "ok")
	}
}

// OutboxDispatcher records each notification in outbox_events for the relay worker.
type OutboxDispatcher struct {
	outbox  kafka.OutboxRepository
	topic   string
	metrics *metrics.Registry
	logger  *zap.Logger
}

func NewOutboxDispatcher(outbox kafka.OutboxRepository, topic string, m *metrics.Registry, logger ...*zap.Logger) *OutboxDispatcher {
	l := zap.L().Named("notification.dispatcher")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.dispatcher")
	}
	if topic == "" {
		topic = events.NotificationRequestedTopic
	}
	return &OutboxDispatcher{outbox: outbox, topic: topic, metrics: m, logger: l}
}

func (d *OutboxDispatcher) Dispatch(ctx context.Context, notes []events.NotificationRequested) {
	l := contextutil.GetLogger(ctx, d.logger)
	requestID := contextutil.GetRequestID(ctx)

	for _, ev := range notes {
		if ev.EventID == uuid.Nil {
			ev.EventID = uuid.New()
		}

		event, err := kafka.NewOutboxEvent(
			ev.EventID, requestID, aggregateNotification, ev.UserID,
			events.NotificationRequestedType, d.topic, ev,
		)
		if err == nil {
			err = d.outbox.Create(ctx, event)
		}
		if err != nil {
			l.Warn("enqueue notification failed",
				zap.String("event_id", ev.EventID.String()),
				zap.String("user_id", ev.UserID.String()),
				zap.Error(err),
			)
			d.metrics.NotificationDispatched(config.DispatchModeOutbox, "failed")
			continue
		}
		d.metrics.NotificationDispatched(config.DispatchModeOutbox, "ok")
	}
}
