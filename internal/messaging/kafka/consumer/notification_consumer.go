package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Webdevrishabh/ELMS/internal/events"
	"github.com/Webdevrishabh/ELMS/internal/shared/apperror"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	eventIDConstraint = "uq_notifications_event_id"

	storeAttempts = 5
	storeBackoff  = 500 * time.Millisecond
)

// MessageReader is the part of *kafkago.Reader the consumer loop needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// NotificationStore persists a notification event as a row.
type NotificationStore interface {
	Store(ctx context.Context, ev events.NotificationRequested) error
}

// Outcome says what the loop should do with a fetched message.
type Outcome int

const (
	// OutcomeStored means the row was written; commit.
	OutcomeStored Outcome = iota
	// OutcomeSkipped means the message can never succeed or was already stored; commit.
	OutcomeSkipped
	// OutcomeRetry means the store failed and the same message may succeed later.
	OutcomeRetry
)

// HandleNotification decodes one message and writes it through the store.
func HandleNotification(ctx context.Context, msg kafkago.Message, store NotificationStore) (Outcome, error) {
	var ev events.NotificationRequested
	if err := json.Unmarshal(msg.Value, &ev); err != nil {
		return OutcomeSkipped, fmt.Errorf("decode notification event: %w", err)
	}
	if ev.UserID == uuid.Nil || ev.Message == "" {
		return OutcomeSkipped, fmt.Errorf("notification event %s missing user or message", ev.EventID)
	}

	if err := store.Store(ctx, ev); err != nil {
		if apperror.IsUniqueViolation(err, eventIDConstraint) {
			return OutcomeSkipped, nil
		}
		return OutcomeRetry, err
	}
	return OutcomeStored, nil
}

// StoreWithRetry handles msg, retrying transient store failures in place with a
// doubling backoff. It returns OutcomeRetry only when every attempt failed or ctx ended.
// The reader has already moved past msg, so the caller decides whether to commit.
func StoreWithRetry(
	ctx context.Context,
	msg kafkago.Message,
	store NotificationStore,
	attempts int,
	backoff time.Duration,
) (Outcome, error) {
	var (
		outcome Outcome
		err     error
	)
	for attempt := 1; ; attempt++ {
		outcome, err = HandleNotification(ctx, msg, store)
		if outcome != OutcomeRetry || attempt >= attempts {
			return outcome, err
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return OutcomeRetry, err
		case <-timer.C:
		}
		backoff *= 2
	}
}

// ConsumeNotifications stores every notification.requested message until ctx is done.
// A message whose store keeps failing is logged and committed: the reader fetches
// past it regardless, and notifications are fire-and-forget.
func ConsumeNotifications(
	ctx context.Context,
	reader MessageReader,
	store NotificationStore,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.notification")
	log.Info("notification consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("notification consumer stopped")
				return
			}
			log.Error("fetch notification message failed", zap.Error(err))
			continue
		}

		outcome, err := StoreWithRetry(ctx, msg, store, storeAttempts, storeBackoff)
		switch outcome {
		case OutcomeRetry:
			if ctx.Err() != nil {
				log.Info("notification consumer stopped")
				return
			}
			log.Error("store notification failed, dropping message",
				zap.Int("partition", msg.Partition),
				zap.Int64("offset", msg.Offset),
				zap.Int("attempts", storeAttempts),
				zap.Error(err),
			)
		case OutcomeSkipped:
			if err != nil {
				log.Warn("discarding notification message", zap.Int64("offset", msg.Offset), zap.Error(err))
			} else {
				log.Warn("notification already stored for event, skipping", zap.Int64("offset", msg.Offset))
			}
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit notification message failed", zap.Error(err))
			continue
		}

		if outcome == OutcomeStored {
			log.Debug("notification stored from event", zap.Int64("offset", msg.Offset))
		}
	}
}
