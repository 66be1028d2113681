package consumer_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Webdevrishabh/ELMS/internal/events"
	"github.com/Webdevrishabh/ELMS/internal/messaging/kafka/consumer"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubStore struct {
	err      error
	failures int // fail the first n calls with err, 0 means always when err is set
	calls    int
	stored   []events.NotificationRequested
}

func (s *stubStore) Store(_ context.Context, ev events.NotificationRequested) error {
	s.calls++
	if s.err != nil && (s.failures == 0 || s.calls <= s.failures) {
		return s.err
	}
	s.stored = append(s.stored, ev)
	return nil
}

func encode(t *testing.T, ev events.NotificationRequested) kafkago.Message {
	t.Helper()
	b, err := json.Marshal(ev)
	require.NoError(t, err)
	return kafkago.Message{Value: b}
}

func TestHandleNotification(t *testing.T) {
	ctx := context.Background()
	ev := events.NewNotificationRequested(uuid.New(), "New leave request from Alice", events.NotificationLeavePending, nil)

	t.Run("stored", func(t *testing.T) {
		store := &stubStore{}
		outcome, err := consumer.HandleNotification(ctx, encode(t, ev), store)

		require.NoError(t, err)
		assert.Equal(t, consumer.OutcomeStored, outcome)
		require.Len(t, store.stored, 1)
		assert.Equal(t, ev.EventID, store.stored[0].EventID)
	})

	t.Run("duplicate event is skipped", func(t *testing.T) {
		store := &stubStore{err: &pgconn.PgError{Code: "23505", ConstraintName: "uq_notifications_event_id"}}
		outcome, err := consumer.HandleNotification(ctx, encode(t, ev), store)

		assert.NoError(t, err)
		assert.Equal(t, consumer.OutcomeSkipped, outcome)
	})

	t.Run("negative malformed payload", func(t *testing.T) {
		outcome, err := consumer.HandleNotification(ctx, kafkago.Message{Value: []byte("{")}, &stubStore{})

		assert.Error(t, err)
		assert.Equal(t, consumer.OutcomeSkipped, outcome)
	})

	t.Run("negative missing recipient", func(t *testing.T) {
		bad := ev
		bad.UserID = uuid.Nil
		outcome, err := consumer.HandleNotification(ctx, encode(t, bad), &stubStore{})

		assert.Error(t, err)
		assert.Equal(t, consumer.OutcomeSkipped, outcome)
	})

	t.Run("negative store failure is retried", func(t *testing.T) {
		outcome, err := consumer.HandleNotification(ctx, encode(t, ev), &stubStore{err: errors.New("db down")})

		assert.Error(t, err)
		assert.Equal(t, consumer.OutcomeRetry, outcome)
	})
}

func TestStoreWithRetry(t *testing.T) {
	ctx := context.Background()
	msg := encode(t, events.NewNotificationRequested(uuid.New(), "hello", events.NotificationLeaveApplied, nil))

	t.Run("transient failure succeeds on a later attempt", func(t *testing.T) {
		store := &stubStore{err: errors.New("db down"), failures: 2}

		outcome, err := consumer.StoreWithRetry(ctx, msg, store, 5, time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, consumer.OutcomeStored, outcome)
		assert.Equal(t, 3, store.calls)
		assert.Len(t, store.stored, 1)
	})

	t.Run("negative attempts exhausted", func(t *testing.T) {
		store := &stubStore{err: errors.New("db down")}

		outcome, err := consumer.StoreWithRetry(ctx, msg, store, 3, time.Millisecond)

		assert.EqualError(t, err, "db down")
		assert.Equal(t, consumer.OutcomeRetry, outcome)
		assert.Equal(t, 3, store.calls)
	})

	t.Run("negative skipped message is not retried", func(t *testing.T) {
		store := &stubStore{}

		outcome, err := consumer.StoreWithRetry(ctx, kafkago.Message{Value: []byte("{")}, store, 3, time.Millisecond)

		assert.Error(t, err)
		assert.Equal(t, consumer.OutcomeSkipped, outcome)
		assert.Zero(t, store.calls)
	})

	t.Run("negative cancelled while backing off", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		store := &stubStore{err: errors.New("db down")}

		outcome, _ := consumer.StoreWithRetry(cctx, msg, store, 5, time.Hour)

		assert.Equal(t, consumer.OutcomeRetry, outcome)
		assert.Equal(t, 1, store.calls)
	})
}

type scriptedReader struct {
	msgs      []kafkago.Message
	committed []kafkago.Message
	cancel    context.CancelFunc
}

func (r *scriptedReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafkago.Message{}, ctx.Err()
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *scriptedReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

func TestConsumeNotifications(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ev := events.NewNotificationRequested(uuid.New(), "hello", events.NotificationLeaveApplied, nil)
	good := encode(t, ev)
	good.Offset = 1
	junk := kafkago.Message{Value: []byte("not json"), Offset: 2}

	reader := &scriptedReader{msgs: []kafkago.Message{good, junk}, cancel: cancel}
	store := &stubStore{}

	consumer.ConsumeNotifications(ctx, reader, store, zap.NewNop())

	assert.Len(t, store.stored, 1)
	assert.Len(t, reader.committed, 2)
}

func TestConsumeNotifications_TransientStoreFailure(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	first := encode(t, events.NewNotificationRequested(uuid.New(), "first", events.NotificationLeaveApplied, nil))
	first.Offset = 1
	second := encode(t, events.NewNotificationRequested(uuid.New(), "second", events.NotificationLeaveApplied, nil))
	second.Offset = 2

	reader := &scriptedReader{msgs: []kafkago.Message{first, second}, cancel: cancel}
	store := &stubStore{err: errors.New("db down"), failures: 1}

	consumer.ConsumeNotifications(ctx, reader, store, zap.NewNop())

	require.Len(t, store.stored, 2)
	assert.Equal(t, "first", store.stored[0].Message)
	assert.Equal(t, "second", store.stored[1].Message)
	assert.Len(t, reader.committed, 2)
}
