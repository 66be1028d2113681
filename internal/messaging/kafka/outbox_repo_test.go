package kafka_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Webdevrishabh/ELMS/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOutboxEvent(t *testing.T) {
	id, agg := uuid.New(), uuid.New()

	ev, err := kafka.NewOutboxEvent(id, "req-1", "notification", agg, "notification.requested", "topic", map[string]string{"message": "hi"})

	require.NoError(t, err)
	assert.Equal(t, kafka.OutboxStatusPending, ev.Status)
	assert.JSONEq(t, `{"message":"hi"}`, string(ev.Payload))
	assert.NoError(t, kafka.ValidateOutboxEvent(ev))
}

func TestValidateOutboxEvent(t *testing.T) {
	valid := kafka.OutboxEvent{ID: uuid.New(), Topic: "t", Payload: []byte("{}"), Status: kafka.OutboxStatusPending}

	tests := []struct {
		name   string
		mutate func(e *kafka.OutboxEvent)
		errMsg string
	}{
		{"missing id", func(e *kafka.OutboxEvent) { e.ID = uuid.Nil }, "outbox id is required"},
		{"missing topic", func(e *kafka.OutboxEvent) { e.Topic = "" }, "outbox topic is required"},
		{"missing payload", func(e *kafka.OutboxEvent) { e.Payload = nil }, "outbox payload is required"},
		{"bad status", func(e *kafka.OutboxEvent) { e.Status = "lost" }, "invalid outbox status: lost"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			tt.mutate(&e)
			assert.EqualError(t, kafka.ValidateOutboxEvent(e), tt.errMsg)
		})
	}
}

func TestOutboxRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create within tx stores null request id", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		ev := kafka.OutboxEvent{ID: uuid.New(), AggregateID: uuid.New(), AggregateType: "notification", EventType: "e", Topic: "t", Payload: []byte("{}"), Status: kafka.OutboxStatusPending}

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO outbox_events`).
			WithArgs(ev.ID, nil, "notification", ev.AggregateID, "e", "t", []byte("{}"), kafka.OutboxStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		tx, err := db.Begin()
		require.NoError(t, err)
		require.NoError(t, kafka.NewOutboxRepository(db).WithTx(tx).Create(ctx, ev))
		require.NoError(t, tx.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative create invalid event", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		err = kafka.NewOutboxRepository(db).Create(ctx, kafka.OutboxEvent{})
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("list pending skips exhausted events", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		id, agg := uuid.New(), uuid.New()
		now := time.Now()
		mock.ExpectQuery(`FROM outbox_events`).
			WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, kafka.MaxOutboxRetries, 50).
			WillReturnRows(sqlmock.NewRows([]string{"id", "request_id", "aggregate_type", "aggregate_id", "event_type", "topic", "payload", "status", "retry_count", "next_retry_at"}).
				AddRow(id.String(), "req-1", "notification", agg.String(), "e", "t", []byte("{}"), kafka.OutboxStatusFailed, 2, now))

		events, err := kafka.NewOutboxRepository(db).ListPending(ctx, 50)

		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, id, events[0].ID)
		assert.Equal(t, "req-1", events[0].RequestID)
		assert.Equal(t, 2, events[0].RetryCount)
	})

	t.Run("mark failed", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		id := uuid.New()
		mock.ExpectExec(`UPDATE outbox_events`).
			WithArgs(id, kafka.OutboxStatusFailed, "broker down").
			WillReturnError(errors.New("db down"))

		err = kafka.NewOutboxRepository(db).MarkFailed(ctx, id, "broker down")
		assert.EqualError(t, err, "db down")
	})
}
