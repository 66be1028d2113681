package app

import (
	"context"

	"github.com/Webdevrishabh/ELMS/internal/config"
	"github.com/Webdevrishabh/ELMS/internal/messaging/kafka"
	"github.com/Webdevrishabh/ELMS/internal/messaging/kafka/producer"
	"github.com/Webdevrishabh/ELMS/internal/shared/connection"
	"github.com/Webdevrishabh/ELMS/internal/shared/metrics"

	"go.uber.org/zap"
)

const kafkaRetries = 5

// RunWorker relays outbox_events to Kafka until ctx is done.
func RunWorker(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	if len(cfg.Kafka.Brokers) == 0 {
		return errKafkaNotConfigured
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, logger)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	writer, err := connection.ConnectKafkaWithRetry(cfg.Kafka, kafkaRetries, logger)
	if err != nil {
		return err
	}
	defer writer.Close()

	producer.ProcessOutboxEvents(
		ctx,
		kafka.NewOutboxRepository(sqlDB),
		writer,
		metrics.New(),
		logger,
		cfg.Kafka.PollInterval,
	)
	return nil
}
