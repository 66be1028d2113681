package app

import (
	"context"

	"github.com/Webdevrishabh/ELMS/internal/config"
	"github.com/Webdevrishabh/ELMS/internal/events"
	"github.com/Webdevrishabh/ELMS/internal/messaging/kafka/consumer"
	"github.com/Webdevrishabh/ELMS/internal/notification"
	"github.com/Webdevrishabh/ELMS/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer writes notification rows from the notification topic until ctx is done.
func RunConsumer(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
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

	topic := cfg.Kafka.NotificationTopic
	if topic == "" {
		topic = events.NotificationRequestedTopic
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        cfg.Kafka.Brokers,
		Topic:          topic,
		GroupID:        cfg.Kafka.ConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	store := notification.NewService(notification.NewRepository(gormDB), logger)
	consumer.ConsumeNotifications(ctx, reader, store, logger)
	return nil
}
