package app

import (
	"context"
	"errors"

	"github.com/Webdevrishabh/ELMS/internal/bootstrap"
	"github.com/Webdevrishabh/ELMS/internal/config"
	"github.com/Webdevrishabh/ELMS/internal/database"
	"github.com/Webdevrishabh/ELMS/internal/shared/connection"
	"github.com/Webdevrishabh/ELMS/internal/shared/metrics"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisRetries = 5

// RunAPI connects infrastructure, prepares the schema and serves HTTP until ctx is done.
func RunAPI(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.api")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, logger)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.Database.AutoMigrate {
		if err := database.RunMigrations(sqlDB, log); err != nil {
			return err
		}
	}
	if cfg.Database.Seed {
		if err := database.Seed(ctx, gormDB, logger); err != nil {
			return err
		}
	}

	var rdb redis.Cmdable
	if cfg.Redis.Enabled {
		client, err := connection.ConnectRedisWithRetry(cfg.Redis, redisRetries, logger)
		if err != nil {
			return err
		}
		defer client.Close()
		rdb = client
	}

	router, err := NewRouter(Deps{
		Config:  cfg,
		SQLDB:   sqlDB,
		GormDB:  gormDB,
		Redis:   rdb,
		Metrics: metrics.New(),
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	server := bootstrap.NewHTTPServer(router, cfg.Server)
	if err := bootstrap.RunHTTPServer(ctx, server, bootstrap.NewStdoutAuditLogger(logger), logger); err != nil {
		return err
	}
	return nil
}

var errKafkaNotConfigured = errors.New("kafka.brokers is required")
