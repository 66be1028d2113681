package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Webdevrishabh/ELMS/internal/app"
	"github.com/Webdevrishabh/ELMS/internal/config"
	"github.com/Webdevrishabh/ELMS/internal/shared/apperror"
	"github.com/Webdevrishabh/ELMS/internal/shared/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("ELMS_CONFIG"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	l, flush, err := logger.Install(cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer flush()

	apperror.Init()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunAPI(ctx, cfg, l); err != nil {
		l.Fatal("run api failed", zap.Error(err))
	}
}
