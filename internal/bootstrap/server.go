package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Webdevrishabh/ELMS/internal/config"
	"github.com/Webdevrishabh/ELMS/internal/middleware"

	"github.com/rs/cors"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// NewCORS wraps h with the configured cross-origin policy.
func NewCORS(h http.Handler, cfg config.CORSConfig) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Authorization", "Content-Type",
			middleware.HeaderIdempotencyKey, middleware.HeaderRequestID,
		},
		ExposedHeaders:   []string{middleware.HeaderRequestID, "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	})
	return c.Handler(h)
}

func NewHTTPServer(h http.Handler, cfg config.ServerConfig) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      NewCORS(h, cfg.CORS),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

// RunHTTPServer serves until ctx is cancelled, then shuts down gracefully.
func RunHTTPServer(ctx context.Context, server *http.Server, auditLogger AuditLogger, logger *zap.Logger) error {
	log := logger.Named("http.server")
	errCh := make(chan error, 1)

	go func() {
		log.Info("HTTP server running", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen and serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutdown signal received")

	auditLogger.Log(context.Background(), AuditLog{
		Action:  "SERVER_SHUTDOWN",
		Message: "Server is shutting down",
		Meta: map[string]any{
			"addr": server.Addr,
		},
	})

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
		return err
	}
	log.Info("Server exited gracefully")
	return nil
}
