package app_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Webdevrishabh/ELMS/internal/app"
	"github.com/Webdevrishabh/ELMS/internal/config"
	"github.com/Webdevrishabh/ELMS/internal/shared/metrics"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T, mode string) *gin.Engine {
	t.Helper()

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)

	cfg := &config.Config{
		Server:       config.ServerConfig{Port: 3000, Mode: gin.TestMode},
		Auth:         config.AuthConfig{JWTSecret: "0123456789abcdef0123", TokenTTL: time.Hour, Issuer: "elms"},
		Kafka:        config.KafkaConfig{NotificationTopic: "elms.notification.requested.v1"},
		Notification: config.NotificationConfig{DispatchMode: mode},
		RateLimit:    config.RateLimitConfig{LoginRPS: 1, LoginBurst: 5, UserRPS: 10, UserBurst: 20},
	}

	r, err := app.NewRouter(app.Deps{
		Config:  cfg,
		SQLDB:   db,
		GormDB:  gdb,
		Metrics: metrics.New(),
		Logger:  zap.NewNop(),
	})
	require.NoError(t, err)
	return r
}

func TestNewRouter(t *testing.T) {
	r := newTestRouter(t, config.DispatchModeDirect)

	t.Run("health", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok","service":"elms-api"}`, w.Body.String())
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("metrics exposed after a request", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "elms_http_requests_total")
	})

	t.Run("negative protected route without token", func(t *testing.T) {
		for _, path := range []string{"/api/leaves/my", "/api/dashboard", "/api/notifications", "/api/users"} {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		}
	})
}

func TestNewRouter_OutboxMode(t *testing.T) {
	r := newTestRouter(t, config.DispatchModeOutbox)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
