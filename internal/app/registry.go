package app

import (
	"database/sql"

	"github.com/Webdevrishabh/ELMS/internal/ai"
	"github.com/Webdevrishabh/ELMS/internal/auth"
	"github.com/Webdevrishabh/ELMS/internal/auth/token"
	"github.com/Webdevrishabh/ELMS/internal/config"
	"github.com/Webdevrishabh/ELMS/internal/dashboard"
	"github.com/Webdevrishabh/ELMS/internal/leave"
	"github.com/Webdevrishabh/ELMS/internal/messaging/kafka"
	"github.com/Webdevrishabh/ELMS/internal/middleware"
	"github.com/Webdevrishabh/ELMS/internal/notification"
	"github.com/Webdevrishabh/ELMS/internal/rbac"
	"github.com/Webdevrishabh/ELMS/internal/report"
	"github.com/Webdevrishabh/ELMS/internal/shared/metrics"
	"github.com/Webdevrishabh/ELMS/internal/team"
	"github.com/Webdevrishabh/ELMS/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// Deps are the shared infrastructure handles every module is built from.
type Deps struct {
	Config  *config.Config
	SQLDB   *sql.DB
	GormDB  *gorm.DB
	Redis   redis.Cmdable // nil when redis is disabled
	Metrics *metrics.Registry
	Logger  *zap.Logger
}

// newDispatcher picks how leave notifications leave the API process.
func newDispatcher(d Deps, store notification.Storer) leave.Dispatcher {
	if d.Config.Notification.DispatchMode == config.DispatchModeOutbox {
		outboxRepo := kafka.NewOutboxRepository(d.SQLDB)
		return notification.NewOutboxDispatcher(outboxRepo, d.Config.Kafka.NotificationTopic, d.Metrics, d.Logger)
	}
	return notification.NewDirectDispatcher(store, d.Metrics, d.Logger)
}

func registerModules(api *gin.RouterGroup, d Deps) error {
	cfg := d.Config

	// --- Repositories ---
	authRepo := auth.NewRepository(d.GormDB)
	teamRepo := team.NewRepository(d.GormDB)
	userRepo := user.NewRepository(d.GormDB)
	leaveRepo := leave.NewRepository(d.GormDB)
	notificationRepo := notification.NewRepository(d.GormDB)
	dashboardRepo := dashboard.NewRepository(d.GormDB)
	aiRepo := ai.NewRepository(d.GormDB)
	reportRepo := report.NewRepository(d.GormDB)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService(d.Logger)
	if err != nil {
		return err
	}
	tokens := token.NewManager(cfg.Auth)

	// --- Services ---
	authService := auth.NewService(authRepo, tokens, d.Logger)
	teamService := team.NewService(d.SQLDB, teamRepo, d.Redis, d.Logger)
	userService := user.NewService(d.SQLDB, userRepo, d.Logger)
	notificationService := notification.NewService(notificationRepo, d.Logger)
	leaveService := leave.NewService(d.SQLDB, leaveRepo, newDispatcher(d, notificationService), cfg.Leave, d.Metrics, d.Logger)
	dashboardService := dashboard.NewService(dashboardRepo, d.Logger)
	aiService := ai.NewService(aiRepo, ai.NewCompleter(cfg.AI), d.Metrics, d.Logger)
	reportService := report.NewService(leaveRepo, reportRepo, d.Logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, cfg.Auth.TokenTTL, cfg.Server.Mode == gin.ReleaseMode)
	teamHandler := team.NewHandler(teamService)
	userHandler := user.NewHandler(userService, d.Logger)
	leaveHandler := leave.NewHandler(leaveService, d.Logger)
	notificationHandler := notification.NewHandler(notificationService)
	dashboardHandler := dashboard.NewHandler(dashboardService)
	aiHandler := ai.NewHandler(aiService)
	reportHandler := report.NewHandler(reportService)
	rbacHandler := rbac.NewHandler(rbacService, d.Logger)

	// --- Routes Registration ---
	auth.RegisterRoutes(api, authHandler, tokens, cfg.RateLimit)

	protected := api.Group("")
	protected.Use(
		middleware.AuthMiddleware(tokens),
		middleware.ContextLogger(d.Logger),
		middleware.RateLimitByUser(rate.Limit(cfg.RateLimit.UserRPS), cfg.RateLimit.UserBurst),
	)
	{
		users := protected.Group("/users")
		team.RegisterRoutes(users, teamHandler, rbacService)
		user.RegisterRoutes(users, userHandler, rbacService)

		leave.RegisterRoutes(protected, leaveHandler, rbacService, d.Redis)
		notification.RegisterRoutes(protected, notificationHandler, rbacService)
		dashboard.RegisterRoutes(protected, dashboardHandler, rbacService)
		ai.RegisterRoutes(protected, aiHandler, rbacService)
		report.RegisterRoutes(protected, reportHandler, rbacService)
		rbac.RegisterRoutes(protected, rbacHandler, rbacService)
	}

	return nil
}
