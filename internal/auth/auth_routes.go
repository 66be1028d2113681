package auth

import (
	"github.com/Webdevrishabh/ELMS/internal/config"
	"github.com/Webdevrishabh/ELMS/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, parser middleware.TokenParser, limits config.RateLimitConfig) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(rate.Limit(limits.LoginRPS), limits.LoginBurst), handler.Login)
		auth.POST("/logout", handler.Logout)

		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(parser))
		protected.GET("/me", handler.Me)
		protected.POST("/change-password", middleware.RateLimitByUser(rate.Limit(limits.UserRPS), limits.UserBurst), handler.ChangePassword)
	}
}
