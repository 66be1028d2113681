package app

import (
	"net/http"

	"github.com/Webdevrishabh/ELMS/internal/middleware"

	"github.com/gin-gonic/gin"
)

const serviceName = "elms-api"

// NewRouter builds the gin engine with global middleware, health, metrics and /api.
func NewRouter(d Deps) (*gin.Engine, error) {
	if d.Config.Server.Mode != "" {
		gin.SetMode(d.Config.Server.Mode)
	}

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.AccessLog(d.Logger, d.Metrics),
	)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": serviceName})
	})
	r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))

	if err := registerModules(r.Group("/api"), d); err != nil {
		return nil, err
	}
	return r, nil
}
