package middleware

import (
	"strconv"
	"time"

	"github.com/Webdevrishabh/ELMS/internal/shared/contextutil"
	"github.com/Webdevrishabh/ELMS/internal/shared/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AccessLog records one log line and one metrics sample per request.
func AccessLog(logger *zap.Logger, reg *metrics.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		elapsed := time.Since(start)

		reg.ObserveHTTP(route, c.Request.Method, strconv.Itoa(status), elapsed.Seconds())

		fields := []zap.Field{
			zap.String("request_id", contextutil.GetRequestID(c.Request.Context())),
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Duration("latency", elapsed),
			zap.String("client_ip", c.ClientIP()),
		}
		if uid := c.GetString(ContextUserID); uid != "" {
			fields = append(fields, zap.String("user_id", uid))
		}

		switch {
		case status >= 500:
			logger.Error("http request", fields...)
		case status >= 400:
			logger.Warn("http request", fields...)
		default:
			logger.Info("http request", fields...)
		}
	}
}
