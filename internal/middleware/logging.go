// Package middleware 提供 HTTP 中间件
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AccessLog 请求日志中间件
func AccessLog(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		// 跳过健康检查
		if path == "/health" || path == "/ping" || path == "/ready" {
			c.Next()
			return
		}

		start := time.Now()

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()

		fields := []zap.Field{
			zap.String("request_id", GetRequestID(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", statusCode),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
		}

		// 资源型请求带上路由头，便于排查
		if resource := c.GetHeader("X-Path"); resource != "" {
			fields = append(fields, zap.String("resource", resource))
		}

		switch {
		case statusCode >= 500:
			logger.Error("HTTP request", fields...)
		case statusCode >= 400:
			logger.Warn("HTTP request", fields...)
		default:
			logger.Info("HTTP request", fields...)
		}
	}
}
