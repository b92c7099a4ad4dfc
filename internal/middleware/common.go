// Package middleware 提供 HTTP 中间件
package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hoteldesk/floorplan-backend/internal/common/response"
)

// 上下文键
const (
	ContextKeyRequestID = "request_id"
)

// RequestID 请求 ID 中间件
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 优先使用请求头中的 ID
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		// 设置到上下文和响应头
		c.Set(ContextKeyRequestID, requestID)
		c.Header("X-Request-ID", requestID)

		c.Next()
	}
}

// GetRequestID 获取请求 ID
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(ContextKeyRequestID); exists {
		return requestID.(string)
	}
	return ""
}

// Recovery 恢复中间件
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				// 获取堆栈信息
				stack := string(debug.Stack())

				// 记录日志
				logger.Error("Panic recovered",
					zap.String("request_id", GetRequestID(c)),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.String("ip", c.ClientIP()),
					zap.Any("error", err),
					zap.String("stack", stack),
				)

				// 返回错误响应
				c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorBody{
					Error: "internal server error",
				})
			}
		}()

		c.Next()
	}
}

// RealIP 真实 IP 中间件
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 优先从 X-Real-IP 获取
		realIP := c.GetHeader("X-Real-IP")
		if realIP != "" {
			c.Request.RemoteAddr = realIP
			c.Next()
			return
		}

		// 其次从 X-Forwarded-For 获取第一个 IP
		xff := c.GetHeader("X-Forwarded-For")
		if xff != "" {
			for i := 0; i < len(xff); i++ {
				if xff[i] == ',' {
					xff = xff[:i]
					break
				}
			}
			c.Request.RemoteAddr = xff
		}

		c.Next()
	}
}
