// Package middleware 提供 HTTP 中间件
package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig CORS 配置
type CORSConfig struct {
	AllowOrigins []string // 允许的源
	AllowMethods []string // 允许的方法
	AllowHeaders []string // 允许的头
	MaxAge       int      // 预检请求缓存时间（秒）
}

// DefaultCORSConfig 默认 CORS 配置
// 前端部署域名不固定，保持与云函数时代一致的全放行策略
func DefaultCORSConfig() *CORSConfig {
	return &CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowHeaders: []string{
			"Content-Type",
			"X-Path",
			"X-Floor-Id",
			"X-Room-Id",
			"X-Request-ID",
		},
		MaxAge: 86400,
	}
}

// CORS 跨域中间件
// OPTIONS 预检直接返回 200 空响应体，不触达任何后端存储
func CORS(config *CORSConfig) gin.HandlerFunc {
	if config == nil {
		config = DefaultCORSConfig()
	}

	allowAllOrigins := len(config.AllowOrigins) == 1 && config.AllowOrigins[0] == "*"
	allowOriginSet := make(map[string]struct{})
	for _, origin := range config.AllowOrigins {
		allowOriginSet[origin] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// 检查是否允许该源
		allowOrigin := ""
		if allowAllOrigins {
			allowOrigin = "*"
		} else if _, ok := allowOriginSet[origin]; ok {
			allowOrigin = origin
		}

		if allowOrigin != "" {
			c.Header("Access-Control-Allow-Origin", allowOrigin)
			c.Header("Access-Control-Allow-Methods", strings.Join(config.AllowMethods, ", "))
			c.Header("Access-Control-Allow-Headers", strings.Join(config.AllowHeaders, ", "))

			if config.MaxAge > 0 {
				c.Header("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))
			}
		}

		// 处理预检请求
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}

// CORSAllowAll 允许所有源的 CORS 中间件
func CORSAllowAll() gin.HandlerFunc {
	return CORS(DefaultCORSConfig())
}
