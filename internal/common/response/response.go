// Package response 提供统一的 API 响应格式
//
// 对外契约沿用云函数时代的约定：成功响应直接返回 JSON 编码的结果，
// 错误响应返回 {"error": <message>}，状态码即 HTTP 状态码。
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody 错误响应体
type ErrorBody struct {
	Error string `json:"error"`
}

// Success 成功响应，data 原样 JSON 编码
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Error 错误响应
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Error: message})
}

// BadRequest 请求参数错误
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound 资源不存在
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "not found"
	}
	Error(c, http.StatusNotFound, message)
}

// MethodNotAllowed 方法不支持
func MethodNotAllowed(c *gin.Context) {
	Error(c, http.StatusMethodNotAllowed, "Method not allowed")
}

// Conflict 资源冲突
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// InternalError 服务器内部错误
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "internal server error"
	}
	Error(c, http.StatusInternalServerError, message)
}
