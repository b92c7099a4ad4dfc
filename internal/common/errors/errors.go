// Package errors 定义业务错误和错误处理
package errors

import (
	"fmt"
	"net/http"
)

// AppError 应用错误，Status 为对外的 HTTP 状态码
type AppError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Status, e.Message)
}

// Unwrap 实现 errors.Unwrap
func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新的应用错误
func New(status int, message string) *AppError {
	return &AppError{
		Status:  status,
		Message: message,
	}
}

// Wrap 包装错误
func Wrap(status int, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Message: message,
		Err:     err,
	}
}

// WithMessage 修改错误消息
func (e *AppError) WithMessage(message string) *AppError {
	return &AppError{
		Status:  e.Status,
		Message: message,
		Err:     e.Err,
	}
}

// WithError 添加原始错误
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Status:  e.Status,
		Message: e.Message,
		Err:     err,
	}
}

// PublicMessage 对外响应文案
// 未分类的 500 错误按原始错误文本透出，其余返回业务文案
func (e *AppError) PublicMessage() string {
	if e.Status == http.StatusInternalServerError && e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// 通用错误
var (
	ErrInvalidParams    = New(http.StatusBadRequest, "参数错误")
	ErrNotFound         = New(http.StatusNotFound, "not found")
	ErrMethodNotAllowed = New(http.StatusMethodNotAllowed, "Method not allowed")
	ErrDatabaseError    = New(http.StatusInternalServerError, "数据库错误")
	ErrOperationFailed  = New(http.StatusInternalServerError, "操作失败")
)

// 楼层/房间/预订错误
// 对外文案沿用前端已经依赖的字符串，不要改动
var (
	ErrFloorNotFound = New(http.StatusNotFound, "Floor not found")
	ErrRoomNotFound  = New(http.StatusNotFound, "Room not found")
	ErrNoFile        = New(http.StatusBadRequest, "No file provided")
)

// RoomNumberConflict 房间号唯一约束冲突
func RoomNumberConflict(roomNumber string) *AppError {
	return New(http.StatusConflict, fmt.Sprintf("Номер %s уже существует на этом этаже", roomNumber))
}

// InvalidPath 未知的资源路径
func InvalidPath(path string) *AppError {
	return New(http.StatusNotFound, "Invalid path: "+path)
}

// IsAppError 判断是否为应用错误
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError 获取应用错误，非 AppError 按 500 透传原始错误文本
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return New(http.StatusInternalServerError, err.Error())
}
