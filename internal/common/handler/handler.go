// Package handler 提供 API Handler 的通用辅助函数
// 用于减少 Handler 层的代码重复，统一错误处理、ID 头解析等操作
package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hoteldesk/floorplan-backend/internal/common/errors"
	"github.com/hoteldesk/floorplan-backend/internal/common/response"
)

// HandleError 处理错误并发送适当的响应
// 如果 err 为 nil，返回 false（表示无错误需要处理）
// 如果 err 不为 nil，发送错误响应并返回 true（表示已处理错误，调用方应该 return）
//
// 使用示例:
//
//	result, err := service.DoSomething(ctx)
//	if handler.HandleError(c, err) {
//	    return
//	}
func HandleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}
	if appErr, ok := err.(*errors.AppError); ok {
		response.Error(c, appErr.Status, appErr.PublicMessage())
		return true
	}
	response.InternalError(c, err.Error())
	return true
}

// HandleErrorWithMessage 处理错误，对非 AppError 使用自定义消息
// 适用于需要隐藏内部错误详情的场景
func HandleErrorWithMessage(c *gin.Context, err error, message string) bool {
	if err == nil {
		return false
	}
	if appErr, ok := err.(*errors.AppError); ok {
		response.Error(c, appErr.Status, appErr.PublicMessage())
		return true
	}
	response.InternalError(c, message)
	return true
}

// MustSucceed 便捷封装：如果有错误则返回错误响应，否则返回成功响应
// 适用于简单的「调用服务 -> 返回结果」场景
//
// 使用示例:
//
//	result, err := service.GetData(ctx)
//	handler.MustSucceed(c, err, result)
//	return  // 注意：调用 MustSucceed 后必须 return
func MustSucceed(c *gin.Context, err error, data interface{}) {
	if HandleError(c, err) {
		return
	}
	response.Success(c, data)
}

// 资源 ID 通过请求头传递（X-Floor-Id / X-Room-Id），不走路径参数

// HeaderFloorID 楼层 ID 请求头
const HeaderFloorID = "X-Floor-Id"

// HeaderRoomID 房间 ID 请求头
const HeaderRoomID = "X-Room-Id"

// RequireHeaderID 解析指定请求头中的必填 ID
// 返回 (id, true) 表示解析成功
// 返回 (0, false) 表示缺失或非法（已发送400响应，调用方应该 return）
//
// 使用示例:
//
//	floorID, ok := handler.RequireHeaderID(c, handler.HeaderFloorID)
//	if !ok {
//	    return
//	}
func RequireHeaderID(c *gin.Context, headerName string) (int64, bool) {
	idStr := c.GetHeader(headerName)
	if idStr == "" {
		response.BadRequest(c, headerName+" header is required")
		return 0, false
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid "+headerName+" header")
		return 0, false
	}
	return id, true
}

// DateFormat 业务日期格式 (入住/退房日期)
const DateFormat = "2006-01-02"

// ParseDate 解析日期字符串 (YYYY-MM-DD)
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}
