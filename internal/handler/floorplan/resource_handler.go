// Package floorplan 提供楼层、房间与预订的 HTTP Handler
//
// 资源通过 X-Path 请求头选择，而不是 URL 路径，保持与前端既有的调用约定一致。
package floorplan

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hoteldesk/floorplan-backend/internal/common/errors"
	"github.com/hoteldesk/floorplan-backend/internal/common/handler"
	"github.com/hoteldesk/floorplan-backend/internal/common/metrics"
	"github.com/hoteldesk/floorplan-backend/internal/common/response"
	floorplanService "github.com/hoteldesk/floorplan-backend/internal/service/floorplan"
)

// HeaderPath 资源路由请求头
const HeaderPath = "X-Path"

// ResourceHandler 资源管理处理器
type ResourceHandler struct {
	floorService   *floorplanService.FloorService
	roomService    *floorplanService.RoomService
	bookingService *floorplanService.BookingService
}

// NewResourceHandler 创建资源管理处理器
func NewResourceHandler(
	floorSvc *floorplanService.FloorService,
	roomSvc *floorplanService.RoomService,
	bookingSvc *floorplanService.BookingService,
) *ResourceHandler {
	return &ResourceHandler{
		floorService:   floorSvc,
		roomService:    roomSvc,
		bookingService: bookingSvc,
	}
}

// Handle 按 X-Path 头和 HTTP 方法分发请求
// 未匹配的资源或方法组合统一回落到 404
func (h *ResourceHandler) Handle(c *gin.Context) {
	path := strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderPath)))
	method := c.Request.Method

	switch path {
	case "floors":
		switch method {
		case "GET":
			h.listFloors(c)
			return
		case "POST":
			h.createFloor(c)
			return
		case "PUT":
			h.updateFloor(c)
			return
		case "DELETE":
			h.deleteFloor(c)
			return
		}
	case "floors/duplicate":
		if method == "POST" {
			h.duplicateFloor(c)
			return
		}
	case "rooms":
		switch method {
		case "GET":
			h.listRooms(c)
			return
		case "POST":
			h.createRoom(c)
			return
		case "PUT":
			h.updateRoom(c)
			return
		case "DELETE":
			h.deleteRoom(c)
			return
		}
	case "bookings":
		switch method {
		case "GET":
			h.listBookings(c)
			return
		case "POST":
			h.createBooking(c)
			return
		}
	}

	appErr := errors.InvalidPath(c.GetHeader(HeaderPath))
	response.Error(c, appErr.Status, appErr.Message)
}

func (h *ResourceHandler) listFloors(c *gin.Context) {
	floors, err := h.floorService.ListFloors(c.Request.Context())
	handler.MustSucceed(c, err, floors)
}

func (h *ResourceHandler) createFloor(c *gin.Context) {
	var req floorplanService.CreateFloorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	floor, err := h.floorService.CreateFloor(c.Request.Context(), &req)
	handler.MustSucceed(c, err, floor)
}

func (h *ResourceHandler) updateFloor(c *gin.Context) {
	var req floorplanService.UpdateFloorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	floor, err := h.floorService.UpdateFloorPlan(c.Request.Context(), &req)
	handler.MustSucceed(c, err, floor)
}

func (h *ResourceHandler) deleteFloor(c *gin.Context) {
	floorID, ok := handler.RequireHeaderID(c, handler.HeaderFloorID)
	if !ok {
		return
	}

	if err := h.floorService.DeleteFloor(c.Request.Context(), floorID); err != nil {
		handler.HandleError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Floor deleted"})
}

func (h *ResourceHandler) duplicateFloor(c *gin.Context) {
	var req floorplanService.DuplicateFloorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	floor, err := h.floorService.DuplicateFloor(c.Request.Context(), &req)
	handler.MustSucceed(c, err, floor)
}

func (h *ResourceHandler) listRooms(c *gin.Context) {
	// X-Floor-Id 为可选过滤条件
	var floorID *int64
	if c.GetHeader(handler.HeaderFloorID) != "" {
		id, ok := handler.RequireHeaderID(c, handler.HeaderFloorID)
		if !ok {
			return
		}
		floorID = &id
	}

	rooms, err := h.roomService.ListRooms(c.Request.Context(), floorID)
	handler.MustSucceed(c, err, rooms)
}

func (h *ResourceHandler) createRoom(c *gin.Context) {
	var req floorplanService.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	room, err := h.roomService.CreateRoom(c.Request.Context(), &req)
	handler.MustSucceed(c, err, room)
}

func (h *ResourceHandler) updateRoom(c *gin.Context) {
	var req floorplanService.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	room, err := h.roomService.UpdateRoom(c.Request.Context(), &req)
	handler.MustSucceed(c, err, room)
}

func (h *ResourceHandler) deleteRoom(c *gin.Context) {
	roomID, ok := handler.RequireHeaderID(c, handler.HeaderRoomID)
	if !ok {
		return
	}

	if err := h.roomService.DeleteRoom(c.Request.Context(), roomID); err != nil {
		handler.HandleError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Room deleted"})
}

func (h *ResourceHandler) listBookings(c *gin.Context) {
	bookings, err := h.bookingService.ListBookings(c.Request.Context())
	handler.MustSucceed(c, err, bookings)
}

func (h *ResourceHandler) createBooking(c *gin.Context) {
	var req floorplanService.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), &req)
	if handler.HandleError(c, err) {
		return
	}

	metrics.GetMetrics().RecordBooking()
	response.Success(c, booking)
}
