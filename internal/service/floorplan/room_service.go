// Package floorplan 提供楼层、房间与预订服务
package floorplan

import (
	"context"

	"gorm.io/gorm"

	"github.com/hoteldesk/floorplan-backend/internal/common/errors"
	"github.com/hoteldesk/floorplan-backend/internal/models"
	"github.com/hoteldesk/floorplan-backend/internal/repository"
)

// RoomService 房间服务
type RoomService struct {
	roomRepo    *repository.RoomRepository
	bookingRepo *repository.BookingRepository
}

// NewRoomService 创建房间服务
func NewRoomService(roomRepo *repository.RoomRepository, bookingRepo *repository.BookingRepository) *RoomService {
	return &RoomService{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
	}
}

// CreateRoomRequest 创建房间请求
type CreateRoomRequest struct {
	FloorID    int64          `json:"floor_id" binding:"required"`
	RoomNumber string         `json:"room_number" binding:"required"`
	Category   string         `json:"category" binding:"required"`
	Price      float64        `json:"price"`
	PositionX  float64        `json:"position_x"`
	PositionY  float64        `json:"position_y"`
	Width      *float64       `json:"width"`
	Height     *float64       `json:"height"`
	Polygon    models.Polygon `json:"polygon"`
	Status     string         `json:"status"`
}

// UpdateRoomRequest 更新房间请求，整行替换所有可变字段
type UpdateRoomRequest struct {
	ID         int64            `json:"id" binding:"required"`
	RoomNumber string           `json:"room_number" binding:"required"`
	Category   string           `json:"category" binding:"required"`
	Price      float64          `json:"price"`
	PositionX  float64          `json:"position_x"`
	PositionY  float64          `json:"position_y"`
	Width      *float64         `json:"width"`
	Height     *float64         `json:"height"`
	Polygon    models.Polygon   `json:"polygon"`
	Status     string           `json:"status" binding:"required"`
	Media      models.MediaList `json:"media"`
}

// ListRooms 获取房间列表，floorID 非空时只取该楼层
func (s *RoomService) ListRooms(ctx context.Context, floorID *int64) ([]*models.Room, error) {
	var rooms []*models.Room
	var err error

	if floorID != nil {
		rooms, err = s.roomRepo.ListByFloor(ctx, *floorID)
	} else {
		rooms, err = s.roomRepo.List(ctx)
	}
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	for _, room := range rooms {
		normalizeRoom(room)
	}
	return rooms, nil
}

// CreateRoom 创建房间
// 同楼层房间号冲突返回 409，消息包含提交的房间号
func (s *RoomService) CreateRoom(ctx context.Context, req *CreateRoomRequest) (*models.Room, error) {
	status := req.Status
	if status == "" {
		status = models.RoomStatusAvailable
	}

	room := &models.Room{
		FloorID:    req.FloorID,
		RoomNumber: req.RoomNumber,
		Category:   req.Category,
		Price:      req.Price,
		PositionX:  req.PositionX,
		PositionY:  req.PositionY,
		Width:      req.Width,
		Height:     req.Height,
		Polygon:    req.Polygon,
		Status:     status,
	}

	if err := s.roomRepo.Create(ctx, room); err != nil {
		if err == gorm.ErrDuplicatedKey {
			return nil, errors.RoomNumberConflict(req.RoomNumber)
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	normalizeRoom(room)
	return room, nil
}

// UpdateRoom 整行更新房间
func (s *RoomService) UpdateRoom(ctx context.Context, req *UpdateRoomRequest) (*models.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, req.ID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRoomNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	room.RoomNumber = req.RoomNumber
	room.Category = req.Category
	room.Price = req.Price
	room.PositionX = req.PositionX
	room.PositionY = req.PositionY
	room.Width = req.Width
	room.Height = req.Height
	room.Polygon = req.Polygon
	room.Status = req.Status
	room.Media = req.Media

	if err := s.roomRepo.Update(ctx, room); err != nil {
		if err == gorm.ErrDuplicatedKey {
			return nil, errors.RoomNumberConflict(req.RoomNumber)
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	normalizeRoom(room)
	return room, nil
}

// DeleteRoom 删除房间及其预订
func (s *RoomService) DeleteRoom(ctx context.Context, roomID int64) error {
	if err := s.bookingRepo.DeleteByRoom(ctx, roomID); err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	if err := s.roomRepo.Delete(ctx, roomID); err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	return nil
}

// normalizeRoom 读路径兜底：media 缺省时返回空列表而不是 null
func normalizeRoom(room *models.Room) {
	if room.Media == nil {
		room.Media = models.MediaList{}
	}
}
