// Package repository 提供数据访问层
package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/hoteldesk/floorplan-backend/internal/models"
)

// BookingRepository 预订仓储
type BookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository 创建预订仓储
func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create 创建预订
func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

// BookingWithRoom 预订列表行，附带房间号、房型与楼层号
type BookingWithRoom struct {
	models.Booking
	RoomNumber  string `json:"room_number"`
	Category    string `json:"category"`
	FloorNumber int    `json:"floor_number"`
}

// ListWithRoomInfo 获取所有预订（连房间、楼层信息，按创建时间倒序）
func (r *BookingRepository) ListWithRoomInfo(ctx context.Context) ([]*BookingWithRoom, error) {
	var bookings []*BookingWithRoom
	err := r.db.WithContext(ctx).Model(&models.Booking{}).
		Select("bookings.*, rooms.room_number AS room_number, rooms.category AS category, floors.floor_number AS floor_number").
		Joins("JOIN rooms ON rooms.id = bookings.room_id").
		Joins("JOIN floors ON floors.id = rooms.floor_id").
		Order("bookings.created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

// DeleteByRoom 删除房间下的所有预订
func (r *BookingRepository) DeleteByRoom(ctx context.Context, roomID int64) error {
	return r.db.WithContext(ctx).Where("room_id = ?", roomID).Delete(&models.Booking{}).Error
}
