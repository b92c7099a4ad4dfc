// Package repository 提供数据访问层
package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/hoteldesk/floorplan-backend/internal/models"
)

// RoomRepository 房间仓储
type RoomRepository struct {
	db *gorm.DB
}

// NewRoomRepository 创建房间仓储
func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// Create 创建房间
// (floor_id, room_number) 冲突时返回 gorm.ErrDuplicatedKey
func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

// GetByID 根据 ID 获取房间
func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*models.Room, error) {
	var room models.Room
	err := r.db.WithContext(ctx).First(&room, id).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// List 获取所有房间（按楼层、房间号排序）
func (r *RoomRepository) List(ctx context.Context) ([]*models.Room, error) {
	var rooms []*models.Room
	err := r.db.WithContext(ctx).
		Order("floor_id ASC, room_number ASC").
		Find(&rooms).Error
	return rooms, err
}

// ListByFloor 获取楼层下的房间列表（按房间号排序）
func (r *RoomRepository) ListByFloor(ctx context.Context, floorID int64) ([]*models.Room, error) {
	var rooms []*models.Room
	err := r.db.WithContext(ctx).
		Where("floor_id = ?", floorID).
		Order("room_number ASC").
		Find(&rooms).Error
	return rooms, err
}

// Update 更新房间
func (r *RoomRepository) Update(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

// Delete 删除房间
func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Room{}, id).Error
}

// DeleteByFloor 删除楼层下的所有房间
func (r *RoomRepository) DeleteByFloor(ctx context.Context, floorID int64) error {
	return r.db.WithContext(ctx).Where("floor_id = ?", floorID).Delete(&models.Room{}).Error
}
