// Package repository 提供数据访问层
package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/hoteldesk/floorplan-backend/internal/models"
)

// FloorRepository 楼层仓储
type FloorRepository struct {
	db *gorm.DB
}

// NewFloorRepository 创建楼层仓储
func NewFloorRepository(db *gorm.DB) *FloorRepository {
	return &FloorRepository{db: db}
}

// Create 创建楼层
func (r *FloorRepository) Create(ctx context.Context, floor *models.Floor) error {
	return r.db.WithContext(ctx).Create(floor).Error
}

// GetByID 根据 ID 获取楼层
func (r *FloorRepository) GetByID(ctx context.Context, id int64) (*models.Floor, error) {
	var floor models.Floor
	err := r.db.WithContext(ctx).First(&floor, id).Error
	if err != nil {
		return nil, err
	}
	return &floor, nil
}

// List 获取所有楼层（按楼层号排序）
func (r *FloorRepository) List(ctx context.Context) ([]*models.Floor, error) {
	var floors []*models.Floor
	err := r.db.WithContext(ctx).Order("floor_number ASC").Find(&floors).Error
	return floors, err
}

// ListWithRooms 获取所有楼层及其房间（楼层按楼层号、房间按房间号排序）
func (r *FloorRepository) ListWithRooms(ctx context.Context) ([]*models.Floor, error) {
	var floors []*models.Floor
	err := r.db.WithContext(ctx).
		Preload("Rooms", func(db *gorm.DB) *gorm.DB {
			return db.Order("room_number ASC")
		}).
		Order("floor_number ASC").
		Find(&floors).Error
	return floors, err
}

// UpdatePlanImage 更新楼层平面图地址
func (r *FloorRepository) UpdatePlanImage(ctx context.Context, id int64, url *string) error {
	return r.db.WithContext(ctx).Model(&models.Floor{}).
		Where("id = ?", id).
		Update("plan_image_url", url).Error
}

// Delete 删除楼层
func (r *FloorRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Floor{}, id).Error
}
