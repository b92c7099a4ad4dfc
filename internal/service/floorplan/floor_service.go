// Package floorplan 提供楼层、房间与预订服务
package floorplan

import (
	"context"

	"gorm.io/gorm"

	"github.com/hoteldesk/floorplan-backend/internal/common/errors"
	"github.com/hoteldesk/floorplan-backend/internal/models"
	"github.com/hoteldesk/floorplan-backend/internal/repository"
)

// FloorService 楼层服务
type FloorService struct {
	db        *gorm.DB
	floorRepo *repository.FloorRepository
	roomRepo  *repository.RoomRepository
}

// NewFloorService 创建楼层服务
func NewFloorService(db *gorm.DB, floorRepo *repository.FloorRepository, roomRepo *repository.RoomRepository) *FloorService {
	return &FloorService{
		db:        db,
		floorRepo: floorRepo,
		roomRepo:  roomRepo,
	}
}

// CreateFloorRequest 创建楼层请求
type CreateFloorRequest struct {
	FloorNumber  int     `json:"floor_number" binding:"required"`
	PlanImageURL *string `json:"plan_image_url"`
}

// UpdateFloorRequest 更新楼层请求，只允许修改平面图地址
type UpdateFloorRequest struct {
	ID           int64   `json:"id" binding:"required"`
	PlanImageURL *string `json:"plan_image_url"`
}

// DuplicateFloorRequest 复制楼层请求
type DuplicateFloorRequest struct {
	FloorID        int64 `json:"floor_id" binding:"required"`
	NewFloorNumber int   `json:"new_floor_number" binding:"required"`
}

// ListFloors 获取所有楼层（按楼层号排序）
func (s *FloorService) ListFloors(ctx context.Context) ([]*models.Floor, error) {
	floors, err := s.floorRepo.List(ctx)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return floors, nil
}

// CreateFloor 创建楼层
func (s *FloorService) CreateFloor(ctx context.Context, req *CreateFloorRequest) (*models.Floor, error) {
	floor := &models.Floor{
		FloorNumber:  req.FloorNumber,
		PlanImageURL: req.PlanImageURL,
	}

	if err := s.floorRepo.Create(ctx, floor); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	return floor, nil
}

// UpdateFloorPlan 更新楼层平面图地址
func (s *FloorService) UpdateFloorPlan(ctx context.Context, req *UpdateFloorRequest) (*models.Floor, error) {
	floor, err := s.floorRepo.GetByID(ctx, req.ID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrFloorNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	if err := s.floorRepo.UpdatePlanImage(ctx, floor.ID, req.PlanImageURL); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	return s.floorRepo.GetByID(ctx, floor.ID)
}

// DeleteFloor 删除楼层及其所有房间
// 先删房间再删楼层，在同一事务内完成
func (s *FloorService) DeleteFloor(ctx context.Context, floorID int64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repository.NewRoomRepository(tx).DeleteByFloor(ctx, floorID); err != nil {
			return err
		}
		return repository.NewFloorRepository(tx).Delete(ctx, floorID)
	})
	if err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	return nil
}

// DuplicateFloor 复制楼层及其房间
// 新楼层沿用原楼层的平面图；房间只复制房间号、房型、价格、位置与状态，
// 媒体与轮廓不随复制携带。整个复制在单个事务中执行。
func (s *FloorService) DuplicateFloor(ctx context.Context, req *DuplicateFloorRequest) (*models.Floor, error) {
	original, err := s.floorRepo.GetByID(ctx, req.FloorID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrFloorNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	rooms, err := s.roomRepo.ListByFloor(ctx, original.ID)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	newFloor := &models.Floor{
		FloorNumber:  req.NewFloorNumber,
		PlanImageURL: original.PlanImageURL,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txFloors := repository.NewFloorRepository(tx)
		txRooms := repository.NewRoomRepository(tx)

		if err := txFloors.Create(ctx, newFloor); err != nil {
			return err
		}
		for _, room := range rooms {
			copied := &models.Room{
				FloorID:    newFloor.ID,
				RoomNumber: room.RoomNumber,
				Category:   room.Category,
				Price:      room.Price,
				PositionX:  room.PositionX,
				PositionY:  room.PositionY,
				Status:     room.Status,
			}
			if err := txRooms.Create(ctx, copied); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	return newFloor, nil
}
