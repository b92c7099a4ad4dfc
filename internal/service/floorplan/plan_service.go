// Package floorplan 提供楼层、房间与预订服务
package floorplan

import (
	"context"

	"github.com/hoteldesk/floorplan-backend/internal/common/errors"
	"github.com/hoteldesk/floorplan-backend/internal/models"
	"github.com/hoteldesk/floorplan-backend/internal/repository"
)

// PlanService 楼层平面图导出服务
type PlanService struct {
	floorRepo *repository.FloorRepository
}

// NewPlanService 创建平面图服务
func NewPlanService(floorRepo *repository.FloorRepository) *PlanService {
	return &PlanService{floorRepo: floorRepo}
}

// PlanRoom 平面图中的房间
// 房间号在此视图中以 number 为键，前端渲染依赖该字段名
type PlanRoom struct {
	ID        int64          `json:"id"`
	Number    string         `json:"number"`
	Category  string         `json:"category"`
	Price     float64        `json:"price"`
	PositionX float64        `json:"position_x"`
	PositionY float64        `json:"position_y"`
	Status    string         `json:"status"`
	Width     *float64       `json:"width"`
	Height    *float64       `json:"height"`
	Polygon   models.Polygon `json:"polygon"`
}

// PlanFloor 平面图中的楼层
type PlanFloor struct {
	ID           int64      `json:"id"`
	FloorNumber  int        `json:"floor_number"`
	PlanImageURL *string    `json:"plan_image_url"`
	Rooms        []PlanRoom `json:"rooms"`
}

// PlanResponse 平面图导出结果
type PlanResponse struct {
	Floors []PlanFloor `json:"floors"`
}

// GetFloorPlan 导出完整的楼层/房间树
// 楼层按楼层号排序，房间按房间号排序，无分页
func (s *PlanService) GetFloorPlan(ctx context.Context) (*PlanResponse, error) {
	floors, err := s.floorRepo.ListWithRooms(ctx)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	resp := &PlanResponse{Floors: make([]PlanFloor, 0, len(floors))}
	for _, floor := range floors {
		planFloor := PlanFloor{
			ID:           floor.ID,
			FloorNumber:  floor.FloorNumber,
			PlanImageURL: floor.PlanImageURL,
			Rooms:        make([]PlanRoom, 0, len(floor.Rooms)),
		}
		for _, room := range floor.Rooms {
			planFloor.Rooms = append(planFloor.Rooms, PlanRoom{
				ID:        room.ID,
				Number:    room.RoomNumber,
				Category:  room.Category,
				Price:     room.Price,
				PositionX: room.PositionX,
				PositionY: room.PositionY,
				Status:    room.Status,
				Width:     room.Width,
				Height:    room.Height,
				Polygon:   room.Polygon,
			})
		}
		resp.Floors = append(resp.Floors, planFloor)
	}

	return resp, nil
}
