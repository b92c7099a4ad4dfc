// Package floorplan 提供楼层、房间与预订的 HTTP Handler
package floorplan

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hoteldesk/floorplan-backend/internal/common/handler"
	"github.com/hoteldesk/floorplan-backend/internal/common/response"
	floorplanService "github.com/hoteldesk/floorplan-backend/internal/service/floorplan"
)

// PlanHandler 平面图导出处理器
type PlanHandler struct {
	planService *floorplanService.PlanService
}

// NewPlanHandler 创建平面图处理器
func NewPlanHandler(planSvc *floorplanService.PlanService) *PlanHandler {
	return &PlanHandler{planService: planSvc}
}

// Handle 导出完整楼层/房间树，只接受 GET
func (h *PlanHandler) Handle(c *gin.Context) {
	if c.Request.Method != http.MethodGet {
		response.MethodNotAllowed(c)
		return
	}

	plan, err := h.planService.GetFloorPlan(c.Request.Context())
	handler.MustSucceed(c, err, plan)
}
