// Package upload 提供图片上传的 HTTP Handler
package upload

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hoteldesk/floorplan-backend/internal/common/handler"
	"github.com/hoteldesk/floorplan-backend/internal/common/metrics"
	"github.com/hoteldesk/floorplan-backend/internal/common/response"
	uploadService "github.com/hoteldesk/floorplan-backend/internal/service/upload"
)

// Handler 上传处理器
type Handler struct {
	uploadService *uploadService.UploadService
}

// NewHandler 创建上传处理器
func NewHandler(uploadSvc *uploadService.UploadService) *Handler {
	return &Handler{uploadService: uploadSvc}
}

// Handle 上传 base64 图片，只接受 POST
func (h *Handler) Handle(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		response.MethodNotAllowed(c)
		return
	}

	var req uploadService.UploadImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.uploadService.UploadImage(c.Request.Context(), &req)
	if handler.HandleError(c, err) {
		metrics.GetMetrics().RecordUpload(false)
		return
	}

	metrics.GetMetrics().RecordUpload(true)
	response.Success(c, resp)
}
