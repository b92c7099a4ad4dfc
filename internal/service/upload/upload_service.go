// Package upload 提供平面图图片上传服务
package upload

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/hoteldesk/floorplan-backend/internal/common/errors"
	"github.com/hoteldesk/floorplan-backend/pkg/oss"
)

// UploadService 上传服务
type UploadService struct {
	uploader oss.Uploader
}

// NewUploadService 创建上传服务
func NewUploadService(uploader oss.Uploader) *UploadService {
	return &UploadService{uploader: uploader}
}

// UploadImageRequest 上传图片请求
// File 为 base64 编码的图片内容，允许携带 data-URL 前缀
type UploadImageRequest struct {
	File     string `json:"file"`
	Filename string `json:"filename"`
}

// UploadImageResponse 上传图片响应
type UploadImageResponse struct {
	URL string `json:"url"`
}

// UploadImage 解码 base64 图片并上传到对象存储
func (s *UploadService) UploadImage(ctx context.Context, req *UploadImageRequest) (*UploadImageResponse, error) {
	if req.File == "" {
		return nil, errors.ErrNoFile
	}

	// 去掉 data-URL 前缀（data:image/png;base64,...）
	payload := req.File
	if idx := strings.Index(payload, ","); idx >= 0 {
		payload = payload[idx+1:]
	}

	// 解码失败和存储失败都按 500 透传原始错误文本
	content, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, err
	}

	filename := req.Filename
	if filename == "" {
		filename = fmt.Sprintf("floor-%d.png", time.Now().Unix())
	}

	url, err := s.uploader.Upload(ctx, filename, bytes.NewReader(content), oss.GetContentType(filename))
	if err != nil {
		return nil, err
	}

	return &UploadImageResponse{URL: url}, nil
}
