// Package main 是应用程序入口
package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hoteldesk/floorplan-backend/internal/common/config"
	"github.com/hoteldesk/floorplan-backend/internal/common/metrics"
	floorplanHandler "github.com/hoteldesk/floorplan-backend/internal/handler/floorplan"
	uploadHandler "github.com/hoteldesk/floorplan-backend/internal/handler/upload"
	"github.com/hoteldesk/floorplan-backend/internal/middleware"
	"github.com/hoteldesk/floorplan-backend/internal/repository"
	floorplanService "github.com/hoteldesk/floorplan-backend/internal/service/floorplan"
	uploadService "github.com/hoteldesk/floorplan-backend/internal/service/upload"
	"github.com/hoteldesk/floorplan-backend/pkg/oss"
)

// setupRouter 设置路由
func setupRouter(
	r *gin.Engine,
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
) error {
	// 初始化仓储
	floorRepo := repository.NewFloorRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// 初始化对象存储
	var uploader oss.Uploader
	if cfg.OSS.AccessKeyID != "" {
		aliyunUploader, err := oss.NewAliyunUploader(&oss.AliyunConfig{
			Endpoint:        cfg.OSS.Endpoint,
			AccessKeyID:     cfg.OSS.AccessKeyID,
			AccessKeySecret: cfg.OSS.AccessKeySecret,
			BucketName:      cfg.OSS.Bucket,
			Domain:          cfg.OSS.CustomDomain,
			BasePath:        cfg.OSS.UploadDir,
		})
		if err != nil {
			return err
		}
		uploader = aliyunUploader
	} else {
		// 未配置凭证时使用 Mock，便于本地开发
		logger.Warn("OSS credentials not configured, using mock uploader")
		uploader = oss.NewMockUploader()
	}

	// 初始化服务
	floorSvc := floorplanService.NewFloorService(db, floorRepo, roomRepo)
	roomSvc := floorplanService.NewRoomService(roomRepo, bookingRepo)
	bookingSvc := floorplanService.NewBookingService(bookingRepo)
	planSvc := floorplanService.NewPlanService(floorRepo)
	uploadSvc := uploadService.NewUploadService(uploader)

	// 初始化处理器
	resourceH := floorplanHandler.NewResourceHandler(floorSvc, roomSvc, bookingSvc)
	planH := floorplanHandler.NewPlanHandler(planSvc)
	uploadH := uploadHandler.NewHandler(uploadSvc)

	// 全局中间件
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RealIP())
	r.Use(middleware.CORS(corsConfig(cfg)))
	r.Use(middleware.AccessLog(logger))

	// Prometheus 指标
	if cfg.Metrics.Enabled {
		m := metrics.Init(metricsNamespace)
		r.Use(m.Middleware())
		r.GET(cfg.Metrics.Path, metrics.Handler())
	}

	// 健康检查
	r.GET("/health", healthHandler)
	r.GET("/ping", pingHandler)
	r.GET("/ready", readyHandler(db))

	// 业务入口：资源通过 X-Path 头路由，方法校验由各处理器自理
	api := r.Group("/api")
	{
		api.Any("/hotel", resourceH.Handle)
		api.Any("/floor-plan", planH.Handle)
		api.Any("/upload", uploadH.Handle)
	}

	return nil
}

const metricsNamespace = "hotel_floorplan"

// corsConfig 把配置文件中的 CORS 设置转换为中间件配置
func corsConfig(cfg *config.Config) *middleware.CORSConfig {
	if len(cfg.CORS.AllowedOrigins) == 0 {
		return nil
	}
	return &middleware.CORSConfig{
		AllowOrigins: cfg.CORS.AllowedOrigins,
		AllowMethods: cfg.CORS.AllowedMethods,
		AllowHeaders: cfg.CORS.AllowedHeaders,
		MaxAge:       cfg.CORS.MaxAge,
	}
}
