// Package floorplan 平面图处理器单元测试
package floorplan

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hoteldesk/floorplan-backend/internal/middleware"
	"github.com/hoteldesk/floorplan-backend/internal/models"
	"github.com/hoteldesk/floorplan-backend/internal/repository"
	floorplanService "github.com/hoteldesk/floorplan-backend/internal/service/floorplan"
)

func setupPlanRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Floor{}, &models.Room{}, &models.Booking{}))

	h := NewPlanHandler(floorplanService.NewPlanService(repository.NewFloorRepository(db)))

	r := gin.New()
	r.Use(middleware.CORSAllowAll())
	r.Any("/api/floor-plan", h.Handle)
	return r, db
}

func TestPlanHandler_Get(t *testing.T) {
	r, db := setupPlanRouter(t)

	floor := &models.Floor{FloorNumber: 1}
	db.Create(floor)
	db.Create(&models.Room{FloorID: floor.ID, RoomNumber: "101", Category: "standard", Price: 100, PositionX: 10, PositionY: 20})

	w := doRequest(r, "GET", "/api/floor-plan", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	floors, ok := body["floors"].([]interface{})
	require.True(t, ok)
	require.Equal(t, 1, len(floors))

	rooms := floors[0].(map[string]interface{})["rooms"].([]interface{})
	require.Equal(t, 1, len(rooms))
	assert.Equal(t, "101", rooms[0].(map[string]interface{})["number"])
}

func TestPlanHandler_MethodNotAllowed(t *testing.T) {
	r, _ := setupPlanRouter(t)

	for _, method := range []string{"POST", "PUT", "DELETE"} {
		w := doRequest(r, method, "/api/floor-plan", nil, nil)
		require.Equal(t, http.StatusMethodNotAllowed, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Method not allowed", body["error"])
	}
}

func TestPlanHandler_Options(t *testing.T) {
	r, _ := setupPlanRouter(t)

	w := doRequest(r, "OPTIONS", "/api/floor-plan", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, w.Body.Len())
}
