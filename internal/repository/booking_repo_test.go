// Package repository 预订仓储单元测试
package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hoteldesk/floorplan-backend/internal/models"
)

func setupBookingTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.Floor{}, &models.Room{}, &models.Booking{})
	require.NoError(t, err)

	return db
}

func createBookingFixtures(t *testing.T, db *gorm.DB) (*models.Floor, *models.Room) {
	floor := &models.Floor{FloorNumber: 1}
	require.NoError(t, db.Create(floor).Error)

	room := &models.Room{
		FloorID: floor.ID, RoomNumber: "101", Category: "standard", Price: 100, PositionX: 10, PositionY: 10,
	}
	require.NoError(t, db.Create(room).Error)

	return floor, room
}

func TestBookingRepository_Create(t *testing.T) {
	db := setupBookingTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	_, room := createBookingFixtures(t, db)

	checkIn, _ := time.Parse("2006-01-02", "2026-09-10")
	checkOut, _ := time.Parse("2006-01-02", "2026-09-12")
	booking := &models.Booking{
		RoomID:     room.ID,
		GuestName:  "Иван Петров",
		GuestEmail: "ivan@example.com",
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TotalPrice: 200,
	}

	err := repo.Create(ctx, booking)
	require.NoError(t, err)
	assert.NotZero(t, booking.ID)

	// 状态默认由数据库填充
	var found models.Booking
	db.First(&found, booking.ID)
	assert.Equal(t, models.BookingStatusPending, found.Status)
}

func TestBookingRepository_ListWithRoomInfo(t *testing.T) {
	db := setupBookingTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	floor, room := createBookingFixtures(t, db)

	checkIn, _ := time.Parse("2006-01-02", "2026-09-10")
	checkOut, _ := time.Parse("2006-01-02", "2026-09-12")

	first := &models.Booking{
		RoomID: room.ID, GuestName: "First", GuestEmail: "f@example.com",
		CheckIn: checkIn, CheckOut: checkOut, TotalPrice: 200,
		CreatedAt: time.Now().Add(-time.Hour),
	}
	second := &models.Booking{
		RoomID: room.ID, GuestName: "Second", GuestEmail: "s@example.com",
		CheckIn: checkIn, CheckOut: checkOut, TotalPrice: 300,
		CreatedAt: time.Now(),
	}
	db.Create(first)
	db.Create(second)

	list, err := repo.ListWithRoomInfo(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, len(list))

	// 新的在前
	assert.Equal(t, "Second", list[0].GuestName)
	assert.Equal(t, "First", list[1].GuestName)

	// 连表字段
	assert.Equal(t, room.RoomNumber, list[0].RoomNumber)
	assert.Equal(t, room.Category, list[0].Category)
	assert.Equal(t, floor.FloorNumber, list[0].FloorNumber)
}

func TestBookingRepository_DeleteByRoom(t *testing.T) {
	db := setupBookingTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	_, room := createBookingFixtures(t, db)

	checkIn, _ := time.Parse("2006-01-02", "2026-09-10")
	checkOut, _ := time.Parse("2006-01-02", "2026-09-12")

	db.Create(&models.Booking{
		RoomID: room.ID, GuestName: "A", GuestEmail: "a@example.com",
		CheckIn: checkIn, CheckOut: checkOut, TotalPrice: 200,
	})
	db.Create(&models.Booking{
		RoomID: room.ID, GuestName: "B", GuestEmail: "b@example.com",
		CheckIn: checkIn, CheckOut: checkOut, TotalPrice: 300,
	})

	err := repo.DeleteByRoom(ctx, room.ID)
	require.NoError(t, err)

	var count int64
	db.Model(&models.Booking{}).Where("room_id = ?", room.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}
