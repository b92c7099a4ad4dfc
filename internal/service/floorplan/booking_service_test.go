// Package floorplan 预订服务单元测试
package floorplan

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/hoteldesk/floorplan-backend/internal/common/errors"
	"github.com/hoteldesk/floorplan-backend/internal/models"
	"github.com/hoteldesk/floorplan-backend/internal/repository"
)

func newBookingService(db *gorm.DB) *BookingService {
	return NewBookingService(repository.NewBookingRepository(db))
}

func createBookingRoom(t *testing.T, db *gorm.DB) (*models.Floor, *models.Room) {
	floor := &models.Floor{FloorNumber: 1}
	require.NoError(t, db.Create(floor).Error)

	room := &models.Room{
		FloorID: floor.ID, RoomNumber: "101", Category: "standard", Price: 100, PositionX: 10, PositionY: 10,
	}
	require.NoError(t, db.Create(room).Error)

	return floor, room
}

func TestBookingService_CreateBooking(t *testing.T) {
	db := setupServiceTestDB(t)
	service := newBookingService(db)
	ctx := context.Background()

	_, room := createBookingRoom(t, db)

	phone := "+7 900 123-45-67"
	booking, err := service.CreateBooking(ctx, &CreateBookingRequest{
		RoomID:     room.ID,
		GuestName:  "Иван Петров",
		GuestEmail: "ivan@example.com",
		GuestPhone: &phone,
		CheckIn:    "2026-09-10",
		CheckOut:   "2026-09-12",
		TotalPrice: 200,
	})
	require.NoError(t, err)
	assert.NotZero(t, booking.ID)
	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.Equal(t, "2026-09-10", booking.CheckIn.Format("2006-01-02"))
	assert.Equal(t, "2026-09-12", booking.CheckOut.Format("2006-01-02"))
}

func TestBookingService_CreateBooking_DefaultsAndExplicitStatus(t *testing.T) {
	db := setupServiceTestDB(t)
	service := newBookingService(db)
	ctx := context.Background()

	_, room := createBookingRoom(t, db)

	booking, err := service.CreateBooking(ctx, &CreateBookingRequest{
		RoomID:     room.ID,
		GuestName:  "Guest",
		GuestEmail: "g@example.com",
		CheckIn:    "2026-09-10",
		CheckOut:   "2026-09-12",
		TotalPrice: 200,
		Status:     models.BookingStatusConfirmed,
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
	assert.Nil(t, booking.GuestPhone)
}

func TestBookingService_CreateBooking_InvalidDate(t *testing.T) {
	db := setupServiceTestDB(t)
	service := newBookingService(db)
	ctx := context.Background()

	_, room := createBookingRoom(t, db)

	_, err := service.CreateBooking(ctx, &CreateBookingRequest{
		RoomID:     room.ID,
		GuestName:  "Guest",
		GuestEmail: "g@example.com",
		CheckIn:    "10.09.2026",
		CheckOut:   "2026-09-12",
		TotalPrice: 200,
	})
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Status)
}

func TestBookingService_ListBookings_BackendFailureExposesCause(t *testing.T) {
	db := setupServiceTestDB(t)
	service := newBookingService(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = service.ListBookings(context.Background())
	require.Error(t, err)

	// 底层错误文本原样透出到响应文案，不被统一文案吞掉
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, 500, appErr.Status)
	assert.Contains(t, appErr.PublicMessage(), "database is closed")
}

func TestBookingService_ListBookings(t *testing.T) {
	db := setupServiceTestDB(t)
	service := newBookingService(db)
	ctx := context.Background()

	floor, room := createBookingRoom(t, db)

	checkIn, _ := time.Parse("2006-01-02", "2026-09-10")
	checkOut, _ := time.Parse("2006-01-02", "2026-09-12")

	db.Create(&models.Booking{
		RoomID: room.ID, GuestName: "First", GuestEmail: "f@example.com",
		CheckIn: checkIn, CheckOut: checkOut, TotalPrice: 200,
		CreatedAt: time.Now().Add(-time.Hour),
	})
	db.Create(&models.Booking{
		RoomID: room.ID, GuestName: "Second", GuestEmail: "s@example.com",
		CheckIn: checkIn, CheckOut: checkOut, TotalPrice: 300,
		CreatedAt: time.Now(),
	})

	bookings, err := service.ListBookings(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, len(bookings))

	// 新预订在前，并带上房间与楼层信息
	assert.Equal(t, "Second", bookings[0].GuestName)
	assert.Equal(t, room.RoomNumber, bookings[0].RoomNumber)
	assert.Equal(t, room.Category, bookings[0].Category)
	assert.Equal(t, floor.FloorNumber, bookings[0].FloorNumber)
}
