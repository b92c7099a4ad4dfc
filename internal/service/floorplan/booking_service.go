// Package floorplan 提供楼层、房间与预订服务
package floorplan

import (
	"context"

	"github.com/hoteldesk/floorplan-backend/internal/common/errors"
	"github.com/hoteldesk/floorplan-backend/internal/common/handler"
	"github.com/hoteldesk/floorplan-backend/internal/models"
	"github.com/hoteldesk/floorplan-backend/internal/repository"
)

// BookingService 预订服务
type BookingService struct {
	bookingRepo *repository.BookingRepository
}

// NewBookingService 创建预订服务
func NewBookingService(bookingRepo *repository.BookingRepository) *BookingService {
	return &BookingService{bookingRepo: bookingRepo}
}

// CreateBookingRequest 创建预订请求
// 不做日期重叠校验，同一房间允许重叠预订
type CreateBookingRequest struct {
	RoomID     int64   `json:"room_id" binding:"required"`
	GuestName  string  `json:"guest_name" binding:"required"`
	GuestEmail string  `json:"guest_email" binding:"required"`
	GuestPhone *string `json:"guest_phone"`
	CheckIn    string  `json:"check_in" binding:"required"`
	CheckOut   string  `json:"check_out" binding:"required"`
	TotalPrice float64 `json:"total_price"`
	Status     string  `json:"status"`
}

// ListBookings 获取所有预订（附带房间号、房型、楼层号，按创建时间倒序）
func (s *BookingService) ListBookings(ctx context.Context) ([]*repository.BookingWithRoom, error) {
	bookings, err := s.bookingRepo.ListWithRoomInfo(ctx)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return bookings, nil
}

// CreateBooking 创建预订
func (s *BookingService) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*models.Booking, error) {
	checkIn, err := handler.ParseDate(req.CheckIn)
	if err != nil {
		return nil, errors.ErrInvalidParams.WithMessage("Invalid check_in date: " + req.CheckIn)
	}
	checkOut, err := handler.ParseDate(req.CheckOut)
	if err != nil {
		return nil, errors.ErrInvalidParams.WithMessage("Invalid check_out date: " + req.CheckOut)
	}

	status := req.Status
	if status == "" {
		status = models.BookingStatusPending
	}

	booking := &models.Booking{
		RoomID:     req.RoomID,
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
		GuestPhone: req.GuestPhone,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TotalPrice: req.TotalPrice,
		Status:     status,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	return booking, nil
}
