// Package models 定义数据库模型
package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// Floor 楼层模型
type Floor struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	FloorNumber  int       `gorm:"not null;index" json:"floor_number"`
	PlanImageURL *string   `gorm:"type:text" json:"plan_image_url"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// 关联
	Rooms []Room `gorm:"foreignKey:FloorID" json:"rooms,omitempty"`
}

// TableName 表名
func (Floor) TableName() string {
	return "floors"
}

// Room 房间模型
// (floor_id, room_number) 上有唯一约束，重复插入由数据库拒绝
type Room struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	FloorID    int64     `gorm:"not null;uniqueIndex:uniq_rooms_floor_room_number" json:"floor_id"`
	RoomNumber string    `gorm:"type:varchar(20);not null;uniqueIndex:uniq_rooms_floor_room_number" json:"room_number"`
	Category   string    `gorm:"type:varchar(50);not null" json:"category"`
	Price      float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	PositionX  float64   `gorm:"not null" json:"position_x"`
	PositionY  float64   `gorm:"not null" json:"position_y"`
	Width      *float64  `json:"width"`
	Height     *float64  `json:"height"`
	Polygon    Polygon   `gorm:"type:jsonb" json:"polygon"`
	Status     string    `gorm:"type:varchar(20);not null;default:available" json:"status"`
	Media      MediaList `gorm:"type:jsonb" json:"media"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// 关联
	Floor *Floor `gorm:"foreignKey:FloorID" json:"floor,omitempty"`
}

// TableName 表名
func (Room) TableName() string {
	return "rooms"
}

// RoomStatus 房间状态
const (
	RoomStatusAvailable   = "available"   // 可预订
	RoomStatusOccupied    = "occupied"    // 已入住
	RoomStatusMaintenance = "maintenance" // 维护中
)

// Booking 预订模型
type Booking struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	RoomID     int64     `gorm:"index;not null" json:"room_id"`
	GuestName  string    `gorm:"type:varchar(100);not null" json:"guest_name"`
	GuestEmail string    `gorm:"type:varchar(100);not null" json:"guest_email"`
	GuestPhone *string   `gorm:"type:varchar(20)" json:"guest_phone"`
	CheckIn    time.Time `gorm:"type:date;not null" json:"check_in"`
	CheckOut   time.Time `gorm:"type:date;not null" json:"check_out"`
	TotalPrice float64   `gorm:"type:decimal(10,2);not null" json:"total_price"`
	Status     string    `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	// 关联
	Room *Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

// TableName 表名
func (Booking) TableName() string {
	return "bookings"
}

// BookingStatus 预订状态
const (
	BookingStatusPending   = "pending"   // 待确认
	BookingStatusConfirmed = "confirmed" // 已确认
	BookingStatusCancelled = "cancelled" // 已取消
)

// Point 平面图坐标点
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Polygon 房间轮廓，按顺序排列的坐标点序列
type Polygon []Point

// Scan 实现 sql.Scanner 接口
func (p *Polygon) Scan(value interface{}) error {
	if value == nil {
		*p = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}
	return json.Unmarshal(bytes, p)
}

// Value 实现 driver.Valuer 接口
func (p Polygon) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}

// MediaItem 房间媒体附件描述
type MediaItem struct {
	Type  string `json:"type"` // image / video
	URL   string `json:"url"`
	Order int    `json:"order"`
}

// MediaList 房间媒体列表
// 数据库中为 NULL 时读出为 nil，业务层负责兜底为空列表
type MediaList []MediaItem

// Scan 实现 sql.Scanner 接口
func (m *MediaList) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}
	return json.Unmarshal(bytes, m)
}

// Value 实现 driver.Valuer 接口
func (m MediaList) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}
