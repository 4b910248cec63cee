package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Booking statuses.
const (
	BookingPending    = "PENDING"
	BookingCheckedIn  = "CHECKED_IN"
	BookingCheckedOut = "CHECKED_OUT"
	BookingCancelled  = "CANCELLED"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	HotelID uint `gorm:"index" json:"hotelId"`
	RoomID  uint `gorm:"column:room_id;index" json:"roomId"`

	GuestName  string `gorm:"size:255;column:guest_name" json:"guestName"`
	GuestPhone string `gorm:"size:50;column:guest_phone" json:"guestPhone,omitempty"`
	GuestCount int    `gorm:"column:guest_count;default:1" json:"guestCount"`

	Status   string     `gorm:"column:status;size:32" json:"status,omitempty"`
	CheckIn  *time.Time `gorm:"column:check_in" json:"checkIn,omitempty"`
	CheckOut *time.Time `gorm:"column:check_out" json:"checkOut,omitempty"`
	Note     string     `gorm:"type:text" json:"note,omitempty"`

	CreatedByID uint `gorm:"column:created_by_id" json:"createdById"`

	ExtraGuests datatypes.JSON `gorm:"column:extra_guests" json:"extraGuests,omitempty"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}
