package models

import (
	"gorm.io/gorm"
)

// Room statuses. Status always reflects the latest RoomStatusLog entry.
const (
	RoomAvailable    = "AVAILABLE"
	RoomOccupied     = "OCCUPIED"
	RoomBooked       = "BOOKED"
	RoomCheckedIn    = "CHECKED_IN"
	RoomCheckedOut   = "CHECKED_OUT"
	RoomCleaning     = "CLEANING"
	RoomMaintenance  = "MAINTENANCE"
	RoomOutOfService = "OUT_OF_SERVICE"
	RoomReserved     = "RESERVED"
)

type Room struct {
	gorm.Model

	HotelID uint `gorm:"index" json:"hotelId"`

	// RoomTypeID is nullable so a room created without a valid FK doesn't insert 0.
	RoomTypeID *uint  `json:"roomTypeId,omitempty" gorm:"column:room_type_id"`
	RoomNumber string `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`

	Status string `json:"status" gorm:"size:32;default:'AVAILABLE'"`
	Floor  string `json:"floor" gorm:"type:varchar(10)"`
	Image  string `json:"image" gorm:"size:255"`
	Note   string `json:"note" gorm:"type:text"`

	RoomType RoomType  `gorm:"foreignKey:RoomTypeID" json:"roomType,omitempty"`
	Bookings []Booking `gorm:"foreignKey:RoomID" json:"bookings,omitempty"`
}

// ValidRoomStatus reports whether s is one of the known room statuses.
func ValidRoomStatus(s string) bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomBooked, RoomCheckedIn, RoomCheckedOut,
		RoomCleaning, RoomMaintenance, RoomOutOfService, RoomReserved:
		return true
	}
	return false
}
