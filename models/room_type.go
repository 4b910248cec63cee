package models

import (
	"time"

	"gorm.io/gorm"
)

// RoomType is the tariff catalog consumed by the pricing classifier: every
// type carries an hourly, daily and overnight rate.
type RoomType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	HotelID     uint   `gorm:"index" json:"hotelId"`
	TypeName    string `gorm:"size:150" json:"typeName"`
	Description string `json:"description"`
	MaxGuests   uint   `json:"max_guests"`

	PricePerHour   float64 `gorm:"column:price_per_hour" json:"pricePerHour"`
	PricePerDay    float64 `gorm:"column:price_per_day" json:"pricePerDay"`
	PriceOvernight float64 `gorm:"column:price_overnight" json:"priceOvernight"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
